// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hist provides binned histograms over float64 samples.
//
// A Histogram stores a per-bin aggregate and its variance over one or
// more axes. Counting histograms, whose bins are additive sums of
// weights, are the input to the statistical comparisons in the
// compare package. Mean (profile) histograms store a non-additive
// per-bin mean and are rejected by operations that require counts.
package hist

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrIncompatibleBinning is returned by operations that
	// require histograms with identical binning.
	ErrIncompatibleBinning = errors.New("histograms have incompatible binning")

	// ErrNotCounting is returned by operations that require a
	// counting histogram.
	ErrNotCounting = errors.New("histogram is not a counting histogram")
)

// Kind classifies what a histogram's bins store.
type Kind int

const (
	// Count histograms store an additive count or sum of weights
	// per bin.
	Count Kind = iota

	// Mean histograms store the per-bin mean of a sampled
	// quantity, as built by MakeProfileHist. Their bins are not
	// additive.
	Mean

	// Other marks histogram storage this package does not model.
	Other
)

func (k Kind) String() string {
	switch k {
	case Count:
		return "Count"
	case Mean:
		return "Mean"
	case Other:
		return "Other"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// A Histogram is a binned aggregate over one or more axes. For a
// multi-dimensional histogram, bins are stored flat in row-major
// order with the first axis outermost.
//
// For a counting histogram filled with unit weights, each bin's
// variance equals its value (Poisson statistics).
type Histogram struct {
	axes      []Axis
	values    []float64
	variances []float64
	kind      Kind

	// sumW and flowW track the total weight filled inside and
	// outside the axis ranges, for RangeCoverage.
	sumW  float64
	flowW float64
}

// New returns an empty counting histogram over the given axes.
func New(axes ...Axis) *Histogram {
	if len(axes) == 0 {
		panic("hist: New requires at least one axis")
	}
	n := 1
	for _, a := range axes {
		n *= a.Bins()
	}
	return &Histogram{
		axes:      append([]Axis(nil), axes...),
		values:    make([]float64, n),
		variances: make([]float64, n),
		kind:      Count,
	}
}

// FromArrays returns a histogram of the given kind that adopts
// precomputed bin contents. values and variances are copied and must
// have length equal to the product of the axis bin counts.
func FromArrays(kind Kind, values, variances []float64, axes ...Axis) (*Histogram, error) {
	if len(axes) == 0 {
		return nil, errors.New("need at least one axis")
	}
	n := 1
	for _, a := range axes {
		n *= a.Bins()
	}
	if len(values) != n || len(variances) != n {
		return nil, fmt.Errorf("axes have %d bins; got %d values and %d variances", n, len(values), len(variances))
	}
	return &Histogram{
		axes:      append([]Axis(nil), axes...),
		values:    append([]float64(nil), values...),
		variances: append([]float64(nil), variances...),
		kind:      kind,
	}, nil
}

// Fill adds a sample at coordinates xs with weight w. It adds w to
// the target bin's value and w² to its variance. Samples outside the
// axis ranges are counted toward RangeCoverage but stored in no bin.
//
// Fill panics if h is not a counting histogram or if len(xs) differs
// from the number of axes.
func (h *Histogram) Fill(w float64, xs ...float64) {
	if h.kind != Count {
		panic("hist: Fill on non-counting histogram")
	}
	if len(xs) != len(h.axes) {
		panic(fmt.Sprintf("hist: Fill with %d coordinates on %d-dimensional histogram", len(xs), len(h.axes)))
	}
	idx := 0
	for i, a := range h.axes {
		b := a.find(xs[i])
		if b < 0 {
			h.flowW += w
			return
		}
		idx = idx*a.Bins() + b
	}
	h.values[idx] += w
	h.variances[idx] += w * w
	h.sumW += w
}

// Dims returns the number of axes of h.
func (h *Histogram) Dims() int {
	return len(h.axes)
}

// Axis returns h's i'th axis.
func (h *Histogram) Axis(i int) Axis {
	return h.axes[i]
}

// NumBins returns the total number of bins of h across all axes.
func (h *Histogram) NumBins() int {
	return len(h.values)
}

// Kind returns the storage kind of h.
func (h *Histogram) Kind() Kind {
	return h.kind
}

// Values returns a copy of h's per-bin values in row-major order.
func (h *Histogram) Values() []float64 {
	return append([]float64(nil), h.values...)
}

// Variances returns a copy of h's per-bin variances in row-major
// order.
func (h *Histogram) Variances() []float64 {
	return append([]float64(nil), h.variances...)
}

// RangeCoverage returns the fraction of the filled weight that fell
// inside the axis ranges. It returns 1 for an unfilled histogram.
func (h *Histogram) RangeCoverage() float64 {
	if h.sumW+h.flowW == 0 {
		return 1
	}
	return h.sumW / (h.sumW + h.flowW)
}

// Clone returns a deep copy of h.
func (h *Histogram) Clone() *Histogram {
	c := *h
	c.axes = append([]Axis(nil), h.axes...)
	c.values = append([]float64(nil), h.values...)
	c.variances = append([]float64(nil), h.variances...)
	return &c
}

// WithVariances returns a copy of h with its variances replaced by
// the given slice, which is copied and must have one element per bin.
// h is not modified.
func (h *Histogram) WithVariances(variances []float64) (*Histogram, error) {
	if len(variances) != len(h.variances) {
		return nil, fmt.Errorf("histogram has %d bins; got %d variances", len(h.variances), len(variances))
	}
	c := h.Clone()
	copy(c.variances, variances)
	return c, nil
}

// Sum returns a new counting histogram whose bins are the
// element-wise sum of h and o. The inputs are treated as independent,
// so variances add.
func (h *Histogram) Sum(o *Histogram) (*Histogram, error) {
	if err := h.compatible(o); err != nil {
		return nil, err
	}
	out := h.Clone()
	floats.Add(out.values, o.values)
	floats.Add(out.variances, o.variances)
	out.sumW += o.sumW
	out.flowW += o.flowW
	return out, nil
}

// Diff returns a new counting histogram whose bins are the
// element-wise difference h - o. The inputs are treated as
// independent, so variances add.
func (h *Histogram) Diff(o *Histogram) (*Histogram, error) {
	if err := h.compatible(o); err != nil {
		return nil, err
	}
	out := h.Clone()
	floats.Sub(out.values, o.values)
	floats.Add(out.variances, o.variances)
	return out, nil
}

func (h *Histogram) compatible(o *Histogram) error {
	if h.kind != Count {
		return fmt.Errorf("%w (kind %v)", ErrNotCounting, h.kind)
	}
	if o.kind != Count {
		return fmt.Errorf("%w (kind %v)", ErrNotCounting, o.kind)
	}
	if len(h.axes) != len(o.axes) {
		return fmt.Errorf("%w: histograms must have same dimensionality (%d != %d)", ErrIncompatibleBinning, len(h.axes), len(o.axes))
	}
	for i := range h.axes {
		if !h.axes[i].Equal(o.axes[i]) {
			return fmt.Errorf("%w: the bins of the histograms must be equal", ErrIncompatibleBinning)
		}
	}
	return nil
}
