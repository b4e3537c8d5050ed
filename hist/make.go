// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hist

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// MakeHist bins data into a counting histogram with n equal-width
// bins spanning [min, max). Either of min and max may be NaN, in
// which case that bound is derived from the data: the extremes of
// data, (0, 1) for empty data, and an expansion by ±0.5 when the
// derived bounds coincide.
//
// weights may be nil for unit weights; otherwise it must have one
// weight per sample.
func MakeHist(data []float64, n int, min, max float64, weights []float64) (*Histogram, error) {
	min, max, err := dataRange(data, min, max)
	if err != nil {
		return nil, err
	}
	ax, err := RegularAxis(n, min, max)
	if err != nil {
		return nil, err
	}
	return fill1D(ax, data, weights)
}

// MakeHistEdges is like MakeHist with explicit bin edges.
func MakeHistEdges(data, edges []float64, weights []float64) (*Histogram, error) {
	ax, err := VariableAxis(edges)
	if err != nil {
		return nil, err
	}
	return fill1D(ax, data, weights)
}

// Make2DHist bins the samples (x[i], y[i]) into a 2D counting
// histogram over the given axes. weights may be nil for unit weights.
func Make2DHist(x, y []float64, xaxis, yaxis Axis, weights []float64) (*Histogram, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("x and y must have the same length (%d != %d)", len(x), len(y))
	}
	if weights != nil && len(weights) != len(x) {
		return nil, fmt.Errorf("data and weights must have the same length (%d != %d)", len(x), len(weights))
	}
	h := New(xaxis, yaxis)
	for i := range x {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		h.Fill(w, x[i], y[i])
	}
	return h, nil
}

// MakeProfileHist builds a mean (profile) histogram over axis: each
// bin holds the mean of the y values whose x falls in the bin, with
// the variance of that mean. Empty bins hold zero.
func MakeProfileHist(x, y []float64, axis Axis) (*Histogram, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("x and y must have the same length (%d != %d)", len(x), len(y))
	}
	groups := make([][]float64, axis.Bins())
	for i, xi := range x {
		if b := axis.find(xi); b >= 0 {
			groups[b] = append(groups[b], y[i])
		}
	}
	values := make([]float64, axis.Bins())
	variances := make([]float64, axis.Bins())
	for b, g := range groups {
		if len(g) == 0 {
			continue
		}
		s := stats.Sample{Xs: g}
		values[b] = s.Mean()
		if len(g) > 1 {
			variances[b] = s.Variance() / float64(len(g))
		}
	}
	return FromArrays(Mean, values, variances, axis)
}

// FromFunction returns a counting histogram with the binning of ref
// whose bin values are f evaluated at the bin centers, with zero
// variances. ref must be a 1D counting histogram.
func FromFunction(f func(float64) float64, ref *Histogram) (*Histogram, error) {
	if ref.Kind() != Count {
		return nil, fmt.Errorf("%w (kind %v)", ErrNotCounting, ref.Kind())
	}
	if ref.Dims() != 1 {
		return nil, fmt.Errorf("reference histogram must be 1D; got %d dimensions", ref.Dims())
	}
	centers := ref.Axis(0).Centers()
	values := make([]float64, len(centers))
	for i, c := range centers {
		values[i] = f(c)
	}
	return FromArrays(Count, values, make([]float64, len(centers)), ref.Axis(0))
}

// Flatten2D flattens a 2D counting histogram into a 1D counting
// histogram over a unit-spaced axis, keeping the row-major bin order.
func Flatten2D(h *Histogram) (*Histogram, error) {
	if h.Kind() != Count {
		return nil, fmt.Errorf("%w (kind %v)", ErrNotCounting, h.Kind())
	}
	if h.Dims() != 2 {
		return nil, fmt.Errorf("histogram must be 2D; got %d dimensions", h.Dims())
	}
	n := h.NumBins()
	ax, err := RegularAxis(n, 0, float64(n))
	if err != nil {
		return nil, err
	}
	return FromArrays(Count, h.values, h.variances, ax)
}

// dataRange resolves NaN range bounds from the data, in the manner of
// numpy's histogram auto-ranging.
func dataRange(data []float64, min, max float64) (float64, float64, error) {
	if math.IsNaN(min) || math.IsNaN(max) {
		lo, hi := 0.0, 1.0
		if len(data) > 0 {
			lo, hi = (stats.Sample{Xs: data}).Bounds()
		}
		if math.IsNaN(min) {
			min = lo
		}
		if math.IsNaN(max) {
			max = hi
		}
	}
	if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) {
		return 0, 0, fmt.Errorf("range [%g, %g] is not finite", min, max)
	}
	if min > max {
		return 0, 0, fmt.Errorf("range [%g, %g] is not valid; max must be larger than min", min, max)
	}
	if min == max {
		// Expand an empty range to avoid zero-width bins.
		min, max = min-0.5, max+0.5
	}
	return min, max, nil
}

func fill1D(ax Axis, data, weights []float64) (*Histogram, error) {
	if weights != nil && len(weights) != len(data) {
		return nil, fmt.Errorf("data and weights must have the same length (%d != %d)", len(data), len(weights))
	}
	h := New(ax)
	for i, x := range data {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		h.Fill(w, x)
	}
	return h, nil
}
