// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package compare computes statistical comparisons between pairs of
// histograms.
//
// Each comparison takes a numerator-like histogram h1 and a
// denominator- or reference-like histogram h2 with identical binning,
// and returns three equal-length arrays: the per-bin comparison value
// and its lower and upper one-sided uncertainties. The two
// uncertainty arrays differ only for the comparisons that support an
// Asymmetrical h1 uncertainty.
//
// Bins where a comparison is well-defined but has no value, such as a
// ratio with an empty denominator, are NaN in the result. NaN is
// data, not an error; errors are reserved for invalid inputs and are
// reported before any numeric work (see errors.go).
//
// All comparisons are pure: the input histograms are never modified,
// and each call is independent, so the package is safe for concurrent
// use.
package compare

import (
	"fmt"

	"github.com/aclements/go-histstat/hist"
)

// A Comparison identifies one statistical comparison of two
// histograms together with its options. The set of implementations
// is closed: Ratio, SplitRatio, Pull, Difference, RelativeDifference,
// Efficiency and Asymmetry.
type Comparison interface {
	// Compare computes the comparison between h1 and h2. It
	// validates binning consistency and the counting-kind gate on
	// both inputs, then returns the per-bin values and their
	// lower and upper uncertainties.
	Compare(h1, h2 *hist.Histogram) (values, low, high []float64, err error)

	comparison()
}

// Compute computes the comparison c between h1 and h2. It is
// equivalent to c.Compare(h1, h2) with a nil check, and is the single
// entry point intended for layers that plot the returned arrays.
func Compute(h1, h2 *hist.Histogram, c Comparison) (values, low, high []float64, err error) {
	if c == nil {
		return nil, nil, nil, fmt.Errorf("%w: comparison must be one of Ratio, SplitRatio, Pull, Difference, RelativeDifference, Efficiency or Asymmetry", ErrInvalidArgument)
	}
	return c.Compare(h1, h2)
}

// Ratio compares h1/h2 element-wise. The zero value propagates both
// histograms' variances (Uncorrelated) with a Symmetrical h1
// uncertainty.
type Ratio struct {
	H1Uncertainty UncertaintyType
	Uncertainty   RatioUncertainty
}

func (c Ratio) comparison() {}

func (c Ratio) Compare(h1, h2 *hist.Histogram) ([]float64, []float64, []float64, error) {
	return ratio(h1, h2, c.H1Uncertainty, c.Uncertainty)
}

// SplitRatio is Ratio with the Split uncertainty treatment: h1's own
// uncertainty scaled by 1/h2, none attributed to h2.
type SplitRatio struct {
	H1Uncertainty UncertaintyType
}

func (c SplitRatio) comparison() {}

func (c SplitRatio) Compare(h1, h2 *hist.Histogram) ([]float64, []float64, []float64, error) {
	return ratio(h1, h2, c.H1Uncertainty, Split)
}

// RelativeDifference compares (h1-h2)/h2, that is, h1/h2 - 1, with
// the uncertainty of the ratio.
type RelativeDifference struct {
	H1Uncertainty UncertaintyType
	Uncertainty   RatioUncertainty
}

func (c RelativeDifference) comparison() {}

func (c RelativeDifference) Compare(h1, h2 *hist.Histogram) ([]float64, []float64, []float64, error) {
	vals, low, high, err := ratio(h1, h2, c.H1Uncertainty, c.Uncertainty)
	if err != nil {
		return nil, nil, nil, err
	}
	for i := range vals {
		vals[i]--
	}
	return vals, low, high, nil
}

// Pull compares (h1-h2)/sqrt(var1+var2). Its uncertainties are
// exactly all ones.
type Pull struct {
	H1Uncertainty UncertaintyType
}

func (c Pull) comparison() {}

func (c Pull) Compare(h1, h2 *hist.Histogram) ([]float64, []float64, []float64, error) {
	return pull(h1, h2, c.H1Uncertainty)
}

// Difference compares h1-h2.
type Difference struct {
	H1Uncertainty UncertaintyType
}

func (c Difference) comparison() {}

func (c Difference) Compare(h1, h2 *hist.Histogram) ([]float64, []float64, []float64, error) {
	return difference(h1, h2, c.H1Uncertainty)
}

// Efficiency compares h1/h2 for correlated histograms where h1 is a
// strict subsample of h2, with a binomial uncertainty. It has no
// asymmetrical variant.
type Efficiency struct{}

func (c Efficiency) comparison() {}

func (c Efficiency) Compare(h1, h2 *hist.Histogram) ([]float64, []float64, []float64, error) {
	return efficiency(h1, h2)
}

// Asymmetry compares (h1-h2)/(h1+h2). It has no asymmetrical
// variant.
type Asymmetry struct{}

func (c Asymmetry) comparison() {}

func (c Asymmetry) Compare(h1, h2 *hist.Histogram) ([]float64, []float64, []float64, error) {
	return asymmetry(h1, h2)
}
