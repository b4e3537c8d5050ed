// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compare

import (
	"fmt"
	"math"

	"github.com/aclements/go-histstat/hist"
	"gonum.org/v1/gonum/floats"
)

// RatioUncertainty selects how histogram uncertainties enter the
// uncertainty of a ratio h1/h2.
type RatioUncertainty int

const (
	// Uncorrelated propagates the variances of both histograms
	// through the ratio, treating them as independent.
	Uncorrelated RatioUncertainty = iota

	// Split scales only h1's own uncertainty by 1/h2 and
	// attributes none of the ratio uncertainty to h2; h2's
	// uncertainty is meant to be displayed separately as a band.
	Split
)

func (u RatioUncertainty) String() string {
	switch u {
	case Uncorrelated:
		return "Uncorrelated"
	case Split:
		return "Split"
	}
	return fmt.Sprintf("RatioUncertainty(%d)", int(u))
}

// RatioVariances returns the per-bin variance of the element-wise
// ratio h1/h2 of two uncorrelated counting histograms,
//
//	Var[h1/h2] ≈ var1/h2² + var2·h1²/h2⁴
//
// with NaN wherever h2 is empty.
func RatioVariances(h1, h2 *hist.Histogram) ([]float64, error) {
	if err := checkInputs(h1, h2); err != nil {
		return nil, err
	}
	return ratioVariances(h1.Values(), h1.Variances(), h2.Values(), h2.Variances()), nil
}

func ratioVariances(v1, var1, v2, var2 []float64) []float64 {
	out := make([]float64, len(v1))
	for i := range out {
		if v2[i] == 0 {
			out[i] = math.NaN()
			continue
		}
		d2 := v2[i] * v2[i]
		out[i] = var1[i]/d2 + var2[i]*v1[i]*v1[i]/(d2*d2)
	}
	return out
}

// ratio computes h1/h2 and its uncertainties. The value is NaN
// wherever h2 is empty. With an Asymmetrical h1 uncertainty, the
// Poisson interval of h1 is pushed through the symmetric formula via
// variant histograms carrying the squared one-sided uncertainties as
// variances; the inputs themselves are never modified.
func ratio(h1, h2 *hist.Histogram, unc UncertaintyType, mode RatioUncertainty) (vals, low, high []float64, err error) {
	if err := checkUncertaintyType(unc); err != nil {
		return nil, nil, nil, err
	}
	if mode != Uncorrelated && mode != Split {
		return nil, nil, nil, fmt.Errorf("%w: ratio uncertainty %v not valid; must be Uncorrelated or Split", ErrInvalidArgument, mode)
	}
	if err := checkInputs(h1, h2); err != nil {
		return nil, nil, nil, err
	}

	v1, v2 := h1.Values(), h2.Values()
	vals = make([]float64, len(v1))
	for i := range vals {
		if v2[i] == 0 {
			vals[i] = math.NaN()
		} else {
			vals[i] = v1[i] / v2[i]
		}
	}

	var uncLow, uncHigh []float64
	if unc == Asymmetrical {
		uncLow, uncHigh, err = AsymmetricalUncertainties(h1)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	switch mode {
	case Uncorrelated:
		if unc == Asymmetrical {
			hLow, err := h1.WithVariances(squared(uncLow))
			if err != nil {
				return nil, nil, nil, err
			}
			hHigh, err := h1.WithVariances(squared(uncHigh))
			if err != nil {
				return nil, nil, nil, err
			}
			lowVar, err := RatioVariances(hLow, h2)
			if err != nil {
				return nil, nil, nil, err
			}
			highVar, err := RatioVariances(hHigh, h2)
			if err != nil {
				return nil, nil, nil, err
			}
			low, high = sqrtAll(lowVar), sqrtAll(highVar)
		} else {
			low = sqrtAll(ratioVariances(v1, h1.Variances(), v2, h2.Variances()))
			high = low
		}
	case Split:
		if unc == Asymmetrical {
			low = make([]float64, len(v1))
			high = make([]float64, len(v1))
			for i := range v1 {
				if v2[i] == 0 {
					low[i], high[i] = math.NaN(), math.NaN()
					continue
				}
				low[i] = uncLow[i] / v2[i]
				high[i] = uncHigh[i] / v2[i]
			}
		} else {
			var1 := h1.Variances()
			low = make([]float64, len(v1))
			for i := range v1 {
				if v2[i] == 0 {
					low[i] = math.NaN()
					continue
				}
				low[i] = math.Sqrt(var1[i]) / v2[i]
			}
			high = low
		}
	}
	return vals, low, high, nil
}

func squared(s []float64) []float64 {
	out := make([]float64, len(s))
	floats.MulTo(out, s, s)
	return out
}

func sqrtAll(s []float64) []float64 {
	out := make([]float64, len(s))
	for i, x := range s {
		out[i] = math.Sqrt(x)
	}
	return out
}
