// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compare

import (
	"fmt"

	"github.com/aclements/go-histstat/hist"
	"gonum.org/v1/gonum/floats/scalar"
)

// UncertaintyType selects how the numerator histogram's own bin
// uncertainty enters a comparison.
type UncertaintyType int

const (
	// Symmetrical uses the Poisson standard deviation derived
	// from the variance stored in the histogram.
	Symmetrical UncertaintyType = iota

	// Asymmetrical uses a Poisson confidence interval; see
	// AsymmetricalUncertainties.
	Asymmetrical
)

func (u UncertaintyType) String() string {
	switch u {
	case Symmetrical:
		return "Symmetrical"
	case Asymmetrical:
		return "Asymmetrical"
	}
	return fmt.Sprintf("UncertaintyType(%d)", int(u))
}

func checkUncertaintyType(u UncertaintyType) error {
	if u != Symmetrical && u != Asymmetrical {
		return fmt.Errorf("%w: uncertainty type %v not valid; must be Symmetrical or Asymmetrical", ErrInvalidArgument, u)
	}
	return nil
}

// CheckBinningConsistency checks that all the provided histograms
// share the same definition of their bins: equal dimensionality and
// exactly equal per-axis bin edges. Edges are compared exactly, not
// within a tolerance; histograms meant to be compared are expected to
// originate from the same binning construction.
func CheckBinningConsistency(hists ...*hist.Histogram) error {
	for _, h := range hists {
		if h.Dims() != hists[0].Dims() {
			return fmt.Errorf("%w: histograms must have same dimensionality", ErrIncompatibleBinning)
		}
		for i := 0; i < h.Dims(); i++ {
			if !h.Axis(i).Equal(hists[0].Axis(i)) {
				return fmt.Errorf("%w: the bins of the histograms must be equal", ErrIncompatibleBinning)
			}
		}
	}
	return nil
}

// IsUnweighted reports whether h looks unweighted: every bin's
// variance equals its value within a small tolerance, as produced by
// unit-weight fills.
func IsUnweighted(h *hist.Histogram) bool {
	vals, vars := h.Values(), h.Variances()
	for i := range vals {
		if !scalar.EqualWithinAbsOrRel(vars[i], vals[i], 1e-8, 1e-5) {
			return false
		}
	}
	return true
}

func checkCounting(h *hist.Histogram) error {
	if h.Kind() != hist.Count {
		return fmt.Errorf("%w (kind %v)", ErrNotCounting, h.Kind())
	}
	return nil
}

// checkInputs applies the validation shared by every comparison:
// binning consistency, then the counting-kind gate on both inputs.
func checkInputs(h1, h2 *hist.Histogram) error {
	if err := CheckBinningConsistency(h1, h2); err != nil {
		return err
	}
	if err := checkCounting(h1); err != nil {
		return err
	}
	return checkCounting(h2)
}
