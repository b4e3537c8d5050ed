// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compare

import (
	"math"
	"testing"
)

func TestRatioSimpleValues(t *testing.T) {
	h1 := entries(t, 50, 1, 1, 0, 3)
	h2 := entries(t, 100, 1, 1, 0, 3)

	vals, low, high, err := Compute(h1, h2, Ratio{})
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(vals[0], 0.5, 1e-12) {
		t.Errorf("ratio = %g, want 0.5", vals[0])
	}
	// var1/h2² + var2·h1²/h2⁴ = 50/10⁴ + 100·2500/10⁸ = 0.0075.
	if !aeq(low[0], math.Sqrt(0.0075), 1e-12) {
		t.Errorf("uncertainty = %g, want %g", low[0], math.Sqrt(0.0075))
	}
	if high[0] != low[0] {
		t.Errorf("symmetric ratio has low %g != high %g", low[0], high[0])
	}
}

func TestSplitRatioUncertainty(t *testing.T) {
	ax := mustAxis(t, 1, 0, 3)
	h1 := counts(t, ax, 50)
	h2 := counts(t, ax, 100)

	_, low, high, err := Compute(h1, h2, SplitRatio{})
	if err != nil {
		t.Fatal(err)
	}
	// sqrt(var1)/h2, with no contribution from h2.
	want := math.Sqrt(50) / 100
	if !aeq(low[0], want, 1e-12) || high[0] != low[0] {
		t.Errorf("split uncertainty = %g/%g, want %g", low[0], high[0], want)
	}
}

func TestRatioNaNPolicy(t *testing.T) {
	ax := mustAxis(t, 3, 0, 3)
	h1 := counts(t, ax, 5, 0, 7)
	h2 := counts(t, ax, 10, 4, 0)

	for _, c := range []Comparison{Ratio{}, SplitRatio{}, RelativeDifference{}} {
		vals, low, high, err := Compute(h1, h2, c)
		if err != nil {
			t.Fatalf("%T: %v", c, err)
		}
		if !math.IsNaN(vals[2]) {
			t.Errorf("%T: value with empty denominator = %g, want NaN", c, vals[2])
		}
		if !math.IsNaN(low[2]) || !math.IsNaN(high[2]) {
			t.Errorf("%T: uncertainty with empty denominator = %g/%g, want NaN", c, low[2], high[2])
		}
		for i := 0; i < 2; i++ {
			if math.IsNaN(vals[i]) {
				t.Errorf("%T: value %d is NaN with non-empty denominator", c, i)
			}
		}
	}
}

func TestRatioAsymmetricUncorrelated(t *testing.T) {
	ax := mustAxis(t, 1, 0, 3)
	h1 := counts(t, ax, 50)
	h2 := counts(t, ax, 100)

	uncLow, uncHigh, err := AsymmetricalUncertainties(h1)
	if err != nil {
		t.Fatal(err)
	}

	vals, low, high, err := Compute(h1, h2, Ratio{H1Uncertainty: Asymmetrical})
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(vals[0], 0.5, 1e-12) {
		t.Errorf("ratio = %g, want 0.5", vals[0])
	}

	// Each side substitutes the squared one-sided uncertainty for
	// var1 in the uncorrelated formula.
	wantLow := math.Sqrt(uncLow[0]*uncLow[0]/1e4 + 100*2500/1e8)
	wantHigh := math.Sqrt(uncHigh[0]*uncHigh[0]/1e4 + 100*2500/1e8)
	if !aeq(low[0], wantLow, 1e-12) {
		t.Errorf("low = %g, want %g", low[0], wantLow)
	}
	if !aeq(high[0], wantHigh, 1e-12) {
		t.Errorf("high = %g, want %g", high[0], wantHigh)
	}
	if low[0] >= high[0] {
		t.Errorf("asymmetric low %g is not below high %g", low[0], high[0])
	}

	// The asymmetric path must not touch the caller's histogram.
	if got := h1.Variances()[0]; got != 50 {
		t.Errorf("h1 variance changed to %g", got)
	}
}

func TestRatioAsymmetricSplit(t *testing.T) {
	ax := mustAxis(t, 1, 0, 3)
	h1 := counts(t, ax, 50)
	h2 := counts(t, ax, 100)

	uncLow, uncHigh, err := AsymmetricalUncertainties(h1)
	if err != nil {
		t.Fatal(err)
	}
	_, low, high, err := Compute(h1, h2, SplitRatio{H1Uncertainty: Asymmetrical})
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(low[0], uncLow[0]/100, 1e-12) || !aeq(high[0], uncHigh[0]/100, 1e-12) {
		t.Errorf("split asymmetric = %g/%g, want %g/%g", low[0], high[0], uncLow[0]/100, uncHigh[0]/100)
	}
}

func TestRatioVariancesChecked(t *testing.T) {
	h1 := counts(t, mustAxis(t, 2, 0, 2), 1, 2)
	h2 := counts(t, mustAxis(t, 2, 0, 4), 1, 2)
	if _, err := RatioVariances(h1, h2); err == nil {
		t.Errorf("RatioVariances with mismatched binning succeeded")
	}
}
