// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compare

import (
	"math"
	"testing"
)

func TestAsymmetrySimpleValues(t *testing.T) {
	h1 := entries(t, 50, 1, 1, 0, 3)
	h2 := entries(t, 100, 1, 1, 0, 3)

	vals, low, high, err := Compute(h2, h1, Asymmetry{})
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(vals[0], 1.0/3.0, 1e-12) {
		t.Errorf("asymmetry = %g, want 1/3", vals[0])
	}
	if !aeq(low[0], 0.08606630, 1e-7) {
		t.Errorf("uncertainty = %g, want 0.08606630", low[0])
	}
	if high[0] != low[0] {
		t.Errorf("asymmetry has low %g != high %g", low[0], high[0])
	}
}

func TestAsymmetryNaNPolicy(t *testing.T) {
	ax := mustAxis(t, 2, 0, 2)
	h1 := counts(t, ax, 0, 6)
	h2 := counts(t, ax, 0, 2)
	vals, _, _, err := Compute(h1, h2, Asymmetry{})
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(vals[0]) {
		t.Errorf("asymmetry with empty sum = %g, want NaN", vals[0])
	}
	if !aeq(vals[1], 0.5, 1e-12) {
		t.Errorf("asymmetry = %g, want 0.5", vals[1])
	}
}

func TestAsymmetryUncertaintyPropagation(t *testing.T) {
	// The uncertainty is the ratio-variance propagation applied
	// to (h1-h2) over (h1+h2), with both carrying var1+var2.
	ax := mustAxis(t, 1, 0, 1)
	h1 := counts(t, ax, 30)
	h2 := counts(t, ax, 10)
	_, low, _, err := Compute(h1, h2, Asymmetry{})
	if err != nil {
		t.Fatal(err)
	}
	d, s, v := 20.0, 40.0, 40.0
	want := math.Sqrt(v/(s*s) + v*d*d/(s*s*s*s))
	if !aeq(low[0], want, 1e-12) {
		t.Errorf("uncertainty = %g, want %g", low[0], want)
	}
}

func TestAsymmetryAntisymmetric(t *testing.T) {
	ax := mustAxis(t, 3, 0, 3)
	h1 := counts(t, ax, 12, 5, 9)
	h2 := counts(t, ax, 4, 5, 27)
	a, _, _, err := Compute(h1, h2, Asymmetry{})
	if err != nil {
		t.Fatal(err)
	}
	b, _, _, err := Compute(h2, h1, Asymmetry{})
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if !aeq(a[i], -b[i], 1e-12) {
			t.Errorf("bin %d: asymmetry(h1,h2) = %g, asymmetry(h2,h1) = %g; not antisymmetric", i, a[i], b[i])
		}
	}
}
