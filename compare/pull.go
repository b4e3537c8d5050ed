// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compare

import (
	"math"

	"github.com/aclements/go-histstat/hist"
)

// pull computes (h1-h2)/sqrt(var1+var2), NaN wherever the combined
// variance is zero. The returned uncertainties are exactly all ones.
//
// With an Asymmetrical h1 uncertainty, the variance of h1 is replaced
// per bin by the squared one-sided Poisson uncertainty on the side
// toward h2: the low branch where h1 ≥ h2, the high branch otherwise.
func pull(h1, h2 *hist.Histogram, unc UncertaintyType) (vals, low, high []float64, err error) {
	if err := checkUncertaintyType(unc); err != nil {
		return nil, nil, nil, err
	}
	if err := checkInputs(h1, h2); err != nil {
		return nil, nil, nil, err
	}

	if unc == Asymmetrical {
		h1, err = substituteAsymmetric(h1, h2)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	v1, v2 := h1.Values(), h2.Values()
	var1, var2 := h1.Variances(), h2.Variances()
	vals = make([]float64, len(v1))
	for i := range vals {
		d := var1[i] + var2[i]
		if d == 0 {
			vals[i] = math.NaN()
			continue
		}
		vals[i] = (v1[i] - v2[i]) / math.Sqrt(d)
	}
	low = make([]float64, len(vals))
	for i := range low {
		low[i] = 1
	}
	return vals, low, low, nil
}

// substituteAsymmetric returns a variant of h1 whose variance is the
// squared one-sided Poisson uncertainty facing h2. h1 is not
// modified.
func substituteAsymmetric(h1, h2 *hist.Histogram) (*hist.Histogram, error) {
	uncLow, uncHigh, err := AsymmetricalUncertainties(h1)
	if err != nil {
		return nil, err
	}
	v1, v2 := h1.Values(), h2.Values()
	vars := make([]float64, len(v1))
	for i := range vars {
		if v1[i] >= v2[i] {
			vars[i] = uncLow[i] * uncLow[i]
		} else {
			vars[i] = uncHigh[i] * uncHigh[i]
		}
	}
	return h1.WithVariances(vars)
}
