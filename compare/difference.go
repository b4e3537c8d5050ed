// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compare

import (
	"math"

	"github.com/aclements/go-histstat/hist"
	"gonum.org/v1/gonum/floats"
)

// difference computes h1-h2 with uncertainty sqrt(var1+var2). With an
// Asymmetrical h1 uncertainty, each side combines the corresponding
// one-sided Poisson uncertainty of h1 with h2's variance.
func difference(h1, h2 *hist.Histogram, unc UncertaintyType) (vals, low, high []float64, err error) {
	if err := checkUncertaintyType(unc); err != nil {
		return nil, nil, nil, err
	}
	if err := checkInputs(h1, h2); err != nil {
		return nil, nil, nil, err
	}

	v1, v2 := h1.Values(), h2.Values()
	vals = make([]float64, len(v1))
	floats.SubTo(vals, v1, v2)

	var1, var2 := h1.Variances(), h2.Variances()
	if unc == Asymmetrical {
		uncLow, uncHigh, err := AsymmetricalUncertainties(h1)
		if err != nil {
			return nil, nil, nil, err
		}
		low = make([]float64, len(vals))
		high = make([]float64, len(vals))
		for i := range vals {
			low[i] = math.Sqrt(uncLow[i]*uncLow[i] + var2[i])
			high[i] = math.Sqrt(uncHigh[i]*uncHigh[i] + var2[i])
		}
	} else {
		low = make([]float64, len(vals))
		for i := range vals {
			low[i] = math.Sqrt(var1[i] + var2[i])
		}
		high = low
	}
	return vals, low, high, nil
}
