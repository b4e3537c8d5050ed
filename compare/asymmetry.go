// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compare

import (
	"math"

	"github.com/aclements/go-histstat/hist"
)

// asymmetry computes (h1-h2)/(h1+h2), NaN wherever the sum is empty.
// The uncertainty follows from ratio variance propagation applied to
// the difference and sum histograms.
func asymmetry(h1, h2 *hist.Histogram) (vals, low, high []float64, err error) {
	if err := checkInputs(h1, h2); err != nil {
		return nil, nil, nil, err
	}
	sum, err := h1.Sum(h2)
	if err != nil {
		return nil, nil, nil, err
	}
	diff, err := h1.Diff(h2)
	if err != nil {
		return nil, nil, nil, err
	}

	sv, dv := sum.Values(), diff.Values()
	vals = make([]float64, len(sv))
	for i := range vals {
		if sv[i] == 0 {
			vals[i] = math.NaN()
			continue
		}
		vals[i] = dv[i] / sv[i]
	}
	variances, err := RatioVariances(diff, sum)
	if err != nil {
		return nil, nil, nil, err
	}
	low = sqrtAll(variances)
	return vals, low, low, nil
}
