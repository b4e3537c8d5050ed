// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compare

import (
	"fmt"
	"math"

	"github.com/aclements/go-histstat/hist"
)

// efficiency computes the ratio h1/h2 of two correlated counting
// histograms, where the entries of h1 are a subsample of the entries
// of h2. The value is NaN wherever h2 is empty. The uncertainty is
// the square root of the Bayesian binomial variance
//
//	(k+1)(k+2)/((n+2)(n+3)) - (k+1)²/(n+2)²
//
// with k = h1, n = h2 per bin, which stays finite at efficiencies of
// 0 and 1.
//
// Both histograms must be unweighted with non-negative bin contents,
// and h1 must not exceed h2 in any bin.
func efficiency(h1, h2 *hist.Histogram) (vals, low, high []float64, err error) {
	if err := checkInputs(h1, h2); err != nil {
		return nil, nil, nil, err
	}
	if !IsUnweighted(h1) || !IsUnweighted(h2) {
		return nil, nil, nil, fmt.Errorf("%w: efficiency can only be computed for unweighted histograms", ErrUnsupportedStatistic)
	}
	v1, v2 := h1.Values(), h2.Values()
	for i := range v1 {
		if v1[i] < 0 || v2[i] < 0 {
			return nil, nil, nil, fmt.Errorf("%w: efficiency requires non-negative bin contents", ErrUnsupportedStatistic)
		}
		if v1[i] > v2[i] {
			return nil, nil, nil, fmt.Errorf("%w: efficiency requires the entries of h1 to be a subsample of the entries of h2", ErrUnsupportedStatistic)
		}
	}

	vals = make([]float64, len(v1))
	low = make([]float64, len(v1))
	for i := range v1 {
		k, n := v1[i], v2[i]
		if n == 0 {
			vals[i] = math.NaN()
		} else {
			vals[i] = k / n
		}
		variance := (k+1)*(k+2)/((n+2)*(n+3)) - (k+1)*(k+1)/((n+2)*(n+2))
		low[i] = math.Sqrt(variance)
	}
	return vals, low, low, nil
}
