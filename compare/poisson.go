// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compare

import (
	"fmt"

	"github.com/aclements/go-histstat/hist"
	"gonum.org/v1/gonum/stat/distuv"
)

// poissonConfLevel is the central confidence level of the Poisson
// interval, matching the coverage of one Gaussian standard deviation.
const poissonConfLevel = 0.682689492

// AsymmetricalUncertainties returns per-bin asymmetric uncertainties
// for an unweighted counting histogram, derived from a central
// Poisson (Garwood) confidence interval at one-sigma coverage. For a
// bin with count n, the interval bounds are the Gamma inverse CDFs
//
//	lower = Q(α/2; n), upper = Q(1-α/2; n+1)
//
// with α the complement of the confidence level, and the returned
// uncertainties are the distances n-lower and upper-n. An empty bin
// has zero downward uncertainty.
//
// The bin contents of a weighted histogram do not follow a Poisson
// distribution, so weighted histograms are rejected with
// ErrUnsupportedStatistic.
func AsymmetricalUncertainties(h *hist.Histogram) (low, high []float64, err error) {
	if err := checkCounting(h); err != nil {
		return nil, nil, err
	}
	if !IsUnweighted(h) {
		return nil, nil, fmt.Errorf("%w: asymmetrical uncertainties can only be computed for an unweighted histogram", ErrUnsupportedStatistic)
	}
	alpha := 1 - poissonConfLevel
	ns := h.Values()
	low = make([]float64, len(ns))
	high = make([]float64, len(ns))
	for i, n := range ns {
		if n > 0 {
			// The Gamma inverse CDF at shape 0 is 0, which
			// distuv rejects, so empty bins keep low 0.
			low[i] = n - distuv.Gamma{Alpha: n, Beta: 1}.Quantile(alpha/2)
		}
		high[i] = distuv.Gamma{Alpha: n + 1, Beta: 1}.Quantile(1-alpha/2) - n
	}
	return low, high, nil
}
