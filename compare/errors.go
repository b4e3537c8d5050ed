// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package compare

import (
	"errors"

	"github.com/aclements/go-histstat/hist"
)

// Every error returned by this package wraps one of these sentinels,
// so callers can classify failures with errors.Is. All violations are
// detected before any numeric work; NaN in a returned array is data,
// not an error.
var (
	// ErrInvalidArgument reports a bad enumeration value: an
	// unknown comparison, uncertainty type, or ratio uncertainty
	// mode.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIncompatibleBinning reports a dimensionality or bin-edge
	// mismatch between compared histograms.
	ErrIncompatibleBinning = hist.ErrIncompatibleBinning

	// ErrNotCounting reports a non-counting histogram passed
	// where a counting histogram is required.
	ErrNotCounting = hist.ErrNotCounting

	// ErrUnsupportedStatistic reports a statistic that is not
	// defined for its inputs, such as asymmetrical uncertainties
	// of a weighted histogram, or an efficiency of weighted,
	// negative, or non-subsample inputs.
	ErrUnsupportedStatistic = errors.New("unsupported statistic")
)
