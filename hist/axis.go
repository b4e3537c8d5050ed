// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hist

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/gonum/floats"
)

// An Axis is an ordered set of contiguous bins on the real line,
// described by its bin edges. Bin i spans [edge i, edge i+1). A value
// equal to the last edge falls outside the axis.
//
// The zero Axis has no bins. Use RegularAxis or VariableAxis to
// construct a usable Axis.
type Axis struct {
	edges []float64
}

// RegularAxis returns an Axis with n equal-width bins spanning
// [min, max).
func RegularAxis(n int, min, max float64) (Axis, error) {
	if n <= 0 {
		return Axis{}, fmt.Errorf("number of bins must be positive; got %d", n)
	}
	if math.IsNaN(min) || math.IsInf(min, 0) || math.IsNaN(max) || math.IsInf(max, 0) {
		return Axis{}, fmt.Errorf("axis range [%g, %g] is not finite", min, max)
	}
	if min >= max {
		return Axis{}, fmt.Errorf("axis range [%g, %g] is not valid; max must be larger than min", min, max)
	}
	return Axis{edges: vec.Linspace(min, max, n+1)}, nil
}

// VariableAxis returns an Axis with the given bin edges, which must
// be finite and strictly increasing. The edges are copied.
func VariableAxis(edges []float64) (Axis, error) {
	if len(edges) < 2 {
		return Axis{}, fmt.Errorf("need at least 2 bin edges; got %d", len(edges))
	}
	for i, e := range edges {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return Axis{}, fmt.Errorf("bin edge %g is not finite", e)
		}
		if i > 0 && edges[i-1] >= e {
			return Axis{}, fmt.Errorf("bin edges must be strictly increasing; got %g after %g", e, edges[i-1])
		}
	}
	return Axis{edges: append([]float64(nil), edges...)}, nil
}

// Bins returns the number of bins on a.
func (a Axis) Bins() int {
	if a.edges == nil {
		return 0
	}
	return len(a.edges) - 1
}

// Edges returns a copy of a's bin edges, one more than the number of
// bins.
func (a Axis) Edges() []float64 {
	return append([]float64(nil), a.edges...)
}

// Min returns the lowest edge of a.
func (a Axis) Min() float64 {
	return a.edges[0]
}

// Max returns the highest edge of a.
func (a Axis) Max() float64 {
	return a.edges[len(a.edges)-1]
}

// Centers returns the midpoints of a's bins.
func (a Axis) Centers() []float64 {
	c := make([]float64, a.Bins())
	for i := range c {
		c[i] = (a.edges[i] + a.edges[i+1]) / 2
	}
	return c
}

// Equal reports whether a and b have exactly equal bin edges. Binning
// comparisons are exact, never tolerance-based: two axes are the same
// binning only if they were constructed from the same edge values.
func (a Axis) Equal(b Axis) bool {
	return floats.Equal(a.edges, b.edges)
}

// find returns the bin containing x, or -1 if x falls outside the
// axis.
func (a Axis) find(x float64) int {
	if x < a.edges[0] || x >= a.edges[len(a.edges)-1] {
		return -1
	}
	i := sort.SearchFloat64s(a.edges, x)
	if i < len(a.edges) && a.edges[i] == x {
		return i
	}
	return i - 1
}
