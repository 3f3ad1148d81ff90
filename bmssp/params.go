// SPDX-License-Identifier: MIT
// Package: bmssp
//
// params.go - recursion parameters derived from the vertex count.

package bmssp

import (
	"fmt"
	"math"
	"math/bits"
)

// Params are the tuning constants of one solve.
//
//	K      - pivot width and base-case size
//	T      - log2 of the per-level batch growth
//	Levels - top recursion level
type Params struct {
	K      int
	T      int
	Levels int
}

// ComputeParams derives Params for n vertices. With lg = log2 n:
//
//	K      = floor(lg^(1/3))
//	T      = floor(lg^(2/3))
//	Levels = ceil(lg / T)
//
// each clamped to at least 1; n ≤ 2 yields {1, 1, 1}. The cube root is taken
// with math.Cbrt and T as floor(cbrt(lg)²) so exact cubes stay exact.
func ComputeParams(n int) Params {
	if n <= 2 {
		return Params{K: 1, T: 1, Levels: 1}
	}
	lg := math.Log2(float64(n))
	c := math.Cbrt(lg)
	p := Params{
		K: max(1, int(math.Floor(c))),
		T: max(1, int(math.Floor(c*c))),
	}
	p.Levels = max(1, int(math.Ceil(lg/float64(p.T))))

	return p
}

// Validate reports ErrBadParams if any field is below 1.
func (p Params) Validate() error {
	if p.K < 1 || p.T < 1 || p.Levels < 1 {
		return fmt.Errorf("%w: k=%d t=%d levels=%d", ErrBadParams, p.K, p.T, p.Levels)
	}

	return nil
}

// BatchSize returns M = 2^((level-1)·T), the pull size of a frontier at level.
// Levels below 1 yield 1. The result saturates at math.MaxInt.
func (p Params) BatchSize(level int) int {
	if level < 1 {
		return 1
	}

	return satShl(1, (level-1)*p.T)
}

// ResultLimit returns K²·2^(level·T), the number of vertices after which a
// call at level stops pulling. The result saturates at math.MaxInt.
func (p Params) ResultLimit(level int) int {
	k2 := p.K * p.K
	if p.K > 0 && k2/p.K != p.K {
		return math.MaxInt
	}

	return satShl(k2, level*p.T)
}

// covers reports whether the top level is allowed to settle all n vertices.
func (p Params) covers(n int) bool {
	return p.ResultLimit(p.Levels) >= n
}

// satShl returns x << s, or math.MaxInt if that would overflow.
func satShl(x, s int) int {
	if x <= 0 {
		return x
	}
	if s < 0 {
		s = 0
	}
	if s >= bits.UintSize-1 || x > math.MaxInt>>uint(s) {
		return math.MaxInt
	}

	return x << uint(s)
}
