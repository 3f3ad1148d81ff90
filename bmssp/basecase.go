// SPDX-License-Identifier: MIT
// Package: bmssp
//
// basecase.go - bounded single-source expansion at level 0.

package bmssp

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// baseCase expands from the single vertex x in s with Dijkstra order, settling
// vertices whose distance stays below bound.
//
// It stops after k+1 settled vertices once the newest one lies strictly beyond
// dist[x]; a zero-weight plateau at dist[x] is therefore settled completely.
//
//   - Fewer than k+1 settled, or all settled at dist[x]: returns (bound, U0).
//   - Otherwise: returns (B', {v ∈ U0 : dist[v] < B'}), B' = max dist over U0.
//
// A frontier of any size other than one panics with ErrFrontierNotSingleton.
func (r *runner) baseCase(bound float64, s *roaring.Bitmap) (float64, *roaring.Bitmap) {
	if c := s.GetCardinality(); c != 1 {
		panic(fmt.Sprintf("%s: |S|=%d", ErrFrontierNotSingleton.Error(), c))
	}
	r.stats.BaseCases++
	k := r.params.K
	x := int(s.Minimum())
	dx := r.dist[x]

	q := r.baseQueue
	q.Reset(1, bound)
	q.Insert(x, dx)
	u0 := r.u0[:0]
	maxd := dx
	for !q.IsEmpty() {
		_, batch := q.Pull()
		u := batch[0].Key
		r.settled.Set(uint(u))
		u0 = append(u0, u)
		maxd = max(maxd, r.dist[u])
		if len(u0) >= k+1 && maxd > dx {
			break
		}
		for _, a := range r.g.Arcs(u) {
			if r.dist[u]+a.Weight >= bound {
				continue
			}
			if nd, ok := r.relax(u, a); ok && !r.settled.Test(uint(a.To)) {
				q.Insert(a.To, nd)
			}
		}
	}

	out := roaring.New()
	tightened := len(u0) > k && maxd > dx
	for _, v := range u0 {
		r.settled.Clear(uint(v))
		if !tightened || r.dist[v] < maxd {
			out.Add(uint32(v))
		}
	}
	r.u0 = u0
	if tightened {
		return maxd, out
	}

	return bound, out
}
