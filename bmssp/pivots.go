// SPDX-License-Identifier: MIT
// Package: bmssp
//
// pivots.go - bounded relaxation rounds and pivot selection.

package bmssp

import "github.com/RoaringBitmap/roaring/v2"

// findPivots runs k layers of relaxation outward from s, keeping vertices whose
// distance stays below bound, and returns the pivot set p and the discovered
// set w (w ⊇ s).
//
// If w grows beyond k·|s| the search stops early and every vertex of s is a
// pivot. Otherwise the tight predecessor forest restricted to w is built and p
// holds the vertices of s whose subtree has at least k vertices.
//
// Complexity: O(k·|w| + arcs scanned) time, O(|w|) extra space.
func (r *runner) findPivots(bound float64, s *roaring.Bitmap) (p, w *roaring.Bitmap) {
	r.stats.PivotSearches++
	k := r.params.K
	limit := uint64(k) * s.GetCardinality()

	w = s.Clone()
	layer := s
	for round := 0; round < k; round++ {
		next := roaring.New()
		it := layer.Iterator()
		for it.HasNext() {
			u := int(it.Next())
			for _, a := range r.g.Arcs(u) {
				if nd, ok := r.relax(u, a); ok && nd < bound {
					next.Add(uint32(a.To))
				}
			}
		}
		w.Or(next)
		layer = next
		if w.GetCardinality() > limit {
			r.stats.PivotAborts++
			return s.Clone(), w
		}
	}

	sizes := r.subtreeSizes(w)
	p = roaring.New()
	it := s.Iterator()
	for it.HasNext() {
		u := it.Next()
		size, ok := sizes[int(u)]
		if !ok {
			size = 1
		}
		if size >= k {
			p.Add(u)
		}
	}

	return p, w
}

// subtreeSizes builds the forest of tight predecessor links inside w (v hangs
// under pred[v] when both are in w and dist[v] == dist[parent] + weight) and
// returns the subtree size of every vertex reached from a root.
func (r *runner) subtreeSizes(w *roaring.Bitmap) map[int]int {
	children := make(map[int][]int)
	hasParent := roaring.New()
	it := w.Iterator()
	for it.HasNext() {
		v := int(it.Next())
		pr := r.pred[v]
		if pr.Unset() || !w.Contains(uint32(pr.Parent)) {
			continue
		}
		if r.dist[v] == r.dist[pr.Parent]+pr.Weight {
			children[pr.Parent] = append(children[pr.Parent], v)
			hasParent.Add(uint32(v))
		}
	}

	type frame struct {
		v    int
		done bool
	}
	sizes := make(map[int]int, w.GetCardinality())
	var stack []frame
	roots := roaring.AndNot(w, hasParent)
	it = roots.Iterator()
	for it.HasNext() {
		stack = append(stack[:0], frame{v: int(it.Next())})
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if f.done {
				size := 1
				for _, c := range children[f.v] {
					size += sizes[c]
				}
				sizes[f.v] = size
				continue
			}
			stack = append(stack, frame{v: f.v, done: true})
			for _, c := range children[f.v] {
				stack = append(stack, frame{v: c})
			}
		}
	}

	return sizes
}
