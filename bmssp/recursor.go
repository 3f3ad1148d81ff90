// SPDX-License-Identifier: MIT
// Package: bmssp
//
// recursor.go - the bounded recursion.

package bmssp

import (
	"context"
	"log/slog"
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/lucasccalmon/TrabalhoGrafos/frontier"
)

// recurse settles the vertices reachable from s below bound, as far as the
// level's result limit allows. It returns a bound B' ≤ bound and the set u of
// vertices whose distances are final and lie below B'.
//
// Each iteration pulls the lowest batch S_i with separator x from the level
// frontier and solves it one level down under B_i = x. When the batch reaches x
// (equal values split across the pull) B_i becomes the next float above x so
// the whole batch lies strictly below its bound. Arcs leaving the returned U_i
// are relaxed; a neighbour landing in [B_i, bound) goes straight into the
// frontier and one landing in [B'_i, B_i) is batch-prepended together with the
// members of S_i left unfinished in that range. Vertices already in u are not
// queued again.
//
// The final bound is min(last B'_i, bound, last x), and u gains every
// discovered vertex of the pivot search below it.
func (r *runner) recurse(level int, bound float64, s *roaring.Bitmap) (float64, *roaring.Bitmap) {
	if level == 0 {
		return r.baseCase(bound, s)
	}
	if r.debug {
		r.log.LogAttrs(context.Background(), slog.LevelDebug, "bmssp level",
			slog.Int("level", level),
			slog.Float64("bound", bound),
			slog.Uint64("frontier", s.GetCardinality()))
	}

	p, w := r.findPivots(bound, s)
	d := r.frontierAt(level, bound)
	lastBound := bound
	it := p.Iterator()
	for it.HasNext() {
		x := int(it.Next())
		d.Insert(x, r.dist[x])
		lastBound = min(lastBound, r.dist[x])
	}

	lastSep := bound
	u := roaring.New()
	limit := uint64(r.params.ResultLimit(level))
	var prepend []frontier.Entry
	for u.GetCardinality() < limit && !d.IsEmpty() {
		sep, batch := d.Pull()
		r.stats.Pulls++
		lastSep = sep

		si := roaring.New()
		top := math.Inf(-1)
		for _, e := range batch {
			si.Add(uint32(e.Key))
			top = max(top, e.Value)
		}
		bi := sep
		if top >= bi {
			bi = math.Nextafter(bi, inf)
		}

		subBound, ui := r.recurse(level-1, bi, si)
		lastBound = subBound
		u.Or(ui)

		prepend = prepend[:0]
		uit := ui.Iterator()
		for uit.HasNext() {
			v := int(uit.Next())
			for _, a := range r.g.Arcs(v) {
				nd, ok := r.relax(v, a)
				if !ok || u.Contains(uint32(a.To)) {
					continue
				}
				switch {
				case bi <= nd && nd < bound:
					d.Insert(a.To, nd)
				case subBound <= nd && nd < bi:
					prepend = append(prepend, frontier.Entry{Key: a.To, Value: nd})
				}
			}
		}
		sit := si.Iterator()
		for sit.HasNext() {
			x := sit.Next()
			if u.Contains(x) {
				continue
			}
			if dx := r.dist[x]; subBound <= dx && dx < bi {
				prepend = append(prepend, frontier.Entry{Key: int(x), Value: dx})
			}
		}
		d.BatchPrepend(prepend)
	}

	final := min(lastBound, bound, lastSep)
	wit := w.Iterator()
	for wit.HasNext() {
		v := wit.Next()
		if r.dist[v] < final {
			u.Add(v)
		}
	}

	return final, u
}
