// SPDX-License-Identifier: MIT
// Package: bmssp
//
// runner.go - shared mutable state of one solve and the relaxation rule.

package bmssp

import (
	"context"
	"log/slog"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/lucasccalmon/TrabalhoGrafos/digraph"
	"github.com/lucasccalmon/TrabalhoGrafos/frontier"
)

var inf = math.Inf(1)

// runner holds the state shared by every recursion level of one solve.
type runner struct {
	g      *digraph.Graph
	params Params
	log    *slog.Logger
	debug  bool

	dist []float64             // shared distance array
	pred []digraph.Predecessor // shared predecessor array

	// frontiers[l] is reused by the single active call at level l.
	frontiers []*frontier.Frontier
	// base-case scratch: a batch-size-1 frontier and the settled flags.
	baseQueue *frontier.Frontier
	settled   *bitset.BitSet
	u0        []int

	stats Stats
}

func newRunner(g *digraph.Graph, source int, p Params, log *slog.Logger) *runner {
	n := g.Order()
	r := &runner{
		g:         g,
		params:    p,
		log:       log,
		debug:     log.Enabled(context.Background(), slog.LevelDebug),
		dist:      make([]float64, n),
		pred:      make([]digraph.Predecessor, n),
		frontiers: make([]*frontier.Frontier, p.Levels+1),
		baseQueue: frontier.New(1, inf),
		settled:   bitset.New(uint(n)),
		u0:        make([]int, 0, p.K+1),
	}
	for v := range r.dist {
		r.dist[v] = inf
		r.pred[v] = digraph.Predecessor{Parent: digraph.NoParent}
	}
	r.dist[source] = 0

	return r
}

// frontierAt returns the reset frontier for level.
func (r *runner) frontierAt(level int, bound float64) *frontier.Frontier {
	m := r.params.BatchSize(level)
	if f := r.frontiers[level]; f != nil {
		f.Reset(m, bound)
		return f
	}
	f := frontier.New(m, bound)
	r.frontiers[level] = f

	return f
}

// relax tries the arc u→a.To. It succeeds when the candidate distance is
// finite and no larger than the current one. The predecessor moves on a strict
// improvement, and on a tie only through a positive-weight arc, which keeps
// predecessor links acyclic across zero-weight cycles.
func (r *runner) relax(u int, a digraph.Arc) (float64, bool) {
	nd := r.dist[u] + a.Weight
	if nd > r.dist[a.To] || math.IsInf(nd, 1) {
		return nd, false
	}
	if nd < r.dist[a.To] || a.Weight > 0 {
		r.pred[a.To] = digraph.Predecessor{Parent: u, Weight: a.Weight}
	}
	r.dist[a.To] = nd
	r.stats.Relaxations++

	return nd, true
}

func singleton(v int) *roaring.Bitmap {
	return roaring.BitmapOf(uint32(v))
}
