package bellmanford

import (
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/lucasccalmon/TrabalhoGrafos/digraph"
)

// BellmanFord returns shortest distances from source over n vertices and the
// given arcs, with one predecessor record per vertex. Unreachable vertices keep
// +Inf and digraph.NoParent.
//
// Only strict improvements update a predecessor. If a negative cycle is
// reachable from source, dist and pred are nil and ErrNegativeCycle is returned.
func BellmanFord(n int, arcs []WeightedArc, source int) ([]float64, []digraph.Predecessor, error) {
	if source < 0 || source >= n {
		return nil, nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, n)
	}
	for _, a := range arcs {
		if a.From < 0 || a.From >= n || a.To < 0 || a.To >= n {
			return nil, nil, fmt.Errorf("%w: %d→%d with %d vertices", ErrArcOutOfRange, a.From, a.To, n)
		}
		if math.IsNaN(a.Weight) || math.IsInf(a.Weight, 0) {
			return nil, nil, fmt.Errorf("%w: %d→%d has %v", ErrInvalidWeight, a.From, a.To, a.Weight)
		}
	}

	dist := make([]float64, n)
	pred := make([]digraph.Predecessor, n)
	for v := range dist {
		dist[v] = math.Inf(1)
		pred[v] = digraph.Predecessor{Parent: digraph.NoParent}
	}
	dist[source] = 0

	// changed holds the tails worth scanning in the current round.
	changed := bitset.New(uint(n))
	next := bitset.New(uint(n))
	changed.Set(uint(source))
	for round := 1; round < n && changed.Any(); round++ {
		next.ClearAll()
		for _, a := range arcs {
			if !changed.Test(uint(a.From)) {
				continue
			}
			if nd := dist[a.From] + a.Weight; nd < dist[a.To] {
				dist[a.To] = nd
				pred[a.To] = digraph.Predecessor{Parent: a.From, Weight: a.Weight}
				next.Set(uint(a.To))
			}
		}
		changed, next = next, changed
	}

	for _, a := range arcs {
		if math.IsInf(dist[a.From], 1) {
			continue
		}
		if dist[a.From]+a.Weight < dist[a.To] {
			return nil, nil, fmt.Errorf("%w: arc %d→%d still relaxes", ErrNegativeCycle, a.From, a.To)
		}
	}

	return dist, pred, nil
}

// FromGraph lists every arc of g in vertex order, then adjacency order.
func FromGraph(g *digraph.Graph) []WeightedArc {
	if g == nil {
		return nil
	}
	arcs := make([]WeightedArc, 0, g.Size())
	for u := 0; u < g.Order(); u++ {
		for _, a := range g.Arcs(u) {
			arcs = append(arcs, WeightedArc{From: u, To: a.To, Weight: a.Weight})
		}
	}

	return arcs
}
