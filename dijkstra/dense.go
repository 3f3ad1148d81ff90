package dijkstra

import (
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/lucasccalmon/TrabalhoGrafos/digraph"
)

// Dense computes shortest distances from source by scanning every vertex for
// the closest unsettled one instead of using a heap. Arcs are relaxed only on
// strict improvement. The predecessor slice is always returned.
//
// Validation matches Dijkstra (ErrNilGraph, ErrVertexNotFound).
//
// Complexity: O(V² + E) time, O(V) space.
func Dense(g *digraph.Graph, source int) ([]float64, []digraph.Predecessor, error) {
	if err := validate(g, source); err != nil {
		return nil, nil, err
	}

	V := g.Order()
	dist := make([]float64, V)
	prev := make([]digraph.Predecessor, V)
	for v := range dist {
		dist[v] = math.Inf(1)
		prev[v] = digraph.Predecessor{Parent: digraph.NoParent}
	}
	dist[source] = 0
	visited := bitset.New(uint(V))

	for range V {
		u, best := -1, math.Inf(1)
		for v := 0; v < V; v++ {
			if !visited.Test(uint(v)) && dist[v] < best {
				u, best = v, dist[v]
			}
		}
		// Remaining vertices are unreachable.
		if u < 0 {
			break
		}
		visited.Set(uint(u))
		for _, a := range g.Arcs(u) {
			if nd := best + a.Weight; nd < dist[a.To] {
				dist[a.To] = nd
				prev[a.To] = digraph.Predecessor{Parent: u, Weight: a.Weight}
			}
		}
	}

	return dist, prev, nil
}
