package converters

import (
	"cmp"
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/dominikbraun/graph"

	"github.com/lucasccalmon/TrabalhoGrafos/digraph"
)

// maxExactWeight is the largest integer weight whose float64 sums stay exact
// for short paths.
const maxExactWeight = 1 << 40

// ToDominik exports g as a directed, weighted graph.Graph[int, int] whose
// vertex hashes are the digraph indices. Parallel arcs collapse to the lightest.
func ToDominik(g *digraph.Graph) (graph.Graph[int, int], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	dg := graph.New(graph.IntHash, graph.Directed(), graph.Weighted())
	for v := 0; v < g.Order(); v++ {
		if err := dg.AddVertex(v); err != nil {
			return nil, fmt.Errorf("converters: AddVertex(%d): %w", v, err)
		}
	}

	lightest := make(map[int]int)
	for u := 0; u < g.Order(); u++ {
		clear(lightest)
		for _, a := range g.Arcs(u) {
			if a.Weight != math.Trunc(a.Weight) || a.Weight > maxExactWeight {
				return nil, fmt.Errorf("%w: %d→%d has %v", ErrNonIntegralWeight, u, a.To, a.Weight)
			}
			w := int(a.Weight)
			if cur, ok := lightest[a.To]; !ok || w < cur {
				lightest[a.To] = w
			}
		}
		for _, v := range slices.Sorted(maps.Keys(lightest)) {
			if err := dg.AddEdge(u, v, graph.EdgeWeight(lightest[v])); err != nil {
				return nil, fmt.Errorf("converters: AddEdge(%d→%d): %w", u, v, err)
			}
		}
	}

	return dg, nil
}

// FromDominik imports a directed dominikbraun graph. Vertices are numbered by
// ascending hash; keys[i] is the hash of vertex i. Edge weights become float64
// arc weights, so negative weights fail with digraph.ErrNegativeWeight.
func FromDominik[K cmp.Ordered, T any](dg graph.Graph[K, T]) (*digraph.Graph, []K, error) {
	if dg == nil {
		return nil, nil, ErrNilGraph
	}
	if !dg.Traits().IsDirected {
		return nil, nil, ErrUndirected
	}
	adj, err := dg.AdjacencyMap()
	if err != nil {
		return nil, nil, fmt.Errorf("converters: AdjacencyMap: %w", err)
	}

	keys := slices.Sorted(maps.Keys(adj))
	index := make(map[K]int, len(keys))
	for i, k := range keys {
		index[k] = i
	}

	g := digraph.New(len(keys))
	for i, k := range keys {
		out := adj[k]
		for _, t := range slices.Sorted(maps.Keys(out)) {
			if err := g.AddArc(i, index[t], float64(out[t].Properties.Weight)); err != nil {
				return nil, nil, fmt.Errorf("converters: edge %v→%v: %w", k, t, err)
			}
		}
	}

	return g, keys, nil
}
