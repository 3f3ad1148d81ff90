// Package dijkstra implements Dijkstra's shortest-path algorithm on digraph.Graph.
//
// Notes on implementation choices:
//
//   - Arc weights are known to be finite and non-negative: digraph.Graph rejects anything else.
//   - We treat any arc with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/lucasccalmon/TrabalhoGrafos/digraph"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance to v (+Inf if unreachable or beyond MaxDistance).
//   - prev: predecessor records if ReturnPath=true (nil otherwise).
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrNoSource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *digraph.Graph, opts ...Option) ([]float64, []digraph.Predecessor, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if err := validate(g, cfg.Source); err != nil {
		return nil, nil, err
	}

	// 3) Prepare state and run.
	V := g.Order()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]float64, V),
		prev:    make([]digraph.Predecessor, V),
		visited: bitset.New(uint(V)),
		pq:      make(nodePQ, 0, V),
	}
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// validate applies the shared precondition checks of Dijkstra and Dense.
func validate(g *digraph.Graph, source int) error {
	if source == noSource {
		return ErrNoSource
	}
	if g == nil {
		return ErrNilGraph
	}
	if !g.HasVertex(source) {
		return fmt.Errorf("%w: %d", ErrVertexNotFound, source)
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *digraph.Graph        // The input graph; read-only within Dijkstra.
	options Options               // Configuration options (Source, thresholds, etc.).
	dist    []float64             // Current best distance from Source.
	prev    []digraph.Predecessor // Predecessor on the shortest path.
	visited *bitset.BitSet        // Vertices whose distance is final.
	pq      nodePQ                // Min-heap of nodeItem for lazy priority queue.
}

// init sets dist to +Inf everywhere except Source and pushes Source onto the heap.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = math.Inf(1)
		r.prev[v] = digraph.Predecessor{Parent: digraph.NoParent}
	}
	r.dist[r.options.Source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: r.options.Source, dist: 0})
}

// process is the core loop: pop the closest unsettled vertex and relax its arcs.
// It stops when the heap is empty or the next distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id

		// Skip stale heap entries.
		if r.visited.Test(uint(u)) {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited.Set(uint(u))
		r.relax(u)
	}
}

// relax improves the neighbours of u. Arcs at or above InfEdgeThreshold are
// skipped, as are candidates beyond MaxDistance or not strictly better.
func (r *runner) relax(u int) {
	for _, a := range r.g.Arcs(u) {
		if a.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.dist[u] + a.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// “<” rather than “≤” avoids pushing duplicates when distances are equal.
		if newDist >= r.dist[a.To] {
			continue
		}
		r.dist[a.To] = newDist
		r.prev[a.To] = digraph.Predecessor{Parent: u, Weight: a.Weight}
		heap.Push(&r.pq, nodeItem{id: a.To, dist: newDist})
	}
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of nodeItem ordered by dist, then id.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
