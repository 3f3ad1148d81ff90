// Package dijkstra provides the classic shortest-path baselines for
// digraph.Graph: a binary-heap Dijkstra and a dense O(V²) selection-scan
// variant.
//
// Overview:
//
//   - Dijkstra expands the closest unsettled vertex next, using a min-heap with
//     lazy decrease-key. Options add path reconstruction, a distance cap and an
//     impassable-arc threshold.
//   - Dense scans all vertices for the next closest one instead of using a heap.
//     It suits dense graphs and mirrors the textbook matrix formulation.
//
// Both return dist[v] = +Inf for unreachable vertices and predecessor records
// with Parent = digraph.NoParent for the source and for unreachable vertices.
// Only strict improvements update a predecessor.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:        no Source option was given.
//   - ErrNilGraph:        nil graph.
//   - ErrVertexNotFound:  source not in the graph.
//   - ErrBadMaxDistance:  panic value of WithMaxDistance for negative input.
//   - ErrBadInfThreshold: panic value of WithInfEdgeThreshold for non-positive input.
//
// Thread safety: the graph is only read; concurrent calls on the same graph are safe.
package dijkstra
