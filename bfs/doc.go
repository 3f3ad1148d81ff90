// Package bfs provides breadth-first search over a digraph.Graph, returning
// hop distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex,
//     following arcs in their direction and ignoring weights.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: hop count per vertex, Unreached if never enqueued
//   - Parent: BFS-tree predecessor per vertex, digraph.NoParent for the start
//     and for unreached vertices
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual arcs via WithFilterArc.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - The reachable set of a BFS is exactly the set of vertices a
//     shortest-path solver must settle, so it serves as an independent
//     reachability oracle for the weighted solvers.
//
// Determinism
//
//	Arcs are scanned in adjacency order, so the visit sequence is fully
//	reproducible for a given graph.
//
// Complexity (V = |Vertices|, E = |Arcs|)
//
//   - Time:   O(V + E)   (each vertex and arc seen at most once)
//   - Memory: O(V)       (queue, depth, parent, visited bits)
package bfs
