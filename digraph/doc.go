// SPDX-License-Identifier: MIT

// Package digraph provides the dense, index-addressed directed graph that every
// shortest-path solver in this module consumes.
//
// Vertices are the integers 0..n-1. Each vertex owns an ordered adjacency list of
// Arc{To, Weight}; arcs keep insertion order, self-loops and parallel arcs are
// allowed. Weights are float64 and must be finite and non-negative.
//
// The package also defines the predecessor record shared by the solvers
// (Predecessor, NoParent) and PathTo, which walks parent links back to a source.
//
// Complexity:
//
//   - AddVertex / AddArc / Arcs: O(1) amortized.
//   - Validate: O(V + E).
//   - PathTo: O(V) worst case.
//
// Errors (sentinel):
//
//   - ErrVertexOutOfRange if an endpoint is not in 0..n-1.
//   - ErrNegativeWeight   if an arc weight is < 0.
//   - ErrInvalidWeight    if an arc weight is NaN or ±Inf.
//   - ErrUnreachable      if PathTo is asked for a vertex without a parent chain.
//   - ErrBrokenPath       if the parent chain loops or never reaches the source.
//
// Concurrency: a Graph is not safe for concurrent mutation; once built it may be
// read by any number of goroutines.
package digraph
