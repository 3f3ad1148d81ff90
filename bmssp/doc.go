// SPDX-License-Identifier: MIT

// Package bmssp computes single-source shortest paths on directed graphs with
// non-negative weights using bounded multi-source shortest paths (BMSSP): a
// recursion that partitions the distance range into bounded sub-problems
// instead of sorting the whole frontier through one global priority queue.
//
// Components:
//
//   - ComputeParams derives k, t and the top recursion level from the vertex count.
//   - A base case runs a bounded Dijkstra expansion from a single vertex and
//     settles at most k vertices (more only across a zero-weight plateau).
//   - A pivot step runs k rounds of bounded relaxation from a frontier S and keeps
//     only the roots of large shortest-path subtrees (or all of S if the search
//     grows past k·|S|).
//   - The recursion pulls batches from a frontier.Frontier, solves each batch one
//     level down and feeds newly relaxed vertices back by value range.
//
// All levels share one distance slice and one predecessor slice owned by the
// solve. Ties are handled so that equal distances and zero-weight cycles are
// settled exactly once: a batch whose largest value reaches the separating
// bound is solved under the next representable float above it.
//
// Example:
//
//	g := digraph.New(3)
//	_ = g.AddArc(0, 1, 2)
//	_ = g.AddArc(1, 2, 1)
//	res, err := bmssp.Solve(g, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Dist[2]) // 3
//
// Complexity: O(m log^(2/3) n) comparisons in the model the recursion targets;
// O(n + m) memory for the shared state, plus per-level frontier storage.
//
// Concurrency: a single solve is strictly sequential. SolveMany fans independent
// solves out across goroutines; each owns its own state.
package bmssp
