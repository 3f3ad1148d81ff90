// Package bellmanford computes single-source shortest paths over arc lists
// that may carry negative weights, and detects negative cycles reachable from
// the source.
//
// Overview:
//
//   - BellmanFord runs at most V-1 relaxation rounds. A round only scans arcs
//     whose tail changed in the previous round, and the loop exits early once a
//     round changes nothing.
//   - A final detection pass reports ErrNegativeCycle if any arc can still be
//     relaxed.
//   - FromGraph flattens a digraph.Graph into the arc-list form.
//
// Complexity:
//
//	– Time:  O(V·E) worst case.
//	– Space: O(V) besides the input.
//
// Example usage:
//
//	dist, pred, err := bellmanford.BellmanFord(6, arcs, 0)
//	if errors.Is(err, bellmanford.ErrNegativeCycle) {
//	    // distances are undefined
//	}
package bellmanford
