// SPDX-License-Identifier: MIT
// Package: digraph
//
// path.go - shortest-path reconstruction from a predecessor array.

package digraph

import (
	"fmt"
	"slices"
)

// PathTo walks pred from target back to source and returns the vertex sequence
// source→target together with the sum of the recorded arc weights.
//
// The walk is bounded by len(pred)-1 steps; a chain that runs longer, leaves the
// index range, or ends at a vertex other than source yields ErrBrokenPath.
// A target without a parent (other than source itself) yields ErrUnreachable.
//
// Complexity: O(V) time, O(path length) space.
func PathTo(pred []Predecessor, source, target int) ([]int, float64, error) {
	n := len(pred)
	if source < 0 || source >= n || target < 0 || target >= n {
		return nil, 0, fmt.Errorf("%w: source=%d target=%d order=%d", ErrVertexOutOfRange, source, target, n)
	}
	if target == source {
		return []int{source}, 0, nil
	}
	if pred[target].Unset() {
		return nil, 0, fmt.Errorf("%w: %d", ErrUnreachable, target)
	}

	path := []int{target}
	var total float64
	cur := target
	for steps := 0; cur != source; steps++ {
		if steps >= n-1 {
			return nil, 0, fmt.Errorf("%w: walk from %d exceeded %d steps", ErrBrokenPath, target, n-1)
		}
		p := pred[cur]
		if p.Unset() || p.Parent < 0 || p.Parent >= n {
			return nil, 0, fmt.Errorf("%w: chain from %d stops at %d", ErrBrokenPath, target, cur)
		}
		total += p.Weight
		cur = p.Parent
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, total, nil
}
