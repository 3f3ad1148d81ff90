// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The first appended vertex is the center; arcs center→leaf for each leaf asc
//     (mirrored under WithBidirectional).
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/lucasccalmon/TrabalhoGrafos/digraph"

// Star returns a Constructor that builds a star with one center and n-1 leaves.
func Star(n int) Constructor {
	return func(g *digraph.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		center := g.AddVertices(n)
		for i := 1; i < n; i++ {
			if err := addArc(g, cfg, MethodStar, center, center+i, cfg.bidirectional); err != nil {
				return err
			}
		}

		return nil
	}
}
