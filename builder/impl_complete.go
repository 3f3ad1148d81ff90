// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits every ordered pair i→j with i≠j, i asc then j asc, each with its own weight.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import "github.com/lucasccalmon/TrabalhoGrafos/digraph"

// Complete returns a Constructor that builds the complete digraph on n vertices.
func Complete(n int) Constructor {
	return func(g *digraph.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		base := g.AddVertices(n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := addArc(g, cfg, MethodComplete, base+i, base+j, false); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
