// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Appends n vertices; emits i→(i+1) mod n for i asc (mirrored under WithBidirectional).
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/lucasccalmon/TrabalhoGrafos/digraph"

// Cycle returns a Constructor that builds an n-vertex directed cycle C_n.
func Cycle(n int) Constructor {
	return func(g *digraph.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		base := g.AddVertices(n)
		for i := 0; i < n; i++ {
			if err := addArc(g, cfg, MethodCycle, base+i, base+(i+1)%n, cfg.bidirectional); err != nil {
				return err
			}
		}

		return nil
	}
}
