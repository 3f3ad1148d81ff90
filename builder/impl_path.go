// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Appends n vertices; emits arcs (i-1)→i for i=1..n-1 in increasing order,
//     each followed by i→(i-1) under WithBidirectional.
//
// Complexity:
//   - Time: O(n) vertices + O(n) arcs.
//   - Space: O(1) extra.

package builder

import "github.com/lucasccalmon/TrabalhoGrafos/digraph"

// Path returns a Constructor that builds a directed path P_n.
func Path(n int) Constructor {
	return func(g *digraph.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		base := g.AddVertices(n)
		for i := 1; i < n; i++ {
			if err := addArc(g, cfg, MethodPath, base+i-1, base+i, cfg.bidirectional); err != nil {
				return err
			}
		}

		return nil
	}
}
