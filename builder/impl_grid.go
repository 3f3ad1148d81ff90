// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood; cell (r,c) is vertex base + r*cols + c.
//   • For each cell, the Right then Bottom neighbor is connected in both
//     directions with one shared weight.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//
// Complexity:
//   • Time: O(rows*cols).
//   • Space: O(1) extra.

package builder

import "github.com/lucasccalmon/TrabalhoGrafos/digraph"

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *digraph.Graph, cfg builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}
		base := g.AddVertices(rows * cols)
		id := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := addArc(g, cfg, MethodGrid, id(r, c), id(r, c+1), true); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addArc(g, cfg, MethodGrid, id(r, c), id(r+1, c), true); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
