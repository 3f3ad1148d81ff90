// SPDX-License-Identifier: MIT
// Package: digraph
//
// graph.go - construction and read access.

package digraph

import (
	"fmt"
	"math"
)

// New returns a graph with n isolated vertices. Negative n is treated as 0.
func New(n int) *Graph {
	if n < 0 {
		n = 0
	}

	return &Graph{adj: make([][]Arc, n)}
}

// FromAdjacency builds a graph from a raw adjacency slice, validating every arc.
// The input slices are copied; later mutation of adj does not affect the graph.
func FromAdjacency(adj [][]Arc) (*Graph, error) {
	g := New(len(adj))
	for u, list := range adj {
		for _, a := range list {
			if err := g.AddArc(u, a.To, a.Weight); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// AddVertex appends a new isolated vertex and returns its index.
func (g *Graph) AddVertex() int {
	g.adj = append(g.adj, nil)

	return len(g.adj) - 1
}

// AddVertices appends n isolated vertices and returns the index of the first one.
func (g *Graph) AddVertices(n int) int {
	first := len(g.adj)
	for i := 0; i < n; i++ {
		g.adj = append(g.adj, nil)
	}

	return first
}

// AddArc appends the arc from→to with weight w to from's adjacency list.
func (g *Graph) AddArc(from, to int, w float64) error {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return fmt.Errorf("%w: arc %d→%d with order %d", ErrVertexOutOfRange, from, to, len(g.adj))
	}
	if err := checkWeight(from, to, w); err != nil {
		return err
	}
	g.adj[from] = append(g.adj[from], Arc{To: to, Weight: w})
	g.arcs++

	return nil
}

// Arcs returns u's outgoing arcs in insertion order. The slice is shared with
// the graph and must not be modified. Out-of-range u yields nil.
func (g *Graph) Arcs(u int) []Arc {
	if !g.HasVertex(u) {
		return nil
	}

	return g.adj[u]
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.adj) }

// Size returns the number of arcs.
func (g *Graph) Size() int { return g.arcs }

// HasVertex reports whether v is a valid vertex index.
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < len(g.adj) }

// Validate re-checks every arc for range and weight constraints.
// The first offending arc is reported.
func (g *Graph) Validate() error {
	n := len(g.adj)
	for u, list := range g.adj {
		for _, a := range list {
			if a.To < 0 || a.To >= n {
				return fmt.Errorf("%w: arc %d→%d with order %d", ErrVertexOutOfRange, u, a.To, n)
			}
			if err := checkWeight(u, a.To, a.Weight); err != nil {
				return err
			}
		}
	}

	return nil
}

func checkWeight(from, to int, w float64) error {
	switch {
	case math.IsNaN(w) || math.IsInf(w, 0):
		return fmt.Errorf("%w: arc %d→%d weight=%v", ErrInvalidWeight, from, to, w)
	case w < 0:
		return fmt.Errorf("%w: arc %d→%d weight=%v", ErrNegativeWeight, from, to, w)
	}

	return nil
}
