// SPDX-License-Identifier: MIT
// Package: digraph
//
// types.go - graph, arc and predecessor types plus sentinel errors.

package digraph

import "errors"

// Sentinel errors returned by the digraph package.
var (
	// ErrVertexOutOfRange indicates a vertex index outside 0..Order()-1.
	ErrVertexOutOfRange = errors.New("digraph: vertex out of range")

	// ErrNegativeWeight indicates an arc with weight < 0.
	ErrNegativeWeight = errors.New("digraph: negative arc weight")

	// ErrInvalidWeight indicates an arc weight that is NaN or infinite.
	ErrInvalidWeight = errors.New("digraph: arc weight must be finite")

	// ErrUnreachable indicates that the target has no recorded parent chain.
	ErrUnreachable = errors.New("digraph: target unreachable from source")

	// ErrBrokenPath indicates that the parent chain never reaches the source.
	ErrBrokenPath = errors.New("digraph: predecessor chain does not reach source")
)

// NoParent marks a vertex with no recorded predecessor.
const NoParent = -1

// Arc is one outgoing edge of a vertex.
type Arc struct {
	To     int     // head vertex
	Weight float64 // finite, >= 0
}

// Predecessor records the arc that last relaxed a vertex.
// Parent == NoParent means unset (the source, or an unreachable vertex).
type Predecessor struct {
	Parent int
	Weight float64
}

// Unset reports whether no parent has been recorded.
func (p Predecessor) Unset() bool { return p.Parent == NoParent }

// Graph is a directed graph over the vertices 0..n-1.
type Graph struct {
	adj  [][]Arc
	arcs int
}
