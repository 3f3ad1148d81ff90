// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/lucasccalmon/TrabalhoGrafos/digraph"
)

// Constructor appends vertices and arcs to g using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters before touching g and return sentinel errors.
//   - Append their own vertices (g.AddVertices) and address them by offset.
//   - Emit arcs in a stable, documented order.
type Constructor func(g *digraph.Graph, cfg builderConfig) error

// BuildGraph creates an empty digraph.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error is
// wrapped with the context "BuildGraph: %w" and returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*digraph.Graph, error) {
	g := digraph.New(0)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addArc draws a weight from cfg and appends u→v (and v→u when symmetric is set).
func addArc(g *digraph.Graph, cfg builderConfig, method string, u, v int, symmetric bool) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddArc(u, v, w); err != nil {
		return fmt.Errorf("%s: AddArc(%d→%d, w=%g): %w", method, u, v, w, err)
	}
	if symmetric {
		if err := g.AddArc(v, u, w); err != nil {
			return fmt.Errorf("%s: AddArc(%d→%d, w=%g): %w", method, v, u, w, err)
		}
	}

	return nil
}
