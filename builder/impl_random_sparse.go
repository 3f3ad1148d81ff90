// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like directed generator: each ordered pair (i,j) independently
//     receives the arc i→j with probability p; self-loops only with WithLoops.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc.
//   - Weight drawn right after a successful trial, from the same RNG stream.

package builder

import "github.com/lucasccalmon/TrabalhoGrafos/digraph"

// RandomSparse returns a Constructor that samples a directed random graph over
// n fresh vertices with independent arc probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *digraph.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := validateMin(MethodRandomSparse, "n", n, MinRandomNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		// RNG is only required when 0 < p < 1 (true stochastic sampling).
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return wrapNeedRand(MethodRandomSparse)
		}

		// 2) Append vertices.
		base := g.AddVertices(n)

		// 3) Trials in stable order.
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j && !cfg.loops {
					continue
				}
				if !trial(cfg, p) {
					continue
				}
				if err := addArc(g, cfg, MethodRandomSparse, base+i, base+j, false); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// trial reports a Bernoulli(p) outcome. p ∈ {0,1} is decided without the RNG.
func trial(cfg builderConfig, p float64) bool {
	switch {
	case p <= MinProbability:
		return false
	case p >= MaxProbability:
		return true
	}

	return cfg.rng.Float64() < p
}
