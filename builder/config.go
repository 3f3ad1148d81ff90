// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng           = nil                 (pure/deterministic unless seeded)
//   • weightFn      = DefaultWeightFn     (constant DefaultEdgeWeight)
//   • loops         = false               (RandomSparse skips i==j)
//   • bidirectional = false               (Path/Cycle/Star emit one direction)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for arcs.
	weightFn WeightFn
	// loops lets RandomSparse emit self-loops.
	loops bool
	// bidirectional mirrors every arc of Path, Cycle and Star.
	bidirectional bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
