// SPDX-License-Identifier: MIT
// Package: bmssp
//
// bmssp.go - public entry point.

package bmssp

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/lucasccalmon/TrabalhoGrafos/digraph"
)

// Solve computes shortest distances from source to every vertex of g.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be a vertex of g (ErrSourceOutOfRange).
//  3. g must fit 32-bit vertex sets (ErrTooManyVertices).
//  4. every arc must be finite and non-negative (digraph.ErrNegativeWeight,
//     digraph.ErrInvalidWeight).
//  5. overridden Params must cover all vertices at the top level (ErrBadParams).
//
// Unreachable vertices keep +Inf and no parent; they are not an error.
func Solve(g *digraph.Graph, source int, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return solve(g, source, cfg)
}

func solve(g *digraph.Graph, source int, cfg Options) (*Result, error) {
	start := time.Now()
	res, err := run(g, source, cfg)
	elapsed := time.Since(start)

	var n, m int
	var stats Stats
	if g != nil {
		n, m = g.Order(), g.Size()
	}
	if res != nil {
		stats = res.Stats
	}
	cfg.Metrics.RecordSolve(n, m, stats, elapsed, err)
	if err != nil {
		cfg.Logger.Debug("bmssp solve failed", "source", source, "err", err)
		return nil, err
	}
	cfg.Logger.Debug("bmssp solve done",
		"source", source,
		"settled", stats.Settled,
		"relaxations", stats.Relaxations,
		"pulls", stats.Pulls,
		"duration", elapsed)

	return res, nil
}

func run(g *digraph.Graph, source int, cfg Options) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Order()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, n)
	}
	if uint64(n) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d", ErrTooManyVertices, n)
	}
	if err := g.Validate(); err != nil {
		return nil, fmt.Errorf("bmssp: %w", err)
	}

	p := ComputeParams(n)
	if cfg.Params != nil {
		p = *cfg.Params
		if !p.covers(n) {
			return nil, fmt.Errorf("%w: k²·2^(levels·t)=%d < %d vertices", ErrBadParams, p.ResultLimit(p.Levels), n)
		}
	}

	log := cfg.Logger.With(slog.Int("n", n), slog.Int("m", g.Size()))
	log.Debug("bmssp solve start",
		"source", source, "k", p.K, "t", p.T, "levels", p.Levels)

	r := newRunner(g, source, p, log)
	r.recurse(p.Levels, inf, singleton(source))

	for _, d := range r.dist {
		if d < inf {
			r.stats.Settled++
		}
	}

	return &Result{
		Source: source,
		Dist:   r.dist,
		Pred:   r.pred,
		Params: p,
		Stats:  r.stats,
	}, nil
}
