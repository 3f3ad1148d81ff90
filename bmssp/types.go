// SPDX-License-Identifier: MIT
// Package: bmssp
//
// types.go - sentinel errors, options and result types.

package bmssp

import (
	"errors"
	"log/slog"

	"github.com/lucasccalmon/TrabalhoGrafos/digraph"
)

// Sentinel errors returned by the bmssp package.
var (
	// ErrNilGraph indicates that a nil *digraph.Graph was passed in.
	ErrNilGraph = errors.New("bmssp: graph is nil")

	// ErrSourceOutOfRange indicates a source outside 0..Order()-1.
	ErrSourceOutOfRange = errors.New("bmssp: source vertex out of range")

	// ErrTooManyVertices indicates a graph whose vertices do not fit the
	// 32-bit vertex sets used by the recursion.
	ErrTooManyVertices = errors.New("bmssp: too many vertices")

	// ErrBadParams indicates parameters below 1, or an override too small to
	// cover every vertex at the top level.
	ErrBadParams = errors.New("bmssp: invalid parameters")

	// ErrBadParallelism indicates a parallelism below 1.
	ErrBadParallelism = errors.New("bmssp: parallelism must be >= 1")

	// ErrFrontierNotSingleton is the panic text raised when the base case is
	// entered with a frontier of size other than one.
	ErrFrontierNotSingleton = errors.New("bmssp: base case requires a singleton frontier")
)

// Options configures Solve and SolveMany.
type Options struct {
	Logger      *slog.Logger     // Debug records per solve and per level
	Metrics     MetricsCollector // receives one RecordSolve per solve
	Params      *Params          // overrides ComputeParams when non-nil
	Parallelism int              // SolveMany worker bound
}

// Option represents a functional option for configuring a solve.
type Option func(*Options)

// WithLogger routes debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("bmssp: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMetrics installs a metrics collector. Panics on nil.
func WithMetrics(m MetricsCollector) Option {
	if m == nil {
		panic("bmssp: WithMetrics(nil)")
	}
	return func(o *Options) {
		o.Metrics = m
	}
}

// WithParams fixes k, t and the top level instead of deriving them from the
// vertex count. Panics if any field is below 1. Solve additionally rejects
// parameters whose top-level result limit is smaller than the vertex count.
func WithParams(p Params) Option {
	if err := p.Validate(); err != nil {
		panic(err.Error())
	}
	return func(o *Options) {
		o.Params = &p
	}
}

// WithParallelism bounds the number of concurrent solves in SolveMany.
// Panics if p < 1.
func WithParallelism(p int) Option {
	if p < 1 {
		panic(ErrBadParallelism.Error())
	}
	return func(o *Options) {
		o.Parallelism = p
	}
}

// DefaultOptions returns the defaults: a discarding logger, a no-op metrics
// collector, derived parameters and parallelism 1.
func DefaultOptions() Options {
	return Options{
		Logger:      slog.New(slog.DiscardHandler),
		Metrics:     NoopMetricsCollector{},
		Parallelism: 1,
	}
}

// Stats counts the work done by one solve.
type Stats struct {
	Relaxations   int64 // successful relaxations (distance matched or improved)
	BaseCases     int64 // base-case invocations
	PivotSearches int64 // pivot-finding invocations
	PivotAborts   int64 // pivot searches that exceeded k·|S| and kept all of S
	Pulls         int64 // frontier batches pulled
	Settled       int   // vertices with a finite distance at the end
}

// Result is the outcome of one solve.
//
// Dist[v] is +Inf for vertices unreachable from Source. Pred[v].Parent is
// digraph.NoParent for Source and for unreachable vertices.
type Result struct {
	Source int
	Dist   []float64
	Pred   []digraph.Predecessor
	Params Params
	Stats  Stats
}

// PathTo reconstructs one shortest path from Source to target.
func (r *Result) PathTo(target int) ([]int, float64, error) {
	return digraph.PathTo(r.Pred, r.Source, target)
}

// Reachable reports whether v has a finite distance.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] < inf
}
