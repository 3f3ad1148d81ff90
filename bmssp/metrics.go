// SPDX-License-Identifier: MIT
// Package: bmssp
//
// metrics.go - hooks for collecting per-solve metrics.

package bmssp

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives one record per solve.
// Implementations must be safe for concurrent use when SolveMany runs with
// parallelism above 1. See the metrics package for a Prometheus implementation.
type MetricsCollector interface {
	// RecordSolve is called after every Solve. stats is zero when err != nil.
	RecordSolve(vertices, arcs int, stats Stats, duration time.Duration, err error)
}

// NoopMetricsCollector discards everything.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSolve(int, int, Stats, time.Duration, error) {}

// BasicMetricsCollector keeps in-memory atomic totals.
type BasicMetricsCollector struct {
	Solves      atomic.Int64
	Errors      atomic.Int64
	TotalNanos  atomic.Int64
	Relaxations atomic.Int64
	BaseCases   atomic.Int64
	Pulls       atomic.Int64
}

// RecordSolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSolve(_, _ int, stats Stats, duration time.Duration, err error) {
	b.Solves.Add(1)
	b.TotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.Errors.Add(1)
		return
	}
	b.Relaxations.Add(stats.Relaxations)
	b.BaseCases.Add(stats.BaseCases)
	b.Pulls.Add(stats.Pulls)
}

// AvgNanos returns the mean solve duration in nanoseconds.
func (b *BasicMetricsCollector) AvgNanos() int64 {
	n := b.Solves.Load()
	if n == 0 {
		return 0
	}

	return b.TotalNanos.Load() / n
}
