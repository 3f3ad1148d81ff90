// SPDX-License-Identifier: MIT
package bmssp_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasccalmon/TrabalhoGrafos/bmssp"
)

func TestSolveManyMatchesSolve(t *testing.T) {
	g := randomGraph(rand.New(rand.NewSource(21)), 80, 320, 5)
	sources := []int{5, 0, 79, 5, 42}

	results, err := bmssp.SolveMany(context.Background(), g, sources, bmssp.WithParallelism(3))
	require.NoError(t, err)
	require.Len(t, results, len(sources))
	for i, src := range sources {
		assert.Equal(t, src, results[i].Source)
		single, err := bmssp.Solve(g, src)
		require.NoError(t, err)
		assert.Equal(t, single.Dist, results[i].Dist, "source %d", src)
		assert.Equal(t, single.Pred, results[i].Pred, "source %d", src)
	}
}

func TestSolveManyErrors(t *testing.T) {
	g := fiveVertex(t)

	_, err := bmssp.SolveMany(context.Background(), nil, []int{0})
	assert.ErrorIs(t, err, bmssp.ErrNilGraph)

	_, err = bmssp.SolveMany(context.Background(), g, []int{0, 9, 1})
	assert.ErrorIs(t, err, bmssp.ErrSourceOutOfRange)
	assert.ErrorContains(t, err, "source 9")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bmssp.SolveMany(ctx, g, []int{0, 1})
	assert.ErrorIs(t, err, context.Canceled)

	results, err := bmssp.SolveMany(context.Background(), g, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestMetricsCollector(t *testing.T) {
	m := &bmssp.BasicMetricsCollector{}
	g := fiveVertex(t)

	_, err := bmssp.SolveMany(context.Background(), g, []int{0, 1, 2, 3}, bmssp.WithMetrics(m), bmssp.WithParallelism(4))
	require.NoError(t, err)
	_, err = bmssp.Solve(g, 7, bmssp.WithMetrics(m))
	require.Error(t, err)

	assert.EqualValues(t, 5, m.Solves.Load())
	assert.EqualValues(t, 1, m.Errors.Load())
	assert.Positive(t, m.Relaxations.Load())
	assert.Positive(t, m.BaseCases.Load())
	assert.Positive(t, m.Pulls.Load())
	assert.GreaterOrEqual(t, m.AvgNanos(), int64(0))
	assert.Zero(t, (&bmssp.BasicMetricsCollector{}).AvgNanos())
}
