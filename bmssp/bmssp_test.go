// SPDX-License-Identifier: MIT
package bmssp_test

import (
	"bytes"
	"log/slog"
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasccalmon/TrabalhoGrafos/bfs"
	"github.com/lucasccalmon/TrabalhoGrafos/bmssp"
	"github.com/lucasccalmon/TrabalhoGrafos/builder"
	"github.com/lucasccalmon/TrabalhoGrafos/digraph"
	"github.com/lucasccalmon/TrabalhoGrafos/dijkstra"
)

var inf = math.Inf(1)

func mustGraph(t testing.TB, n int, arcs [][3]float64) *digraph.Graph {
	t.Helper()
	g := digraph.New(n)
	for _, a := range arcs {
		require.NoError(t, g.AddArc(int(a[0]), int(a[1]), a[2]))
	}

	return g
}

// fiveVertex is the small reference graph used across tests and examples.
func fiveVertex(t testing.TB) *digraph.Graph {
	return mustGraph(t, 5, [][3]float64{
		{0, 1, 4}, {0, 2, 2}, {1, 2, 3}, {1, 3, 2}, {1, 4, 3},
		{2, 1, 1}, {2, 3, 4}, {2, 4, 5}, {4, 3, 1},
	})
}

// randomGraph draws arcs with integer weights in [0, maxW] so that ties and
// zero-weight cycles are frequent.
func randomGraph(rng *rand.Rand, n, m, maxW int) *digraph.Graph {
	g := digraph.New(n)
	for i := 0; i < m; i++ {
		_ = g.AddArc(rng.Intn(n), rng.Intn(n), float64(rng.Intn(maxW+1)))
	}

	return g
}

// checkAgainstDijkstra compares distances and verifies every predecessor chain.
func checkAgainstDijkstra(t *testing.T, g *digraph.Graph, src int, res *bmssp.Result) {
	t.Helper()
	want, _, err := dijkstra.Dijkstra(g, dijkstra.Source(src))
	require.NoError(t, err)
	require.Len(t, res.Dist, g.Order())
	hops, err := bfs.BFS(g, src)
	require.NoError(t, err)

	settled := 0
	for v := range want {
		require.Equal(t, want[v], res.Dist[v], "dist[%d]", v)
		require.Equal(t, hops.Reached(v), res.Reachable(v), "reachability of %d", v)
		if math.IsInf(want[v], 1) {
			require.True(t, res.Pred[v].Unset(), "unreachable %d has a parent", v)
			continue
		}
		settled++
		path, total, err := res.PathTo(v)
		require.NoError(t, err, "path to %d", v)
		require.Equal(t, src, path[0])
		require.Equal(t, v, path[len(path)-1])
		require.InDelta(t, want[v], total, 1e-9, "path weight to %d", v)
	}
	require.True(t, res.Pred[src].Unset(), "source has a parent")
	require.Equal(t, settled, res.Stats.Settled)
}

func TestSolveFiveVertexGraph(t *testing.T) {
	res, err := bmssp.Solve(fiveVertex(t), 0)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 3, 2, 5, 6}, res.Dist)
	assert.Equal(t, []digraph.Predecessor{
		{Parent: digraph.NoParent},
		{Parent: 2, Weight: 1},
		{Parent: 0, Weight: 2},
		{Parent: 1, Weight: 2},
		{Parent: 1, Weight: 3},
	}, res.Pred)

	path, total, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1, 3}, path)
	assert.Equal(t, 5.0, total)
	assert.Equal(t, bmssp.ComputeParams(5), res.Params)
}

func TestSolveSmallGraphs(t *testing.T) {
	res, err := bmssp.Solve(digraph.New(1), 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, res.Dist)
	assert.Equal(t, 1, res.Stats.Settled)

	res, err = bmssp.Solve(mustGraph(t, 2, [][3]float64{{0, 1, 7}}), 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 7}, res.Dist)

	res, err = bmssp.Solve(mustGraph(t, 3, [][3]float64{{1, 0, 1}, {1, 2, 1}}), 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, inf, inf}, res.Dist)
	assert.False(t, res.Reachable(1))
	assert.True(t, res.Reachable(0))
	assert.False(t, res.Reachable(-1))
	_, _, err = res.PathTo(2)
	assert.ErrorIs(t, err, digraph.ErrUnreachable)
}

func TestSolveZeroWeightCycle(t *testing.T) {
	g := mustGraph(t, 4, [][3]float64{{0, 1, 0}, {1, 2, 0}, {2, 0, 0}, {2, 3, 1}, {3, 3, 0}})
	res, err := bmssp.Solve(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 1}, res.Dist)
	checkAgainstDijkstra(t, g, 1, res)
}

func TestSolveMatchesDijkstraOnRandomGraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for trial := 0; trial < 300; trial++ {
		n := 1 + rng.Intn(120)
		m := rng.Intn(4*n + 1)
		maxW := []int{0, 1, 3, 10}[trial%4]
		g := randomGraph(rng, n, m, maxW)
		src := rng.Intn(n)

		res, err := bmssp.Solve(g, src)
		require.NoError(t, err, "trial %d", trial)
		checkAgainstDijkstra(t, g, src, res)
	}
}

func TestSolveMatchesDijkstraOnBuiltGraphs(t *testing.T) {
	graphs := map[string][]builder.Constructor{
		"grid":     {builder.Grid(12, 15)},
		"complete": {builder.Complete(20)},
		"cycle":    {builder.Cycle(64)},
		"sparse":   {builder.RandomSparse(400, 0.01)},
		"mixed":    {builder.Star(10), builder.Path(30), builder.RandomSparse(50, 0.05)},
	}
	for name, cons := range graphs {
		t.Run(name, func(t *testing.T) {
			g, err := builder.BuildGraph([]builder.BuilderOption{
				builder.WithSeed(17), builder.WithIntWeights(0, 10),
			}, cons...)
			require.NoError(t, err)
			res, err := bmssp.Solve(g, 0)
			require.NoError(t, err)
			checkAgainstDijkstra(t, g, 0, res)
		})
	}
}

func TestSolveDeterministic(t *testing.T) {
	g := randomGraph(rand.New(rand.NewSource(5)), 200, 900, 3)
	a, err := bmssp.Solve(g, 0)
	require.NoError(t, err)
	b, err := bmssp.Solve(g, 0)
	require.NoError(t, err)
	assert.Equal(t, a.Dist, b.Dist)
	assert.Equal(t, a.Pred, b.Pred)
	assert.Equal(t, a.Stats, b.Stats)
}

func TestSolveErrors(t *testing.T) {
	_, err := bmssp.Solve(nil, 0)
	assert.ErrorIs(t, err, bmssp.ErrNilGraph)

	g := digraph.New(3)
	for _, src := range []int{-1, 3} {
		_, err = bmssp.Solve(g, src)
		assert.ErrorIs(t, err, bmssp.ErrSourceOutOfRange, "source %d", src)
	}
	_, err = bmssp.Solve(digraph.New(0), 0)
	assert.ErrorIs(t, err, bmssp.ErrSourceOutOfRange)
}

func TestSolveWithParams(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	g := randomGraph(rng, 50, 200, 4)

	for _, p := range []bmssp.Params{
		{K: 1, T: 1, Levels: 6},
		{K: 3, T: 2, Levels: 2},
		{K: 2, T: 1, Levels: 4},
		{K: 8, T: 1, Levels: 1},
	} {
		res, err := bmssp.Solve(g, 0, bmssp.WithParams(p))
		require.NoError(t, err, "%+v", p)
		assert.Equal(t, p, res.Params)
		checkAgainstDijkstra(t, g, 0, res)
	}

	_, err := bmssp.Solve(g, 0, bmssp.WithParams(bmssp.Params{K: 1, T: 1, Levels: 1}))
	assert.ErrorIs(t, err, bmssp.ErrBadParams)
	assert.Panics(t, func() { bmssp.WithParams(bmssp.Params{K: 0, T: 1, Levels: 1}) })
}

func TestOptionPanics(t *testing.T) {
	assert.PanicsWithValue(t, "bmssp: WithLogger(nil)", func() { bmssp.WithLogger(nil) })
	assert.PanicsWithValue(t, "bmssp: WithMetrics(nil)", func() { bmssp.WithMetrics(nil) })
	assert.PanicsWithValue(t, bmssp.ErrBadParallelism.Error(), func() { bmssp.WithParallelism(0) })
}

func TestSolveLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := bmssp.Solve(fiveVertex(t), 0, bmssp.WithLogger(log))
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "bmssp solve start")
	assert.Contains(t, out, "bmssp level")
	assert.Contains(t, out, "bmssp solve done")

	buf.Reset()
	quiet := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	_, err = bmssp.Solve(fiveVertex(t), 0, bmssp.WithLogger(quiet))
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestSolveStats(t *testing.T) {
	g := randomGraph(rand.New(rand.NewSource(3)), 300, 1500, 10)
	res, err := bmssp.Solve(g, 0)
	require.NoError(t, err)
	assert.Positive(t, res.Stats.Relaxations)
	assert.Positive(t, res.Stats.BaseCases)
	assert.Positive(t, res.Stats.PivotSearches)
	assert.Positive(t, res.Stats.Pulls)
	assert.LessOrEqual(t, res.Stats.PivotAborts, res.Stats.PivotSearches)
}

func BenchmarkSolve(b *testing.B) {
	for _, n := range []int{1_000, 5_000} {
		g, err := builder.BuildGraph([]builder.BuilderOption{
			builder.WithSeed(1), builder.WithIntWeights(1, 100),
		}, builder.RandomSparse(n, 4/float64(n)))
		require.NoError(b, err)
		b.Run("bmssp/"+strconv.Itoa(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := bmssp.Solve(g, 0); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run("dijkstra/"+strconv.Itoa(n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, _, err := dijkstra.Dijkstra(g, dijkstra.Source(0)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
