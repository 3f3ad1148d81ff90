// Package bench runs the shortest-path solvers over generated scenarios,
// cross-checks their distances against heap Dijkstra and times them.
package bench

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lucasccalmon/TrabalhoGrafos/bellmanford"
	"github.com/lucasccalmon/TrabalhoGrafos/bfs"
	"github.com/lucasccalmon/TrabalhoGrafos/bmssp"
	"github.com/lucasccalmon/TrabalhoGrafos/builder"
	"github.com/lucasccalmon/TrabalhoGrafos/digraph"
	"github.com/lucasccalmon/TrabalhoGrafos/dijkstra"
	"github.com/lucasccalmon/TrabalhoGrafos/internal/config"
)

// Recorder receives one record per timed solver run. metrics.Collector
// implements it; if a Recorder also implements bmssp.MetricsCollector the
// bmssp runs report through RecordSolve instead.
type Recorder interface {
	RecordRun(solver string, d time.Duration, err error)
}

// Measurement is the aggregate of one solver over all rounds of a scenario.
type Measurement struct {
	Scenario   string
	Vertices   int
	Density    float64
	Arcs       float64 // mean arc count over rounds
	Solver     string
	Mean       time.Duration
	Rounds     int
	Mismatches int // vertices whose distance differed from the reference
	Err        error
}

// OK reports whether the solver ran without error and matched the reference.
func (m Measurement) OK() bool { return m.Err == nil && m.Mismatches == 0 }

// Harness runs scenarios.
type Harness struct {
	log      *slog.Logger
	recorder Recorder
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the harness logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) { h.log = l }
}

// WithRecorder sets the run recorder.
func WithRecorder(r Recorder) Option {
	return func(h *Harness) { h.recorder = r }
}

// New returns a Harness with a discarding logger and no recorder.
func New(opts ...Option) *Harness {
	h := &Harness{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Run executes every scenario of cfg, at most cfg.Parallelism at once, and
// returns the measurements in scenario order, then solver order.
// Solver failures are reported in Measurement.Err; only graph generation
// failures and ctx cancellation abort the run.
func (h *Harness) Run(ctx context.Context, cfg *config.Config) ([]Measurement, error) {
	perScenario := make([][]Measurement, len(cfg.Scenarios))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(1, cfg.Parallelism))
	for i, s := range cfg.Scenarios {
		eg.Go(func() error {
			ms, err := h.RunScenario(ctx, s)
			if err != nil {
				return fmt.Errorf("scenario %s: %w", s.Name, err)
			}
			perScenario[i] = ms
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var out []Measurement
	for _, ms := range perScenario {
		out = append(out, ms...)
	}

	return out, nil
}

// RunScenario generates s.Rounds graphs and times each configured solver on them.
func (h *Harness) RunScenario(ctx context.Context, s config.Scenario) ([]Measurement, error) {
	log := h.log.With(slog.String("scenario", s.Name))
	ms := make([]Measurement, len(s.Solvers))
	totals := make([]time.Duration, len(s.Solvers))
	for j, name := range s.Solvers {
		ms[j] = Measurement{Scenario: s.Name, Vertices: s.Vertices, Density: s.Density, Solver: name, Rounds: s.Rounds}
	}

	var arcs int
	for round := 0; round < s.Rounds; round++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		g, err := Generate(s, round)
		if err != nil {
			return nil, err
		}
		arcs += g.Size()
		ref, _, err := dijkstra.Dijkstra(g, dijkstra.Source(s.Source))
		if err != nil {
			return nil, fmt.Errorf("reference: %w", err)
		}

		for j, name := range s.Solvers {
			dist, d, err := h.runSolver(name, g, s.Source)
			totals[j] += d
			if err != nil {
				if ms[j].Err == nil {
					ms[j].Err = err
				}
				log.Warn("solver failed", "solver", name, "round", round, "err", err)
				continue
			}
			if bad := countMismatches(ref, dist); bad > 0 {
				ms[j].Mismatches += bad
				log.Warn("distance mismatch", "solver", name, "round", round, "vertices", bad)
			}
		}
		if log.Enabled(ctx, slog.LevelDebug) {
			reach, _ := bfs.Reachable(g, s.Source)
			log.Debug("round done", "round", round, "arcs", g.Size(), "reachable", len(reach))
		}
	}

	for j := range ms {
		ms[j].Arcs = float64(arcs) / float64(s.Rounds)
		ms[j].Mean = totals[j] / time.Duration(s.Rounds)
	}
	log.Info("scenario done", "vertices", s.Vertices, "density", s.Density, "rounds", s.Rounds)

	return ms, nil
}

// Generate builds the graph of one scenario round: each ordered pair u≠v gets
// an arc with probability s.Density and an integer weight in
// [s.MinWeight, s.MaxWeight]. The RNG is seeded with s.Seed + round.
func Generate(s config.Scenario, round int) (*digraph.Graph, error) {
	return builder.BuildGraph([]builder.BuilderOption{
		builder.WithSeed(s.Seed + int64(round)),
		builder.WithIntWeights(s.MinWeight, s.MaxWeight),
	}, builder.RandomSparse(s.Vertices, s.Density))
}

// runSolver times one solver. Input conversion (the arc list for
// Bellman-Ford) happens before the clock starts.
func (h *Harness) runSolver(name string, g *digraph.Graph, src int) ([]float64, time.Duration, error) {
	var (
		dist  []float64
		err   error
		start time.Time
	)
	switch name {
	case config.SolverDijkstra:
		start = time.Now()
		dist, _, err = dijkstra.Dijkstra(g, dijkstra.Source(src), dijkstra.WithReturnPath())
	case config.SolverDense:
		start = time.Now()
		dist, _, err = dijkstra.Dense(g, src)
	case config.SolverBellmanFord:
		arcs := bellmanford.FromGraph(g)
		start = time.Now()
		dist, _, err = bellmanford.BellmanFord(g.Order(), arcs, src)
	case config.SolverBMSSP:
		var opts []bmssp.Option
		if mc, ok := h.recorder.(bmssp.MetricsCollector); ok {
			opts = append(opts, bmssp.WithMetrics(mc))
		}
		start = time.Now()
		var res *bmssp.Result
		res, err = bmssp.Solve(g, src, opts...)
		d := time.Since(start)
		if res != nil {
			dist = res.Dist
		}
		if len(opts) == 0 && h.recorder != nil {
			h.recorder.RecordRun(name, d, err)
		}
		return dist, d, err
	default:
		return nil, 0, fmt.Errorf("unknown solver %q", name)
	}
	d := time.Since(start)
	if h.recorder != nil {
		h.recorder.RecordRun(name, d, err)
	}

	return dist, d, err
}

func countMismatches(want, got []float64) int {
	if len(want) != len(got) {
		return len(want)
	}
	bad := 0
	for v := range want {
		if want[v] != got[v] {
			bad++
		}
	}

	return bad
}
