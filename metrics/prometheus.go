// Package metrics exports shortest-path solver activity to Prometheus.
//
// Collector implements bmssp.MetricsCollector and additionally records timed
// runs of any solver (the comparison harness uses it for the baselines).
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lucasccalmon/TrabalhoGrafos/bmssp"
)

const solverBMSSP = "bmssp"

// Collector holds the Prometheus series for solver runs.
type Collector struct {
	latency      *prometheus.HistogramVec
	runs         *prometheus.CounterVec
	relaxations  prometheus.Counter
	baseCases    prometheus.Counter
	pivotAborts  prometheus.Counter
	pulls        prometheus.Counter
	lastSettled  prometheus.Gauge
	lastVertices prometheus.Gauge
}

var _ bmssp.MetricsCollector = (*Collector)(nil)

// New creates a Collector and registers its series with reg.
// It panics if registration fails, like prometheus.MustRegister.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sssp_solve_duration_seconds",
			Help:    "Latency of single-source shortest-path solves",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 12),
		}, []string{"solver", "status"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sssp_solves_total",
			Help: "Total solves by solver and status",
		}, []string{"solver", "status"}),
		relaxations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sssp_bmssp_relaxations_total",
			Help: "Successful relaxations performed by bmssp",
		}),
		baseCases: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sssp_bmssp_base_cases_total",
			Help: "Base-case invocations performed by bmssp",
		}),
		pivotAborts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sssp_bmssp_pivot_aborts_total",
			Help: "Pivot searches that kept the whole frontier",
		}),
		pulls: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sssp_bmssp_pulls_total",
			Help: "Frontier batches pulled by bmssp",
		}),
		lastSettled: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sssp_bmssp_last_settled_vertices",
			Help: "Reachable vertices in the most recent bmssp solve",
		}),
		lastVertices: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "sssp_bmssp_last_graph_vertices",
			Help: "Vertex count of the graph in the most recent bmssp solve",
		}),
	}
	reg.MustRegister(c.latency, c.runs, c.relaxations, c.baseCases,
		c.pivotAborts, c.pulls, c.lastSettled, c.lastVertices)

	return c
}

// RecordSolve implements bmssp.MetricsCollector.
func (c *Collector) RecordSolve(vertices, _ int, stats bmssp.Stats, d time.Duration, err error) {
	c.RecordRun(solverBMSSP, d, err)
	if err != nil {
		return
	}
	c.relaxations.Add(float64(stats.Relaxations))
	c.baseCases.Add(float64(stats.BaseCases))
	c.pivotAborts.Add(float64(stats.PivotAborts))
	c.pulls.Add(float64(stats.Pulls))
	c.lastSettled.Set(float64(stats.Settled))
	c.lastVertices.Set(float64(vertices))
}

// RecordRun records one timed run of the named solver.
func (c *Collector) RecordRun(solver string, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.latency.WithLabelValues(solver, status).Observe(d.Seconds())
	c.runs.WithLabelValues(solver, status).Inc()
}
