package metrics

import "github.com/prometheus/client_golang/prometheus"

func (c *Collector) Relaxations() prometheus.Counter { return c.relaxations }
func (c *Collector) LastSettled() prometheus.Gauge   { return c.lastSettled }
func (c *Collector) Runs() *prometheus.CounterVec    { return c.runs }
