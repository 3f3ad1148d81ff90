// Command sssp-bench times heap Dijkstra, dense Dijkstra, Bellman-Ford and
// BMSSP on generated random graphs, cross-checks their distances and prints a
// table of mean run times.
//
// Usage:
//
//	sssp-bench [-config bench.yaml] [-out results.csv.zst] [-metrics :9090] [-log-level debug]
//
// Without -config the built-in scenario set is used.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lucasccalmon/TrabalhoGrafos/internal/bench"
	"github.com/lucasccalmon/TrabalhoGrafos/internal/config"
	"github.com/lucasccalmon/TrabalhoGrafos/metrics"
)

var (
	configPath  = flag.String("config", "", "YAML scenario file (default: built-in scenarios)")
	outPath     = flag.String("out", "", "write results as CSV (.zst/.lz4 extensions compress)")
	metricsAddr = flag.String("metrics", "", "serve Prometheus metrics on this address, overriding the config")
	logLevel    = flag.String("log-level", "", "log level override: debug, info, warn, error")
	hold        = flag.Duration("hold", 0, "keep the metrics endpoint up this long after the run")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "sssp-bench:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}
	if *metricsAddr != "" {
		cfg.Metrics.Listen = *metricsAddr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := newLogger(cfg.Logging)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := []bench.Option{bench.WithLogger(log)}
	if cfg.Metrics.Listen != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		opts = append(opts, bench.WithRecorder(metrics.New(reg)))

		srv := &http.Server{
			Addr:              cfg.Metrics.Listen,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Info("metrics endpoint", "addr", cfg.Metrics.Listen)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server", "err", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	start := time.Now()
	ms, err := bench.New(opts...).Run(ctx, cfg)
	if err != nil {
		return err
	}
	log.Info("benchmark done", "scenarios", len(cfg.Scenarios), "elapsed", time.Since(start))

	if err := bench.WriteTable(os.Stdout, ms); err != nil {
		return err
	}
	if *outPath != "" {
		if err := bench.SaveCSV(*outPath, ms); err != nil {
			return err
		}
		log.Info("results written", "path", *outPath)
	}

	failed := 0
	for _, m := range ms {
		if !m.OK() {
			failed++
		}
	}

	if cfg.Metrics.Listen != "" && *hold > 0 {
		select {
		case <-time.After(*hold):
		case <-ctx.Done():
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d solver runs disagreed with the reference or failed", failed)
	}

	return nil
}

func newLogger(c config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToUpper(c.Level) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}

	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
