// Package config loads the YAML configuration of the comparison harness.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Solver names accepted in Scenario.Solvers.
const (
	SolverDijkstra    = "dijkstra"
	SolverDense       = "dense"
	SolverBellmanFord = "bellmanford"
	SolverBMSSP       = "bmssp"
)

var validSolvers = map[string]bool{
	SolverDijkstra:    true,
	SolverDense:       true,
	SolverBellmanFord: true,
	SolverBMSSP:       true,
}

// Config represents the complete configuration of one harness run.
type Config struct {
	Logging     LoggingConfig `yaml:"logging"`
	Metrics     MetricsConfig `yaml:"metrics"`
	Parallelism int           `yaml:"parallelism"` // scenarios run concurrently
	Scenarios   []Scenario    `yaml:"scenarios"`
}

// LoggingConfig defines the logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // Options: "DEBUG", "INFO", "WARN", "ERROR"
	Format string `yaml:"format"` // Options: "text", "json"
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Listen string `yaml:"listen"` // e.g. ":9090"; empty disables the endpoint
}

// Scenario describes one family of random graphs and the solvers timed on it.
type Scenario struct {
	Name      string   `yaml:"name"`
	Vertices  int      `yaml:"vertices"`
	Density   float64  `yaml:"density"`    // probability of each ordered pair u≠v
	MinWeight int      `yaml:"min_weight"` // inclusive
	MaxWeight int      `yaml:"max_weight"` // inclusive
	Seed      int64    `yaml:"seed"`
	Rounds    int      `yaml:"rounds"` // graphs generated per scenario
	Source    int      `yaml:"source"`
	Solvers   []string `yaml:"solvers"`
}

// Default returns the built-in scenario set: growing vertex counts with
// falling density, integer weights in [1,10] and five rounds each.
func Default() *Config {
	cfg := &Config{
		Logging:     LoggingConfig{Level: "INFO", Format: "text"},
		Parallelism: 1,
	}
	all := []string{SolverDijkstra, SolverDense, SolverBellmanFord, SolverBMSSP}
	for i, s := range []struct {
		v int
		d float64
	}{
		{50, 0.2}, {50, 0.8}, {100, 0.2}, {100, 0.5}, {100, 0.8}, {200, 0.2},
		{300, 0.1}, {400, 0.05}, {500, 0.02}, {1000, 0.01}, {2000, 0.005},
	} {
		cfg.Scenarios = append(cfg.Scenarios, Scenario{
			Name:      fmt.Sprintf("v%d-d%g", s.v, s.d),
			Vertices:  s.v,
			Density:   s.d,
			MinWeight: 1,
			MaxWeight: 10,
			Seed:      int64(i + 1),
			Rounds:    5,
			Solvers:   all,
		})
	}

	return cfg
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML, fills defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks the configuration and fills the defaults of empty fields.
func (c *Config) Validate() error {
	if c.Parallelism == 0 {
		c.Parallelism = 1
	} else if c.Parallelism < 0 {
		return fmt.Errorf("parallelism cannot be negative: %d", c.Parallelism)
	}

	if len(c.Scenarios) == 0 {
		return fmt.Errorf("at least one scenario must be configured")
	}
	names := make(map[string]bool)
	for i := range c.Scenarios {
		s := &c.Scenarios[i]
		if s.Name == "" {
			return fmt.Errorf("scenario %d has no name", i)
		}
		if names[s.Name] {
			return fmt.Errorf("duplicate scenario name: %s", s.Name)
		}
		names[s.Name] = true

		if s.Vertices < 1 {
			return fmt.Errorf("scenario %s: vertices must be >= 1, got %d", s.Name, s.Vertices)
		}
		if !(s.Density >= 0 && s.Density <= 1) {
			return fmt.Errorf("scenario %s: density must be in [0,1], got %g", s.Name, s.Density)
		}
		if s.MinWeight < 0 || s.MaxWeight < s.MinWeight {
			return fmt.Errorf("scenario %s: need 0 <= min_weight <= max_weight, got %d..%d", s.Name, s.MinWeight, s.MaxWeight)
		}
		if s.Source < 0 || s.Source >= s.Vertices {
			return fmt.Errorf("scenario %s: source %d out of range", s.Name, s.Source)
		}
		if s.Rounds == 0 {
			s.Rounds = 1
		} else if s.Rounds < 0 {
			return fmt.Errorf("scenario %s: rounds cannot be negative: %d", s.Name, s.Rounds)
		}
		if len(s.Solvers) == 0 {
			return fmt.Errorf("scenario %s: at least one solver must be configured", s.Name)
		}
		for _, name := range s.Solvers {
			if !validSolvers[name] {
				return fmt.Errorf("scenario %s: unknown solver %q (valid options: dijkstra, dense, bellmanford, bmssp)", s.Name, name)
			}
		}
	}

	c.Logging.Level = strings.ToUpper(c.Logging.Level)
	switch c.Logging.Level {
	case "":
		c.Logging.Level = "INFO"
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		return fmt.Errorf("invalid logging level: %s (valid options: DEBUG, INFO, WARN, ERROR)", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "":
		c.Logging.Format = "text"
	case "text", "json":
	default:
		return fmt.Errorf("invalid logging format: %s (valid options: text, json)", c.Logging.Format)
	}

	return nil
}
