// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"
)

// TestBuilderConfigDefaults verifies the deterministic defaults.
func TestBuilderConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil")
	}
	if cfg.loops || cfg.bidirectional {
		t.Errorf("default flags: loops=%v bidirectional=%v", cfg.loops, cfg.bidirectional)
	}
	if w := cfg.weightFn(nil); w != DefaultEdgeWeight {
		t.Errorf("default weightFn: expected %g, got %g", DefaultEdgeWeight, w)
	}
}

// TestOptionsOverride verifies that later options override earlier ones.
func TestOptionsOverride(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(1))
	cfg := newBuilderConfig(WithSeed(5), WithRand(r), WithConstantWeight(2), WithIntWeights(4, 4), WithLoops(), WithBidirectional())
	if cfg.rng != r {
		t.Errorf("WithRand after WithSeed: expected the explicit rng")
	}
	if w := cfg.weightFn(cfg.rng); w != 4 {
		t.Errorf("weightFn: expected last option (4), got %g", w)
	}
	if !cfg.loops || !cfg.bidirectional {
		t.Errorf("flags not applied: loops=%v bidirectional=%v", cfg.loops, cfg.bidirectional)
	}
}

// TestWithSeedDeterministic verifies that identical seeds yield identical streams.
func TestWithSeedDeterministic(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(99))
	b := newBuilderConfig(WithSeed(99))
	for i := 0; i < 10; i++ {
		if x, y := a.rng.Int63(), b.rng.Int63(); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}

// TestOptionPanics verifies nil guards on option constructors.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	for name, fn := range map[string]func(){
		"WithRand(nil)":     func() { WithRand(nil) },
		"WithWeightFn(nil)": func() { WithWeightFn(nil) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}
