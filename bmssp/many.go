// SPDX-License-Identifier: MIT
// Package: bmssp
//
// many.go - independent solves from several sources.

package bmssp

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lucasccalmon/TrabalhoGrafos/digraph"
)

// SolveMany runs one Solve per source and returns the results in source order.
// At most Options.Parallelism solves run at once (WithParallelism). Each solve
// is sequential on its own state; the graph is only read.
//
// ctx is checked before each solve starts; a running solve is never
// interrupted. The first error cancels the remaining solves and is returned.
func SolveMany(ctx context.Context, g *digraph.Graph, sources []int, opts ...Option) ([]*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	results := make([]*Result, len(sources))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Parallelism)
	for i, src := range sources {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := solve(g, src, cfg)
			if err != nil {
				return fmt.Errorf("source %d: %w", src, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
