// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Parallel calls fn for every item with at most limit calls in flight
// (unbounded when limit <= 0) and waits for all of them. The first error
// cancels the context passed to the remaining calls and is returned; items
// not yet started are skipped.
func Parallel[T any](ctx context.Context, limit int, items []T, fn func(context.Context, T) error) error {
	if len(items) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, item := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(gctx, item)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
