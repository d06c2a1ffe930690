// Package pool provides a bounded, order-preserving parallel map.
//
// The degree of parallelism can be overridden through environment variables,
// so batch jobs can be tuned without code changes:
//
//	results, err := pool.Map(ctx, files, func(ctx context.Context, i int, path string) (*frame.Frame, error) {
//	    return readOne(ctx, path)
//	})
package pool

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"
)

const (
	// EnvJobs overrides the number of concurrent workers. If 1, items are
	// processed sequentially (mainly for testing or debugging).
	EnvJobs = "FRAMEQ_JOBS"
	// EnvVerbose enables debug logging of per-item scheduling.
	EnvVerbose = "FRAMEQ_VERBOSE"
)

// Jobs returns the number of concurrent workers to use: the EnvJobs value
// when set and positive, otherwise half the CPUs, and never less than 1.
func Jobs() int {
	if raw := os.Getenv(EnvJobs); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
		slog.Warn("ignoring invalid jobs value", "env", EnvJobs, "value", raw)
	}
	n := runtime.NumCPU() / 2
	if n < 1 {
		n = 1
	}
	return n
}

func verbose() bool {
	return os.Getenv(EnvVerbose) != ""
}

// Map applies fn to every item concurrently, bounded by Jobs workers, and
// returns the results in input order. The first error cancels the remaining
// work and is returned.
func Map[T, R any](ctx context.Context, items []T, fn func(ctx context.Context, i int, item T) (R, error)) ([]R, error) {
	results := make([]R, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(Jobs())
	debug := verbose()
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			if debug {
				slog.Debug("processing item", "index", i, "total", len(items))
			}
			r, err := fn(ctx, i, item)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
