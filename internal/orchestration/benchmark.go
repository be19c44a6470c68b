// Package orchestration coordinates the concurrent execution of multiple
// computation strategies so their timings can be compared on the same index.
package orchestration

import (
	"context"
	"math/big"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/numcalc/internal/fibonacci"
)

// MethodResult holds the outcome of one strategy in a comparison run.
type MethodResult struct {
	// Method is the strategy that produced this result.
	Method fibonacci.Method
	// Value is the computed F(n), nil when Err is set.
	Value *big.Int
	// Duration is the wall-clock time the strategy took.
	Duration time.Duration
	// Err is the error the strategy returned, nil on success.
	Err error
	// Skipped is true when the strategy was not run at all (naive recursion
	// past its practical limit).
	Skipped bool
}

// CompareMethods runs every strategy on the same index concurrently and
// reports per-method timings. Each strategy gets its own Generator instance
// so the memoized run cannot borrow cache entries from another goroutine and
// the comparison stays honest.
//
// The naive recursive strategy is skipped (not failed) for indices past its
// practical limit, since running it would dominate the comparison by hours.
//
// Results are returned ordered by duration, fastest first, with skipped
// entries last.
//
// Parameters:
//   - ctx: The context bounding the whole comparison.
//   - n: The index to compute with every strategy.
//
// Returns:
//   - []MethodResult: One entry per strategy.
//   - error: The context's error if the comparison was canceled.
func CompareMethods(ctx context.Context, n int) ([]MethodResult, error) {
	methods := fibonacci.AllMethods()
	results := make([]MethodResult, len(methods))

	g, ctx := errgroup.WithContext(ctx)
	for i, method := range methods {
		i, method := i, method
		results[i].Method = method
		if method == fibonacci.MethodRecursive && n > fibonacci.RecursiveSequenceLimit {
			results[i].Skipped = true
			continue
		}

		g.Go(func() error {
			gen := fibonacci.NewGenerator()
			start := time.Now()
			v, err := gen.Compute(ctx, method, n)
			results[i].Duration = time.Since(start)
			results[i].Value = v
			results[i].Err = err
			// Domain errors are per-method outcomes, not comparison
			// failures; only cancellation aborts the group.
			if err != nil && (ctx.Err() != nil) {
				return ctx.Err()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(a, b int) bool {
		if results[a].Skipped != results[b].Skipped {
			return !results[a].Skipped
		}
		return results[a].Duration < results[b].Duration
	})
	return results, nil
}
