// Package fanout runs a function across a slice of items using a bounded
// number of worker goroutines, preserving input order in results. The metrics
// calculator uses it to fetch the remaining list pages concurrently.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item in items using at most maxWorkers concurrent
// goroutines. Results are returned in the same order as the input items.
//
// If ctx is canceled while a goroutine is waiting for a worker slot, that
// goroutine records ctx.Err() and does not call fn. Goroutines that have
// already acquired a slot run to completion; fn is responsible for honouring
// ctx itself.
//
// Run blocks until all goroutines complete. If items is empty, it returns
// an empty non-nil slice immediately. A maxWorkers below 1 is treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	if maxWorkers < 1 {
		maxWorkers = 1
	}

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func(idx int, it T) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[idx] = Result[R]{Err: ctx.Err()}
				return
			}

			val, err := fn(ctx, it)
			results[idx] = Result[R]{Value: val, Err: err}
		}(i, item)
	}

	wg.Wait()
	return results
}

// Collect unpacks results in order. It returns the first error encountered,
// in input order, together with a nil slice.
func Collect[R any](results []Result[R]) ([]R, error) {
	values := make([]R, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			return nil, r.Err
		}
		values = append(values, r.Value)
	}
	return values, nil
}
