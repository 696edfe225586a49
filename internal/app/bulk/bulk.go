// Package bulk runs one operation across many items with bounded
// concurrency and reports the outcome of every item. A failing item never
// stops the others.
package bulk

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

// Failure pairs an item with the error it failed with.
type Failure[T any] struct {
	Item T
	Err  error
}

// Report splits the outcomes of Apply by success, each in input order.
type Report[T any] struct {
	Succeeded []T
	Failed    []Failure[T]
}

// OK reports whether every item succeeded.
func (r Report[T]) OK() bool {
	return len(r.Failed) == 0
}

// Run executes fn for each item using at most limit concurrent goroutines.
// Results are returned in the same order as the input items.
//
// If ctx is canceled while a goroutine is waiting for a slot, that item
// records ctx.Err() and fn is not called for it. Items that already hold a
// slot run to completion.
//
// Run blocks until every item has an outcome. A limit below one is treated
// as one. An empty items slice yields an empty non-nil slice.
func Run[T, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	limit = max(limit, 1)

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, limit)
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

// Apply runs fn for each item like Run and folds the outcomes into a Report.
func Apply[T any](ctx context.Context, limit int, items []T, fn func(context.Context, T) error) Report[T] {
	results := Run(ctx, limit, items, func(ctx context.Context, it T) (struct{}, error) {
		return struct{}{}, fn(ctx, it)
	})

	report := Report[T]{Succeeded: make([]T, 0, len(items))}
	for i, r := range results {
		if r.Err != nil {
			report.Failed = append(report.Failed, Failure[T]{Item: items[i], Err: r.Err})
			continue
		}
		report.Succeeded = append(report.Succeeded, items[i])
	}
	return report
}
