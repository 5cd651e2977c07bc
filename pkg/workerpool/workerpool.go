// Package workerpool runs bounded concurrent work over a slice of items.
package workerpool

import (
	"context"
	"sync"
)

// Result is the outcome of one item. Index is the item position in the
// input slice.
type Result[R any] struct {
	Index int
	Value R
	Err   error
}

// Map calls fn for every item using at most workers goroutines and returns
// one result per item in input order. A failing item does not stop the
// others. Items not started before ctx is canceled get ctx.Err().
func Map[T, R any](
	ctx context.Context,
	workers int,
	items []T,
	fn func(context.Context, T) (R, error),
) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}
	if workers <= 0 || workers > len(items) {
		workers = len(items)
	}

	indexes := make(chan int)
	wg := sync.WaitGroup{}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				value, err := fn(ctx, items[i])
				results[i] = Result[R]{Index: i, Value: value, Err: err}
			}
		}()
	}

	i := 0
feed:
	for ; i < len(items); i++ {
		if ctx.Err() != nil {
			break
		}
		select {
		case <-ctx.Done():
			break feed
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	for ; i < len(items); i++ {
		results[i] = Result[R]{Index: i, Err: ctx.Err()}
	}
	return results
}

// FirstError returns the first failed result error in input order.
func FirstError[R any](results []Result[R]) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}
