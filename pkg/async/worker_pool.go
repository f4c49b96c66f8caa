package async

import (
	"context"
	"sync"
	"sync/atomic"
)

type Iteratee[T any] func(context.Context, T) error

// WorkerPool drains ch with up to concurrency goroutines running fn. The
// first error stops intake; items already picked up are allowed to finish.
func WorkerPool[T any](ctx context.Context, concurrency int, ch <-chan T, fn Iteratee[T]) error {
	semaphore := make(chan struct{}, concurrency)

	var wg sync.WaitGroup
	aErr := atomic.Pointer[error]{}

	for m := range ch {
		if err := aErr.Load(); err != nil {
			break
		}

		select {
		case <-ctx.Done():
			wg.Wait()
			return ctx.Err()
		case semaphore <- struct{}{}:
		}

		wg.Add(1)
		go func(m T) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			if err := fn(ctx, m); err != nil {
				aErr.CompareAndSwap(nil, &err)
			}
		}(m)
	}

	wg.Wait()

	if err := aErr.Load(); err != nil {
		return *err
	}
	return nil
}
