package async

import (
	"context"

	"github.com/samber/lo"
)

type Yielder[T any] func(T, error)

// Generator runs gen on its own goroutine and exposes yielded values as a
// channel. The channel closes when gen returns or ctx is canceled; a trailing
// error from gen is delivered as the last Result.
func Generator[T any](ctx context.Context, gen func(context.Context, Yielder[T]) error) <-chan Result[T] {
	ch := make(chan Result[T], 1)

	y := func(t T, err error) {
		select {
		case <-ctx.Done():
		case ch <- NewResult(t, err):
		}
	}

	go func() {
		defer close(ch)

		if err := gen(ctx, y); err != nil {
			y(lo.Empty[T](), err)
		}
	}()

	return ch
}
