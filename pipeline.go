package gostreams

import (
	"context"
	"sync/atomic"
)

// ProducerFunc returns a channel of elements for a stream.
type ProducerFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T

// PredicateFunc returns true if elem matches a predicate.
// The index is the 0-based index of elem, in the order produced by the upstream producer.
type PredicateFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc, elem T, index uint64) bool

type pipelinePrefixer[T any] struct{}

// FuncPredicate returns a predicate that calls pred for each element.
func FuncPredicate[T any](pred Predicate[T]) PredicateFunc[T] {
	return func(_ context.Context, _ context.CancelCauseFunc, elem T, _ uint64) bool {
		return pred(elem)
	}
}

// ProduceCursor returns a producer that produces the remaining elements of c, in order.
// The producer takes ownership of c and must not be called more than once, doing so will panic.
// If traversing c panics, the stream's context is canceled with the recovered value.
func ProduceCursor[T any](c Cursor[T]) ProducerFunc[T] {
	started := atomic.Bool{}

	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		if started.Swap(true) {
			panic("producer called multiple times")
		}

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			defer recoverCause(cancel)

			for {
				var elem T
				if !c.TryAdvance(func(e T) { elem = e }) {
					return
				}

				select {
				case outCh <- elem:

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}

// TakeWhile returns a producer that produces the same elements as prod, in order, until pred returns false for an element.
// Once that happens, the context given to prod is canceled using ErrPrefixEnded.
func TakeWhile[T any](prod ProducerFunc[T], pred PredicateFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		prodCtx, cancelProd := context.WithCancelCause(ctx)

		ch := prod(prodCtx, cancel)

		outCh := make(chan T)

		go func() {
			defer cancelProd(nil)

			defer close(outCh)

			defer recoverCause(cancel)

			index := uint64(0)

			for elem := range ch {
				match := pred(ctx, cancel, elem, index)

				if contextDone(ctx) {
					return
				}

				if !match {
					cancelProd(ErrPrefixEnded)
					return
				}

				select {
				case outCh <- elem:
					index++

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}

// DropWhile returns a producer that produces the same elements as prod, in order,
// starting at the first element for which pred returns false.
func DropWhile[T any](prod ProducerFunc[T], pred PredicateFunc[T]) ProducerFunc[T] {
	return func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T {
		ch := prod(ctx, cancel)

		outCh := make(chan T)

		go func() {
			defer close(outCh)

			defer recoverCause(cancel)

			dropping := true
			index := uint64(0)

			for elem := range ch {
				if dropping {
					match := pred(ctx, cancel, elem, index)

					if contextDone(ctx) {
						return
					}

					index++

					if match {
						continue
					}

					dropping = false
				}

				select {
				case outCh <- elem:

				case <-ctx.Done():
					return
				}
			}
		}()

		return outCh
	}
}

// TakeWhile implements Prefixer.
func (pipelinePrefixer[T]) TakeWhile(ctx context.Context, source Cursor[T], pred Predicate[T]) Cursor[T] {
	return pipelineCursor(ctx, TakeWhile(ProduceCursor(source), FuncPredicate(pred)))
}

// DropWhile implements Prefixer.
func (pipelinePrefixer[T]) DropWhile(ctx context.Context, source Cursor[T], pred Predicate[T]) Cursor[T] {
	return pipelineCursor(ctx, DropWhile(ProduceCursor(source), FuncPredicate(pred)))
}

// pipelineCursor runs prod and returns a cursor over the elements it produces.
// A panic recovered inside the pipeline is raised again by the goroutine consuming the cursor.
// If ctx is canceled before prod has produced all elements, the cursor's Err returns the cause.
func pipelineCursor[T any](ctx context.Context, prod ProducerFunc[T]) *ChannelCursor[T] {
	ctx, cancel := context.WithCancelCause(ctx)

	return newPipelineCursor(ctx, cancel, prod(ctx, cancel))
}

// recoverCause cancels a stream's context with the value recovered from a panic, if any.
// It must be deferred directly.
func recoverCause(cancel context.CancelCauseFunc) {
	if r := recover(); r != nil {
		cancel(&panicError{value: r})
	}
}
