package gostreams

import (
	"context"
	"errors"
	"sync/atomic"
)

// ErrShortCircuit is a generic error used to stop the traversal of all leaf cursors
// once the result of a terminal operation is known.
var ErrShortCircuit = errors.New("short circuit")

// ToSlice returns the remaining elements of c, in order.
// If ctx is canceled, it returns the cause of the cancelation.
func ToSlice[T any](ctx context.Context, e *Executor, c Cursor[T]) ([]T, error) {
	leaves := decompose(e, c)
	parts := make([][]T, len(leaves))

	err := traverse(ctx, e, leaves, func(ctx context.Context, leaf Cursor[T], i int) error {
		part := []T{}
		if size := ExactSize(leaf); size > 0 && size <= MaxCapacity {
			part = make([]T, 0, size)
		}

		err := drain(ctx, leaf, func(elem T) {
			part = append(part, elem)
		})

		parts[i] = part

		return err
	})
	if err != nil {
		return nil, err
	}

	size := 0
	for _, part := range parts {
		size += len(part)
	}

	result := make([]T, 0, size)
	for _, part := range parts {
		result = append(result, part...)
	}

	return result, nil
}

// ToArray returns the remaining elements of c, in order, accumulated in Buffers.
// A leaf cursor of exactly known size is collected into a buffer of that size,
// other leaves are collected into growable buffers. Buffers of leaves are merged in order.
func ToArray[T Number](ctx context.Context, e *Executor, c Cursor[T]) ([]T, error) {
	return ToArrayOf[T](ctx, e, c)
}

// ToArrayOf is like ToArray, but converts each element of c to T.
// Conversions follow Go's rules: narrowing integers keeps the low-order bits,
// and floating-point values are rounded or truncated towards zero.
func ToArrayOf[T Number, S Number](ctx context.Context, e *Executor, c Cursor[S]) ([]T, error) {
	leaves := decompose(e, c)
	bufs := make([]*Buffer[T], len(leaves))

	err := traverse(ctx, e, leaves, func(ctx context.Context, leaf Cursor[S], i int) error {
		buf, err := collectSized[T](ctx, leaf)
		bufs[i] = buf

		return err
	})
	if err != nil {
		return nil, err
	}

	result := bufs[0]
	for _, buf := range bufs[1:] {
		if err := result.AddAll(buf); err != nil {
			return nil, err
		}
	}

	return result.ToArray(), nil
}

// ForEach calls each for each remaining element of c.
// If e runs more than one goroutine, each is called concurrently, in undefined order.
func ForEach[T any](ctx context.Context, e *Executor, c Cursor[T], each func(elem T)) error {
	leaves := decompose(e, c)

	return traverse(ctx, e, leaves, func(ctx context.Context, leaf Cursor[T], _ int) error {
		return drain(ctx, leaf, each)
	})
}

// Count returns the number of remaining elements of c.
// If c is Sized, it returns the exact size without traversing c.
func Count[T any](ctx context.Context, e *Executor, c Cursor[T]) (int64, error) {
	if size := ExactSize(c); size >= 0 {
		return size, nil
	}

	count := atomic.Int64{}

	err := ForEach(ctx, e, c, func(_ T) {
		count.Add(1)
	})

	return count.Load(), err
}

// AnyMatch returns true as soon as pred returns true for a remaining element of c.
// If an element matches, the traversal of all leaf cursors is stopped.
func AnyMatch[T any](ctx context.Context, e *Executor, c Cursor[T], pred Predicate[T]) (bool, error) {
	anyMatch := atomic.Bool{}

	err := match(ctx, e, c, func(elem T) bool {
		if !pred(elem) {
			return false
		}

		anyMatch.Store(true)

		return true
	})

	return anyMatch.Load(), err
}

// AllMatch returns true if pred returns true for all remaining elements of c.
// If any element does not match, the traversal of all leaf cursors is stopped.
func AllMatch[T any](ctx context.Context, e *Executor, c Cursor[T], pred Predicate[T]) (bool, error) {
	allMatch := atomic.Bool{}
	allMatch.Store(true)

	err := match(ctx, e, c, func(elem T) bool {
		if pred(elem) {
			return false
		}

		allMatch.Store(false)

		return true
	})

	return allMatch.Load(), err
}

// match traverses c until stop returns true for an element.
func match[T any](ctx context.Context, e *Executor, c Cursor[T], stop func(elem T) bool) error {
	leaves := decompose(e, c)

	err := traverse(ctx, e, leaves, func(ctx context.Context, leaf Cursor[T], _ int) error {
		stopped := false

		for !stopped {
			if err := contextCause(ctx); err != nil {
				return err
			}

			if !leaf.TryAdvance(func(elem T) { stopped = stop(elem) }) {
				return cursorErr(leaf)
			}
		}

		return ErrShortCircuit
	})

	if errors.Is(err, ErrShortCircuit) {
		err = nil
	}

	return err
}

// collectSized collects the remaining elements of c, converted to T, into a buffer.
// If c is Sized, the buffer is allocated with the exact size upfront and filled without capacity checks.
func collectSized[T Number, S Number](ctx context.Context, c Cursor[S]) (*Buffer[T], error) {
	if size := ExactSize(c); size >= 0 && size <= MaxCapacity {
		buf, err := NewSizedBuffer[T](int(size))
		if err != nil {
			return nil, err
		}

		return buf, drain(ctx, c, func(elem S) {
			buf.AppendUnsafe(T(elem))
		})
	}

	buf := NewBuffer[T]()

	return buf, drain(ctx, c, func(elem S) {
		buf.Append(T(elem))
	})
}
