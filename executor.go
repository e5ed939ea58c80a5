package gostreams

import (
	"context"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

const (
	// leavesPerWorker is the number of leaf cursors the executor aims for per unit of parallelism,
	// so that workers finishing early can pick up more work.
	leavesPerWorker = 4

	defaultMinSplitSize = 256
)

// Executor drives the decomposition and traversal of cursors.
//
// An Executor is immutable once created and may be shared by multiple goroutines.
type Executor struct {
	parallelism  int
	minSplitSize int64
	prefixMode   PrefixMode
	logger       *zap.Logger
}

// NewExecutor returns an executor configured by opts.
// By default, it runs up to runtime.GOMAXPROCS(0) goroutines and uses PrefixCursors.
func NewExecutor(opts ...Option) *Executor {
	e := &Executor{
		parallelism:  sanitizeParallelism(0),
		minSplitSize: defaultMinSplitSize,
		prefixMode:   PrefixCursors,
		logger:       zap.NewNop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Sequential returns an executor that traverses cursors in the calling goroutine without splitting them.
func Sequential(opts ...Option) *Executor {
	return NewExecutor(append(opts[:len(opts):len(opts)], WithParallelism(1))...)
}

// Parallelism returns the maximum number of goroutines traversing cursors concurrently.
func (e *Executor) Parallelism() int {
	return e.parallelism
}

// PrefixMode returns the configured PrefixMode.
func (e *Executor) PrefixMode() PrefixMode {
	return e.prefixMode
}

// PrefixerFor returns the Prefixer selected by e's PrefixMode.
func PrefixerFor[T any](e *Executor) Prefixer[T] {
	return NewPrefixer[T](e.prefixMode)
}

// decompose splits c into leaf cursors. Concatenating the leaves' elements, in order,
// yields the elements of c.
func decompose[T any](e *Executor, c Cursor[T]) []Cursor[T] {
	leaves := []Cursor[T]{c}

	if e.parallelism <= 1 {
		return leaves
	}

	chars := c.Characteristics()
	estimate := c.EstimateSize()

	target := e.parallelism * leavesPerWorker

	for len(leaves) < target {
		split := false

		for i := 0; i < len(leaves) && len(leaves) < target; i++ {
			if leaves[i].EstimateSize() < e.minSplitSize {
				continue
			}

			prefix := leaves[i].TrySplit()
			if prefix == nil {
				continue
			}

			leaves = slices.Insert(leaves, i, prefix)
			i++

			split = true
		}

		if !split {
			break
		}
	}

	e.logger.Debug("decomposed cursor",
		zap.Int("leaves", len(leaves)),
		zap.Int64("estimate", estimate),
		zap.Stringer("characteristics", chars))

	return leaves
}

// traverse calls task for each leaf, concurrently, and returns the first error returned by a task.
// All leaves are released afterwards, even if the traversal stopped early or panicked.
func traverse[T any](ctx context.Context, e *Executor, leaves []Cursor[T], task func(ctx context.Context, leaf Cursor[T], i int) error) error {
	defer func() {
		for _, leaf := range leaves {
			Release(leaf)
		}
	}()

	return e.run(ctx, len(leaves), func(ctx context.Context, i int) error {
		return task(ctx, leaves[i], i)
	})
}

// run calls task for each index 0 <= i < n, concurrently, and returns the first error returned by a task.
// If a task panics, run panics with the value of the first panic after all tasks have finished,
// whatever errors other tasks returned.
func (e *Executor) run(ctx context.Context, n int, task func(ctx context.Context, i int) error) error {
	if n == 1 {
		return task(ctx, 0)
	}

	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(e.parallelism)

	firstPanic := atomic.Pointer[panicError]{}

	for i := 0; i < n; i++ {
		i := i

		grp.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					panicErr := &panicError{value: r}
					firstPanic.CompareAndSwap(nil, panicErr)
					err = panicErr
				}
			}()

			return task(grpCtx, i)
		})
	}

	err := grp.Wait()

	if panicErr := firstPanic.Load(); panicErr != nil {
		e.logger.Debug("cursor traversal panicked", zap.Any("value", panicErr.value))
		panic(panicErr.value)
	}

	if err != nil {
		e.logger.Debug("cursor traversal failed", zap.Error(err))
	}

	return err
}

// drain calls action for each remaining element of c, checking ctx before each element.
// It returns the cause of ctx's cancelation if ctx is canceled before c is exhausted,
// or the error that ended c's elements early.
func drain[T any](ctx context.Context, c Cursor[T], action func(elem T)) error {
	for {
		if err := contextCause(ctx); err != nil {
			return err
		}

		if !c.TryAdvance(action) {
			return cursorErr(c)
		}
	}
}
