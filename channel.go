package gostreams

import (
	"context"
	"errors"
)

// ChannelCursor is a cursor over the elements received through a channel, in order.
// The cursor is exhausted once the channel is closed.
type ChannelCursor[T any] struct {
	ch    <-chan T
	done  bool
	batch int

	// ctx and cancel are set when the channel is the output of a pipeline run by this cursor.
	ctx    context.Context
	cancel context.CancelCauseFunc
	cause  error
}

// NewChannelCursor returns a cursor over the elements received through ch.
// ChannelCursor splits by receiving a batch of elements into a slice.
func NewChannelCursor[T any](ch <-chan T) *ChannelCursor[T] {
	return &ChannelCursor[T]{
		ch: ch,
	}
}

// newPipelineCursor returns a cursor over the elements received through ch, the output of a pipeline
// running with ctx. cancel must cancel ctx; the cursor calls it once ch is closed or the cursor is stopped.
func newPipelineCursor[T any](ctx context.Context, cancel context.CancelCauseFunc, ch <-chan T) *ChannelCursor[T] {
	return &ChannelCursor[T]{
		ch:     ch,
		ctx:    ctx,
		cancel: cancel,
	}
}

// EstimateSize implements Cursor.
func (c *ChannelCursor[T]) EstimateSize() int64 {
	if c.done {
		return 0
	}

	return UnknownSize
}

// Characteristics implements Cursor.
func (c *ChannelCursor[T]) Characteristics() Characteristics {
	return Ordered
}

// TrySplit implements Cursor.
func (c *ChannelCursor[T]) TrySplit() Cursor[T] {
	if c.done {
		return nil
	}

	return splitBatch[T](c, &c.batch)
}

// TryAdvance implements Cursor.
func (c *ChannelCursor[T]) TryAdvance(action func(elem T)) bool {
	if c.done {
		return false
	}

	elem, ok := <-c.ch
	if !ok {
		c.finish()
		return false
	}

	action(elem)

	return true
}

// ForEachRemaining implements Cursor.
func (c *ChannelCursor[T]) ForEachRemaining(action func(elem T)) {
	if c.done {
		return
	}

	for elem := range c.ch {
		action(elem)
	}

	c.finish()
}

// Err returns the cause of the cancelation of the pipeline feeding the cursor,
// if the pipeline's context was canceled before the pipeline ran to completion.
// It returns nil for cursors created by NewChannelCursor.
func (c *ChannelCursor[T]) Err() error {
	return c.cause
}

// finish marks the cursor exhausted after ch has been closed.
// A panic recovered inside the pipeline is raised again here.
func (c *ChannelCursor[T]) finish() {
	c.done = true

	if c.cancel == nil {
		return
	}

	cause := context.Cause(c.ctx)

	c.release()

	var panicErr *panicError
	if errors.As(cause, &panicErr) {
		panic(panicErr.value)
	}

	c.cause = cause
}

func (c *ChannelCursor[T]) release() {
	if c.cancel != nil {
		c.cancel(nil)
		c.cancel = nil
	}
}

// stop implements pipelined. Elements not yet received are discarded.
func (c *ChannelCursor[T]) stop() {
	c.done = true
	c.release()
}

// err implements pipelined.
func (c *ChannelCursor[T]) err() error {
	return c.cause
}
