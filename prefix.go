package gostreams

import "context"

// Predicate returns true if elem matches.
type Predicate[T any] func(elem T) bool

// PrefixMode selects the implementation of take-while and drop-while operations.
type PrefixMode int

const (
	// PrefixCursors uses TakeWhileCursor and DropWhileCursor, which run in the consuming goroutine.
	PrefixCursors PrefixMode = iota

	// PrefixPipeline uses a channel pipeline of producers, see TakeWhile and DropWhile.
	// The pipeline's goroutines run until the returned cursor is exhausted or released, see Release.
	// Canceling the pipeline's context ends the cursor early; terminal operations then return the cause.
	PrefixPipeline
)

const (
	batchUnit = 1 << 10
	maxBatch  = 1 << 25
)

// Prefixer truncates cursors by a predicate over their leading elements.
// Both implementations returned by NewPrefixer produce the same elements.
// Cursors returned by a PrefixPipeline Prefixer must be exhausted or released, see Release.
type Prefixer[T any] interface {
	// TakeWhile returns a cursor over the leading elements of source that match pred.
	TakeWhile(ctx context.Context, source Cursor[T], pred Predicate[T]) Cursor[T]

	// DropWhile returns a cursor over the elements of source starting at the first element that does not match pred.
	DropWhile(ctx context.Context, source Cursor[T], pred Predicate[T]) Cursor[T]
}

type cursorPrefixer[T any] struct{}

// TakeWhileCursor is a cursor over the leading elements of a source cursor that match a predicate.
// The first element that does not match is consumed from the source, but not produced,
// and the cursor will not produce any more elements after that.
type TakeWhileCursor[T any] struct {
	source Cursor[T]
	pred   Predicate[T]
	done   bool
	batch  int
}

// DropWhileCursor is a cursor over the elements of a source cursor, skipping its leading elements
// that match a predicate.
type DropWhileCursor[T any] struct {
	source   Cursor[T]
	pred     Predicate[T]
	resolved bool
	batch    int
}

// NewPrefixer returns the Prefixer implementation for mode.
func NewPrefixer[T any](mode PrefixMode) Prefixer[T] {
	if mode == PrefixPipeline {
		return pipelinePrefixer[T]{}
	}

	return cursorPrefixer[T]{}
}

// String implements fmt.Stringer.
func (m PrefixMode) String() string {
	switch m {
	case PrefixCursors:
		return "cursors"
	case PrefixPipeline:
		return "pipeline"
	default:
		return "unknown"
	}
}

// TakeWhile implements Prefixer.
func (cursorPrefixer[T]) TakeWhile(_ context.Context, source Cursor[T], pred Predicate[T]) Cursor[T] {
	return NewTakeWhileCursor(source, pred)
}

// DropWhile implements Prefixer.
func (cursorPrefixer[T]) DropWhile(_ context.Context, source Cursor[T], pred Predicate[T]) Cursor[T] {
	return NewDropWhileCursor(source, pred)
}

// NewTakeWhileCursor returns a cursor over the leading elements of source that match pred.
// The returned cursor takes ownership of source.
func NewTakeWhileCursor[T any](source Cursor[T], pred Predicate[T]) *TakeWhileCursor[T] {
	return &TakeWhileCursor[T]{
		source: source,
		pred:   pred,
	}
}

// EstimateSize implements Cursor.
func (c *TakeWhileCursor[T]) EstimateSize() int64 {
	if c.done {
		return 0
	}

	return c.source.EstimateSize()
}

// Characteristics implements Cursor.
func (c *TakeWhileCursor[T]) Characteristics() Characteristics {
	return c.source.Characteristics() & (Ordered | Distinct | Immutable | Concurrent)
}

// TrySplit implements Cursor.
// Elements are split off in batches consumed through this cursor, since a cursor over a later part
// of the source cannot know whether an earlier element ended the prefix.
func (c *TakeWhileCursor[T]) TrySplit() Cursor[T] {
	if c.done {
		return nil
	}

	return splitBatch[T](c, &c.batch)
}

// TryAdvance implements Cursor.
func (c *TakeWhileCursor[T]) TryAdvance(action func(elem T)) bool {
	if c.done {
		return false
	}

	var cur T
	if c.source.TryAdvance(func(elem T) { cur = elem }) && c.pred(cur) {
		action(cur)
		return true
	}

	c.done = true

	return false
}

// ForEachRemaining implements Cursor.
func (c *TakeWhileCursor[T]) ForEachRemaining(action func(elem T)) {
	forEachRemaining[T](c, action)
}

// NewDropWhileCursor returns a cursor over the elements of source starting at the first element that does not match pred.
// The returned cursor takes ownership of source.
func NewDropWhileCursor[T any](source Cursor[T], pred Predicate[T]) *DropWhileCursor[T] {
	return &DropWhileCursor[T]{
		source: source,
		pred:   pred,
	}
}

// EstimateSize implements Cursor.
func (c *DropWhileCursor[T]) EstimateSize() int64 {
	return c.source.EstimateSize()
}

// Characteristics implements Cursor.
// Once the leading elements have been dropped, the remaining elements are exactly those of the source.
func (c *DropWhileCursor[T]) Characteristics() Characteristics {
	if c.resolved {
		return c.source.Characteristics() &^ Sorted
	}

	return c.source.Characteristics() & (Ordered | Distinct | Immutable | Concurrent)
}

// TrySplit implements Cursor.
func (c *DropWhileCursor[T]) TrySplit() Cursor[T] {
	if c.resolved {
		return c.source.TrySplit()
	}

	return splitBatch[T](c, &c.batch)
}

// TryAdvance implements Cursor.
func (c *DropWhileCursor[T]) TryAdvance(action func(elem T)) bool {
	if c.resolved {
		return c.source.TryAdvance(action)
	}

	var cur T
	for c.source.TryAdvance(func(elem T) { cur = elem }) {
		if !c.pred(cur) {
			c.resolved = true

			action(cur)

			return true
		}
	}

	return false
}

// ForEachRemaining implements Cursor.
func (c *DropWhileCursor[T]) ForEachRemaining(action func(elem T)) {
	if !c.resolved && !c.TryAdvance(action) {
		return
	}

	c.source.ForEachRemaining(action)
}

func (c *TakeWhileCursor[T]) stop() {
	Release(c.source)
}

func (c *TakeWhileCursor[T]) err() error {
	return cursorErr(c.source)
}

func (c *DropWhileCursor[T]) stop() {
	Release(c.source)
}

func (c *DropWhileCursor[T]) err() error {
	return cursorErr(c.source)
}

// splitBatch consumes up to the next batch of elements of c and returns a cursor over them.
// batch holds the size of the previous batch and is updated.
func splitBatch[T any](c Cursor[T], batch *int) Cursor[T] {
	size := c.EstimateSize()
	if size <= 0 {
		return nil
	}

	n := min(*batch+batchUnit, maxBatch)
	if size < int64(n) {
		n = int(size)
	}

	elems := []T{}
	for len(elems) < n && c.TryAdvance(func(elem T) { elems = append(elems, elem) }) {
	}

	if len(elems) == 0 {
		return nil
	}

	*batch = len(elems)

	return NewSliceCursor(elems, c.Characteristics()&(Sorted|Distinct))
}
