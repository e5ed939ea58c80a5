// Package gostreams provides splittable cursors over sequences of elements, and growable buffers
// of numbers for collecting them into slices.
//
// A Cursor is a stateful traversal that can be split into cursors over disjoint, consecutive parts
// of its remaining elements. Split cursors may then be traversed by different goroutines. Cursors are
// provided for operations that need care when split:
//
//   - PairCursor maps each pair of adjacent elements of a source cursor, including the pairs
//     that straddle split points.
//   - ZipCursor maps the elements at equal indexes of two slices.
//   - ConstCursor produces the same value a fixed number of times.
//   - TakeWhileCursor and DropWhileCursor truncate a source cursor by a predicate over its leading elements.
//
// Cursors are decomposed and traversed by an Executor, which is passed explicitly to terminal operations
// such as ToSlice and ToArray. ToArray accumulates elements in Buffers, which are pre-sized if the number
// of elements is known upfront.
//
// Cursors do not synchronize. A cursor must only be used by one goroutine at a time, and a Buffer
// must only be modified by one goroutine at a time.
package gostreams
