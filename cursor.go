package gostreams

import (
	"math"
	"strings"
)

// UnknownSize is returned by Cursor.EstimateSize if a cursor cannot estimate its remaining elements.
const UnknownSize = int64(math.MaxInt64)

// Characteristics is a set of traversal guarantees a cursor claims for its remaining elements.
type Characteristics uint32

const (
	// Ordered means elements have a defined encounter order, and TrySplit returns a prefix of that order.
	Ordered Characteristics = 1 << iota

	// Distinct means no two remaining elements are equal.
	Distinct

	// Sorted means elements are encountered in ascending order.
	Sorted

	// Sized means EstimateSize is the exact number of remaining elements.
	Sized

	// Subsized means all cursors produced by TrySplit are Sized as well.
	Subsized

	// Immutable means the element source cannot be modified during traversal.
	Immutable

	// Concurrent means the element source may be safely modified during traversal.
	Concurrent
)

var characteristicNames = []string{
	"ORDERED",
	"DISTINCT",
	"SORTED",
	"SIZED",
	"SUBSIZED",
	"IMMUTABLE",
	"CONCURRENT",
}

// Cursor is a stateful, splittable traversal over a sequence of elements.
//
// A cursor is owned by a single goroutine at a time. After TrySplit returns a new cursor,
// both cursors may be traversed by different goroutines without further coordination.
type Cursor[T any] interface {
	// EstimateSize returns the number of remaining elements, or UnknownSize.
	// The estimate is exact if the cursor is Sized.
	EstimateSize() int64

	// Characteristics returns the guarantees of this cursor.
	Characteristics() Characteristics

	// TrySplit carves off a cursor covering a prefix of the remaining elements,
	// leaving the rest to this cursor. It returns nil if the cursor cannot be split.
	TrySplit() Cursor[T]

	// TryAdvance calls action with the next element and returns true,
	// or returns false without calling action if there are no elements left.
	TryAdvance(action func(elem T)) bool

	// ForEachRemaining calls action for each remaining element, in order.
	ForEachRemaining(action func(elem T))
}

// Has returns true if c contains all of flags.
func (c Characteristics) Has(flags Characteristics) bool {
	return c&flags == flags
}

// String implements fmt.Stringer.
func (c Characteristics) String() string {
	names := []string{}

	for i, name := range characteristicNames {
		if c&(1<<i) != 0 {
			names = append(names, name)
		}
	}

	return strings.Join(names, "|")
}

// ExactSize returns the number of remaining elements of c if c is Sized, or -1 otherwise.
func ExactSize[T any](c Cursor[T]) int64 {
	if !c.Characteristics().Has(Sized) {
		return -1
	}

	return c.EstimateSize()
}

// forEachRemaining calls action for each remaining element of c by repeatedly calling c.TryAdvance.
func forEachRemaining[T any](c Cursor[T], action func(elem T)) {
	for c.TryAdvance(action) {
	}
}

// pipelined is implemented by cursors that are fed by goroutines, and by cursors wrapping them.
type pipelined interface {
	// stop releases the goroutines feeding the cursor, if any.
	// A cursor fed by goroutines is exhausted afterwards.
	stop()

	// err returns the error that ended the cursor's elements early, if any.
	err() error
}

// Release stops the goroutines feeding c, such as those of a PrefixPipeline Prefixer.
// The terminal operations release the cursors they traverse. Callers traversing a cursor
// themselves must release it if they stop before it is exhausted.
// Release does nothing for cursors that are not fed by goroutines.
func Release[T any](c Cursor[T]) {
	if p, ok := c.(pipelined); ok {
		p.stop()
	}
}

// cursorErr returns the error that ended c's elements early, if any.
func cursorErr[T any](c Cursor[T]) error {
	if p, ok := c.(pipelined); ok {
		return p.err()
	}

	return nil
}
