package gostreams

import (
	"math/rand"
	"testing"

	"github.com/matryer/is"
	"golang.org/x/exp/slices"
)

// checkCursor verifies that cursors returned by supplier produce expected, when traversed sequentially,
// and when split randomly and traversed in random order. It also verifies that exhausted cursors
// stay exhausted.
func checkCursor[T any](t *testing.T, expected []T, supplier func() Cursor[T]) {
	t.Helper()

	is := is.New(t)

	is.Equal(drainAll(is, supplier()), expected)

	r := rand.New(rand.NewSource(1)) //nolint:gosec // deterministic splits

	for n := 0; n < 200; n++ {
		cursors := randomSplits(r, supplier(), r.Intn(10)+2)

		parts := make([][]T, len(cursors))
		for _, i := range r.Perm(len(cursors)) {
			parts[i] = drainAll(is, cursors[i])
		}

		is.Equal(concat(parts), expected)
	}

	for n := 0; n < 200; n++ {
		cursors := randomSplits(r, supplier(), r.Intn(30)+2)

		parts := make([][]T, len(cursors))
		done := make([]bool, len(cursors))
		active := len(cursors)

		for active > 0 {
			i := r.Intn(len(cursors))
			if done[i] {
				continue
			}

			if !cursors[i].TryAdvance(func(elem T) { parts[i] = append(parts[i], elem) }) {
				done[i] = true
				active--
			}
		}

		is.Equal(concat(parts), expected)
	}
}

// randomSplits splits c attempts times, each time splitting a random cursor of the result.
// The returned cursors are in encounter order.
func randomSplits[T any](r *rand.Rand, c Cursor[T], attempts int) []Cursor[T] {
	cursors := []Cursor[T]{c}

	for i := 0; i < attempts; i++ {
		idx := r.Intn(len(cursors))

		if prefix := cursors[idx].TrySplit(); prefix != nil {
			cursors = slices.Insert(cursors, idx, prefix)
		}
	}

	return cursors
}

// drainAll returns the remaining elements of c, and verifies that c is exhausted afterwards.
func drainAll[T any](is *is.I, c Cursor[T]) []T {
	elems := []T{}
	c.ForEachRemaining(func(elem T) {
		elems = append(elems, elem)
	})

	is.True(!c.TryAdvance(func(_ T) { is.True(false) })) // advanced after exhaustion
	c.ForEachRemaining(func(_ T) { is.True(false) })    // advanced after exhaustion

	return elems
}

func concat[T any](parts [][]T) []T {
	result := []T{}
	for _, part := range parts {
		result = append(result, part...)
	}

	return result
}

func intRange(lo int, hi int) []int {
	ints := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		ints = append(ints, i)
	}

	return ints
}

// chanOf returns a closed, buffered channel containing elems.
func chanOf[T any](elems ...T) <-chan T {
	ch := make(chan T, len(elems))
	for _, elem := range elems {
		ch <- elem
	}

	close(ch)

	return ch
}

func sub(a int, b int) int {
	return b - a
}

func lessThan(n int) Predicate[int] {
	return func(elem int) bool {
		return elem < n
	}
}
