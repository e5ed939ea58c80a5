package gostreams

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeLength is returned when a cursor is constructed with a negative length.
	ErrNegativeLength = errors.New("negative length")

	// ErrInvalidRange is returned when an index range does not satisfy 0 <= lo <= hi <= length.
	ErrInvalidRange = errors.New("invalid index range")

	// ErrCapacityExceeded is wrapped by CapacityError.
	ErrCapacityExceeded = errors.New("buffer capacity exceeded")

	// ErrPrefixEnded is the error used to cancel the upstream producer of a TakeWhile producer
	// once an element did not match the predicate.
	ErrPrefixEnded = errors.New("prefix ended")
)

// A LengthMismatchError is returned when two slices that must be zipped have different lengths.
type LengthMismatchError struct {
	// First is the length of the first slice.
	First int

	// Second is the length of the second slice.
	Second int
}

// A CapacityError is returned when a buffer would need to grow beyond MaxCapacity.
type CapacityError struct {
	// Requested is the minimum capacity that was requested.
	Requested int
}

// panicError carries a value recovered from a panicking cursor traversal
// so that it can be raised again in the calling goroutine.
type panicError struct {
	value any
}

// Error implements error.
func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: %d != %d", e.First, e.Second)
}

// Error implements error.
func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: requested %d, max %d", ErrCapacityExceeded, e.Requested, MaxCapacity)
}

// Unwrap returns ErrCapacityExceeded.
func (e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}

// Error implements error.
func (e *panicError) Error() string {
	return fmt.Sprintf("panic during traversal: %v", e.value)
}
