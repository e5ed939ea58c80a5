package gostreams

import (
	"math"

	"golang.org/x/exp/constraints"
)

// MaxCapacity is the largest capacity a Buffer can grow to.
const MaxCapacity = math.MaxInt32 - 8

const defaultBufferCapacity = 10

// Number is a constraint for the element types of Buffer.
type Number interface {
	constraints.Integer | constraints.Float
}

// Buffer is an append-only buffer of numbers that grows as needed,
// and that can be materialized into a slice of exactly its length.
//
// The zero value is an empty buffer ready to use.
// A Buffer must not be used by multiple goroutines concurrently.
type Buffer[T Number] struct {
	data []T
	size int
}

type (
	// ByteBuffer is a Buffer of signed bytes.
	ByteBuffer = Buffer[int8]

	// CharBuffer is a Buffer of UTF-16 code units.
	CharBuffer = Buffer[uint16]

	// ShortBuffer is a Buffer of 16-bit integers.
	ShortBuffer = Buffer[int16]

	// FloatBuffer is a Buffer of 32-bit floats.
	FloatBuffer = Buffer[float32]
)

// NewBuffer returns an empty buffer with a small default capacity.
func NewBuffer[T Number]() *Buffer[T] {
	return &Buffer[T]{
		data: make([]T, defaultBufferCapacity),
	}
}

// NewSizedBuffer returns an empty buffer with the given capacity.
// It returns ErrNegativeLength if capacity is negative, or a *CapacityError if it exceeds MaxCapacity.
func NewSizedBuffer[T Number](capacity int) (*Buffer[T], error) {
	if capacity < 0 {
		return nil, ErrNegativeLength
	}

	if capacity > MaxCapacity {
		return nil, &CapacityError{Requested: capacity}
	}

	return &Buffer[T]{
		data: make([]T, capacity),
	}, nil
}

// Len returns the number of elements appended so far.
func (b *Buffer[T]) Len() int {
	return b.size
}

// Cap returns the number of elements the buffer can hold without growing.
func (b *Buffer[T]) Cap() int {
	return len(b.data)
}

// Append appends v, growing the buffer if it is full.
// It panics with a *CapacityError if the buffer cannot grow any further.
func (b *Buffer[T]) Append(v T) {
	if b.size >= len(b.data) {
		if err := b.Grow(b.size + 1); err != nil {
			panic(err)
		}
	}

	b.data[b.size] = v
	b.size++
}

// AppendUnsafe appends v without checking capacity.
// It must only be used on a buffer that was sized to hold all elements that will be appended.
func (b *Buffer[T]) AppendUnsafe(v T) {
	b.data[b.size] = v
	b.size++
}

// AddAll appends all elements of other, in order, growing the buffer as needed.
func (b *Buffer[T]) AddAll(other *Buffer[T]) error {
	if other.size == 0 {
		return nil
	}

	if other.size > MaxCapacity-b.size {
		return &CapacityError{Requested: b.size + other.size}
	}

	if err := b.Grow(b.size + other.size); err != nil {
		return err
	}

	copy(b.data[b.size:], other.data[:other.size])
	b.size += other.size

	return nil
}

// Grow ensures that the buffer can hold at least minCapacity elements.
// The capacity is doubled, or set to minCapacity if doubling is not enough.
// It returns a *CapacityError if minCapacity exceeds MaxCapacity.
func (b *Buffer[T]) Grow(minCapacity int) error {
	if minCapacity <= len(b.data) {
		return nil
	}

	if minCapacity > MaxCapacity {
		return &CapacityError{Requested: minCapacity}
	}

	newCapacity := MaxCapacity
	if len(b.data) <= MaxCapacity/2 {
		newCapacity = max(len(b.data)*2, minCapacity)
	}

	data := make([]T, newCapacity)
	copy(data, b.data[:b.size])
	b.data = data

	return nil
}

// ToArray returns a new slice containing the appended elements, in order.
func (b *Buffer[T]) ToArray() []T {
	result := make([]T, b.size)
	copy(result, b.data[:b.size])

	return result
}
