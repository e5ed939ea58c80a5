package gostreams

// ConstCursor is a cursor producing the same value a fixed number of times.
type ConstCursor[T any] struct {
	value     T
	remaining int64
}

// NewConstCursor returns a cursor producing value length times.
// It returns ErrNegativeLength if length < 0.
func NewConstCursor[T any](value T, length int64) (*ConstCursor[T], error) {
	if length < 0 {
		return nil, ErrNegativeLength
	}

	return &ConstCursor[T]{
		value:     value,
		remaining: length,
	}, nil
}

// EstimateSize implements Cursor.
func (c *ConstCursor[T]) EstimateSize() int64 {
	return c.remaining
}

// Characteristics implements Cursor.
// A run of at most one element is trivially ordered, sorted, and distinct.
func (c *ConstCursor[T]) Characteristics() Characteristics {
	chars := Sized | Subsized | Immutable
	if c.remaining <= 1 {
		chars |= Ordered | Sorted | Distinct
	}

	return chars
}

// TrySplit implements Cursor.
func (c *ConstCursor[T]) TrySplit() Cursor[T] {
	if c.remaining < 2 {
		return nil
	}

	half := c.remaining / 2
	c.remaining -= half

	return &ConstCursor[T]{
		value:     c.value,
		remaining: half,
	}
}

// TryAdvance implements Cursor.
func (c *ConstCursor[T]) TryAdvance(action func(elem T)) bool {
	if c.remaining <= 0 {
		return false
	}

	c.remaining--

	action(c.value)

	return true
}

// ForEachRemaining implements Cursor.
func (c *ConstCursor[T]) ForEachRemaining(action func(elem T)) {
	n := c.remaining
	c.remaining = 0

	for i := int64(0); i < n; i++ {
		action(c.value)
	}
}
