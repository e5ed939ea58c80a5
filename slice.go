package gostreams

// SliceCursor is a cursor over the elements of a slice.
// Split cursors share the same backing slice.
type SliceCursor[T any] struct {
	elems           []T
	index           int
	end             int
	characteristics Characteristics
}

// OfSlice returns a cursor over elems.
func OfSlice[T any](elems ...T) *SliceCursor[T] {
	return NewSliceCursor(elems, 0)
}

// NewSliceCursor returns a cursor over elems which additionally reports the given characteristics,
// such as Sorted or Distinct if the caller knows them to hold.
// The cursor is always Ordered, Sized, Subsized, and Immutable.
func NewSliceCursor[T any](elems []T, additional Characteristics) *SliceCursor[T] {
	return &SliceCursor[T]{
		elems:           elems,
		end:             len(elems),
		characteristics: additional | Ordered | Sized | Subsized | Immutable,
	}
}

// EstimateSize implements Cursor.
func (c *SliceCursor[T]) EstimateSize() int64 {
	return int64(c.end - c.index)
}

// Characteristics implements Cursor.
func (c *SliceCursor[T]) Characteristics() Characteristics {
	return c.characteristics
}

// TrySplit implements Cursor.
func (c *SliceCursor[T]) TrySplit() Cursor[T] {
	lo := c.index
	mid := lo + (c.end-lo)/2

	if lo >= mid {
		return nil
	}

	c.index = mid

	return &SliceCursor[T]{
		elems:           c.elems,
		index:           lo,
		end:             mid,
		characteristics: c.characteristics,
	}
}

// TryAdvance implements Cursor.
func (c *SliceCursor[T]) TryAdvance(action func(elem T)) bool {
	if c.index >= c.end {
		return false
	}

	elem := c.elems[c.index]
	c.index++

	action(elem)

	return true
}

// ForEachRemaining implements Cursor.
func (c *SliceCursor[T]) ForEachRemaining(action func(elem T)) {
	elems := c.elems[c.index:c.end]
	c.index = c.end

	for _, elem := range elems {
		action(elem)
	}
}
