package gostreams

// BinaryFunc returns the result of combining elements a and b.
type BinaryFunc[A any, B any, R any] func(a A, b B) R

// ZipCursor is a cursor producing mapper(first[i], second[i]) for each index i of a range of two equal-length slices.
// Split cursors share the same backing slices.
type ZipCursor[A any, B any, R any] struct {
	first  []A
	second []B
	mapper BinaryFunc[A, B, R]
	lo     int
	hi     int
}

// Zip returns a cursor producing mapper(first[i], second[i]) for all indexes of first and second.
// It returns a *LengthMismatchError if the slices have different lengths.
func Zip[A any, B any, R any](first []A, second []B, mapper BinaryFunc[A, B, R]) (*ZipCursor[A, B, R], error) {
	return NewZipCursor(first, second, 0, len(first), mapper)
}

// NewZipCursor returns a cursor producing mapper(first[i], second[i]) for lo <= i < hi.
// It returns a *LengthMismatchError if the slices have different lengths,
// or ErrInvalidRange if the range is not within the slices.
func NewZipCursor[A any, B any, R any](first []A, second []B, lo int, hi int, mapper BinaryFunc[A, B, R]) (*ZipCursor[A, B, R], error) {
	if len(first) != len(second) {
		return nil, &LengthMismatchError{
			First:  len(first),
			Second: len(second),
		}
	}

	if lo < 0 || lo > hi || hi > len(first) {
		return nil, ErrInvalidRange
	}

	return &ZipCursor[A, B, R]{
		first:  first,
		second: second,
		mapper: mapper,
		lo:     lo,
		hi:     hi,
	}, nil
}

// EstimateSize implements Cursor.
func (c *ZipCursor[A, B, R]) EstimateSize() int64 {
	return int64(c.hi - c.lo)
}

// Characteristics implements Cursor.
func (c *ZipCursor[A, B, R]) Characteristics() Characteristics {
	return Ordered | Sized | Subsized | Immutable
}

// TrySplit implements Cursor.
func (c *ZipCursor[A, B, R]) TrySplit() Cursor[R] {
	if c.hi-c.lo < 2 {
		return nil
	}

	lo := c.lo
	mid := lo + (c.hi-lo)/2
	c.lo = mid

	return &ZipCursor[A, B, R]{
		first:  c.first,
		second: c.second,
		mapper: c.mapper,
		lo:     lo,
		hi:     mid,
	}
}

// TryAdvance implements Cursor.
func (c *ZipCursor[A, B, R]) TryAdvance(action func(elem R)) bool {
	if c.lo >= c.hi {
		return false
	}

	i := c.lo
	c.lo++

	action(c.mapper(c.first[i], c.second[i]))

	return true
}

// ForEachRemaining implements Cursor.
func (c *ZipCursor[A, B, R]) ForEachRemaining(action func(elem R)) {
	lo, hi := c.lo, c.hi
	c.lo = hi

	for i := lo; i < hi; i++ {
		action(c.mapper(c.first[i], c.second[i]))
	}
}
