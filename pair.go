package gostreams

// PairCursor is a cursor producing mapper(e[i], e[i+1]) for each pair of adjacent elements e[i], e[i+1]
// of a source cursor. A source of n elements yields max(n-1, 0) results.
//
// When split, the element at the split point is carried over as a boundary so that the pair
// straddling the split is computed by exactly one of the two cursors.
type PairCursor[T any, R any] struct {
	source Cursor[T]
	mapper BinaryFunc[T, T, R]

	// last is the left element of the next pair.
	last    T
	hasLast bool

	// tail is the boundary element following the source's last element.
	tail    T
	hasTail bool
}

// NewPairCursor returns a cursor producing mapper(e[i], e[i+1]) for adjacent elements of source.
// The returned cursor takes ownership of source.
func NewPairCursor[T any, R any](source Cursor[T], mapper BinaryFunc[T, T, R]) *PairCursor[T, R] {
	return &PairCursor[T, R]{
		source: source,
		mapper: mapper,
	}
}

// EstimateSize implements Cursor.
func (c *PairCursor[T, R]) EstimateSize() int64 {
	size := c.source.EstimateSize()
	if size == UnknownSize {
		return UnknownSize
	}

	if c.hasLast {
		size++
	}

	if c.hasTail {
		size++
	}

	if size < 1 {
		return 0
	}

	return size - 1
}

// Characteristics implements Cursor.
func (c *PairCursor[T, R]) Characteristics() Characteristics {
	return c.source.Characteristics() &^ (Sorted | Distinct)
}

// TrySplit implements Cursor.
func (c *PairCursor[T, R]) TrySplit() Cursor[R] {
	prefixSource := c.source.TrySplit()
	if prefixSource == nil {
		return nil
	}

	prefix := &PairCursor[T, R]{
		source:  prefixSource,
		mapper:  c.mapper,
		last:    c.last,
		hasLast: c.hasLast,
	}

	var first T
	if !c.source.TryAdvance(func(elem T) { first = elem }) {
		// nothing left on our side, the prefix covers everything
		prefix.tail, prefix.hasTail = c.tail, c.hasTail
		c.reset()

		return prefix
	}

	prefix.tail, prefix.hasTail = first, true
	c.last, c.hasLast = first, true

	return prefix
}

// TryAdvance implements Cursor.
func (c *PairCursor[T, R]) TryAdvance(action func(elem R)) bool {
	if !c.hasLast {
		if !c.next(&c.last) {
			return false
		}

		c.hasLast = true
	}

	var cur T
	if !c.next(&cur) {
		return false
	}

	result := c.mapper(c.last, cur)
	c.last = cur

	action(result)

	return true
}

// ForEachRemaining implements Cursor.
func (c *PairCursor[T, R]) ForEachRemaining(action func(elem R)) {
	if !c.hasLast {
		if !c.next(&c.last) {
			return
		}

		c.hasLast = true
	}

	c.source.ForEachRemaining(func(elem T) {
		result := c.mapper(c.last, elem)
		c.last = elem

		action(result)
	})

	if c.hasTail {
		tail := c.tail
		c.clearTail()

		result := c.mapper(c.last, tail)
		c.last = tail

		action(result)
	}
}

// next stores the next element of the source, or the boundary element once the source is exhausted, in elem.
func (c *PairCursor[T, R]) next(elem *T) bool {
	if c.source.TryAdvance(func(e T) { *elem = e }) {
		return true
	}

	if !c.hasTail {
		return false
	}

	*elem = c.tail
	c.clearTail()

	return true
}

func (c *PairCursor[T, R]) clearTail() {
	var zero T
	c.tail, c.hasTail = zero, false
}

func (c *PairCursor[T, R]) reset() {
	var zero T
	c.last, c.hasLast = zero, false
	c.clearTail()
}

func (c *PairCursor[T, R]) stop() {
	Release(c.source)
}

func (c *PairCursor[T, R]) err() error {
	return cursorErr(c.source)
}
