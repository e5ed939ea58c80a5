package gostreams

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestBuffer_Append(t *testing.T) {
	is := is.New(t)

	buf := NewBuffer[int16]()
	is.Equal(buf.Cap(), defaultBufferCapacity)

	expected := []int16{}
	for i := int16(0); i < 100; i++ {
		buf.Append(i)
		expected = append(expected, i)
	}

	is.Equal(buf.Len(), 100)
	is.True(buf.Cap() >= 100)
	is.Equal(buf.ToArray(), expected)
}

func TestBuffer_AppendDoublesCapacity(t *testing.T) {
	is := is.New(t)

	buf := NewBuffer[int8]()
	for i := 0; i < defaultBufferCapacity+1; i++ {
		buf.Append(int8(i))
	}

	is.Equal(buf.Cap(), 2*defaultBufferCapacity)
}

func TestBuffer_AppendUnsafe(t *testing.T) {
	is := is.New(t)

	buf, err := NewSizedBuffer[uint16](3)
	is.NoErr(err)

	buf.AppendUnsafe('a')
	buf.AppendUnsafe('b')
	buf.AppendUnsafe('c')

	is.Equal(buf.Cap(), 3)
	is.Equal(buf.ToArray(), []uint16{'a', 'b', 'c'})
}

func TestBuffer_AddAll(t *testing.T) {
	is := is.New(t)

	first := NewBuffer[float32]()
	first.Append(1)
	first.Append(2)

	second, err := NewSizedBuffer[float32](20)
	is.NoErr(err)

	for i := 0; i < 20; i++ {
		second.AppendUnsafe(float32(i + 3))
	}

	is.NoErr(first.AddAll(second))
	is.NoErr(first.AddAll(NewBuffer[float32]()))

	expected := []float32{}
	for i := 1; i <= 22; i++ {
		expected = append(expected, float32(i))
	}

	is.Equal(first.ToArray(), expected)

	// other is left untouched
	is.Equal(second.Len(), 20)
}

func TestBuffer_Grow(t *testing.T) {
	is := is.New(t)

	buf := NewBuffer[int]()
	buf.Append(1)

	is.NoErr(buf.Grow(5))
	is.Equal(buf.Cap(), defaultBufferCapacity)

	is.NoErr(buf.Grow(15))
	is.Equal(buf.Cap(), 2*defaultBufferCapacity)

	is.NoErr(buf.Grow(100))
	is.Equal(buf.Cap(), 100)

	is.Equal(buf.ToArray(), []int{1})
}

func TestBuffer_GrowBeyondMaxCapacity(t *testing.T) {
	is := is.New(t)

	buf := NewBuffer[int8]()

	err := buf.Grow(MaxCapacity + 1)
	is.True(errors.Is(err, ErrCapacityExceeded))

	var capacityErr *CapacityError

	is.True(errors.As(err, &capacityErr))
	is.Equal(capacityErr.Requested, MaxCapacity+1)

	is.Equal(buf.Cap(), defaultBufferCapacity)
}

func TestBuffer_AddAllBeyondMaxCapacity(t *testing.T) {
	is := is.New(t)

	one := NewBuffer[int8]()
	one.Append(1)

	full := &Buffer[int8]{size: MaxCapacity}

	err := full.AddAll(one)
	is.True(errors.Is(err, ErrCapacityExceeded))

	var capacityErr *CapacityError

	is.True(errors.As(err, &capacityErr))
	is.Equal(capacityErr.Requested, MaxCapacity+1)

	is.Equal(full.Len(), MaxCapacity)
	is.Equal(full.Cap(), 0)
}

func TestBuffer_AppendBeyondMaxCapacity(t *testing.T) {
	is := is.New(t)

	full := &Buffer[int8]{size: MaxCapacity}

	defer func() {
		err, ok := recover().(error)
		is.True(ok) // did not panic with an error

		var capacityErr *CapacityError

		is.True(errors.As(err, &capacityErr))
		is.Equal(capacityErr.Requested, MaxCapacity+1)
	}()

	full.Append(1)

	is.True(false) // did not panic
}

func TestNewSizedBuffer_Invalid(t *testing.T) {
	is := is.New(t)

	_, err := NewSizedBuffer[int](-1)
	is.True(errors.Is(err, ErrNegativeLength))

	_, err = NewSizedBuffer[int](MaxCapacity + 1)
	is.True(errors.Is(err, ErrCapacityExceeded))
}

func TestBuffer_ToArrayCopies(t *testing.T) {
	is := is.New(t)

	buf := NewBuffer[int]()
	buf.Append(1)

	arr := buf.ToArray()
	arr[0] = 2

	buf.Append(3)

	is.Equal(buf.ToArray(), []int{1, 3})
	is.Equal(NewBuffer[int]().ToArray(), []int{})
}

func TestBuffer_Family(t *testing.T) {
	is := is.New(t)

	var (
		bytes  ByteBuffer
		chars  CharBuffer
		shorts ShortBuffer
		floats FloatBuffer
	)

	bytes.Append(-1)
	chars.Append('x')
	shorts.Append(-300)
	floats.Append(1.5)

	is.Equal(bytes.ToArray(), []int8{-1})
	is.Equal(chars.ToArray(), []uint16{'x'})
	is.Equal(shorts.ToArray(), []int16{-300})
	is.Equal(floats.ToArray(), []float32{1.5})
}
