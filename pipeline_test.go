package gostreams

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
)

func TestProduceCursor(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	ints := []int{}
	for i := range ProduceCursor[int](OfSlice(1, 2, 3))(ctx, cancel) {
		ints = append(ints, i)
	}

	is.Equal(ints, []int{1, 2, 3})
}

func TestProduceCursor_CalledTwice(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	prod := ProduceCursor[int](OfSlice[int]())

	for range prod(ctx, cancel) {
	}

	defer func() {
		is.True(recover() != nil)
	}()

	prod(ctx, cancel)
}

func TestProduceCursor_Panic(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	c := NewPairCursor[int, int](OfSlice(1, 2, 3), func(a int, b int) int {
		panic("boom")
	})

	for range ProduceCursor[int](c)(ctx, cancel) {
		is.True(false) // produced element
	}

	var panicErr *panicError

	is.True(errors.As(context.Cause(ctx), &panicErr))
	is.Equal(panicErr.value, "boom")
}

func TestTakeWhile(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	var upstreamCtx context.Context

	upstream := func(ctx context.Context, cancel context.CancelCauseFunc) <-chan int {
		upstreamCtx = ctx
		return ProduceCursor[int](OfSlice(1, 2, 3, 4, 1))(ctx, cancel)
	}

	ints := []int{}
	for i := range TakeWhile(upstream, FuncPredicate(lessThan(3)))(ctx, cancel) {
		ints = append(ints, i)
	}

	is.Equal(ints, []int{1, 2})

	<-upstreamCtx.Done()
	is.True(errors.Is(context.Cause(upstreamCtx), ErrPrefixEnded))
	is.NoErr(ctx.Err())
}

func TestTakeWhile_Index(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	pred := func(_ context.Context, _ context.CancelCauseFunc, elem int, index uint64) bool {
		is.Equal(index, uint64(elem-1))
		return elem < 4
	}

	ints := []int{}
	for i := range TakeWhile(ProduceCursor[int](OfSlice(1, 2, 3, 4, 5)), pred)(ctx, cancel) {
		ints = append(ints, i)
	}

	is.Equal(ints, []int{1, 2, 3})
}

func TestTakeWhile_Cancel(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	pred := func(_ context.Context, cancel context.CancelCauseFunc, elem int, _ uint64) bool {
		if elem == 2 {
			cancel(nil)
		}

		return true
	}

	ints := []int{}
	for i := range TakeWhile(ProduceCursor[int](OfSlice(1, 2, 3)), pred)(ctx, cancel) {
		ints = append(ints, i)
	}

	is.Equal(ints, []int{1})
	is.True(errors.Is(ctx.Err(), context.Canceled))
}

func TestDropWhile(t *testing.T) {
	is := is.New(t)

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(nil)

	ints := []int{}
	for i := range DropWhile(ProduceCursor[int](OfSlice(1, 2, 3, 4, 1)), FuncPredicate(lessThan(3)))(ctx, cancel) {
		ints = append(ints, i)
	}

	is.Equal(ints, []int{3, 4, 1})
}

func TestPipelinePrefixer_PredicatePanic(t *testing.T) {
	is := is.New(t)

	prefixer := NewPrefixer[int](PrefixPipeline)

	c := prefixer.TakeWhile(context.Background(), OfSlice(1, 2, 3), func(elem int) bool {
		if elem == 2 {
			panic("boom")
		}

		return true
	})

	defer func() {
		is.Equal(recover(), "boom")
	}()

	c.ForEachRemaining(func(_ int) {})

	is.True(false) // did not panic
}
