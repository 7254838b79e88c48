package flow

import (
	"context"
	"sync"

	"github.com/ib-77/res3/pkg/res"
)

// ToChanHandlers observes the feeding of values into a pipeline. All
// fields are optional.
type ToChanHandlers[T any] struct {
	OnStartFail func(ctx context.Context, input []T)
	OnSent      func(ctx context.Context, input T)
	OnBreak     func(ctx context.Context, rest []T)
}

// ToChan feeds the given values into a channel, stopping early when the
// context is cancelled.
func ToChan[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			return
		}

		for _, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// ToChanResults wraps each value as a success result and feeds it into a
// channel.
func ToChanResults[T, E any](ctx context.Context, values ...T) <-chan res.Result[T, E] {
	return ToChanResultsWith[T, E](ctx, ToChanHandlers[T]{}, values...)
}

// ToChanResultsWith is ToChanResults with feed observation handlers.
func ToChanResultsWith[T, E any](ctx context.Context, handlers ToChanHandlers[T], values ...T) <-chan res.Result[T, E] {
	in := make(chan res.Result[T, E])

	go func() {
		defer close(in)

		if ctx.Err() != nil {
			if handlers.OnStartFail != nil {
				handlers.OnStartFail(ctx, values)
			}
			return
		}

		for i, v := range values {
			select {
			case in <- res.Ok[T, E](v):
				if handlers.OnSent != nil {
					handlers.OnSent(ctx, v)
				}
			case <-ctx.Done():
				if handlers.OnBreak != nil {
					handlers.OnBreak(ctx, values[i:])
				}
				return
			}
		}
	}()

	return in
}

// FromChanFirstOrDefault returns the first value delivered on out, or
// defaultV when the channel closes or the context is cancelled first.
func FromChanFirstOrDefault[T any](ctx context.Context, out <-chan T, defaultV T) T {
	v := defaultV
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()

		select {
		case r, ok := <-out:
			if !ok {
				return
			}
			v = r
		case <-ctx.Done():
		}
	}()

	wg.Wait()
	return v
}

// FromChanMany collects every value delivered on out until it closes or
// the context is cancelled.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	collected := make([]T, 0)
	wg := &sync.WaitGroup{}
	wg.Add(1)

	go func() {
		defer wg.Done()

		for {
			select {
			case v, ok := <-out:
				if !ok {
					return
				}
				collected = append(collected, v)
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	return collected
}
