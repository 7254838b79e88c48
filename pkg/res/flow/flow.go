package flow

import (
	"context"
	"sync"

	"github.com/ib-77/res3/pkg/res"
)

// Run executes an engine over an input channel with the given number of
// parallel lines, for stages that keep both payload types.
func Run[T, E any](ctx context.Context, inputCh <-chan res.Result[T, E],
	engine Engine[T, E, T, E], lines int) <-chan res.Result[T, E] {
	return RunWith(ctx, inputCh, engine, CancelHandlers[T, E, T, E]{}, nil, lines)
}

// Turnout executes an engine that switches the payload types.
func Turnout[In, EI, Out, EO any](ctx context.Context, inputCh <-chan res.Result[In, EI],
	engine Engine[In, EI, Out, EO], lines int) <-chan res.Result[Out, EO] {
	return RunWith(ctx, inputCh, engine, CancelHandlers[In, EI, Out, EO]{}, nil, lines)
}

// RunWith executes an engine with explicit cancellation handlers and an
// optional callback invoked for every delivered result. The output channel
// closes once all lines finish.
func RunWith[In, EI, Out, EO any](ctx context.Context, inputCh <-chan res.Result[In, EI],
	engine Engine[In, EI, Out, EO], handlers CancelHandlers[In, EI, Out, EO],
	onOut func(ctx context.Context, out res.Result[Out, EO]), lines int) <-chan res.Result[Out, EO] {

	out := make(chan res.Result[Out, EO])
	wg := &sync.WaitGroup{}

	for i := 0; i < lines; i++ {
		wg.Add(1)
		go Locomotive(ctx, inputCh, out, engine, handlers, onOut, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// stage lifts a synchronous transform into an engine-shaped channel
// delivery. The transform runs only while the context is alive; a
// cancelled stage closes its output without delivering.
func stage[In, EI, Out, EO any](ctx context.Context, input res.Result[In, EI],
	apply func(res.Result[In, EI]) res.Result[Out, EO],
	onCancel func(ctx context.Context, in res.Result[In, EI])) <-chan res.Result[Out, EO] {

	ch := make(chan res.Result[Out, EO])
	out := make(chan res.Result[Out, EO])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- apply(input)
		}
	}()

	go func() {
		defer close(out)

		select {
		case pr, ok := <-ch:
			if ok {
				out <- pr
			} else if onCancel != nil {
				onCancel(ctx, input)
			}
		case <-ctx.Done():
			if onCancel != nil {
				onCancel(ctx, input)
			}
		}
	}()

	return out
}

// MapStage lifts a success transform over channels.
func MapStage[In, E, Out any](f func(In) Out) Engine[In, E, Out, E] {
	return func(ctx context.Context, input res.Result[In, E]) <-chan res.Result[Out, E] {
		return stage(ctx, input, func(r res.Result[In, E]) res.Result[Out, E] {
			return res.Map(r, f)
		}, nil)
	}
}

// AndThenStage lifts a success-path bind over channels.
func AndThenStage[In, E, Out any](f func(In) res.Result[Out, E]) Engine[In, E, Out, E] {
	return func(ctx context.Context, input res.Result[In, E]) <-chan res.Result[Out, E] {
		return stage(ctx, input, func(r res.Result[In, E]) res.Result[Out, E] {
			return res.AndThen(r, f)
		}, nil)
	}
}

// MapErrorStage lifts an error transform over channels.
func MapErrorStage[T, E, F any](f func(E) F) Engine[T, E, T, F] {
	return func(ctx context.Context, input res.Result[T, E]) <-chan res.Result[T, F] {
		return stage(ctx, input, func(r res.Result[T, E]) res.Result[T, F] {
			return res.MapError(r, f)
		}, nil)
	}
}

// OrElseStage lifts an error-path recovery over channels.
func OrElseStage[T, E, F any](f func(E) res.Result[T, F]) Engine[T, E, T, F] {
	return func(ctx context.Context, input res.Result[T, E]) <-chan res.Result[T, F] {
		return stage(ctx, input, func(r res.Result[T, E]) res.Result[T, F] {
			return res.OrElse(r, f)
		}, nil)
	}
}

// TeeStage lifts a success side effect over channels; results pass through
// untouched.
func TeeStage[T, E any](onOk func(T)) Engine[T, E, T, E] {
	return func(ctx context.Context, input res.Result[T, E]) <-chan res.Result[T, E] {
		return stage(ctx, input, func(r res.Result[T, E]) res.Result[T, E] {
			return res.Tee(r, onOk)
		}, nil)
	}
}

// TryStage lifts a (value, error) call over channels, for streams whose
// error type is error.
func TryStage[In, Out any](try func(In) (Out, error)) Engine[In, error, Out, error] {
	return func(ctx context.Context, input res.Result[In, error]) <-chan res.Result[Out, error] {
		return stage(ctx, input, func(r res.Result[In, error]) res.Result[Out, error] {
			return res.AndThen(r, func(v In) res.Result[Out, error] {
				return res.Try(try(v))
			})
		}, nil)
	}
}

// FinallyHandlers reduce one result to a final value during Finalize.
type FinallyHandlers[In, E, Out any] struct {
	OnOk  func(ctx context.Context, v In) Out
	OnErr func(ctx context.Context, e E) Out
}

// Finalize collapses a result channel to a channel of plain values. It
// stops when the input closes or the context is cancelled.
func Finalize[In, E, Out any](ctx context.Context, inputCh <-chan res.Result[In, E],
	handlers FinallyHandlers[In, E, Out]) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				v := res.Finally(in,
					func(x In) Out { return handlers.OnOk(ctx, x) },
					func(e E) Out { return handlers.OnErr(ctx, e) })

				select {
				case <-ctx.Done():
					return
				case out <- v:
				}
			}
		}
	}()

	return out
}
