package flow

import (
	"context"
	"sync"

	"github.com/ib-77/res3/pkg/res"
)

// Engine processes a single result and delivers the processed result on
// the returned channel. Stages built with MapStage, AndThenStage and
// friends satisfy this type.
type Engine[In, EI, Out, EO any] func(ctx context.Context, input res.Result[In, EI]) <-chan res.Result[Out, EO]

// CancelHandlers routes results caught by a context cancellation. All
// fields are optional.
type CancelHandlers[In, EI, Out, EO any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan res.Result[In, EI], outCh chan<- res.Result[Out, EO])
	OnCancelUnprocessed func(ctx context.Context, unprocessed res.Result[In, EI], outCh chan<- res.Result[Out, EO])
	OnCancelProcessed   func(ctx context.Context, in res.Result[In, EI], processed res.Result[Out, EO], outCh chan<- res.Result[Out, EO])
}

// Locomotive is the worker loop driving one line of a stage: it pulls
// results from inputCh, runs them through engine and pushes the processed
// results to outCh until the input closes or the context is cancelled.
func Locomotive[In, EI, Out, EO any](ctx context.Context, inputCh <-chan res.Result[In, EI], outCh chan<- res.Result[Out, EO],
	engine Engine[In, EI, Out, EO], handlers CancelHandlers[In, EI, Out, EO],
	onOut func(ctx context.Context, out res.Result[Out, EO]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					return
				}

				select {
				case <-ctx.Done():
					if handlers.OnCancelProcessed != nil {
						handlers.OnCancelProcessed(ctx, in, pr, outCh)
					}
					if handlers.OnCancel != nil {
						handlers.OnCancel(ctx, inputCh, outCh)
					}
					return
				case outCh <- pr:
					if onOut != nil {
						onOut(ctx, pr)
					}
				}
			}
		}
	}
}
