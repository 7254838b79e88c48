package flow

import (
	"context"

	"github.com/ib-77/res3/pkg/res"
)

// DrainRemaining converts every input left in inputCh after a cancellation
// into an error result built by brokenF and pushes them to outCh. It does
// nothing when remaining processing is disabled via WithProcessOptions.
// Suitable as a CancelHandlers.OnCancel.
func DrainRemaining[In, EI, Out, EO any](brokenF func(in res.Result[In, EI]) res.Result[Out, EO]) func(
	ctx context.Context, inputCh <-chan res.Result[In, EI], outCh chan<- res.Result[Out, EO]) {

	return func(ctx context.Context, inputCh <-chan res.Result[In, EI], outCh chan<- res.Result[Out, EO]) {
		if !ProcessRemainingEnabled(ctx, true) {
			return
		}

		for in := range inputCh {
			outCh <- brokenF(in)
		}
	}
}

// DrainOne converts a single unprocessed input into an error result built
// by brokenF. Suitable as a CancelHandlers.OnCancelUnprocessed.
func DrainOne[In, EI, Out, EO any](brokenF func(in res.Result[In, EI]) res.Result[Out, EO]) func(
	ctx context.Context, unprocessed res.Result[In, EI], outCh chan<- res.Result[Out, EO]) {

	return func(ctx context.Context, unprocessed res.Result[In, EI], outCh chan<- res.Result[Out, EO]) {
		if !ProcessRemainingEnabled(ctx, true) {
			return
		}

		outCh <- brokenF(unprocessed)
	}
}
