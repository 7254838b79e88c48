package chain

import (
	"github.com/ib-77/res3/pkg/res"
)

// Chain wraps a res.Result to enable fluent composition. Same-type steps
// are methods; steps that change the success or error type are package
// functions (Then, Map, MapErr, Finally).
type Chain[T, E any] struct {
	res res.Result[T, E]
}

// Start creates a chain from an existing result.
func Start[T, E any](r res.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

// FromValue creates a chain from a successful value.
func FromValue[T, E any](v T) Chain[T, E] {
	return Start(res.Ok[T, E](v))
}

// Result returns the underlying res.Result.
func (c Chain[T, E]) Result() res.Result[T, E] {
	return c.res
}

// Then composes a function that already returns a result of the same
// types. Errors short-circuit.
func (c Chain[T, E]) Then(onOk func(T) res.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: res.AndThen(c.res, onOk)}
}

// Map transforms the successful value in place.
func (c Chain[T, E]) Map(onOk func(T) T) Chain[T, E] {
	return Chain[T, E]{res: res.Map(c.res, onOk)}
}

// MapErr transforms the error payload in place.
func (c Chain[T, E]) MapErr(onErr func(E) E) Chain[T, E] {
	return Chain[T, E]{res: res.MapError(c.res, onErr)}
}

// OrElse recovers from an error with a function returning a result of the
// same types. Successes short-circuit.
func (c Chain[T, E]) OrElse(onErr func(E) res.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: res.OrElse(c.res, onErr)}
}

// Ensure triggers side effects for the live payload without changing the
// result. Nil callbacks are skipped.
func (c Chain[T, E]) Ensure(onOk func(T), onErr func(E)) Chain[T, E] {
	if c.res.IsErr() {
		if onErr != nil {
			onErr(c.res.Err())
		}
		return c
	}

	if onOk != nil {
		onOk(c.res.Value())
	}
	return c
}

// Then composes a function that switches the success type.
func Then[T, E, U any](c Chain[T, E], onOk func(T) res.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{res: res.AndThen(c.res, onOk)}
}

// Map transforms the successful value to a new type.
func Map[T, E, U any](c Chain[T, E], onOk func(T) U) Chain[U, E] {
	return Chain[U, E]{res: res.Map(c.res, onOk)}
}

// MapErr transforms the error payload to a new type.
func MapErr[T, E, F any](c Chain[T, E], onErr func(E) F) Chain[T, F] {
	return Chain[T, F]{res: res.MapError(c.res, onErr)}
}

// ThenTry composes a function following Go's (value, error) convention,
// for chains whose error type is error.
func ThenTry[T, U any](c Chain[T, error], try func(T) (U, error)) Chain[U, error] {
	return Chain[U, error]{res: res.AndThen(c.res, func(v T) res.Result[U, error] {
		return res.Try(try(v))
	})}
}

// Finally collapses the chain to a concrete value via the handler
// matching its state.
func Finally[T, E, U any](c Chain[T, E], onOk func(T) U, onErr func(E) U) U {
	return res.Finally(c.res, onOk, onErr)
}
