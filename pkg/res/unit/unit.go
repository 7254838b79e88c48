package unit

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/res3/pkg/res"
)

// Unit is the empty success payload.
type Unit struct{}

// Result is the no-payload specialization: success carries nothing, only
// the error payload of type E is stored. It wraps res.Result[Unit, E] so
// every failure policy is inherited rather than re-implemented; its hook
// set is the (Unit, E) instantiation of the core registry.
type Result[E any] struct {
	r res.Result[Unit, E]
}

// Ok constructs a success result.
func Ok[E any]() Result[E] {
	return Result[E]{r: res.Ok[Unit, E](Unit{})}
}

// Err constructs an error result holding e.
func Err[E any](e E) Result[E] {
	return Result[E]{r: res.Err[Unit, E](e)}
}

// IsOk reports whether the result is a success.
func (r Result[E]) IsOk() bool {
	return r.r.IsOk()
}

// IsErr reports whether the result holds an error payload.
func (r Result[E]) IsErr() bool {
	return r.r.IsErr()
}

// Err returns the error payload, or the zero value of E on success.
func (r Result[E]) Err() E {
	return r.r.Err()
}

// Id returns the container identity assigned at construction.
func (r Result[E]) Id() uuid.UUID {
	return r.r.Id()
}

// CreatedAt returns the construction time (UTC).
func (r Result[E]) CreatedAt() time.Time {
	return r.r.CreatedAt()
}

// Match invokes onOk on success or onErr with the error payload.
func (r Result[E]) Match(onOk func(), onErr func(E)) {
	r.r.Match(func(Unit) {
		if onOk != nil {
			onOk()
		}
	}, onErr)
}

// MatchConsume hands the error payload over to onErr on failure. On the
// success path there is no payload to hand over; it behaves like Match.
func (r Result[E]) MatchConsume(onOk func(), onErr func(E)) {
	r.Match(onOk, onErr)
}

// Map invokes f on the success path and wraps its outcome as a valued
// success. An error payload is relocated unchanged.
func Map[E, U any](r Result[E], f func() U) res.Result[U, E] {
	return res.Map(r.r, func(Unit) U { return f() })
}

// AndThen sequences a valued operation on the success path. An error
// result short-circuits; f is never invoked.
func AndThen[E, U any](r Result[E], f func() res.Result[U, E]) res.Result[U, E] {
	return res.AndThen(r.r, func(Unit) res.Result[U, E] { return f() })
}

// OrElse sequences a recovery on the error path. A success result
// short-circuits with the new error type.
func OrElse[E, F any](r Result[E], f func(E) Result[F]) Result[F] {
	return Result[F]{r: res.OrElse(r.r, func(e E) res.Result[Unit, F] {
		return f(e).r
	})}
}

// Unwrap returns on success. On an error result it logs a fatal message
// and hands control to the termination strategy.
func (r Result[E]) Unwrap(context string) {
	r.r.Unwrap(context)
}

// Expect returns on success. On an error result it logs the failed
// expectation and terminates.
func (r Result[E]) Expect(message string) {
	r.r.Expect(message)
}

// UnwrapErr returns the error payload. Calling it on a success result is
// fatal.
func (r Result[E]) UnwrapErr(context string) E {
	return r.r.UnwrapErr(context)
}

// UnwrapOrLog logs a recoverable-tagged message on an error result and
// returns; execution continues either way.
func (r Result[E]) UnwrapOrLog(context string) {
	r.r.UnwrapOrLog(context, Unit{})
}

// UnwrapChecked logs a warning on an error result and returns.
func (r Result[E]) UnwrapChecked() {
	r.r.UnwrapChecked()
}

// SetLogHook configures the log hook of the (Unit, E) instantiation.
func SetLogHook[E any](fn func(message string)) {
	res.SetLogHook[Unit, E](fn)
}

// SetTerminateHook configures the termination hook of the (Unit, E)
// instantiation.
func SetTerminateHook[E any](fn func()) {
	res.SetTerminateHook[Unit, E](fn)
}

// ClearHooks resets the hooks of the (Unit, E) instantiation.
func ClearHooks[E any]() {
	res.ClearHooks[Unit, E]()
}
