package res

import (
	"fmt"
	"reflect"
)

// Unwrap returns the success payload. On an error result it logs a fatal
// message built from context and the stringified error, then hands control
// to the termination strategy of the (T, E) hook set.
func (r Result[T, E]) Unwrap(context string) T {
	if r.ok {
		return r.value
	}

	h := hooksOf[T, E]()
	h.logError("FATAL: Attempted to unwrap an Err value - " + r.describe(context))
	h.terminateNow()

	var zero T
	return zero
}

// Expect returns the success payload. On an error result it logs a fatal
// message carrying the failed expectation, then terminates.
func (r Result[T, E]) Expect(message string) T {
	if r.ok {
		return r.value
	}

	h := hooksOf[T, E]()
	h.logError("FATAL: Expectation failed: " + message + ". " + r.describe(""))
	h.terminateNow()

	var zero T
	return zero
}

// UnwrapErr returns the error payload. Calling it on a success result is
// fatal: a message is logged and the termination strategy is invoked.
func (r Result[T, E]) UnwrapErr(context string) E {
	if !r.ok {
		return r.err
	}

	h := hooksOf[T, E]()
	h.logError("FATAL: Attempted to unwrapErr an Ok value - " + r.describe(context))
	h.terminateNow()

	var zero E
	return zero
}

// UnwrapOr returns the success payload, or fallback on an error result.
// No hooks are consulted on either path.
func (r Result[T, E]) UnwrapOr(fallback T) T {
	if r.ok {
		return r.value
	}
	return fallback
}

// UnwrapOrElse returns the success payload, or the value produced by
// fallback on an error result. The fallback runs only when needed and no
// hooks are consulted.
func (r Result[T, E]) UnwrapOrElse(fallback func() T) T {
	if r.ok {
		return r.value
	}
	return fallback()
}

// UnwrapOrLog returns the success payload. On an error result it logs a
// recoverable-tagged message and returns fallback; execution continues.
func (r Result[T, E]) UnwrapOrLog(context string, fallback T) T {
	if r.ok {
		return r.value
	}

	hooksOf[T, E]().logError("RECOVERABLE: " + r.describe(context))
	return fallback
}

// UnwrapChecked returns the success payload, or the zero value of T after
// logging a warning on an error result. Meant for call sites that checked
// IsOk already.
func (r Result[T, E]) UnwrapChecked() T {
	if !r.ok {
		hooksOf[T, E]().logError("Warning: Attempted to unwrapChecked an Err value")
		var zero T
		return zero
	}
	return r.value
}

// describe renders the error payload prefixed with "context: " when a
// context was supplied. On a success receiver there is no error to render;
// the fixed unwrapErr wording takes its place.
func (r Result[T, E]) describe(context string) string {
	var message string
	if context != "" {
		message = context + ": "
	}

	if r.ok {
		return message + "Attempted to unwrapErr an Ok value"
	}
	return message + errorText(r.err)
}

// errorText converts an error payload to text. Textual payloads are taken
// verbatim, error and Stringer payloads use their own rendering, anything
// else goes through fmt.
func errorText(e any) string {
	if IsNil(e) {
		return "nil error"
	}

	switch v := e.(type) {
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// IsNil reports whether i is nil or a typed nil pointer.
func IsNil(i any) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}
