package res

import (
	"time"

	"github.com/google/uuid"
)

// Result holds exactly one of a success payload of type T or an error
// payload of type E. Which one is live is recorded at construction and
// never changes; combinators and extractions take the receiver by value
// and produce new containers instead of mutating it.
//
// The zero Result is not valid. Use Ok or Err.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	ok        bool
}

// Ok constructs a success result holding v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		ok:        true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Err constructs an error result holding e.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{
		err:       e,
		ok:        false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// errFrom relocates the error payload of from into a result with success
// type U, keeping the identity metadata of the source.
func errFrom[U, T, E any](from Result[T, E]) Result[U, E] {
	return Result[U, E]{
		err:       from.err,
		ok:        false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// okFrom relocates the success payload of from into a result with error
// type F, keeping the identity metadata of the source.
func okFrom[F, T, E any](from Result[T, E]) Result[T, F] {
	return Result[T, F]{
		value:     from.value,
		ok:        true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// IsOk reports whether the result holds a success payload.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the result holds an error payload.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Value returns the success payload, or the zero value of T on an error
// result. Check IsOk first when the distinction matters.
func (r Result[T, E]) Value() T {
	return r.value
}

// Err returns the error payload, or the zero value of E on a success
// result.
func (r Result[T, E]) Err() E {
	return r.err
}

// Id returns the container identity assigned at construction. Combinators
// that relocate a payload unchanged keep the identity of the source.
func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

// CreatedAt returns the construction time (UTC).
func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

// Match invokes onOk with the success payload or onErr with the error
// payload, observing without consuming. Nil callbacks are skipped.
func (r Result[T, E]) Match(onOk func(T), onErr func(E)) {
	if r.ok {
		if onOk != nil {
			onOk(r.value)
		}
		return
	}
	if onErr != nil {
		onErr(r.err)
	}
}

// MatchConsume hands the live payload over to the chosen callback. It
// behaves like Match; the separate name marks call sites that take
// ownership of the payload rather than inspecting it.
func (r Result[T, E]) MatchConsume(onOk func(T), onErr func(E)) {
	r.Match(onOk, onErr)
}
