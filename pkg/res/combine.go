package res

// Combinators are package-level functions because Go methods cannot
// introduce new type parameters. All of them are hook-silent: building a
// pipeline has no observable side effects until a terminal extraction
// demands a concrete value.

// Map applies f to the success payload and wraps the outcome as a new
// success. An error payload is relocated unchanged; f is never invoked.
func Map[T, E, U any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](f(r.value))
	}
	return errFrom[U](r)
}

// MapError applies f to the error payload. A success payload is relocated
// unchanged into the new error type position.
func MapError[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if !r.ok {
		return Err[T, F](f(r.err))
	}
	return okFrom[F](r)
}

// AndThen sequences an operation on the success path. The result of f is
// returned directly, not re-wrapped. An error result short-circuits: f is
// never invoked and the error is relocated unchanged.
func AndThen[T, E, U any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return f(r.value)
	}
	return errFrom[U](r)
}

// OrElse sequences a recovery on the error path, symmetric to AndThen.
// A success result short-circuits with its payload relocated unchanged.
func OrElse[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	if !r.ok {
		return f(r.err)
	}
	return okFrom[F](r)
}

// Tee triggers a side effect on the success payload and passes the result
// through untouched.
func Tee[T, E any](r Result[T, E], onOk func(T)) Result[T, E] {
	if r.ok {
		onOk(r.value)
	}
	return r
}

// TeeErr triggers a side effect on the error payload and passes the result
// through untouched.
func TeeErr[T, E any](r Result[T, E], onErr func(E)) Result[T, E] {
	if !r.ok {
		onErr(r.err)
	}
	return r
}

// Finally reduces the result to a concrete value via the handler matching
// its state.
func Finally[T, E, U any](r Result[T, E], onOk func(T) U, onErr func(E) U) U {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// Try adapts Go's (value, error) convention into a result:
//
//	r := res.Try(os.ReadFile(path))
func Try[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](v)
}
