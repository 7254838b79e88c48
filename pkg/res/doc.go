// Package res provides Result[T, E], a success/failure container meant to
// replace sentinel values and output parameters for operations that may
// fail. A result holds exactly one of a success payload or an error
// payload and is produced only by the Ok and Err constructors.
//
// Highlights:
// - Ok/Err: construct a result; IsOk/IsErr query its state
// - Map/MapError/AndThen/OrElse: transform and chain without side effects
// - Unwrap/Expect/UnwrapErr: fatal extractions (log, then terminate)
// - UnwrapOrLog/UnwrapChecked: recoverable extractions (log, then fallback)
// - UnwrapOr/UnwrapOrElse: silent fallbacks for routine failure paths
// - SetLogHook/SetTerminateHook/ClearHooks: per-(T, E) failure strategy
//
// Results are plain values. Combinators take the receiver by value and
// return new containers, so a consumed chain never leaves dangling state
// behind. The container itself is not synchronized; only the hook sets
// are safe for concurrent use.
package res
