// Package chain provides a minimal fluent wrapper for synchronous
// composition of res.Result values.
//
// It keeps the API surface small:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map/MapErr/OrElse: transform payloads or recover
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via handlers
//
// Same-type steps are methods; type-changing steps are package functions
// because Go methods cannot introduce type parameters.
package chain
