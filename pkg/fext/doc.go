// Package fext holds what the container packages share: sentinel errors,
// the ErrorResponse domain error and small helpers for nil and
// cancellation checks.
//
// The containers themselves live in subpackages:
// - option: presence/absence of a value (Some/None)
// - result: success or typed domain error (Ok/Error)
// - try: a computation whose panics and errors are captured as a Fault
// - future: a deferred value awaited by the async combinators
// - chain: fluent composition of Result steps with a context
package fext
