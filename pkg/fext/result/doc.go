// Package result implements Result, a value that is either Ok, holding a
// success value, or Error, holding a typed domain error.
//
// Map, Bind, SelectMany and their async forms pass an Error through
// untouched and never call the user function for it; the first Error in a
// chain is the one that reaches Match.
//
// The async combinators take a context and check it exactly once, when they
// are called. An already cancelled context rejects the returned future at
// once, without awaiting the input. Cancellation that happens after the
// check, while the input is being awaited, is not observed.
package result

import (
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("fext.result")
}
