// Package future provides Future, a deferred value that resolves once and
// can be awaited any number of times from any goroutine.
//
// A Future is Pending until its first Await completes and Resolved from
// then on; the resolved value and error never change. The option and result
// packages build their async combinators on it.
package future

import (
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("fext.future")
}
