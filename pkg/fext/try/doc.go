// Package try runs a computation and captures anything it raises.
//
// Run recovers panics; RunE also treats a returned error as a failure. The
// captured fault is kept as a Fault record (type name, message, causes and
// an optional stack) so callers can inspect it without re-raising anything.
// Every Fault carries a UUID so a failure reported by a caller can be matched
// with the trace line written when it was captured.
package try

import (
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("fext.try")
}
