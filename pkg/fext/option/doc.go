// Package option implements Option, a value that is either Some, wrapping a
// non-nil value, or None.
//
// Some panics when handed a nil pointer, map, slice, chan, func or a nil
// interface value such as Some[error](nil): an absent value is None, never a
// Some holding nil. ToOption goes further and treats
// the zero value of a comparable type as absent, so ToOption(0) is None. A
// real zero cannot be told apart from "no value" there; use Some or
// ToOptionIf when zero is meaningful.
package option

import (
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("fext.option")
}
