package option

import (
	"fmt"
	"iter"

	"github.com/ib-77/fext/pkg/fext"
)

// Option holds either a value of type T or nothing. The zero Option is None.
type Option[T any] struct {
	value T
	some  bool
}

// Some wraps value. It panics if value is nil, including a nil interface
// such as Some[error](nil).
func Some[T any](value T) Option[T] {
	if fext.IsNil(value) {
		tracer().Errorf("Some called with nil %T", value)
		panic(fmt.Errorf("option.Some: %w", fext.ErrNilValue))
	}
	return Option[T]{value: value, some: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value and true, or the zero T and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// TryGetValue stores the value (or the zero T) in out and reports presence.
// A nil out is not written to.
func (o Option[T]) TryGetValue(out *T) bool {
	if out != nil {
		*out = o.value
	}
	return o.some
}

// Deconstruct returns the presence flag first, then the value or the zero T.
func (o Option[T]) Deconstruct() (bool, T) {
	return o.some, o.value
}

func (o Option[T]) OrElse(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

// OrPanic returns the value or panics with err, or with fext.ErrNoValue when
// err is nil.
func (o Option[T]) OrPanic(err error) T {
	if o.some {
		return o.value
	}
	if err == nil {
		err = fext.ErrNoValue
	}
	panic(err)
}

// OrErr returns the value, or err (fext.ErrNoValue when nil) for None.
func (o Option[T]) OrErr(err error) (T, error) {
	if o.some {
		return o.value, nil
	}
	if err == nil {
		err = fext.ErrNoValue
	}
	return o.value, err
}

// All yields the value once for Some and nothing for None.
func (o Option[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.some {
			yield(o.value)
		}
	}
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}

// Match calls onSome or onNone, whichever matches o, and returns its value.
func Match[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}
