package option

import (
	"iter"

	"github.com/ib-77/fext/pkg/fext"
	"github.com/ib-77/fext/pkg/fext/result"
)

// Map applies f to the value of a Some. None passes through.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.some {
		return Some(f(o.value))
	}
	return None[U]()
}

// Bind chains a step that may itself produce None.
func Bind[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if o.some {
		return f(o.value)
	}
	return None[U]()
}

// ToOption treats the zero value of T as absent.
func ToOption[T comparable](value T) Option[T] {
	var zero T
	if value == zero {
		return None[T]()
	}
	return Some(value)
}

// ToOptionIf is Some(value) only when predicate holds.
func ToOptionIf[T any](value T, predicate func(T) bool) Option[T] {
	if predicate(value) {
		return Some(value)
	}
	return None[T]()
}

// FromPointer is None for a nil pointer and Some of the pointee otherwise.
func FromPointer[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// ToPointer returns a pointer to a copy of the value, or nil for None.
func ToPointer[T any](o Option[T]) *T {
	if !o.some {
		return nil
	}
	v := o.value
	return &v
}

// FirstOrNone returns the first element of seq satisfying predicate. It
// stops pulling from seq at the first match. A nil match yields None.
func FirstOrNone[T any](seq iter.Seq[T], predicate func(T) bool) Option[T] {
	for v := range seq {
		if predicate(v) {
			return fromMatch(v)
		}
	}
	return None[T]()
}

func FirstOrNoneSlice[T any](s []T, predicate func(T) bool) Option[T] {
	for _, v := range s {
		if predicate(v) {
			return fromMatch(v)
		}
	}
	return None[T]()
}

func fromMatch[T any](v T) Option[T] {
	if fext.IsNil(v) {
		return None[T]()
	}
	return Some(v)
}

// ToResult converts Some(v) to Ok(v) and None to an Error built by
// errorFactory. errorFactory is only called for None.
func ToResult[T, E any](o Option[T], errorFactory func() E) result.Result[T, E] {
	if o.some {
		return result.Ok[T, E](o.value)
	}
	return result.Error[T](errorFactory())
}
