package result

import "fmt"

// Result holds either a success value of type T or an error reason of type E.
// The zero Result is an Error carrying the zero E.
type Result[T, E any] struct {
	value  T
	reason E
	ok     bool
}

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

func Error[T, E any](reason E) Result[T, E] {
	return Result[T, E]{reason: reason}
}

func (r Result[T, E]) IsOk() bool {
	return r.ok
}

func (r Result[T, E]) IsError() bool {
	return !r.ok
}

// Value returns the success value and true, or the zero T and false.
func (r Result[T, E]) Value() (T, bool) {
	return r.value, r.ok
}

// Reason returns the error reason and true, or the zero E and false.
func (r Result[T, E]) Reason() (E, bool) {
	return r.reason, !r.ok
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Error(%v)", r.reason)
}

// Match calls onOk or onError, whichever matches r, and returns its value.
func Match[T, E, R any](r Result[T, E], onOk func(T) R, onError func(E) R) R {
	if r.ok {
		return onOk(r.value)
	}
	return onError(r.reason)
}
