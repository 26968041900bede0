package try

import (
	"fmt"
)

// Try holds the value of a computation that completed, or the Fault it
// raised. Only Run and RunE produce one.
type Try[T any] struct {
	value T
	fault *Fault
}

// Run calls fn and captures a panic as a Failure. Nothing fn raises escapes.
func Run[T any](fn func() T, opts ...CaptureOption) (t Try[T]) {
	defer func() {
		if raised := recover(); raised != nil {
			t = failure[T](raised, opts)
		}
	}()

	return Try[T]{value: fn()}
}

// RunE is Run for functions that report failure through an error return.
// A non-nil error is captured like a panic.
func RunE[T any](fn func() (T, error), opts ...CaptureOption) Try[T] {
	t := Run(func() Try[T] {
		v, err := fn()
		if err != nil {
			return failure[T](err, opts)
		}
		return Try[T]{value: v}
	}, opts...)

	return Match(t, func(inner Try[T]) Try[T] { return inner },
		func(f Fault) Try[T] { return Try[T]{fault: &f} })
}

func failure[T any](raised any, opts []CaptureOption) Try[T] {
	f := newFault(raised, newCaptureOptions(opts))
	tracer().Debugf("captured fault %s (%s): %s", f.ID, f.Type, f.Message)
	return Try[T]{fault: &f}
}

func (t Try[T]) IsSuccess() bool {
	return t.fault == nil
}

func (t Try[T]) IsFailure() bool {
	return t.fault != nil
}

func (t Try[T]) String() string {
	if t.fault == nil {
		return fmt.Sprintf("Success(%v)", t.value)
	}
	return fmt.Sprintf("Failure(%s)", t.fault)
}

// Match calls onSuccess with the value or onFailure with a copy of the Fault.
func Match[T, R any](t Try[T], onSuccess func(T) R, onFailure func(Fault) R) R {
	if t.fault == nil {
		return onSuccess(t.value)
	}
	return onFailure(*t.fault)
}
