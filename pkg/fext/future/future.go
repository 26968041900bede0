package future

import (
	"sync"
	"sync/atomic"

	"github.com/ib-77/fext/pkg/fext"
)

// Future is a deferred value of type T. The zero Future never resolves to a
// value and awaits to fext.ErrUnresolved.
type Future[T any] struct {
	st *state[T]
}

type state[T any] struct {
	once     sync.Once
	resolve  func() (T, error)
	resolved atomic.Bool
	value    T
	err      error
	// panicked holds what resolve panicked with; every Await re-raises it.
	panicked any
}

// New defers fn until the first Await. fn runs at most once.
func New[T any](fn func() (T, error)) Future[T] {
	return Future[T]{st: &state[T]{resolve: fn}}
}

// Resolved returns a future already holding v.
func Resolved[T any](v T) Future[T] {
	st := &state[T]{value: v}
	st.once.Do(func() {})
	st.resolved.Store(true)
	return Future[T]{st: st}
}

// Rejected returns a future already holding err.
func Rejected[T any](err error) Future[T] {
	st := &state[T]{err: err}
	st.once.Do(func() {})
	st.resolved.Store(true)
	return Future[T]{st: st}
}

// FromChan returns a future resolving to the first value received from ch.
// A channel closed before sending resolves to fext.ErrUnresolved. Await
// blocks for as long as ch does.
func FromChan[T any](ch <-chan T) Future[T] {
	return New(func() (T, error) {
		v, ok := <-ch
		if !ok {
			tracer().Debugf("future channel closed without a value")
			var zero T
			return zero, fext.ErrUnresolved
		}
		return v, nil
	})
}

// Await blocks until the future is resolved and returns its value or error.
// Concurrent callers share one resolution. If resolving panicked, every
// Await panics with the same value.
func (f Future[T]) Await() (T, error) {
	if f.st == nil {
		var zero T
		return zero, fext.ErrUnresolved
	}

	f.st.once.Do(func() {
		defer func() {
			if p := recover(); p != nil {
				tracer().Debugf("future resolution panicked: %v", p)
				f.st.panicked = p
			}
			f.st.resolved.Store(true)
		}()
		f.st.value, f.st.err = f.st.resolve()
	})

	if f.st.panicked != nil {
		panic(f.st.panicked)
	}
	return f.st.value, f.st.err
}

// IsResolved reports whether a previous Await has completed.
func (f Future[T]) IsResolved() bool {
	return f.st != nil && f.st.resolved.Load()
}
