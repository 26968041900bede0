package option

import (
	"github.com/ib-77/fext/pkg/fext/future"
)

// MapAsync awaits in and applies Map to the resolved option.
func MapAsync[T, U any](in future.Future[Option[T]], f func(T) U) future.Future[Option[U]] {
	return future.New(func() (Option[U], error) {
		o, err := in.Await()
		if err != nil {
			return None[U](), err
		}
		return Map(o, f), nil
	})
}

// BindAsync awaits in and, for Some, awaits the future produced by f.
func BindAsync[T, U any](in future.Future[Option[T]],
	f func(T) future.Future[Option[U]]) future.Future[Option[U]] {

	return future.New(func() (Option[U], error) {
		o, err := in.Await()
		if err != nil || !o.some {
			return None[U](), err
		}
		return f(o.value).Await()
	})
}

// MatchAsync awaits in and then awaits whichever branch matches.
func MatchAsync[T, R any](in future.Future[Option[T]],
	onSome func(T) future.Future[R], onNone func() future.Future[R]) future.Future[R] {

	return future.New(func() (R, error) {
		o, err := in.Await()
		if err != nil {
			var zero R
			return zero, err
		}
		if o.some {
			return onSome(o.value).Await()
		}
		return onNone().Await()
	})
}

// SelectAwait awaits in and, for Some, awaits selector's future and wraps
// the outcome in Some.
func SelectAwait[T, U any](in future.Future[Option[T]],
	selector func(T) future.Future[U]) future.Future[Option[U]] {

	return future.New(func() (Option[U], error) {
		o, err := in.Await()
		if err != nil || !o.some {
			return None[U](), err
		}
		v, err := selector(o.value).Await()
		if err != nil {
			return None[U](), err
		}
		return Some(v), nil
	})
}

// SelectManyAsync is SelectMany over futures.
func SelectManyAsync[T, C, R any](in future.Future[Option[T]],
	bind func(T) future.Future[Option[C]], project func(T, C) R) future.Future[Option[R]] {

	return future.New(func() (Option[R], error) {
		o, err := in.Await()
		if err != nil || !o.some {
			return None[R](), err
		}
		outer := o.value
		return MapAsync(bind(outer), func(inner C) R {
			return project(outer, inner)
		}).Await()
	})
}
