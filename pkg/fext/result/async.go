package result

import (
	"context"

	"github.com/ib-77/fext/pkg/fext"
	"github.com/ib-77/fext/pkg/fext/future"
)

// MapAsync awaits in and applies Map to the resolved result.
func MapAsync[T, E, U any](ctx context.Context, in future.Future[Result[T, E]],
	f func(T) U) future.Future[Result[U, E]] {

	if err := fext.Canceled(ctx); err != nil {
		tracer().Debugf("MapAsync rejected before await: %v", err)
		return future.Rejected[Result[U, E]](err)
	}

	return future.New(func() (Result[U, E], error) {
		r, err := in.Await()
		if err != nil {
			return Result[U, E]{}, err
		}
		return Map(r, f), nil
	})
}

// BindAsync awaits in and, when it is Ok, awaits the future produced by f.
// f is never called for an Error.
func BindAsync[T, E, U any](ctx context.Context, in future.Future[Result[T, E]],
	f func(T) future.Future[Result[U, E]]) future.Future[Result[U, E]] {

	if err := fext.Canceled(ctx); err != nil {
		tracer().Debugf("BindAsync rejected before await: %v", err)
		return future.Rejected[Result[U, E]](err)
	}

	return future.New(func() (Result[U, E], error) {
		r, err := in.Await()
		if err != nil {
			return Result[U, E]{}, err
		}
		if !r.ok {
			return Error[U](r.reason), nil
		}
		return f(r.value).Await()
	})
}

// MatchAsync awaits in and collapses it with onOk or onError.
func MatchAsync[T, E, R any](ctx context.Context, in future.Future[Result[T, E]],
	onOk func(T) R, onError func(E) R) future.Future[R] {

	if err := fext.Canceled(ctx); err != nil {
		tracer().Debugf("MatchAsync rejected before await: %v", err)
		return future.Rejected[R](err)
	}

	return future.New(func() (R, error) {
		r, err := in.Await()
		if err != nil {
			var zero R
			return zero, err
		}
		return Match(r, onOk, onError), nil
	})
}

// SelectManyAsync is SelectManyProject over futures. After the outer result
// resolves Ok, the inner future is mapped with MapAsync under the same ctx,
// so a cancellation that happened while awaiting the outer result is seen
// there, after bind has already been called.
func SelectManyAsync[T, E, C, R any](ctx context.Context, in future.Future[Result[T, E]],
	bind func(T) future.Future[Result[C, E]], project func(T, C) R) future.Future[Result[R, E]] {

	if err := fext.Canceled(ctx); err != nil {
		tracer().Debugf("SelectManyAsync rejected before await: %v", err)
		return future.Rejected[Result[R, E]](err)
	}

	return future.New(func() (Result[R, E], error) {
		r, err := in.Await()
		if err != nil {
			return Result[R, E]{}, err
		}
		if !r.ok {
			return Error[R](r.reason), nil
		}

		outer := r.value
		return MapAsync(ctx, bind(outer), func(inner C) R {
			return project(outer, inner)
		}).Await()
	})
}
