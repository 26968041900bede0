package chain

import (
	"context"

	"github.com/ib-77/fext/pkg/fext/result"
)

// Chain couples a result with the context its steps run under.
type Chain[T, E any] struct {
	ctx context.Context
	res result.Result[T, E]
}

func Start[T, E any](ctx context.Context, r result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: ctx, res: r}
}

func FromValue[T, E any](ctx context.Context, v T) Chain[T, E] {
	return Start(ctx, result.Ok[T, E](v))
}

func FromError[T, E any](ctx context.Context, reason E) Chain[T, E] {
	return Start(ctx, result.Error[T](reason))
}

func (c Chain[T, E]) Result() result.Result[T, E] {
	return c.res
}

func (c Chain[T, E]) Context() context.Context {
	return c.ctx
}

// Then composes a step that already returns a result.
func (c Chain[T, E]) Then(step func(ctx context.Context, v T) result.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: c.ctx, res: result.Bind(c.res, func(v T) result.Result[T, E] {
		return step(c.ctx, v)
	})}
}

// ThenTry composes a step returning (T, error); toErr turns the error into E.
func (c Chain[T, E]) ThenTry(step func(ctx context.Context, v T) (T, error),
	toErr func(err error) E) Chain[T, E] {

	return c.Then(func(ctx context.Context, v T) result.Result[T, E] {
		out, err := step(ctx, v)
		if err != nil {
			return result.Error[T](toErr(err))
		}
		return result.Ok[T, E](out)
	})
}

// Map transforms the successful value.
func (c Chain[T, E]) Map(step func(ctx context.Context, v T) T) Chain[T, E] {
	return Chain[T, E]{ctx: c.ctx, res: result.Map(c.res, func(v T) T {
		return step(c.ctx, v)
	})}
}

// Ensure triggers side effects for either branch without changing the
// result. Nil callbacks are skipped.
func (c Chain[T, E]) Ensure(onOk func(context.Context, T), onError func(context.Context, E)) Chain[T, E] {
	if onOk != nil {
		result.Tap(c.res, func(v T) { onOk(c.ctx, v) })
	}
	if onError != nil {
		result.TapError(c.res, func(e E) { onError(c.ctx, e) })
	}
	return c
}

// Or returns the first Ok chain among c and alternatives, or the first
// Error when none is Ok.
func (c Chain[T, E]) Or(alternatives ...Chain[T, E]) Chain[T, E] {
	if c.res.IsOk() {
		return c
	}
	for _, alt := range alternatives {
		if alt.res.IsOk() {
			return alt
		}
	}
	return c
}

// And returns the first Error among c and required, or the last chain when
// all are Ok.
func (c Chain[T, E]) And(required ...Chain[T, E]) Chain[T, E] {
	last := c
	for _, ch := range append([]Chain[T, E]{c}, required...) {
		if ch.res.IsError() {
			return ch
		}
		last = ch
	}
	return last
}

// While applies step as long as the chain is Ok and cond holds.
func (c Chain[T, E]) While(step func(ctx context.Context, v T) result.Result[T, E],
	cond func(ctx context.Context, v T) bool) Chain[T, E] {

	for {
		v, ok := c.res.Value()
		if !ok || !cond(c.ctx, v) {
			return c
		}
		c = c.Then(step)
	}
}

// RepeatUntil applies step at least once, then again while the chain is Ok
// and until reports false.
func (c Chain[T, E]) RepeatUntil(step func(ctx context.Context, v T) result.Result[T, E],
	until func(ctx context.Context, v T) bool) Chain[T, E] {

	for {
		if c.res.IsError() {
			return c
		}
		c = c.Then(step)

		v, ok := c.res.Value()
		if !ok || until(c.ctx, v) {
			return c
		}
	}
}

// Match collapses the chain into a final value.
func (c Chain[T, E]) Match(onOk func(context.Context, T) T, onError func(context.Context, E) T) T {
	return Collapse(c, onOk, onError)
}

// Bind switches the chain to a new value type via step.
func Bind[T, U, E any](c Chain[T, E], step func(ctx context.Context, v T) result.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{ctx: c.ctx, res: result.Bind(c.res, func(v T) result.Result[U, E] {
		return step(c.ctx, v)
	})}
}

// Convert maps the chain to a new value type.
func Convert[T, U, E any](c Chain[T, E], step func(ctx context.Context, v T) U) Chain[U, E] {
	return Chain[U, E]{ctx: c.ctx, res: result.Map(c.res, func(v T) U {
		return step(c.ctx, v)
	})}
}

// Collapse is Match for a final value of another type.
func Collapse[T, E, R any](c Chain[T, E], onOk func(context.Context, T) R,
	onError func(context.Context, E) R) R {

	return result.Match(c.res,
		func(v T) R { return onOk(c.ctx, v) },
		func(e E) R { return onError(c.ctx, e) })
}
