package fext

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNilValue is raised when Some is given a nil value.
	ErrNilValue = errors.New("value must not be nil")
	// ErrNoValue is raised when a value is demanded from None.
	ErrNoValue = errors.New("no value present")
	// ErrCanceled marks an async combinator rejected before it awaited its input.
	ErrCanceled = errors.New("operation cancelled")
	// ErrUnresolved is returned by a future that can never produce a value.
	ErrUnresolved = errors.New("future unresolved")
)

// ErrorResponse is a ready-made domain error carrying a message for display.
type ErrorResponse struct {
	Message string
}

func (e ErrorResponse) Error() string {
	return e.Message
}

// Canceled returns nil if ctx is still live, otherwise an error matching both
// ErrCanceled and the context's own error.
func Canceled(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrCanceled, err)
	}
	return nil
}
