package fext

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports whether i is nil or a nil value of a nillable kind.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

// Causes returns the errors directly wrapped by err, following both the
// single and the joined Unwrap forms.
func Causes(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		return e.Unwrap()
	case interface{ Unwrap() error }:
		if inner := e.Unwrap(); inner != nil {
			return []error{inner}
		}
	}

	return []error{}
}

func IsCancellationError(err error) bool {
	return errors.Is(err, ErrCanceled) ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
