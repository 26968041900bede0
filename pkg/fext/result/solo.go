package result

// Map transforms the success value and passes an Error through.
func Map[T, E, U any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.ok {
		return Ok[U, E](f(r.value))
	}
	return Error[U](r.reason)
}

// Bind chains a step that may itself fail. It short-circuits on Error.
func Bind[T, E, U any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.ok {
		return f(r.value)
	}
	return Error[U](r.reason)
}

// MapError transforms the error reason and passes a success through.
func MapError[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Error[T](f(r.reason))
}

// Tap runs action on the success value and returns r unchanged.
func Tap[T, E any](r Result[T, E], action func(T)) Result[T, E] {
	if r.ok {
		action(r.value)
	}
	return r
}

// TapError runs action on the error reason and returns r unchanged.
func TapError[T, E any](r Result[T, E], action func(E)) Result[T, E] {
	if !r.ok {
		action(r.reason)
	}
	return r
}
