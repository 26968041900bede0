package option

// Select is Map under its query name.
func Select[T, U any](o Option[T], selector func(T) U) Option[U] {
	return Map(o, selector)
}

// SelectMany binds o and combines the outer and inner values with project.
func SelectMany[T, C, R any](o Option[T], bind func(T) Option[C], project func(T, C) R) Option[R] {
	return Bind(o, func(outer T) Option[R] {
		return Map(bind(outer), func(inner C) R {
			return project(outer, inner)
		})
	})
}
