package result

// Select is Map under its query name.
func Select[T, E, U any](r Result[T, E], selector func(T) U) Result[U, E] {
	return Map(r, selector)
}

// SelectMany is Bind under its query name.
func SelectMany[T, E, U any](r Result[T, E], binder func(T) Result[U, E]) Result[U, E] {
	return Bind(r, binder)
}

// SelectManyProject binds r to an intermediate result and combines both
// success values with project. The outer Error wins over the inner one and
// project only runs when both are Ok.
//
//	from a in Ok(2) from b in Ok(3) select a + b
//
// is written
//
//	SelectManyProject(Ok[int, string](2),
//		func(int) Result[int, string] { return Ok[int, string](3) },
//		func(a, b int) int { return a + b })
func SelectManyProject[T, E, C, R any](r Result[T, E], bind func(T) Result[C, E],
	project func(T, C) R) Result[R, E] {

	return Bind(r, func(outer T) Result[R, E] {
		return Map(bind(outer), func(inner C) R {
			return project(outer, inner)
		})
	})
}
