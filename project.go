package enumerable

// Select projects every element.
func Select[T, R any](e Enumerable[T], selector func(item T) R) Enumerable[R] {
	if selector == nil {
		return fail[T, R](e, missingArgument("select", "selector"))
	}

	upstream := e.Seq()
	return pipe(e, func(yield func(R) bool) {
		for item := range upstream {
			if !yield(selector(item)) {
				return
			}
		}
	})
}

// SelectIndexed projects every element together with its position.
func SelectIndexed[T, R any](e Enumerable[T], selector func(item T, index int) R) Enumerable[R] {
	if selector == nil {
		return fail[T, R](e, missingArgument("select", "selector"))
	}

	upstream := e.Seq()
	return pipe(e, func(yield func(R) bool) {
		index := 0
		for item := range upstream {
			if !yield(selector(item, index)) {
				return
			}
			index++
		}
	})
}

// SelectMany flattens: the whole inner slice of the first element precedes the second's.
func SelectMany[T, R any](e Enumerable[T], selector func(item T) []R) Enumerable[R] {
	if selector == nil {
		return fail[T, R](e, missingArgument("select many", "selector"))
	}

	upstream := e.Seq()
	return pipe(e, func(yield func(R) bool) {
		for item := range upstream {
			for _, inner := range selector(item) {
				if !yield(inner) {
					return
				}
			}
		}
	})
}

// Aggregate folds the sequence into a single value starting from seed.
func Aggregate[T, R any](e Enumerable[T], seed R, reducer func(carry R, item T) R) (R, error) {
	if e.err != nil {
		return seed, e.err
	}

	if reducer == nil {
		return seed, missingArgument("aggregate", "reducer")
	}

	result := seed
	for item := range e.Seq() {
		result = reducer(result, item)
	}

	return result, nil
}
