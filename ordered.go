package enumerable

import (
	"slices"

	"github.com/denismitr/enumerable/sorting"
	"github.com/denismitr/enumerable/utils"
	"golang.org/x/exp/constraints"
)

// OrderedEnumerable is a sorted view that can be refined with ThenBy.
// All orderings of a chain are applied by a single stable sort when the
// sequence is pulled; elements that tie on every key keep their source order.
type OrderedEnumerable[T any] struct {
	Enumerable[T]
	unordered Enumerable[T]
	chain     *sorting.SortItemSelector[T]
}

func OrderBy[T any, K constraints.Ordered](e Enumerable[T], keySelector func(item T) K) OrderedEnumerable[T] {
	if keySelector == nil {
		return failOrdered(e, "order by")
	}

	return newOrdered(e, sorting.Ascending(keySelector))
}

func OrderByDescending[T any, K constraints.Ordered](e Enumerable[T], keySelector func(item T) K) OrderedEnumerable[T] {
	if keySelector == nil {
		return failOrdered(e, "order by descending")
	}

	return newOrdered(e, sorting.Descending(keySelector))
}

// OrderByFunc orders by keys without a natural ordering, ranked by compare.
func OrderByFunc[T, K any](
	e Enumerable[T],
	keySelector func(item T) K,
	compare func(a, b K) int,
	order utils.Order,
) OrderedEnumerable[T] {
	if keySelector == nil || compare == nil {
		return failOrdered(e, "order by")
	}

	return newOrdered(e, sorting.ByFunc(keySelector, compare, order))
}

// ThenBy adds an ascending tie-break to the chain of o. o itself is unchanged.
func ThenBy[T any, K constraints.Ordered](o OrderedEnumerable[T], keySelector func(item T) K) OrderedEnumerable[T] {
	if keySelector == nil {
		return failOrdered(o.Enumerable, "then by")
	}

	return newOrdered(o.unordered, o.chain.Then(sorting.Ascending(keySelector)))
}

func ThenByDescending[T any, K constraints.Ordered](o OrderedEnumerable[T], keySelector func(item T) K) OrderedEnumerable[T] {
	if keySelector == nil {
		return failOrdered(o.Enumerable, "then by descending")
	}

	return newOrdered(o.unordered, o.chain.Then(sorting.Descending(keySelector)))
}

func ThenByFunc[T, K any](
	o OrderedEnumerable[T],
	keySelector func(item T) K,
	compare func(a, b K) int,
	order utils.Order,
) OrderedEnumerable[T] {
	if keySelector == nil || compare == nil {
		return failOrdered(o.Enumerable, "then by")
	}

	return newOrdered(o.unordered, o.chain.Then(sorting.ByFunc(keySelector, compare, order)))
}

// AsEnumerable drops the ability to add tie-breaks.
func (o OrderedEnumerable[T]) AsEnumerable() Enumerable[T] {
	return o.Enumerable
}

func newOrdered[T any](unordered Enumerable[T], chain *sorting.SortItemSelector[T]) OrderedEnumerable[T] {
	upstream := unordered.Seq()
	sorted := pipe(unordered, func(yield func(T) bool) {
		items := slices.Collect(upstream)
		sorting.Stable(items, chain)
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	})

	return OrderedEnumerable[T]{
		Enumerable: sorted,
		unordered:  unordered,
		chain:      chain,
	}
}

func failOrdered[T any](e Enumerable[T], op string) OrderedEnumerable[T] {
	failed := fail[T, T](e, missingArgument(op, "key selector"))
	return OrderedEnumerable[T]{Enumerable: failed, unordered: failed}
}
