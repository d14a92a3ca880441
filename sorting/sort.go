package sorting

import "slices"

// Stable sorts items in place by the chain. Elements that tie on every link keep their
// original relative order.
func Stable[T any](items []T, chain *SortItemSelector[T]) {
	if chain == nil || len(items) < 2 {
		return
	}

	slices.SortStableFunc(items, chain.Compare)
}

