package set

import "iter"

type (
	ReadOnly[T any] interface {
		Has(item T) bool
		Items() []T
		Len() int
		All() iter.Seq[T]
	}

	Set[T any] interface {
		ReadOnly[T]
		Insert(item T) (modified bool)
		Remove(item T) bool
		Clear()
		InsertSet(sourceSet ReadOnly[T]) (modified bool)
	}
)
