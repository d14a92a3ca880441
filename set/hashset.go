package set

import (
	"iter"
	"slices"

	"github.com/denismitr/enumerable/comparer"
)

// HashSet is a set whose membership is decided by an equality comparer rather than by
// Go map keys. Items are kept in insertion order.
type HashSet[T any] struct {
	comparer comparer.EqualityComparer[T]
	items    []T
}

var _ Set[int] = (*HashSet[int])(nil)

// New creates an empty set. A nil comparer falls back to comparer.Default.
func New[T any](c comparer.EqualityComparer[T]) *HashSet[T] {
	return &HashSet[T]{
		comparer: comparer.Resolve(c),
	}
}

// FromSlice creates a set holding the distinct items of the slice.
func FromSlice[T any](c comparer.EqualityComparer[T], items []T) *HashSet[T] {
	s := New(c)
	s.InsertSlice(items)
	return s
}

func (s *HashSet[T]) Comparer() comparer.EqualityComparer[T] {
	return s.comparer
}

func (s *HashSet[T]) Insert(item T) (modified bool) {
	if s.indexOf(item) >= 0 {
		return false
	}

	s.items = append(s.items, item)
	return true
}

func (s *HashSet[T]) Clear() {
	s.items = nil
}

// Items returns a snapshot of the set.
func (s *HashSet[T]) Items() []T {
	return slices.Clone(s.items)
}

func (s *HashSet[T]) Has(item T) bool {
	return s.indexOf(item) >= 0
}

func (s *HashSet[T]) Remove(item T) bool {
	idx := s.indexOf(item)
	if idx < 0 {
		return false
	}

	s.items = slices.Delete(s.items, idx, idx+1)
	return true
}

func (s *HashSet[T]) InsertSet(sourceSet ReadOnly[T]) (modified bool) {
	for item := range sourceSet.All() {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *HashSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	for _, item := range sourceSlice {
		if s.Insert(item) {
			modified = true
		}
	}

	return modified
}

func (s *HashSet[T]) Len() int {
	return len(s.items)
}

func (s *HashSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}

func (s *HashSet[T]) indexOf(item T) int {
	return slices.IndexFunc(s.items, func(existing T) bool {
		return s.comparer.Equals(existing, item)
	})
}
