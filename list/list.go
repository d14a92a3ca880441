// Package list holds the ordered, growable collection produced by Enumerable.ToCollection.
package list

import (
	"iter"
	"slices"

	"github.com/denismitr/enumerable/comparer"
	"github.com/denismitr/enumerable/utils"
	"github.com/pkg/errors"
)

var ErrIndexOutOfRange = errors.New("index out of range")

type (
	ReadOnly[T any] interface {
		Get(index int) (T, error)
		Contains(value T) bool
		Items() []T
		Len() int
		All() iter.Seq[T]
	}

	Collection[T any] interface {
		ReadOnly[T]
		Add(value T)
		AddRange(values iter.Seq[T])
		TryRemove(value T) bool
		Clear()
	}

	List[T any] struct {
		comparer comparer.EqualityComparer[T]
		items    []T
	}
)

var _ Collection[int] = (*List[int])(nil)

// New creates an empty list. The comparer is used by Contains and TryRemove;
// nil falls back to comparer.Default.
func New[T any](c comparer.EqualityComparer[T]) *List[T] {
	return &List[T]{comparer: comparer.Resolve(c)}
}

func From[T any](c comparer.EqualityComparer[T], values ...T) *List[T] {
	l := New(c)
	l.items = append(l.items, values...)
	return l
}

func (l *List[T]) Add(value T) {
	l.items = append(l.items, value)
}

func (l *List[T]) AddRange(values iter.Seq[T]) {
	for v := range values {
		l.items = append(l.items, v)
	}
}

func (l *List[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(l.items) {
		return utils.GetZero[T](), errors.Wrapf(ErrIndexOutOfRange, "index %d, length %d", index, len(l.items))
	}

	return l.items[index], nil
}

func (l *List[T]) Contains(value T) bool {
	return l.indexOf(value) >= 0
}

// TryRemove removes the first matching value.
func (l *List[T]) TryRemove(value T) bool {
	idx := l.indexOf(value)
	if idx < 0 {
		return false
	}

	l.items = slices.Delete(l.items, idx, idx+1)
	return true
}

func (l *List[T]) Clear() {
	l.items = nil
}

func (l *List[T]) Len() int {
	return len(l.items)
}

// Items returns a snapshot.
func (l *List[T]) Items() []T {
	return slices.Clone(l.items)
}

func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range l.items {
			if !yield(item) {
				return
			}
		}
	}
}

func (l *List[T]) indexOf(value T) int {
	return slices.IndexFunc(l.items, func(item T) bool {
		return l.comparer.Equals(item, value)
	})
}
