// Package sorting composes multi-key orderings out of linked tie-break steps.
package sorting

import (
	"cmp"

	"github.com/denismitr/enumerable/utils"
	"golang.org/x/exp/constraints"
)

// SelectedSortItem tells which of two elements sorts first.
// There is no "equal" outcome, ties are resolved by the next link in the chain.
type SelectedSortItem uint8

const (
	Left SelectedSortItem = iota
	Right
)

func (s SelectedSortItem) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

type (
	// selectFn resolves two elements on a single key; ok is false when the keys are equal.
	selectFn[T any] func(left, right T) (item SelectedSortItem, ok bool)

	// SortItemSelector is one link of a tie-break chain.
	SortItemSelector[T any] struct {
		order      utils.Order
		selectItem selectFn[T]
		next       *SortItemSelector[T]
	}
)

// Ascending orders by key, smaller keys first.
func Ascending[T any, K constraints.Ordered](keySelector func(T) K) *SortItemSelector[T] {
	return ByFunc(keySelector, cmp.Compare[K], utils.AscOrder)
}

// Descending orders by key, larger keys first.
func Descending[T any, K constraints.Ordered](keySelector func(T) K) *SortItemSelector[T] {
	return ByFunc(keySelector, cmp.Compare[K], utils.DescOrder)
}

// ByFunc orders by a key that has no natural ordering, using compare to rank keys.
func ByFunc[T, K any](
	keySelector func(T) K,
	compare func(a, b K) int,
	order utils.Order,
) *SortItemSelector[T] {
	return &SortItemSelector[T]{
		order: order,
		selectItem: func(left, right T) (SelectedSortItem, bool) {
			leftKey, rightKey := keySelector(left), keySelector(right)
			c := compare(leftKey, rightKey)
			if c == 0 {
				return Left, false
			}

			return selectFromNotEqualKeys(c, order), true
		},
	}
}

func selectFromNotEqualKeys(c int, order utils.Order) SelectedSortItem {
	if order == utils.DescOrder {
		c = -c
	}

	if c < 0 {
		return Left
	}

	return Right
}

// Then returns a copy of the chain with next appended as the last tie-break.
// The receiver is left untouched so that earlier orderings can be reused.
func (s *SortItemSelector[T]) Then(next *SortItemSelector[T]) *SortItemSelector[T] {
	if s == nil {
		return next
	}

	head := &SortItemSelector[T]{order: s.order, selectItem: s.selectItem}
	tail := head
	for curr := s.next; curr != nil; curr = curr.next {
		tail.next = &SortItemSelector[T]{order: curr.order, selectItem: curr.selectItem}
		tail = tail.next
	}
	tail.next = next

	return head
}

// Select walks the chain until a link sees unequal keys.
// ok is false when every link ties.
func (s *SortItemSelector[T]) Select(left, right T) (SelectedSortItem, bool) {
	for curr := s; curr != nil; curr = curr.next {
		if selected, ok := curr.selectItem(left, right); ok {
			return selected, true
		}
	}

	return Left, false
}

// Compare collapses the chain into a single three-way comparison.
func (s *SortItemSelector[T]) Compare(left, right T) int {
	item, ok := s.Select(left, right)
	if !ok {
		return 0
	}

	if item == Left {
		return -1
	}

	return 1
}
