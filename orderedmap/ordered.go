// Package orderedmap is the insertion-ordered key value store behind Dictionary.
// Keys are matched with an equality comparer by a linear scan, so keys need not be hashable.
package orderedmap

import (
	"iter"
	"slices"

	"github.com/denismitr/enumerable/comparer"
	"github.com/denismitr/enumerable/utils"
)

type (
	OrderedMap[K any, V any] struct {
		comparer comparer.EqualityComparer[K]
		pairs    []utils.Pair[K, V]
	}

	ForEachFn[K any, V any] func(key K, value V, order int)
)

// NewOrderedMap creates an empty map. A nil comparer falls back to comparer.Default.
func NewOrderedMap[K any, V any](c comparer.EqualityComparer[K]) *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		comparer: comparer.Resolve(c),
	}
}

func (om *OrderedMap[K, V]) Comparer() comparer.EqualityComparer[K] {
	return om.comparer
}

// Set is idempotent. An existing key keeps both its position and the originally stored key.
func (om *OrderedMap[K, V]) Set(key K, value V) {
	idx := om.indexOf(key)
	if idx < 0 {
		om.pairs = append(om.pairs, utils.NewPair(key, value))
		return
	}

	om.pairs[idx] = utils.NewPair(om.pairs[idx].Key, value)
}

func (om *OrderedMap[K, V]) SetNX(key K, value V) (added bool) {
	if om.indexOf(key) >= 0 {
		return false
	}

	om.pairs = append(om.pairs, utils.NewPair(key, value))
	return true
}

func (om *OrderedMap[K, V]) HasGet(key K) (V, bool) {
	idx := om.indexOf(key)
	if idx < 0 {
		return utils.GetZero[V](), false
	}

	return om.pairs[idx].Value, true
}

func (om *OrderedMap[K, V]) Has(key K) bool {
	return om.indexOf(key) >= 0
}

func (om *OrderedMap[K, V]) HasRemove(key K) (V, bool) {
	idx := om.indexOf(key)
	if idx < 0 {
		return utils.GetZero[V](), false
	}

	v := om.pairs[idx].Value
	om.pairs = slices.Delete(om.pairs, idx, idx+1)

	return v, true
}

func (om *OrderedMap[K, V]) Clear() {
	om.pairs = nil
}

func (om *OrderedMap[K, V]) Len() int {
	return len(om.pairs)
}

// Keys is a snapshot in store order.
func (om *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(om.pairs))
	for _, p := range om.pairs {
		keys = append(keys, p.Key)
	}
	return keys
}

// Values is a snapshot in store order.
func (om *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, len(om.pairs))
	for _, p := range om.pairs {
		values = append(values, p.Value)
	}
	return values
}

// Pairs iterates the live store. Mutating the map during iteration is undefined.
func (om *OrderedMap[K, V]) Pairs() iter.Seq[utils.Pair[K, V]] {
	return func(yield func(utils.Pair[K, V]) bool) {
		for _, p := range om.pairs {
			if !yield(p) {
				return
			}
		}
	}
}

func (om *OrderedMap[K, V]) ForEach(f ForEachFn[K, V]) {
	for order, p := range om.pairs {
		f(p.Key, p.Value, order)
	}
}

func (om *OrderedMap[K, V]) indexOf(key K) int {
	return slices.IndexFunc(om.pairs, func(p utils.Pair[K, V]) bool {
		return om.comparer.Equals(p.Key, key)
	})
}
