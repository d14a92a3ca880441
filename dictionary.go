package enumerable

import (
	"iter"

	"github.com/denismitr/enumerable/comparer"
	"github.com/denismitr/enumerable/orderedmap"
	"github.com/denismitr/enumerable/utils"
	"github.com/pkg/errors"
)

type (
	ReadOnlyDictionary[K, V any] interface {
		Len() int
		Keys() []K
		Values() []V
		ContainsKey(key K) bool
		Get(key K) (V, error)
		GetOrDefault(key K, defaultValue V) V
		Seq() iter.Seq[KeyValuePair[K, V]]
	}

	// Dictionary is a keyed collection whose key identity comes from an equality
	// comparer fixed at construction. Keys keep the position they were first added at.
	// It is itself an Enumerable of its pairs; iterating while mutating is undefined.
	Dictionary[K, V any] struct {
		Enumerable[KeyValuePair[K, V]]
		store *orderedmap.OrderedMap[K, V]
	}
)

var _ ReadOnlyDictionary[string, int] = (*Dictionary[string, int])(nil)

func NewDictionary[K, V any](options ...Option[K]) *Dictionary[K, V] {
	cfg := newConfig(options)
	store := orderedmap.NewOrderedMap[K, V](cfg.comparer)

	return &Dictionary[K, V]{
		Enumerable: From(store.Pairs()),
		store:      store,
	}
}

// NewDictionaryFrom fills a dictionary from pairs; a repeated key overwrites the earlier value.
func NewDictionaryFrom[K, V any](pairs iter.Seq[KeyValuePair[K, V]], options ...Option[K]) *Dictionary[K, V] {
	d := NewDictionary[K, V](options...)
	if pairs == nil {
		return d
	}

	for p := range pairs {
		d.Set(p.Key, p.Value)
	}

	return d
}

func (d *Dictionary[K, V]) Comparer() comparer.EqualityComparer[K] {
	return d.store.Comparer()
}

func (d *Dictionary[K, V]) Len() int {
	return d.store.Len()
}

// Keys is a snapshot, not a live view.
func (d *Dictionary[K, V]) Keys() []K {
	return d.store.Keys()
}

// Values is a snapshot, not a live view.
func (d *Dictionary[K, V]) Values() []V {
	return d.store.Values()
}

func (d *Dictionary[K, V]) Clear() {
	d.store.Clear()
}

func (d *Dictionary[K, V]) ContainsKey(key K) bool {
	return d.store.Has(key)
}

func (d *Dictionary[K, V]) Get(key K) (V, error) {
	v, ok := d.store.HasGet(key)
	if !ok {
		return utils.GetZero[V](), errors.Wrapf(ErrKeyNotFound, "key %v", key)
	}

	return v, nil
}

func (d *Dictionary[K, V]) GetOrDefault(key K, defaultValue V) V {
	v, ok := d.store.HasGet(key)
	if !ok {
		return defaultValue
	}

	return v
}

// GetOrAdd returns the stored value, or stores and returns valueFactory(key).
// valueFactory is not called when the key is present.
func (d *Dictionary[K, V]) GetOrAdd(key K, valueFactory func(key K) V) (V, error) {
	if valueFactory == nil {
		return utils.GetZero[V](), missingArgument("get or add", "value factory")
	}

	if v, ok := d.store.HasGet(key); ok {
		return v, nil
	}

	v := valueFactory(key)
	d.store.SetNX(key, v)

	return v, nil
}

// Set inserts or replaces. A replaced key keeps its position.
func (d *Dictionary[K, V]) Set(key K, value V) {
	d.store.Set(key, value)
}

// TryAdd never overwrites.
func (d *Dictionary[K, V]) TryAdd(key K, value V) bool {
	return d.store.SetNX(key, value)
}

// TryRemove deletes the entry for key. Adding the key again appends it at the end.
func (d *Dictionary[K, V]) TryRemove(key K) bool {
	_, removed := d.store.HasRemove(key)
	return removed
}
