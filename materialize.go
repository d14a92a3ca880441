package enumerable

import (
	"github.com/denismitr/enumerable/list"
	"github.com/denismitr/enumerable/set"
	"github.com/pkg/errors"
)

// ToSlice pulls the whole sequence once.
func (e Enumerable[T]) ToSlice() ([]T, error) {
	if e.err != nil {
		return nil, e.err
	}

	result := make([]T, 0)
	for item := range e.Seq() {
		result = append(result, item)
	}

	return result, nil
}

// ForEach calls action with every element and its position.
func (e Enumerable[T]) ForEach(action func(item T, index int)) error {
	if e.err != nil {
		return e.err
	}

	if action == nil {
		return missingArgument("for each", "action")
	}

	index := 0
	for item := range e.Seq() {
		action(item, index)
		index++
	}

	return nil
}

func (e Enumerable[T]) ToCollection() (*list.List[T], error) {
	if e.err != nil {
		return nil, e.err
	}

	l := list.New[T](nil)
	l.AddRange(e.Seq())
	return l, nil
}

func (e Enumerable[T]) ToReadOnlyCollection() (list.ReadOnly[T], error) {
	l, err := e.ToCollection()
	if err != nil {
		return nil, err
	}

	return l, nil
}

// ToHashSet keeps the distinct elements in first-seen order.
func (e Enumerable[T]) ToHashSet(options ...Option[T]) (*set.HashSet[T], error) {
	if e.err != nil {
		return nil, e.err
	}

	cfg := newConfig(options)
	s := set.New(cfg.comparer)
	for item := range e.Seq() {
		s.Insert(item)
	}

	return s, nil
}

func (e Enumerable[T]) ToReadOnlyHashSet(options ...Option[T]) (set.ReadOnly[T], error) {
	s, err := e.ToHashSet(options...)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// ToDictionary fails with ErrDuplicateKey when two elements map to the same key.
func ToDictionary[T, K, V any](
	e Enumerable[T],
	keySelector func(item T) K,
	valueSelector func(item T) V,
	options ...Option[K],
) (*Dictionary[K, V], error) {
	if e.err != nil {
		return nil, e.err
	}

	if keySelector == nil {
		return nil, missingArgument("to dictionary", "key selector")
	}

	if valueSelector == nil {
		return nil, missingArgument("to dictionary", "value selector")
	}

	d := NewDictionary[K, V](options...)
	for item := range e.Seq() {
		key := keySelector(item)
		if !d.TryAdd(key, valueSelector(item)) {
			return nil, errors.Wrapf(ErrDuplicateKey, "to dictionary: key %v", key)
		}
	}

	return d, nil
}

func ToReadOnlyDictionary[T, K, V any](
	e Enumerable[T],
	keySelector func(item T) K,
	valueSelector func(item T) V,
	options ...Option[K],
) (ReadOnlyDictionary[K, V], error) {
	d, err := ToDictionary(e, keySelector, valueSelector, options...)
	if err != nil {
		return nil, err
	}

	return d, nil
}
