package enumerable

import (
	"github.com/denismitr/enumerable/utils"
	"github.com/pkg/errors"
)

func (e Enumerable[T]) First() (T, error) {
	if e.err != nil {
		return utils.GetZero[T](), e.err
	}

	for item := range e.Seq() {
		return item, nil
	}

	return utils.GetZero[T](), errors.Wrap(ErrEmptySequence, "first")
}

// FirstOrDefault returns the first element matching predicate (any element when
// predicate is nil), or defaultValue. The error is only set for upstream failures.
func (e Enumerable[T]) FirstOrDefault(predicate Predicate[T], defaultValue T) (T, error) {
	if e.err != nil {
		return defaultValue, e.err
	}

	for item := range e.Seq() {
		if predicate == nil || predicate(item) {
			return item, nil
		}
	}

	return defaultValue, nil
}

func (e Enumerable[T]) Last() (T, error) {
	if e.err != nil {
		return utils.GetZero[T](), e.err
	}

	last, found := e.last(nil)
	if !found {
		return utils.GetZero[T](), errors.Wrap(ErrEmptySequence, "last")
	}

	return last, nil
}

func (e Enumerable[T]) LastOrDefault(predicate Predicate[T], defaultValue T) (T, error) {
	if e.err != nil {
		return defaultValue, e.err
	}

	last, found := e.last(predicate)
	if !found {
		return defaultValue, nil
	}

	return last, nil
}

func (e Enumerable[T]) ElementAt(index int) (T, error) {
	if e.err != nil {
		return utils.GetZero[T](), e.err
	}

	item, count, found := e.elementAt(index)
	if !found {
		return utils.GetZero[T](), errors.Wrapf(ErrIndexOutOfRange, "element at %d of %d", index, count)
	}

	return item, nil
}

func (e Enumerable[T]) ElementAtOrDefault(index int, defaultValue T) (T, error) {
	if e.err != nil {
		return defaultValue, e.err
	}

	item, _, found := e.elementAt(index)
	if !found {
		return defaultValue, nil
	}

	return item, nil
}

// Any reports whether some element matches predicate. A nil predicate checks for
// emptiness and stops at the first element.
func (e Enumerable[T]) Any(predicate Predicate[T]) (bool, error) {
	if e.err != nil {
		return false, e.err
	}

	for item := range e.Seq() {
		if predicate == nil || predicate(item) {
			return true, nil
		}
	}

	return false, nil
}

// All stops at the first element that fails predicate. It is true for an empty sequence.
func (e Enumerable[T]) All(predicate Predicate[T]) (bool, error) {
	if e.err != nil {
		return false, e.err
	}

	if predicate == nil {
		return false, missingArgument("all", "predicate")
	}

	for item := range e.Seq() {
		if !predicate(item) {
			return false, nil
		}
	}

	return true, nil
}

// Count counts elements matching predicate, or all of them when predicate is nil.
func (e Enumerable[T]) Count(predicate Predicate[T]) (int, error) {
	if e.err != nil {
		return 0, e.err
	}

	count := 0
	for item := range e.Seq() {
		if predicate == nil || predicate(item) {
			count++
		}
	}

	return count, nil
}

func (e Enumerable[T]) Contains(value T, options ...Option[T]) (bool, error) {
	cfg := newConfig(options)
	return e.Any(func(item T) bool {
		return cfg.comparer.Equals(item, value)
	})
}

func (e Enumerable[T]) last(predicate Predicate[T]) (last T, found bool) {
	for item := range e.Seq() {
		if predicate == nil || predicate(item) {
			last = item
			found = true
		}
	}

	return last, found
}

// elementAt stops pulling once index is reached; count is how many elements were seen.
func (e Enumerable[T]) elementAt(index int) (item T, count int, found bool) {
	if index < 0 {
		return item, 0, false
	}

	for v := range e.Seq() {
		if count == index {
			return v, count + 1, true
		}
		count++
	}

	return item, count, false
}
