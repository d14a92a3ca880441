// Package enumerable is a lazy, chainable query engine over in-memory sequences.
//
// An Enumerable wraps a restartable iter.Seq. Operators such as Where, Take or OrderBy
// return new Enumerables without pulling the source; elements are produced only when a
// materializer (ToSlice, First, ForEach, ...) runs, and every run re-executes the whole
// chain. A missing callback does not fail at call time: the resulting Enumerable carries
// ErrInvalidArgument and reports it from the first materializer.
//
//	evens, err := enumerable.FromSlice(1, 2, 3, 4).
//		Where(func(n int) bool { return n%2 == 0 }).
//		ToSlice()
package enumerable

import (
	"iter"
	"slices"

	"github.com/denismitr/enumerable/queue"
	"github.com/denismitr/enumerable/set"
)

type (
	Predicate[T any] func(item T) bool

	Enumerable[T any] struct {
		source iter.Seq[T]
		err    error
	}
)

// From wraps a restartable sequence. A nil sequence is empty.
func From[T any](seq iter.Seq[T]) Enumerable[T] {
	return Enumerable[T]{source: seq}
}

// FromSlice enumerates items. The slice is not copied, so changes to it
// are visible to later iterations.
func FromSlice[T any](items ...T) Enumerable[T] {
	return From(slices.Values(items))
}

func Empty[T any]() Enumerable[T] {
	return Enumerable[T]{}
}

// Range yields count consecutive integers starting at start.
func Range(start, count int) Enumerable[int] {
	return From(func(yield func(int) bool) {
		for i := 0; i < count; i++ {
			if !yield(start + i) {
				return
			}
		}
	})
}

func Repeat[T any](value T, count int) Enumerable[T] {
	return From(func(yield func(T) bool) {
		for i := 0; i < count; i++ {
			if !yield(value) {
				return
			}
		}
	})
}

// Generate is unbounded: it yields f(0), f(1), ... until the consumer stops.
func Generate[T any](f func(i int) T) Enumerable[T] {
	if f == nil {
		return Enumerable[T]{err: missingArgument("generate", "generator")}
	}

	return From(func(yield func(T) bool) {
		for i := 0; ; i++ {
			if !yield(f(i)) {
				return
			}
		}
	})
}

// Seq exposes the underlying sequence. It yields nothing when the chain carries an error.
func (e Enumerable[T]) Seq() iter.Seq[T] {
	if e.err != nil || e.source == nil {
		return func(func(T) bool) {}
	}

	return e.source
}

// Err reports a deferred error, e.g. a missing callback somewhere upstream.
func (e Enumerable[T]) Err() error {
	return e.err
}

func (e Enumerable[T]) Where(predicate Predicate[T]) Enumerable[T] {
	if predicate == nil {
		return fail[T, T](e, missingArgument("where", "predicate"))
	}

	upstream := e.Seq()
	return pipe(e, func(yield func(T) bool) {
		for item := range upstream {
			if predicate(item) && !yield(item) {
				return
			}
		}
	})
}

func (e Enumerable[T]) Concat(other Enumerable[T]) Enumerable[T] {
	if e.err == nil && other.err != nil {
		return fail[T, T](e, other.err)
	}

	first, second := e.Seq(), other.Seq()
	return pipe(e, func(yield func(T) bool) {
		for item := range first {
			if !yield(item) {
				return
			}
		}

		for item := range second {
			if !yield(item) {
				return
			}
		}
	})
}

// Except drops every element that appears in other. It is a filter, not a set
// difference: repeats of a retained value are kept.
func (e Enumerable[T]) Except(other Enumerable[T], options ...Option[T]) Enumerable[T] {
	if e.err == nil && other.err != nil {
		return fail[T, T](e, other.err)
	}

	cfg := newConfig(options)
	upstream, excluded := e.Seq(), other.Seq()
	return pipe(e, func(yield func(T) bool) {
		exclude := set.New(cfg.comparer)
		for item := range excluded {
			exclude.Insert(item)
		}

		for item := range upstream {
			if !exclude.Has(item) && !yield(item) {
				return
			}
		}
	})
}

// Distinct keeps the first occurrence of every element.
func (e Enumerable[T]) Distinct(options ...Option[T]) Enumerable[T] {
	cfg := newConfig(options)
	upstream := e.Seq()
	return pipe(e, func(yield func(T) bool) {
		seen := set.New(cfg.comparer)
		for item := range upstream {
			if seen.Insert(item) && !yield(item) {
				return
			}
		}
	})
}

// Take yields at most n elements and never pulls the element after the n-th.
// A negative n behaves as 0.
func (e Enumerable[T]) Take(n int) Enumerable[T] {
	upstream := e.Seq()
	return pipe(e, func(yield func(T) bool) {
		if n <= 0 {
			return
		}

		taken := 0
		for item := range upstream {
			if !yield(item) {
				return
			}

			taken++
			if taken >= n {
				return
			}
		}
	})
}

// Skip drops the first n elements. A negative n behaves as 0.
func (e Enumerable[T]) Skip(n int) Enumerable[T] {
	if n <= 0 {
		return e
	}

	upstream := e.Seq()
	return pipe(e, func(yield func(T) bool) {
		skipped := 0
		for item := range upstream {
			if skipped < n {
				skipped++
				continue
			}

			if !yield(item) {
				return
			}
		}
	})
}

func (e Enumerable[T]) TakeWhile(predicate Predicate[T]) Enumerable[T] {
	if predicate == nil {
		return fail[T, T](e, missingArgument("take while", "predicate"))
	}

	upstream := e.Seq()
	return pipe(e, func(yield func(T) bool) {
		for item := range upstream {
			if !predicate(item) || !yield(item) {
				return
			}
		}
	})
}

func (e Enumerable[T]) SkipWhile(predicate Predicate[T]) Enumerable[T] {
	if predicate == nil {
		return fail[T, T](e, missingArgument("skip while", "predicate"))
	}

	upstream := e.Seq()
	return pipe(e, func(yield func(T) bool) {
		skipping := true
		for item := range upstream {
			if skipping && predicate(item) {
				continue
			}

			skipping = false
			if !yield(item) {
				return
			}
		}
	})
}

func (e Enumerable[T]) Append(value T) Enumerable[T] {
	upstream := e.Seq()
	return pipe(e, func(yield func(T) bool) {
		for item := range upstream {
			if !yield(item) {
				return
			}
		}

		yield(value)
	})
}

func (e Enumerable[T]) Prepend(value T) Enumerable[T] {
	upstream := e.Seq()
	return pipe(e, func(yield func(T) bool) {
		if !yield(value) {
			return
		}

		for item := range upstream {
			if !yield(item) {
				return
			}
		}
	})
}

// Reverse buffers the whole source when pulled, so it never completes on an
// unbounded sequence.
func (e Enumerable[T]) Reverse() Enumerable[T] {
	upstream := e.Seq()
	return pipe(e, func(yield func(T) bool) {
		items := slices.Collect(upstream)
		for i := len(items) - 1; i >= 0; i-- {
			if !yield(items[i]) {
				return
			}
		}
	})
}

// TakeLast yields the last n elements. It buffers at most n elements but has to
// reach the end of the source first.
func (e Enumerable[T]) TakeLast(n int) Enumerable[T] {
	upstream := e.Seq()
	return pipe(e, func(yield func(T) bool) {
		if n <= 0 {
			return
		}

		window := queue.NewRingQueue[T](n)
		for item := range upstream {
			window.Push(item)
		}

		for !window.IsEmpty() {
			item, _ := window.Dequeue()
			if !yield(item) {
				return
			}
		}
	})
}

// SkipLast drops the last n elements, holding back n elements while streaming.
func (e Enumerable[T]) SkipLast(n int) Enumerable[T] {
	if n <= 0 {
		return e
	}

	upstream := e.Seq()
	return pipe(e, func(yield func(T) bool) {
		window := queue.NewRingQueue[T](n)
		for item := range upstream {
			if oldest, full := window.Push(item); full && !yield(oldest) {
				return
			}
		}
	})
}

func pipe[T, R any](upstream Enumerable[T], seq iter.Seq[R]) Enumerable[R] {
	return Enumerable[R]{source: seq, err: upstream.err}
}

// fail keeps the first error of the chain.
func fail[T, R any](upstream Enumerable[T], err error) Enumerable[R] {
	if upstream.err != nil {
		err = upstream.err
	}

	return Enumerable[R]{err: err}
}
