package enumerable

import (
	"slices"

	"github.com/denismitr/enumerable/orderedmap"
)

// Grouping is a key and the elements that mapped to it, in source order.
type Grouping[K, T any] struct {
	Enumerable[T]
	key K
}

func (g Grouping[K, T]) Key() K {
	return g.key
}

// GroupBy yields one Grouping per distinct key in first-seen key order.
// Keys are matched with the comparer from options, comparer.Default otherwise.
func GroupBy[T, K any](e Enumerable[T], keySelector func(item T) K, options ...Option[K]) Enumerable[Grouping[K, T]] {
	if keySelector == nil {
		return fail[T, Grouping[K, T]](e, missingArgument("group by", "key selector"))
	}

	cfg := newConfig(options)
	upstream := e.Seq()
	return pipe(e, func(yield func(Grouping[K, T]) bool) {
		groups := orderedmap.NewOrderedMap[K, []T](cfg.comparer)
		for item := range upstream {
			key := keySelector(item)
			members, _ := groups.HasGet(key)
			groups.Set(key, append(members, item))
		}

		for p := range groups.Pairs() {
			g := Grouping[K, T]{Enumerable: FromSlice(slices.Clip(p.Value)...), key: p.Key}
			if !yield(g) {
				return
			}
		}
	})
}
