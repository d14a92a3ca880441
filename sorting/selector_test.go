package sorting_test

import (
	"strings"
	"testing"

	"github.com/denismitr/enumerable/sorting"
	"github.com/denismitr/enumerable/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kv struct {
	k int
	v string
}

type ab struct {
	a, b int
}

func TestSortItemSelector_Select(t *testing.T) {
	t.Run("ascending picks the smaller key", func(t *testing.T) {
		s := sorting.Ascending(func(x kv) int { return x.k })

		item, ok := s.Select(kv{k: 1}, kv{k: 2})
		require.True(t, ok)
		assert.Equal(t, sorting.Left, item)

		item, ok = s.Select(kv{k: 3}, kv{k: 2})
		require.True(t, ok)
		assert.Equal(t, sorting.Right, item)
	})

	t.Run("descending picks the larger key", func(t *testing.T) {
		s := sorting.Descending(func(x kv) int { return x.k })

		item, ok := s.Select(kv{k: 1}, kv{k: 2})
		require.True(t, ok)
		assert.Equal(t, sorting.Right, item)

		item, ok = s.Select(kv{k: 3}, kv{k: 2})
		require.True(t, ok)
		assert.Equal(t, sorting.Left, item)
	})

	t.Run("equal keys on the last link report a tie", func(t *testing.T) {
		s := sorting.Ascending(func(x kv) int { return x.k })
		_, ok := s.Select(kv{k: 1, v: "a"}, kv{k: 1, v: "b"})
		assert.False(t, ok)
		assert.Equal(t, 0, s.Compare(kv{k: 1}, kv{k: 1}))
	})

	t.Run("equal keys delegate to the next link", func(t *testing.T) {
		s := sorting.Ascending(func(x ab) int { return x.a }).
			Then(sorting.Descending(func(x ab) int { return x.b }))

		item, ok := s.Select(ab{a: 1, b: 1}, ab{a: 1, b: 2})
		require.True(t, ok)
		assert.Equal(t, sorting.Right, item)
		assert.Equal(t, 1, s.Compare(ab{a: 1, b: 1}, ab{a: 1, b: 2}))
		assert.Equal(t, -1, s.Compare(ab{a: 0, b: 1}, ab{a: 1, b: 2}))
	})
}

func TestSortItemSelector_Then(t *testing.T) {
	t.Run("then does not modify the receiver", func(t *testing.T) {
		byA := sorting.Ascending(func(x ab) int { return x.a })
		byAThenB := byA.Then(sorting.Ascending(func(x ab) int { return x.b }))

		_, ok := byA.Select(ab{a: 1, b: 1}, ab{a: 1, b: 2})
		assert.False(t, ok)

		item, ok := byAThenB.Select(ab{a: 1, b: 1}, ab{a: 1, b: 2})
		assert.True(t, ok)
		assert.Equal(t, sorting.Left, item)
	})

	t.Run("then on nil chain returns next", func(t *testing.T) {
		var empty *sorting.SortItemSelector[ab]
		next := sorting.Ascending(func(x ab) int { return x.a })
		assert.Same(t, next, empty.Then(next))
	})
}

func TestStable(t *testing.T) {
	t.Run("ties keep their original order", func(t *testing.T) {
		items := []kv{{1, "a"}, {1, "b"}, {0, "c"}}
		sorting.Stable(items, sorting.Ascending(func(x kv) int { return x.k }))
		assert.Equal(t, []kv{{0, "c"}, {1, "a"}, {1, "b"}}, items)
	})

	t.Run("descending keeps ties stable as well", func(t *testing.T) {
		items := []kv{{1, "a"}, {2, "b"}, {1, "c"}, {2, "d"}}
		sorting.Stable(items, sorting.Descending(func(x kv) int { return x.k }))
		assert.Equal(t, []kv{{2, "b"}, {2, "d"}, {1, "a"}, {1, "c"}}, items)
	})

	t.Run("multi key chain", func(t *testing.T) {
		items := []ab{{a: 1, b: 2}, {a: 1, b: 1}, {a: 0, b: 5}}
		chain := sorting.Ascending(func(x ab) int { return x.a }).
			Then(sorting.Descending(func(x ab) int { return x.b }))

		sorting.Stable(items, chain)
		assert.Equal(t, []ab{{a: 0, b: 5}, {a: 1, b: 2}, {a: 1, b: 1}}, items)
	})

	t.Run("custom key comparison", func(t *testing.T) {
		words := []string{"b", "A", "c"}
		chain := sorting.ByFunc(
			func(s string) string { return s },
			func(a, b string) int { return strings.Compare(strings.ToLower(a), strings.ToLower(b)) },
			utils.AscOrder,
		)

		sorting.Stable(words, chain)
		assert.Equal(t, []string{"A", "b", "c"}, words)
	})

	t.Run("nil chain leaves items untouched", func(t *testing.T) {
		items := []int{3, 1, 2}
		sorting.Stable[int](items, nil)
		assert.Equal(t, []int{3, 1, 2}, items)
	})
}
