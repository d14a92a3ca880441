package set_test

import (
	"strings"
	"testing"

	"github.com/denismitr/enumerable/comparer"
	"github.com/denismitr/enumerable/set"
	"github.com/stretchr/testify/assert"
)

func TestHashSet_Insert(t *testing.T) {
	t.Run("duplicates are ignored", func(t *testing.T) {
		s := set.New[string](nil)
		assert.True(t, s.Insert("foo"))
		assert.True(t, s.Insert("bar"))
		assert.False(t, s.Insert("foo"))

		assert.Equal(t, 2, s.Len())
		assert.Equal(t, []string{"foo", "bar"}, s.Items())
	})

	t.Run("custom comparer decides membership", func(t *testing.T) {
		caseless := comparer.Func[string](strings.EqualFold)
		s := set.New[string](caseless)
		s.InsertSlice([]string{"Foo", "FOO", "bar", "BAR", "baz"})

		assert.Equal(t, []string{"Foo", "bar", "baz"}, s.Items())
		assert.True(t, s.Has("foo"))
		assert.False(t, s.Has("qux"))
	})
}

func TestHashSet_Remove(t *testing.T) {
	t.Run("remove existing item from the middle", func(t *testing.T) {
		s := set.FromSlice[string](nil, []string{"foo", "bar", "baz", "123"})

		assert.True(t, s.Remove("bar"))

		assert.Equal(t, []string{"foo", "baz", "123"}, s.Items())
	})

	t.Run("remove existing item from the beginning", func(t *testing.T) {
		s := set.FromSlice[string](nil, []string{"foo", "bar", "baz", "123"})

		assert.True(t, s.Remove("foo"))

		assert.Equal(t, []string{"bar", "baz", "123"}, s.Items())
		assert.False(t, s.Has("foo"))
		assert.True(t, s.Has("123"))
		assert.True(t, s.Has("bar"))
		assert.True(t, s.Has("baz"))
	})

	t.Run("remove missing item", func(t *testing.T) {
		s := set.FromSlice[string](nil, []string{"foo"})

		assert.False(t, s.Remove("bar"))
		assert.Equal(t, 1, s.Len())
	})
}

func TestHashSet_InsertSet(t *testing.T) {
	t.Run("sets with single elements", func(t *testing.T) {
		s1 := set.New[int](nil)
		s1.Insert(3)

		s2 := set.New[int](nil)
		s2.Insert(9)

		assert.True(t, s1.InsertSet(s2))
		assert.False(t, s1.InsertSet(s2))
		assert.Equal(t, 2, s1.Len())
		assert.Equal(t, 1, s2.Len())
		assert.Equal(t, []int{3, 9}, s1.Items())
	})
}

func TestHashSet_Clear(t *testing.T) {
	s := set.FromSlice[int](nil, []int{1, 2, 3})
	s.Clear()

	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has(1))
	assert.True(t, s.Insert(1))
}
