package list_test

import (
	"slices"
	"testing"

	"github.com/denismitr/enumerable/list"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_Get(t *testing.T) {
	l := list.From[string](nil, "foo", "bar")

	t.Run("in range", func(t *testing.T) {
		v, err := l.Get(1)
		require.NoError(t, err)
		assert.Equal(t, "bar", v)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := l.Get(2)
		require.Error(t, err)
		assert.True(t, errors.Is(err, list.ErrIndexOutOfRange))

		_, err = l.Get(-1)
		assert.True(t, errors.Is(err, list.ErrIndexOutOfRange))
	})
}

func TestList_TryRemove(t *testing.T) {
	t.Run("removes only the first match", func(t *testing.T) {
		l := list.From[int](nil, 1, 2, 1, 3)

		assert.True(t, l.TryRemove(1))
		assert.Equal(t, []int{2, 1, 3}, l.Items())

		assert.False(t, l.TryRemove(9))
		assert.Equal(t, 3, l.Len())
	})
}

func TestList_AddRange(t *testing.T) {
	l := list.New[int](nil)
	l.Add(1)
	l.AddRange(slices.Values([]int{2, 3}))

	assert.Equal(t, []int{1, 2, 3}, l.Items())
	assert.True(t, l.Contains(2))

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Empty(t, slices.Collect(l.All()))
}
