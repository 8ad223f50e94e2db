package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectKeys(c *KeyCursor[int, string]) []int {
	var keys []int
	for ok := c.First(); ok; ok = c.Next() {
		keys = append(keys, c.Key())
	}
	return keys
}

func Test_KeyCursorDistinctKeysInOrder(t *testing.T) {
	q := newIntQueue(t)
	for _, k := range []int{5, 3, 5, 9, 3, 3, 1} {
		require.NoError(t, q.Push(k, "v"))
	}

	c := q.KeyCursor()
	assert.Equal(t, []int{1, 3, 5, 9}, collectKeys(c))

	// Backwards too.
	var keys []int
	for ok := c.Last(); ok; ok = c.Previous() {
		keys = append(keys, c.Key())
	}
	assert.Equal(t, []int{9, 5, 3, 1}, keys)
}

func Test_KeyCursorEmptyQueue(t *testing.T) {
	q := newIntQueue(t)
	c := q.KeyCursor()
	assert.False(t, c.First())
	assert.False(t, c.Last())
	assert.False(t, c.IsPositioned())
}

func Test_KeyCursorEntryCount(t *testing.T) {
	q := newIntQueue(t)
	for _, k := range []int{2, 2, 2, 4} {
		require.NoError(t, q.Push(k, "v"))
	}
	c := q.KeyCursor()
	require.True(t, c.Find(2))
	assert.Equal(t, 3, c.EntryCount())
	require.True(t, c.Next())
	assert.Equal(t, 4, c.Key())
	assert.Equal(t, 1, c.EntryCount())
	assert.False(t, c.Find(3))
}

func Test_KeyCursorSkipsExhaustedKeys(t *testing.T) {
	q := newIntQueue(t)
	for _, k := range []int{1, 2, 3, 2} {
		require.NoError(t, q.Push(k, "v"))
	}
	require.NoError(t, q.PopKey(3))

	assert.Equal(t, []int{1, 2}, collectKeys(q.KeyCursor()))

	// Key 2 still has one entry after a PopKey.
	require.NoError(t, q.PopKey(2))
	assert.Equal(t, []int{1, 2}, collectKeys(q.KeyCursor()))
	require.NoError(t, q.PopKey(2))
	assert.Equal(t, []int{1}, collectKeys(q.KeyCursor()))
}

// Other instances' mutations fork their own state and leave the cursor's
// snapshot alone.
func Test_KeyCursorStableAcrossCloneMutation(t *testing.T) {
	q := newIntQueue(t)
	for _, k := range []int{1, 2, 3} {
		require.NoError(t, q.Push(k, "v"))
	}
	c, err := q.Clone()
	require.NoError(t, err)

	kc := q.KeyCursor()
	require.True(t, kc.First())
	require.NoError(t, c.PopKey(2))

	assert.Equal(t, []int{1, 2, 3}, collectKeys(q.KeyCursor()))
	assert.Equal(t, []int{1, 3}, collectKeys(c.KeyCursor()))
	require.True(t, kc.Next())
	assert.Equal(t, 2, kc.Key())
}
