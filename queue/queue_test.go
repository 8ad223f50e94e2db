package queue

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharedcode/kvfifo"
)

func newIntQueue(t *testing.T, options ...Option[int, string]) *Queue[int, string] {
	t.Helper()
	q, err := New[int, string](nil, options...)
	require.NoError(t, err)
	return q
}

// drain pops everything, returning the entries in removal order.
func drain(t *testing.T, q *Queue[int, string]) []kvfifo.KeyValuePair[int, string] {
	t.Helper()
	var out []kvfifo.KeyValuePair[int, string]
	for !q.IsEmpty() {
		p, err := q.Front()
		require.NoError(t, err)
		out = append(out, p)
		require.NoError(t, q.Pop())
	}
	return out
}

func Test_PushPopScenario(t *testing.T) {
	q := newIntQueue(t)

	require.NoError(t, q.Push(1, "a"))
	require.NoError(t, q.Push(2, "b"))
	require.NoError(t, q.Push(1, "c"))

	front, err := q.Front()
	require.NoError(t, err)
	assert.Equal(t, kvfifo.KeyValuePair[int, string]{Key: 1, Value: "a"}, front)

	assert.Equal(t, 2, q.Count(1))
	assert.Equal(t, 1, q.Count(2))
	assert.Equal(t, 0, q.Count(99))

	first, err := q.First(1)
	require.NoError(t, err)
	assert.Equal(t, "a", first.Value)
	last, err := q.Last(1)
	require.NoError(t, err)
	assert.Equal(t, "c", last.Value)

	require.NoError(t, q.MoveToBack(1))
	front, err = q.Front()
	require.NoError(t, err)
	assert.Equal(t, kvfifo.KeyValuePair[int, string]{Key: 2, Value: "b"}, front)

	require.NoError(t, q.Pop())
	assert.Equal(t, 2, q.Size())

	got := drain(t, q)
	assert.Equal(t, []kvfifo.KeyValuePair[int, string]{
		{Key: 1, Value: "a"},
		{Key: 1, Value: "c"},
	}, got)
}

func Test_EmptyAndMissingKeyErrors(t *testing.T) {
	q := newIntQueue(t)

	var e kvfifo.Error

	err := q.Pop()
	require.ErrorAs(t, err, &e)
	assert.Equal(t, kvfifo.ContainerEmpty, e.Code)

	_, err = q.Front()
	require.ErrorAs(t, err, &e)
	assert.Equal(t, kvfifo.ContainerEmpty, e.Code)
	_, err = q.Back()
	require.ErrorAs(t, err, &e)
	assert.Equal(t, kvfifo.ContainerEmpty, e.Code)
	_, err = q.FrontRef()
	require.ErrorAs(t, err, &e)
	assert.Equal(t, kvfifo.ContainerEmpty, e.Code)
	_, err = q.BackRef()
	require.ErrorAs(t, err, &e)
	assert.Equal(t, kvfifo.ContainerEmpty, e.Code)

	require.NoError(t, q.Push(1, "a"))

	err = q.PopKey(99)
	require.ErrorAs(t, err, &e)
	assert.Equal(t, kvfifo.KeyNotFound, e.Code)
	assert.Equal(t, 99, e.UserData)

	err = q.MoveToBack(99)
	require.ErrorAs(t, err, &e)
	assert.Equal(t, kvfifo.KeyNotFound, e.Code)

	_, err = q.First(99)
	require.ErrorAs(t, err, &e)
	assert.Equal(t, kvfifo.KeyNotFound, e.Code)
	_, err = q.LastRef(99)
	require.ErrorAs(t, err, &e)
	assert.Equal(t, kvfifo.KeyNotFound, e.Code)

	// Failed lookups leave the queue intact.
	assert.Equal(t, 1, q.Size())
}

func Test_FIFODrainOrder(t *testing.T) {
	q := newIntQueue(t)
	r := rand.New(rand.NewSource(5))

	var want []kvfifo.KeyValuePair[int, string]
	for i := 0; i < 300; i++ {
		k := r.Intn(20)
		v := string(rune('a' + r.Intn(26)))
		require.NoError(t, q.Push(k, v))
		want = append(want, kvfifo.KeyValuePair[int, string]{Key: k, Value: v})
	}
	assert.Equal(t, want, drain(t, q))
}

func Test_PopKeyRemovesEarliestOfKey(t *testing.T) {
	q := newIntQueue(t)
	require.NoError(t, q.Push(1, "a"))
	require.NoError(t, q.Push(2, "b"))
	require.NoError(t, q.Push(1, "c"))
	require.NoError(t, q.Push(1, "d"))

	require.NoError(t, q.PopKey(1))
	assert.Equal(t, 2, q.Count(1))
	first, err := q.First(1)
	require.NoError(t, err)
	assert.Equal(t, "c", first.Value)

	// Global order keeps the survivors in place.
	assert.Equal(t, []kvfifo.KeyValuePair[int, string]{
		{Key: 2, Value: "b"},
		{Key: 1, Value: "c"},
		{Key: 1, Value: "d"},
	}, drain(t, q))
}

func Test_PopKeyDropsExhaustedKey(t *testing.T) {
	q := newIntQueue(t)
	require.NoError(t, q.Push(7, "only"))
	require.NoError(t, q.PopKey(7))

	assert.Equal(t, 0, q.Count(7))
	var e kvfifo.Error
	err := q.PopKey(7)
	require.ErrorAs(t, err, &e)
	assert.Equal(t, kvfifo.KeyNotFound, e.Code)
	assert.True(t, q.IsEmpty())
}

func Test_MoveToBackKeepsRelativeOrder(t *testing.T) {
	q := newIntQueue(t)
	require.NoError(t, q.Push(1, "a1"))
	require.NoError(t, q.Push(2, "b1"))
	require.NoError(t, q.Push(1, "a2"))
	require.NoError(t, q.Push(3, "c1"))
	require.NoError(t, q.Push(1, "a3"))

	require.NoError(t, q.MoveToBack(1))

	assert.Equal(t, []kvfifo.KeyValuePair[int, string]{
		{Key: 2, Value: "b1"},
		{Key: 3, Value: "c1"},
		{Key: 1, Value: "a1"},
		{Key: 1, Value: "a2"},
		{Key: 1, Value: "a3"},
	}, drain(t, q))
}

func Test_MoveToBackAlreadyAtBack(t *testing.T) {
	q := newIntQueue(t)
	require.NoError(t, q.Push(1, "a"))
	require.NoError(t, q.Push(1, "b"))

	require.NoError(t, q.MoveToBack(1))
	assert.Equal(t, []kvfifo.KeyValuePair[int, string]{
		{Key: 1, Value: "a"},
		{Key: 1, Value: "b"},
	}, drain(t, q))
}

// Count(k) summed over distinct keys always equals Size().
func Test_CountSumInvariant(t *testing.T) {
	q := newIntQueue(t)
	r := rand.New(rand.NewSource(6))

	check := func() {
		sum := 0
		c := q.KeyCursor()
		for ok := c.First(); ok; ok = c.Next() {
			n := q.Count(c.Key())
			require.Positive(t, n)
			sum += n
		}
		require.Equal(t, q.Size(), sum)
	}

	for i := 0; i < 1000; i++ {
		switch k := r.Intn(15); r.Intn(4) {
		case 0:
			if !q.IsEmpty() {
				require.NoError(t, q.Pop())
			}
		case 1:
			if q.Count(k) > 0 {
				require.NoError(t, q.PopKey(k))
			}
		case 2:
			if q.Count(k) > 0 {
				require.NoError(t, q.MoveToBack(k))
			}
		default:
			require.NoError(t, q.Push(k, "v"))
		}
		if i%100 == 0 {
			check()
		}
	}
	check()
}

// Every key's bucket lists its live entries oldest first; First/Last expose its ends.
func Test_BucketOrderInvariant(t *testing.T) {
	q := newIntQueue(t)
	for i := 0; i < 50; i++ {
		require.NoError(t, q.Push(i%5, string(rune('a'+i%26))))
	}
	for k := 0; k < 5; k++ {
		first, err := q.First(k)
		require.NoError(t, err)
		last, err := q.Last(k)
		require.NoError(t, err)
		assert.Equal(t, string(rune('a'+k%26)), first.Value)
		assert.Equal(t, string(rune('a'+(45+k)%26)), last.Value)
	}
}

func Test_ClearEmptiesInPlace(t *testing.T) {
	q := newIntQueue(t)
	require.NoError(t, q.Push(1, "a"))
	require.NoError(t, q.Push(2, "b"))

	q.Clear()
	assert.True(t, q.IsEmpty())
	assert.Equal(t, 0, q.Size())
	assert.Equal(t, 0, q.Count(1))

	// Reusable after Clear.
	require.NoError(t, q.Push(3, "c"))
	assert.Equal(t, 1, q.Size())
}

func Test_MutableRefs(t *testing.T) {
	q := newIntQueue(t)
	require.NoError(t, q.Push(1, "a"))
	require.NoError(t, q.Push(2, "b"))
	require.NoError(t, q.Push(1, "c"))

	v, err := q.FrontRef()
	require.NoError(t, err)
	*v = "A"
	v, err = q.BackRef()
	require.NoError(t, err)
	*v = "C"
	v, err = q.LastRef(2)
	require.NoError(t, err)
	*v = "B"

	assert.Equal(t, []kvfifo.KeyValuePair[int, string]{
		{Key: 1, Value: "A"},
		{Key: 2, Value: "B"},
		{Key: 1, Value: "C"},
	}, drain(t, q))
}

func Test_InvalidSlotLength(t *testing.T) {
	_, err := New[int, string](nil, WithSlotLength[int, string](2))
	require.Error(t, err)
}
