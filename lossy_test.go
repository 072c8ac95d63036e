package bbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// InsertLossy on a full buffer acts as a sliding window: the old tail is the
// element that no longer fits and is the one discarded.
func TestInsertLossyEvictsTail(t *testing.T) {
	b := New[int](4)
	for i := 0; i < 4; i++ {
		require.True(t, b.TryPush(i+1), "setup push %d", i)
	}

	b.InsertLossy(0, 99)

	assert.Equal(t, 4, b.Len(), "length stays clamped at capacity")
	assert.Equal(t, []int{99, 1, 2, 3}, b.Slice(), "old tail evicted, not the new element")
}

func TestInsertLossyMiddleFull(t *testing.T) {
	b := New[int](5)
	for i := 0; i < 5; i++ {
		b.TryPush(i + 1) // [1 2 3 4 5]
	}

	b.InsertLossy(2, 77)

	assert.Equal(t, 5, b.Len())
	assert.Equal(t, []int{1, 2, 77, 3, 4}, b.Slice(), "elements right of the index shift, 5 falls off")
}

// With spare capacity InsertLossy behaves exactly like a successful
// TryInsert.
func TestInsertLossyWithRoom(t *testing.T) {
	b := New[int](5)
	b.TryPush(1)
	b.TryPush(3)

	b.InsertLossy(1, 2)

	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []int{1, 2, 3}, b.Slice())

	b.InsertLossy(3, 4) // index == Len() appends
	assert.Equal(t, []int{1, 2, 3, 4}, b.Slice())
}

// Inserting at the end of a full buffer: the new element is the rightmost
// one that does not fit, so it is the one dropped.
func TestInsertLossyAtEndOfFull(t *testing.T) {
	b := New[int](3)
	for i := 0; i < 3; i++ {
		b.TryPush(i + 1)
	}

	b.InsertLossy(3, 99)

	assert.Equal(t, 3, b.Len())
	assert.Equal(t, []int{1, 2, 3}, b.Slice(), "the new element is dropped, existing elements untouched")
}

func TestInsertLossyZeroCapacity(t *testing.T) {
	b := New[int](0)

	b.InsertLossy(0, 1)

	assert.Equal(t, 0, b.Len(), "nothing to evict and nothing to construct")
}

// Repeated front insertion keeps the most recent values in order - the
// sliding-window pattern InsertLossy exists for.
func TestInsertLossySlidingWindow(t *testing.T) {
	b := New[int](3)
	for i := 1; i <= 6; i++ {
		b.InsertLossy(0, i)
	}

	require.Equal(t, 3, b.Len())
	assert.Equal(t, []int{6, 5, 4}, b.Slice(), "window holds the three newest values")
}
