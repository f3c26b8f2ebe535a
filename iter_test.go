package vec_test

import (
	"slices"
	"testing"

	"github.com/teenjuna/vec"
	"github.com/teenjuna/vec/internal/testing/require"
)

func TestIter(t *testing.T) {
	input := items(1000)
	v := vec.FromSlice(input)

	it := v.Iter()
	require.Equal(t, it.Len(), len(input))

	var got []Item
	for {
		item, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, item)
	}
	require.Equal(t, got, input)
	require.Equal(t, it.Len(), 0)

	// Exhausted iterators stay exhausted.
	for range 3 {
		item, ok := it.Next()
		require.False(t, ok)
		require.Equal(t, item, Item{})
	}
}

func TestIterEmpty(t *testing.T) {
	it := vec.New[int]().Iter()
	_, ok := it.Next()
	require.False(t, ok)
	require.Equal(t, len(slices.Collect(it.Seq())), 0)
}

func TestIterSeq(t *testing.T) {
	v := vec.FromSlice([]int{1, 2, 3, 4, 5})

	require.Equal(t, slices.Collect(v.All()), []int{1, 2, 3, 4, 5})
	// Every call of All starts over.
	require.Equal(t, slices.Collect(v.All()), []int{1, 2, 3, 4, 5})

	it := v.Iter()
	for item := range it.Seq() {
		if item == 2 {
			break
		}
	}
	require.Equal(t, it.Len(), 3)
	require.Equal(t, slices.Collect(it.Seq()), []int{3, 4, 5})
	require.Equal(t, len(slices.Collect(it.Seq())), 0)
}

func TestIterSnapshot(t *testing.T) {
	v := vec.FromSlice([]int{1, 2}, func(c *vec.Config) {
		c.InitialCapacity(2)
	})

	it := v.Iter()

	// Pushed items are not observed, neither is the reallocation.
	v.Push(3)
	v.Push(4)
	require.Equal(t, v.Cap(), 4)
	require.Nil(t, v.Set(0, 10))

	require.Equal(t, slices.Collect(it.Seq()), []int{1, 2})
	require.Equal(t, v.Slice(), []int{10, 2, 3, 4})
}

func TestIterSeesInPlaceWrites(t *testing.T) {
	v := vec.FromSlice([]int{1, 2, 3})

	it := v.Iter()
	require.Nil(t, v.Set(1, 20))

	require.Equal(t, slices.Collect(it.Seq()), []int{1, 20, 3})
}

func TestIterAfterRelease(t *testing.T) {
	v := vec.FromSlice([]string{"a", "b"})
	it := v.Iter()
	v.Release()

	// Memory-safe, but the released slots were zeroed.
	require.Equal(t, slices.Collect(it.Seq()), []string{"", ""})
}

func TestIterSeesZeroedSlots(t *testing.T) {
	v := vec.FromSlice([]int{1, 2, 3})

	it := v.Iter()
	item, ok := v.Pop()
	require.True(t, ok)
	require.Equal(t, item, 3)

	// The popped slot is zeroed, and the snapshot still covers it.
	require.Equal(t, slices.Collect(it.Seq()), []int{1, 2, 0})

	names := vec.FromSlice([]string{"a", "b", "c"})
	namesIt := names.Iter()
	_, err := names.Remove(0)
	require.Nil(t, err)

	require.Equal(t, slices.Collect(namesIt.Seq()), []string{"b", "c", ""})
}
