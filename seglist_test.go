package seglist

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_PushBackOrder(t *testing.T) {
	l := New[int](WithBlockSize[int](4))

	for i := 0; i < 100; i++ {
		l.PushBack(i)
	}

	require.Equal(t, 100, l.Len())
	for i := 0; i < 100; i++ {
		v, err := l.At(i)
		require.NoError(t, err)
		assert.Equal(t, i, v)
	}

	assert.Equal(t, 0, l.Cap()%l.BlockSize())
	assert.GreaterOrEqual(t, l.Cap(), l.Len())
	assert.Equal(t, l.Cap()/l.BlockSize(), l.Blocks())
}

// Walks the default block size boundary: 25 appends span two blocks,
// 21 pops retire one of them into the reserved cache.
func TestList_DefaultBlockSizeBoundary(t *testing.T) {
	ca := NewCountingAllocator[int](nil)
	l := New[int](WithAllocator[int](ca))
	require.Equal(t, DefaultBlockSize, l.BlockSize())

	for i := 0; i < 25; i++ {
		l.PushBack(i)
	}
	require.Equal(t, 25, l.Len())
	require.Equal(t, 42, l.Cap())
	require.Equal(t, 2, l.Blocks())

	v, err := l.At(20)
	require.NoError(t, err)
	assert.Equal(t, 20, v, "last slot of block 0")
	v, err = l.At(21)
	require.NoError(t, err)
	assert.Equal(t, 21, v, "first slot of block 1")

	for i := 0; i < 21; i++ {
		require.NoError(t, l.PopBack())
	}
	require.Equal(t, 4, l.Len())
	require.Equal(t, 21, l.Cap())
	require.Equal(t, 1, l.Blocks())
	assert.True(t, l.Stats().Reserved, "freed block should be cached")

	// The reserved block must absorb the next growth without a fresh
	// allocation.
	before := ca.Allocates()
	for i := 0; i < 18; i++ {
		l.PushBack(i)
	}
	assert.Equal(t, before, ca.Allocates())
	assert.Equal(t, 42, l.Cap())
}

func TestList_PushPopRestoresTopology(t *testing.T) {
	l := New[string](WithBlockSize[string](3))
	for _, s := range []string{"a", "b", "c"} {
		l.PushBack(s)
	}
	before := l.Stats()

	l.PushBack("d")
	require.NoError(t, l.PopBack())

	after := l.Stats()
	assert.Equal(t, before.Len, after.Len)
	assert.Equal(t, before.Cap, after.Cap)
	assert.Equal(t, before.Blocks, after.Blocks)

	v, err := l.Back()
	require.NoError(t, err)
	assert.Equal(t, "c", v)
}

func TestList_AtOutOfRange(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})

	for _, idx := range []int{-1, 3, 100} {
		_, err := l.At(idx)
		var oor *ErrIndexOutOfRange
		require.ErrorAs(t, err, &oor, "index %d", idx)
		assert.Equal(t, idx, oor.Index)
		assert.Equal(t, 3, oor.Len)
	}

	err := l.Set(3, 9)
	var oor *ErrIndexOutOfRange
	require.ErrorAs(t, err, &oor)
}

func TestList_EmptyListErrors(t *testing.T) {
	l := New[int]()

	require.ErrorIs(t, l.PopBack(), ErrEmptyList)
	_, err := l.Front()
	require.ErrorIs(t, err, ErrEmptyList)
	_, err = l.Back()
	require.ErrorIs(t, err, ErrEmptyList)

	// Failed calls must leave the list untouched.
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, l.Cap())
	assert.Equal(t, 0, l.Blocks())
}

func TestList_FrontBack(t *testing.T) {
	l := FromSlice([]int{10, 20, 30}, WithBlockSize[int](2))

	front, err := l.Front()
	require.NoError(t, err)
	assert.Equal(t, 10, front)

	back, err := l.Back()
	require.NoError(t, err)
	assert.Equal(t, 30, back)
}

func TestList_Set(t *testing.T) {
	l := NewWithValue[int](10, -1, WithBlockSize[int](4))

	require.NoError(t, l.Set(0, 100))
	require.NoError(t, l.Set(9, 900))

	v, _ := l.At(0)
	assert.Equal(t, 100, v)
	v, _ = l.At(9)
	assert.Equal(t, 900, v)
	v, _ = l.At(5)
	assert.Equal(t, -1, v)
}

func TestList_Constructors(t *testing.T) {
	t.Run("NewWithSize", func(t *testing.T) {
		l := NewWithSize[int](5)
		require.Equal(t, 5, l.Len())
		for i := 0; i < 5; i++ {
			v, err := l.At(i)
			require.NoError(t, err)
			assert.Zero(t, v)
		}
	})

	t.Run("NewWithValue", func(t *testing.T) {
		l := NewWithValue[string](3, "x")
		require.Equal(t, 3, l.Len())
		v, _ := l.At(2)
		assert.Equal(t, "x", v)
	})

	t.Run("FromSlice", func(t *testing.T) {
		l := FromSlice([]int{4, 5, 6})
		require.Equal(t, 3, l.Len())
		v, _ := l.At(1)
		assert.Equal(t, 5, v)
	})

	t.Run("Collect", func(t *testing.T) {
		l := Collect(slices.Values([]int{7, 8, 9}))
		require.Equal(t, 3, l.Len())
		v, _ := l.At(0)
		assert.Equal(t, 7, v)
	})

	t.Run("empty", func(t *testing.T) {
		l := New[int]()
		assert.True(t, l.Empty())
		assert.Equal(t, 0, l.Cap())
		assert.Equal(t, 0, l.Blocks())
	})
}

func TestList_Clear(t *testing.T) {
	l := FromSlice([]int{1, 2, 3, 4, 5}, WithBlockSize[int](2))
	l.Clear()

	assert.Equal(t, Stats{}, l.Stats())
	assert.True(t, l.Empty())

	// A cleared list behaves like a fresh one.
	l.PushBack(42)
	require.Equal(t, 1, l.Len())
	v, err := l.Front()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestList_Clone(t *testing.T) {
	t.Run("deep copy", func(t *testing.T) {
		l := FromSlice([]int{1, 2, 3, 4, 5}, WithBlockSize[int](2))
		c := l.Clone()

		require.Equal(t, l.Len(), c.Len())
		require.NoError(t, c.Set(0, 99))
		require.NoError(t, c.PopBack())

		v, _ := l.At(0)
		assert.Equal(t, 1, v, "original must be untouched")
		assert.Equal(t, 5, l.Len())
	})

	t.Run("no reserved sharing", func(t *testing.T) {
		l := FromSlice([]int{1, 2, 3}, WithBlockSize[int](2))
		require.NoError(t, l.PopBack()) // caches a reserved block
		require.True(t, l.Stats().Reserved)

		c := l.Clone()
		assert.False(t, c.Stats().Reserved)
	})

	t.Run("empty list", func(t *testing.T) {
		c := New[int]().Clone()
		assert.True(t, c.Empty())
		assert.Equal(t, 0, c.Blocks())
	})
}

func TestList_Insert(t *testing.T) {
	collect := func(l *List[int]) []int {
		out := make([]int, 0, l.Len())
		for _, v := range l.All() {
			out = append(out, v)
		}
		return out
	}

	t.Run("front", func(t *testing.T) {
		l := FromSlice([]int{2, 3, 4}, WithBlockSize[int](2))
		it, err := l.Insert(l.Begin(), 1)
		require.NoError(t, err)
		v, err := it.Value()
		require.NoError(t, err)
		assert.Equal(t, 1, v)
		assert.Equal(t, []int{1, 2, 3, 4}, collect(l))
	})

	t.Run("middle across block boundary", func(t *testing.T) {
		l := FromSlice([]int{1, 2, 4, 5, 6, 7}, WithBlockSize[int](3))
		it := l.Begin()
		require.NoError(t, it.Next())
		require.NoError(t, it.Next()) // on value 4
		pos, err := l.Insert(it, 3)
		require.NoError(t, err)
		v, _ := pos.Value()
		assert.Equal(t, 3, v)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, collect(l))
		assert.Equal(t, 3, l.Blocks())
	})

	t.Run("at end appends", func(t *testing.T) {
		l := FromSlice([]int{1, 2}, WithBlockSize[int](2))
		it, err := l.Insert(l.End(), 3)
		require.NoError(t, err)
		v, _ := it.Value()
		assert.Equal(t, 3, v)
		assert.Equal(t, []int{1, 2, 3}, collect(l))
	})

	t.Run("into empty list", func(t *testing.T) {
		l := New[int]()
		_, err := l.Insert(l.End(), 1)
		require.NoError(t, err)
		assert.Equal(t, []int{1}, collect(l))
	})

	t.Run("before begin sentinel", func(t *testing.T) {
		l := FromSlice([]int{1})
		empty := New[int]()
		_, err := l.Insert(empty.Begin(), 0)
		require.ErrorIs(t, err, ErrInvalidIterator)

		_, err = empty.Insert(empty.Begin(), 0)
		require.ErrorIs(t, err, ErrInvalidIterator)
	})

	t.Run("foreign iterator", func(t *testing.T) {
		a := FromSlice([]int{1, 2})
		b := FromSlice([]int{3, 4})
		_, err := a.Insert(b.Begin(), 0)
		require.ErrorIs(t, err, ErrInvalidIterator)
		assert.Equal(t, 2, a.Len())
	})
}

func TestList_Erase(t *testing.T) {
	collect := func(l *List[int]) []int {
		out := make([]int, 0, l.Len())
		for _, v := range l.All() {
			out = append(out, v)
		}
		return out
	}

	t.Run("front", func(t *testing.T) {
		l := FromSlice([]int{1, 2, 3, 4}, WithBlockSize[int](2))
		it, err := l.Erase(l.Begin())
		require.NoError(t, err)
		v, _ := it.Value()
		assert.Equal(t, 2, v)
		assert.Equal(t, []int{2, 3, 4}, collect(l))
	})

	t.Run("last element returns end", func(t *testing.T) {
		l := FromSlice([]int{1, 2, 3}, WithBlockSize[int](2))
		it := l.End()
		require.NoError(t, it.Prev())
		pos, err := l.Erase(it)
		require.NoError(t, err)
		assert.True(t, pos.Equal(l.End()))
		assert.Equal(t, []int{1, 2}, collect(l))
	})

	t.Run("retires emptied tail block", func(t *testing.T) {
		l := FromSlice([]int{1, 2, 3}, WithBlockSize[int](2))
		require.Equal(t, 2, l.Blocks())
		it := l.End()
		require.NoError(t, it.Prev())
		_, err := l.Erase(it)
		require.NoError(t, err)
		assert.Equal(t, 1, l.Blocks())
		assert.True(t, l.Stats().Reserved)
	})

	t.Run("erase everything", func(t *testing.T) {
		l := FromSlice([]int{1, 2, 3}, WithBlockSize[int](2))
		for !l.Empty() {
			_, err := l.Erase(l.Begin())
			require.NoError(t, err)
		}
		assert.Equal(t, 0, l.Blocks())
		assert.True(t, l.Begin().Equal(l.Begin()))
	})

	t.Run("sentinels rejected", func(t *testing.T) {
		l := FromSlice([]int{1})
		_, err := l.Erase(l.End())
		require.ErrorIs(t, err, ErrInvalidIterator)

		empty := New[int]()
		_, err = empty.Erase(empty.Begin())
		require.ErrorIs(t, err, ErrInvalidIterator)
		assert.Equal(t, 1, l.Len())
	})
}

// Inserting and erasing at the same logical position must restore the
// original sequence, at every position including block boundaries.
func TestList_InsertEraseRoundTrip(t *testing.T) {
	original := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	for pos := 0; pos <= len(original); pos++ {
		l := FromSlice(original, WithBlockSize[int](3))

		it := l.Begin()
		for i := 0; i < pos; i++ {
			require.NoError(t, it.Next())
		}
		inserted, err := l.Insert(it, 99)
		require.NoError(t, err)

		v, err := inserted.Value()
		require.NoError(t, err)
		require.Equal(t, 99, v)

		_, err = l.Erase(inserted)
		require.NoError(t, err)

		got := make([]int, 0, l.Len())
		for _, v := range l.All() {
			got = append(got, v)
		}
		assert.Equal(t, original, got, "position %d", pos)
	}
}

// Tail growth must not move existing elements: iterators taken before a
// PushBack/PopBack burst still address the same values afterward.
func TestList_TailMutationKeepsIteratorsValid(t *testing.T) {
	l := FromSlice([]int{10, 20, 30}, WithBlockSize[int](2))

	first := l.Begin()
	third := l.Begin()
	require.NoError(t, third.Next())
	require.NoError(t, third.Next())

	for i := 0; i < 50; i++ {
		l.PushBack(i)
	}
	for i := 0; i < 50; i++ {
		require.NoError(t, l.PopBack())
	}

	v, err := first.Value()
	require.NoError(t, err)
	assert.Equal(t, 10, v)
	v, err = third.Value()
	require.NoError(t, err)
	assert.Equal(t, 30, v)
}

func TestList_MaxLen(t *testing.T) {
	l := New[byte]()
	assert.Greater(t, l.MaxLen(), 0)
	assert.GreaterOrEqual(t, l.MaxLen(), l.Len())
}

func TestList_AllocatorAccessor(t *testing.T) {
	ca := NewCountingAllocator[int](nil)
	l := New[int](WithAllocator[int](ca))
	assert.Same(t, ca, l.Allocator())

	d := New[int]()
	_, ok := d.Allocator().(HeapAllocator[int])
	assert.True(t, ok)
}

func TestList_ErrorsAreInspectable(t *testing.T) {
	l := New[int]()
	_, err := l.At(0)
	var oor *ErrIndexOutOfRange
	require.True(t, errors.As(err, &oor))
	assert.Contains(t, err.Error(), "out of range")
	assert.Contains(t, ErrEmptyList.Error(), "seglist:")
}
