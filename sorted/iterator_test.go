package sorted

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/sortedvec/sortable"
)

func TestVector_IteratorTraversal(t *testing.T) {
	t.Parallel()

	t.Run("walks elements in order", func(t *testing.T) {
		t.Parallel()

		v := From([]sortable.Int{3, 1, 2})

		var got []int
		for it := v.Begin(); !it.Equal(v.End()); it.Next() {
			got = append(got, int(it.Value()))
		}

		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("const traversal leaves state clean", func(t *testing.T) {
		t.Parallel()

		v := From([]sortable.Int{1, 2, 3})

		var got []int
		for it := v.CBegin(); !it.Equal(v.CEnd()); it.Next() {
			got = append(got, int(it.Value()))
		}

		assert.Equal(t, []int{1, 2, 3}, got)
		assert.False(t, v.Corrupted())
	})

	t.Run("mutable begin repairs pending damage first", func(t *testing.T) {
		t.Parallel()

		v := From([]sortable.Int{1, 2, 3})
		v.Set(0, sortable.Int(9)) // storage now 9,2,3

		var got []int
		for it := v.Begin(); !it.Equal(v.End()); it.Next() {
			got = append(got, int(it.Value()))
		}

		assert.Equal(t, []int{2, 3, 9}, got)
	})

	t.Run("acquiring a mutable iterator marks the vector", func(t *testing.T) {
		t.Parallel()

		v := From([]sortable.Int{1, 2, 3})
		_ = v.Begin()

		assert.True(t, v.Corrupted())
	})

	t.Run("begin and end coincide on empty vector", func(t *testing.T) {
		t.Parallel()

		v := New[sortable.Int]()
		assert.True(t, v.Begin().Equal(v.End()))
		assert.True(t, v.CBegin().Equal(v.CEnd()))
	})
}

func TestIterator_Arithmetic(t *testing.T) {
	t.Parallel()

	v := From([]sortable.Int{10, 20, 30, 40})

	it := v.Begin().Add(2)
	assert.Equal(t, 2, it.Pos())
	assert.Equal(t, sortable.Int(30), it.Value())

	back := it.Sub(2)
	assert.Equal(t, 0, back.Pos())
	assert.Equal(t, sortable.Int(10), back.Value())
}

func TestIterator_Equal(t *testing.T) {
	t.Parallel()

	t.Run("same owner and position", func(t *testing.T) {
		t.Parallel()

		v := From([]sortable.Int{1, 2})
		assert.True(t, v.Begin().Equal(v.Begin()))
	})

	t.Run("different owners never compare equal", func(t *testing.T) {
		t.Parallel()

		a := From([]sortable.Int{1, 2})
		b := From([]sortable.Int{1, 2})

		assert.False(t, a.Begin().Equal(b.Begin()))
	})

	t.Run("different positions", func(t *testing.T) {
		t.Parallel()

		v := From([]sortable.Int{1, 2})
		assert.False(t, v.Begin().Equal(v.Begin().Add(1)))
	})
}

func TestIterator_MutableDereference(t *testing.T) {
	t.Parallel()

	t.Run("set applies the corruption transition", func(t *testing.T) {
		t.Parallel()

		v := From([]sortable.Int{1, 2, 3})

		it := v.Begin().Add(2)
		it.Set(sortable.Int(0))

		assert.True(t, v.Corrupted())

		v.Repair()
		assert.Equal(t, []int{0, 1, 2}, entries(v))
	})

	t.Run("ref applies the corruption transition", func(t *testing.T) {
		t.Parallel()

		v := From([]sortable.Int{1, 2, 3})

		it := v.Begin()
		*it.Ref() = 9

		v.Repair()
		assert.Equal(t, []int{2, 3, 9}, entries(v))
	})
}

func TestIterator_Valid(t *testing.T) {
	t.Parallel()

	t.Run("fresh iterator is valid", func(t *testing.T) {
		t.Parallel()

		v := From([]sortable.Int{1, 2})
		assert.True(t, v.CBegin().Valid())
	})

	t.Run("end marker is not dereferenceable", func(t *testing.T) {
		t.Parallel()

		v := From([]sortable.Int{1, 2})
		assert.False(t, v.CEnd().Valid())
	})

	t.Run("structural mutation invalidates", func(t *testing.T) {
		t.Parallel()

		v := From([]sortable.Int{1, 2, 3})
		it := v.CBegin()
		require.True(t, it.Valid())

		v.Push(sortable.Int(4))
		assert.False(t, it.Valid())
	})

	t.Run("erase invalidates", func(t *testing.T) {
		t.Parallel()

		v := From([]sortable.Int{1, 2, 3})
		it := v.CBegin()

		v.Erase(2)
		assert.False(t, it.Valid())
	})

	t.Run("element overwrite does not invalidate", func(t *testing.T) {
		t.Parallel()

		v := From([]sortable.Int{1, 2, 3})
		it := v.CBegin()

		v.Set(1, sortable.Int(9))
		assert.True(t, it.Valid())
	})

	t.Run("zero iterator is invalid", func(t *testing.T) {
		t.Parallel()

		var it Iterator[sortable.Int]
		assert.False(t, it.Valid())
	})
}

func TestVector_EraseIter(t *testing.T) {
	t.Parallel()

	t.Run("removes a half-open range", func(t *testing.T) {
		t.Parallel()

		v := From([]sortable.Int{1, 2, 3, 4, 5})
		v.EraseIter(v.Begin().Add(1), v.Begin().Add(3))

		assert.Equal(t, []int{1, 4, 5}, entries(v))
	})

	t.Run("empty range is a no-op", func(t *testing.T) {
		t.Parallel()

		v := From([]sortable.Int{1, 2, 3})
		v.EraseIter(v.Begin().Add(1), v.Begin().Add(1))

		assert.Equal(t, 3, v.Len())
	})

	t.Run("foreign iterators are ignored", func(t *testing.T) {
		t.Parallel()

		v := From([]sortable.Int{1, 2, 3})
		other := From([]sortable.Int{1, 2, 3})

		v.EraseIter(other.Begin(), other.End())

		assert.Equal(t, 3, v.Len())
	})
}
