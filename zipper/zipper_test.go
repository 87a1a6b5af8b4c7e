package zipper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZipperFocusAndMoves(t *testing.T) {
	z := FromSlice([]int{1, 2, 3})

	v, ok := z.Focus()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 0, z.Pos())
	assert.Equal(t, 3, z.Len())

	z, ok = z.Right()
	assert.True(t, ok)
	v, _ = z.Focus()
	assert.Equal(t, 2, v)

	z, ok = z.Right()
	assert.True(t, ok)
	v, _ = z.Focus()
	assert.Equal(t, 3, v)

	// Moving past the back edge fails and leaves the focus in place:
	same, ok := z.Right()
	assert.False(t, ok)
	assert.Equal(t, z.Pos(), same.Pos())

	z, ok = z.Left()
	assert.True(t, ok)
	v, _ = z.Focus()
	assert.Equal(t, 2, v)

	_, ok = FromSlice([]int{1}).Left()
	assert.False(t, ok)
}

func TestZipperFirstLast(t *testing.T) {
	z := FromSlice([]string{"a", "b", "c"}).Last()
	v, _ := z.Focus()
	assert.Equal(t, "c", v)

	v, _ = z.First().Focus()
	assert.Equal(t, "a", v)
}

func TestZipperEmpty(t *testing.T) {
	z := Empty[int]()
	assert.Equal(t, 0, z.Len())

	_, ok := z.Focus()
	assert.False(t, ok)

	_, ok = z.Delete()
	assert.False(t, ok)

	// Replace on empty is a no-op:
	assert.Equal(t, 0, z.Replace(5).Len())

	// Insert on empty produces a singleton:
	z = z.Insert(5)
	v, ok := z.Focus()
	assert.True(t, ok)
	assert.Equal(t, 5, v)
}

func TestZipperEdits(t *testing.T) {
	z := FromSlice([]int{1, 2, 3})
	z, _ = z.Right()

	replaced := z.Replace(9)
	assert.Equal(t, []int{1, 9, 3}, replaced.ToSlice())
	// The original is untouched:
	assert.Equal(t, []int{1, 2, 3}, z.ToSlice())

	inserted := z.Insert(9)
	assert.Equal(t, []int{1, 9, 2, 3}, inserted.ToSlice())
	v, _ := inserted.Focus()
	assert.Equal(t, 9, v)

	deleted, ok := z.Delete()
	assert.True(t, ok)
	assert.Equal(t, []int{1, 3}, deleted.ToSlice())
	v, _ = deleted.Focus()
	assert.Equal(t, 3, v)

	// Deleting the last element moves the focus toward the front:
	last := FromSlice([]int{1, 2}).Last()
	deleted, ok = last.Delete()
	assert.True(t, ok)
	assert.Equal(t, 0, deleted.Pos())
	v, _ = deleted.Focus()
	assert.Equal(t, 1, v)
}

func TestZipperSingleton(t *testing.T) {
	z := Singleton("only")
	v, ok := z.Focus()
	assert.True(t, ok)
	assert.Equal(t, "only", v)

	deleted, ok := z.Delete()
	assert.True(t, ok)
	assert.Equal(t, 0, deleted.Len())
}

func TestZipperRange(t *testing.T) {
	z := FromSlice([]int{10, 20, 30})

	var got []int
	z.Range(func(i int, v int) bool {
		got = append(got, v)
		return true
	})
	assert.Equal(t, []int{10, 20, 30}, got)

	var stopped []int
	z.Range(func(i int, v int) bool {
		stopped = append(stopped, v)
		return i < 1
	})
	assert.Equal(t, []int{10, 20}, stopped)
}
