package ndarray

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	a, err := New[int]([]int{2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, a.Shape())
	assert.Equal(t, []int{3, 1}, a.Strides())
	assert.Equal(t, 6, a.Len())
	assert.Equal(t, 2, a.Rank())
	assert.True(t, a.IsStandardLayout())
	assert.Equal(t, 0, a.At(1, 2))
}

func TestNewColumnMajor(t *testing.T) {
	a, err := New[int]([]int{2, 3}, WithColumnMajor[int]())
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, a.Strides())
	assert.False(t, a.IsStandardLayout())
}

func TestNewInvalidShapes(t *testing.T) {
	_, err := New[int]([]int{2, -1})
	require.ErrorIs(t, err, ErrIncompatibleShape)

	_, err = New[int]([]int{math.MaxInt, 2})
	require.ErrorIs(t, err, ErrShapeOverflow)
}

func TestFromSlice(t *testing.T) {
	a, err := FromSlice([]int{1, 2, 3, 4, 5, 6}, []int{2, 3})
	require.NoError(t, err)
	assert.Equal(t, 4, a.At(1, 0))

	_, err = FromSlice([]int{1, 2, 3}, []int{2, 3})
	require.ErrorIs(t, err, ErrIncompatibleShape)
}

func TestSetAndAt(t *testing.T) {
	a, err := New[string]([]int{2, 2})
	require.NoError(t, err)
	a.Set("x", 1, 0)
	assert.Equal(t, "x", a.At(1, 0))
	assert.Equal(t, "", a.At(0, 1))

	assert.Panics(t, func() { a.At(2, 0) })
	assert.Panics(t, func() { a.At(0) }, "wrong index count")
}

func TestSwapAxes(t *testing.T) {
	a, err := FromSlice([]int{1, 2, 3, 4, 5, 6}, []int{2, 3})
	require.NoError(t, err)
	a.SwapAxes(0, 1)
	assert.Equal(t, []int{3, 2}, a.Shape())
	assert.Equal(t, []int{1, 3}, a.Strides())
	assert.Equal(t, 4, a.At(0, 1), "transposed index maps to the same element")
}

func TestInvertAxis(t *testing.T) {
	a, err := FromSlice([]int{1, 2, 3, 4}, []int{4})
	require.NoError(t, err)
	a.InvertAxis(0)
	assert.Equal(t, []int{-1}, a.Strides())
	assert.Equal(t, 4, a.At(0))
	assert.Equal(t, 1, a.At(3))
}

func TestSlice(t *testing.T) {
	a, err := FromSlice([]int{0, 1, 2, 3, 4, 5}, []int{6})
	require.NoError(t, err)
	require.NoError(t, a.Slice(0, 0, 6, 2))

	assert.Equal(t, []int{3}, a.Shape())
	assert.Equal(t, []int{2}, a.Strides())
	assert.Equal(t, []int{0, 2, 4}, []int{a.At(0), a.At(1), a.At(2)})
	assert.False(t, a.IsStandardLayout(), "a holed array is not standard")
}

func TestSliceInvalid(t *testing.T) {
	a, err := FromSlice([]int{0, 1, 2}, []int{3})
	require.NoError(t, err)
	assert.ErrorIs(t, a.Slice(1, 0, 1, 1), ErrIncompatibleShape)
	assert.ErrorIs(t, a.Slice(0, 0, 4, 1), ErrIncompatibleShape)
	assert.ErrorIs(t, a.Slice(0, 2, 1, 1), ErrIncompatibleShape)
	assert.ErrorIs(t, a.Slice(0, 0, 3, 0), ErrIncompatibleShape)
}

func TestIndexAxis(t *testing.T) {
	a, err := FromSlice([]int{1, 2, 3, 4, 5, 6}, []int{2, 3})
	require.NoError(t, err)
	require.NoError(t, a.IndexAxis(0, 1))

	assert.Equal(t, []int{3}, a.Shape())
	assert.Equal(t, 4, a.At(0))
	assert.Equal(t, 6, a.At(2))

	assert.ErrorIs(t, a.IndexAxis(0, 5), ErrIncompatibleShape)
}

func TestReleaseDropsHolesToo(t *testing.T) {
	counts := map[int]int{}
	a, err := FromSlice([]int{0, 1, 2, 3, 4, 5}, []int{6}, WithDrop[int](func(v int) { counts[v]++ }))
	require.NoError(t, err)
	require.NoError(t, a.Slice(0, 0, 6, 2))

	a.Release()
	assert.Equal(t, map[int]int{0: 1, 1: 1, 2: 1, 3: 1, 4: 1, 5: 1}, counts,
		"ordinary destruction drops every buffer element once, holes included")

	a.Release() // releasing a consumed array is a no-op
}

func TestConsumedArrayPanics(t *testing.T) {
	a, err := FromSlice([]int{1, 2}, []int{2})
	require.NoError(t, err)
	_ = a.IntoRawStorage()

	assert.Panics(t, func() { a.At(0) })
	assert.Panics(t, func() { _ = a.TryAppend(0, View[int]{}) })
}

func TestViewOf(t *testing.T) {
	v, err := ViewOf([]int{1, 2, 3, 4, 5, 6}, []int{2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, v.Shape())
	assert.Equal(t, 6, v.Len())
	assert.Equal(t, 5, v.At(1, 1))

	_, err = ViewOf([]int{1, 2}, []int{2, 3})
	require.ErrorIs(t, err, ErrIncompatibleShape)
}

func TestViewWithStrides(t *testing.T) {
	// Reversed view of a 4-element slice.
	v, err := ViewWithStrides([]int{1, 2, 3, 4}, []int{4}, []int{-1}, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, v.At(0))
	assert.Equal(t, 1, v.At(3))

	_, err = ViewWithStrides([]int{1, 2, 3, 4}, []int{4}, []int{2}, 0)
	require.ErrorIs(t, err, ErrIncompatibleShape, "addresses past the end of storage")
}

func TestArrayView(t *testing.T) {
	a, err := FromSlice([]int{1, 2, 3, 4}, []int{2, 2})
	require.NoError(t, err)
	v := a.View()
	assert.Equal(t, a.Shape(), v.Shape())
	assert.Equal(t, a.At(1, 0), v.At(1, 0))
}
