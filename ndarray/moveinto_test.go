package ndarray

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMutView[T any](t *testing.T, data []T, shape []int) MutView[T] {
	t.Helper()
	v, err := MutViewOf(data, shape)
	require.NoError(t, err)
	return v
}

func TestMoveIntoNoHoles(t *testing.T) {
	dropped := map[int]int{}
	a, err := FromSlice([]int{1, 2, 3, 4}, []int{2, 2}, WithDrop[int](func(v int) { dropped[v]++ }))
	require.NoError(t, err)

	out := make([]int, 4)
	a.MoveInto(mustMutView(t, out, []int{2, 2}))

	assert.Equal(t, []int{1, 2, 3, 4}, out)
	assert.Empty(t, dropped, "no holes means nothing to destroy")
	assert.Panics(t, func() { a.At(0, 0) }, "the source array is consumed")
}

func TestMoveIntoHoles(t *testing.T) {
	dropped := map[int]int{}
	a, err := FromSlice([]int{0, 1, 2, 3, 4, 5}, []int{6}, WithDrop[int](func(v int) { dropped[v]++ }))
	require.NoError(t, err)
	require.NoError(t, a.Slice(0, 0, 6, 2))

	out := make([]int, 3)
	a.MoveInto(mustMutView(t, out, []int{3}))

	assert.Equal(t, []int{0, 2, 4}, out, "visible elements relocate")
	assert.Equal(t, map[int]int{1: 1, 3: 1, 5: 1}, dropped, "each hole is destroyed exactly once")
}

func TestMoveIntoReversedHoledView(t *testing.T) {
	dropped := map[int]int{}
	a, err := FromSlice([]int{0, 1, 2, 3, 4, 5}, []int{6}, WithDrop[int](func(v int) { dropped[v]++ }))
	require.NoError(t, err)
	require.NoError(t, a.Slice(0, 0, 6, 2))
	a.InvertAxis(0)

	out := make([]int, 3)
	a.MoveInto(mustMutView(t, out, []int{3}))

	assert.Equal(t, []int{4, 2, 0}, out, "relocation follows the view's own order")
	assert.Equal(t, map[int]int{1: 1, 3: 1, 5: 1}, dropped,
		"hole collection normalizes the negative stride before walking")
}

func TestMoveInto2DHoles(t *testing.T) {
	dropped := map[int]int{}
	a, err := FromSlice([]int{0, 1, 2, 3, 4, 5, 6, 7, 8}, []int{3, 3}, WithDrop[int](func(v int) { dropped[v]++ }))
	require.NoError(t, err)
	require.NoError(t, a.Slice(1, 0, 3, 2)) // keep columns 0 and 2

	out := make([]int, 6)
	a.MoveInto(mustMutView(t, out, []int{3, 2}))

	assert.Equal(t, []int{0, 2, 3, 5, 6, 8}, out)
	assert.Equal(t, map[int]int{1: 1, 4: 1, 7: 1}, dropped)
}

func TestMoveIntoHolesWithoutDropHook(t *testing.T) {
	a, err := FromSlice([]int{0, 1, 2, 3, 4, 5}, []int{6})
	require.NoError(t, err)
	require.NoError(t, a.Slice(0, 1, 6, 2)) // offsets 1, 3, 5

	out := make([]int, 3)
	a.MoveInto(mustMutView(t, out, []int{3}))
	assert.Equal(t, []int{1, 3, 5}, out)
}

func TestMoveIntoColumnMajorSource(t *testing.T) {
	a, err := FromSlice([]int{1, 2, 3, 4, 5, 6}, []int{2, 3}, WithColumnMajor[int]())
	require.NoError(t, err)

	out := make([]int, 6)
	a.MoveInto(mustMutView(t, out, []int{2, 3}))
	// Row-major destination of a column-major source: elements land by
	// index, not by storage position.
	assert.Equal(t, []int{1, 3, 5, 2, 4, 6}, out)
}

func TestMoveIntoShapeMismatchPanics(t *testing.T) {
	a, err := FromSlice([]int{1, 2, 3, 4}, []int{2, 2})
	require.NoError(t, err)
	out := make([]int, 4)
	assert.Panics(t, func() { a.MoveInto(mustMutView(t, out, []int{4})) })
}

func TestIntoRawStorage(t *testing.T) {
	a, err := FromSlice([]int{1, 2, 3, 4}, []int{2, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, a.IntoRawStorage())
	assert.Panics(t, func() { a.IntoRawStorage() })
}

func TestIntoScalar(t *testing.T) {
	a, err := New[int]([]int{})
	require.NoError(t, err)
	a.Set(7)
	assert.Equal(t, 7, a.IntoScalar())
}

func TestIntoScalarAfterSlicing(t *testing.T) {
	dropped := map[int]int{}
	a, err := FromSlice([]int{10, 20, 30}, []int{3}, WithDrop[int](func(v int) { dropped[v]++ }))
	require.NoError(t, err)
	require.NoError(t, a.IndexAxis(0, 1))
	require.Equal(t, 0, a.Rank())

	assert.Equal(t, 20, a.IntoScalar(), "the scalar need not sit at the buffer base")
	assert.Equal(t, map[int]int{10: 1, 30: 1}, dropped, "the other elements are holes and get dropped")
}

func TestIntoScalarOnNonScalarPanics(t *testing.T) {
	a, err := New[int]([]int{2})
	require.NoError(t, err)
	assert.Panics(t, func() { a.IntoScalar() })
}

func TestMoveIntoAfterGrowth(t *testing.T) {
	// Growth then transfer: the grown buffer has no holes, so the fast
	// path applies and relocates everything.
	dropped := 0
	a, err := New[int]([]int{0, 2}, WithDrop[int](func(int) { dropped++ }))
	require.NoError(t, err)
	require.NoError(t, a.TryAppend(0, mustView(t, []int{1, 2, 3, 4}, []int{2, 2})))

	out := make([]int, 4)
	a.MoveInto(mustMutView(t, out, []int{2, 2}))
	assert.Equal(t, []int{1, 2, 3, 4}, out)
	assert.Zero(t, dropped)
}
