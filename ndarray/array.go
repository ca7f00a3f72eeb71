package ndarray

import (
	"fmt"

	"github.com/robert-malhotra/go-ndarray/internal/buffer"
	"github.com/robert-malhotra/go-ndarray/internal/geometry"
)

// Array is an owned, strided N-dimensional array. It owns exactly one
// buffer; the head offset locates the element at the all-zero index, which
// moves away from the buffer base when the array is sliced. Not safe for
// concurrent mutation.
type Array[T any] struct {
	buf     *buffer.Buffer[T]
	off     int
	shape   geometry.Shape
	strides geometry.Strides
	clone   func(T) (T, error)
	drop    func(T)
}

// New creates a zero-value-filled array of the given shape in row-major
// layout (column-major with [WithColumnMajor]).
func New[T any](shape []int, opts ...Option[T]) (*Array[T], error) {
	o := applyOptions(opts)
	sh, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	n, err := sh.Elements()
	if err != nil {
		return nil, fmt.Errorf("shape %v: %w", sh, ErrShapeOverflow)
	}
	strides := geometry.DefaultStrides(sh)
	if o.columnMajor {
		strides = geometry.ReverseDefaultStrides(sh)
	}
	return &Array[T]{
		buf:     buffer.New[T](n),
		shape:   sh,
		strides: strides,
		clone:   o.clone,
		drop:    o.drop,
	}, nil
}

// FromSlice creates an array that adopts data as its buffer, interpreted
// in row-major layout (column-major with [WithColumnMajor]). The slice
// length must equal the shape's element count. The caller must not use
// data afterwards; its elements are owned by the array.
func FromSlice[T any](data []T, shape []int, opts ...Option[T]) (*Array[T], error) {
	o := applyOptions(opts)
	sh, err := checkShape(shape)
	if err != nil {
		return nil, err
	}
	n, err := sh.Elements()
	if err != nil {
		return nil, fmt.Errorf("shape %v: %w", sh, ErrShapeOverflow)
	}
	if len(data) != n {
		return nil, fmt.Errorf("%d elements for shape %v (want %d): %w", len(data), sh, n, ErrIncompatibleShape)
	}
	strides := geometry.DefaultStrides(sh)
	if o.columnMajor {
		strides = geometry.ReverseDefaultStrides(sh)
	}
	return &Array[T]{
		buf:     buffer.FromSlice(data),
		shape:   sh,
		strides: strides,
		clone:   o.clone,
		drop:    o.drop,
	}, nil
}

func checkShape(shape []int) (geometry.Shape, error) {
	sh := make(geometry.Shape, len(shape))
	for i, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("negative extent %d on axis %d: %w", d, i, ErrIncompatibleShape)
		}
		sh[i] = d
	}
	return sh, nil
}

// Shape returns a copy of the per-axis extents.
func (a *Array[T]) Shape() []int {
	a.ensure()
	return a.shape.Clone()
}

// Strides returns a copy of the per-axis element steps.
func (a *Array[T]) Strides() []int {
	a.ensure()
	return a.strides.Clone()
}

// Rank returns the number of axes.
func (a *Array[T]) Rank() int {
	a.ensure()
	return len(a.shape)
}

// Len returns the number of elements addressed by the array's shape. This
// can be less than the buffer's element count when the array has holes.
func (a *Array[T]) Len() int {
	a.ensure()
	n, _ := a.shape.Elements()
	return n
}

// IsEmpty reports whether any axis has extent zero.
func (a *Array[T]) IsEmpty() bool {
	a.ensure()
	return a.shape.IsEmpty()
}

// IsStandardLayout reports whether the array is in exact row-major order
// with no holes.
func (a *Array[T]) IsStandardLayout() bool {
	a.ensure()
	return geometry.IsStandardLayout(a.shape, a.strides) && a.off == 0 && a.Len() == a.buf.Len()
}

// At returns the element at the given multi-index.
func (a *Array[T]) At(idx ...int) T {
	a.ensure()
	return a.buf.At(a.offsetOf(idx))
}

// Set replaces the element at the given multi-index. No drop hook runs
// for the replaced value.
func (a *Array[T]) Set(v T, idx ...int) {
	a.ensure()
	a.buf.Set(a.offsetOf(idx), v)
}

func (a *Array[T]) offsetOf(idx []int) int {
	if len(idx) != len(a.shape) {
		panic(fmt.Sprintf("ndarray: %d indices for rank-%d array", len(idx), len(a.shape)))
	}
	off := a.off
	for i, x := range idx {
		if x < 0 || x >= a.shape[i] {
			panic(fmt.Sprintf("ndarray: index %d out of range [0, %d) on axis %d", x, a.shape[i], i))
		}
		off += x * a.strides[i]
	}
	return off
}

// SwapAxes exchanges axes i and j in both shape and strides, which
// preserves the index-to-address mapping up to index reordering.
func (a *Array[T]) SwapAxes(i, j int) {
	a.ensure()
	a.shape[i], a.shape[j] = a.shape[j], a.shape[i]
	a.strides[i], a.strides[j] = a.strides[j], a.strides[i]
}

// InvertAxis reverses the traversal direction of one axis by negating its
// stride and moving the head to the axis's other end. No memory moves.
func (a *Array[T]) InvertAxis(axis int) {
	a.ensure()
	if d := a.shape[axis]; d > 0 {
		a.off += (d - 1) * a.strides[axis]
	}
	a.strides[axis] = -a.strides[axis]
}

// Slice restricts one axis to the half-open range [start, stop) taking
// every step-th element, in place. The buffer keeps all of its elements;
// the ones no longer addressed become holes that a later [Array.MoveInto]
// or [Array.Release] still destroys exactly once.
func (a *Array[T]) Slice(axis, start, stop, step int) error {
	a.ensure()
	if axis < 0 || axis >= len(a.shape) {
		return fmt.Errorf("slice axis %d of rank-%d array: %w", axis, len(a.shape), ErrIncompatibleShape)
	}
	if step <= 0 || start < 0 || stop < start || stop > a.shape[axis] {
		return fmt.Errorf("slice [%d:%d:%d] of axis with extent %d: %w", start, stop, step, a.shape[axis], ErrIncompatibleShape)
	}
	a.off += start * a.strides[axis]
	a.shape[axis] = (stop - start + step - 1) / step
	a.strides[axis] *= step
	return nil
}

// IndexAxis fixes one axis at index i and removes it, reducing the rank
// by one, in place. Like [Array.Slice] this leaves the buffer intact, so
// the elements no longer addressed become holes.
func (a *Array[T]) IndexAxis(axis, i int) error {
	a.ensure()
	if axis < 0 || axis >= len(a.shape) {
		return fmt.Errorf("index axis %d of rank-%d array: %w", axis, len(a.shape), ErrIncompatibleShape)
	}
	if i < 0 || i >= a.shape[axis] {
		return fmt.Errorf("index %d of axis with extent %d: %w", i, a.shape[axis], ErrIncompatibleShape)
	}
	a.off += i * a.strides[axis]
	a.shape = a.shape.Remove(axis)
	st := make(geometry.Strides, 0, len(a.strides)-1)
	st = append(st, a.strides[:axis]...)
	a.strides = append(st, a.strides[axis+1:]...)
	return nil
}

// Release is the ordinary destruction path: it drops every live buffer
// element exactly once, holes included, and consumes the array. Releasing
// an already consumed array is a no-op.
func (a *Array[T]) Release() {
	if a.buf == nil {
		return
	}
	a.buf.Release(a.drop)
	a.buf = nil
}

// bufferLen returns the buffer's logical length (live element count).
func (a *Array[T]) bufferLen() int {
	a.ensure()
	return a.buf.Len()
}

func (a *Array[T]) ensure() {
	if a.buf == nil {
		panic("ndarray: use of consumed array")
	}
}
