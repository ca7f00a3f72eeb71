package ndarray

import (
	"fmt"

	"github.com/robert-malhotra/go-ndarray/internal/geometry"
)

// View is a borrowed, read-only window over strided elements. It never
// owns or destroys elements and is valid only while the backing storage
// is; growing an array invalidates views of it.
type View[T any] struct {
	data    []T
	off     int
	shape   geometry.Shape
	strides geometry.Strides
}

// MutView is a borrowed, writable window. It is the destination type of
// [Array.MoveInto]; its slots are treated as uninitialized and simply
// overwritten.
type MutView[T any] struct {
	View[T]
}

// ViewOf creates a row-major view over data. The slice length must equal
// the shape's element count.
func ViewOf[T any](data []T, shape []int) (View[T], error) {
	sh, err := checkShape(shape)
	if err != nil {
		return View[T]{}, err
	}
	n, err := sh.Elements()
	if err != nil {
		return View[T]{}, fmt.Errorf("shape %v: %w", sh, ErrShapeOverflow)
	}
	if len(data) != n {
		return View[T]{}, fmt.Errorf("%d elements for shape %v (want %d): %w", len(data), sh, n, ErrIncompatibleShape)
	}
	return View[T]{data: data, shape: sh, strides: geometry.DefaultStrides(sh)}, nil
}

// ViewWithStrides creates a view over data with explicit strides and head
// offset. Every address the view can produce must stay within data.
func ViewWithStrides[T any](data []T, shape, strides []int, offset int) (View[T], error) {
	sh, err := checkShape(shape)
	if err != nil {
		return View[T]{}, err
	}
	if len(strides) != len(sh) {
		return View[T]{}, fmt.Errorf("%d strides for rank-%d shape: %w", len(strides), len(sh), ErrIncompatibleShape)
	}
	st := make(geometry.Strides, len(strides))
	copy(st, strides)
	if !sh.IsEmpty() {
		lo, hi := geometry.OffsetRange(sh, st)
		if offset+lo < 0 || offset+hi >= len(data) {
			return View[T]{}, fmt.Errorf("view addresses [%d, %d] outside storage of %d elements: %w",
				offset+lo, offset+hi, len(data), ErrIncompatibleShape)
		}
	}
	return View[T]{data: data, off: offset, shape: sh, strides: st}, nil
}

// MutViewOf creates a writable row-major view over data. The slice length
// must equal the shape's element count.
func MutViewOf[T any](data []T, shape []int) (MutView[T], error) {
	v, err := ViewOf(data, shape)
	if err != nil {
		return MutView[T]{}, err
	}
	return MutView[T]{View: v}, nil
}

// View returns a read-only view of the array's current shape over its
// buffer. The view goes stale if the array grows or is consumed.
func (a *Array[T]) View() View[T] {
	a.ensure()
	return View[T]{
		data:    a.buf.Storage(),
		off:     a.off,
		shape:   a.shape.Clone(),
		strides: a.strides.Clone(),
	}
}

// Shape returns a copy of the per-axis extents.
func (v View[T]) Shape() []int {
	return v.shape.Clone()
}

// Rank returns the number of axes.
func (v View[T]) Rank() int {
	return len(v.shape)
}

// Len returns the number of elements the view addresses.
func (v View[T]) Len() int {
	n, _ := v.shape.Elements()
	return n
}

// At returns the element at the given multi-index.
func (v View[T]) At(idx ...int) T {
	if len(idx) != len(v.shape) {
		panic(fmt.Sprintf("ndarray: %d indices for rank-%d view", len(idx), len(v.shape)))
	}
	off := v.off
	for i, x := range idx {
		if x < 0 || x >= v.shape[i] {
			panic(fmt.Sprintf("ndarray: index %d out of range [0, %d) on axis %d", x, v.shape[i], i))
		}
		off += x * v.strides[i]
	}
	return v.data[off]
}

// insertLeadingAxis returns the view with a new extent-1 axis prepended.
func (v View[T]) insertLeadingAxis() View[T] {
	shape := append(geometry.Shape{1}, v.shape...)
	strides := append(geometry.Strides{0}, v.strides...)
	return View[T]{data: v.data, off: v.off, shape: shape, strides: strides}
}
