package ndarray

import (
	"fmt"

	"github.com/robert-malhotra/go-ndarray/internal/geometry"
)

// TryAppend appends the elements of v along the given axis, in place.
//
// The off-axis extents of v must equal the array's, and axis must be the
// array's growing axis: the outermost (largest-stride) axis, or any axis
// while the array is empty or the axis has extent at most one. The array
// must have no holes. Existing elements are never relocated; a rejected
// append leaves the array unchanged.
//
// Elements are cloned from v one at a time in increasing address order,
// and the buffer commits each element as it is produced. If a clone hook
// fails, the append stops with its error and the buffer's logical length
// covers exactly the elements cloned so far: the array keeps a consistent,
// fully releasable buffer, though with holes that block further appends.
//
// v must not alias the array's own buffer; growth may relocate it.
func (a *Array[T]) TryAppend(axis int, v View[T]) error {
	a.ensure()
	if len(a.shape) == 0 {
		return fmt.Errorf("append to rank-0 array: %w", ErrIncompatibleShape)
	}
	if axis < 0 || axis >= len(a.shape) {
		return fmt.Errorf("append axis %d of rank-%d array: %w", axis, len(a.shape), ErrIncompatibleShape)
	}
	if len(v.shape) != len(a.shape) {
		return fmt.Errorf("append rank-%d view to rank-%d array: %w", len(v.shape), len(a.shape), ErrIncompatibleShape)
	}
	if !a.shape.Remove(axis).Equal(v.shape.Remove(axis)) {
		return fmt.Errorf("append off-axis shape %v to %v: %w",
			v.shape.Remove(axis), a.shape.Remove(axis), ErrIncompatibleShape)
	}

	resShape := a.shape.Clone()
	resShape[axis] += v.shape[axis]
	newLen, err := resShape.Elements()
	if err != nil {
		return fmt.Errorf("append result shape %v: %w", resShape, ErrShapeOverflow)
	}

	incoming := v.Len()
	if incoming == 0 {
		// Nothing to write; only the shape changes (the target axis keeps
		// its extent, but a zero off-axis extent still grows it).
		a.shape = resShape
		return nil
	}

	selfEmpty := a.shape.IsEmpty()

	// The axis must be the outermost-stride axis unless it has extent at
	// most one or the array is empty; anything else would need existing
	// elements relocated, which this protocol refuses to do.
	badLayout := false
	if !selfEmpty && a.shape[axis] > 1 {
		axisStride := a.strides[axis]
		if axisStride < 0 {
			badLayout = true
		} else {
			for i := range a.shape {
				if i == axis || a.shape[i] <= 1 {
					continue
				}
				s := a.strides[i]
				if s < 0 {
					s = -s
				}
				if s > axisStride {
					badLayout = true
					break
				}
			}
		}
	}
	// The view must cover the whole live buffer from its base: no holes.
	selfLen, _ := a.shape.Elements()
	if selfLen != a.bufferLen() || a.off != 0 {
		badLayout = true
	}
	if badLayout {
		return fmt.Errorf("append along axis %d: %w", axis, ErrIncompatibleLayout)
	}

	resStrides := a.appendStrides(axis, resShape, selfEmpty)

	// From here on the buffer mutates. Clones land in the spare region in
	// increasing address order; committed tracks how many exist, and the
	// deferred guard makes the logical length match them on every exit.
	a.buf.Reserve(incoming)
	tailBase := a.buf.Len()

	dstShape := v.shape.Clone()
	dstStrides := resStrides.Clone()
	dstBase := tailBase
	srcStrides := v.strides.Clone()
	srcBase := v.off
	if len(dstShape) > 1 {
		dstBase, srcBase = geometry.NormalizeAxisDirectionsTandem(dstShape, dstStrides, dstBase, srcStrides, srcBase)
		srcShape := dstShape.Clone()
		geometry.SortAxesDescendingTandem(dstShape, dstStrides, srcShape, srcStrides)
	}

	committed := tailBase
	defer func() { a.buf.SetLen(committed) }()

	err = geometry.PairOffsets(dstShape, dstStrides, dstBase, srcStrides, srcBase, func(do, so int) error {
		if do != committed {
			panic(fmt.Sprintf("ndarray: append write at offset %d, want %d", do, committed))
		}
		val := v.data[so]
		if a.clone != nil {
			cloned, cloneErr := a.clone(val)
			if cloneErr != nil {
				return cloneErr
			}
			val = cloned
		}
		a.buf.WriteUninitialized(do, val)
		committed++
		return nil
	})
	if err != nil {
		return err
	}
	if committed != newLen {
		panic(fmt.Sprintf("ndarray: append committed %d elements, want %d", committed, newLen))
	}

	a.shape = resShape
	a.strides = resStrides
	a.off = 0
	return nil
}

// appendStrides computes the strides of the grown array.
func (a *Array[T]) appendStrides(axis int, resShape geometry.Shape, selfEmpty bool) geometry.Strides {
	switch {
	case selfEmpty:
		// An empty array may carry zero strides; recompute canonically
		// with the growing axis outermost.
		if axis == len(resShape)-1 {
			return geometry.ReverseDefaultStrides(resShape)
		}
		return growingAxisFirstStrides(resShape, axis)
	case a.shape[axis] == 1:
		// The axis is being promoted to outermost: its stride becomes the
		// span of everything else. Hole-freedom guarantees the other axes
		// tile the buffer, so the largest extent*stride product is the
		// full span.
		resStrides := a.strides.Clone()
		span := 1
		for i := range a.shape {
			if i == axis || a.shape[i] <= 1 {
				continue
			}
			if p := a.shape[i] * a.strides[i]; p > span {
				span = p
			}
		}
		resStrides[axis] = span
		return resStrides
	default:
		return a.strides.Clone()
	}
}

// growingAxisFirstStrides computes row-major strides for shape as if the
// given axis were permuted to position 0, mapped back to the original axis
// order, so that axis gets the largest stride.
func growingAxisFirstStrides(shape geometry.Shape, axis int) geometry.Strides {
	perm := make([]int, 0, len(shape))
	perm = append(perm, axis)
	for i := range shape {
		if i != axis {
			perm = append(perm, i)
		}
	}
	permShape := make(geometry.Shape, len(shape))
	for i, p := range perm {
		permShape[i] = shape[p]
	}
	permStrides := geometry.DefaultStrides(permShape)
	strides := make(geometry.Strides, len(shape))
	for i, p := range perm {
		strides[p] = permStrides[i]
	}
	return strides
}

// TryAppendRow appends a one-dimensional view as a new row (axis 0) of a
// two-dimensional array. The array must be in row-major order to grow this
// way; see [Array.TryAppend].
func (a *Array[T]) TryAppendRow(row View[T]) error {
	a.ensure()
	if len(a.shape) != 2 {
		return fmt.Errorf("append row to rank-%d array: %w", len(a.shape), ErrIncompatibleShape)
	}
	if len(row.shape) != 1 {
		return fmt.Errorf("append rank-%d view as row: %w", len(row.shape), ErrIncompatibleShape)
	}
	return a.TryAppend(0, row.insertLeadingAxis())
}

// TryAppendColumn appends a one-dimensional view as a new column (axis 1)
// of a two-dimensional array. The array must be in column-major order to
// grow this way; see [Array.TryAppend].
func (a *Array[T]) TryAppendColumn(column View[T]) error {
	a.ensure()
	if len(a.shape) != 2 {
		return fmt.Errorf("append column to rank-%d array: %w", len(a.shape), ErrIncompatibleShape)
	}
	a.SwapAxes(0, 1)
	err := a.TryAppendRow(column)
	a.SwapAxes(0, 1)
	return err
}
