package ndarray

import (
	"fmt"

	"github.com/robert-malhotra/go-ndarray/internal/geometry"
)

// MoveInto consumes the array, relocating every element it addresses into
// the destination view and destroying every buffer element the array no
// longer addresses (holes from prior slicing) exactly once. Relocation
// transfers ownership by plain assignment; the clone hook never runs.
//
// The destination's shape must equal the array's shape exactly; a mismatch
// is a caller contract violation and panics. The destination must not
// alias the array's buffer.
func (a *Array[T]) MoveInto(dst MutView[T]) {
	a.ensure()
	if !a.shape.Equal(dst.shape) {
		panic(fmt.Sprintf("ndarray: move into view of shape %v, array has %v", dst.shape, a.shape))
	}

	storage := a.buf.Storage()
	_ = geometry.PairOffsets(a.shape, a.strides, a.off, dst.strides, dst.off, func(so, do int) error {
		dst.data[do] = storage[so]
		return nil
	})

	a.collectUnreachable()
	a.buf = nil
}

// collectUnreachable destroys every live buffer element not addressed by
// the current view, then ends the buffer's life without touching the
// addressed (already relocated) elements.
func (a *Array[T]) collectUnreachable() {
	reachable, _ := a.shape.Elements()
	bufLen := a.buf.Len()
	if reachable == bufLen || a.drop == nil {
		// No holes, or nothing to run on them.
		a.buf.Discard()
		return
	}

	// Reorder the view so its traversal visits strictly increasing
	// offsets: fold away negative strides, then sort axes by descending
	// stride. Everything the walk skips over is a hole.
	shape := a.shape.Clone()
	strides := a.strides.Clone()
	base := geometry.NormalizeAxisDirections(shape, strides, a.off)
	geometry.SortAxesDescending(shape, strides)

	storage := a.buf.Storage()
	cursor := 0
	dropped := 0
	geometry.Offsets(shape, strides, base, func(off int) bool {
		for cursor < off {
			a.drop(storage[cursor])
			cursor++
			dropped++
		}
		// storage[off] was relocated already; skip it.
		cursor = off + 1
		return true
	})
	for cursor < bufLen {
		a.drop(storage[cursor])
		cursor++
		dropped++
	}

	if dropped+reachable != bufLen {
		panic(fmt.Sprintf("ndarray: hole collection dropped %d of %d elements with %d reachable", dropped, bufLen, reachable))
	}
	a.buf.Discard()
}

// IntoRawStorage consumes the array and returns its buffer contents in
// underlying storage order, without cloning. The result matches the
// logical element order only when the array is in standard layout with no
// holes. No drop hooks run; ownership of every element moves to the
// caller.
func (a *Array[T]) IntoRawStorage() []T {
	a.ensure()
	s := a.buf.TakeStorage()
	a.buf = nil
	return s
}

// IntoScalar consumes a rank-0 array and returns its single element
// without cloning it. The element need not sit at the buffer base (the
// array may have been sliced down to rank 0); any other buffer elements
// are holes and are dropped exactly once.
func (a *Array[T]) IntoScalar() T {
	a.ensure()
	if len(a.shape) != 0 {
		panic(fmt.Sprintf("ndarray: IntoScalar on rank-%d array", len(a.shape)))
	}
	storage := a.buf.Storage()
	v := storage[a.off]
	if a.drop != nil {
		for i := range storage {
			if i != a.off {
				a.drop(storage[i])
			}
		}
	}
	a.buf.Discard()
	a.buf = nil
	return v
}
