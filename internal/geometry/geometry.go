// Package geometry models array shapes and strides.
package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow is returned when a shape's element count cannot be
// represented in an int.
var ErrOverflow = errors.New("shape element count overflows int")

// Shape holds one non-negative extent per axis.
type Shape []int

// Strides holds one signed step per axis, measured in elements.
type Strides []int

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	copy(c, s)
	return c
}

// Equal reports whether two shapes have identical rank and extents.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// IsEmpty reports whether any axis has extent zero.
func (s Shape) IsEmpty() bool {
	for _, d := range s {
		if d == 0 {
			return true
		}
	}
	return false
}

// Elements returns the total element count (product of extents). A rank-0
// shape has one element. Fails with [ErrOverflow] if the product cannot be
// represented.
func (s Shape) Elements() (int, error) {
	n := 1
	for _, d := range s {
		if d == 0 {
			return 0, nil
		}
		if n > math.MaxInt/d {
			return 0, ErrOverflow
		}
		n *= d
	}
	return n, nil
}

// Remove returns a copy of the shape with the given axis deleted.
func (s Shape) Remove(axis int) Shape {
	c := make(Shape, 0, len(s)-1)
	c = append(c, s[:axis]...)
	return append(c, s[axis+1:]...)
}

func (s Shape) String() string {
	return fmt.Sprintf("%v", []int(s))
}

// Clone returns a copy of the strides.
func (s Strides) Clone() Strides {
	c := make(Strides, len(s))
	copy(c, s)
	return c
}

// DefaultStrides computes canonical row-major strides for a shape: the last
// axis is contiguous. Empty shapes get all-zero strides.
func DefaultStrides(shape Shape) Strides {
	strides := make(Strides, len(shape))
	if shape.IsEmpty() {
		return strides
	}
	step := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = step
		step *= shape[i]
	}
	return strides
}

// ReverseDefaultStrides computes canonical column-major strides for a
// shape: the first axis is contiguous. Empty shapes get all-zero strides.
func ReverseDefaultStrides(shape Shape) Strides {
	strides := make(Strides, len(shape))
	if shape.IsEmpty() {
		return strides
	}
	step := 1
	for i := 0; i < len(shape); i++ {
		strides[i] = step
		step *= shape[i]
	}
	return strides
}

// IsStandardLayout reports whether the strides describe exactly the
// canonical row-major layout for the shape, with no holes. Shapes with
// zero or one total elements are always standard; axes of extent one are
// ignored since their stride never contributes to an address.
func IsStandardLayout(shape Shape, strides Strides) bool {
	if len(shape) != len(strides) {
		return false
	}
	n, err := shape.Elements()
	if err != nil {
		return false
	}
	if n <= 1 {
		return true
	}
	want := DefaultStrides(shape)
	for i := range shape {
		if shape[i] <= 1 {
			continue
		}
		if strides[i] != want[i] {
			return false
		}
	}
	return true
}

// OffsetRange returns the inclusive range [lo, hi] of offsets, relative to
// the base, addressed by a non-empty view with the given geometry. For an
// empty view it returns (0, 0); nothing is addressed.
func OffsetRange(shape Shape, strides Strides) (lo, hi int) {
	if shape.IsEmpty() {
		return 0, 0
	}
	for i, d := range shape {
		span := (d - 1) * strides[i]
		if span < 0 {
			lo += span
		} else {
			hi += span
		}
	}
	return lo, hi
}
