package ndarray

import "errors"

// Error kinds. Operations wrap these with context; test with [errors.Is].
var (
	// ErrIncompatibleShape reports that two shapes cannot be combined:
	// off-axis extents differ, ranks differ, or an operation that needs
	// at least one axis was given a rank-0 array.
	ErrIncompatibleShape = errors.New("incompatible shape")

	// ErrIncompatibleLayout reports that an array's memory layout cannot
	// support the requested growth: the view does not cover the whole
	// buffer (holes), or the growing axis is not the outermost-stride
	// axis so growth would have to relocate existing elements.
	ErrIncompatibleLayout = errors.New("incompatible layout")

	// ErrShapeOverflow reports that a shape's element count cannot be
	// represented in an int.
	ErrShapeOverflow = errors.New("shape size overflows int")
)
