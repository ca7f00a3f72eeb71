// Package geometry models the shape and stride arithmetic of strided
// N-dimensional views.
//
// A view over a flat element buffer is described by a [Shape] (one
// non-negative extent per axis), a [Strides] (one signed step per axis,
// measured in elements), and a base offset. The element at multi-index
// (i0, i1, ...) lives at offset base + i0*stride0 + i1*stride1 + ....
//
// # Layout Conventions
//
// [DefaultStrides] computes the canonical row-major layout, where the last
// axis is contiguous and earlier axes step over whole sub-blocks.
// [ReverseDefaultStrides] computes the column-major equivalent, with the
// first axis contiguous. [IsStandardLayout] reports whether a (shape,
// strides) pair is exactly row-major with no holes; axes of extent one are
// ignored since their stride never contributes to an address.
//
// # Axis Canonicalization
//
// Growth and hole collection both need to visit element addresses in
// increasing order. [SortAxesDescending] permutes the axis pairs into
// non-increasing stride order; after [NormalizeAxisDirections] has folded
// away negative strides, an odometer walk of the sorted axes visits
// addresses monotonically. The tandem variants apply the identical
// permutation or reversal to a second view so that a lockstep traversal of
// both stays element-for-element aligned.
//
// # Traversal
//
// [Offsets] and [PairOffsets] are the traversal primitives built on the
// above: an odometer over the axes in their current order, last axis
// fastest, yielding flat offsets only. They carry no element type and do no
// bounds checking of their own; callers index into their buffers with the
// yielded offsets.
package geometry
