// Package ndarray provides an owned, strided N-dimensional array over a
// single contiguous buffer, with an in-place growth protocol and
// failure-safe ownership transfer.
//
// An [Array] interprets one flat buffer through a shape (per-axis extents)
// and strides (per-axis element steps). Views produced by [Array.Slice] or
// [Array.InvertAxis] alias a subrange of the buffer in arbitrary order
// without moving memory, which can leave "holes": live buffer elements the
// array no longer addresses.
//
// # Growth
//
// [Array.TryAppend] appends a slab of elements along one axis without
// copying existing elements. It only succeeds when the array has no holes
// and the target axis is the outermost (largest-stride) axis, because that
// is the only direction in which new elements are contiguous with the
// existing storage. [Array.TryAppendRow] and [Array.TryAppendColumn] are
// two-dimensional sugar over the same protocol. Rejected appends leave the
// array completely unchanged.
//
// # Element Lifecycle
//
// Element types with non-trivial duplication or teardown register hooks at
// construction with [WithClone] and [WithDrop]. Appending clones each
// source element; if a clone fails partway through a slab, the buffer's
// logical length reflects exactly the elements already produced, so
// [Array.Release] afterwards drops each constructed element once and
// touches nothing else.
//
// # Ownership Transfer
//
// [Array.MoveInto] consumes an array, relocating every addressed element
// into a destination view and dropping every hole element exactly once.
// [Array.IntoRawStorage] and [Array.IntoScalar] are the other consuming
// terminals. A consumed array panics on further use.
//
// # Concurrency
//
// None. An Array is a single-mutator structure: callers serialize access
// themselves, with any number of concurrent readers only while no mutation
// is in flight.
package ndarray
