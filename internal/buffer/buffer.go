// Package buffer provides owned, growable element storage.
package buffer

import (
	"fmt"
	"slices"
)

// Buffer owns a contiguous run of elements. Offsets in [0, Len()) are live
// values; offsets in [Len(), Cap()) are spare slots. Not safe for
// concurrent use.
type Buffer[T any] struct {
	data     []T // always sliced out to full capacity
	n        int // logical length; live elements occupy data[:n]
	released bool
}

// New creates a buffer with n live zero-value elements.
func New[T any](n int) *Buffer[T] {
	if n < 0 {
		panic("buffer: negative length")
	}
	data := make([]T, n)
	return &Buffer[T]{data: data[:cap(data)], n: n}
}

// FromSlice creates a buffer that adopts s: its elements become the live
// contents and any spare capacity of s becomes spare slots. The caller must
// not use s afterwards.
func FromSlice[T any](s []T) *Buffer[T] {
	return &Buffer[T]{data: s[:cap(s)], n: len(s)}
}

// Len returns the logical length (number of live elements).
func (b *Buffer[T]) Len() int {
	b.ensureLive()
	return b.n
}

// Cap returns the allocated capacity in elements.
func (b *Buffer[T]) Cap() int {
	b.ensureLive()
	return len(b.data)
}

// Reserve ensures capacity for at least additional more elements beyond the
// logical length, reallocating if needed. The logical length is unchanged.
// Reallocation copies live elements; slices previously obtained from
// [Buffer.Storage] go stale and must be re-derived.
func (b *Buffer[T]) Reserve(additional int) {
	b.ensureLive()
	if additional <= 0 || len(b.data)-b.n >= additional {
		return
	}
	grown := slices.Grow(b.data[:b.n], additional)
	b.data = grown[:cap(grown)]
}

// Storage returns the live elements as a borrowed window. The window is
// valid until the next Reserve or terminal operation.
func (b *Buffer[T]) Storage() []T {
	b.ensureLive()
	return b.data[:b.n]
}

// At returns the live element at off.
func (b *Buffer[T]) At(off int) T {
	b.ensureLive()
	if off < 0 || off >= b.n {
		panic(fmt.Sprintf("buffer: offset %d out of live range [0, %d)", off, b.n))
	}
	return b.data[off]
}

// Set replaces the live element at off. The previous value is discarded
// without any drop hook; callers that track element lifetimes must handle
// the old value themselves.
func (b *Buffer[T]) Set(off int, v T) {
	b.ensureLive()
	if off < 0 || off >= b.n {
		panic(fmt.Sprintf("buffer: offset %d out of live range [0, %d)", off, b.n))
	}
	b.data[off] = v
}

// WriteUninitialized stores v into the spare slot at off without changing
// the logical length. The slot becomes live only once SetLen moves the
// boundary past it. Panics if off is a live offset or beyond capacity.
func (b *Buffer[T]) WriteUninitialized(off int, v T) {
	b.ensureLive()
	if off < b.n || off >= len(b.data) {
		panic(fmt.Sprintf("buffer: uninitialized write at %d outside spare range [%d, %d)", off, b.n, len(b.data)))
	}
	b.data[off] = v
}

// SetLen sets the logical length to n. It constructs and destroys nothing;
// it only moves the boundary between live and spare slots. Shrinking
// abandons values without dropping them, so callers rolling back a failed
// operation must only shrink past slots whose values were never committed.
func (b *Buffer[T]) SetLen(n int) {
	b.ensureLive()
	if n < 0 || n > len(b.data) {
		panic(fmt.Sprintf("buffer: length %d outside [0, %d]", n, len(b.data)))
	}
	b.n = n
}

// Release drops every live element exactly once (when drop is non-nil) and
// ends the buffer's life. Any use afterwards panics.
func (b *Buffer[T]) Release(drop func(T)) {
	b.ensureLive()
	if drop != nil {
		for i := 0; i < b.n; i++ {
			drop(b.data[i])
		}
	}
	b.terminate()
}

// TakeStorage ends the buffer's life and returns the live elements without
// dropping any of them; ownership of the values moves to the caller.
func (b *Buffer[T]) TakeStorage() []T {
	b.ensureLive()
	s := b.data[:b.n]
	b.terminate()
	return s
}

// Discard ends the buffer's life without dropping anything. Used when
// every live value's ownership has already been transferred out.
func (b *Buffer[T]) Discard() {
	b.ensureLive()
	b.terminate()
}

func (b *Buffer[T]) terminate() {
	b.data = nil
	b.n = 0
	b.released = true
}

func (b *Buffer[T]) ensureLive() {
	if b.released {
		panic("buffer: use after release")
	}
}
