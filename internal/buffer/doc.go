// Package buffer provides the owned element storage behind an array.
//
// A [Buffer] is a single contiguous run of elements with a tracked logical
// length that is separate from its capacity. Offsets below the logical
// length always hold live, owned values; offsets between the logical length
// and the capacity are spare slots that have never been handed to the
// owner. Only three operations change what is considered live:
//
//   - [Buffer.Reserve] grows the capacity without touching the length.
//   - [Buffer.WriteUninitialized] stores a value into a spare slot without
//     making it live.
//   - [Buffer.SetLen] moves the live boundary, constructing and destroying
//     nothing.
//
// This split is what makes growth abortable: a caller writes new elements
// into spare slots one at a time and commits the length only for elements
// that were actually produced, so a failure partway leaves the buffer
// describing exactly the values that exist.
//
// Element types with teardown behavior pass a drop function to
// [Buffer.Release]; it runs once per live element. [Buffer.TakeStorage] and
// [Buffer.Discard] end the buffer's life without dropping, for when
// ownership of the values has already moved elsewhere. A buffer panics if
// used after any of the three terminal operations.
package buffer
