package ndarray

// Option configures array construction.
type Option[T any] func(*options[T])

type options[T any] struct {
	clone       func(T) (T, error)
	drop        func(T)
	columnMajor bool
}

func defaultOptions[T any]() *options[T] {
	return &options[T]{}
}

func applyOptions[T any](opts []Option[T]) *options[T] {
	o := defaultOptions[T]()
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithClone sets the element clone hook used when appending copies
// elements into the array. A nil hook (the default) copies by assignment
// and cannot fail. A clone error aborts the append after the elements
// cloned so far have been committed.
func WithClone[T any](fn func(T) (T, error)) Option[T] {
	return func(o *options[T]) {
		o.clone = fn
	}
}

// WithDrop sets the element teardown hook. It runs exactly once per owned
// element when the array is released or when ownership transfer discards
// elements outside the current view. A nil hook (the default) means the
// element type needs no teardown.
func WithDrop[T any](fn func(T)) Option[T] {
	return func(o *options[T]) {
		o.drop = fn
	}
}

// WithColumnMajor lays the new array out in column-major (first axis
// contiguous) order instead of the default row-major order.
func WithColumnMajor[T any]() Option[T] {
	return func(o *options[T]) {
		o.columnMajor = true
	}
}
