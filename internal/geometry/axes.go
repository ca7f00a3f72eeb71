package geometry

// SortAxesDescending permutes the (shape, strides) axis pairs in place into
// non-increasing stride order using a stable bubble sort: equal-stride axes
// keep their original relative order. Strides must be non-negative; callers
// fold away negative strides with [NormalizeAxisDirections] first.
func SortAxesDescending(shape Shape, strides Strides) {
	sortAxes(shape, strides, nil, nil)
}

// SortAxesDescendingTandem sorts the first (shape, strides) pair as
// [SortAxesDescending] does, applying every swap to the second pair as
// well. Both pairs must have the same rank. The sort order is decided by
// the first pair's strides alone.
func SortAxesDescendingTandem(shape Shape, strides Strides, shape2 Shape, strides2 Strides) {
	sortAxes(shape, strides, shape2, strides2)
}

func sortAxes(shape Shape, strides Strides, shape2 Shape, strides2 Strides) {
	if len(shape) <= 1 {
		return
	}
	for changed := true; changed; {
		changed = false
		for i := 0; i < len(shape)-1; i++ {
			if strides[i] >= strides[i+1] {
				continue
			}
			shape[i], shape[i+1] = shape[i+1], shape[i]
			strides[i], strides[i+1] = strides[i+1], strides[i]
			if shape2 != nil {
				shape2[i], shape2[i+1] = shape2[i+1], shape2[i]
				strides2[i], strides2[i+1] = strides2[i+1], strides2[i]
			}
			changed = true
		}
	}
}

// NormalizeAxisDirections reverses, in place, every axis with a negative
// stride: the stride is negated and the base offset moves to the axis's
// other end. The index-to-address mapping changes (indexes along reversed
// axes count from the other side) but the set of addressed elements does
// not. Returns the adjusted base offset.
func NormalizeAxisDirections(shape Shape, strides Strides, base int) int {
	for i, d := range shape {
		if strides[i] >= 0 || d == 0 {
			continue
		}
		base += (d - 1) * strides[i]
		strides[i] = -strides[i]
	}
	return base
}

// NormalizeAxisDirectionsTandem reverses every axis whose stride is
// negative in the first view, applying the same reversal to the second
// view's corresponding axis regardless of that axis's own stride sign, so
// a lockstep traversal of the two views keeps visiting matching elements.
// Both views share the shape. Returns both adjusted base offsets.
func NormalizeAxisDirectionsTandem(shape Shape, strides Strides, base int, strides2 Strides, base2 int) (int, int) {
	for i, d := range shape {
		if strides[i] >= 0 || d == 0 {
			continue
		}
		base += (d - 1) * strides[i]
		strides[i] = -strides[i]
		base2 += (d - 1) * strides2[i]
		strides2[i] = -strides2[i]
	}
	return base, base2
}
