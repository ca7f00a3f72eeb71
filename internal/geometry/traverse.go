package geometry

// Offsets walks every multi-index of the shape in odometer order (last
// axis fastest) and calls fn with the flat offset of each element. The
// walk stops early if fn returns false. Empty shapes yield nothing; a
// rank-0 shape yields the base offset once.
//
// When the axes are in non-increasing non-negative stride order (see
// [SortAxesDescending]), the yielded offsets are non-decreasing, and
// strictly increasing when the view addresses each element once.
func Offsets(shape Shape, strides Strides, base int, fn func(off int) bool) {
	if shape.IsEmpty() {
		return
	}
	n := len(shape)
	if n == 0 {
		fn(base)
		return
	}
	idx := make([]int, n)
	off := base
	for {
		if !fn(off) {
			return
		}
		k := n - 1
		for ; k >= 0; k-- {
			idx[k]++
			off += strides[k]
			if idx[k] < shape[k] {
				break
			}
			idx[k] = 0
			off -= shape[k] * strides[k]
		}
		if k < 0 {
			return
		}
	}
}

// PairOffsets walks two equal-shaped views in lockstep, calling fn with
// the matching pair of flat offsets for every multi-index. The walk
// follows the shape's current axis order (last axis fastest). The first
// error from fn stops the walk and is returned.
func PairOffsets(shape Shape, aStrides Strides, aBase int, bStrides Strides, bBase int, fn func(ao, bo int) error) error {
	if shape.IsEmpty() {
		return nil
	}
	n := len(shape)
	if n == 0 {
		return fn(aBase, bBase)
	}
	idx := make([]int, n)
	ao, bo := aBase, bBase
	for {
		if err := fn(ao, bo); err != nil {
			return err
		}
		k := n - 1
		for ; k >= 0; k-- {
			idx[k]++
			ao += aStrides[k]
			bo += bStrides[k]
			if idx[k] < shape[k] {
				break
			}
			idx[k] = 0
			ao -= shape[k] * aStrides[k]
			bo -= shape[k] * bStrides[k]
		}
		if k < 0 {
			return nil
		}
	}
}
