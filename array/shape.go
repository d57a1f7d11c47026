package array

// ShapeFromDims converts the declared Dim sizes, in document order, to
// the storage shape: a full reversal. Shape position 0 is the
// fastest-varying dimension and corresponds to the last Dim child.
func ShapeFromDims(dims []int) []int { return reversed(dims) }

// DimsFromShape is the inverse of ShapeFromDims.
func DimsFromShape(shape []int) []int { return reversed(shape) }

func reversed(v []int) []int {
	out := make([]int, len(v))
	for i, n := range v {
		out[len(v)-1-i] = n
	}
	return out
}

func size(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return n
}
