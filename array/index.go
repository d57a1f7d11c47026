package array

// odometer enumerates every index of a shape with position 0 varying
// fastest: (0,0), (1,0), ..., carrying into later positions on wrap. A
// zero-size dimension exhausts the sequence immediately. Each pass over
// an array uses a fresh odometer.
type odometer struct {
	shape   []int
	index   []int
	started bool
	done    bool
}

func newOdometer(shape []int) *odometer {
	o := &odometer{shape: shape, index: make([]int, len(shape))}
	for _, n := range shape {
		if n <= 0 {
			o.done = true
		}
	}
	return o
}

// Next returns the next index, or ok=false once the sequence is
// exhausted. The returned slice is reused; it is valid until the
// following call.
func (o *odometer) Next() (index []int, ok bool) {
	if o.done {
		return nil, false
	}
	if !o.started {
		o.started = true
		return o.index, true
	}
	for i := range o.index {
		o.index[i]++
		if o.index[i] < o.shape[i] {
			return o.index, true
		}
		o.index[i] = 0
	}
	o.done = true
	return nil, false
}
