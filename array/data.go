package array

import (
	"strconv"

	"github.com/dhamidi/ligolw"
	"github.com/dhamidi/ligolw/tokenizer"
)

// Data is the storage buffer of an Array: a flat scalar buffer laid out
// in shape order, fastest dimension first. It is allocated zero-filled;
// positions never written keep the zero value.
type Data struct {
	family ligolw.Family
	ints   []int64
	floats []float64
}

// NewData allocates a zero-filled buffer of the given family and size.
func NewData(family ligolw.Family, size int) *Data {
	d := &Data{family: family}
	switch family {
	case ligolw.IntegerFamily:
		d.ints = make([]int64, size)
	default:
		d.floats = make([]float64, size)
	}
	return d
}

// Family returns the buffer's scalar family.
func (d *Data) Family() ligolw.Family { return d.family }

// Len returns the number of stored scalars.
func (d *Data) Len() int {
	if d.family == ligolw.IntegerFamily {
		return len(d.ints)
	}
	return len(d.floats)
}

// Ints returns the underlying buffer of an integer array, nil otherwise.
func (d *Data) Ints() []int64 { return d.ints }

// Floats returns the underlying buffer of a float array, nil otherwise.
func (d *Data) Floats() []float64 { return d.floats }

func (d *Data) set(i int, s tokenizer.Scalar) {
	switch d.family {
	case ligolw.IntegerFamily:
		d.ints[i] = s.Int
	default:
		d.floats[i] = s.Float
	}
}

// format renders the value at i in its shortest round-trip text form.
func (d *Data) format(i int) string {
	switch d.family {
	case ligolw.IntegerFamily:
		return strconv.FormatInt(d.ints[i], 10)
	default:
		return strconv.FormatFloat(d.floats[i], 'g', -1, 64)
	}
}
