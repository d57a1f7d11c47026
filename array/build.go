package array

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/dhamidi/ligolw"
)

// Option configures programmatic array construction.
type Option func(*builder)

type builder struct {
	delim    string
	dimNames []string
}

// WithDelimiter sets the Stream delimiter. The default is a single space.
func WithDelimiter(delim string) Option {
	return func(b *builder) { b.delim = delim }
}

// WithDimNames attaches Name attributes to the generated Dim children,
// given in declaration order (slowest dimension first).
func WithDimNames(names ...string) Option {
	return func(b *builder) { b.dimNames = names }
}

// FromInt64s builds a write-ready Array subtree around a copy of an
// integer buffer. shape is the storage shape, fastest dimension first;
// its product must equal len(values), and typeName must be an
// integer-family LIGO LW type.
func FromInt64s(name, typeName string, shape []int, values []int64, opts ...Option) (*Array, error) {
	family, err := ligolw.Classify(typeName)
	if err != nil {
		return nil, err
	}
	if family != ligolw.IntegerFamily {
		return nil, fmt.Errorf("type %q does not store integers", typeName)
	}
	d := &Data{family: family, ints: slices.Clone(values)}
	return fromData(name, typeName, shape, d, opts)
}

// FromFloat64s is the float-family counterpart of FromInt64s.
func FromFloat64s(name, typeName string, shape []int, values []float64, opts ...Option) (*Array, error) {
	family, err := ligolw.Classify(typeName)
	if err != nil {
		return nil, err
	}
	if family != ligolw.FloatFamily {
		return nil, fmt.Errorf("type %q does not store floats", typeName)
	}
	d := &Data{family: family, floats: slices.Clone(values)}
	return fromData(name, typeName, shape, d, opts)
}

func fromData(name, typeName string, shape []int, d *Data, opts []Option) (*Array, error) {
	b := builder{delim: " "}
	for _, opt := range opts {
		opt(&b)
	}

	if got, want := d.Len(), size(shape); got != want {
		return nil, fmt.Errorf("shape %v needs %d values, got %d", shape, want, got)
	}

	a, err := New([]ligolw.Attribute{
		{Name: "Name", Value: name},
		{Name: "Type", Value: typeName},
	})
	if err != nil {
		return nil, err
	}

	dims := DimsFromShape(shape)
	if b.dimNames != nil && len(b.dimNames) != len(dims) {
		return nil, fmt.Errorf("%d dimension names for %d dimensions", len(b.dimNames), len(dims))
	}
	for i, n := range dims {
		var attrs []ligolw.Attribute
		if b.dimNames != nil {
			attrs = append(attrs, ligolw.Attribute{Name: "Name", Value: b.dimNames[i]})
		}
		dim := ligolw.NewElem(DimTag, attrs)
		dim.AppendData(strconv.Itoa(n))
		ligolw.Append(a, dim)
	}

	stream := NewStream([]ligolw.Attribute{
		{Name: "Type", Value: "Local"},
		{Name: "Delimiter", Value: b.delim},
	})
	stream.state = stateComplete
	ligolw.Append(a, stream)
	a.data = d
	return a, nil
}
