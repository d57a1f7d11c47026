// Package array extends the generic LIGO LW document tree with typed
// multi-dimensional numeric array support. An Array element carries Name
// and Type attributes, Dim children declaring per-axis sizes in document
// order, and a single Stream child whose delimited character data holds
// the flattened values, fastest dimension first. During parsing the
// Stream fills the parent Array's buffer incrementally; on writing it
// serializes the buffer back into the same representation.
package array

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dhamidi/ligolw"
)

// Tag names recognized by this package.
const (
	ArrayTag  = "Array"
	DimTag    = "Dim"
	StreamTag = "Stream"
)

// Array is the document element describing a multi-dimensional array.
// Its storage buffer lives here; the Stream child fills it during parsing
// and reads it back when writing.
type Array struct {
	ligolw.Elem
	family ligolw.Family
	data   *Data
}

// New constructs an Array element. The Type attribute is validated
// eagerly: an unrecognized type name fails here, before any data has been
// seen.
func New(attrs []ligolw.Attribute) (*Array, error) {
	a := &Array{Elem: *ligolw.NewElem(ArrayTag, attrs)}
	typ, ok := a.Attr("Type")
	if !ok {
		return nil, fmt.Errorf("Array element missing Type attribute")
	}
	family, err := ligolw.Classify(typ)
	if err != nil {
		return nil, err
	}
	a.family = family
	return a, nil
}

// Name returns the Name attribute, empty when absent.
func (a *Array) Name() string {
	v, _ := a.Attr("Name")
	return v
}

// Type returns the declared LIGO LW type name.
func (a *Array) Type() string {
	v, _ := a.Attr("Type")
	return v
}

// Family returns the storage family of the declared type.
func (a *Array) Family() ligolw.Family { return a.family }

// Dims returns the declared dimension sizes in document order, read from
// the Dim children.
func (a *Array) Dims() ([]int, error) {
	var dims []int
	for _, c := range a.Children() {
		if c.TagName() != DimTag {
			continue
		}
		text := strings.TrimSpace(c.PCData())
		n, err := strconv.Atoi(text)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("array %q: invalid Dim %q", a.Name(), text)
		}
		dims = append(dims, n)
	}
	return dims, nil
}

// Shape returns the storage shape: Dims reversed, fastest dimension
// first.
func (a *Array) Shape() ([]int, error) {
	dims, err := a.Dims()
	if err != nil {
		return nil, err
	}
	return ShapeFromDims(dims), nil
}

// Data returns the array's storage buffer, or nil before any stream data
// has been parsed.
func (a *Array) Data() *Data { return a.data }

// Unlink releases the storage buffer along with the subtree links.
func (a *Array) Unlink() {
	a.data = nil
	a.Elem.Unlink()
}
