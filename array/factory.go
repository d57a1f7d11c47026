package array

import "github.com/dhamidi/ligolw"

// Factory is a ligolw.ElementFactory that substitutes this package's
// element types during parsing: every Array tag, and Stream tags directly
// inside an Array. Everything else parses as a generic element.
func Factory(parent ligolw.Element, tag string, attrs []ligolw.Attribute) (ligolw.Element, error) {
	switch tag {
	case ArrayTag:
		return New(attrs)
	case StreamTag:
		if _, ok := parent.(*Array); ok {
			return NewStream(attrs), nil
		}
	}
	return ligolw.NewElement(parent, tag, attrs)
}
