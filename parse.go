package ligolw

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// ElementFactory constructs the element for a start tag. parent is nil
// for top-level elements. Returning an error aborts the parse; the
// factory is where specialized packages substitute their own element
// types for selected tags.
type ElementFactory func(parent Element, tag string, attrs []Attribute) (Element, error)

// NewElement is the default factory: every tag becomes a generic Elem.
func NewElement(parent Element, tag string, attrs []Attribute) (Element, error) {
	return NewElem(tag, attrs), nil
}

// Parse reads an XML document from r and builds its element tree. A nil
// factory parses everything as generic elements. Character data is
// forwarded to the enclosing element chunk by chunk, exactly as the
// underlying decoder delivers it.
func Parse(r io.Reader, factory ElementFactory) (*Document, error) {
	if factory == nil {
		factory = NewElement
	}

	doc := &Document{}
	dec := xml.NewDecoder(r)
	var stack []Element

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return doc, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			var parent Element
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}
			attrs := make([]Attribute, 0, len(t.Attr))
			for _, a := range t.Attr {
				attrs = append(attrs, Attribute{Name: a.Name.Local, Value: a.Value})
			}
			el, err := factory(parent, t.Name.Local, attrs)
			if err != nil {
				return nil, fmt.Errorf("<%s>: %w", t.Name.Local, err)
			}
			if parent != nil {
				Append(parent, el)
			} else {
				doc.Append(el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			el := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if err := el.EndOfElement(); err != nil {
				return nil, fmt.Errorf("</%s>: %w", el.TagName(), err)
			}

		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			el := stack[len(stack)-1]
			if err := el.AppendData(string(t)); err != nil {
				return nil, fmt.Errorf("character data in <%s>: %w", el.TagName(), err)
			}
		}
	}
}
