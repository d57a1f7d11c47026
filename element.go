// Package ligolw implements an in-memory document tree for LIGO Light
// Weight XML files: a generic element type, a streaming parser that lets
// callers substitute specialized element types per tag, and a writer that
// reproduces the conventional file layout.
package ligolw

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Indent is the per-level indentation used when writing documents.
const Indent = "\t"

// Attribute is a single name/value pair. Attribute order is preserved
// between parsing and writing.
type Attribute struct {
	Name  string
	Value string
}

// Element is a node in a LIGO LW document tree.
//
// AppendData receives the element's character data; it may be called any
// number of times with partial chunks. EndOfElement fires when the
// element's end tag is seen. Unlink breaks tree links so a detached
// subtree can be collected.
type Element interface {
	TagName() string
	Attr(name string) (string, bool)
	SetAttr(name, value string)
	Attrs() []Attribute
	Parent() Element
	SetParent(p Element)
	Children() []Element
	AddChild(c Element)
	PCData() string
	AppendData(text string) error
	EndOfElement() error
	Unlink()
	Write(w io.Writer, indent string) error
}

// Append links child under parent and returns child. Callers should use
// this instead of AddChild directly so the parent link stays consistent.
func Append(parent, child Element) Element {
	parent.AddChild(child)
	child.SetParent(parent)
	return child
}

// Elem is the generic Element implementation. Specialized elements embed
// it and override the hooks they care about.
type Elem struct {
	tag      string
	attrs    []Attribute
	parent   Element
	children []Element
	pcdata   []byte
}

// NewElem constructs a generic element with the given tag and attributes.
func NewElem(tag string, attrs []Attribute) *Elem {
	return &Elem{tag: tag, attrs: attrs}
}

func (e *Elem) TagName() string { return e.tag }

func (e *Elem) Attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func (e *Elem) SetAttr(name, value string) {
	for i, a := range e.attrs {
		if a.Name == name {
			e.attrs[i].Value = value
			return
		}
	}
	e.attrs = append(e.attrs, Attribute{Name: name, Value: value})
}

func (e *Elem) Attrs() []Attribute { return e.attrs }

func (e *Elem) Parent() Element { return e.parent }

func (e *Elem) SetParent(p Element) { e.parent = p }

func (e *Elem) Children() []Element { return e.children }

func (e *Elem) AddChild(c Element) { e.children = append(e.children, c) }

func (e *Elem) PCData() string { return string(e.pcdata) }

func (e *Elem) AppendData(text string) error {
	e.pcdata = append(e.pcdata, text...)
	return nil
}

func (e *Elem) EndOfElement() error { return nil }

// Unlink breaks the parent link and recursively unlinks all children.
func (e *Elem) Unlink() {
	e.parent = nil
	for _, c := range e.children {
		c.Unlink()
	}
	e.children = nil
}

func (e *Elem) Write(w io.Writer, indent string) error {
	pc := strings.TrimSpace(string(e.pcdata))
	if len(e.children) == 0 {
		if pc == "" {
			_, err := fmt.Fprintf(w, "%s<%s%s/>\n", indent, e.tag, formatAttrs(e.attrs))
			return err
		}
		_, err := fmt.Fprintf(w, "%s%s</%s>\n", StartTag(e, indent), escapeText(pc), e.tag)
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", StartTag(e, indent)); err != nil {
		return err
	}
	if pc != "" {
		if _, err := fmt.Fprintf(w, "%s%s\n", indent+Indent, escapeText(pc)); err != nil {
			return err
		}
	}
	for _, c := range e.children {
		if err := c.Write(w, indent+Indent); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s\n", EndTag(e, indent))
	return err
}

// StartTag returns the serialized start tag for e, prefixed by indent.
func StartTag(e Element, indent string) string {
	return fmt.Sprintf("%s<%s%s>", indent, e.TagName(), formatAttrs(e.Attrs()))
}

// EndTag returns the serialized end tag for e, prefixed by indent.
func EndTag(e Element, indent string) string {
	return fmt.Sprintf("%s</%s>", indent, e.TagName())
}

func formatAttrs(attrs []Attribute) string {
	if len(attrs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, a := range attrs {
		fmt.Fprintf(&b, " %s=\"%s\"", a.Name, escapeText(a.Value))
	}
	return b.String()
}

func escapeText(s string) string {
	var b strings.Builder
	// strings.Builder writes cannot fail.
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
