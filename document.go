package ligolw

import (
	"fmt"
	"io"
)

// Header is the declaration and doctype emitted at the top of every
// written document.
const Header = `<?xml version='1.0' encoding='utf-8'?>` + "\n" +
	`<!DOCTYPE LIGO_LW SYSTEM "http://ldas-sw.ligo.caltech.edu/doc/ligolwAPI/html/ligolw_dtd.txt">`

// Document is the root of a parsed or constructed document tree. It is
// not itself an Element; it only holds the top-level elements (normally a
// single LIGO_LW).
type Document struct {
	children []Element
}

// Children returns the top-level elements in document order.
func (d *Document) Children() []Element { return d.children }

// Append adds a top-level element and returns it.
func (d *Document) Append(c Element) Element {
	d.children = append(d.children, c)
	return c
}

// Unlink recursively unlinks all top-level elements.
func (d *Document) Unlink() {
	for _, c := range d.children {
		c.Unlink()
	}
	d.children = nil
}

// Write serializes the document, header included.
func (d *Document) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s\n", Header); err != nil {
		return err
	}
	for _, c := range d.children {
		if err := c.Write(w, ""); err != nil {
			return err
		}
	}
	return nil
}
