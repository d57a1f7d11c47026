package array

import (
	"regexp"
	"strings"

	"github.com/dhamidi/ligolw"
)

// arrayNamePattern captures the significant portion of an array name
// following the LIGO LW convention: an optional "prefix:" segment, the
// name itself, and a literal ":array" suffix.
var arrayNamePattern = regexp.MustCompile(`^(?:[a-z0-9_]+:)?([a-z0-9_]+):array$`)

// StripName returns the significant portion of an array Name attribute.
// Names that do not follow the convention are returned unchanged.
func StripName(name string) string {
	if m := arrayNamePattern.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	return name
}

// CompareNames compares two array names after stripping, ordering them
// like strings.Compare.
func CompareNames(a, b string) int {
	return strings.Compare(StripName(a), StripName(b))
}

// FindByName returns the Array elements at or below root whose stripped
// name matches name, in document order.
func FindByName(root ligolw.Element, name string) []*Array {
	var out []*Array
	walk(root, func(e ligolw.Element) {
		if a, ok := e.(*Array); ok && CompareNames(a.Name(), name) == 0 {
			out = append(out, a)
		}
	})
	return out
}

// All returns every Array element in the document, in document order.
func All(doc *ligolw.Document) []*Array {
	var out []*Array
	for _, c := range doc.Children() {
		walk(c, func(e ligolw.Element) {
			if a, ok := e.(*Array); ok {
				out = append(out, a)
			}
		})
	}
	return out
}

func walk(e ligolw.Element, visit func(ligolw.Element)) {
	visit(e)
	for _, c := range e.Children() {
		walk(c, visit)
	}
}
