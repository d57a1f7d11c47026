package ligolw

import (
	"errors"
	"fmt"
)

// Family classifies a LIGO LW type name by its in-memory representation.
type Family int

const (
	IntegerFamily Family = iota
	FloatFamily
)

func (f Family) String() string {
	switch f {
	case IntegerFamily:
		return "integer"
	case FloatFamily:
		return "float"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// ErrUnknownType reports a Type attribute naming no known LIGO LW type.
var ErrUnknownType = errors.New("unknown LIGO LW type")

var typeFamilies = map[string]Family{
	"int_2s": IntegerFamily,
	"int_2u": IntegerFamily,
	"int_4s": IntegerFamily,
	"int_4u": IntegerFamily,
	"int_8s": IntegerFamily,
	"int_8u": IntegerFamily,
	"real_4": FloatFamily,
	"real_8": FloatFamily,
}

// Classify maps a declared type name to its storage family.
func Classify(name string) (Family, error) {
	f, ok := typeFamilies[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return f, nil
}

// TypeName returns the canonical LIGO LW type name for a Go scalar value,
// the inverse of the Classify mapping at the granularity Go can express.
func TypeName(v any) (string, error) {
	switch v.(type) {
	case int16:
		return "int_2s", nil
	case uint16:
		return "int_2u", nil
	case int32:
		return "int_4s", nil
	case uint32:
		return "int_4u", nil
	case int, int64:
		return "int_8s", nil
	case uint, uint64:
		return "int_8u", nil
	case float32:
		return "real_4", nil
	case float64:
		return "real_8", nil
	default:
		return "", fmt.Errorf("%w: no type name for %T", ErrUnknownType, v)
	}
}
