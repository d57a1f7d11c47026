// Package tokenizer splits delimited character data into typed scalar
// tokens. The tokenizer is stateful: text may be fed in arbitrary chunks,
// and a token is only emitted once its terminating delimiter has been
// seen, so a trailing partial token is carried over between calls.
package tokenizer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dhamidi/ligolw"
)

// Scalar is a single typed token. Exactly one of Int or Float is
// meaningful, selected by Family.
type Scalar struct {
	Family ligolw.Family
	Int    int64
	Float  float64
}

// Tokenizer incrementally splits text on a delimiter and casts each
// complete token to the configured scalar family. Because a token is
// withheld until its delimiter arrives, callers must feed one final
// delimiter after the last chunk to flush the last value.
type Tokenizer struct {
	delim   string
	family  ligolw.Family
	pending []byte
}

// New constructs a tokenizer for the given delimiter. An empty delimiter
// falls back to a single space.
func New(delim string) *Tokenizer {
	if delim == "" {
		delim = " "
	}
	return &Tokenizer{delim: delim}
}

// SetFamily configures the scalar family tokens are cast to.
func (t *Tokenizer) SetFamily(f ligolw.Family) { t.family = f }

// Feed consumes the next chunk of text and returns the tokens it
// completed. Whitespace around a token is ignored, and tokens that are
// empty after trimming are skipped: cosmetic line breaks in the input and
// the final flush delimiter must not produce phantom values.
func (t *Tokenizer) Feed(chunk string) ([]Scalar, error) {
	buf := string(t.pending) + chunk
	parts := strings.Split(buf, t.delim)
	t.pending = append(t.pending[:0], parts[len(parts)-1]...)
	parts = parts[:len(parts)-1]

	var out []Scalar
	for _, raw := range parts {
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		s, err := t.cast(text)
		if err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (t *Tokenizer) cast(text string) (Scalar, error) {
	switch t.family {
	case ligolw.IntegerFamily:
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Scalar{}, fmt.Errorf("cast %q as integer: %w", text, err)
		}
		return Scalar{Family: t.family, Int: v}, nil
	default:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Scalar{}, fmt.Errorf("cast %q as float: %w", text, err)
		}
		return Scalar{Family: t.family, Float: v}, nil
	}
}
