package array

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/dhamidi/ligolw"
	"github.com/dhamidi/ligolw/tokenizer"
)

// ErrTooManyValues reports more stream tokens than the declared
// dimensions can hold. Too few tokens is not an error: unfilled positions
// keep the zero value.
var ErrTooManyValues = errors.New("too many values in Array")

// streamState tracks a Stream's progress through a parse.
type streamState int

const (
	// stateEmpty: no character data seen, no storage allocated.
	stateEmpty streamState = iota
	// stateAllocated: storage allocated, tokens being placed.
	stateAllocated
	// stateComplete: end tag seen, pending token flushed.
	stateComplete
)

// Stream is the Array child whose character data holds the delimited
// values. The data may arrive in any number of chunks; storage is
// allocated on the first one, by which time the Dim children are in
// place.
type Stream struct {
	ligolw.Elem
	state  streamState
	tok    *tokenizer.Tokenizer
	cursor *odometer
	data   *Data
	filled int
}

// NewStream constructs a Stream element for use inside an Array.
func NewStream(attrs []ligolw.Attribute) *Stream {
	return &Stream{Elem: *ligolw.NewElem(StreamTag, attrs)}
}

// Delimiter returns the configured token separator, defaulting to a
// single space.
func (s *Stream) Delimiter() string {
	if v, ok := s.Attr("Delimiter"); ok && v != "" {
		return v
	}
	return " "
}

func (s *Stream) array() (*Array, error) {
	a, ok := s.Parent().(*Array)
	if !ok {
		return nil, fmt.Errorf("Stream element outside Array")
	}
	return a, nil
}

func (s *Stream) allocate() error {
	a, err := s.array()
	if err != nil {
		return err
	}
	shape, err := a.Shape()
	if err != nil {
		return err
	}
	a.data = NewData(a.Family(), size(shape))
	s.data = a.data
	s.tok = tokenizer.New(s.Delimiter())
	s.tok.SetFamily(a.Family())
	s.cursor = newOdometer(shape)
	s.state = stateAllocated
	return nil
}

// AppendData parses the next chunk of character data into the parent
// array's buffer. Tokens are consumed in document order and placed in
// odometer order, which lays them out sequentially in the flat buffer.
func (s *Stream) AppendData(text string) error {
	if s.state == stateEmpty {
		if err := s.allocate(); err != nil {
			return err
		}
	}
	tokens, err := s.tok.Feed(text)
	if err != nil {
		return err
	}
	for _, tk := range tokens {
		if _, ok := s.cursor.Next(); !ok {
			a, _ := s.array()
			return fmt.Errorf("array %q: %w", a.Name(), ErrTooManyValues)
		}
		s.data.set(s.filled, tk)
		s.filled++
	}
	return nil
}

// EndOfElement feeds one trailing delimiter so the tokenizer releases its
// final withheld token, then seals the stream. A stream that never saw
// any data still allocates here, yielding a zero-filled array.
func (s *Stream) EndOfElement() error {
	if s.state == stateComplete {
		return nil
	}
	if err := s.AppendData(s.Delimiter()); err != nil {
		return err
	}
	s.state = stateComplete
	return nil
}

// Unlink releases the parse-time scratch state along with the tree links.
func (s *Stream) Unlink() {
	s.tok = nil
	s.cursor = nil
	s.data = nil
	s.state = stateEmpty
	s.filled = 0
	s.Elem.Unlink()
}

// Write serializes the parent array's buffer as delimited text. A line
// break is inserted each time the fastest dimension wraps back to zero;
// the final value carries no trailing delimiter, and an empty array
// produces a single line break.
func (s *Stream) Write(w io.Writer, indent string) error {
	a, err := s.array()
	if err != nil {
		return err
	}
	d := a.Data()
	if d == nil {
		return fmt.Errorf("array %q has no data", a.Name())
	}
	shape, err := a.Shape()
	if err != nil {
		return err
	}
	if d.Len() != size(shape) {
		return fmt.Errorf("array %q: buffer holds %d values, shape %v needs %d",
			a.Name(), d.Len(), shape, size(shape))
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(ligolw.StartTag(s, indent))
	bw.WriteString("\n")

	delim := s.Delimiter()
	cursor := newOdometer(shape)
	if _, ok := cursor.Next(); !ok {
		bw.WriteString("\n")
	} else {
		bw.WriteString(indent + ligolw.Indent)
		for i := 0; ; i++ {
			bw.WriteString(d.format(i))
			index, ok := cursor.Next()
			if !ok {
				bw.WriteString("\n")
				break
			}
			bw.WriteString(delim)
			if index[0] == 0 {
				bw.WriteString("\n" + indent + ligolw.Indent)
			}
		}
	}

	bw.WriteString(ligolw.EndTag(s, indent))
	bw.WriteString("\n")
	return bw.Flush()
}
