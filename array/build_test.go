package array

import (
	"errors"
	"strings"
	"testing"

	"github.com/dhamidi/ligolw"
)

func TestFromInt64s(t *testing.T) {
	a, err := FromInt64s("data:array", "int_4s", []int{2, 3},
		[]int64{1, 4, 2, 5, 3, 6}, WithDimNames("row", "col"))
	if err != nil {
		t.Fatalf("FromInt64s failed: %v", err)
	}

	t.Run("dims reversed from shape", func(t *testing.T) {
		dims, err := a.Dims()
		if err != nil {
			t.Fatalf("Dims failed: %v", err)
		}
		if len(dims) != 2 || dims[0] != 3 || dims[1] != 2 {
			t.Errorf("dims = %v, want [3 2]", dims)
		}
	})

	t.Run("dim names in declaration order", func(t *testing.T) {
		var names []string
		for _, c := range a.Children() {
			if c.TagName() == DimTag {
				name, _ := c.Attr("Name")
				names = append(names, name)
			}
		}
		if len(names) != 2 || names[0] != "row" || names[1] != "col" {
			t.Errorf("dim names = %v, want [row col]", names)
		}
	})

	t.Run("stream child is write-ready", func(t *testing.T) {
		s, ok := a.Children()[len(a.Children())-1].(*Stream)
		if !ok {
			t.Fatal("last child is not a Stream")
		}
		var b strings.Builder
		if err := s.Write(&b, ""); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		if typ, _ := s.Attr("Type"); typ != "Local" {
			t.Errorf("stream Type = %q, want Local", typ)
		}
	})

	t.Run("values copied, not aliased", func(t *testing.T) {
		values := []int64{1, 2}
		b, err := FromInt64s("data:array", "int_4s", []int{2}, values)
		if err != nil {
			t.Fatalf("FromInt64s failed: %v", err)
		}
		values[0] = 99
		if b.Data().Ints()[0] != 1 {
			t.Error("buffer aliases the caller's slice")
		}
	})
}

func TestFromInt64sErrors(t *testing.T) {
	if _, err := FromInt64s("a", "real_8", []int{1}, []int64{1}); err == nil {
		t.Error("expected error for float type with integer values")
	}
	if _, err := FromInt64s("a", "nope", []int{1}, []int64{1}); !errors.Is(err, ligolw.ErrUnknownType) {
		t.Errorf("got %v, want ErrUnknownType", err)
	}
	if _, err := FromInt64s("a", "int_4s", []int{2, 2}, []int64{1, 2}); err == nil {
		t.Error("expected error for shape/value count mismatch")
	}
	if _, err := FromInt64s("a", "int_4s", []int{2}, []int64{1, 2}, WithDimNames("x", "y")); err == nil {
		t.Error("expected error for dimension name count mismatch")
	}
}

func TestFromFloat64sErrors(t *testing.T) {
	if _, err := FromFloat64s("a", "int_4s", []int{1}, []float64{1}); err == nil {
		t.Error("expected error for integer type with float values")
	}
}
