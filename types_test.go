package ligolw

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name   string
		family Family
	}{
		{"int_2s", IntegerFamily},
		{"int_2u", IntegerFamily},
		{"int_4s", IntegerFamily},
		{"int_4u", IntegerFamily},
		{"int_8s", IntegerFamily},
		{"int_8u", IntegerFamily},
		{"real_4", FloatFamily},
		{"real_8", FloatFamily},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			family, err := Classify(tc.name)
			if err != nil {
				t.Fatalf("Classify(%q) failed: %v", tc.name, err)
			}
			if family != tc.family {
				t.Errorf("Classify(%q) = %v, want %v", tc.name, family, tc.family)
			}
		})
	}
}

func TestClassifyUnknown(t *testing.T) {
	_, err := Classify("complex_16")
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("Classify(complex_16) = %v, want ErrUnknownType", err)
	}
}

func TestTypeName(t *testing.T) {
	cases := []struct {
		value any
		name  string
	}{
		{int16(0), "int_2s"},
		{uint16(0), "int_2u"},
		{int32(0), "int_4s"},
		{uint32(0), "int_4u"},
		{int64(0), "int_8s"},
		{uint64(0), "int_8u"},
		{float32(0), "real_4"},
		{float64(0), "real_8"},
	}
	for _, tc := range cases {
		name, err := TypeName(tc.value)
		if err != nil {
			t.Fatalf("TypeName(%T) failed: %v", tc.value, err)
		}
		if name != tc.name {
			t.Errorf("TypeName(%T) = %q, want %q", tc.value, name, tc.name)
		}
	}
}

func TestTypeNameUnknown(t *testing.T) {
	_, err := TypeName("not a scalar")
	if !errors.Is(err, ErrUnknownType) {
		t.Fatalf("TypeName(string) = %v, want ErrUnknownType", err)
	}
}
