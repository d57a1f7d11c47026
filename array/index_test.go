package array

import (
	"slices"
	"testing"
)

func collect(o *odometer) [][]int {
	var out [][]int
	for {
		index, ok := o.Next()
		if !ok {
			return out
		}
		out = append(out, slices.Clone(index))
	}
}

func TestOdometerOrder(t *testing.T) {
	got := collect(newOdometer([]int{2, 3}))
	want := [][]int{
		{0, 0}, {1, 0},
		{0, 1}, {1, 1},
		{0, 2}, {1, 2},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d indices, want %d", len(got), len(want))
	}
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("index %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestOdometerExhaustionSticks(t *testing.T) {
	o := newOdometer([]int{2})
	collect(o)
	if _, ok := o.Next(); ok {
		t.Error("exhausted odometer yielded another index")
	}
	if _, ok := o.Next(); ok {
		t.Error("exhaustion did not stick")
	}
}

func TestOdometerZeroSizeDimension(t *testing.T) {
	o := newOdometer([]int{2, 0})
	if _, ok := o.Next(); ok {
		t.Error("zero-size dimension should exhaust immediately")
	}
}

func TestOdometerScalarShape(t *testing.T) {
	// No dimensions: a single degenerate index, then exhaustion.
	o := newOdometer(nil)
	if _, ok := o.Next(); !ok {
		t.Fatal("expected one index for the empty shape")
	}
	if _, ok := o.Next(); ok {
		t.Error("expected exhaustion after the single index")
	}
}

func TestOdometerRestartable(t *testing.T) {
	shape := []int{2, 2}
	first := collect(newOdometer(shape))
	second := collect(newOdometer(shape))
	if len(first) != len(second) {
		t.Fatalf("passes differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if !slices.Equal(first[i], second[i]) {
			t.Errorf("index %d differs between passes: %v vs %v", i, first[i], second[i])
		}
	}
}
