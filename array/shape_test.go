package array

import (
	"slices"
	"testing"
)

func TestShapeFromDims(t *testing.T) {
	got := ShapeFromDims([]int{3, 2})
	if want := []int{2, 3}; !slices.Equal(got, want) {
		t.Errorf("ShapeFromDims([3 2]) = %v, want %v", got, want)
	}
}

func TestShapeDuality(t *testing.T) {
	cases := [][]int{
		nil,
		{5},
		{3, 2},
		{4, 1, 2},
		{0, 3},
	}
	for _, dims := range cases {
		shape := ShapeFromDims(dims)
		if got := DimsFromShape(shape); !slices.Equal(got, dims) {
			t.Errorf("DimsFromShape(ShapeFromDims(%v)) = %v", dims, got)
		}
		if got := ShapeFromDims(DimsFromShape(shape)); !slices.Equal(got, shape) {
			t.Errorf("ShapeFromDims(DimsFromShape(%v)) = %v", shape, got)
		}
	}
}

func TestSize(t *testing.T) {
	cases := []struct {
		shape []int
		want  int
	}{
		{nil, 1},
		{[]int{4}, 4},
		{[]int{2, 3}, 6},
		{[]int{2, 0, 3}, 0},
	}
	for _, tc := range cases {
		if got := size(tc.shape); got != tc.want {
			t.Errorf("size(%v) = %d, want %d", tc.shape, got, tc.want)
		}
	}
}
