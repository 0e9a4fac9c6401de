package cpu

import (
	"testing"

	"github.com/quadra-ml/quadra/internal/tensor"
)

func TestSliceDim(t *testing.T) {
	backend := New()
	// 2x3x2 tensor with values 0..11.
	data := make([]float64, 12)
	for i := range data {
		data[i] = float64(i)
	}
	x := rawFloat64(t, data, tensor.Shape{2, 3, 2})

	cases := []struct {
		name       string
		dim        int
		start, end int
		wantShape  tensor.Shape
		want       []float64
	}{
		{"middle dim", 1, 1, 3, tensor.Shape{2, 2, 2}, []float64{2, 3, 4, 5, 8, 9, 10, 11}},
		{"negative end", 1, 0, -1, tensor.Shape{2, 2, 2}, []float64{0, 1, 2, 3, 6, 7, 8, 9}},
		{"first dim", 0, 1, 2, tensor.Shape{1, 3, 2}, []float64{6, 7, 8, 9, 10, 11}},
		{"last dim", 2, 1, 2, tensor.Shape{2, 3, 1}, []float64{1, 3, 5, 7, 9, 11}},
		{"negative start", 1, -2, 3, tensor.Shape{2, 2, 2}, []float64{2, 3, 4, 5, 8, 9, 10, 11}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assertFloat64(t, backend.SliceDim(x, c.dim, c.start, c.end), c.wantShape, c.want)
		})
	}
}

func TestSliceDimClamps(t *testing.T) {
	backend := New()
	x := rawFloat64(t, []float64{0, 1, 2}, tensor.Shape{3})

	// Bounds past the extent clamp rather than panic.
	got := backend.SliceDim(x, 0, 2, 10)
	assertFloat64(t, got, tensor.Shape{1}, []float64{2})

	// Inverted bounds produce an empty result.
	empty := backend.SliceDim(x, 0, 2, 1)
	if !empty.Shape().Equal(tensor.Shape{0}) {
		t.Errorf("shape = %v, want [0]", empty.Shape())
	}
}

func TestSliceDimEmptyDimension(t *testing.T) {
	backend := New()
	raw, err := tensor.NewRaw(tensor.Shape{0, 3}, tensor.Float64, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}

	got := backend.SliceDim(raw, 0, 0, -1)
	if !got.Shape().Equal(tensor.Shape{0, 3}) {
		t.Errorf("shape = %v, want [0 3]", got.Shape())
	}
}

func TestSelect(t *testing.T) {
	backend := New()
	x := rawFloat64(t, []float64{0, 1, 2, 3, 4, 5}, tensor.Shape{2, 3})

	assertFloat64(t, backend.Select(x, 0, 1), tensor.Shape{3}, []float64{3, 4, 5})
	assertFloat64(t, backend.Select(x, 1, 0), tensor.Shape{2}, []float64{0, 3})
	assertFloat64(t, backend.Select(x, 1, -1), tensor.Shape{2}, []float64{2, 5})
}

func TestSelectOutOfRangePanics(t *testing.T) {
	backend := New()
	x := rawFloat64(t, []float64{0, 1, 2}, tensor.Shape{3})

	defer func() {
		if recover() == nil {
			t.Error("expected panic on out-of-range index")
		}
	}()
	backend.Select(x, 0, 3)
}

func TestClampSliceBounds(t *testing.T) {
	cases := []struct {
		start, end, extent int
		wantStart, wantEnd int
	}{
		{0, 5, 5, 0, 5},
		{0, -1, 5, 0, 4},
		{-2, 5, 5, 3, 5},
		{3, 10, 5, 3, 5},
		{-10, 2, 5, 0, 2},
		{4, 2, 5, 4, 4},
		{0, -1, 0, 0, 0},
	}
	for _, c := range cases {
		s, e := clampSliceBounds(c.start, c.end, c.extent)
		if s != c.wantStart || e != c.wantEnd {
			t.Errorf("clampSliceBounds(%d, %d, %d) = (%d, %d), want (%d, %d)",
				c.start, c.end, c.extent, s, e, c.wantStart, c.wantEnd)
		}
	}
}
