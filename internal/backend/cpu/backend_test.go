package cpu

import (
	"testing"

	"github.com/quadra-ml/quadra/internal/tensor"
)

func rawFloat64(t *testing.T, data []float64, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Float64, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	copy(raw.AsFloat64(), data)
	return raw
}

func rawInt32(t *testing.T, data []int32, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape, tensor.Int32, tensor.CPU)
	if err != nil {
		t.Fatalf("NewRaw: %v", err)
	}
	copy(raw.AsInt32(), data)
	return raw
}

func assertFloat64(t *testing.T, got *tensor.RawTensor, wantShape tensor.Shape, want []float64) {
	t.Helper()
	if !got.Shape().Equal(wantShape) {
		t.Fatalf("shape = %v, want %v", got.Shape(), wantShape)
	}
	data := got.AsFloat64()
	for i := range want {
		if data[i] != want[i] {
			t.Errorf("element %d = %v, want %v", i, data[i], want[i])
		}
	}
}

func TestAddSameShape(t *testing.T) {
	backend := New()
	a := rawFloat64(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := rawFloat64(t, []float64{10, 20, 30, 40}, tensor.Shape{2, 2})

	assertFloat64(t, backend.Add(a, b), tensor.Shape{2, 2}, []float64{11, 22, 33, 44})
}

func TestSubMulDiv(t *testing.T) {
	backend := New()
	a := rawFloat64(t, []float64{4, 9, 16, 25}, tensor.Shape{4})
	b := rawFloat64(t, []float64{2, 3, 4, 5}, tensor.Shape{4})

	assertFloat64(t, backend.Sub(a, b), tensor.Shape{4}, []float64{2, 6, 12, 20})
	assertFloat64(t, backend.Mul(a, b), tensor.Shape{4}, []float64{8, 27, 64, 125})
	assertFloat64(t, backend.Div(a, b), tensor.Shape{4}, []float64{2, 3, 4, 5})
}

func TestAddBroadcast(t *testing.T) {
	backend := New()
	a := rawFloat64(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	row := rawFloat64(t, []float64{10, 20, 30}, tensor.Shape{1, 3})
	col := rawFloat64(t, []float64{100, 200}, tensor.Shape{2, 1})

	assertFloat64(t, backend.Add(a, row), tensor.Shape{2, 3}, []float64{11, 22, 33, 14, 25, 36})
	assertFloat64(t, backend.Add(a, col), tensor.Shape{2, 3}, []float64{101, 102, 103, 204, 205, 206})
}

func TestMulBroadcastLowerRank(t *testing.T) {
	backend := New()
	a := rawFloat64(t, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	v := rawFloat64(t, []float64{2, 3, 4}, tensor.Shape{3})

	assertFloat64(t, backend.Mul(a, v), tensor.Shape{2, 3}, []float64{2, 6, 12, 8, 15, 24})
}

func TestBinaryInt32(t *testing.T) {
	backend := New()
	a := rawInt32(t, []int32{1, 2, 3}, tensor.Shape{3})
	b := rawInt32(t, []int32{4, 5, 6}, tensor.Shape{3})

	got := backend.Add(a, b).AsInt32()
	want := []int32{5, 7, 9}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBinaryMismatchedDTypePanics(t *testing.T) {
	backend := New()
	a := rawFloat64(t, []float64{1}, tensor.Shape{1})
	b := rawInt32(t, []int32{1}, tensor.Shape{1})

	defer func() {
		if recover() == nil {
			t.Error("expected panic on mismatched dtypes")
		}
	}()
	backend.Add(a, b)
}

func TestBinaryIncompatibleShapesPanics(t *testing.T) {
	backend := New()
	a := rawFloat64(t, []float64{1, 2, 3}, tensor.Shape{3})
	b := rawFloat64(t, []float64{1, 2}, tensor.Shape{2})

	defer func() {
		if recover() == nil {
			t.Error("expected panic on incompatible shapes")
		}
	}()
	backend.Add(a, b)
}

func TestScalarOps(t *testing.T) {
	backend := New()
	x := rawFloat64(t, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})

	assertFloat64(t, backend.AddScalar(x, 1.5), tensor.Shape{2, 2}, []float64{2.5, 3.5, 4.5, 5.5})
	assertFloat64(t, backend.SubScalar(x, 1.0), tensor.Shape{2, 2}, []float64{0, 1, 2, 3})
	assertFloat64(t, backend.MulScalar(x, 0.5), tensor.Shape{2, 2}, []float64{0.5, 1, 1.5, 2})
	assertFloat64(t, backend.DivScalar(x, 2.0), tensor.Shape{2, 2}, []float64{0.5, 1, 1.5, 2})
}

func TestScalarOpsIntTruncation(t *testing.T) {
	backend := New()
	x := rawInt32(t, []int32{1, 2, 3}, tensor.Shape{3})

	// The scalar itself truncates to the element type, so a fractional
	// scalar against an integer tensor truncates before the multiply.
	got := backend.MulScalar(x, 0.5).AsInt32()
	want := []int32{0, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestReshape(t *testing.T) {
	backend := New()
	x := rawFloat64(t, []float64{0, 1, 2, 3, 4, 5}, tensor.Shape{6})

	assertFloat64(t, backend.Reshape(x, tensor.Shape{2, 3}), tensor.Shape{2, 3}, []float64{0, 1, 2, 3, 4, 5})
}

func TestReshapeElementCountPanics(t *testing.T) {
	backend := New()
	x := rawFloat64(t, []float64{0, 1, 2}, tensor.Shape{3})

	defer func() {
		if recover() == nil {
			t.Error("expected panic on element count mismatch")
		}
	}()
	backend.Reshape(x, tensor.Shape{2, 2})
}
