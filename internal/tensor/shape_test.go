package tensor

import "testing"

func TestShapeNumElements(t *testing.T) {
	cases := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{4}, 4},
		{Shape{2, 3, 4}, 24},
		{Shape{2, 0, 3}, 0},
	}
	for _, c := range cases {
		if got := c.shape.NumElements(); got != c.want {
			t.Errorf("NumElements(%v) = %d, want %d", c.shape, got, c.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 0, 3}).Validate(); err != nil {
		t.Errorf("zero extents should be valid, got %v", err)
	}
	if err := (Shape{2, -1}).Validate(); err == nil {
		t.Error("negative extent should be invalid")
	}
}

func TestShapeComputeStrides(t *testing.T) {
	strides := Shape{2, 3, 4}.ComputeStrides()
	want := []int{12, 4, 1}
	for i := range want {
		if strides[i] != want[i] {
			t.Fatalf("strides = %v, want %v", strides, want)
		}
	}

	if got := (Shape{}).ComputeStrides(); len(got) != 0 {
		t.Errorf("scalar strides = %v, want empty", got)
	}
}

func TestBroadcastShapes(t *testing.T) {
	cases := []struct {
		a, b  Shape
		want  Shape
		needs bool
	}{
		{Shape{3, 1}, Shape{3, 5}, Shape{3, 5}, true},
		{Shape{1, 5}, Shape{3, 5}, Shape{3, 5}, true},
		{Shape{3, 5}, Shape{3, 5}, Shape{3, 5}, false},
		{Shape{5}, Shape{2, 5}, Shape{2, 5}, true},
		{Shape{1, 1, 4}, Shape{2, 3, 4}, Shape{2, 3, 4}, true},
	}
	for _, c := range cases {
		got, needs, err := BroadcastShapes(c.a, c.b)
		if err != nil {
			t.Fatalf("BroadcastShapes(%v, %v): %v", c.a, c.b, err)
		}
		if !got.Equal(c.want) || needs != c.needs {
			t.Errorf("BroadcastShapes(%v, %v) = %v/%v, want %v/%v", c.a, c.b, got, needs, c.want, c.needs)
		}
	}

	if _, _, err := BroadcastShapes(Shape{3, 4}, Shape{3, 5}); err == nil {
		t.Error("incompatible shapes should fail")
	}
}
