package tensor

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	a := tensor.Ones[float64](Shape{3, 1}, backend)
//	b := tensor.Ones[float64](Shape{3, 5}, backend)
//	c := a.Add(b) // Shape: [3, 5] (broadcast)
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Add(t.raw, other.raw), t.backend)
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Sub(t.raw, other.raw), t.backend)
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Mul(t.raw, other.raw), t.backend)
}

// Div performs element-wise division with broadcasting.
func (t *Tensor[T, B]) Div(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Div(t.raw, other.raw), t.backend)
}

// AddScalar adds a scalar to every element.
func (t *Tensor[T, B]) AddScalar(scalar any) *Tensor[T, B] {
	return New[T, B](t.backend.AddScalar(t.raw, scalar), t.backend)
}

// SubScalar subtracts a scalar from every element.
func (t *Tensor[T, B]) SubScalar(scalar any) *Tensor[T, B] {
	return New[T, B](t.backend.SubScalar(t.raw, scalar), t.backend)
}

// MulScalar multiplies every element by a scalar.
func (t *Tensor[T, B]) MulScalar(scalar any) *Tensor[T, B] {
	return New[T, B](t.backend.MulScalar(t.raw, scalar), t.backend)
}

// DivScalar divides every element by a scalar.
func (t *Tensor[T, B]) DivScalar(scalar any) *Tensor[T, B] {
	return New[T, B](t.backend.DivScalar(t.raw, scalar), t.backend)
}

// Reshape returns a tensor with the same data and a new shape.
// The new shape must have the same number of elements.
//
// Example:
//
//	t := tensor.Arange[int64](0, 12, backend) // Shape: [12]
//	m := t.Reshape(3, 4)                      // Shape: [3, 4]
func (t *Tensor[T, B]) Reshape(newShape ...int) *Tensor[T, B] {
	return New[T, B](t.backend.Reshape(t.raw, Shape(newShape)), t.backend)
}

// SliceDim returns the half-open range [start, end) along dim.
// Negative indices count from the end of the dimension and out-of-range
// bounds are clamped, so slicing an empty dimension yields an empty result
// rather than a panic.
//
// Example:
//
//	t := tensor.Arange[float64](0, 6, backend).Reshape(2, 3)
//	u := t.SliceDim(1, 0, -1) // Shape: [2, 2], drops the last column
func (t *Tensor[T, B]) SliceDim(dim, start, end int) *Tensor[T, B] {
	return New[T, B](t.backend.SliceDim(t.raw, dim, start, end), t.backend)
}

// Select returns the sub-tensor at index along dim, with dim removed.
// A negative index counts from the end.
func (t *Tensor[T, B]) Select(dim, index int) *Tensor[T, B] {
	return New[T, B](t.backend.Select(t.raw, dim, index), t.backend)
}

// SumDim sums along dim, keeping the reduced dimension when keepDim is set.
func (t *Tensor[T, B]) SumDim(dim int, keepDim bool) *Tensor[T, B] {
	return New[T, B](t.backend.SumDim(t.raw, dim, keepDim), t.backend)
}

// CumsumDim computes the running sum along dim.
func (t *Tensor[T, B]) CumsumDim(dim int) *Tensor[T, B] {
	return New[T, B](t.backend.CumsumDim(t.raw, dim), t.backend)
}
