package tensor

// Float is a constraint for floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros[float64](Shape{3, 4}, backend)
func Zeros[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy), b.Device())
	if err != nil {
		panic(err) // Shape validation should prevent this
	}

	// Data is already zero-initialized by make()
	return New[T, B](raw, b)
}

// Ones creates a tensor filled with ones.
func Ones[T DType, B Backend](shape Shape, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()

	one := oneValue[T]()
	for i := range data {
		data[i] = one
	}
	return t
}

// Full creates a tensor filled with a specific value.
//
// Example:
//
//	t := tensor.Full[float64](Shape{3, 3}, 3.14, backend)
func Full[T DType, B Backend](shape Shape, value T, b B) *Tensor[T, B] {
	t := Zeros[T, B](shape, b)
	data := t.Data()
	for i := range data {
		data[i] = value
	}
	return t
}

// Arange creates a 1D tensor with consecutive values from start to end
// (exclusive), stepping by one.
//
// Example:
//
//	t := tensor.Arange[int64](0, 10, backend) // [0, 1, ..., 9]
func Arange[T Float | ~int32 | ~int64 | ~uint8, B Backend](start, end T, b B) *Tensor[T, B] {
	numElements := int(end - start)
	if numElements <= 0 {
		panic("arange: end must be greater than start")
	}

	t := Zeros[T, B](Shape{numElements}, b)
	data := t.Data()
	for i := range data {
		data[i] = start + T(i)
	}
	return t
}

// Linspace creates a 1D tensor of n evenly spaced values from start to stop
// inclusive. n must be at least 2 so the step is well defined.
//
// Example:
//
//	grid := tensor.Linspace[float64](0, math.Pi, 101, backend)
func Linspace[T Float, B Backend](start, stop T, n int, b B) *Tensor[T, B] {
	if n < 2 {
		panic("linspace: need at least two points")
	}

	t := Zeros[T, B](Shape{n}, b)
	data := t.Data()
	step := (stop - start) / T(n-1)
	for i := range data {
		data[i] = start + T(i)*step
	}
	// Pin the endpoint so accumulated rounding never overshoots stop.
	data[n-1] = stop
	return t
}

// oneValue returns the multiplicative identity for T (true for bool).
func oneValue[T DType]() T {
	var dummy T
	var one any
	switch any(dummy).(type) {
	case float32:
		one = float32(1)
	case float64:
		one = float64(1)
	case int32:
		one = int32(1)
	case int64:
		one = int64(1)
	case uint8:
		one = uint8(1)
	case bool:
		one = true
	}
	return one.(T)
}
