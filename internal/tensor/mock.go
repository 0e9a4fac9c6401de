package tensor

import "fmt"

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple backend for testing.
// Every operation is implemented naively through float64, trading speed
// for obvious correctness.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// Add performs element-wise addition with broadcasting.
func (m *MockBackend) Add(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (m *MockBackend) Sub(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (m *MockBackend) Mul(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with broadcasting.
func (m *MockBackend) Div(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x / y })
}

// AddScalar adds a scalar to every element.
func (m *MockBackend) AddScalar(x *RawTensor, scalar any) *RawTensor {
	s := scalarToFloat64(scalar)
	return m.unary(x, func(v float64) float64 { return v + s })
}

// SubScalar subtracts a scalar from every element.
func (m *MockBackend) SubScalar(x *RawTensor, scalar any) *RawTensor {
	s := scalarToFloat64(scalar)
	return m.unary(x, func(v float64) float64 { return v - s })
}

// MulScalar multiplies every element by a scalar.
func (m *MockBackend) MulScalar(x *RawTensor, scalar any) *RawTensor {
	s := scalarToFloat64(scalar)
	return m.unary(x, func(v float64) float64 { return v * s })
}

// DivScalar divides every element by a scalar.
func (m *MockBackend) DivScalar(x *RawTensor, scalar any) *RawTensor {
	s := scalarToFloat64(scalar)
	return m.unary(x, func(v float64) float64 { return v / s })
}

// Reshape changes the tensor shape, keeping element order.
func (m *MockBackend) Reshape(t *RawTensor, newShape Shape) *RawTensor {
	result, err := t.WithShape(newShape)
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	return result
}

// SliceDim returns the half-open range [start, end) along dim.
func (m *MockBackend) SliceDim(t *RawTensor, dim, start, end int) *RawTensor {
	shape := t.Shape()
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("slicedim: dimension %d out of range for %dD tensor", dim, len(shape)))
	}
	start, end = clampSliceBounds(start, end, shape[dim])

	outShape := shape.Clone()
	outShape[dim] = end - start
	result, err := NewRaw(outShape, t.DType(), m.Device())
	if err != nil {
		panic(fmt.Sprintf("slicedim: %v", err))
	}

	in := m.toFloat64Slice(t)
	out := m.toFloat64Slice(result)
	strides := shape.ComputeStrides()
	outStrides := outShape.ComputeStrides()
	for i := range out {
		// Walk the output coordinates, offsetting the sliced dimension.
		inIdx := 0
		rem := i
		for d := range outShape {
			coord := rem / outStrides[d]
			rem %= outStrides[d]
			if d == dim {
				coord += start
			}
			inIdx += coord * strides[d]
		}
		out[i] = in[inIdx]
	}
	m.fromFloat64Slice(out, result)
	return result
}

// Select returns the sub-tensor at index along dim, removing dim.
func (m *MockBackend) Select(t *RawTensor, dim, index int) *RawTensor {
	shape := t.Shape()
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("select: dimension %d out of range for %dD tensor", dim, len(shape)))
	}
	if index < 0 {
		index += shape[dim]
	}
	if index < 0 || index >= shape[dim] {
		panic(fmt.Sprintf("select: index %d out of range for extent %d", index, shape[dim]))
	}

	sliced := m.SliceDim(t, dim, index, index+1)
	outShape := make(Shape, 0, len(shape)-1)
	for d, ext := range shape {
		if d != dim {
			outShape = append(outShape, ext)
		}
	}
	return m.Reshape(sliced, outShape)
}

// SumDim sums along dim.
func (m *MockBackend) SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor {
	shape := x.Shape()
	ndim := len(shape)
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("sumdim: dimension %d out of range for %dD tensor", dim, ndim))
	}

	var outShape Shape
	if keepDim {
		outShape = shape.Clone()
		outShape[dim] = 1
	} else {
		outShape = make(Shape, 0, ndim-1)
		for i, ext := range shape {
			if i != dim {
				outShape = append(outShape, ext)
			}
		}
	}

	result, err := NewRaw(outShape, x.DType(), m.Device())
	if err != nil {
		panic(fmt.Sprintf("sumdim: %v", err))
	}

	in := m.toFloat64Slice(x)
	out := make([]float64, outShape.NumElements())
	strides := shape.ComputeStrides()

	keptShape := shape.Clone()
	keptShape[dim] = 1
	keptStrides := keptShape.ComputeStrides()

	for i := range in {
		outIdx := 0
		rem := i
		for d := 0; d < ndim; d++ {
			coord := rem / strides[d]
			rem %= strides[d]
			if d != dim {
				outIdx += coord * keptStrides[d]
			}
		}
		out[outIdx] += in[i]
	}
	m.fromFloat64Slice(out, result)
	return result
}

// CumsumDim computes the running sum along dim.
func (m *MockBackend) CumsumDim(x *RawTensor, dim int) *RawTensor {
	shape := x.Shape()
	ndim := len(shape)
	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("cumsum: dimension %d out of range for %dD tensor", dim, ndim))
	}

	result, err := NewRaw(shape, x.DType(), m.Device())
	if err != nil {
		panic(fmt.Sprintf("cumsum: %v", err))
	}

	in := m.toFloat64Slice(x)
	out := make([]float64, len(in))
	strides := shape.ComputeStrides()
	for i := range in {
		coord := (i / strides[dim]) % shape[dim]
		if coord == 0 {
			out[i] = in[i]
		} else {
			out[i] = out[i-strides[dim]] + in[i]
		}
	}
	m.fromFloat64Slice(out, result)
	return result
}

// Helper functions

func (m *MockBackend) elementWise(a, b *RawTensor, op func(float64, float64) float64) *RawTensor {
	outShape, _, err := BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(err)
	}

	result, err := NewRaw(outShape, a.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	aData := m.toFloat64Slice(a)
	bData := m.toFloat64Slice(b)
	resultData := make([]float64, outShape.NumElements())

	for i := range resultData {
		aIdx := m.broadcastIndex(i, outShape, a.Shape())
		bIdx := m.broadcastIndex(i, outShape, b.Shape())
		resultData[i] = op(aData[aIdx], bData[bIdx])
	}

	m.fromFloat64Slice(resultData, result)
	return result
}

func (m *MockBackend) unary(x *RawTensor, op func(float64) float64) *RawTensor {
	result, err := NewRaw(x.Shape(), x.DType(), m.Device())
	if err != nil {
		panic(err)
	}
	data := m.toFloat64Slice(x)
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = op(v)
	}
	m.fromFloat64Slice(out, result)
	return result
}

func (m *MockBackend) toFloat64Slice(t *RawTensor) []float64 {
	switch t.DType() {
	case Float32:
		src := t.AsFloat32()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	case Float64:
		return t.AsFloat64()
	case Int32:
		src := t.AsInt32()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	case Int64:
		src := t.AsInt64()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	case Uint8:
		src := t.AsUint8()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	default:
		panic(fmt.Sprintf("unsupported dtype: %s", t.DType()))
	}
}

func (m *MockBackend) fromFloat64Slice(src []float64, t *RawTensor) {
	switch t.DType() {
	case Float32:
		dst := t.AsFloat32()
		for i, v := range src {
			dst[i] = float32(v)
		}
	case Float64:
		copy(t.AsFloat64(), src)
	case Int32:
		dst := t.AsInt32()
		for i, v := range src {
			dst[i] = int32(v)
		}
	case Int64:
		dst := t.AsInt64()
		for i, v := range src {
			dst[i] = int64(v)
		}
	case Uint8:
		dst := t.AsUint8()
		for i, v := range src {
			dst[i] = uint8(v)
		}
	}
}

func (m *MockBackend) broadcastIndex(flatIdx int, outShape, inShape Shape) int {
	outStrides := outShape.ComputeStrides()
	indices := make([]int, len(outShape))

	temp := flatIdx
	for i := range outShape {
		indices[i] = temp / outStrides[i]
		temp %= outStrides[i]
	}

	inStrides := inShape.ComputeStrides()
	inIdx := 0

	offset := len(outShape) - len(inShape)
	for i := range inShape {
		outDimIdx := indices[offset+i]
		if inShape[i] == 1 {
			outDimIdx = 0
		}
		inIdx += outDimIdx * inStrides[i]
	}

	return inIdx
}

// clampSliceBounds wraps negative slice indices and clamps both bounds to
// [0, extent], so the result extent is never negative.
func clampSliceBounds(start, end, extent int) (int, int) {
	if start < 0 {
		start += extent
	}
	if end < 0 {
		end += extent
	}
	start = min(max(start, 0), extent)
	end = min(max(end, 0), extent)
	if end < start {
		end = start
	}
	return start, end
}

// scalarToFloat64 coerces a numeric scalar of any width to float64.
// Bool and complex scalars are not numeric here and panic.
func scalarToFloat64(scalar any) float64 {
	switch v := scalar.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint8:
		return float64(v)
	default:
		panic(fmt.Sprintf("unsupported scalar type %T", scalar))
	}
}
