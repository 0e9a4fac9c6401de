package tensor

// Backend is the minimal compute interface the rest of Quadra is written
// against. Any array backend that can slice along an axis, combine tensors
// elementwise with broadcasting, reduce or prefix-sum along an axis, and
// build zero-filled tensors can drive the integration routines.
//
// Backend methods panic on programmer error (incompatible shapes, dtypes
// the backend does not support). Input validation with recoverable errors
// happens a layer above, in the packages that call into the backend.
type Backend interface {
	// Elementwise binary operations with NumPy-style broadcasting.
	// Operands must share a dtype; the result uses the broadcast shape.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// Elementwise operations against a scalar. The scalar is coerced to
	// the tensor's element type.
	AddScalar(x *RawTensor, scalar any) *RawTensor
	SubScalar(x *RawTensor, scalar any) *RawTensor
	MulScalar(x *RawTensor, scalar any) *RawTensor
	DivScalar(x *RawTensor, scalar any) *RawTensor

	// Reshape returns a tensor with the same elements and a new shape.
	Reshape(t *RawTensor, newShape Shape) *RawTensor

	// SliceDim returns the half-open range [start, end) along dim.
	// Negative start/end count from the end of the dimension; both are
	// clamped to the dimension's extent. All other dimensions are kept.
	SliceDim(t *RawTensor, dim, start, end int) *RawTensor

	// Select returns the sub-tensor at the given index along dim, with
	// dim removed from the result's shape. A negative index counts from
	// the end.
	Select(t *RawTensor, dim, index int) *RawTensor

	// SumDim sums along dim. With keepDim the reduced dimension is kept
	// with extent 1, otherwise it is removed.
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor

	// CumsumDim computes the running (prefix) sum along dim. The result
	// has the same shape as the input.
	CumsumDim(x *RawTensor, dim int) *RawTensor

	// Metadata.
	Name() string
	Device() Device
}
