package cpu

import (
	"github.com/quadra-ml/quadra/internal/parallel"
	"github.com/quadra-ml/quadra/internal/tensor"
)

// number covers the arithmetic element types the CPU kernels operate on.
// Bool tensors have no arithmetic and are rejected at dispatch.
type number interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

// binOp selects the arithmetic applied by a kernel.
type binOp int

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
)

// runBinary executes an element-wise binary kernel. When both operands
// share the output shape the kernel runs over flat slices, in parallel for
// large tensors. Otherwise each output element is mapped back to its
// operand positions through broadcast strides.
func runBinary[T number](op binOp, dst, a, b []T, sameShape bool, aShape, bShape, outShape tensor.Shape, cfg parallel.Config) {
	if sameShape {
		switch op {
		case opAdd:
			parallel.For(len(dst), func(i int) { dst[i] = a[i] + b[i] }, cfg)
		case opSub:
			parallel.For(len(dst), func(i int) { dst[i] = a[i] - b[i] }, cfg)
		case opMul:
			parallel.For(len(dst), func(i int) { dst[i] = a[i] * b[i] }, cfg)
		case opDiv:
			parallel.For(len(dst), func(i int) { dst[i] = a[i] / b[i] }, cfg)
		}
		return
	}

	aStrides := computeBroadcastStridesForShape(aShape, outShape)
	bStrides := computeBroadcastStridesForShape(bShape, outShape)
	outStrides := outShape.ComputeStrides()

	switch op {
	case opAdd:
		for i := range dst {
			dst[i] = a[computeFlatIndex(i, outStrides, aStrides)] + b[computeFlatIndex(i, outStrides, bStrides)]
		}
	case opSub:
		for i := range dst {
			dst[i] = a[computeFlatIndex(i, outStrides, aStrides)] - b[computeFlatIndex(i, outStrides, bStrides)]
		}
	case opMul:
		for i := range dst {
			dst[i] = a[computeFlatIndex(i, outStrides, aStrides)] * b[computeFlatIndex(i, outStrides, bStrides)]
		}
	case opDiv:
		for i := range dst {
			dst[i] = a[computeFlatIndex(i, outStrides, aStrides)] / b[computeFlatIndex(i, outStrides, bStrides)]
		}
	}
}

// runScalar executes an element-wise kernel against a scalar operand.
func runScalar[T number](op binOp, dst, x []T, scalar T) {
	switch op {
	case opAdd:
		for i := range dst {
			dst[i] = x[i] + scalar
		}
	case opSub:
		for i := range dst {
			dst[i] = x[i] - scalar
		}
	case opMul:
		for i := range dst {
			dst[i] = x[i] * scalar
		}
	case opDiv:
		for i := range dst {
			dst[i] = x[i] / scalar
		}
	}
}
