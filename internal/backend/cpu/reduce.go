package cpu

import (
	"fmt"

	"github.com/quadra-ml/quadra/internal/tensor"
)

// SumDim sums tensor elements along the specified dimension.
//
// Parameters:
//   - dim: dimension to reduce (supports negative indexing: -1 = last dim)
//   - keepDim: if true, keep the reduced dimension with extent 1; if false, remove it
//
// Summing along an empty dimension produces zeros, matching the convention
// that an empty sum is the additive identity.
func (cpu *CPUBackend) SumDim(x *tensor.RawTensor, dim int, keepDim bool) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("sumdim: dimension %d out of range for %dD tensor", dim, ndim))
	}

	var outShape tensor.Shape
	if keepDim {
		outShape = shape.Clone()
		outShape[dim] = 1
	} else {
		outShape = make(tensor.Shape, 0, ndim-1)
		for i := 0; i < ndim; i++ {
			if i != dim {
				outShape = append(outShape, shape[i])
			}
		}
	}

	result, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("sumdim: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		sumDim(x.AsFloat32(), result.AsFloat32(), shape, dim)
	case tensor.Float64:
		sumDim(x.AsFloat64(), result.AsFloat64(), shape, dim)
	case tensor.Int32:
		sumDim(x.AsInt32(), result.AsInt32(), shape, dim)
	case tensor.Int64:
		sumDim(x.AsInt64(), result.AsInt64(), shape, dim)
	case tensor.Uint8:
		sumDim(x.AsUint8(), result.AsUint8(), shape, dim)
	default:
		panic(fmt.Sprintf("sumdim: unsupported dtype %s", x.DType()))
	}

	return result
}

// CumsumDim computes the running (prefix) sum along the specified dimension.
// The result has the same shape as the input.
func (cpu *CPUBackend) CumsumDim(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	if dim < 0 {
		dim += ndim
	}
	if dim < 0 || dim >= ndim {
		panic(fmt.Sprintf("cumsum: dimension %d out of range for %dD tensor", dim, ndim))
	}

	result, err := tensor.NewRaw(shape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("cumsum: %v", err))
	}

	switch x.DType() {
	case tensor.Float32:
		cumsumDim(x.AsFloat32(), result.AsFloat32(), shape, dim)
	case tensor.Float64:
		cumsumDim(x.AsFloat64(), result.AsFloat64(), shape, dim)
	case tensor.Int32:
		cumsumDim(x.AsInt32(), result.AsInt32(), shape, dim)
	case tensor.Int64:
		cumsumDim(x.AsInt64(), result.AsInt64(), shape, dim)
	case tensor.Uint8:
		cumsumDim(x.AsUint8(), result.AsUint8(), shape, dim)
	default:
		panic(fmt.Sprintf("cumsum: unsupported dtype %s", x.DType()))
	}

	return result
}

// sumDim accumulates every input element into the output position that
// keeps all coordinates except the reduced dimension.
func sumDim[T number](data, result []T, shape tensor.Shape, dim int) {
	strides := shape.ComputeStrides()

	keptShape := shape.Clone()
	keptShape[dim] = 1
	keptStrides := keptShape.ComputeStrides()

	for i := range data {
		outIdx := 0
		rem := i
		for d := 0; d < len(shape); d++ {
			coord := rem / strides[d]
			rem %= strides[d]
			if d != dim {
				outIdx += coord * keptStrides[d]
			}
		}
		result[outIdx] += data[i]
	}
}

// cumsumDim walks each lane along dim and writes running sums in place.
func cumsumDim[T number](data, result []T, shape tensor.Shape, dim int) {
	strides := shape.ComputeStrides()
	dimSize := shape[dim]
	dimStride := strides[dim]

	numGroups := 1
	for i := range shape {
		if i != dim {
			numGroups *= shape[i]
		}
	}

	for group := 0; group < numGroups; group++ {
		baseIdx := 0
		remaining := group
		for i := 0; i < len(shape); i++ {
			if i == dim {
				continue
			}
			coord := remaining % shape[i]
			remaining /= shape[i]
			baseIdx += coord * strides[i]
		}

		var acc T
		for j := 0; j < dimSize; j++ {
			acc += data[baseIdx+j*dimStride]
			result[baseIdx+j*dimStride] = acc
		}
	}
}
