package cpu

import (
	"fmt"

	"github.com/quadra-ml/quadra/internal/tensor"
)

// Scalar operations: element-wise arithmetic against a single value.
// The scalar is coerced to the tensor's element type; fractional parts
// truncate for integer tensors.

// AddScalar adds a scalar to every element.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("addscalar", x, scalar, opAdd)
}

// SubScalar subtracts a scalar from every element.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("subscalar", x, scalar, opSub)
}

// MulScalar multiplies every element by a scalar.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("mulscalar", x, scalar, opMul)
}

// DivScalar divides every element by a scalar.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("divscalar", x, scalar, opDiv)
}

func (cpu *CPUBackend) scalarOp(name string, x *tensor.RawTensor, scalar any, op binOp) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	s, err := coerceScalar(scalar)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	switch x.DType() {
	case tensor.Float32:
		runScalar(op, result.AsFloat32(), x.AsFloat32(), float32(s))
	case tensor.Float64:
		runScalar(op, result.AsFloat64(), x.AsFloat64(), s)
	case tensor.Int32:
		runScalar(op, result.AsInt32(), x.AsInt32(), int32(s))
	case tensor.Int64:
		runScalar(op, result.AsInt64(), x.AsInt64(), int64(s))
	case tensor.Uint8:
		runScalar(op, result.AsUint8(), x.AsUint8(), uint8(s))
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, x.DType()))
	}

	return result
}

// coerceScalar widens any supported numeric scalar to float64.
func coerceScalar(scalar any) (float64, error) {
	switch v := scalar.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("unsupported scalar type %T", scalar)
	}
}
