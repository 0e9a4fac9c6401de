// Package cpu implements the pure Go CPU backend for Quadra tensors.
package cpu

import (
	"fmt"

	"github.com/quadra-ml/quadra/internal/parallel"
	"github.com/quadra-ml/quadra/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
type CPUBackend struct {
	device tensor.Device
	par    parallel.Config
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		par:    parallel.DefaultConfig(),
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("add", a, b, opAdd)
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("sub", a, b, opSub)
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("mul", a, b, opMul)
}

// Div performs element-wise division with broadcasting.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("div", a, b, opDiv)
}

// binary allocates the broadcast result and dispatches on dtype.
func (cpu *CPUBackend) binary(name string, a, b *tensor.RawTensor, op binOp) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: mismatched dtypes %s and %s", name, a.DType(), b.DType()))
	}

	outShape, _, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape, a.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: failed to create result tensor: %v", name, err))
	}

	sameShape := a.Shape().Equal(b.Shape())
	switch a.DType() {
	case tensor.Float32:
		runBinary(op, result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), sameShape, a.Shape(), b.Shape(), outShape, cpu.par)
	case tensor.Float64:
		runBinary(op, result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), sameShape, a.Shape(), b.Shape(), outShape, cpu.par)
	case tensor.Int32:
		runBinary(op, result.AsInt32(), a.AsInt32(), b.AsInt32(), sameShape, a.Shape(), b.Shape(), outShape, cpu.par)
	case tensor.Int64:
		runBinary(op, result.AsInt64(), a.AsInt64(), b.AsInt64(), sameShape, a.Shape(), b.Shape(), outShape, cpu.par)
	case tensor.Uint8:
		runBinary(op, result.AsUint8(), a.AsUint8(), b.AsUint8(), sameShape, a.Shape(), b.Shape(), outShape, cpu.par)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
	}

	return result
}

// Reshape returns a tensor with the same elements and a new shape.
func (cpu *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	result, err := t.Clone().WithShape(newShape)
	if err != nil {
		panic(fmt.Sprintf("reshape: %v", err))
	}
	return result
}
