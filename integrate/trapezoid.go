// Copyright 2026 Quadra Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package integrate

import (
	"fmt"

	"github.com/quadra-ml/quadra/tensor"
)

// Trapezoid estimates the integral of y along dim using the trapezoid
// rule, with sample locations given by x:
//
//	∑_{i=1}^{n-1} dx_i · (y_i + y_{i+1}) / 2
//
// x can be a 1-D tensor with one coordinate per sample point, or a tensor
// of up to rank(y) dimensions that broadcasts against y. The result drops
// dim from y's shape. Integrating over an empty dimension yields zeros.
func Trapezoid[T tensor.DType, B tensor.Backend](y, x *tensor.Tensor[T, B], dim int) (*tensor.Tensor[T, B], error) {
	raw, err := trapezoid(y.Backend(), y.Raw(), x.Raw(), dim)
	if err != nil {
		return nil, err
	}
	return tensor.New[T, B](raw, y.Backend()), nil
}

// TrapezoidUniform estimates the integral of y along dim using the
// trapezoid rule with a uniform scalar step dx between samples. dx must
// be a real number; boolean and complex values are rejected.
func TrapezoidUniform[T tensor.DType, B tensor.Backend](y *tensor.Tensor[T, B], dx any, dim int) (*tensor.Tensor[T, B], error) {
	raw, err := trapezoidUniform(y.Backend(), y.Raw(), dx, dim)
	if err != nil {
		return nil, err
	}
	return tensor.New[T, B](raw, y.Backend()), nil
}

// Trapz is a legacy alias for Trapezoid, keeping the numpy-era name.
func Trapz[T tensor.DType, B tensor.Backend](y, x *tensor.Tensor[T, B], dim int) (*tensor.Tensor[T, B], error) {
	return Trapezoid(y, x, dim)
}

// TrapzUniform is a legacy alias for TrapezoidUniform.
func TrapzUniform[T tensor.DType, B tensor.Backend](y *tensor.Tensor[T, B], dx any, dim int) (*tensor.Tensor[T, B], error) {
	return TrapezoidUniform(y, dx, dim)
}

// trapezoid is the dtype-erased core of Trapezoid.
func trapezoid(b tensor.Backend, y, x *tensor.RawTensor, dim int) (*tensor.RawTensor, error) {
	dim, err := wrapDim(dim, len(y.Shape()))
	if err != nil {
		return nil, err
	}
	// Asking for the integral of zero samples is a bit nonsensical, but we
	// return zeros to match numpy behavior.
	if y.Shape()[dim] == 0 {
		return zerosLikeExcept(y, dim)
	}
	if y.DType() == tensor.Bool || x.DType() == tensor.Bool {
		return nil, fmt.Errorf("%w: received a bool input for x or y", ErrUnsupportedDType)
	}

	sp, err := spacingFromSamples(b, y, x, dim)
	if err != nil {
		return nil, err
	}
	return doTrapezoid(b, y, sp, dim), nil
}

// trapezoidUniform is the dtype-erased core of TrapezoidUniform.
func trapezoidUniform(b tensor.Backend, y *tensor.RawTensor, dx any, dim int) (*tensor.RawTensor, error) {
	dim, err := wrapDim(dim, len(y.Shape()))
	if err != nil {
		return nil, err
	}
	if y.Shape()[dim] == 0 {
		return zerosLikeExcept(y, dim)
	}
	if y.DType() == tensor.Bool {
		return nil, fmt.Errorf("%w: received a bool input for y", ErrUnsupportedDType)
	}
	step, err := toStep(dx)
	if err != nil {
		return nil, err
	}
	return doTrapezoid(b, y, uniformSpacing(step), dim), nil
}

// doTrapezoid applies the trapezoid sum for either spacing variant.
//
// With per-interval spacing the sum is evaluated as a single elementwise
// multiply, broadcast add, dim-sum, and halving, avoiding a per-sample
// loop. With a uniform step the formula simplifies to
//
//	dx · (∑_i y_i − (y_1 + y_n) / 2)
//
// which touches each element once instead of materializing the shifted
// left/right views.
func doTrapezoid(b tensor.Backend, y *tensor.RawTensor, s spacing, dim int) *tensor.RawTensor {
	if s.uniform() {
		total := b.SumDim(y, dim, false)
		edges := b.DivScalar(b.Add(b.Select(y, dim, 0), b.Select(y, dim, -1)), 2.0)
		return b.MulScalar(b.Sub(total, edges), s.step)
	}

	left := b.SliceDim(y, dim, 0, -1)
	right := b.SliceDim(y, dim, 1, y.Shape()[dim])
	// If dx and (left + right) have different shapes, broadcasting applies
	// in the multiply.
	return b.DivScalar(b.SumDim(b.Mul(b.Add(left, right), s.dx), dim, false), 2.0)
}
