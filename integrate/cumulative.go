// Copyright 2026 Quadra Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package integrate

import (
	"fmt"

	"github.com/quadra-ml/quadra/tensor"
)

// CumulativeTrapezoid computes the running trapezoid-rule integral of y
// along dim, with sample locations given by x. The result keeps rank(y)
// but has one fewer entry along dim: each output element is the integral
// up to and including one sample interval, so the last entry along dim
// equals Trapezoid's total.
func CumulativeTrapezoid[T tensor.DType, B tensor.Backend](y, x *tensor.Tensor[T, B], dim int) (*tensor.Tensor[T, B], error) {
	raw, err := cumulativeTrapezoid(y.Backend(), y.Raw(), x.Raw(), dim)
	if err != nil {
		return nil, err
	}
	return tensor.New[T, B](raw, y.Backend()), nil
}

// CumulativeTrapezoidUniform computes the running trapezoid-rule integral
// of y along dim with a uniform scalar step dx between samples. dx must
// be a real number; boolean and complex values are rejected.
func CumulativeTrapezoidUniform[T tensor.DType, B tensor.Backend](y *tensor.Tensor[T, B], dx any, dim int) (*tensor.Tensor[T, B], error) {
	raw, err := cumulativeTrapezoidUniform(y.Backend(), y.Raw(), dx, dim)
	if err != nil {
		return nil, err
	}
	return tensor.New[T, B](raw, y.Backend()), nil
}

// cumulativeTrapezoid is the dtype-erased core of CumulativeTrapezoid.
func cumulativeTrapezoid(b tensor.Backend, y, x *tensor.RawTensor, dim int) (*tensor.RawTensor, error) {
	dim, err := wrapDim(dim, len(y.Shape()))
	if err != nil {
		return nil, err
	}
	if y.DType() == tensor.Bool || x.DType() == tensor.Bool {
		return nil, fmt.Errorf("%w: received a bool input for x or y", ErrUnsupportedDType)
	}

	sp, err := spacingFromSamples(b, y, x, dim)
	if err != nil {
		return nil, err
	}
	return doCumulativeTrapezoid(b, y, sp, dim), nil
}

// cumulativeTrapezoidUniform is the dtype-erased core of
// CumulativeTrapezoidUniform.
func cumulativeTrapezoidUniform(b tensor.Backend, y *tensor.RawTensor, dx any, dim int) (*tensor.RawTensor, error) {
	dim, err := wrapDim(dim, len(y.Shape()))
	if err != nil {
		return nil, err
	}
	if y.DType() == tensor.Bool {
		return nil, fmt.Errorf("%w: received a bool input for y", ErrUnsupportedDType)
	}
	step, err := toStep(dx)
	if err != nil {
		return nil, err
	}
	return doCumulativeTrapezoid(b, y, uniformSpacing(step), dim), nil
}

// doCumulativeTrapezoid applies the running trapezoid sum for either
// spacing variant. Both variants build the shifted left/right views and
// prefix-sum the per-interval contributions; unlike doTrapezoid there is
// no single-pass simplification for the uniform case, because every
// intermediate partial sum is part of the result.
func doCumulativeTrapezoid(b tensor.Backend, y *tensor.RawTensor, s spacing, dim int) *tensor.RawTensor {
	left := b.SliceDim(y, dim, 0, -1)
	right := b.SliceDim(y, dim, 1, y.Shape()[dim])
	pairs := b.Add(left, right)

	if s.uniform() {
		return b.DivScalar(b.CumsumDim(b.MulScalar(pairs, s.step), dim), 2.0)
	}
	return b.DivScalar(b.CumsumDim(b.Mul(pairs, s.dx), dim), 2.0)
}
