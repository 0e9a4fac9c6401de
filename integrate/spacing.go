// Copyright 2026 Quadra Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package integrate

import (
	"fmt"

	"github.com/quadra-ml/quadra/tensor"
)

// spacing is the tagged representation of sample spacing: either a
// per-interval tensor of coordinate differences, or a uniform scalar
// step. The arithmetic kernels dispatch on the variant explicitly rather
// than overloading on argument type.
type spacing struct {
	dx   *tensor.RawTensor // nil for the uniform variant
	step float64
}

func intervalSpacing(dx *tensor.RawTensor) spacing {
	return spacing{dx: dx}
}

func uniformSpacing(step float64) spacing {
	return spacing{step: step}
}

// uniform reports whether the spacing is a scalar step.
func (s spacing) uniform() bool {
	return s.dx == nil
}

// spacingFromSamples derives the per-interval spacing tensor dx from the
// sample locations x, aligned against y along dim.
//
// A 1-D x is viewed as a rank(y) tensor with every extent 1 except dim,
// so the subsequent slicing along dim stays in bounds for any dim. A
// lower-rank x is left-padded with singleton extents to rank(y). In both
// cases x ends up broadcast toward y; numpy broadcasts dx instead, and
// that difference is deliberate. An x of equal rank is used unchanged,
// and a higher-rank x is rejected.
//
// The result is x shifted one sample forward minus x itself: the forward
// difference along dim, one entry per interval.
func spacingFromSamples(b tensor.Backend, y, x *tensor.RawTensor, dim int) (spacing, error) {
	rank := len(y.Shape())

	var xv *tensor.RawTensor
	switch {
	case len(x.Shape()) == 1:
		if x.Shape()[0] != y.Shape()[dim] {
			return spacing{}, fmt.Errorf("%w: got %d x values for extent %d along dim %d",
				ErrSampleCountMismatch, x.Shape()[0], y.Shape()[dim], dim)
		}
		viewShape := make(tensor.Shape, rank)
		for i := range viewShape {
			viewShape[i] = 1
		}
		viewShape[dim] = x.Shape()[0]
		xv = b.Reshape(x, viewShape)
	case len(x.Shape()) < rank:
		xv = b.Reshape(x, padShape(x.Shape(), rank))
	case len(x.Shape()) == rank:
		xv = x
	default:
		return spacing{}, fmt.Errorf("%w: x has %d dimensions, y has %d",
			ErrRankMismatch, len(x.Shape()), rank)
	}

	xLeft := b.SliceDim(xv, dim, 0, -1)
	xRight := b.SliceDim(xv, dim, 1, xv.Shape()[dim])

	return intervalSpacing(b.Sub(xRight, xLeft)), nil
}

// toStep converts a scalar spacing value to float64. Boolean and complex
// values are rejected: only real step sizes are supported.
func toStep(dx any) (float64, error) {
	switch v := dx.(type) {
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
		return 0, fmt.Errorf("%w: spacing must be a real number, got %T", ErrUnsupportedDType, dx)
	}
}
