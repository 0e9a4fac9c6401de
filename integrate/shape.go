// Copyright 2026 Quadra Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package integrate

import (
	"fmt"

	"github.com/quadra-ml/quadra/tensor"
)

// wrapDim normalizes a possibly negative dimension index against rank.
// Negative indices count from the end, so -1 refers to the last dimension.
func wrapDim(dim, rank int) (int, error) {
	if dim < -rank || dim >= rank {
		return 0, fmt.Errorf("%w: dim %d for tensor of rank %d", ErrInvalidDim, dim, rank)
	}
	if dim < 0 {
		dim += rank
	}
	return dim, nil
}

// padShape left-pads a shape with singleton extents until it has
// targetRank entries. The original extents keep their order and end up
// right-aligned, e.g. (5, 5, 5) padded to rank 6 becomes (1, 1, 1, 5, 5, 5).
// A shape that already has targetRank or more entries is returned as a
// copy with its dimension count unchanged.
//
// Right-aligning the extents is what makes a low-rank coordinate grid
// broadcast against the trailing dimensions of the value tensor.
func padShape(cur tensor.Shape, targetRank int) tensor.Shape {
	if len(cur) >= targetRank {
		return cur.Clone()
	}
	padded := make(tensor.Shape, targetRank)
	for i := range padded {
		padded[i] = 1
	}
	copy(padded[targetRank-len(cur):], cur)
	return padded
}

// zerosLikeExcept builds a zero-filled tensor shaped like y with dim
// removed. This is the degenerate result for integration over an empty
// dimension: numpy defines the integral of zero samples as zero, and we
// keep that convention instead of failing.
func zerosLikeExcept(y *tensor.RawTensor, dim int) (*tensor.RawTensor, error) {
	shape := y.Shape()
	outShape := make(tensor.Shape, 0, len(shape)-1)
	for d, ext := range shape {
		if d != dim {
			outShape = append(outShape, ext)
		}
	}
	return tensor.NewRaw(outShape, y.DType(), y.Device())
}
