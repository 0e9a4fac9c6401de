package cpu

import (
	"fmt"

	"github.com/quadra-ml/quadra/internal/tensor"
)

// SliceDim returns the half-open range [start, end) along dim. Negative
// bounds count from the end of the dimension; both bounds are clamped to
// the dimension's extent, so slicing past the edges (or slicing an empty
// dimension) yields an empty result instead of panicking.
//
// Elements along trailing dimensions are contiguous in row-major layout,
// so the slice is copied as one byte run per leading-coordinate.
func (cpu *CPUBackend) SliceDim(t *tensor.RawTensor, dim, start, end int) *tensor.RawTensor {
	shape := t.Shape()
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("slicedim: dimension %d out of range for %dD tensor", dim, len(shape)))
	}

	start, end = clampSliceBounds(start, end, shape[dim])

	outShape := shape.Clone()
	outShape[dim] = end - start
	result, err := tensor.NewRaw(outShape, t.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("slicedim: %v", err))
	}

	inner := 1
	for d := dim + 1; d < len(shape); d++ {
		inner *= shape[d]
	}
	outer := 1
	for d := 0; d < dim; d++ {
		outer *= shape[d]
	}

	elemSize := t.DType().Size()
	srcRow := shape[dim] * inner * elemSize
	dstRow := (end - start) * inner * elemSize
	srcOff := start * inner * elemSize

	src := t.Data()
	dst := result.Data()
	for o := 0; o < outer; o++ {
		copy(dst[o*dstRow:(o+1)*dstRow], src[o*srcRow+srcOff:o*srcRow+srcOff+dstRow])
	}

	return result
}

// Select returns the sub-tensor at index along dim, with dim removed from
// the result shape. A negative index counts from the end.
func (cpu *CPUBackend) Select(t *tensor.RawTensor, dim, index int) *tensor.RawTensor {
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

	sliced := cpu.SliceDim(t, dim, index, index+1)

	outShape := make(tensor.Shape, 0, len(shape)-1)
	for d, ext := range shape {
		if d != dim {
			outShape = append(outShape, ext)
		}
	}
	result, err := sliced.WithShape(outShape)
	if err != nil {
		panic(fmt.Sprintf("select: %v", err))
	}
	return result
}

// clampSliceBounds wraps negative slice indices and clamps both bounds to
// [0, extent] so the resulting extent is never negative.
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
