// Copyright 2026 Quadra Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe N-dimensional arrays for Quadra.
//
// # Overview
//
// Tensors are the data structure every Quadra routine operates on. This
// package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - NumPy-style broadcasting
//   - Zero-extent dimensions (empty tensors are first-class values)
//   - A minimal Backend interface any compute implementation can satisfy
//
// # Basic Usage
//
//	import (
//	    "github.com/quadra-ml/quadra/backend/cpu"
//	    "github.com/quadra-ml/quadra/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Linspace[float64](0, 1, 101, backend)
//	    y := x.Mul(x) // y = x^2 sampled on the grid
//	}
//
// # Supported Data Types
//
// The tensor package supports the following element types via the DType
// constraint:
//   - float32, float64 (floating-point)
//   - int32, int64 (signed integers)
//   - uint8 (unsigned integers)
//   - bool (masks; no arithmetic)
package tensor
