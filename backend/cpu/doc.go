// Copyright 2026 Quadra Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for Quadra tensors.
//
// # Overview
//
// This package implements the tensor.Backend interface with:
//   - Pure Go implementation (no CGO)
//   - NumPy-compatible broadcasting
//   - Chunked multi-core execution for large elementwise kernels
//   - Byte-level axis slicing (dtype-agnostic)
//
// # Basic Usage
//
//	import (
//	    "github.com/quadra-ml/quadra/backend/cpu"
//	    "github.com/quadra-ml/quadra/integrate"
//	    "github.com/quadra-ml/quadra/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    x := tensor.Linspace[float64](0, 1, 101, backend)
//	    y := x.Mul(x)
//	    area, err := integrate.Trapezoid(y, x, 0)
//	    _ = area
//	    _ = err
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation is
// isolated and does not share mutable state.
package cpu
