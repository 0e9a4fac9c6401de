// Copyright 2026 Quadra Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package integrate provides trapezoid-rule numerical integration over
// N-dimensional tensors.
//
// # Overview
//
// Given function values y sampled along one dimension of a tensor, the
// package estimates the definite integral (Trapezoid, Trapz) or the
// running integral per sample interval (CumulativeTrapezoid). Sample
// locations can be given three ways:
//   - a 1-D coordinate tensor with one entry per sample point,
//   - a lower-rank coordinate grid broadcastable against y,
//   - a uniform scalar step (the *Uniform variants).
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
//
//	    area, err := integrate.Trapezoid(y, x, 0)
//	    if err != nil {
//	        panic(err)
//	    }
//	    _ = area.Item() // ≈ 1/3
//	}
//
// # Semantics
//
// All functions are pure: inputs are read-only and results are freshly
// allocated, so concurrent calls are safe. Computation happens in the
// tensors' element type; integer tensors are accepted but divide with
// truncation, so floating-point inputs are recommended. Boolean tensors
// and boolean or complex scalar steps are rejected with
// ErrUnsupportedDType.
package integrate
