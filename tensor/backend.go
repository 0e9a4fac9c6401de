// Copyright 2026 Quadra Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/quadra-ml/quadra/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// The interface is deliberately small: slicing along a dimension,
// elementwise arithmetic with broadcasting, axis reduction and prefix
// sums, plus reshape. Everything else in Quadra, including the
// integration routines, is built from these primitives, so any array
// backend that satisfies them can be plugged in.
//
// Implementations:
//   - backend/cpu: pure Go
//
// Example:
//
//	import (
//	    "github.com/quadra-ml/quadra/backend/cpu"
//	    "github.com/quadra-ml/quadra/tensor"
//	)
//
//	backend := cpu.New()
//	x := tensor.Ones[float64](tensor.Shape{2, 3}, backend)
//	y := x.AddScalar(1.0) // Uses backend.AddScalar under the hood
type Backend = tensor.Backend
