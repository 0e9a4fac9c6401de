// Copyright 2026 Quadra Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package integrate

import "errors"

// Sentinel errors returned by the integration routines. All are detected
// before any result tensor is allocated and can be tested with errors.Is.
var (
	// ErrInvalidDim reports an integration dimension outside the valid
	// range after negative-index normalization.
	ErrInvalidDim = errors.New("integrate: dimension out of range")

	// ErrSampleCountMismatch reports a 1-D sample-location tensor whose
	// length differs from the extent of y along the integration dimension.
	ErrSampleCountMismatch = errors.New("integrate: there must be one x value for each sample point")

	// ErrUnsupportedDType reports boolean-typed inputs, or a scalar step
	// that is boolean or complex.
	ErrUnsupportedDType = errors.New("integrate: unsupported dtype")

	// ErrRankMismatch reports a sample-location tensor with more
	// dimensions than the value tensor.
	ErrRankMismatch = errors.New("integrate: sample locations have more dimensions than values")
)
