// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All kernels MUST return these sentinels and tests MUST
// check them via errors.Is. No kernel panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrInvalidDimensions is returned when requested matrix dimensions are
	// negative. Zero-sized matrices are legal; see the package documentation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add/Sub with different shapes or MatVec with a vector
	// of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) or a
	// nil vector was used where a value is required.
	ErrNilMatrix = errors.New("matrix: nil operand")

	// ErrNaNInf signals a NaN or ±Inf tolerance where finite values are
	// required by the numeric policy (comparison kernels).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
