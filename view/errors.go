// SPDX-License-Identifier: MIT
// Package view: sentinel error set (unified, consistent).
// Shape and index violations inside bound views surface through the matrix
// package's sentinels (views implement its interfaces and flow through its
// kernels); the sentinels below cover binding-time contract violations only.

package view

import "errors"

var (
	// ErrMatrixTooSmall is returned when a selection references an index at
	// or past the dimensions of the matrix it is being bound to. Binding is
	// the fail-fast point: a successfully bound view never reads or writes
	// outside the matrix.
	ErrMatrixTooSmall = errors.New("view: bound matrix smaller than selection")

	// ErrVectorTooSmall is the vector-binding counterpart of
	// ErrMatrixTooSmall.
	ErrVectorTooSmall = errors.New("view: bound vector smaller than selection")
)
