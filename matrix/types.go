// SPDX-License-Identifier: MIT

// Package matrix: interface surface shared by storage, views and lazy
// expressions. The read interface is intentionally narrow so that read-only
// sources (block read views, lazy sums) participate in every kernel.

package matrix

// Matrix is the read surface of a two-dimensional float64 array.
// Implementations include *Dense, the view package's read/write views, and
// the lazy expressions in this package.
//
// Complexity notes: Rows/Cols are O(1); At is O(1) for *Dense and is allowed
// to be O(s) for segment-backed views, where s is the (small) number of
// selected ranges.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)
}

// Mutable is a Matrix whose elements can be assigned in place.
type Mutable interface {
	Matrix

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error
}
