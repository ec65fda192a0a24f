// SPDX-License-Identifier: MIT

// Package matrix: Dense is the concrete, row-major implementation of the
// Mutable interface, storing elements in a flat slice for cache friendliness.

package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// The zero value is a legal 0×0 matrix; Reshape grows it in place.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Zero-sized dimensions are legal (empty selections materialize into them);
// negative dimensions return ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	// Return initialized Dense over a fresh flat slice
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Clone returns a deep, independent copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	// Allocate new slice and copy all elements
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// Fill assigns v to every element in place.
// Complexity: O(r*c).
func (m *Dense) Fill(v float64) {
	for i := range m.data { // deterministic 0..n-1
		m.data[i] = v
	}
}

// Reshape resizes the matrix in place to rows×cols, reusing the backing
// slice when its capacity suffices, and zero-fills the content.
//
// Behavior highlights:
//   - Previous content is discarded: after Reshape every element reads 0.
//   - Works on the zero value, so `var d Dense` plus Reshape is a valid way
//     to obtain a destination buffer (WriteTo relies on this).
//
// Errors:
//   - ErrInvalidDimensions when rows or cols is negative.
//
// Complexity: Time O(r*c), Space O(r*c) only when growing past capacity.
func (m *Dense) Reshape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrInvalidDimensions
	}

	n := rows * cols
	if cap(m.data) >= n {
		m.data = m.data[:n]
		for i := range m.data { // zero reused storage for determinism
			m.data[i] = 0
		}
	} else {
		m.data = make([]float64, n) // fresh storage is already zeroed
	}
	m.r, m.c = rows, cols

	return nil
}

// String implements fmt.Stringer for easy debugging, one bracketed row per
// line. Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ { // iterate over rows
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ { // iterate over columns
			if j > 0 {
				sb.WriteString(", ")
			}
			// compute flat index directly for performance
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
