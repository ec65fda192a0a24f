// SPDX-License-Identifier: MIT

// Package view: WriteView, the mutable binding of a selection to a matrix.

package view

import "github.com/katalvlaran/blockview/matrix"

// WriteView is a transient, non-owning read-write binding of a selection to
// a mutable matrix. It embeds ReadView (so every read operation applies and
// read-back always observes the latest writes) and implements
// matrix.Mutable: writes land on exactly the selected (row, col) addresses
// of the bound matrix, all unselected entries stay untouched.
type WriteView struct {
	ReadView
	dst matrix.Mutable // same binding as ReadView.src, with write access
}

// Set assigns v at view position (i, j), writing through to the bound
// matrix. Returns matrix.ErrOutOfRange outside [0,Rows)×[0,Cols).
// Complexity: O(segments), allocation-free.
func (w *WriteView) Set(i, j int, v float64) error {
	ri, ok := rawIndex(w.rows, i)
	if !ok {
		return viewErrorf("Set", matrix.ErrOutOfRange)
	}
	rj, ok := rawIndex(w.cols, j)
	if !ok {
		return viewErrorf("Set", matrix.ErrOutOfRange)
	}

	return w.dst.Set(ri, rj, v)
}

// Assign copies a matrix-shaped source of matching (Rows, Cols) element-by-
// element into the selected addresses of the bound matrix.
//
// Behavior highlights:
//   - Shape mismatches fail fast before any write (the bound matrix is
//     never partially assigned on a shape error).
//   - Allocation-free on the happy path; src may be a Dense, another view
//     over a different matrix, or a lazy expression.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: Time O(r*c), Space O(1).
func (w *WriteView) Assign(src matrix.Matrix) error {
	if err := matrix.CopyInto(w, src); err != nil {
		return viewErrorf("Assign", err)
	}

	return nil
}

// SetZero zeroes exactly the selected entries of the bound matrix in place,
// iterating the raw selected addresses directly. Allocation-free.
// Complexity: O(r*c).
func (w *WriteView) SetZero() error {
	for _, rs := range w.rows {
		for ri := rs.Start; ri < rs.End(); ri++ { // raw row addresses
			for _, cs := range w.cols {
				for rj := cs.Start; rj < cs.End(); rj++ { // raw column addresses
					if err := w.dst.Set(ri, rj, 0); err != nil {
						return viewErrorf("SetZero", err)
					}
				}
			}
		}
	}

	return nil
}

// WriteTo reshapes target to (Rows, Cols) and copies the selected entries
// into it in selection order, materializing the view into caller-owned
// storage. This (with Eval) is the only view operation allowed to allocate.
// Errors: matrix.ErrNilMatrix, matrix.ErrInvalidDimensions.
// Complexity: Time O(r*c), Space O(r*c) when target grows.
func (w *WriteView) WriteTo(target *matrix.Dense) error {
	if target == nil {
		return viewErrorf("WriteTo", matrix.ErrNilMatrix)
	}
	if err := target.Reshape(w.nr, w.nc); err != nil {
		return viewErrorf("WriteTo", err)
	}
	if err := matrix.CopyInto(target, &w.ReadView); err != nil {
		return viewErrorf("WriteTo", err)
	}

	return nil
}
