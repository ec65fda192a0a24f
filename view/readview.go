// SPDX-License-Identifier: MIT

// Package view: ReadView, the read-only binding of a selection to a matrix.

package view

import (
	"github.com/katalvlaran/blockview/matrix"
	"github.com/katalvlaran/blockview/segment"
)

// ReadView is a transient, non-owning read binding of a selection to a
// matrix-valued source. It implements matrix.Matrix, so it participates
// directly in the matrix package's kernels and comparisons; element access
// maps view coordinates to the underlying source through the bound segment
// lists without copying or allocating.
//
// A ReadView is valid strictly for the lifetime of the bound source and
// reads it live: mutations of the source are observed by the view.
type ReadView struct {
	src        matrix.Matrix // bound source (concrete matrix or lazy expression)
	rows, cols segment.List  // resolved canonical selections (never "full")
	nr, nc     int           // frozen cardinals of the two axes
	eps        float64       // comparison tolerance (IsZero, EqualTo)
}

// rawIndex maps logical position i within the list to the underlying raw
// index by walking the (few) segments. Allocation-free.
// Complexity: O(segments).
func rawIndex(l segment.List, i int) (int, bool) {
	if i < 0 {
		return 0, false
	}
	for _, s := range l {
		if i < s.Count {
			return s.Start + i, true
		}
		i -= s.Count // skip this segment's logical span
	}

	return 0, false // past the logical range
}

// Rows returns the number of selected rows. Complexity: O(1).
func (v *ReadView) Rows() int { return v.nr }

// Cols returns the number of selected columns. Complexity: O(1).
func (v *ReadView) Cols() int { return v.nc }

// At retrieves the element at view position (i, j), reading through to the
// bound source. Returns matrix.ErrOutOfRange outside [0,Rows)×[0,Cols).
// Complexity: O(segments), allocation-free.
func (v *ReadView) At(i, j int) (float64, error) {
	ri, ok := rawIndex(v.rows, i)
	if !ok {
		return 0, viewErrorf("At", matrix.ErrOutOfRange)
	}
	rj, ok := rawIndex(v.cols, j)
	if !ok {
		return 0, viewErrorf("At", matrix.ErrOutOfRange)
	}

	return v.src.At(ri, rj)
}

// Eval materializes the selected entries, in selection order, into a fresh
// Dense of shape (Rows, Cols). This is the only ReadView operation that
// allocates. Complexity: Time O(r*c), Space O(r*c).
func (v *ReadView) Eval() (*matrix.Dense, error) {
	res, err := matrix.NewDense(v.nr, v.nc)
	if err != nil {
		return nil, viewErrorf("Eval", err)
	}
	if err = matrix.CopyInto(res, v); err != nil {
		return nil, viewErrorf("Eval", err)
	}

	return res, nil
}

// IsZero reports whether every selected entry is zero within the view's
// tolerance. Complexity: O(r*c), allocation-free.
func (v *ReadView) IsZero() (bool, error) {
	return matrix.IsZero(v, v.eps)
}

// EqualTo reports whether the view's evaluated content matches other
// element-wise within the view's tolerance. Complexity: O(r*c).
func (v *ReadView) EqualTo(other matrix.Matrix) (bool, error) {
	return matrix.AllClose(v, other, 0, v.eps)
}
