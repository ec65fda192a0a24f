// SPDX-License-Identifier: MIT

// Package view: VecView, the single-axis binding of a selection to a slice.

package view

import (
	"math"

	"github.com/katalvlaran/blockview/matrix"
	"github.com/katalvlaran/blockview/segment"
)

// VecView is a transient, non-owning read-write binding of a row selection
// to a flat float64 slice. Reads and writes go through to the bound slice;
// only the selected positions are ever touched.
type VecView struct {
	data []float64    // bound backing slice
	list segment.List // resolved canonical selection
	n    int          // frozen cardinal
	eps  float64      // comparison tolerance (IsZero)
}

// VecView binds the row selection to a flat vector. An unfiltered selection
// covers the whole slice; a filtered one is validated to fit.
// Errors: ErrVectorTooSmall when the selection reaches past len(v).
// Complexity: O(segments) binding cost.
func (r *RowBlocks) VecView(v []float64, opts ...Option) (*VecView, error) {
	r.canonicalize()

	list, err := bindAxis(r.rows, r.allRows, len(v))
	if err != nil {
		return nil, viewErrorf("VecView", ErrVectorTooSmall)
	}
	o := gatherOptions(opts...)

	return &VecView{
		data: v,
		list: list,
		n:    list.Cardinal(),
		eps:  o.eps,
	}, nil
}

// Len returns the number of selected entries. Complexity: O(1).
func (v *VecView) Len() int { return v.n }

// At retrieves the element at view position i. Returns matrix.ErrOutOfRange
// outside [0, Len). Complexity: O(segments), allocation-free.
func (v *VecView) At(i int) (float64, error) {
	ri, ok := rawIndex(v.list, i)
	if !ok {
		return 0, viewErrorf("At", matrix.ErrOutOfRange)
	}

	return v.data[ri], nil
}

// Set assigns x at view position i, writing through to the bound slice.
// Complexity: O(segments), allocation-free.
func (v *VecView) Set(i int, x float64) error {
	ri, ok := rawIndex(v.list, i)
	if !ok {
		return viewErrorf("Set", matrix.ErrOutOfRange)
	}
	v.data[ri] = x

	return nil
}

// Assign copies src, in selection order, into the selected positions of the
// bound slice. Lengths must match exactly; no write happens on a mismatch.
// Errors: matrix.ErrDimensionMismatch. Complexity: O(n), allocation-free.
func (v *VecView) Assign(src []float64) error {
	if len(src) != v.n {
		return viewErrorf("Assign", matrix.ErrDimensionMismatch)
	}
	k := 0
	for _, s := range v.list {
		k += copy(v.data[s.Start:s.End()], src[k:]) // contiguous per segment
	}

	return nil
}

// SetZero zeroes exactly the selected positions of the bound slice in place.
// Complexity: O(n), allocation-free.
func (v *VecView) SetZero() {
	for _, s := range v.list {
		for i := s.Start; i < s.End(); i++ {
			v.data[i] = 0
		}
	}
}

// Eval materializes the selected entries, in selection order, into a fresh
// slice. This is the only VecView operation that allocates.
// Complexity: Time O(n), Space O(n).
func (v *VecView) Eval() []float64 {
	out := make([]float64, 0, v.n)
	for _, s := range v.list {
		out = append(out, v.data[s.Start:s.End()]...)
	}

	return out
}

// IsZero reports whether every selected entry is zero within the view's
// tolerance. Complexity: O(n), allocation-free.
func (v *VecView) IsZero() bool {
	for _, s := range v.list {
		for i := s.Start; i < s.End(); i++ {
			if math.Abs(v.data[i]) > v.eps {
				return false
			}
		}
	}

	return true
}
