// SPDX-License-Identifier: MIT

// Package view: Blocks, the two-axis selection descriptor.
// A Blocks value owns two segment lists (rows, columns), each of which may
// instead be marked "full" (no filtering on that axis). It owns no matrix
// data; binding happens per use via RView/LView.

package view

import (
	"fmt"

	"github.com/katalvlaran/blockview/matrix"
	"github.com/katalvlaran/blockview/segment"
)

// Dynamic is returned by NbRows/NbCols for an unselected ("all indices")
// axis, whose effective dimension is only known once a matrix is bound.
const Dynamic = -1

// Blocks describes a selection of rows and/or columns of a matrix.
//
// The selection is built incrementally with AddRow/AddCol (deferred-merge,
// as in segment.List.Add) and canonicalized implicitly, in exactly one
// place, before any binding or cardinality query, guaranteeing a
// deterministic, non-overlapping ordering in the view's coordinate space.
type Blocks struct {
	rows segment.List // row selection; meaningful only when !allRows
	cols segment.List // column selection; meaningful only when !allCols
	// allRows/allCols mark an axis as unfiltered ("select everything").
	allRows bool
	allCols bool
	// canonical tracks whether rows/cols are in canonical form; every
	// mutation clears it and canonicalize() restores it lazily.
	canonical bool
}

// NewBlocks builds a two-axis selection from explicit row and column segment
// lists (raw lists are fine; canonicalization is deferred). The lists are
// cloned: the selection owns its copies.
// Complexity: O(len(rows)+len(cols)).
func NewBlocks(rows, cols segment.List) *Blocks {
	return &Blocks{rows: rows.Clone(), cols: cols.Clone()}
}

// canonicalize establishes canonical form on both axes exactly once after
// the latest mutation. Every consumer of the selection's coordinate space
// funnels through here. Complexity: O(n log n) amortized to O(1) at rest.
func (b *Blocks) canonicalize() {
	if b.canonical {
		return // already canonical; nothing to pay
	}
	if !b.allRows {
		b.rows.Shrink()
	}
	if !b.allCols {
		b.cols.Shrink()
	}
	b.canonical = true
}

// AddRow appends the row range [start, start+count) to the selection
// without merging (deferred to the implicit canonicalization).
// Adding to a previously unfiltered row axis narrows it to the added range.
// Complexity: O(1) amortized.
func (b *Blocks) AddRow(start, count int) {
	b.allRows = false // the axis becomes filtered once rows are added
	b.rows.Add(segment.NewSegment(start, count))
	b.canonical = false
}

// AddCol appends the column range [start, start+count), same contract as
// AddRow. Complexity: O(1) amortized.
func (b *Blocks) AddCol(start, count int) {
	b.allCols = false
	b.cols.Add(segment.NewSegment(start, count))
	b.canonical = false
}

// AddRowList appends all segments of src to the row selection, deferred
// merge. Complexity: O(len(src)) amortized.
func (b *Blocks) AddRowList(src segment.List) {
	b.allRows = false
	b.rows.AddList(src)
	b.canonical = false
}

// AddColList appends all segments of src to the column selection, deferred
// merge. Complexity: O(len(src)) amortized.
func (b *Blocks) AddColList(src segment.List) {
	b.allCols = false
	b.cols.AddList(src)
	b.canonical = false
}

// Rows returns the current canonical row selection (a defensive copy).
// An unfiltered row axis yields nil. Complexity: O(n).
func (b *Blocks) Rows() segment.List {
	if b.allRows {
		return nil
	}
	b.canonicalize()

	return b.rows.Clone()
}

// Cols returns the current canonical column selection (a defensive copy).
// An unfiltered column axis yields nil. Complexity: O(n).
func (b *Blocks) Cols() segment.List {
	if b.allCols {
		return nil
	}
	b.canonicalize()

	return b.cols.Clone()
}

// NbRows returns the number of selected rows, or Dynamic when the row axis
// is unfiltered (the count then depends on the bound matrix).
// Complexity: O(n).
func (b *Blocks) NbRows() int {
	if b.allRows {
		return Dynamic
	}
	b.canonicalize()

	return b.rows.Cardinal()
}

// NbCols returns the number of selected columns, or Dynamic when the column
// axis is unfiltered. Complexity: O(n).
func (b *Blocks) NbCols() int {
	if b.allCols {
		return Dynamic
	}
	b.canonicalize()

	return b.cols.Cardinal()
}

// Transpose returns a new selection with row and column roles swapped.
// Constant-time role swap; no index arithmetic, no data movement.
func (b *Blocks) Transpose() *Blocks {
	b.canonicalize()

	return &Blocks{
		rows:      b.cols.Clone(),
		cols:      b.rows.Clone(),
		allRows:   b.allCols,
		allCols:   b.allRows,
		canonical: true,
	}
}

// KeepRows derives the row-only selection: the row axis is preserved, the
// column filtering is discarded (treated as full). Complexity: O(n).
func (b *Blocks) KeepRows() *RowBlocks {
	b.canonicalize()

	return &RowBlocks{Blocks{
		rows:      b.rows.Clone(),
		allRows:   b.allRows,
		allCols:   true,
		canonical: true,
	}}
}

// KeepCols derives the column-only selection: the column axis is preserved,
// the row filtering is discarded (treated as full). Complexity: O(n).
func (b *Blocks) KeepCols() *ColBlocks {
	b.canonicalize()

	return &ColBlocks{Blocks{
		cols:      b.cols.Clone(),
		allRows:   true,
		allCols:   b.allCols,
		canonical: true,
	}}
}

// bindAxis resolves one axis against the bound dimension dim: an unfiltered
// axis materializes as the single segment [0, dim), a filtered one is
// validated to fit. The result is an independent copy, so mutating the
// selection after binding never disturbs a live view.
func bindAxis(list segment.List, all bool, dim int) (segment.List, error) {
	if all {
		return segment.Full(dim), nil
	}
	if list.MaxEnd() > dim {
		return nil, ErrMatrixTooSmall
	}

	return list.Clone(), nil
}

// RView binds the selection to a matrix (or any matrix-valued source, lazy
// expressions included) for read-only use.
//
// Implementation:
//   - Stage 1: validate the source, canonicalize the selection.
//   - Stage 2: resolve both axes against the source dimensions (fail fast
//     when the selection reaches past them) and freeze the cardinals.
//
// Behavior highlights:
//   - The returned ReadView implements matrix.Matrix and can be used
//     directly inside the matrix package's kernels; combining it there via
//     the *Into variants performs no dynamic allocation.
//   - An empty selection binds to a legal zero-sized view.
//
// Errors:
//   - matrix.ErrNilMatrix on a nil source; ErrMatrixTooSmall when the
//     selection references indices past the source dimensions.
//
// Complexity: O(segments) binding cost; no per-element work.
func (b *Blocks) RView(m matrix.Matrix, opts ...Option) (*ReadView, error) {
	if m == nil {
		return nil, viewErrorf("RView", matrix.ErrNilMatrix)
	}
	b.canonicalize()

	rows, err := bindAxis(b.rows, b.allRows, m.Rows())
	if err != nil {
		return nil, viewErrorf("RView: rows", err)
	}
	cols, err := bindAxis(b.cols, b.allCols, m.Cols())
	if err != nil {
		return nil, viewErrorf("RView: cols", err)
	}
	o := gatherOptions(opts...)

	return &ReadView{
		src:  m,
		rows: rows,
		cols: cols,
		nr:   rows.Cardinal(),
		nc:   cols.Cardinal(),
		eps:  o.eps,
	}, nil
}

// LView binds the selection to a mutable matrix as an assignment target.
//
// Behavior highlights:
//   - The returned WriteView implements matrix.Mutable; writes land on
//     exactly the selected (row, col) addresses, all other entries of the
//     bound matrix stay untouched.
//   - Reading a WriteView observes the bound matrix live: after any write,
//     LView and RView over the same selection and matrix agree.
//
// Errors: as RView.
// Complexity: O(segments) binding cost.
func (b *Blocks) LView(m matrix.Mutable, opts ...Option) (*WriteView, error) {
	if m == nil {
		return nil, viewErrorf("LView", matrix.ErrNilMatrix)
	}

	rv, err := b.RView(m, opts...)
	if err != nil {
		return nil, viewErrorf("LView", err)
	}

	return &WriteView{ReadView: *rv, dst: m}, nil
}

// String renders the selection's active ranges per axis, e.g.
// "rows: [ 2:2, 6:4 ], cols: all". Complexity: O(n).
func (b *Blocks) String() string {
	b.canonicalize()
	rowsDesc := "all"
	if !b.allRows {
		rowsDesc = b.rows.String()
	}
	colsDesc := "all"
	if !b.allCols {
		colsDesc = b.cols.String()
	}

	return fmt.Sprintf("rows: %s, cols: %s", rowsDesc, colsDesc)
}

// viewErrorf wraps an underlying error with binding context, preserving the
// sentinel for errors.Is.
func viewErrorf(tag string, err error) error {
	return fmt.Errorf("view.%s: %w", tag, err)
}
