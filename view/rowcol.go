// SPDX-License-Identifier: MIT

// Package view: single-axis specializations.
// RowBlocks and ColBlocks are thin wrappers delegating to the shared
// two-axis Blocks implementation with the other axis fixed to "select
// everything", so canonicalization and binding logic exist once.

package view

import "github.com/katalvlaran/blockview/segment"

// RowBlocks is a row-only selection: the column axis is always full.
// It embeds Blocks, so every Blocks operation (AddRow, RView, LView,
// NbRows, ...) applies directly.
type RowBlocks struct {
	Blocks
}

// NewRowBlocks returns the row-only selection covering rows
// [start, start+count). Complexity: O(1).
func NewRowBlocks(start, count int) *RowBlocks {
	return &RowBlocks{Blocks{
		rows:    segment.List{segment.NewSegment(start, count)},
		allCols: true,
	}}
}

// RowBlocksFromList returns the row-only selection covering the given
// segment list (raw lists are fine; canonicalization is deferred).
// Complexity: O(len(l)).
func RowBlocksFromList(l segment.List) *RowBlocks {
	return &RowBlocks{Blocks{
		rows:    l.Clone(),
		allCols: true,
	}}
}

// RowBlocksFromMask run-length encodes a boolean row-activity mask into a
// row-only selection. Complexity: O(len(mask)).
func RowBlocksFromMask(mask []bool) *RowBlocks {
	return &RowBlocks{Blocks{
		rows:      segment.FromMask(mask),
		allCols:   true,
		canonical: true, // FromMask output is canonical by construction
	}}
}

// Transpose converts the row-only selection into the column-only selection
// covering the same index ranges. Complexity: O(n) for the list copy.
func (r *RowBlocks) Transpose() *ColBlocks {
	return &ColBlocks{*r.Blocks.Transpose()}
}

// ColBlocks is a column-only selection: the row axis is always full.
type ColBlocks struct {
	Blocks
}

// NewColBlocks returns the column-only selection covering columns
// [start, start+count). Complexity: O(1).
func NewColBlocks(start, count int) *ColBlocks {
	return &ColBlocks{Blocks{
		cols:    segment.List{segment.NewSegment(start, count)},
		allRows: true,
	}}
}

// ColBlocksFromList returns the column-only selection covering the given
// segment list. Complexity: O(len(l)).
func ColBlocksFromList(l segment.List) *ColBlocks {
	return &ColBlocks{Blocks{
		cols:    l.Clone(),
		allRows: true,
	}}
}

// ColBlocksFromMask run-length encodes a boolean column-activity mask into
// a column-only selection. Complexity: O(len(mask)).
func ColBlocksFromMask(mask []bool) *ColBlocks {
	return &ColBlocks{Blocks{
		cols:      segment.FromMask(mask),
		allRows:   true,
		canonical: true,
	}}
}

// Transpose converts the column-only selection into the row-only selection
// covering the same index ranges. Complexity: O(n) for the list copy.
func (c *ColBlocks) Transpose() *RowBlocks {
	return &RowBlocks{*c.Blocks.Transpose()}
}
