// SPDX-License-Identifier: MIT

package view_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/blockview/matrix"
	"github.com/katalvlaran/blockview/segment"
	"github.com/katalvlaran/blockview/view"
)

// newIndexed builds a rows×cols matrix with m(i,j) = cols*i + j, giving every
// entry a distinct value so index-mapping mistakes cannot cancel out.
func newIndexed(t *testing.T, rows, cols int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, m.Set(i, j, float64(cols*i+j)))
		}
	}

	return m
}

// axisSet resolves one selection axis against a bound dimension into a
// membership set over raw indices (an unfiltered axis selects everything).
func axisSet(l segment.List, dim int) map[int]bool {
	if l == nil {
		l = segment.Full(dim)
	}
	set := make(map[int]bool, l.Cardinal())
	for _, idx := range l.Indices() {
		set[idx] = true
	}

	return set
}

// checkBlocks exercises the full view contract of one selection against one
// matrix: read/write agreement, transpose commutation, assignment and
// zeroing confined to the selection, and WriteTo materialization.
func checkBlocks(t *testing.T, b *view.Blocks, m *matrix.Dense) {
	t.Helper()

	pristine := m.Clone()

	rv, err := b.RView(m)
	require.NoError(t, err)
	lv, err := b.LView(m)
	require.NoError(t, err)

	// Read and write bindings of one selection agree element-wise.
	require.Equal(t, rv.Rows(), lv.Rows())
	require.Equal(t, rv.Cols(), lv.Cols())
	same, err := lv.EqualTo(rv)
	require.NoError(t, err)
	require.True(t, same)

	// Transposing the selection and the matrix commutes with transposing the
	// evaluated block.
	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	rvT, err := b.Transpose().RView(mt)
	require.NoError(t, err)
	rvEval, err := rv.Eval()
	require.NoError(t, err)
	rvEvalT, err := matrix.Transpose(rvEval)
	require.NoError(t, err)
	same, err = rvT.EqualTo(rvEvalT)
	require.NoError(t, err)
	require.True(t, same)

	// Assign writes exactly the selected addresses of a bound copy.
	mc := m.Clone()
	wv, err := b.LView(mc)
	require.NoError(t, err)
	src, err := matrix.NewDense(rv.Rows(), rv.Cols())
	require.NoError(t, err)
	for i := 0; i < src.Rows(); i++ {
		for j := 0; j < src.Cols(); j++ {
			require.NoError(t, src.Set(i, j, float64(1000+i*src.Cols()+j)))
		}
	}
	require.NoError(t, wv.Assign(src))

	back, err := b.RView(mc)
	require.NoError(t, err)
	same, err = back.EqualTo(src)
	require.NoError(t, err)
	require.True(t, same)

	rowSet := axisSet(b.Rows(), mc.Rows())
	colSet := axisSet(b.Cols(), mc.Cols())
	for i := 0; i < mc.Rows(); i++ {
		for j := 0; j < mc.Cols(); j++ {
			if rowSet[i] && colSet[j] {
				continue // inside the selection, rewritten above
			}
			got, errAt := mc.At(i, j)
			require.NoError(t, errAt)
			want, errAt := m.At(i, j)
			require.NoError(t, errAt)
			require.Equal(t, want, got, "unselected entry (%d,%d) was touched", i, j)
		}
	}

	// SetZero clears the selection of the copy and nothing else.
	require.NoError(t, wv.SetZero())
	zero, err := wv.IsZero()
	require.NoError(t, err)
	require.True(t, zero)
	for i := 0; i < mc.Rows(); i++ {
		for j := 0; j < mc.Cols(); j++ {
			if rowSet[i] && colSet[j] {
				continue
			}
			got, errAt := mc.At(i, j)
			require.NoError(t, errAt)
			want, errAt := m.At(i, j)
			require.NoError(t, errAt)
			require.Equal(t, want, got)
		}
	}

	// WriteTo materializes the selection into caller-owned storage, resizing
	// the target to the selection's shape.
	var res matrix.Dense
	require.NoError(t, lv.WriteTo(&res))
	same, err = matrix.Equal(&res, rvEval)
	require.NoError(t, err)
	require.True(t, same)

	// The originally bound matrix was never modified along the way.
	same, err = matrix.Equal(m, pristine)
	require.NoError(t, err)
	require.True(t, same)
}

// TestBlockViewScenario runs the full contract over a family of related
// selections of one 10×11 matrix: row-only, column-only, two-axis, the
// transpose and both single-axis projections.
func TestBlockViewScenario(t *testing.T) {
	m := newIndexed(t, 10, 11)

	rows := view.NewRowBlocks(2, 2)
	rows.AddRow(6, 4)
	require.True(t, rows.Rows().Equal(segment.List{seg(2, 2), seg(6, 4)}))

	cols := rows.Transpose()
	cols.AddCol(5, 2) // [5,7) touches [6,10): merges into [5,10)
	require.True(t, cols.Cols().Equal(segment.List{seg(2, 2), seg(5, 5)}))

	blocks := view.NewBlocks(rows.Rows(), cols.Cols())
	require.Equal(t, 6, blocks.NbRows())
	require.Equal(t, 7, blocks.NbCols())

	checkBlocks(t, &rows.Blocks, m)
	checkBlocks(t, &cols.Blocks, m)
	checkBlocks(t, blocks, m)
	checkBlocks(t, blocks.Transpose(), m)
	checkBlocks(t, &blocks.KeepRows().Blocks, m)
	checkBlocks(t, &blocks.KeepCols().Blocks, m)
}

// TestViewIndexMapping pins down the logical→raw coordinate arithmetic with
// hand-computed entries.
func TestViewIndexMapping(t *testing.T) {
	m := newIndexed(t, 10, 11) // m(i,j) = 11*i + j

	b := view.NewBlocks(
		segment.List{seg(2, 2), seg(6, 4)},
		segment.List{seg(2, 2), seg(5, 5)},
	)
	rv, err := b.RView(m)
	require.NoError(t, err)

	cases := []struct {
		i, j   int
		ri, rj int
	}{
		{0, 0, 2, 2}, // first selected row/col
		{1, 1, 3, 3}, // still inside the leading segments
		{2, 2, 6, 5}, // first positions of the second segments
		{5, 6, 9, 9}, // last selected row/col
	}
	for _, tc := range cases {
		got, errAt := rv.At(tc.i, tc.j)
		require.NoError(t, errAt)
		require.Equal(t, float64(11*tc.ri+tc.rj), got)
	}

	// Out-of-view coordinates are rejected, not silently remapped.
	for _, bad := range [][2]int{{-1, 0}, {0, -1}, {6, 0}, {0, 7}} {
		_, errAt := rv.At(bad[0], bad[1])
		require.ErrorIs(t, errAt, matrix.ErrOutOfRange)
	}
}

// TestWriteViewSetAndLiveness verifies write-through plus the liveness of
// read bindings over the same matrix.
func TestWriteViewSetAndLiveness(t *testing.T) {
	m := newIndexed(t, 10, 11)
	b := view.NewBlocks(
		segment.List{seg(2, 2), seg(6, 4)},
		segment.List{seg(2, 2), seg(5, 5)},
	)

	rv, err := b.RView(m)
	require.NoError(t, err)
	wv, err := b.LView(m)
	require.NoError(t, err)

	require.NoError(t, wv.Set(2, 3, -1)) // raw address (6, 6)
	raw, err := m.At(6, 6)
	require.NoError(t, err)
	require.Equal(t, -1.0, raw)

	// The earlier read binding observes the write immediately.
	got, err := rv.At(2, 3)
	require.NoError(t, err)
	require.Equal(t, -1.0, got)

	require.ErrorIs(t, wv.Set(6, 0, 0), matrix.ErrOutOfRange)
	require.ErrorIs(t, wv.Set(0, 7, 0), matrix.ErrOutOfRange)

	// Assign rejects shape mismatches before any write.
	bad, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.ErrorIs(t, wv.Assign(bad), matrix.ErrDimensionMismatch)
}

// TestWriteToResizes verifies that row-only selections materialize with the
// bound matrix's full width.
func TestWriteToResizes(t *testing.T) {
	m := newIndexed(t, 10, 11)
	rows := view.NewRowBlocks(2, 2)
	rows.AddRow(6, 4)

	wv, err := rows.LView(m)
	require.NoError(t, err)

	res, err := matrix.NewDense(1, 1) // wrong shape on purpose
	require.NoError(t, err)
	require.NoError(t, wv.WriteTo(res))
	require.Equal(t, 6, res.Rows())
	require.Equal(t, 11, res.Cols())

	ev, err := wv.Eval()
	require.NoError(t, err)
	same, err := matrix.Equal(res, ev)
	require.NoError(t, err)
	require.True(t, same)

	require.ErrorIs(t, wv.WriteTo(nil), matrix.ErrNilMatrix)
}

// TestViewKernelsAllocationFree measures the steady-state allocation count
// of kernel evaluation through views: with views and destinations built up
// front, combining blocks must not allocate.
func TestViewKernelsAllocationFree(t *testing.T) {
	m := newIndexed(t, 10, 11)
	m2, err := matrix.Scale(m, 3)
	require.NoError(t, err)

	b := view.NewBlocks(
		segment.List{seg(2, 2), seg(6, 4)},
		segment.List{seg(2, 2), seg(5, 5)},
	)
	rv, err := b.RView(m)
	require.NoError(t, err)
	rv2, err := b.RView(m2)
	require.NoError(t, err)

	sum, err := matrix.LazySum(m, m)
	require.NoError(t, err)
	rvLazy, err := b.RView(sum)
	require.NoError(t, err)

	dst, err := matrix.NewDense(rv.Rows(), rv.Cols())
	require.NoError(t, err)
	dense, err := rv.Eval()
	require.NoError(t, err)

	wvTarget := m.Clone()
	wv, err := b.LView(wvTarget)
	require.NoError(t, err)

	var kernelErr error
	runs := map[string]func(){
		"view+view":      func() { kernelErr = matrix.AddInto(dst, rv, rv2) },
		"view+dense":     func() { kernelErr = matrix.AddInto(dst, rv, dense) },
		"dense+view":     func() { kernelErr = matrix.SubInto(dst, dense, rv) },
		"scale view":     func() { kernelErr = matrix.ScaleInto(dst, rv, 2) },
		"copy lazy view": func() { kernelErr = matrix.CopyInto(dst, rvLazy) },
		"into lview":     func() { kernelErr = matrix.AddInto(wv, rv, rv2) },
	}
	for name, run := range runs {
		allocs := testing.AllocsPerRun(10, run)
		require.NoError(t, kernelErr, name)
		require.Zero(t, allocs, "%s allocated", name)
	}

	// The lazy pipeline really computed 2*m over the selection.
	double, err := matrix.Scale(dense, 2)
	require.NoError(t, err)
	require.NoError(t, matrix.CopyInto(dst, rvLazy))
	same, err := matrix.Equal(dst, double)
	require.NoError(t, err)
	require.True(t, same)
}
