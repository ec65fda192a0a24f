// SPDX-License-Identifier: MIT

// Package matrix: lazy element-wise expressions.
// A lazy expression is a Matrix whose elements are computed on demand from
// its operands, without materializing any intermediate storage. Views can
// bind to them exactly like to concrete matrices, so composite sources such
// as "m + m" flow through the selection machinery allocation-free.

package matrix

// lazySum is the deferred element-wise sum of two conformable sources.
type lazySum struct {
	a, b Matrix
}

// LazySum returns a Matrix evaluating to a + b element-by-element on every
// At call. Nothing is computed or allocated up front; the operands are
// captured by reference and must outlive the expression.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (validated at construction so
// every later At is shape-safe). Complexity: O(1) construction, O(cost of
// operands' At) per element.
//
// AI-Hints:
//   - Combine with view binding (rview over a sum) or the *Into kernels to
//     keep whole pipelines free of intermediate allocations.
func LazySum(a, b Matrix) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return &lazySum{a: a, b: b}, nil
}

func (s *lazySum) Rows() int { return s.a.Rows() }
func (s *lazySum) Cols() int { return s.a.Cols() }

// At evaluates a(i,j) + b(i,j) on demand.
func (s *lazySum) At(i, j int) (float64, error) {
	av, err := s.a.At(i, j)
	if err != nil {
		return 0, err
	}
	bv, err := s.b.At(i, j)
	if err != nil {
		return 0, err
	}

	return av + bv, nil
}

// lazyScale is the deferred element-wise scaling of a source.
type lazyScale struct {
	m     Matrix
	alpha float64
}

// LazyScale returns a Matrix evaluating to alpha*m element-by-element on
// every At call, allocating nothing.
// Errors: ErrNilMatrix. Complexity: O(1) construction.
func LazyScale(m Matrix, alpha float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return &lazyScale{m: m, alpha: alpha}, nil
}

func (s *lazyScale) Rows() int { return s.m.Rows() }
func (s *lazyScale) Cols() int { return s.m.Cols() }

// At evaluates alpha*m(i,j) on demand.
func (s *lazyScale) At(i, j int) (float64, error) {
	v, err := s.m.At(i, j)
	if err != nil {
		return 0, err
	}

	return s.alpha * v, nil
}

// lazyTranspose swaps the roles of the axes without moving data.
type lazyTranspose struct {
	m Matrix
}

// LazyTranspose returns a Matrix presenting m with row and column roles
// swapped, in constant time and with no data movement.
// Errors: ErrNilMatrix. Complexity: O(1) construction, O(1) overhead per At.
func LazyTranspose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return &lazyTranspose{m: m}, nil
}

func (t *lazyTranspose) Rows() int { return t.m.Cols() }
func (t *lazyTranspose) Cols() int { return t.m.Rows() }

// At reads the mirrored coordinate of the wrapped source.
func (t *lazyTranspose) At(i, j int) (float64, error) {
	return t.m.At(j, i)
}
