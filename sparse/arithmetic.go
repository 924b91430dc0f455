// SPDX-License-Identifier: MIT

package sparse

import (
	"slices"

	"gonum.org/v1/gonum/mat"
)

// DenseAdd returns d + s as a new dense matrix; d is not modified.
// Any gonum mat.Matrix is accepted for d; it is copied once with
// mat.DenseCopyOf and the stored cells of s are added into the copy.
//
// Errors:
//   - ErrNilMatrix when d or s is nil.
//   - ErrDimensionMismatch when the shapes differ.
//
// Complexity: O(rows·cols + nnz(s)) time, O(rows·cols) space for the copy.
func DenseAdd(d mat.Matrix, s *Matrix) (*mat.Dense, error) {
	return denseAddSub(opDenseAdd, d, s, 1)
}

// DenseSub returns d - s as a new dense matrix; d is not modified.
//
// Errors:
//   - ErrNilMatrix when d or s is nil.
//   - ErrDimensionMismatch when the shapes differ.
//
// Complexity: O(rows·cols + nnz(s)) time, O(rows·cols) space for the copy.
func DenseSub(d mat.Matrix, s *Matrix) (*mat.Dense, error) {
	return denseAddSub(opDenseSub, d, s, -1)
}

func denseAddSub(tag string, d mat.Matrix, s *Matrix, sign float64) (*mat.Dense, error) {
	if d == nil {
		return nil, sparseErrorf(tag, ErrNilMatrix)
	}
	if err := validateNotNil(s); err != nil {
		return nil, sparseErrorf(tag, err)
	}
	r, c := d.Dims()
	if r != s.rows || c != s.cols {
		return nil, sparseErrorf(tag, ErrDimensionMismatch)
	}
	out := mat.DenseCopyOf(d)
	s.DoNonZero(func(i, j int, v float64) {
		out.Set(i, j, out.At(i, j)+sign*v)
	})

	return out, nil
}

// AddInPlace sets m = m + b.
//
// Each row of b is merge-walked against the same row of m by column index:
// coinciding cells are summed and cells present only in b are spliced in
// after the last visited cell of m.
// Complexity: O(nnz(m) + nnz(b) + column scans for new cells).
func (m *Matrix) AddInPlace(b *Matrix) error {
	if err := validateSameShape(m, b); err != nil {
		return sparseErrorf(opAdd, err)
	}
	m.mergeRows(b, 1)

	return nil
}

// SubInPlace sets m = m - b with the same merge walk as AddInPlace.
// Cells present only in b are created with the negated value; cells whose
// difference is zero stay stored.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(nnz(m) + nnz(b) + column scans for new cells).
func (m *Matrix) SubInPlace(b *Matrix) error {
	if err := validateSameShape(m, b); err != nil {
		return sparseErrorf(opSub, err)
	}
	m.mergeRows(b, -1)

	return nil
}

// Add returns m + b as a new matrix; neither operand is modified.
// The result starts as a compacted Copy of m and has an empty factor cache.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(rows + cols + nnz(m) + nnz(b)).
func (m *Matrix) Add(b *Matrix) (*Matrix, error) {
	if err := validateSameShape(m, b); err != nil {
		return nil, sparseErrorf(opAdd, err)
	}
	out := m.Copy()
	out.mergeRows(b, 1)

	return out, nil
}

// Sub returns m - b as a new matrix; neither operand is modified.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(rows + cols + nnz(m) + nnz(b)).
func (m *Matrix) Sub(b *Matrix) (*Matrix, error) {
	if err := validateSameShape(m, b); err != nil {
		return nil, sparseErrorf(opSub, err)
	}
	out := m.Copy()
	out.mergeRows(b, -1)

	return out, nil
}

func (m *Matrix) mergeRows(b *Matrix, sign float64) {
	var pa, prev, pb int
	var cb cell
	touched := false
	for i := 0; i < m.rows; i++ {
		pa, prev = m.rowFirst[i], nilCell
		for pb = b.rowFirst[i]; pb != nilCell; pb = cb.right {
			cb = b.cells[pb]
			for pa != nilCell && m.cells[pa].col < cb.col {
				prev, pa = pa, m.cells[pa].right
			}
			if pa != nilCell && m.cells[pa].col == cb.col {
				m.cells[pa].val += sign * cb.val
				touched = true
				prev, pa = pa, m.cells[pa].right
				continue
			}
			prev = m.insertAfter(i, cb.col, sign*cb.val, prev)
		}
	}
	if touched {
		m.cache.invalidateValues()
	}
}

// Scale multiplies every stored value by f in one scan of the arena.
// The pattern is kept even for f == 0, so only the numeric factors are
// invalidated; a following direct solve reuses the symbolic analysis.
//
// Complexity: O(arena size), which is O(nnz) after Copy or construction.
func (m *Matrix) Scale(f float64) {
	for id := range m.cells {
		if m.cells[id].row >= 0 {
			m.cells[id].val *= f
		}
	}
	m.cache.invalidateValues()
}

// Divide divides every stored value by f, as Scale(1/f).
// Errors: ErrDivideByZero when f == 0.
func (m *Matrix) Divide(f float64) error {
	if f == 0 {
		return sparseErrorf(opDivide, ErrDivideByZero)
	}
	m.Scale(1 / f)

	return nil
}

// MulVec returns m*x.
// Errors: ErrDimensionMismatch when len(x) != Cols().
// Complexity: O(rows + nnz).
func (m *Matrix) MulVec(x []float64) ([]float64, error) {
	if err := validateVecLen(x, m.cols); err != nil {
		return nil, sparseErrorf(opMulVec, err)
	}
	y := make([]float64, m.rows)
	for i := range y {
		for id := m.rowFirst[i]; id != nilCell; id = m.cells[id].right {
			y[i] += m.cells[id].val * x[m.cells[id].col]
		}
	}

	return y, nil
}

// RowSum returns the sum of the stored values of row i.
//
// Errors: ErrOutOfRange when i is outside [0, Rows()).
// Complexity: O(cells in row i).
func (m *Matrix) RowSum(i int) (float64, error) {
	if i < 0 || i >= m.rows {
		return 0, sparseErrorf(opSum, ErrOutOfRange)
	}
	var s float64
	for id := m.rowFirst[i]; id != nilCell; id = m.cells[id].right {
		s += m.cells[id].val
	}

	return s, nil
}

// ColSum returns the sum of the stored values of column j.
//
// Errors: ErrOutOfRange when j is outside [0, Cols()).
// Complexity: O(cells in column j).
func (m *Matrix) ColSum(j int) (float64, error) {
	if j < 0 || j >= m.cols {
		return 0, sparseErrorf(opSum, ErrOutOfRange)
	}
	var s float64
	for id := m.colFirst[j]; id != nilCell; id = m.cells[id].down {
		s += m.cells[id].val
	}

	return s, nil
}

// Sum returns the sum of all stored values. Absent cells contribute
// nothing, so Sum equals the sum of every entry of the dense form.
//
// Complexity: O(arena size).
func (m *Matrix) Sum() float64 {
	var s float64
	for id := range m.cells {
		if m.cells[id].row >= 0 {
			s += m.cells[id].val
		}
	}

	return s
}

// Mul returns the sparse product m*b. Row i of the result accumulates
// m(i,k)*b(k,:) over the stored k of row i; every product term creates a
// stored cell, even if the terms cancel.
// Errors: ErrDimensionMismatch when Cols() != b.Rows().
// Complexity: O(rows + flops + Σ_i r_i log r_i) for r_i cells in result row i.
func (m *Matrix) Mul(b *Matrix) (*Matrix, error) {
	if err := validateNotNil(b); err != nil {
		return nil, sparseErrorf(opMul, err)
	}
	if m.cols != b.rows {
		return nil, sparseErrorf(opMul, ErrDimensionMismatch)
	}
	out := newMatrix(m.rows, b.cols, m.nnz+b.nnz)
	acc := make([]float64, b.cols)
	seen := make([]bool, b.cols)
	var pattern []int
	for i := 0; i < m.rows; i++ {
		pattern = pattern[:0]
		for pa := m.rowFirst[i]; pa != nilCell; pa = m.cells[pa].right {
			k, av := m.cells[pa].col, m.cells[pa].val
			for pb := b.rowFirst[k]; pb != nilCell; pb = b.cells[pb].right {
				j := b.cells[pb].col
				if !seen[j] {
					seen[j] = true
					pattern = append(pattern, j)
				}
				acc[j] += av * b.cells[pb].val
			}
		}
		slices.Sort(pattern)
		for _, j := range pattern {
			out.appendTail(i, j, acc[j])
			acc[j], seen[j] = 0, false
		}
	}

	return out, nil
}

// MulDense returns m*d as a dense matrix.
// Errors: ErrDimensionMismatch when Cols() != rows of d; ErrBadShape when
// the product would have a zero dimension.
// Complexity: O(nnz · cols(d)).
func (m *Matrix) MulDense(d mat.Matrix) (*mat.Dense, error) {
	if d == nil {
		return nil, sparseErrorf(opMulDense, ErrNilMatrix)
	}
	dr, dc := d.Dims()
	if m.cols != dr {
		return nil, sparseErrorf(opMulDense, ErrDimensionMismatch)
	}
	if m.rows == 0 || dc == 0 {
		return nil, sparseErrorf(opMulDense, ErrBadShape)
	}
	out := mat.NewDense(m.rows, dc, nil)
	m.DoNonZero(func(i, k int, v float64) {
		for j := 0; j < dc; j++ {
			out.Set(i, j, out.At(i, j)+v*d.At(k, j))
		}
	})

	return out, nil
}

// MulDenseInPlace replaces m with m*d. d must be Cols()×Cols() so the shape
// is kept. The new pattern holds the nonzero entries of the product, and
// the factor cache is reset because the topology changes.
//
// Errors:
//   - ErrNilMatrix when d is nil.
//   - ErrDimensionMismatch when d is not Cols()×Cols().
//
// Complexity: O(nnz·Cols() + Rows()·Cols()) time, O(Rows()·Cols()) space for
// the dense product.
func (m *Matrix) MulDenseInPlace(d mat.Matrix) error {
	if d == nil {
		return sparseErrorf(opMulDense, ErrNilMatrix)
	}
	if dr, dc := d.Dims(); dr != m.cols || dc != m.cols {
		return sparseErrorf(opMulDense, ErrDimensionMismatch)
	}
	if m.rows == 0 || m.cols == 0 {
		return nil
	}
	prod, err := m.MulDense(d)
	if err != nil {
		return err
	}
	fresh := newMatrix(m.rows, m.cols, m.nnz)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if v := prod.At(i, j); v != 0 {
				fresh.appendTail(i, j, v)
			}
		}
	}
	m.replaceNetwork(fresh)

	return nil
}

// replaceNetwork moves the cell network of src into m and resets m's cache.
func (m *Matrix) replaceNetwork(src *Matrix) {
	m.rows, m.cols, m.nnz = src.rows, src.cols, src.nnz
	m.cells, m.free = src.cells, src.free
	m.rowFirst, m.rowLast = src.rowFirst, src.rowLast
	m.colFirst, m.colLast = src.colFirst, src.colLast
	m.diag = src.diag
	m.cache.invalidateTopology()
}
