// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// operation tags used in error wrapping.
const (
	opNew        = "New"
	opGet        = "Get"
	opSet        = "Set"
	opRemove     = "Remove"
	opRemoveRows = "RemoveRows"
	opRemoveCols = "RemoveColumns"
	opAdd        = "Add"
	opSub        = "Sub"
	opDenseAdd   = "DenseAdd"
	opDenseSub   = "DenseSub"
	opDivide     = "Divide"
	opMulVec     = "MulVec"
	opMul        = "Mul"
	opMulDense   = "MulDense"
	opSum        = "Sum"
	opBuild      = "Build"
	opReplace    = "ReplaceValues"
	opToDense    = "ToDense"
	opSolve      = "Solve"
)

func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Matrix is a sparse rows×cols matrix stored as a cross-linked cell network:
// every stored entry sits in one row chain (ascending column) and one column
// chain (ascending row). Cells live in an arena and link by index.
//
// Header arrays rowFirst/rowLast, colFirst/colLast and the diagonal cache
// are back-references into the arena; they change only on structural edits.
//
// An explicitly stored zero stays stored. Only Remove, RemoveRow(s) and
// RemoveColumn(s) delete cells.
//
// A Matrix is not safe for concurrent mutation. Take a Copy for concurrent
// solves.
type Matrix struct {
	rows, cols int
	nnz        int

	cells []cell
	free  []int

	rowFirst, rowLast []int
	colFirst, colLast []int
	diag              []int // len min(rows, cols)

	cache factorCache
}

var _ mat.Matrix = (*Matrix)(nil)

// New returns an empty rows×cols matrix. Zero dimensions are allowed.
// Errors: ErrBadShape for negative dimensions.
func New(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, sparseErrorf(opNew, ErrBadShape)
	}

	return newMatrix(rows, cols, 0), nil
}

func newMatrix(rows, cols, capHint int) *Matrix {
	m := &Matrix{
		rows:     rows,
		cols:     cols,
		cells:    make([]cell, 0, capHint),
		rowFirst: make([]int, rows),
		rowLast:  make([]int, rows),
		colFirst: make([]int, cols),
		colLast:  make([]int, cols),
		diag:     make([]int, min(rows, cols)),
	}
	fillNil(m.rowFirst)
	fillNil(m.rowLast)
	fillNil(m.colFirst)
	fillNil(m.colLast)
	fillNil(m.diag)

	return m
}

func fillNil(s []int) {
	for i := range s {
		s[i] = nilCell
	}
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (r, c int) { return m.rows, m.cols }

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// NumNonZero returns the number of stored cells, explicit zeros included.
func (m *Matrix) NumNonZero() int { return m.nnz }

// At returns the value at (i, j), zero when absent. It panics when the
// index is out of range, as mat.Matrix requires; use Get for an error.
func (m *Matrix) At(i, j int) float64 {
	if err := validateIndex(m, i, j); err != nil {
		panic(err)
	}
	if id := m.at(i, j); id != nilCell {
		return m.cells[id].val
	}

	return 0
}

// T returns the implicit transpose, as mat.Matrix requires. Use Transpose
// for an in-place structural transpose.
func (m *Matrix) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// Get returns the value at (i, j), 0.0 when no cell is stored there.
// The lookup walks one axis only: the row chain below the diagonal, the
// column chain above it, and the diagonal cache on it.
//
// Errors: ErrOutOfRange.
// Complexity: O(min(cells in row i, cells in column j)) on average; O(1) on
// the diagonal.
func (m *Matrix) Get(i, j int) (float64, error) {
	if err := validateIndex(m, i, j); err != nil {
		return 0, sparseErrorf(opGet, err)
	}
	if id := m.at(i, j); id != nilCell {
		return m.cells[id].val, nil
	}

	return 0, nil
}

// Set stores v at (i, j). An existing cell is overwritten in place and only
// values are marked dirty; an absent one is created (even for v == 0) and
// the topology is marked dirty.
//
// Errors: ErrOutOfRange.
// Complexity: O(cells in row i + cells in column j) for a new cell, the
// lookup cost of Get for an existing one.
func (m *Matrix) Set(i, j int, v float64) error {
	if err := validateIndex(m, i, j); err != nil {
		return sparseErrorf(opSet, err)
	}
	if id := m.at(i, j); id != nilCell {
		m.cells[id].val = v
		m.cache.invalidateValues()
		return nil
	}
	m.insert(i, j, v)

	return nil
}

// Has reports whether a cell is stored at (i, j). Out-of-range positions
// are never stored.
func (m *Matrix) Has(i, j int) bool {
	if validateIndex(m, i, j) != nil {
		return false
	}

	return m.at(i, j) != nilCell
}

// Remove deletes the cell at (i, j). Removing an absent position is a no-op
// and leaves the factor cache intact; a real removal drops it.
//
// Errors: ErrOutOfRange.
// Complexity: O(cells in row i + cells in column j); the freed slot is
// reused by the next insertion.
func (m *Matrix) Remove(i, j int) error {
	if err := validateIndex(m, i, j); err != nil {
		return sparseErrorf(opRemove, err)
	}
	if id := m.at(i, j); id != nilCell {
		m.remove(id)
	}

	return nil
}

// Diagonal returns the main diagonal as a dense slice of length
// min(rows, cols); absent entries are 0.
func (m *Matrix) Diagonal() []float64 {
	d := make([]float64, len(m.diag))
	for i, id := range m.diag {
		if id != nilCell {
			d[i] = m.cells[id].val
		}
	}

	return d
}

// DoNonZero calls fn for every stored cell in row-major order, explicit
// zeros included. fn must not change the pattern of m.
//
// Complexity: O(rows + nnz).
func (m *Matrix) DoNonZero(fn func(i, j int, v float64)) {
	for i := 0; i < m.rows; i++ {
		for id := m.rowFirst[i]; id != nilCell; id = m.cells[id].right {
			fn(i, m.cells[id].col, m.cells[id].val)
		}
	}
}

// DoRow calls fn for every stored cell of row i in ascending column order.
// It panics if i is out of range.
func (m *Matrix) DoRow(i int, fn func(j int, v float64)) {
	if i < 0 || i >= m.rows {
		panic(sparseErrorf("DoRow", ErrOutOfRange))
	}
	for id := m.rowFirst[i]; id != nilCell; id = m.cells[id].right {
		fn(m.cells[id].col, m.cells[id].val)
	}
}

// DoCol calls fn for every stored cell of column j in ascending row order.
// It panics if j is out of range.
func (m *Matrix) DoCol(j int, fn func(i int, v float64)) {
	if j < 0 || j >= m.cols {
		panic(sparseErrorf("DoCol", ErrOutOfRange))
	}
	for id := m.colFirst[j]; id != nilCell; id = m.cells[id].down {
		fn(m.cells[id].row, m.cells[id].val)
	}
}

// Copy returns a structurally independent copy with a compacted arena and
// an empty factor cache.
// Complexity: O(rows + cols + nnz).
func (m *Matrix) Copy() *Matrix {
	c := newMatrix(m.rows, m.cols, m.nnz)
	m.DoNonZero(func(i, j int, v float64) { c.appendTail(i, j, v) })

	return c
}

// Zero sets every stored value to 0. Topology is kept, so a following
// direct solve reuses the symbolic analysis.
//
// Complexity: O(arena size).
func (m *Matrix) Zero() {
	for id := range m.cells {
		if m.cells[id].row >= 0 {
			m.cells[id].val = 0
		}
	}
	m.cache.invalidateValues()
}
