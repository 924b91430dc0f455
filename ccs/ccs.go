// SPDX-License-Identifier: MIT

// Package ccs defines compressed-column storage (CCS), the read-mostly export
// format consumed by the ordering and direct-solver packages.
//
// Layout:
//
//	ColPtr has length Cols+1. The entries of column j live in
//	RowIdx[ColPtr[j]:ColPtr[j+1]] and Values[ColPtr[j]:ColPtr[j+1]].
//
// A Matrix is produced by conversion (sparse.Matrix.ToCCS, Transpose) and is
// never edited by hand afterwards. Row indices inside a column are sorted
// ascending when the producer walks column chains in order, which every
// producer in this module does.
//
// Complexity quicksheet:
//   - New: O(cols + nnzCap); Transpose: O(rows + cols + nnz); MulVec: O(nnz).
package ccs

import "fmt"

// Matrix is a Rows×Cols matrix in compressed-column form.
type Matrix struct {
	Rows, Cols int
	ColPtr     []int     // len Cols+1; ColPtr[0] == 0, ColPtr[Cols] == Nnz()
	RowIdx     []int     // row index per stored entry
	Values     []float64 // value per stored entry (may be nil for pattern-only use)
}

// New allocates an empty rows×cols matrix with room for nnzCap entries.
// ColPtr is zero-filled, so the result is a valid all-zero matrix.
func New(rows, cols, nnzCap int) *Matrix {
	if nnzCap < 0 {
		nnzCap = 0
	}

	return &Matrix{
		Rows:   rows,
		Cols:   cols,
		ColPtr: make([]int, cols+1),
		RowIdx: make([]int, 0, nnzCap),
		Values: make([]float64, 0, nnzCap),
	}
}

// Nnz returns the number of stored entries, ColPtr[Cols]. A zero-value
// Matrix with no ColPtr reports 0.
// Complexity: O(1).
func (m *Matrix) Nnz() int {
	if len(m.ColPtr) == 0 {
		return 0
	}

	return m.ColPtr[m.Cols]
}

// At returns the value stored at (i, j), or 0 when absent.
// Duplicates, if a producer left any, are summed. Values must be present.
//
// At is a linear scan meant for tests and diagnostics; the kernels walk
// columns directly.
//
// Complexity: O(entries in column j).
func (m *Matrix) At(i, j int) float64 {
	var sum float64
	for p := m.ColPtr[j]; p < m.ColPtr[j+1]; p++ {
		if m.RowIdx[p] == i {
			sum += m.Values[p]
		}
	}

	return sum
}

// Transpose returns a new Cols×Rows matrix holding mᵗ.
// The two-pass counting scheme leaves row indices sorted in every column
// of the result regardless of the ordering inside m.
//
// Complexity: O(Rows + Cols + nnz).
func (m *Matrix) Transpose() *Matrix {
	nnz := m.Nnz()
	t := &Matrix{
		Rows:   m.Cols,
		Cols:   m.Rows,
		ColPtr: make([]int, m.Rows+1),
		RowIdx: make([]int, nnz),
	}
	withValues := m.Values != nil
	if withValues {
		t.Values = make([]float64, nnz)
	}

	// Pass 1: count entries per row of m (= per column of t).
	var p int
	for p = 0; p < nnz; p++ {
		t.ColPtr[m.RowIdx[p]+1]++
	}
	for i := 0; i < m.Rows; i++ {
		t.ColPtr[i+1] += t.ColPtr[i]
	}

	// Pass 2: scatter, walking columns of m in ascending order.
	next := make([]int, m.Rows)
	copy(next, t.ColPtr[:m.Rows])
	var j, q int
	for j = 0; j < m.Cols; j++ {
		for p = m.ColPtr[j]; p < m.ColPtr[j+1]; p++ {
			q = next[m.RowIdx[p]]
			next[m.RowIdx[p]]++
			t.RowIdx[q] = j
			if withValues {
				t.Values[q] = m.Values[p]
			}
		}
	}

	return t
}

// MulVec stores m*x into dst. dst must have length Rows and x length Cols;
// violating that is a programmer error and panics, as in gonum's kernels.
func (m *Matrix) MulVec(dst, x []float64) {
	if len(x) != m.Cols || len(dst) != m.Rows {
		panic("ccs: dimension mismatch")
	}
	for i := range dst {
		dst[i] = 0
	}
	var j, p int
	var xj float64
	for j = 0; j < m.Cols; j++ {
		xj = x[j]
		if xj == 0 {
			continue
		}
		for p = m.ColPtr[j]; p < m.ColPtr[j+1]; p++ {
			dst[m.RowIdx[p]] += m.Values[p] * xj
		}
	}
}

// Validate checks the structural invariants: pointer length, monotone
// pointers, in-range row indices and value slice length.
func (m *Matrix) Validate() error {
	if m.Rows < 0 || m.Cols < 0 {
		return fmt.Errorf("ccs: negative shape %dx%d: %w", m.Rows, m.Cols, ErrMalformed)
	}
	if len(m.ColPtr) != m.Cols+1 || m.ColPtr[0] != 0 {
		return fmt.Errorf("ccs: column pointer length %d for %d columns: %w", len(m.ColPtr), m.Cols, ErrMalformed)
	}
	for j := 0; j < m.Cols; j++ {
		if m.ColPtr[j+1] < m.ColPtr[j] {
			return fmt.Errorf("ccs: column %d pointer decreases: %w", j, ErrMalformed)
		}
	}
	nnz := m.ColPtr[m.Cols]
	if len(m.RowIdx) < nnz || (m.Values != nil && len(m.Values) < nnz) {
		return fmt.Errorf("ccs: %d entries declared, storage too short: %w", nnz, ErrMalformed)
	}
	for p := 0; p < nnz; p++ {
		if m.RowIdx[p] < 0 || m.RowIdx[p] >= m.Rows {
			return fmt.Errorf("ccs: entry %d row %d: %w", p, m.RowIdx[p], ErrMalformed)
		}
	}

	return nil
}
