// SPDX-License-Identifier: MIT

package sparse

import (
	"github.com/katalvlaran/lvsparse/ccs"
	"gonum.org/v1/gonum/mat"
)

// ToDense returns m as a dense matrix. Stored zeros and absent cells are
// indistinguishable in the result.
//
// Errors: ErrBadShape when m has a zero dimension, which gonum's Dense
// cannot represent.
// Complexity: O(rows·cols) space, O(rows·cols + nnz) time.
func (m *Matrix) ToDense() (*mat.Dense, error) {
	if m.rows == 0 || m.cols == 0 {
		return nil, sparseErrorf(opToDense, ErrBadShape)
	}
	d := mat.NewDense(m.rows, m.cols, nil)
	m.DoNonZero(d.Set)

	return d, nil
}

// ToCCS exports m in compressed-column storage, row indices ascending
// within each column.
// Complexity: O(cols + nnz).
func (m *Matrix) ToCCS() *ccs.Matrix {
	out := ccs.New(m.rows, m.cols, m.nnz)
	for j := 0; j < m.cols; j++ {
		for id := m.colFirst[j]; id != nilCell; id = m.cells[id].down {
			out.RowIdx = append(out.RowIdx, m.cells[id].row)
			out.Values = append(out.Values, m.cells[id].val)
		}
		out.ColPtr[j+1] = len(out.RowIdx)
	}

	return out
}
