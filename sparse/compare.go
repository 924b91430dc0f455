// SPDX-License-Identifier: MIT

package sparse

import "math"

// Equal reports whether a and b have the same shape and the same value at
// every position. An absent cell compares as 0, so an explicit zero equals
// an absent one.
func Equal(a, b *Matrix) bool {
	return EqualApprox(a, b, 0)
}

// EqualApprox is Equal with an absolute tolerance: every position must
// satisfy |a(i,j) - b(i,j)| <= tol, absent cells counting as 0. Both rows
// are merge-walked by column index, so no dense form is built.
// Nil operands or different shapes compare unequal.
//
// Complexity: O(rows + nnz(a) + nnz(b)).
func EqualApprox(a, b *Matrix, tol float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	var pa, pb int
	for i := 0; i < a.rows; i++ {
		pa, pb = a.rowFirst[i], b.rowFirst[i]
		for pa != nilCell || pb != nilCell {
			switch {
			case pb == nilCell || (pa != nilCell && a.cells[pa].col < b.cells[pb].col):
				if math.Abs(a.cells[pa].val) > tol {
					return false
				}
				pa = a.cells[pa].right
			case pa == nilCell || b.cells[pb].col < a.cells[pa].col:
				if math.Abs(b.cells[pb].val) > tol {
					return false
				}
				pb = b.cells[pb].right
			default:
				if !(math.Abs(a.cells[pa].val-b.cells[pb].val) <= tol) {
					return false
				}
				pa, pb = a.cells[pa].right, b.cells[pb].right
			}
		}
	}

	return true
}

// IsSymmetric reports whether m is square and |m(i,j) - m(j,i)| <= eps for
// every stored cell. A stored cell whose mirror is absent is compared
// against 0, so symmetry is a property of values, not of the pattern.
//
// Complexity: O(nnz · lookup), the mirror found with the one-axis walk of Get.
func (m *Matrix) IsSymmetric(eps float64) bool {
	if m.rows != m.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for id := m.rowFirst[i]; id != nilCell; id = m.cells[id].right {
			j := m.cells[id].col
			if j <= i {
				continue
			}
			var mirror float64
			if t := m.at(j, i); t != nilCell {
				mirror = m.cells[t].val
			}
			if !(math.Abs(m.cells[id].val-mirror) <= eps) {
				return false
			}
		}
	}
	// Cells below the diagonal without a mirror above it.
	for j := 0; j < m.cols; j++ {
		for id := m.colFirst[j]; id != nilCell; id = m.cells[id].down {
			i := m.cells[id].row
			if i <= j {
				continue
			}
			if m.at(j, i) == nilCell && math.Abs(m.cells[id].val) > eps {
				return false
			}
		}
	}

	return true
}
