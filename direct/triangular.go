// SPDX-License-Identifier: MIT

package direct

import "github.com/katalvlaran/lvsparse/ccs"

// Triangular and permutation kernels. They operate in place on x and assume
// shapes were validated by the caller. Each runs in O(n + nnz(factor)).

// lsolve solves L*x = b where the diagonal of every column is stored first.
func lsolve(l *ccs.Matrix, x []float64) {
	var j, p int
	for j = 0; j < l.Cols; j++ {
		x[j] /= l.Values[l.ColPtr[j]]
		for p = l.ColPtr[j] + 1; p < l.ColPtr[j+1]; p++ {
			x[l.RowIdx[p]] -= l.Values[p] * x[j]
		}
	}
}

// usolve solves U*x = b where the diagonal of every column is stored last.
func usolve(u *ccs.Matrix, x []float64) {
	var j, p int
	for j = u.Cols - 1; j >= 0; j-- {
		x[j] /= u.Values[u.ColPtr[j+1]-1]
		for p = u.ColPtr[j]; p < u.ColPtr[j+1]-1; p++ {
			x[u.RowIdx[p]] -= u.Values[p] * x[j]
		}
	}
}

// lsolveUnit solves L*x = b for a strictly lower L with implicit unit diagonal.
func lsolveUnit(l *ccs.Matrix, x []float64) {
	var j, p int
	for j = 0; j < l.Cols; j++ {
		for p = l.ColPtr[j]; p < l.ColPtr[j+1]; p++ {
			x[l.RowIdx[p]] -= l.Values[p] * x[j]
		}
	}
}

// ltsolveUnit solves Lᵗ*x = b for a strictly lower L with implicit unit diagonal.
func ltsolveUnit(l *ccs.Matrix, x []float64) {
	var j, p int
	for j = l.Cols - 1; j >= 0; j-- {
		for p = l.ColPtr[j]; p < l.ColPtr[j+1]; p++ {
			x[j] -= l.Values[p] * x[l.RowIdx[p]]
		}
	}
}

// dsolve solves D*x = b for diagonal D.
func dsolve(d, x []float64) {
	for j := range x {
		x[j] /= d[j]
	}
}

// pvec gathers x[k] = b[p[k]].
func pvec(p []int, b, x []float64) {
	for k := range p {
		x[k] = b[p[k]]
	}
}

// ipvec scatters x[p[k]] = b[k].
func ipvec(p []int, b, x []float64) {
	for k := range p {
		x[p[k]] = b[k]
	}
}
