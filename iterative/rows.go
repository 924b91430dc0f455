// SPDX-License-Identifier: MIT

package iterative

import "math"

// RowMatrix is the view of A the solver needs.
type RowMatrix interface {
	// Dims returns the number of rows and columns.
	Dims() (r, c int)
	// DoRow calls fn for every stored entry of row i, once each, in
	// ascending column order.
	DoRow(i int, fn func(j int, v float64))
}

// rowStore is a compact row-major snapshot of a RowMatrix, taken once per
// solve so sweeps do not go through a callback per entry.
type rowStore struct {
	n      int
	ptr    []int
	col    []int
	val    []float64
	absSum []float64 // Σ_j |a_rj|
}

func snapshot(a RowMatrix, n int) *rowStore {
	s := &rowStore{n: n, ptr: make([]int, n+1), absSum: make([]float64, n)}
	for r := 0; r < n; r++ {
		a.DoRow(r, func(j int, v float64) {
			s.col = append(s.col, j)
			s.val = append(s.val, v)
			s.absSum[r] += math.Abs(v)
		})
		s.ptr[r+1] = len(s.col)
	}

	return s
}

// total returns the sum of all stored entries.
func (s *rowStore) total() float64 {
	var t float64
	for _, v := range s.val {
		t += v
	}

	return t
}

// residual writes r = b - A*x and returns |r|₁.
func (s *rowStore) residual(r, b, x []float64) float64 {
	var norm, acc float64
	for i := 0; i < s.n; i++ {
		acc = b[i]
		for p := s.ptr[i]; p < s.ptr[i+1]; p++ {
			acc -= s.val[p] * x[s.col[p]]
		}
		r[i] = acc
		norm += math.Abs(acc)
	}

	return norm
}
