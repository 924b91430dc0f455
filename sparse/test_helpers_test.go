// SPDX-License-Identifier: MIT
// Package sparse_test: shared fixtures.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const tol = 1e-9

// mustRows builds a sparse matrix from row-major literals, storing nonzeros.
func mustRows(t *testing.T, rows [][]float64) *sparse.Matrix {
	t.Helper()
	r, c := len(rows), len(rows[0])
	data := make([]float64, 0, r*c)
	for _, row := range rows {
		data = append(data, row...)
	}
	m, err := sparse.FromDense(mat.NewDense(r, c, data))
	require.NoError(t, err)

	return m
}

// randomSparse draws an r×c matrix with roughly density·r·c stored cells.
func randomSparse(t *testing.T, rnd *rand.Rand, r, c int, density float64) *sparse.Matrix {
	t.Helper()
	var ri, ci []int
	var v []float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if rnd.Float64() < density {
				ri = append(ri, i)
				ci = append(ci, j)
				v = append(v, rnd.NormFloat64())
			}
		}
	}
	m, err := sparse.FromTriplets(r, c, ri, ci, v)
	require.NoError(t, err)

	return m
}

// dominant returns an n×n random sparse matrix with a strictly dominant
// diagonal.
func dominant(t *testing.T, rnd *rand.Rand, n int, density float64, symmetric bool) *sparse.Matrix {
	t.Helper()
	m, err := sparse.New(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			if rnd.Float64() >= density {
				continue
			}
			v := rnd.Float64() - 0.5
			require.NoError(t, m.Set(i, j, v))
			if symmetric {
				require.NoError(t, m.Set(j, i, v))
			} else {
				require.NoError(t, m.Set(j, i, rnd.Float64()-0.5))
			}
		}
	}
	for i := 0; i < n; i++ {
		require.NoError(t, m.Set(i, i, float64(n)))
	}

	return m
}

func dense(t *testing.T, m *sparse.Matrix) *mat.Dense {
	t.Helper()
	d, err := m.ToDense()
	require.NoError(t, err)

	return d
}

func mulVec(t *testing.T, m *sparse.Matrix, x []float64) []float64 {
	t.Helper()
	b, err := m.MulVec(x)
	require.NoError(t, err)

	return b
}
