// SPDX-License-Identifier: MIT

package ccs_test

import (
	"testing"

	"github.com/katalvlaran/lvsparse/ccs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sample returns
//
//	[ 4 0 1 ]
//	[ 0 3 0 ]
//	[ 2 0 5 ]
//	[ 0 7 0 ]
func sample() *ccs.Matrix {
	return &ccs.Matrix{
		Rows:   4,
		Cols:   3,
		ColPtr: []int{0, 2, 4, 6},
		RowIdx: []int{0, 2, 1, 3, 0, 2},
		Values: []float64{4, 2, 3, 7, 1, 5},
	}
}

func TestNew_EmptyIsValid(t *testing.T) {
	m := ccs.New(3, 2, 4)
	require.NoError(t, m.Validate())
	assert.Equal(t, 0, m.Nnz())
	assert.Equal(t, 0.0, m.At(1, 1))
}

func TestAt(t *testing.T) {
	m := sample()
	assert.Equal(t, 4.0, m.At(0, 0))
	assert.Equal(t, 7.0, m.At(3, 1))
	assert.Equal(t, 0.0, m.At(1, 2))
}

func TestTranspose(t *testing.T) {
	m := sample()
	tr := m.Transpose()
	require.NoError(t, tr.Validate())
	require.Equal(t, 3, tr.Rows)
	require.Equal(t, 4, tr.Cols)
	require.Equal(t, m.Nnz(), tr.Nnz())

	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			assert.Equal(t, m.At(i, j), tr.At(j, i), "(%d,%d)", i, j)
		}
	}
	// Row indices come out sorted per column.
	for j := 0; j < tr.Cols; j++ {
		for p := tr.ColPtr[j] + 1; p < tr.ColPtr[j+1]; p++ {
			assert.Less(t, tr.RowIdx[p-1], tr.RowIdx[p])
		}
	}
}

func TestTranspose_PatternOnly(t *testing.T) {
	m := sample()
	m.Values = nil
	tr := m.Transpose()
	assert.Nil(t, tr.Values)
	assert.Equal(t, []int{0, 2, 1, 3, 0, 2}, m.RowIdx)
	assert.Equal(t, []int{0, 2, 3, 5, 6}, tr.ColPtr)
}

func TestMulVec(t *testing.T) {
	m := sample()
	dst := make([]float64, 4)
	m.MulVec(dst, []float64{1, 2, 3})
	assert.Equal(t, []float64{7, 6, 17, 14}, dst)

	assert.Panics(t, func() { m.MulVec(dst, []float64{1}) })
}

func TestValidate_Malformed(t *testing.T) {
	for name, m := range map[string]*ccs.Matrix{
		"short pointers": {Rows: 2, Cols: 2, ColPtr: []int{0, 1}},
		"decreasing":     {Rows: 2, Cols: 2, ColPtr: []int{0, 2, 1}, RowIdx: []int{0, 1}, Values: []float64{1, 1}},
		"row range":      {Rows: 2, Cols: 1, ColPtr: []int{0, 1}, RowIdx: []int{5}, Values: []float64{1}},
		"short storage":  {Rows: 2, Cols: 1, ColPtr: []int{0, 2}, RowIdx: []int{0}, Values: []float64{1}},
	} {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, m.Validate(), ccs.ErrMalformed)
		})
	}
}
