// SPDX-License-Identifier: MIT

package direct_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsparse/ccs"
	"github.com/katalvlaran/lvsparse/direct"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const solveTol = 1e-9

// toCCS converts a row-major dense slice into CCS, skipping zeros.
func toCCS(rows [][]float64) *ccs.Matrix {
	r, c := len(rows), len(rows[0])
	m := ccs.New(r, c, 0)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			if rows[i][j] != 0 {
				m.RowIdx = append(m.RowIdx, i)
				m.Values = append(m.Values, rows[i][j])
			}
		}
		m.ColPtr[j+1] = len(m.RowIdx)
	}

	return m
}

func mulDense(rows [][]float64, x []float64) []float64 {
	b := make([]float64, len(rows))
	for i, row := range rows {
		for j, v := range row {
			b[i] += v * x[j]
		}
	}

	return b
}

// randomSystem builds an n×n sparse matrix with density d and a dominant
// diagonal. symmetric mirrors the strict lower part.
func randomSystem(rnd *rand.Rand, n int, d float64, symmetric bool) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || rnd.Float64() >= d {
				continue
			}
			if symmetric && j > i {
				continue
			}
			v := rnd.Float64()*2 - 1
			rows[i][j] = v
			if symmetric {
				rows[j][i] = v
			}
		}
	}
	for i := 0; i < n; i++ {
		rows[i][i] = float64(n)/4 + 1
	}

	return rows
}

func gonumSolve(t *testing.T, rows [][]float64, b []float64) []float64 {
	t.Helper()
	n := len(rows)
	data := make([]float64, 0, n*n)
	for _, row := range rows {
		data = append(data, row...)
	}
	var x mat.VecDense
	require.NoError(t, x.SolveVec(mat.NewDense(n, n, data), mat.NewVecDense(n, b)))

	return x.RawVector().Data
}

func TestLDL_SPD3x3(t *testing.T) {
	rows := [][]float64{
		{4, 1, 0},
		{1, 3, 1},
		{0, 1, 2},
	}
	want := []float64{1, -1, 2}
	a := toCCS(rows)

	sym, err := direct.AnalyzeLDL(a)
	require.NoError(t, err)
	require.Len(t, sym.Perm, 3)

	f, err := direct.FactorLDL(a, sym)
	require.NoError(t, err)
	assert.Equal(t, 3, f.Dim())

	x, err := f.Solve(mulDense(rows, want))
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, x, solveTol)
}

func TestLDL_SymbolicReuseAfterValueChange(t *testing.T) {
	rows := [][]float64{
		{4, 1, 0},
		{1, 3, 1},
		{0, 1, 2},
	}
	a := toCCS(rows)
	sym, err := direct.AnalyzeLDL(a)
	require.NoError(t, err)

	// Same pattern, new values.
	rows2 := [][]float64{
		{10, -2, 0},
		{-2, 7, 3},
		{0, 3, 9},
	}
	a2 := toCCS(rows2)
	f, err := direct.FactorLDL(a2, sym)
	require.NoError(t, err)
	want := []float64{0.5, 2, -1}
	x, err := f.Solve(mulDense(rows2, want))
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, x, solveTol)
}

func TestLDL_ZeroPivot(t *testing.T) {
	a := toCCS([][]float64{
		{0, 1},
		{1, 0},
	})
	sym, err := direct.AnalyzeLDL(a)
	require.NoError(t, err)
	_, err = direct.FactorLDL(a, sym)
	require.ErrorIs(t, err, direct.ErrZeroPivot)
}

func TestLDL_EliminationTreeOfTridiagonal(t *testing.T) {
	const n = 6
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		rows[i][i] = 4
		if i > 0 {
			rows[i][i-1], rows[i-1][i] = -1, -1
		}
	}
	sym, err := direct.AnalyzeLDL(toCCS(rows))
	require.NoError(t, err)
	// A path graph ordered by AMD never fills: n-1 off-diagonal entries,
	// exactly one root.
	assert.Equal(t, n-1, sym.NnzL())
	roots := 0
	for _, p := range sym.Parent {
		if p == -1 {
			roots++
		}
	}
	assert.Equal(t, 1, roots)
}

func TestLDL_RandomAgainstDense(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for _, n := range []int{1, 2, 5, 20, 60} {
		rows := randomSystem(rnd, n, 0.15, true)
		want := make([]float64, n)
		for i := range want {
			want[i] = rnd.NormFloat64()
		}
		b := mulDense(rows, want)
		a := toCCS(rows)
		sym, err := direct.AnalyzeLDL(a)
		require.NoError(t, err)
		f, err := direct.FactorLDL(a, sym)
		require.NoError(t, err)
		x, err := f.Solve(b)
		require.NoError(t, err)
		dist := floats.Distance(x, gonumSolve(t, rows, b), math.Inf(1))
		assert.Less(t, dist, 1e-8, "n=%d", n)
	}
}

func TestLU_Nonsymmetric3x3(t *testing.T) {
	rows := [][]float64{
		{4, 1, 0},
		{2, 5, 1},
		{0, 3, 6},
	}
	want := []float64{1, 2, 3}
	a := toCCS(rows)
	sym, err := direct.AnalyzeLU(a)
	require.NoError(t, err)
	f, err := direct.FactorLU(a, sym, direct.DefaultSettings())
	require.NoError(t, err)
	x, err := f.Solve([]float64{6, 15, 24})
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, x, solveTol)
}

func TestLU_RequiresPivoting(t *testing.T) {
	rows := [][]float64{
		{0, 2, 1},
		{1, 0, 0},
		{0, 1, 3},
	}
	want := []float64{-1, 0.5, 2}
	a := toCCS(rows)
	sym, err := direct.AnalyzeLU(a)
	require.NoError(t, err)
	f, err := direct.FactorLU(a, sym, direct.Settings{PivotTolerance: 1})
	require.NoError(t, err)
	x, err := f.Solve(mulDense(rows, want))
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, x, solveTol)
}

func TestLU_Singular(t *testing.T) {
	a := toCCS([][]float64{
		{1, 2},
		{2, 4},
	})
	sym, err := direct.AnalyzeLU(a)
	require.NoError(t, err)
	_, err = direct.FactorLU(a, sym, direct.Settings{})
	require.ErrorIs(t, err, direct.ErrSingular)
}

func TestLU_EmptyColumnIsSingular(t *testing.T) {
	a := toCCS([][]float64{
		{1, 0},
		{3, 0},
	})
	sym, err := direct.AnalyzeLU(a)
	require.NoError(t, err)
	_, err = direct.FactorLU(a, sym, direct.Settings{})
	require.ErrorIs(t, err, direct.ErrSingular)
}

func TestLU_StorageGrowth(t *testing.T) {
	// A tiny initial guess forces several reallocations.
	rnd := rand.New(rand.NewSource(11))
	const n = 30
	rows := randomSystem(rnd, n, 0.3, false)
	a := toCCS(rows)
	sym, err := direct.AnalyzeLU(a)
	require.NoError(t, err)
	sym.Lnz, sym.Unz = 1, 1

	f, err := direct.FactorLU(a, sym, direct.Settings{})
	require.NoError(t, err)
	want := make([]float64, n)
	for i := range want {
		want[i] = float64(i%5) - 2
	}
	x, err := f.Solve(mulDense(rows, want))
	require.NoError(t, err)
	assert.InDeltaSlice(t, want, x, 1e-8)
}

func TestLU_RandomAgainstDense(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	for _, n := range []int{1, 3, 10, 40, 80} {
		rows := randomSystem(rnd, n, 0.1, false)
		b := make([]float64, n)
		for i := range b {
			b[i] = rnd.Float64()
		}
		a := toCCS(rows)
		sym, err := direct.AnalyzeLU(a)
		require.NoError(t, err)
		f, err := direct.FactorLU(a, sym, direct.DefaultSettings())
		require.NoError(t, err)
		x, err := f.Solve(b)
		require.NoError(t, err)
		dist := floats.Distance(x, gonumSolve(t, rows, b), math.Inf(1))
		assert.Less(t, dist, 1e-8, "n=%d", n)
	}
}

func TestPreconditions(t *testing.T) {
	_, err := direct.AnalyzeLDL(nil)
	require.ErrorIs(t, err, direct.ErrNilMatrix)
	_, err = direct.AnalyzeLU(ccs.New(2, 3, 0))
	require.ErrorIs(t, err, direct.ErrNonSquare)

	a := toCCS([][]float64{{2, 0}, {0, 3}})
	sym, err := direct.AnalyzeLU(a)
	require.NoError(t, err)
	big := toCCS([][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	_, err = direct.FactorLU(big, sym, direct.Settings{})
	require.ErrorIs(t, err, direct.ErrDimensionMismatch)

	f, err := direct.FactorLU(a, sym, direct.Settings{})
	require.NoError(t, err)
	_, err = f.Solve([]float64{1})
	require.ErrorIs(t, err, direct.ErrDimensionMismatch)
}

func TestFactorInterface(t *testing.T) {
	a := toCCS([][]float64{{2, 1}, {1, 2}})
	symL, err := direct.AnalyzeLDL(a)
	require.NoError(t, err)
	ldl, err := direct.FactorLDL(a, symL)
	require.NoError(t, err)
	symU, err := direct.AnalyzeLU(a)
	require.NoError(t, err)
	lu, err := direct.FactorLU(a, symU, direct.Settings{})
	require.NoError(t, err)

	for _, f := range []direct.Factor{ldl, lu} {
		x, err := f.Solve([]float64{3, 3})
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{1, 1}, x, solveTol)
	}
}
