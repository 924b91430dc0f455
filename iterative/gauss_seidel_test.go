// SPDX-License-Identifier: MIT

package iterative_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsparse/iterative"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// denseRows adapts a *mat.Dense to RowMatrix, skipping zeros.
type denseRows struct{ *mat.Dense }

func (d denseRows) DoRow(i int, fn func(j int, v float64)) {
	_, c := d.Dims()
	for j := 0; j < c; j++ {
		if v := d.At(i, j); v != 0 {
			fn(j, v)
		}
	}
}

func tridiagonal(n int, diag, off float64) *mat.Dense {
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		a.Set(i, i, diag)
		if i > 0 {
			a.Set(i, i-1, off)
			a.Set(i-1, i, off)
		}
	}

	return a
}

func mulVec(a mat.Matrix, x []float64) []float64 {
	r, _ := a.Dims()
	var b mat.VecDense
	b.MulVec(a, mat.NewVecDense(len(x), x))
	out := make([]float64, r)
	copy(out, b.RawVector().Data)

	return out
}

func denseSolve(t *testing.T, a mat.Matrix, b []float64) []float64 {
	t.Helper()
	var x mat.VecDense
	require.NoError(t, x.SolveVec(a, mat.NewVecDense(len(b), b)))

	return x.RawVector().Data
}

// blockDivergent is block-diagonal with [[1 2] [2 1]] blocks: every row
// passes a loose dominance ratio, yet Gauss-Seidel amplifies the error by 4
// per sweep.
func blockDivergent(n int) *mat.Dense {
	a := mat.NewDense(n, n, nil)
	for i := 0; i+1 < n; i += 2 {
		a.Set(i, i, 1)
		a.Set(i, i+1, 2)
		a.Set(i+1, i, 2)
		a.Set(i+1, i+1, 1)
	}

	return a
}

func alternating(n int) []float64 {
	x := make([]float64, n)
	for i := 0; i < n; i += 2 {
		x[i] = 1
	}

	return x
}

func TestGaussSeidel_DominantMatchesDirect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lvsparse.iterative")
	defer teardown()

	rnd := rand.New(rand.NewSource(1))
	const n = 20
	a := tridiagonal(n, 4, -1)
	want := make([]float64, n)
	for i := range want {
		want[i] = rnd.Float64()
	}
	b := mulVec(a, want)

	res, err := iterative.GaussSeidel(denseRows{a}, b, iterative.DefaultSettings())
	require.NoError(t, err)
	assert.False(t, res.Stats.Reordered)
	assert.Greater(t, res.Stats.Iterations, 0)
	assert.LessOrEqual(t, res.Stats.ResidualNorm, iterative.DefaultTolerance)
	assert.True(t, floats.EqualApprox(res.X, denseSolve(t, a, b), 1e-8))
}

func TestGaussSeidel_SOR(t *testing.T) {
	const n = 16
	a := tridiagonal(n, 3, -1)
	b := mulVec(a, alternating(n))
	res, err := iterative.GaussSeidel(denseRows{a}, b, iterative.Settings{Relaxation: 1.2})
	require.NoError(t, err)
	assert.True(t, floats.EqualApprox(res.X, alternating(n), 1e-8))
}

func TestGaussSeidel_ReversedRowsNeedReordering(t *testing.T) {
	const n = 12
	base := tridiagonal(n, 5, 1)
	// Reverse the row order: the dominant entry of row r sits in column n-1-r.
	a := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		a.SetRow(i, mat.Row(nil, n-1-i, base))
	}
	want := make([]float64, n)
	for i := range want {
		want[i] = float64(i) / n
	}
	b := mulVec(a, want)

	res, err := iterative.GaussSeidel(denseRows{a}, b, iterative.Settings{})
	require.NoError(t, err)
	assert.True(t, res.Stats.Reordered)
	assert.Equal(t, n, res.Stats.SearchNodes)
	assert.True(t, floats.EqualApprox(res.X, want, 1e-8))
}

func TestGaussSeidel_Ineligible(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lvsparse.iterative")
	defer teardown()

	// Diagonal 2, off-diagonal 1: no entry dominates its row, whatever the
	// permutation. b = A*1 makes the uniform guess exact.
	const n = 10
	full := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			full.Set(i, j, 1)
		}
		full.Set(i, i, 2)
	}
	ones := make([]float64, n)
	floats.AddConst(1, ones)

	tests := []struct {
		name   string
		a      *mat.Dense
		b      []float64
		s      iterative.Settings
		reason error
	}{
		{"too small", tridiagonal(3, 4, 1), []float64{1, 1, 1}, iterative.Settings{}, iterative.ErrTooSmall},
		{"poor guess", tridiagonal(n, 4, 1), ones, iterative.Settings{X0: func() []float64 {
			x := make([]float64, n)
			floats.AddConst(1e6, x)
			return x
		}()}, iterative.ErrPoorInitialGuess},
		{"not dominant", full, mulVec(full, ones), iterative.Settings{}, iterative.ErrNotDominant},
		{"no bijection", mat.NewDense(2, 2, []float64{5, 1, 5, 2}), []float64{6, 7},
			iterative.Settings{MinDim: 1}, iterative.ErrNoAssignment},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := iterative.GaussSeidel(denseRows{tc.a}, tc.b, tc.s)
			require.ErrorIs(t, err, iterative.ErrIneligible)
			require.ErrorIs(t, err, tc.reason)
			assert.Nil(t, res.X)
		})
	}
}

func TestGaussSeidel_SoftFailures(t *testing.T) {
	const n = 10
	a := blockDivergent(n)
	b := mulVec(a, alternating(n))

	res, err := iterative.GaussSeidel(denseRows{a}, b, iterative.Settings{DominanceRatio: 0.4, IterationFactor: 1})
	require.ErrorIs(t, err, iterative.ErrNoConvergence)
	assert.Nil(t, res.X)

	// Long enough for the iterate to overflow and the residual to turn NaN.
	res, err = iterative.GaussSeidel(denseRows{a}, b, iterative.Settings{DominanceRatio: 0.4, IterationFactor: 100})
	require.ErrorIs(t, err, iterative.ErrNaN)
	assert.Nil(t, res.X)
}

func TestGaussSeidel_ZeroRightHandSide(t *testing.T) {
	a := tridiagonal(10, 4, 1)
	res, err := iterative.GaussSeidel(denseRows{a}, make([]float64, 10), iterative.Settings{})
	require.NoError(t, err)
	assert.Equal(t, make([]float64, 10), res.X)
}

func TestGaussSeidel_Preconditions(t *testing.T) {
	a := tridiagonal(10, 4, 1)
	_, err := iterative.GaussSeidel(denseRows{a}, make([]float64, 9), iterative.Settings{})
	require.ErrorIs(t, err, iterative.ErrDimensionMismatch)

	_, err = iterative.GaussSeidel(denseRows{a}, make([]float64, 10), iterative.Settings{X0: []float64{1}})
	require.ErrorIs(t, err, iterative.ErrDimensionMismatch)

	_, err = iterative.GaussSeidel(denseRows{mat.NewDense(2, 3, nil)}, make([]float64, 2), iterative.Settings{})
	require.ErrorIs(t, err, iterative.ErrDimensionMismatch)

	assert.Panics(t, func() {
		_, _ = iterative.GaussSeidel(denseRows{a}, make([]float64, 10), iterative.Settings{Relaxation: 2})
	})
}

func TestReorder_Backtracks(t *testing.T) {
	// With ratio 0.5, row 0 accepts columns {0,1}, row 1 only {0} and
	// row 2 {1,2}. Giving column 0 to row 0 (larger magnitude) starves
	// column 1, so the search must undo that choice.
	a := mat.NewDense(3, 3, []float64{
		9, 8, 0,
		3, 0, 1,
		0, 5, 6,
	})
	asg, err := iterative.Reorder(denseRows{a}, 0.5, 0)
	require.NoError(t, err)
	assert.True(t, asg.Reordered)
	assert.Equal(t, []int{1, 0, 2}, asg.DiagCol)
	assert.Equal(t, 4, asg.Nodes)

	_, err = iterative.Reorder(denseRows{a}, 0.5, 3)
	require.ErrorIs(t, err, iterative.ErrNoAssignment)
}

func TestReorder_NaturalDiagonal(t *testing.T) {
	asg, err := iterative.Reorder(denseRows{tridiagonal(5, 4, 1)}, 0, 0)
	require.NoError(t, err)
	assert.False(t, asg.Reordered)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, asg.DiagCol)
	assert.Zero(t, asg.Nodes)
}

func TestReorder_ZeroRow(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 0, 0, 0})
	_, err := iterative.Reorder(denseRows{a}, 1, 0)
	require.ErrorIs(t, err, iterative.ErrNotDominant)
}
