// SPDX-License-Identifier: MIT

package sparse

import (
	"github.com/katalvlaran/lvsparse/iterative"
)

// Solve returns x with m*x = b.
//
// Gauss-Seidel is tried first. When the system is ineligible or the sweep
// fails (no convergence, NaN), Solve falls back to a direct factorization.
// LDLᵗ is selected automatically only when m is symmetric within the
// symmetry epsilon and every diagonal entry is positive; any other matrix,
// including symmetric ones with a zero or negative diagonal entry, takes LU
// with threshold partial pivoting. LDLᵗ does not pivot, so a symmetric
// indefinite system can still fail with direct.ErrZeroPivot on that path.
// WithSymmetric overrides the selection; WithDirectOnly and
// WithIterativeOnly restrict the strategy.
//
// Direct factors are cached on m and reused until m changes: a value-only
// change keeps the ordering and symbolic analysis.
//
// Errors: ErrNonSquare, ErrDimensionMismatch; direct.ErrZeroPivot and
// direct.ErrSingular from the factorization; the iterative error under
// WithIterativeOnly.
func (m *Matrix) Solve(b []float64, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	if err := m.validateSystem(b, o); err != nil {
		return nil, err
	}
	if !o.directOnly {
		res, err := iterative.GaussSeidel(m, b, o.iterativeSettings())
		if err == nil {
			tracer().Debugf("solve: iterative path converged in %d sweeps", res.Stats.Iterations)
			return res.X, nil
		}
		if o.iterativeOnly {
			return nil, sparseErrorf(opSolve, err)
		}
		tracer().Infof("solve: falling back to direct solver: %v", err)
	}

	return m.solveDirect(b, o)
}

// SolveDirect solves m*x = b by factorization only. Strategy options are
// ignored.
func (m *Matrix) SolveDirect(b []float64, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	if err := m.validateSystem(b, o); err != nil {
		return nil, err
	}

	return m.solveDirect(b, o)
}

// SolveIterative solves m*x = b by Gauss-Seidel only, returning the full
// iterative result. Strategy options are ignored.
func (m *Matrix) SolveIterative(b []float64, opts ...Option) (iterative.Result, error) {
	o := gatherOptions(opts...)
	if err := m.validateSystem(b, o); err != nil {
		return iterative.Result{}, err
	}
	res, err := iterative.GaussSeidel(m, b, o.iterativeSettings())
	if err != nil {
		return iterative.Result{}, sparseErrorf(opSolve, err)
	}

	return res, nil
}

// SolveSparse solves m*x = b for an n×1 sparse b and returns x as an n×1
// sparse matrix holding the nonzero components.
// Errors: ErrBadShape when b is not a column; others as Solve.
func (m *Matrix) SolveSparse(b *Matrix, opts ...Option) (*Matrix, error) {
	if err := validateNotNil(b); err != nil {
		return nil, sparseErrorf(opSolve, err)
	}
	if b.cols != 1 {
		return nil, sparseErrorf(opSolve, ErrBadShape)
	}
	if b.rows != m.rows {
		return nil, sparseErrorf(opSolve, ErrDimensionMismatch)
	}
	rhs := make([]float64, b.rows)
	b.DoCol(0, func(i int, v float64) { rhs[i] = v })
	x, err := m.Solve(rhs, opts...)
	if err != nil {
		return nil, err
	}
	out := newMatrix(len(x), 1, 0)
	for i, v := range x {
		if v != 0 {
			out.appendTail(i, 0, v)
		}
	}

	return out, nil
}

func (m *Matrix) validateSystem(b []float64, o Options) error {
	if err := validateSquare(m); err != nil {
		return sparseErrorf(opSolve, err)
	}
	if err := validateVecLen(b, m.rows); err != nil {
		return sparseErrorf(opSolve, err)
	}
	if o.initialGuess != nil {
		if err := validateVecLen(o.initialGuess, m.rows); err != nil {
			return sparseErrorf(opSolve, err)
		}
	}

	return nil
}

func (m *Matrix) solveDirect(b []float64, o Options) ([]float64, error) {
	symmetric := o.symmetric
	if !o.symmetricSet {
		symmetric = m.prefersLDL(o.symEps)
	}
	f, err := m.cache.ensureCurrent(m, symmetric, o.directSettings())
	if err != nil {
		return nil, sparseErrorf(opSolve, err)
	}
	x, err := f.Solve(b)
	if err != nil {
		return nil, sparseErrorf(opSolve, err)
	}

	return x, nil
}

// prefersLDL reports whether the symmetric path is chosen without an
// explicit WithSymmetric: m is symmetric within eps and its diagonal is
// strictly positive. A symmetric matrix with a nonpositive diagonal entry
// is not positive definite, and LDLᵗ without pivoting is unreliable there.
func (m *Matrix) prefersLDL(eps float64) bool {
	for _, d := range m.Diagonal() {
		if !(d > 0) {
			return false
		}
	}

	return m.IsSymmetric(eps)
}
