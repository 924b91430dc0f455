// SPDX-License-Identifier: MIT

// Package iterative implements a relaxed Gauss-Seidel (SOR) solver for
// sparse systems that are diagonally dominant, possibly only after a
// reordering of which column serves as each row's diagonal.
//
// GaussSeidel never returns a partial answer: an ineligible system, a sweep
// budget running out, or a NaN all come back as an error with a zero Result.
package iterative

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
)

// operation tags used in error wrapping.
const (
	opGaussSeidel = "GaussSeidel"
	opReorder     = "Reorder"
)

func iterativeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

func ineligible(reason error) error {
	return iterativeErrorf(opGaussSeidel, fmt.Errorf("%w: %w", ErrIneligible, reason))
}

// Result holds the result of an iterative solve.
type Result struct {
	// X is the approximate solution.
	X []float64
	// Stats holds the statistics of the
	// solve.
	Stats Stats
}

// Stats holds statistics about an iterative solve.
type Stats struct {
	// Iterations is the number of
	// completed sweeps.
	Iterations int
	// ResidualNorm is the final
	// normalized residual |b-Ax|₁/|b|₁.
	ResidualNorm float64
	// Reordered reports whether a
	// non-natural diagonal was used.
	Reordered bool
	// SearchNodes is the number of
	// partial assignments expanded by
	// the reordering search.
	SearchNodes int
	// StartTime is an approximate time
	// when the solve was started.
	StartTime time.Time
	// Runtime is an approximate duration
	// of the solve.
	Runtime time.Duration
}

// GaussSeidel solves the n×n system
//
//	A*x = b
//
// by relaxed Gauss-Seidel sweeps. Row r is solved for the component x[c]
// where c = DiagCol[r] of the dominance assignment:
//
//	x[c] = (1-ω)*x[c] + ω*(b[r] - Σ_{j≠c} a_rj*x[j]) / a_rc
//
// Eligibility, checked in order: n >= MinDim; the initial guess has
// normalized residual below InitialResidualCeiling; every row has a potential
// diagonal; a complete assignment exists. A zero b yields the zero vector.
//
// settings fields with zero values take their defaults. GaussSeidel panics if
// Relaxation is outside (0, 2).
func GaussSeidel(a RowMatrix, b []float64, settings Settings) (Result, error) {
	stats := Stats{StartTime: time.Now()}

	n, c := a.Dims()
	if n != c || len(b) != n {
		return Result{}, iterativeErrorf(opGaussSeidel, ErrDimensionMismatch)
	}
	if settings.X0 != nil && len(settings.X0) != n {
		return Result{}, iterativeErrorf(opGaussSeidel, ErrDimensionMismatch)
	}
	defaultSettings(&settings)
	if settings.Relaxation <= 0 || settings.Relaxation >= 2 {
		panic("iterative: relaxation factor outside (0, 2)")
	}
	if n < settings.MinDim {
		return Result{}, ineligible(ErrTooSmall)
	}

	bnorm := floats.Norm(b, 1)
	if bnorm == 0 {
		stats.Runtime = time.Since(stats.StartTime)
		return Result{X: make([]float64, n), Stats: stats}, nil
	}

	s := snapshot(a, n)

	// 1. Initial guess.
	x := make([]float64, n)
	if settings.X0 != nil {
		copy(x, settings.X0)
	} else if t := s.total(); t != 0 {
		floats.AddConst(floats.Sum(b)/t, x)
	}
	r := make([]float64, n)
	res := s.residual(r, b, x) / bnorm
	if !(res < settings.InitialResidualCeiling) {
		tracer().Debugf("gauss-seidel: initial residual %g above ceiling %g", res, settings.InitialResidualCeiling)
		return Result{}, ineligible(ErrPoorInitialGuess)
	}

	// 2. Diagonal assignment.
	asg, err := reorder(s, settings.DominanceRatio, settings.MaxSearchNodes)
	if err != nil {
		return Result{}, ineligible(err)
	}
	stats.Reordered = asg.Reordered
	stats.SearchNodes = asg.Nodes

	// 3. Sweeps.
	diagPos := diagonalPositions(s, asg.DiagCol)
	omega := settings.Relaxation
	budget := n * settings.IterationFactor
	var row, p, dc int
	var acc float64
	for stats.Iterations < budget && res > settings.Tolerance {
		for row = 0; row < n; row++ {
			dc = asg.DiagCol[row]
			acc = b[row]
			for p = s.ptr[row]; p < s.ptr[row+1]; p++ {
				if p != diagPos[row] {
					acc -= s.val[p] * x[s.col[p]]
				}
			}
			x[dc] = (1-omega)*x[dc] + omega*acc/s.val[diagPos[row]]
		}
		stats.Iterations++
		res = s.residual(r, b, x) / bnorm
		if floats.HasNaN(x) || math.IsNaN(res) {
			tracer().Debugf("gauss-seidel: NaN after %d sweeps", stats.Iterations)
			return Result{}, iterativeErrorf(opGaussSeidel, ErrNaN)
		}
	}
	stats.ResidualNorm = res
	stats.Runtime = time.Since(stats.StartTime)
	if res > settings.Tolerance {
		tracer().Debugf("gauss-seidel: no convergence in %d sweeps, residual %g", stats.Iterations, res)
		return Result{}, iterativeErrorf(opGaussSeidel, ErrNoConvergence)
	}
	tracer().Debugf("gauss-seidel: converged in %d sweeps, residual %g", stats.Iterations, res)

	return Result{X: x, Stats: stats}, nil
}

// diagonalPositions returns, per row, the storage offset of the entry in
// column diag[row].
func diagonalPositions(s *rowStore, diag []int) []int {
	pos := make([]int, s.n)
	for row := 0; row < s.n; row++ {
		for p := s.ptr[row]; p < s.ptr[row+1]; p++ {
			if s.col[p] == diag[row] {
				pos[row] = p
				break
			}
		}
	}

	return pos
}
