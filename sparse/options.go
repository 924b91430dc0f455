// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for the solve entry points.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves a final configuration.
//
// Defaults for the lower packages are re-exported here so there is one place
// to look them up.

package sparse

import (
	"math"

	"github.com/katalvlaran/lvsparse/direct"
	"github.com/katalvlaran/lvsparse/iterative"
)

// ---------- Defaults (single source of truth) ----------

// Iterative solver.
const (
	// DefaultIterativeMinDim is the smallest dimension for which Solve tries
	// Gauss-Seidel before factorizing.
	DefaultIterativeMinDim = iterative.DefaultMinDim

	// DefaultIterativeTolerance is the convergence threshold on |b-Ax|₁/|b|₁.
	DefaultIterativeTolerance = iterative.DefaultTolerance

	// DefaultInitialResidualCeiling bounds the normalized residual of the
	// initial guess.
	DefaultInitialResidualCeiling = iterative.DefaultInitialResidualCeiling

	// DefaultDominanceRatio qualifies a potential diagonal.
	DefaultDominanceRatio = iterative.DefaultDominanceRatio

	// DefaultRelaxation is the SOR factor ω; 1 is plain Gauss-Seidel.
	DefaultRelaxation = iterative.DefaultRelaxation

	// DefaultIterationFactor sets the sweep budget to rows × factor.
	DefaultIterationFactor = iterative.DefaultIterationFactor

	// DefaultMaxSearchNodes caps the reordering search.
	DefaultMaxSearchNodes = iterative.DefaultMaxSearchNodes
)

// Direct solver.
const (
	// DefaultPivotTolerance is the LU diagonal-preference factor.
	DefaultPivotTolerance = direct.DefaultPivotTolerance

	// DefaultSymmetryEpsilon is the tolerance used when Solve decides between
	// the LDLᵗ and LU paths on its own.
	DefaultSymmetryEpsilon = 1e-12
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMinDimInvalid          = "sparse: WithIterativeMinDim: n must be >= 1"
	panicToleranceInvalid       = "sparse: WithTolerance: tol must be in (0, 1)"
	panicCeilingInvalid         = "sparse: WithInitialResidualCeiling: ceiling must be finite and > 0"
	panicDominanceInvalid       = "sparse: WithDominanceRatio: ratio must be finite and > 0"
	panicRelaxationInvalid      = "sparse: WithRelaxation: omega must be in (0, 2)"
	panicIterationFactorInvalid = "sparse: WithIterationFactor: factor must be >= 1"
	panicSearchNodesInvalid     = "sparse: WithMaxSearchNodes: nodes must be >= 1"
	panicPivotTolInvalid        = "sparse: WithPivotTolerance: tol must be in (0, 1]"
	panicSymEpsInvalid          = "sparse: WithSymmetryEpsilon: eps must be finite and >= 0"
	panicExclusiveModes         = "sparse: WithDirectOnly and WithIterativeOnly are mutually exclusive"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
// Fields are unexported; entry points resolve them via gatherOptions.
type Options struct {
	// iterative
	minDim          int
	tolerance       float64
	ceiling         float64
	dominance       float64
	relaxation      float64
	iterationFactor int
	maxSearchNodes  int
	initialGuess    []float64

	// direct
	pivotTol     float64
	symEps       float64
	symmetric    bool
	symmetricSet bool

	// strategy
	directOnly    bool
	iterativeOnly bool
}

func defaultOptions() Options {
	return Options{
		minDim:          DefaultIterativeMinDim,
		tolerance:       DefaultIterativeTolerance,
		ceiling:         DefaultInitialResidualCeiling,
		dominance:       DefaultDominanceRatio,
		relaxation:      DefaultRelaxation,
		iterationFactor: DefaultIterationFactor,
		maxSearchNodes:  DefaultMaxSearchNodes,
		pivotTol:        DefaultPivotTolerance,
		symEps:          DefaultSymmetryEpsilon,
	}
}

// gatherOptions applies opts over the defaults, in order.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.directOnly && o.iterativeOnly {
		panic(panicExclusiveModes)
	}

	return o
}

func (o Options) iterativeSettings() iterative.Settings {
	return iterative.Settings{
		X0:                     o.initialGuess,
		MinDim:                 o.minDim,
		Tolerance:              o.tolerance,
		InitialResidualCeiling: o.ceiling,
		DominanceRatio:         o.dominance,
		Relaxation:             o.relaxation,
		IterationFactor:        o.iterationFactor,
		MaxSearchNodes:         o.maxSearchNodes,
	}
}

func (o Options) directSettings() direct.Settings {
	return direct.Settings{PivotTolerance: o.pivotTol}
}

// ---------- Constructors (WithX) ----------

// WithIterativeMinDim sets the smallest dimension for which iteration is
// attempted. Panics if n < 1.
func WithIterativeMinDim(n int) Option {
	if n < 1 {
		panic(panicMinDimInvalid)
	}

	return func(o *Options) { o.minDim = n }
}

// WithTolerance sets the iterative convergence threshold on the
// normalized residual ‖b−Ax‖₁/‖b‖₁. Panics unless 0 < tol < 1.
// Default: DefaultIterativeTolerance.
func WithTolerance(tol float64) Option {
	if !(tol > 0 && tol < 1) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithInitialResidualCeiling sets the eligibility bound on the initial
// guess's normalized residual. A guess at or above the ceiling makes the
// system ineligible for iteration, so Solve goes straight to the direct
// path. Panics unless ceiling is finite and > 0.
// Default: DefaultInitialResidualCeiling.
func WithInitialResidualCeiling(ceiling float64) Option {
	if !(ceiling > 0) || math.IsInf(ceiling, 0) {
		panic(panicCeilingInvalid)
	}

	return func(o *Options) { o.ceiling = ceiling }
}

// WithDominanceRatio sets the potential-diagonal ratio: a_rc qualifies as
// row r's diagonal when |a_rc| > ratio·Σ_{j≠c}|a_rj|. Values below 1 admit
// weakly dominant rows such as interior stencil rows.
// Panics unless ratio is finite and > 0. Default: DefaultDominanceRatio.
func WithDominanceRatio(ratio float64) Option {
	if !(ratio > 0) || math.IsInf(ratio, 0) {
		panic(panicDominanceInvalid)
	}

	return func(o *Options) { o.dominance = ratio }
}

// WithRelaxation sets the SOR factor ω; 1 is plain Gauss-Seidel.
// Panics unless 0 < ω < 2. Default: DefaultRelaxation.
func WithRelaxation(omega float64) Option {
	if !(omega > 0 && omega < 2) {
		panic(panicRelaxationInvalid)
	}

	return func(o *Options) { o.relaxation = omega }
}

// WithIterationFactor sets the sweep budget multiplier: at most
// factor·n sweeps before the attempt reports no convergence.
// Panics if factor < 1. Default: DefaultIterationFactor.
func WithIterationFactor(factor int) Option {
	if factor < 1 {
		panic(panicIterationFactorInvalid)
	}

	return func(o *Options) { o.iterationFactor = factor }
}

// WithMaxSearchNodes caps the number of partial assignments the dominance
// reordering search may expand. Exhausting it makes the system ineligible.
// Panics if nodes < 1. Default: DefaultMaxSearchNodes.
func WithMaxSearchNodes(nodes int) Option {
	if nodes < 1 {
		panic(panicSearchNodesInvalid)
	}

	return func(o *Options) { o.maxSearchNodes = nodes }
}

// WithPivotTolerance sets the LU diagonal-preference factor: the diagonal
// candidate is kept when its magnitude is at least tol times the largest
// candidate. 1 is strict partial pivoting. Changing it between solves
// drops the cached LU numeric factors.
// Panics unless 0 < tol ≤ 1. Default: DefaultPivotTolerance.
func WithPivotTolerance(tol float64) Option {
	if !(tol > 0 && tol <= 1) {
		panic(panicPivotTolInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithSymmetryEpsilon sets the tolerance of symmetric-path auto-detection.
// Panics unless eps is finite and ≥ 0. Default: DefaultSymmetryEpsilon.
func WithSymmetryEpsilon(eps float64) Option {
	if !(eps >= 0) || math.IsInf(eps, 0) {
		panic(panicSymEpsInvalid)
	}

	return func(o *Options) { o.symEps = eps }
}

// WithSymmetric forces the LDLᵗ path (true) or the LU path (false),
// skipping auto-detection. Without it, LDLᵗ is used only for symmetric
// matrices with a strictly positive diagonal.
func WithSymmetric(symmetric bool) Option {
	return func(o *Options) {
		o.symmetric = symmetric
		o.symmetricSet = true
	}
}

// WithDirectOnly skips the iterative attempt.
func WithDirectOnly() Option {
	return func(o *Options) { o.directOnly = true }
}

// WithIterativeOnly disables the fallback: a soft iterative failure is
// returned as the error.
func WithIterativeOnly() Option {
	return func(o *Options) { o.iterativeOnly = true }
}

// WithInitialGuess supplies x0 for the iterative attempt. Its length is
// checked against the system when solving.
func WithInitialGuess(x0 []float64) Option {
	x := append([]float64(nil), x0...)

	return func(o *Options) { o.initialGuess = x }
}
