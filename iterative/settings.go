// SPDX-License-Identifier: MIT

package iterative

// Defaults applied to zero-valued Settings fields.
const (
	DefaultMinDim                 = 10
	DefaultTolerance              = 1e-10
	DefaultInitialResidualCeiling = 10.0
	DefaultDominanceRatio         = 1.0
	DefaultRelaxation             = 1.0
	DefaultIterationFactor        = 10
	DefaultMaxSearchNodes         = 1 << 16
)

// Settings holds various settings for
// GaussSeidel. Zero values of the fields
// mean default values.
type Settings struct {
	// X0 is an initial guess.
	// If it is nil, every component
	// starts at total(b)/total(A).
	// If it is not nil, its length must
	// be equal to the dimension of the
	// system.
	X0 []float64

	// MinDim is the smallest dimension
	// for which iteration is attempted.
	// Set it to 1 to always try.
	MinDim int

	// Tolerance is the convergence
	// threshold on |b - A*x|₁ / |b|₁.
	Tolerance float64

	// InitialResidualCeiling bounds the
	// normalized residual of the initial
	// guess. A guess at or above it makes
	// the system ineligible.
	InitialResidualCeiling float64

	// DominanceRatio qualifies a column c
	// as a potential diagonal of row r
	// when |a_rc| > DominanceRatio *
	// Σ_{j≠c} |a_rj|.
	DominanceRatio float64

	// Relaxation is the SOR factor ω in
	// (0, 2). One is plain Gauss-Seidel.
	Relaxation float64

	// IterationFactor sets the sweep
	// budget to dim * IterationFactor.
	IterationFactor int

	// MaxSearchNodes caps the number of
	// partial assignments the reordering
	// search may expand.
	MaxSearchNodes int
}

// DefaultSettings returns Settings with every field at its default.
func DefaultSettings() Settings {
	return Settings{
		MinDim:                 DefaultMinDim,
		Tolerance:              DefaultTolerance,
		InitialResidualCeiling: DefaultInitialResidualCeiling,
		DominanceRatio:         DefaultDominanceRatio,
		Relaxation:             DefaultRelaxation,
		IterationFactor:        DefaultIterationFactor,
		MaxSearchNodes:         DefaultMaxSearchNodes,
	}
}

func defaultSettings(s *Settings) {
	if s.MinDim == 0 {
		s.MinDim = DefaultMinDim
	}
	if s.Tolerance == 0 {
		s.Tolerance = DefaultTolerance
	}
	if s.InitialResidualCeiling == 0 {
		s.InitialResidualCeiling = DefaultInitialResidualCeiling
	}
	if s.DominanceRatio == 0 {
		s.DominanceRatio = DefaultDominanceRatio
	}
	if s.Relaxation == 0 {
		s.Relaxation = DefaultRelaxation
	}
	if s.IterationFactor == 0 {
		s.IterationFactor = DefaultIterationFactor
	}
	if s.MaxSearchNodes == 0 {
		s.MaxSearchNodes = DefaultMaxSearchNodes
	}
}
