// SPDX-License-Identifier: MIT

package iterative

import "errors"

// Soft failures are reported as ErrIneligible (wrapping the reason),
// ErrNoConvergence or ErrNaN. Callers holding a direct solver treat all three
// as "no solution" and fall back; none of them comes with a partial X.
var (
	// ErrDimensionMismatch signals a non-square matrix or a right-hand side
	// or initial guess of the wrong length.
	ErrDimensionMismatch = errors.New("iterative: dimension mismatch")

	// ErrIneligible signals that iteration was not attempted.
	ErrIneligible = errors.New("iterative: system not eligible for iteration")

	// ErrTooSmall: the dimension is below Settings.MinDim.
	ErrTooSmall = errors.New("iterative: dimension below minimum")

	// ErrPoorInitialGuess: the initial guess residual exceeds the ceiling.
	ErrPoorInitialGuess = errors.New("iterative: initial guess residual too large")

	// ErrNotDominant: some row has no entry dominating the rest of the row.
	ErrNotDominant = errors.New("iterative: row has no potential diagonal")

	// ErrNoAssignment: no row-to-column diagonal assignment was found within
	// the search budget.
	ErrNoAssignment = errors.New("iterative: no diagonally dominant ordering")

	// ErrNoConvergence: the sweep budget ran out above tolerance.
	ErrNoConvergence = errors.New("iterative: iteration limit reached")

	// ErrNaN: a NaN appeared in the iterate.
	ErrNaN = errors.New("iterative: NaN in iterate")
)
