// SPDX-License-Identifier: MIT
// Package direct: sentinel error set.
//
// Two families live here:
//   - precondition violations (shape, length, mismatched symbolic analysis),
//     reported before any numeric work starts;
//   - structural factorization failures (zero or unusable pivot). These are
//     fatal for the factorization attempt and are never retried internally.
//
// Failures are returned wrapped with the operation tag and, for pivots, the
// failing column: match with errors.Is.

package direct

import "errors"

var (
	// ErrNilMatrix indicates a nil matrix or nil symbolic analysis.
	ErrNilMatrix = errors.New("direct: nil matrix")

	// ErrNonSquare signals that a square system was required.
	ErrNonSquare = errors.New("direct: matrix is not square")

	// ErrDimensionMismatch signals a right-hand side of the wrong length, or a
	// symbolic analysis computed for a different dimension.
	ErrDimensionMismatch = errors.New("direct: dimension mismatch")

	// ErrZeroPivot is returned by the LDLᵗ numeric phase when D[k] == 0.
	ErrZeroPivot = errors.New("direct: zero pivot")

	// ErrSingular is returned by LU when a column has no pivot candidate or the
	// chosen pivot magnitude is not positive.
	ErrSingular = errors.New("direct: singular matrix")
)
