// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// This file defines ONLY package-level sentinel errors. Operations return them
// wrapped with an operation tag; callers match with errors.Is.
//
// Errors raised by the solver packages (direct.ErrZeroPivot,
// direct.ErrSingular, iterative.ErrIneligible, ...) pass through Solve
// wrapped, so they can be matched the same way.

package sparse

import "errors"

var (
	// ErrBadShape is returned for negative dimensions, or for a zero-sized
	// matrix where a non-empty one is required (dense conversion, sparse
	// right-hand side not shaped n×1).
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand dimensions, e.g.
	// Add of different shapes, Mul with a.Cols != b.Rows, or a vector of the
	// wrong length.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("sparse: matrix is not square")

	// ErrNilMatrix indicates a nil operand.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrDivideByZero is returned by Divide with a zero divisor.
	ErrDivideByZero = errors.New("sparse: division by zero")

	// ErrUnknownPosition is returned by ReplaceValues when an index does not
	// name a stored cell. No value is changed in that case.
	ErrUnknownPosition = errors.New("sparse: position not stored")
)
