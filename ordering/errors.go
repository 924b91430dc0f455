// SPDX-License-Identifier: MIT

package ordering

import "errors"

var (
	// ErrNilMatrix indicates a nil pattern was passed in.
	ErrNilMatrix = errors.New("ordering: nil matrix")

	// ErrNonSquare indicates the pattern is not square; fill-reducing
	// orderings are only defined for square systems.
	ErrNonSquare = errors.New("ordering: matrix is not square")
)
