// SPDX-License-Identifier: MIT
// Package sparse: canonical precondition checks.
//
// Validators return the plain sentinel wrapped with the validator tag; the
// calling operation wraps once more with its own tag. All checks are O(1)
// except validateFlat, which is O(len(idx)).

package sparse

import "fmt"

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil rejects a nil operand.
func validateNotNil(m *Matrix) error {
	if m == nil {
		return validatorErrorf("validateNotNil", ErrNilMatrix)
	}

	return nil
}

// validateIndex checks 0 <= i < rows and 0 <= j < cols.
func validateIndex(m *Matrix, i, j int) error {
	if i < 0 || i >= m.rows {
		return validatorErrorf(fmt.Sprintf("validateIndex: row %d", i), ErrOutOfRange)
	}
	if j < 0 || j >= m.cols {
		return validatorErrorf(fmt.Sprintf("validateIndex: col %d", j), ErrOutOfRange)
	}

	return nil
}

// validateSameShape checks that a and b are non-nil with equal dimensions.
func validateSameShape(a, b *Matrix) error {
	if err := validateNotNil(b); err != nil {
		return err
	}
	if a.rows != b.rows {
		return validatorErrorf("validateSameShape: rows", ErrDimensionMismatch)
	}
	if a.cols != b.cols {
		return validatorErrorf("validateSameShape: cols", ErrDimensionMismatch)
	}

	return nil
}

// validateSquare checks rows == cols.
func validateSquare(m *Matrix) error {
	if m.rows != m.cols {
		return validatorErrorf("validateSquare", ErrNonSquare)
	}

	return nil
}

// validateVecLen checks len(x) == n.
func validateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("validateVecLen: got %d, want %d", len(x), n), ErrDimensionMismatch)
	}

	return nil
}

// validateFlat checks paired index/value slices and every flat row-major
// index against a rows×cols shape.
func validateFlat(rows, cols int, idx []int, v []float64) error {
	if len(idx) != len(v) {
		return validatorErrorf("validateFlat: lengths", ErrDimensionMismatch)
	}
	// k/cols < rows avoids forming rows*cols, which can overflow.
	for _, k := range idx {
		if k < 0 || cols <= 0 || k/cols >= rows {
			return validatorErrorf(fmt.Sprintf("validateFlat: index %d", k), ErrOutOfRange)
		}
	}

	return nil
}
