// SPDX-License-Identifier: MIT

package sparse

import (
	"cmp"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Index is a (row, column) position.
type Index struct {
	Row, Col int
}

// FromTriplets builds a rows×cols matrix from parallel (row, col, value)
// slices. Repeated positions sum.
// Errors: ErrBadShape, ErrDimensionMismatch for unequal slice lengths,
// ErrOutOfRange.
func FromTriplets(rows, cols int, ri, ci []int, v []float64) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, sparseErrorf(opBuild, err)
	}
	if len(ri) != len(ci) || len(ri) != len(v) {
		return nil, sparseErrorf(opBuild, ErrDimensionMismatch)
	}
	for k := range ri {
		if err = validateIndex(m, ri[k], ci[k]); err != nil {
			return nil, sparseErrorf(opBuild, err)
		}
	}
	for k := range ri {
		m.accumulate(ri[k], ci[k], v[k])
	}

	return m, nil
}

// FromFlat builds a rows×cols matrix from row-major flat indices
// k = row*cols + col. Repeated positions sum.
//
// Input sorted ascending (duplicates adjacent) is appended at the chain
// tails in O(1) per entry; any other order falls back to insertion.
func FromFlat(rows, cols int, idx []int, v []float64) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, sparseErrorf(opBuild, err)
	}
	if err = validateFlat(rows, cols, idx, v); err != nil {
		return nil, sparseErrorf(opBuild, err)
	}
	if slices.IsSorted(idx) {
		last, lastID := -1, nilCell
		for k, f := range idx {
			if f == last {
				m.cells[lastID].val += v[k]
				continue
			}
			lastID = m.appendTail(f/cols, f%cols, v[k])
			last = f
		}
		return m, nil
	}
	for k, f := range idx {
		m.accumulate(f/cols, f%cols, v[k])
	}

	return m, nil
}

// FromMap builds a rows×cols matrix from a position→value map. Entries are
// applied in row-major order, so the result does not depend on map
// iteration order.
func FromMap(rows, cols int, entries map[Index]float64) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, sparseErrorf(opBuild, err)
	}
	keys := make([]Index, 0, len(entries))
	for k := range entries {
		if err = validateIndex(m, k.Row, k.Col); err != nil {
			return nil, sparseErrorf(opBuild, err)
		}
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b Index) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})
	for _, k := range keys {
		m.appendTail(k.Row, k.Col, entries[k])
	}

	return m, nil
}

// FromDense stores the nonzero entries of d.
func FromDense(d mat.Matrix) (*Matrix, error) {
	if d == nil {
		return nil, sparseErrorf(opBuild, ErrNilMatrix)
	}
	r, c := d.Dims()
	m := newMatrix(r, c, 0)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := d.At(i, j); v != 0 {
				m.appendTail(i, j, v)
			}
		}
	}

	return m, nil
}

// ReplaceValues zeroes every stored value and then accumulates v at the flat
// row-major positions idx. Topology never changes: every position must
// already be stored, and all of idx is checked before anything is written.
// Errors: ErrDimensionMismatch, ErrOutOfRange, ErrUnknownPosition.
func (m *Matrix) ReplaceValues(idx []int, v []float64) error {
	if err := validateFlat(m.rows, m.cols, idx, v); err != nil {
		return sparseErrorf(opReplace, err)
	}
	ids := make([]int, len(idx))
	for k, f := range idx {
		if ids[k] = m.at(f/m.cols, f%m.cols); ids[k] == nilCell {
			return sparseErrorf(opReplace, fmt.Errorf("(%d, %d): %w", f/m.cols, f%m.cols, ErrUnknownPosition))
		}
	}
	m.Zero()
	for k, id := range ids {
		m.cells[id].val += v[k]
	}

	return nil
}
