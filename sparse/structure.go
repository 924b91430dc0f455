// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// RemoveRow deletes row i and renumbers every later row down by one.
// Complexity: O(rows + cols + nnz).
func (m *Matrix) RemoveRow(i int) error {
	return m.RemoveRows([]int{i})
}

// RemoveColumn deletes column j and renumbers every later column down by one.
// Complexity: O(rows + cols + nnz).
func (m *Matrix) RemoveColumn(j int) error {
	return m.RemoveColumns([]int{j})
}

// RemoveRows deletes every row named in idx (any order, duplicates ignored)
// in a single pass. Surviving rows keep their relative order and are
// renumbered with a running offset, so the cost does not grow with the
// number of rows removed.
//
// Implementation:
//   - Stage 1: normalize idx into a sorted set and range-check it.
//   - Stage 2: unlink every cell of the removed rows from its column chain.
//   - Stage 3: compact the row headers, renumbering surviving cells.
//   - Stage 4: rebuild the diagonal cache.
//
// Complexity: O(k log k + rows + cols + nnz) for k indices.
func (m *Matrix) RemoveRows(idx []int) error {
	drop, err := normalizeIndices(idx, m.rows)
	if err != nil {
		return sparseErrorf(opRemoveRows, err)
	}
	if len(drop) == 0 {
		return nil
	}
	m.removeRows(drop)

	return nil
}

// RemoveColumns is RemoveRows for columns. It runs on the transposed
// network, which is an O(nnz) relinking in each direction.
//
// Errors: ErrOutOfRange for any index outside [0, Cols()); m is unchanged
// on error. Duplicate indices are removed once.
// Complexity: O(k log k + rows + cols + nnz) for k indices.
func (m *Matrix) RemoveColumns(idx []int) error {
	drop, err := normalizeIndices(idx, m.cols)
	if err != nil {
		return sparseErrorf(opRemoveCols, err)
	}
	if len(drop) == 0 {
		return nil
	}
	m.Transpose()
	m.removeRows(drop)
	m.Transpose()

	return nil
}

// normalizeIndices returns idx sorted ascending without duplicates.
func normalizeIndices(idx []int, n int) ([]int, error) {
	set := treeset.NewWith(utils.IntComparator)
	for _, i := range idx {
		if i < 0 || i >= n {
			return nil, validatorErrorf(fmt.Sprintf("normalizeIndices: %d", i), ErrOutOfRange)
		}
		set.Add(i)
	}
	out := make([]int, 0, set.Size())
	it := set.Iterator()
	for it.Next() {
		out = append(out, it.Value().(int))
	}

	return out, nil
}

// removeRows deletes the sorted, unique, in-range rows in drop.
func (m *Matrix) removeRows(drop []int) {
	// 1. Unlink removed cells from their columns.
	for _, r := range drop {
		for id := m.rowFirst[r]; id != nilCell; {
			next := m.cells[id].right
			m.unlinkCol(id)
			m.release(id)
			m.nnz--
			id = next
		}
		m.rowFirst[r], m.rowLast[r] = nilCell, nilCell
	}

	// 2. Compact row headers. k advances only when r hits the next removed
	//    index, so r-k is the new number of every surviving row.
	k := 0
	for r := 0; r < m.rows; r++ {
		if k < len(drop) && drop[k] == r {
			k++
			continue
		}
		if k == 0 {
			continue
		}
		nr := r - k
		m.rowFirst[nr], m.rowLast[nr] = m.rowFirst[r], m.rowLast[r]
		for id := m.rowFirst[nr]; id != nilCell; id = m.cells[id].right {
			m.cells[id].row = nr
		}
	}
	m.rows -= len(drop)
	m.rowFirst = m.rowFirst[:m.rows]
	m.rowLast = m.rowLast[:m.rows]

	// 3. Diagonal cache.
	m.rebuildDiagonal()
	m.cache.invalidateTopology()
}

// rebuildDiagonal recomputes the diagonal cache from the row chains.
func (m *Matrix) rebuildDiagonal() {
	m.diag = make([]int, min(m.rows, m.cols))
	fillNil(m.diag)
	for i := range m.diag {
		for id := m.rowFirst[i]; id != nilCell && m.cells[id].col <= i; id = m.cells[id].right {
			if m.cells[id].col == i {
				m.diag[i] = id
			}
		}
	}
}

// Transpose transposes m in place: the row and column headers swap, and
// every cell swaps its indices and its (left, up) and (right, down) links.
// The diagonal cache is unchanged.
// Complexity: O(rows + cols + nnz).
func (m *Matrix) Transpose() {
	m.rows, m.cols = m.cols, m.rows
	m.rowFirst, m.colFirst = m.colFirst, m.rowFirst
	m.rowLast, m.colLast = m.colLast, m.rowLast
	for id := range m.cells {
		c := &m.cells[id]
		if c.row < 0 {
			continue
		}
		c.row, c.col = c.col, c.row
		c.left, c.up = c.up, c.left
		c.right, c.down = c.down, c.right
	}
	m.cache.invalidateTopology()
}
