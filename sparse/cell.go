// SPDX-License-Identifier: MIT

package sparse

// nilCell marks an absent link or cache entry.
const nilCell = -1

// cell is one stored entry. Links are arena indices into Matrix.cells.
// A released cell has row < 0 and sits on the free list.
type cell struct {
	row, col    int
	val         float64
	left, right int // row chain, ascending col
	up, down    int // column chain, ascending row
}

// alloc takes a cell from the free list or grows the arena.
func (m *Matrix) alloc(row, col int, v float64) int {
	c := cell{row: row, col: col, val: v, left: nilCell, right: nilCell, up: nilCell, down: nilCell}
	if n := len(m.free); n > 0 {
		id := m.free[n-1]
		m.free = m.free[:n-1]
		m.cells[id] = c
		return id
	}
	m.cells = append(m.cells, c)

	return len(m.cells) - 1
}

// release returns id to the free list. Links must already be patched.
func (m *Matrix) release(id int) {
	m.cells[id] = cell{row: nilCell, col: nilCell, left: nilCell, right: nilCell, up: nilCell, down: nilCell}
	m.free = append(m.free, id)
}

// at returns the cell at (i, j) or nilCell. Diagonal positions resolve
// through the cache; otherwise the lookup walks one axis only: the row
// chain when i >= j, the column chain when i < j.
func (m *Matrix) at(i, j int) int {
	if i == j {
		return m.diag[i]
	}
	if i > j {
		for id := m.rowFirst[i]; id != nilCell; id = m.cells[id].right {
			if c := m.cells[id].col; c >= j {
				if c == j {
					return id
				}
				return nilCell
			}
		}
		return nilCell
	}
	for id := m.colFirst[j]; id != nilCell; id = m.cells[id].down {
		if r := m.cells[id].row; r >= i {
			if r == i {
				return id
			}
			return nilCell
		}
	}

	return nilCell
}

// rowPrev returns the last cell of row i with column < j, or nilCell.
func (m *Matrix) rowPrev(i, j int) int {
	last := m.rowLast[i]
	if last == nilCell || m.cells[last].col < j {
		return last
	}
	prev := nilCell
	for id := m.rowFirst[i]; id != nilCell && m.cells[id].col < j; id = m.cells[id].right {
		prev = id
	}

	return prev
}

// colPrev returns the last cell of column j with row < i, or nilCell.
func (m *Matrix) colPrev(i, j int) int {
	last := m.colLast[j]
	if last == nilCell || m.cells[last].row < i {
		return last
	}
	prev := nilCell
	for id := m.colFirst[j]; id != nilCell && m.cells[id].row < i; id = m.cells[id].down {
		prev = id
	}

	return prev
}

// insert stores a new cell at (i, j), which must be absent.
func (m *Matrix) insert(i, j int, v float64) int {
	return m.insertAfter(i, j, v, m.rowPrev(i, j))
}

// insertAfter is insert with the row predecessor already known.
// Each axis has four placement cases: empty chain, new head, new tail, or
// splice between two cells.
func (m *Matrix) insertAfter(i, j int, v float64, prev int) int {
	id := m.alloc(i, j, v)

	// Row chain.
	var next int
	if prev == nilCell {
		next = m.rowFirst[i]
		m.rowFirst[i] = id
	} else {
		next = m.cells[prev].right
		m.cells[prev].right = id
	}
	m.cells[id].left, m.cells[id].right = prev, next
	if next == nilCell {
		m.rowLast[i] = id
	} else {
		m.cells[next].left = id
	}

	// Column chain.
	up := m.colPrev(i, j)
	var down int
	if up == nilCell {
		down = m.colFirst[j]
		m.colFirst[j] = id
	} else {
		down = m.cells[up].down
		m.cells[up].down = id
	}
	m.cells[id].up, m.cells[id].down = up, down
	if down == nilCell {
		m.colLast[j] = id
	} else {
		m.cells[down].up = id
	}

	if i == j {
		m.diag[i] = id
	}
	m.nnz++
	m.cache.invalidateTopology()

	return id
}

// appendTail stores (i, j) as the new tail of both its row and column.
// The caller guarantees j exceeds every column in row i and i exceeds every
// row in column j.
func (m *Matrix) appendTail(i, j int, v float64) int {
	id := m.alloc(i, j, v)
	if l := m.rowLast[i]; l == nilCell {
		m.rowFirst[i] = id
	} else {
		m.cells[l].right = id
		m.cells[id].left = l
	}
	m.rowLast[i] = id
	if l := m.colLast[j]; l == nilCell {
		m.colFirst[j] = id
	} else {
		m.cells[l].down = id
		m.cells[id].up = l
	}
	m.colLast[j] = id
	if i == j {
		m.diag[i] = id
	}
	m.nnz++
	m.cache.invalidateTopology()

	return id
}

// unlinkRow detaches id from its row chain.
func (m *Matrix) unlinkRow(id int) {
	c := m.cells[id]
	if c.left == nilCell {
		m.rowFirst[c.row] = c.right
	} else {
		m.cells[c.left].right = c.right
	}
	if c.right == nilCell {
		m.rowLast[c.row] = c.left
	} else {
		m.cells[c.right].left = c.left
	}
}

// unlinkCol detaches id from its column chain.
func (m *Matrix) unlinkCol(id int) {
	c := m.cells[id]
	if c.up == nilCell {
		m.colFirst[c.col] = c.down
	} else {
		m.cells[c.up].down = c.down
	}
	if c.down == nilCell {
		m.colLast[c.col] = c.up
	} else {
		m.cells[c.down].up = c.up
	}
}

// remove unlinks id from both axes and frees it.
func (m *Matrix) remove(id int) {
	m.unlinkRow(id)
	m.unlinkCol(id)
	if c := m.cells[id]; c.row == c.col {
		m.diag[c.row] = nilCell
	}
	m.release(id)
	m.nnz--
	m.cache.invalidateTopology()
}

// accumulate adds v at (i, j), creating the cell when absent.
func (m *Matrix) accumulate(i, j int, v float64) {
	if id := m.at(i, j); id != nilCell {
		m.cells[id].val += v
		m.cache.invalidateValues()
		return
	}
	m.insert(i, j, v)
}
