// SPDX-License-Identifier: MIT

package iterative

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// Assignment maps each row to the column acting as its diagonal.
type Assignment struct {
	// DiagCol[r] is the column whose entry divides row r in a sweep.
	DiagCol []int
	// Reordered is false when the natural diagonal was acceptable.
	Reordered bool
	// Nodes is the number of partial assignments the search expanded.
	Nodes int
}

// candidate is a potential diagonal entry a_rc.
type candidate struct {
	row int
	mag float64
}

// searchFrame is one level of the backtracking worklist: the column being
// assigned and the next candidate to try for it.
type searchFrame struct {
	depth int
	next  int
}

// Reorder finds a row-to-column diagonal assignment under which every row is
// dominated by its diagonal with the given ratio. ratio and maxNodes take
// their defaults when zero.
//
// Implementation:
//   - Stage 1: collect, for every row, the columns whose magnitude exceeds
//     ratio times the rest of the row. A row with none fails ErrNotDominant.
//   - Stage 2: if every row accepts its own column, return the identity.
//   - Stage 3: depth-first backtracking over columns in ascending popularity,
//     trying the candidate rows of each column largest magnitude first.
//     The worklist is an explicit stack; no recursion.
//
// Errors: ErrNotDominant, ErrNoAssignment (also when maxNodes is exceeded),
// ErrDimensionMismatch for non-square input.
func Reorder(a RowMatrix, ratio float64, maxNodes int) (Assignment, error) {
	r, c := a.Dims()
	if r != c {
		return Assignment{}, iterativeErrorf(opReorder, ErrDimensionMismatch)
	}
	if ratio == 0 {
		ratio = DefaultDominanceRatio
	}
	if maxNodes == 0 {
		maxNodes = DefaultMaxSearchNodes
	}

	return reorder(snapshot(a, r), ratio, maxNodes)
}

func reorder(s *rowStore, ratio float64, maxNodes int) (Assignment, error) {
	n := s.n

	// 1. Potential diagonals, grouped by column.
	byCol := make([][]candidate, n)
	natural := true
	var p, row int
	var mag float64
	for row = 0; row < n; row++ {
		found, diagOK := false, false
		for p = s.ptr[row]; p < s.ptr[row+1]; p++ {
			mag = math.Abs(s.val[p])
			if mag > ratio*(s.absSum[row]-mag) {
				byCol[s.col[p]] = append(byCol[s.col[p]], candidate{row: row, mag: mag})
				found = true
				if s.col[p] == row {
					diagOK = true
				}
			}
		}
		if !found {
			return Assignment{}, iterativeErrorf(opReorder, fmt.Errorf("row %d: %w", row, ErrNotDominant))
		}
		natural = natural && diagOK
	}

	// 2. Natural order.
	diag := make([]int, n)
	if natural {
		for row = range diag {
			diag[row] = row
		}

		return Assignment{DiagCol: diag}, nil
	}

	// 3. Backtracking search.
	order := make([]int, n)
	for col := range order {
		if len(byCol[col]) == 0 {
			return Assignment{}, iterativeErrorf(opReorder, fmt.Errorf("column %d: %w", col, ErrNoAssignment))
		}
		order[col] = col
		slices.SortStableFunc(byCol[col], func(x, y candidate) int { return cmp.Compare(y.mag, x.mag) })
	}
	slices.SortStableFunc(order, func(x, y int) int { return cmp.Compare(len(byCol[x]), len(byCol[y])) })

	rowOf := make([]int, n) // rowOf[col] = assigned row or -1
	used := make([]bool, n)
	for col := range rowOf {
		rowOf[col] = -1
	}

	nodes := 0
	stack := arraystack.New()
	stack.Push(&searchFrame{})
	for !stack.Empty() {
		top, _ := stack.Peek()
		f := top.(*searchFrame)
		col := order[f.depth]
		if prev := rowOf[col]; prev >= 0 {
			used[prev] = false
			rowOf[col] = -1
		}

		cands := byCol[col]
		for f.next < len(cands) && used[cands[f.next].row] {
			f.next++
		}
		if f.next == len(cands) {
			stack.Pop()
			continue
		}
		row = cands[f.next].row
		f.next++
		rowOf[col] = row
		used[row] = true

		nodes++
		if nodes > maxNodes {
			tracer().Debugf("reorder: search budget of %d nodes exhausted", maxNodes)
			return Assignment{}, iterativeErrorf(opReorder, fmt.Errorf("search budget exhausted: %w", ErrNoAssignment))
		}
		if f.depth+1 == n {
			for col, row := range rowOf {
				diag[row] = col
			}
			tracer().Debugf("reorder: assignment found after %d nodes", nodes)

			return Assignment{DiagCol: diag, Reordered: true, Nodes: nodes}, nil
		}
		stack.Push(&searchFrame{depth: f.depth + 1})
	}
	tracer().Debugf("reorder: search space exhausted after %d nodes", nodes)

	return Assignment{}, iterativeErrorf(opReorder, ErrNoAssignment)
}
