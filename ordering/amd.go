// SPDX-License-Identifier: MIT

// Package ordering computes fill-reducing permutations for sparse
// factorization.
//
// AMD is a greedy approximate-minimum-degree elimination over a quotient
// graph. Eliminated nodes become elements; a variable's neighbourhood is
// the union of its remaining variable neighbours and the variable lists of
// its adjacent elements. Instead of recomputing exact external degrees
// (expensive once elements overlap), AMD maintains the classical upper
// bound
//
//	d_i = min( n-k-2,  d_i(old) + |L_p|,  |A_i| + |L_p \ i| + Σ_{e∈E_i, e≠p} |L_e \ L_p| )
//
// after eliminating pivot p at step k, where |L_e \ L_p| is computed for all
// touched elements in one scan of L_p.
//
// The function is pure over sparsity structure: values are ignored, the
// input is never mutated, and the output depends only on the pattern.
package ordering

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/ccs"
)

// node states in the quotient graph.
const (
	stVariable = iota // not yet eliminated
	stElement         // eliminated, still referenced by variables
	stAbsorbed        // eliminated and subsumed by a later element
)

const none = -1

// AMD returns a fill-reducing permutation p of the square matrix a: p[k]
// is the column eliminated at step k. The pattern used is that of A+Aᵗ
// with the diagonal dropped. A 0×0 input yields an empty permutation.
//
// Errors:
//   - ErrNonSquare when a.Rows != a.Cols.
//
// Complexity:
//   - Time roughly O(nnz · average element overlap); Space O(n + nnz).
func AMD(a *ccs.Matrix) ([]int, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	if a.Rows != a.Cols {
		return nil, fmt.Errorf("AMD(%dx%d): %w", a.Rows, a.Cols, ErrNonSquare)
	}
	n := a.Cols
	if n == 0 {
		return []int{}, nil
	}

	q := newQuotient(symmetricPattern(a))
	perm := make([]int, 0, n)
	for k := 0; k < n; k++ {
		p := q.popMin()
		perm = append(perm, p)
		q.eliminate(p, n-k-2)
	}

	return perm, nil
}

// Invert returns the inverse permutation: inv[p[k]] = k.
func Invert(p []int) []int {
	inv := make([]int, len(p))
	for k, v := range p {
		inv[v] = k
	}

	return inv
}

// symmetricPattern builds adjacency lists of A+Aᵗ without the diagonal.
// It works on a private transposed copy; a itself is only read.
func symmetricPattern(a *ccs.Matrix) [][]int {
	n := a.Cols
	t := a.Transpose()
	adj := make([][]int, n)
	mark := make([]int, n)
	for i := range mark {
		mark[i] = none
	}

	var j, p, i int
	for j = 0; j < n; j++ {
		mark[j] = j // drops the diagonal and de-duplicates within column j
		for p = a.ColPtr[j]; p < a.ColPtr[j+1]; p++ {
			if i = a.RowIdx[p]; mark[i] != j {
				mark[i] = j
				adj[j] = append(adj[j], i)
			}
		}
		for p = t.ColPtr[j]; p < t.ColPtr[j+1]; p++ {
			if i = t.RowIdx[p]; mark[i] != j {
				mark[i] = j
				adj[j] = append(adj[j], i)
			}
		}
	}

	return adj
}

// quotient is the elimination state.
type quotient struct {
	n      int
	state  []int
	vars   [][]int // A_i: variable neighbours of variable i
	elems  [][]int // E_i: element neighbours of variable i
	lvars  [][]int // L_e: variable list of element e
	degree []int

	// degree buckets: doubly linked lists threaded through next/prev.
	head       []int
	next, prev []int
	minDeg     int

	mark []int // scratch: stamp per node
	w    []int // scratch: |L_e \ L_p| per element, none when unset
	tag  int
}

func newQuotient(adj [][]int) *quotient {
	n := len(adj)
	q := &quotient{
		n:      n,
		state:  make([]int, n),
		vars:   adj,
		elems:  make([][]int, n),
		lvars:  make([][]int, n),
		degree: make([]int, n),
		head:   make([]int, n+1),
		next:   make([]int, n),
		prev:   make([]int, n),
		mark:   make([]int, n),
		w:      make([]int, n),
	}
	for d := range q.head {
		q.head[d] = none
	}
	for i := 0; i < n; i++ {
		q.w[i] = none
		q.mark[i] = none
	}
	// Insert in reverse so that equal-degree nodes pop in ascending order.
	for i := n - 1; i >= 0; i-- {
		q.degree[i] = len(adj[i])
		q.push(i)
	}
	q.minDeg = 0

	return q
}

func (q *quotient) push(i int) {
	d := q.degree[i]
	q.prev[i] = none
	q.next[i] = q.head[d]
	if q.head[d] != none {
		q.prev[q.head[d]] = i
	}
	q.head[d] = i
	if d < q.minDeg {
		q.minDeg = d
	}
}

func (q *quotient) unlink(i int) {
	d := q.degree[i]
	if q.prev[i] != none {
		q.next[q.prev[i]] = q.next[i]
	} else {
		q.head[d] = q.next[i]
	}
	if q.next[i] != none {
		q.prev[q.next[i]] = q.prev[i]
	}
}

func (q *quotient) popMin() int {
	for q.head[q.minDeg] == none {
		q.minDeg++
	}
	p := q.head[q.minDeg]
	q.unlink(p)

	return p
}

// eliminate turns variable p into an element, absorbs the elements it
// touches and refreshes the approximate degrees of every variable in L_p.
// remaining is the number of variables left besides the one being updated.
func (q *quotient) eliminate(p, remaining int) {
	q.tag++
	tag := q.tag
	q.state[p] = stElement
	q.mark[p] = tag

	// 1. Form L_p = (A_p ∪ ⋃_{e∈E_p} L_e) restricted to live variables.
	lp := make([]int, 0, len(q.vars[p]))
	for _, v := range q.vars[p] {
		if q.state[v] == stVariable && q.mark[v] != tag {
			q.mark[v] = tag
			lp = append(lp, v)
		}
	}
	for _, e := range q.elems[p] {
		if q.state[e] != stElement {
			continue
		}
		for _, v := range q.lvars[e] {
			if q.state[v] == stVariable && q.mark[v] != tag {
				q.mark[v] = tag
				lp = append(lp, v)
			}
		}
		// e is subsumed by p.
		q.state[e] = stAbsorbed
		q.lvars[e] = nil
	}
	q.lvars[p] = lp
	q.vars[p] = nil
	q.elems[p] = nil

	// 2. w(e) = |L_e \ L_p| for every element adjacent to L_p.
	touched := make([]int, 0)
	for _, i := range lp {
		for _, e := range q.elems[i] {
			if q.state[e] != stElement {
				continue
			}
			if q.w[e] == none {
				q.lvars[e] = liveOnly(q.lvars[e], q.state)
				q.w[e] = len(q.lvars[e])
				touched = append(touched, e)
			}
			q.w[e]--
		}
	}
	// Elements fully covered by L_p carry no extra information: absorb.
	for _, e := range touched {
		if q.w[e] == 0 {
			q.state[e] = stAbsorbed
			q.lvars[e] = nil
		}
	}

	// 3. Prune neighbourhoods and refresh degrees of L_p.
	lpLen := len(lp)
	for _, i := range lp {
		q.unlink(i)

		ext := 0
		elems := q.elems[i][:0]
		for _, e := range q.elems[i] {
			if q.state[e] == stElement && e != p {
				elems = append(elems, e)
				ext += q.w[e]
			}
		}
		q.elems[i] = append(elems, p)

		vars := q.vars[i][:0]
		for _, v := range q.vars[i] {
			if q.state[v] == stVariable && q.mark[v] != tag {
				vars = append(vars, v)
			}
		}
		q.vars[i] = vars

		d := len(vars) + lpLen - 1 + ext
		if bound := q.degree[i] + lpLen; bound < d {
			d = bound
		}
		if remaining < d {
			d = remaining
		}
		if d < 0 {
			d = 0
		}
		q.degree[i] = d
		q.push(i)
	}

	for _, e := range touched {
		q.w[e] = none
	}
}

// liveOnly filters l in place down to variables still live.
func liveOnly(l []int, state []int) []int {
	out := l[:0]
	for _, v := range l {
		if state[v] == stVariable {
			out = append(out, v)
		}
	}

	return out
}
