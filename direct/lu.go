// SPDX-License-Identifier: MIT

package direct

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsparse/ccs"
	"github.com/katalvlaran/lvsparse/ordering"
)

// LUSymbolic is the pattern-only analysis for LU: the fill-reducing column
// permutation and initial storage guesses for the factors.
type LUSymbolic struct {
	N   int
	Q   []int // Q[k] is the original column factored at step k
	Lnz int   // initial capacity for L
	Unz int   // initial capacity for U
}

// AnalyzeLU orders the columns of a with AMD over A+Aᵗ.
func AnalyzeLU(a *ccs.Matrix) (*LUSymbolic, error) {
	if a == nil {
		return nil, directErrorf(opAnalyzeLU, ErrNilMatrix)
	}
	if a.Rows != a.Cols {
		return nil, directErrorf(opAnalyzeLU, ErrNonSquare)
	}
	q, err := ordering.AMD(a)
	if err != nil {
		return nil, directErrorf(opAnalyzeLU, err)
	}
	n := a.Cols
	guess := 4*a.Nnz() + n

	return &LUSymbolic{N: n, Q: q, Lnz: guess, Unz: guess}, nil
}

// LU is a numeric factorization P*A*Q = L*U. L is unit lower triangular with
// its diagonal stored first in each column; U is upper triangular with its
// pivot stored last in each column.
type LU struct {
	Sym  *LUSymbolic
	L, U *ccs.Matrix
	Pinv []int // Pinv[i] is the pivot step at which original row i was chosen
}

// FactorLU computes the numeric factorization of a with threshold partial
// pivoting. Column k of the factors is obtained by solving the partially
// built lower-triangular system for column Q[k] of A; rows not yet pivotal
// are pivot candidates. The largest candidate wins unless the natural
// diagonal is within settings.PivotTolerance of it.
//
// Storage for L and U starts at the symbolic guesses and grows to 2*cap+n on
// overflow.
//
// Errors:
//   - ErrSingular (wrapped with the column) when no candidate exists or the
//     chosen magnitude is not positive.
//
// Complexity: O(n + flops) time; O(n) workspace plus factor storage.
func FactorLU(a *ccs.Matrix, sym *LUSymbolic, settings Settings) (*LU, error) {
	if a == nil || sym == nil {
		return nil, directErrorf(opFactorLU, ErrNilMatrix)
	}
	if a.Rows != a.Cols {
		return nil, directErrorf(opFactorLU, ErrNonSquare)
	}
	n := sym.N
	if a.Cols != n {
		return nil, directErrorf(opFactorLU, ErrDimensionMismatch)
	}
	defaultSettings(&settings)
	tol := settings.PivotTolerance

	f := &luWork{
		n:      n,
		lp:     make([]int, n+1),
		li:     make([]int, max(sym.Lnz, n)),
		lx:     make([]float64, max(sym.Lnz, n)),
		up:     make([]int, n+1),
		ui:     make([]int, max(sym.Unz, n)),
		ux:     make([]float64, max(sym.Unz, n)),
		pinv:   make([]int, n),
		x:      make([]float64, n),
		xi:     make([]int, 2*n),
		marked: make([]bool, n),
	}
	for i := range f.pinv {
		f.pinv[i] = -1
	}

	var lnz, unz, k, p, i, ipiv, top, col int
	var mag, t, pivot float64
	for k = 0; k < n; k++ {
		f.lp[k] = lnz
		f.up[k] = unz
		if lnz+n > len(f.li) {
			f.li, f.lx = grow(f.li, f.lx, n)
		}
		if unz+n > len(f.ui) {
			f.ui, f.ux = grow(f.ui, f.ux, n)
		}

		// 1. x = L \ A(:,col), restricted to the reachable pattern xi[top:].
		col = sym.Q[k]
		top = f.spsolve(a, col)

		// 2. Pick the pivot among non-pivotal rows; pivotal rows go to U.
		ipiv = -1
		mag = -1
		for p = top; p < n; p++ {
			i = f.xi[p]
			if f.pinv[i] < 0 {
				if t = math.Abs(f.x[i]); t > mag {
					mag = t
					ipiv = i
				}
			} else {
				f.ui[unz] = f.pinv[i]
				f.ux[unz] = f.x[i]
				unz++
			}
		}
		if ipiv == -1 || mag <= 0 {
			return nil, directErrorf(opFactorLU, fmt.Errorf("column %d: %w", col, ErrSingular))
		}
		if f.pinv[col] < 0 && math.Abs(f.x[col]) >= mag*tol {
			ipiv = col
		}

		// 3. Record the pivot: last in U's column, unit first in L's column.
		pivot = f.x[ipiv]
		f.ui[unz] = k
		f.ux[unz] = pivot
		unz++
		f.pinv[ipiv] = k
		f.li[lnz] = ipiv
		f.lx[lnz] = 1
		lnz++
		for p = top; p < n; p++ {
			i = f.xi[p]
			if f.pinv[i] < 0 {
				f.li[lnz] = i
				f.lx[lnz] = f.x[i] / pivot
				lnz++
			}
			f.x[i] = 0
		}
	}
	f.lp[n] = lnz
	f.up[n] = unz

	// L was built with original row indices; renumber to pivot order.
	for p = 0; p < lnz; p++ {
		f.li[p] = f.pinv[f.li[p]]
	}

	return &LU{
		Sym:  sym,
		L:    &ccs.Matrix{Rows: n, Cols: n, ColPtr: f.lp, RowIdx: f.li[:lnz], Values: f.lx[:lnz]},
		U:    &ccs.Matrix{Rows: n, Cols: n, ColPtr: f.up, RowIdx: f.ui[:unz], Values: f.ux[:unz]},
		Pinv: f.pinv,
	}, nil
}

// Dim returns the system dimension.
func (f *LU) Dim() int { return f.Sym.N }

// Solve returns x with A*x = b.
// Complexity: O(n + nnz(L) + nnz(U)).
func (f *LU) Solve(b []float64) ([]float64, error) {
	n := f.Sym.N
	if len(b) != n {
		return nil, directErrorf(opSolve, ErrDimensionMismatch)
	}
	w := make([]float64, n)
	ipvec(f.Pinv, b, w)
	lsolve(f.L, w)
	usolve(f.U, w)
	x := make([]float64, n)
	ipvec(f.Sym.Q, w, x)

	return x, nil
}

// luWork is the in-progress state of FactorLU.
type luWork struct {
	n      int
	lp, li []int
	lx     []float64
	up, ui []int
	ux     []float64
	pinv   []int
	x      []float64 // dense accumulator, all-zero between columns
	xi     []int     // [0,n): reach output stack; [n,2n): DFS edge cursors
	marked []bool
}

// grow extends index/value storage to 2*cap+n, preserving contents.
func grow(idx []int, val []float64, n int) ([]int, []float64) {
	c := 2*len(idx) + n
	ni := make([]int, c)
	nv := make([]float64, c)
	copy(ni, idx)
	copy(nv, val)

	return ni, nv
}

// spsolve solves the partial system L*x = A(:,col), where only the columns
// of L belonging to already-pivotal rows exist. It returns top such that
// xi[top:n] is the nonzero pattern of x in topological order.
func (f *luWork) spsolve(a *ccs.Matrix, col int) int {
	top := f.reach(a, col)
	var p, px, j, jj int
	for p = top; p < f.n; p++ {
		f.x[f.xi[p]] = 0
	}
	for p = a.ColPtr[col]; p < a.ColPtr[col+1]; p++ {
		f.x[a.RowIdx[p]] += a.Values[p]
	}
	for px = top; px < f.n; px++ {
		j = f.xi[px]
		jj = f.pinv[j]
		if jj < 0 {
			continue
		}
		f.x[j] /= f.lx[f.lp[jj]]
		for p = f.lp[jj] + 1; p < f.lp[jj+1]; p++ {
			f.x[f.li[p]] -= f.lx[p] * f.x[j]
		}
	}

	return top
}

// reach computes the set of rows reachable in the graph of L from the
// pattern of A(:,col), writing it to xi[top:n] in topological order.
func (f *luWork) reach(a *ccs.Matrix, col int) int {
	top := f.n
	for p := a.ColPtr[col]; p < a.ColPtr[col+1]; p++ {
		if !f.marked[a.RowIdx[p]] {
			top = f.dfs(a.RowIdx[p], top)
		}
	}
	for p := top; p < f.n; p++ {
		f.marked[f.xi[p]] = false
	}

	return top
}

// dfs is a non-recursive depth-first search from row j. xi[:head] is the
// recursion stack and xi[n+head] the per-level edge cursor.
func (f *luWork) dfs(j, top int) int {
	head := 0
	f.xi[0] = j
	stack := f.xi[f.n:]
	var jj, p, p2, i int
	var done bool
	for head >= 0 {
		j = f.xi[head]
		jj = f.pinv[j]
		if !f.marked[j] {
			f.marked[j] = true
			if jj < 0 {
				stack[head] = 0
			} else {
				stack[head] = f.lp[jj]
			}
		}
		done = true
		p2 = 0
		if jj >= 0 {
			p2 = f.lp[jj+1]
		}
		for p = stack[head]; p < p2; p++ {
			i = f.li[p]
			if f.marked[i] {
				continue
			}
			stack[head] = p
			head++
			f.xi[head] = i
			done = false
			break
		}
		if done {
			head--
			top--
			f.xi[top] = j
		}
	}

	return top
}
