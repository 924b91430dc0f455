// SPDX-License-Identifier: MIT

// Package direct implements exact sparse factorizations over compressed-column
// storage:
//
//   - LDLᵗ for symmetric systems: an integer-only symbolic phase (elimination
//     tree and per-column nonzero counts of L) followed by an up-looking
//     numeric phase that visits the known pattern of row k of L in
//     elimination-tree order.
//   - LU with threshold partial pivoting for general systems: a left-looking
//     factorization where column k of L and U comes from a sparse triangular
//     solve whose nonzero pattern is found by depth-first reachability over L.
//
// Both paths order columns with ordering.AMD. Symbolic results depend only on
// the sparsity pattern and can be reused across value changes; numeric
// results must be recomputed whenever values change.
//
// The package performs no locking; factor objects are immutable after
// construction and safe for concurrent Solve calls.
package direct

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/ccs"
	"github.com/katalvlaran/lvsparse/ordering"
)

// operation tags used in error wrapping.
const (
	opAnalyzeLDL = "AnalyzeLDL"
	opFactorLDL  = "FactorLDL"
	opAnalyzeLU  = "AnalyzeLU"
	opFactorLU   = "FactorLU"
	opSolve      = "Solve"
)

func directErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Factor is a completed factorization able to solve A*x = b.
type Factor interface {
	// Dim returns n for an n×n system.
	Dim() int
	// Solve returns x with A*x = b. b is not modified.
	Solve(b []float64) ([]float64, error)
}

var (
	_ Factor = (*LDL)(nil)
	_ Factor = (*LU)(nil)
)

// Symbolic is the pattern-only analysis for LDLᵗ.
type Symbolic struct {
	N         int
	Perm      []int // Perm[k] is the original column eliminated at step k
	Pinv      []int // inverse of Perm
	Parent    []int // elimination tree; -1 marks a root
	ColCounts []int // nonzeros in each column of L, diagonal excluded
	Lp        []int // column pointers of L (len N+1)
}

// NnzL returns the number of strictly-lower entries L will hold.
func (s *Symbolic) NnzL() int { return s.Lp[s.N] }

// AnalyzeLDL orders a with AMD and computes the elimination tree and column
// counts of L for the permuted matrix P*A*Pᵗ. Only the pattern of a is read;
// a is expected to be structurally symmetric, and only entries that fall in
// the upper triangle after permutation are used.
//
// Complexity: O(nnz(L)) time, O(n) workspace beyond the AMD call.
func AnalyzeLDL(a *ccs.Matrix) (*Symbolic, error) {
	if a == nil {
		return nil, directErrorf(opAnalyzeLDL, ErrNilMatrix)
	}
	if a.Rows != a.Cols {
		return nil, directErrorf(opAnalyzeLDL, ErrNonSquare)
	}
	perm, err := ordering.AMD(a)
	if err != nil {
		return nil, directErrorf(opAnalyzeLDL, err)
	}

	n := a.Cols
	s := &Symbolic{
		N:         n,
		Perm:      perm,
		Pinv:      ordering.Invert(perm),
		Parent:    make([]int, n),
		ColCounts: make([]int, n),
		Lp:        make([]int, n+1),
	}

	// Up-tree marking: for each k walk from every i<k in column k towards
	// the root, stopping at nodes already flagged for k. Every node passed
	// contributes one entry in row k of L.
	flag := make([]int, n)
	var k, p, i int
	for k = 0; k < n; k++ {
		s.Parent[k] = -1
		flag[k] = k
		kk := perm[k]
		for p = a.ColPtr[kk]; p < a.ColPtr[kk+1]; p++ {
			i = s.Pinv[a.RowIdx[p]]
			if i >= k {
				continue
			}
			for ; flag[i] != k; i = s.Parent[i] {
				if s.Parent[i] == -1 {
					s.Parent[i] = k
				}
				s.ColCounts[i]++
				flag[i] = k
			}
		}
	}
	for k = 0; k < n; k++ {
		s.Lp[k+1] = s.Lp[k] + s.ColCounts[k]
	}

	return s, nil
}

// LDL is a numeric LDLᵗ factorization: P*A*Pᵗ = L*D*Lᵗ.
type LDL struct {
	Sym *Symbolic
	L   *ccs.Matrix // strictly lower; unit diagonal implied
	D   []float64
}

// FactorLDL computes the numeric factorization of a using the pattern analysis
// sym, which must come from AnalyzeLDL on a matrix with a's pattern.
//
// For each column k the permuted column of A is scattered into a dense
// workspace, the pattern of row k of L is gathered by walking the
// elimination tree, and the entries are resolved in leaf-to-root order.
//
// Errors:
//   - ErrZeroPivot when D[k] == 0 (wrapped with k); fatal for this ordering.
//
// Complexity: O(flops) time, O(n) workspace.
func FactorLDL(a *ccs.Matrix, sym *Symbolic) (*LDL, error) {
	if a == nil || sym == nil {
		return nil, directErrorf(opFactorLDL, ErrNilMatrix)
	}
	if a.Rows != a.Cols {
		return nil, directErrorf(opFactorLDL, ErrNonSquare)
	}
	n := sym.N
	if a.Cols != n {
		return nil, directErrorf(opFactorLDL, ErrDimensionMismatch)
	}

	nnzL := sym.NnzL()
	l := &ccs.Matrix{
		Rows:   n,
		Cols:   n,
		ColPtr: append([]int(nil), sym.Lp...),
		RowIdx: make([]int, nnzL),
		Values: make([]float64, nnzL),
	}
	d := make([]float64, n)

	y := make([]float64, n)
	pattern := make([]int, n)
	flag := make([]int, n)
	lnz := make([]int, n)

	var k, p, p2, i, top, length int
	var yi, lki float64
	for k = 0; k < n; k++ {
		// 1. Scatter the upper part of permuted column k and collect the
		//    pattern of row k of L in topological order.
		y[k] = 0
		top = n
		flag[k] = k
		lnz[k] = 0
		kk := sym.Perm[k]
		for p = a.ColPtr[kk]; p < a.ColPtr[kk+1]; p++ {
			i = sym.Pinv[a.RowIdx[p]]
			if i > k {
				continue
			}
			y[i] += a.Values[p]
			for length = 0; flag[i] != k; i = sym.Parent[i] {
				pattern[length] = i
				length++
				flag[i] = k
			}
			for length > 0 {
				top--
				length--
				pattern[top] = pattern[length]
			}
		}

		// 2. Sparse triangular solve for row k of L and the pivot D[k].
		d[k] = y[k]
		y[k] = 0
		for ; top < n; top++ {
			i = pattern[top]
			yi = y[i]
			y[i] = 0
			p2 = l.ColPtr[i] + lnz[i]
			for p = l.ColPtr[i]; p < p2; p++ {
				y[l.RowIdx[p]] -= l.Values[p] * yi
			}
			lki = yi / d[i]
			d[k] -= lki * yi
			l.RowIdx[p2] = k
			l.Values[p2] = lki
			lnz[i]++
		}

		// 3. Pivot check.
		if d[k] == 0 {
			return nil, directErrorf(opFactorLDL, fmt.Errorf("column %d: %w", k, ErrZeroPivot))
		}
	}

	return &LDL{Sym: sym, L: l, D: d}, nil
}

// Dim returns the system dimension.
func (f *LDL) Dim() int { return f.Sym.N }

// Solve returns x with A*x = b.
// Complexity: O(n + nnz(L)).
func (f *LDL) Solve(b []float64) ([]float64, error) {
	n := f.Sym.N
	if len(b) != n {
		return nil, directErrorf(opSolve, ErrDimensionMismatch)
	}
	w := make([]float64, n)
	pvec(f.Sym.Perm, b, w)
	lsolveUnit(f.L, w)
	dsolve(f.D, w)
	ltsolveUnit(f.L, w)
	x := make([]float64, n)
	ipvec(f.Sym.Perm, w, x)

	return x, nil
}
