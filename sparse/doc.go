// SPDX-License-Identifier: MIT

// Package sparse provides a general sparse matrix with structural editing,
// sparse and dense arithmetic, and linear-system solving.
//
// Storage:
//
//	Every stored entry is a cell linked into its row (left/right, ascending
//	column) and its column (up/down, ascending row). Cells live in an arena
//	and link by index; removed cells go to a free list. Row and column
//	header arrays point at chain heads and tails, and a diagonal cache
//	resolves (i, i) in O(1).
//
// Lookup of (i, j) off the diagonal walks one chain only: the row when
// i > j, the column when i < j.
//
// Solving:
//
//	Solve tries relaxed Gauss-Seidel (package iterative) and falls back to
//	a direct factorization (package direct): LDLᵗ for symmetric matrices,
//	LU with threshold partial pivoting otherwise, both ordered by AMD.
//	Factors are cached per matrix. A structural edit drops the cache; a
//	value edit keeps the symbolic analysis and recomputes only the numeric
//	factors on the next solve.
//
// Interop: *Matrix implements gonum's mat.Matrix, converts to *mat.Dense,
// and exports compressed-column storage (package ccs).
//
// Concurrency: a Matrix must not be mutated concurrently, and reads are only
// safe while no mutation is in flight. Solve updates the factor cache and
// counts as a mutation.
//
// Complexity quicksheet:
//   - Get/Set/Has: O(1) on the diagonal, else O(length of one chain).
//   - RemoveRow(s)/RemoveColumn(s), Transpose, Copy: O(rows + cols + nnz).
//   - Add/Sub: O(nnz(a) + nnz(b)) plus column scans for new cells.
//   - MulVec: O(rows + nnz).
package sparse
