// Package lvsparse is an in-memory sparse linear-algebra engine: a
// cross-linked sparse matrix with structural editing and arithmetic, and a
// solver that tries Gauss-Seidel/SOR first and falls back to a cached
// direct factorization.
//
// Packages:
//
//	sparse/    the cross-linked Matrix, editing, arithmetic, Solve
//	iterative/ Gauss-Seidel/SOR with dominance reordering
//	direct/    LDLᵗ and threshold-pivoted LU over CCS
//	ordering/  approximate minimum degree (AMD)
//	ccs/       compressed column storage
//	builder/   deterministic test systems from graph topologies
//
// Quick example:
//
//	a, _ := sparse.FromMap(2, 2, map[sparse.Index]float64{
//		{Row: 0, Col: 0}: 4, {Row: 0, Col: 1}: 1,
//		{Row: 1, Col: 0}: 1, {Row: 1, Col: 1}: 3,
//	})
//	x, err := a.Solve([]float64{1, 2})
//
// Solve picks the strategy; SolveDirect and SolveIterative force one.
// Repeated direct solves reuse the symbolic analysis until the sparsity
// pattern changes, and the numeric factors until any value changes.
package lvsparse
