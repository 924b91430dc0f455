// SPDX-License-Identifier: MIT

// Package builder assembles deterministic sparse test systems from graph
// topologies.
//
// Every topology stamps the weighted Laplacian of its edges: an edge (u, v)
// with weight w adds w to both diagonals and -w to both off-diagonals.
// Topologies compose over the shared vertex range 0..n-1, the way several
// graph constructors would add the same vertex IDs; repeated stamps sum.
//
// A plain Laplacian is singular. WithShift adds a constant to every diagonal
// entry, giving a symmetric positive definite and strictly diagonally
// dominant system. WithSkew scales the upper and lower off-diagonals apart to
// produce a nonsymmetric system with the same pattern.
//
//	a, err := builder.BuildMatrix(
//		[]builder.BuilderOption{builder.WithShift(1), builder.WithSeed(7)},
//		builder.Grid(8, 8),
//		builder.RandomSparse(64, 0.02),
//	)
//
// Constructors never panic; they return the sentinels in errors.go.
// Option constructors panic on meaningless values.
package builder
