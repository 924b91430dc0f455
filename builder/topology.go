// SPDX-License-Identifier: MIT

package builder

// Constructor tags and minimum sizes.
const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodWheel        = "Wheel"
	methodComplete     = "Complete"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
	minGridDim       = 1

	probMin = 0.0
	probMax = 1.0
)

func validateMin(method string, n, minimum int) error {
	if n < minimum {
		return builderErrorf(method, "n=%d < min=%d: %w", n, minimum, ErrTooFewVertices)
	}

	return nil
}

// Path stamps P_n: edges (i, i+1) for i ascending. n ≥ 2.
// With unit weights and no shift the result is tridiagonal with diagonal
// 1, 2, ..., 2, 1 and off-diagonals -1; AMD orders it without fill.
//
// Errors: ErrTooFewVertices when n < 2.
// Complexity: O(n) stamps, n + 2(n-1) stored cells.
func Path(n int) Constructor {
	return func(s *stamp, cfg builderConfig) error {
		if err := validateMin(methodPath, n, minPathNodes); err != nil {
			return err
		}
		s.grow(n)
		for i := 0; i+1 < n; i++ {
			s.edge(i, i+1, cfg)
		}

		return nil
	}
}

// Cycle stamps C_n: the path edges followed by the closing edge (n-1, 0).
// n ≥ 3. The closing edge puts entries in the corners, so the pattern is no
// longer banded.
//
// Errors: ErrTooFewVertices when n < 3.
// Complexity: O(n) stamps, 3n stored cells.
func Cycle(n int) Constructor {
	return func(s *stamp, cfg builderConfig) error {
		if err := validateMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		s.grow(n)
		for i := 0; i < n; i++ {
			s.edge(i, (i+1)%n, cfg)
		}

		return nil
	}
}

// Star stamps a star with center 0 and leaves 1..n-1. n ≥ 2.
// Row and column 0 are dense: an arrow matrix whose hub must be eliminated
// last to avoid fill.
//
// Errors: ErrTooFewVertices when n < 2.
// Complexity: O(n) stamps, 3n-2 stored cells.
func Star(n int) Constructor {
	return func(s *stamp, cfg builderConfig) error {
		if err := validateMin(methodStar, n, minStarNodes); err != nil {
			return err
		}
		s.grow(n)
		for i := 1; i < n; i++ {
			s.edge(0, i, cfg)
		}

		return nil
	}
}

// Wheel stamps W_n: a rim cycle over 1..n-1, then spokes from center 0.
// n ≥ 4.
//
// Errors: ErrTooFewVertices when n < 4.
// Complexity: O(n) stamps, n + 4(n-1) stored cells.
func Wheel(n int) Constructor {
	return func(s *stamp, cfg builderConfig) error {
		if err := validateMin(methodWheel, n, minWheelNodes); err != nil {
			return err
		}
		s.grow(n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			s.edge(1+i, 1+(i+1)%rim, cfg)
		}
		for i := 1; i < n; i++ {
			s.edge(0, i, cfg)
		}

		return nil
	}
}

// Complete stamps K_n over all pairs i < j. n ≥ 1. The result is fully
// dense; it exists for small reference systems, not for scale.
//
// Errors: ErrTooFewVertices when n < 1.
// Complexity: O(n²) stamps and cells.
func Complete(n int) Constructor {
	return func(s *stamp, cfg builderConfig) error {
		if err := validateMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		s.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s.edge(i, j, cfg)
			}
		}

		return nil
	}
}

// Grid stamps a rows×cols 4-neighborhood grid. Cell (r, c) is vertex
// r*cols + c; each cell emits its right then its bottom neighbor.
// With WithShift(s) this is the five-point operator plus s·I.
//
// Errors: ErrTooFewVertices when rows or cols is below 1.
// Complexity: O(rows·cols) stamps; about 5·rows·cols stored cells.
func Grid(rows, cols int) Constructor {
	return func(s *stamp, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return builderErrorf(methodGrid, "rows=%d, cols=%d (each must be ≥ %d): %w",
				rows, cols, minGridDim, ErrTooFewVertices)
		}
		s.grow(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					s.edge(u, u+1, cfg)
				}
				if r+1 < rows {
					s.edge(u, u+cols, cfg)
				}
			}
		}

		return nil
	}
}

// RandomSparse stamps an Erdős–Rényi-like graph: each pair i < j is kept
// with probability p, trials in (i, j) ascending order. An RNG is required
// unless p is 0 or 1.
//
// Errors (checked in this order):
//   - ErrTooFewVertices when n < 1.
//   - ErrInvalidProbability when p is outside [0, 1].
//   - ErrNeedRandSource when 0 < p < 1 and no RNG was configured.
//
// Complexity: O(n²) Bernoulli trials; O(n + p·n²) stored cells expected.
// Deterministic for a fixed seed, options and constructor order.
func RandomSparse(n int, p float64) Constructor {
	return func(s *stamp, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, n, 1); err != nil {
			return err
		}
		if p < probMin || p > probMax {
			return builderErrorf(methodRandomSparse, "p=%.6f not in [%.1f,%.1f]: %w",
				p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return builderErrorf(methodRandomSparse, "rng is required: %w", ErrNeedRandSource)
		}
		s.grow(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMin:
				case p == probMax:
					s.edge(i, j, cfg)
				case cfg.rng.Float64() < p:
					s.edge(i, j, cfg)
				}
			}
		}

		return nil
	}
}
