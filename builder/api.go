// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsparse/sparse"
)

// Constructor stamps a topology into s using the resolved config.
// Constructors validate their parameters first and leave s untouched on
// error.
type Constructor func(s *stamp, cfg builderConfig) error

// stamp accumulates Laplacian triplets over a growing vertex range.
type stamp struct {
	n      int
	ri, ci []int
	v      []float64
}

func (s *stamp) grow(n int) {
	if n > s.n {
		s.n = n
	}
}

func (s *stamp) add(i, j int, v float64) {
	s.ri = append(s.ri, i)
	s.ci = append(s.ci, j)
	s.v = append(s.v, v)
}

// edge stamps the Laplacian of one weighted edge. Self-loops contribute
// nothing.
func (s *stamp) edge(u, v int, cfg builderConfig) {
	if u == v {
		return
	}
	w := cfg.weightFn(cfg.rng)
	lo, hi := min(u, v), max(u, v)
	s.add(u, u, w)
	s.add(v, v, w)
	s.add(lo, hi, -w*(1+cfg.skew))
	s.add(hi, lo, -w*(1-cfg.skew))
}

// BuildMatrix resolves bopts, applies cons in order over a shared vertex
// range, adds the configured shift to every diagonal and assembles the
// result. The dimension is the largest vertex count any constructor used.
//
// Errors are wrapped as "BuildMatrix: ..." and keep the sentinels
// (ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed) matchable with errors.Is.
func BuildMatrix(bopts []BuilderOption, cons ...Constructor) (*sparse.Matrix, error) {
	cfg := newBuilderConfig(bopts...)
	s := &stamp{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMatrix: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildMatrix: %w", err)
		}
	}
	if s.n == 0 {
		return nil, fmt.Errorf("BuildMatrix: no vertices: %w", ErrConstructFailed)
	}
	if cfg.shift != 0 {
		for i := 0; i < s.n; i++ {
			s.add(i, i, cfg.shift)
		}
	}

	m, err := sparse.FromTriplets(s.n, s.n, s.ri, s.ci, s.v)
	if err != nil {
		return nil, fmt.Errorf("BuildMatrix: %w: %w", ErrConstructFailed, err)
	}

	return m, nil
}
