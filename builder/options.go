// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a build by mutating builderConfig before any
// constructor runs. Option constructors validate and panic on meaningless
// input; constructors themselves never panic.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed seeds a fresh RNG. Use it in tests to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithShift adds s to every diagonal entry. Any s > 0 makes a symmetric
// build positive definite and strictly diagonally dominant, provided edge
// weights are positive. s == 0 leaves the singular Laplacian.
// Panics if s < 0.
// Complexity: O(1) here; O(n) extra stamps at build time.
func WithShift(s float64) BuilderOption {
	if s < 0 {
		panic(fmt.Sprintf("builder: WithShift(%g): shift must be ≥ 0", s))
	}
	return func(c *builderConfig) {
		c.shift = s
	}
}

// WithSkew makes the build nonsymmetric: entries above the diagonal scale
// by (1+s), entries below by (1-s). Panics unless 0 ≤ s < 1.
//
// The pattern stays symmetric, so the LU path sees the same AMD ordering
// as the unskewed system. Rows whose couplings all lie above the diagonal
// lose strict dominance once s exceeds the shift-to-degree margin.
// Complexity: O(1).
func WithSkew(s float64) BuilderOption {
	if s < 0 || s >= 1 {
		panic(fmt.Sprintf("builder: WithSkew(%g): skew must be in [0,1)", s))
	}
	return func(c *builderConfig) {
		c.skew = s
	}
}
