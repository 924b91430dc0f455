// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// builderConfig aggregates the knobs used by constructors. It is passed by
// value.
type builderConfig struct {
	// RNG for stochastic constructors; nil means no randomness.
	rng *rand.Rand
	// Edge weight generator.
	weightFn WeightFn
	// Added to every diagonal entry after all stamps.
	shift float64
	// Upper off-diagonals scale by (1+skew), lower by (1-skew).
	skew float64
}

const (
	defaultShift = 0.0
	defaultSkew  = 0.0
)

// newBuilderConfig applies opts in order over deterministic defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
		shift:    defaultShift,
		skew:     defaultSkew,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
