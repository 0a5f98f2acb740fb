// SPDX-License-Identifier: MIT
// Package: fastvc/builder
//
// options.go - functional options and the resolved builderConfig.
//
// Option constructors panic on meaningless input (nil RNG); constructors
// themselves never panic.

package builder

import "math/rand"

// BuilderOption customizes a Build call by mutating builderConfig.
// Complexity: applying N options costs O(N).
type BuilderOption func(*builderConfig)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	// rng drives stochastic families; nil means no randomness available.
	rng *rand.Rand
}

// newBuilderConfig applies opts in order over the defaults (no RNG).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithSeed attaches a fresh math/rand source seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches r. The caller keeps ownership; r is advanced by every
// stochastic constructor in call order. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}
