// SPDX-License-Identifier: MIT
// Package: galois/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors panic on nil arguments; constructors never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"
)

// BuilderOption customizes builderConfig before any constructor runs.
type BuilderOption func(*builderConfig)

// WithObjectIDs sets the object naming scheme. Panics on nil.
func WithObjectIDs(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithObjectIDs(nil)")
	}
	return func(c *builderConfig) {
		c.objectID = fn
	}
}

// WithAttributeIDs sets the attribute naming scheme. Panics on nil.
func WithAttributeIDs(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithAttributeIDs(nil)")
	}
	return func(c *builderConfig) {
		c.attributeID = fn
	}
}

// WithRand provides an explicit RNG for Random. Panics on nil; prefer WithSeed
// for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		// Seeded source → reproducible draws.
		c.rng = rand.New(rand.NewSource(seed))
	}
}
