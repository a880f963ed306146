// SPDX-License-Identifier: MIT
// Package: galois/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • objectID    = DecimalIDFn  ("1","2",...)
//   • attributeID = LetterIDFn   ("a","b",...)
//   • rng         = nil          (Random with 0 < p < 1 needs WithSeed/WithRand)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	objectID    IDFn
	attributeID IDFn
	// nil means “no randomness”.
	rng *rand.Rand
}

// newBuilderConfig applies options in order (last wins) over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		objectID:    DecimalIDFn,
		attributeID: LetterIDFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
