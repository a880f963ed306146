// SPDX-License-Identifier: MIT
// Package: galois/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Constructors attach context with builderErrorf (method prefix + sentinel).
//   • Priority when several checks fail: size, then probability, then RNG.

package builder

import (
	"github.com/cockroachdb/errors"
)

// ErrTooSmall indicates that a size parameter is below the constructor minimum.
var ErrTooSmall = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that Random was asked for 0 < p < 1 without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a table core.New refused.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf returns "<method>: <message>" wrapping sentinel.
func builderErrorf(sentinel error, method, format string, args ...interface{}) error {
	return errors.Wrapf(sentinel, method+": "+format, args...)
}
