// SPDX-License-Identifier: MIT
// Package: galois/builder
//
// impl_random.go - implementation of Random(objects, attributes, p).
//
// Contract:
//   - objects ≥ 1 and attributes ≥ 1 (else ErrTooSmall).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required for 0 < p < 1 (else ErrNeedRandSource); p ∈ {0,1}
//     is deterministic and draws nothing.
//
// Determinism: cells are drawn row by row, attribute index ascending.

package builder

// Random returns a Constructor that samples an objects×attributes block in
// which each cell is set independently with probability p.
// Complexity: O(objects·attributes) draws.
func Random(objects, attributes int, p float64) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		// 1) Validate parameters early (zero side-effects on invalid input).
		if err := validateMin(MethodRandom, objects, MinScale); err != nil {
			return err
		}
		if err := validateMin(MethodRandom, attributes, MinScale); err != nil {
			return err
		}
		if err := validateProbability(MethodRandom, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return builderErrorf(ErrNeedRandSource, MethodRandom, "p=%.3f needs WithSeed or WithRand", p)
		}

		// 2) Sample cells in a stable order.
		first := d.block(cfg, attributes)
		for i := 0; i < objects; i++ {
			d.object(cfg, first, attributes, func(int) bool {
				if cfg.rng == nil {
					return p == MaxProbability
				}
				return cfg.rng.Float64() < p
			})
		}

		return nil
	}
}
