// SPDX-License-Identifier: MIT
// Package: galois/builder
//
// impl_scales.go - the classic conceptual scales.
//
// Known sizes, used by the tests of other packages:
//   - Nominal(n):       n+2 concepts (n ≥ 2); n(n-1)/2 basis implications (n ≥ 3).
//   - Ordinal(n):       n concepts (a chain); n-1 basis implications.
//   - Contranominal(n): 2ⁿ concepts (the Boolean lattice); empty basis.

package builder

// Nominal returns the n×n identity scale: object i has exactly attribute i.
// Complexity: O(n²).
func Nominal(n int) Constructor {
	return scale(MethodNominal, n, func(i, j int) bool { return i == j })
}

// Ordinal returns the n×n "≤" scale: object i has attributes i..n-1.
// Complexity: O(n²).
func Ordinal(n int) Constructor {
	return scale(MethodOrdinal, n, func(i, j int) bool { return i <= j })
}

// Contranominal returns the n×n "≠" scale: object i has every attribute but i.
// Complexity: O(n²).
func Contranominal(n int) Constructor {
	return scale(MethodContranominal, n, func(i, j int) bool { return i != j })
}

func scale(method string, n int, rel func(i, j int) bool) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := validateMin(method, n, MinScale); err != nil {
			return err
		}
		first := d.block(cfg, n)
		for i := 0; i < n; i++ {
			d.object(cfg, first, n, func(j int) bool { return rel(i, j) })
		}

		return nil
	}
}
