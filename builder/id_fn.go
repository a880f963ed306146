// Package builder provides the naming schemes used for generated object and
// attribute names.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a name from its zero-based index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// DecimalIDFn returns idx+1 in base 10, e.g. 0→"1", 41→"42". It matches the
// numbering used for unnamed objects in CSV input.
// Panics if idx < 0.
func DecimalIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("DecimalIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.Itoa(idx + 1)
}

// LetterIDFn returns the spreadsheet-style lower-case column name for idx,
// e.g. 0→"a", 25→"z", 26→"aa", 701→"zz".
// Complexity: O(log₂₆ idx).
// Panics if idx < 0.
func LetterIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("LetterIDFn: idx must be ≥ 0, got %d", idx))
	}
	// build letters in reverse order
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('a'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixIDFn returns an IDFn producing prefix+DecimalIDFn(idx), e.g. "g1", "g2".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + DecimalIDFn(idx)
	}
}
