package core

import "github.com/bits-and-blooms/bitset"

// NewSet returns an empty index set sized for n elements.
func NewSet(n int) *bitset.BitSet {
	return bitset.New(uint(n))
}

// FullSet returns the index set {0, …, n-1}.
func FullSet(n int) *bitset.BitSet {
	s := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		s.Set(uint(i))
	}

	return s
}

// SetOf returns an index set sized for n elements holding the given indices.
func SetOf(n int, indices ...uint) *bitset.BitSet {
	s := bitset.New(uint(n))
	for _, i := range indices {
		s.Set(i)
	}

	return s
}

// SameSet reports whether a and b hold the same members regardless of their
// allocated lengths. A nil set equals an empty one.
func SameSet(a, b *bitset.BitSet) bool {
	switch {
	case a == nil && b == nil:
		return true
	case a == nil:
		return b.None()
	case b == nil:
		return a.None()
	}

	return a.IsSuperSet(b) && b.IsSuperSet(a)
}

// Members lists the indices of s in ascending order.
func Members(s *bitset.BitSet) []uint {
	if s == nil {
		return nil
	}
	out := make([]uint, 0, s.Count())
	for i, ok := s.NextSet(0); ok; i, ok = s.NextSet(i + 1) {
		out = append(out, i)
	}

	return out
}
