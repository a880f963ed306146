// Package nextclosure implements Ganter's Next-Closure algorithm: given a
// closure operator cl on the subsets of a totally ordered base set
// {0, …, n-1} and a cl-closed set A, it computes the lectically next
// cl-closed set.
//
// Lectic order: A < B iff the smallest element on which A and B differ
// belongs to B. Enumerating from the lectically smallest closed set (cl(∅))
// therefore visits every closed set exactly once, in increasing order.
//
// The engine knows nothing about contexts or implications; the same code
// enumerates concept intents (cl = Context.AttributeClosure) and the
// Duquenne–Guigues basis (cl = preclosure of the implications found so far).
//
// Complexity: one Next call performs at most n closure evaluations.
package nextclosure

import "github.com/bits-and-blooms/bitset"

// ClosureFunc is a closure operator over index sets. It must be extensive
// (cl(X) ⊇ X), and for Next to enumerate correctly, idempotent and monotone
// on the sets it is asked about. It must not retain or mutate its argument.
type ClosureFunc func(*bitset.BitSet) *bitset.BitSet

// Next returns the lectically smallest cl-closed set strictly greater than
// a, scanning the base set {0, …, n-1} from its last position backwards.
// The boolean is false when a is the lectic maximum.
//
// a must be cl-closed; a itself is not modified.
func Next(n uint, a *bitset.BitSet, cl ClosureFunc) (*bitset.BitSet, bool) {
	// work holds A ∩ {0, …, i-1} once every member ≥ i has been removed.
	work := bitset.New(n)
	if a != nil {
		for i, ok := a.NextSet(0); ok && i < n; i, ok = a.NextSet(i + 1) {
			work.Set(i)
		}
	}

	for k := n; k > 0; k-- {
		i := k - 1
		// 1) Members of A are dropped while scanning backwards.
		if work.Test(i) {
			work.Clear(i)
			continue
		}

		// 2) Candidate B = (A ∩ {<i}) ∪ {i}.
		candidate := work.Clone().Set(i)
		closed := cl(candidate)

		// 3) Accept iff the closure adds nothing below i.
		if agreesBelow(closed, candidate, i) {
			return closed, true
		}
	}

	return nil, false
}

// agreesBelow reports whether closed \ candidate has no member < i.
func agreesBelow(closed, candidate *bitset.BitSet, i uint) bool {
	for j, ok := closed.NextSet(0); ok && j < i; j, ok = closed.NextSet(j + 1) {
		if !candidate.Test(j) {
			return false
		}
	}

	return true
}

// Walk calls visit for first and then for every following closed set in
// lectic order until visit returns false or the maximum is passed.
// first should be cl(∅) to visit every closed set.
func Walk(n uint, first *bitset.BitSet, cl ClosureFunc, visit func(*bitset.BitSet) bool) {
	current, ok := first, first != nil
	for ok {
		if !visit(current) {
			return
		}
		current, ok = Next(n, current, cl)
	}
}

// All collects every closed set from first onwards.
func All(n uint, first *bitset.BitSet, cl ClosureFunc) []*bitset.BitSet {
	var out []*bitset.BitSet
	Walk(n, first, cl, func(s *bitset.BitSet) bool {
		out = append(out, s)
		return true
	})

	return out
}

// LecticLess reports whether a precedes b in the lectic order over
// {0, …, n-1}: the smallest element where they differ belongs to b.
func LecticLess(a, b *bitset.BitSet) bool {
	diff := a.SymmetricDifference(b)
	i, ok := diff.NextSet(0)
	if !ok {
		return false
	}

	return b.Test(i)
}
