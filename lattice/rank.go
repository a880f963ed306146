package lattice

import (
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/galois/concept"
	"github.com/katalvlaran/galois/nextclosure"
)

// Rank is the three-way linearization used by Build: negative when x ranks
// below y, positive when x ranks above y, zero only for identical concepts.
// It is NOT the concept order; it only has to extend it:
//
//  1. y.Intent ⊊ x.Intent ⇒ x ranks above y (and symmetrically);
//  2. otherwise x.Extent ⊊ y.Extent ⇒ x ranks above y (and symmetrically);
//  3. otherwise fewer intent attributes ranks lower;
//  4. then more extent objects ranks lower;
//  5. then the lectically larger intent (names sorted lexically) ranks higher,
//     then the lectically larger extent.
//
// Steps 3–5 only separate concepts the first two steps leave incomparable
// and carry no lattice meaning.
func Rank(x, y concept.Concept) int {
	ix := newIndex([]concept.Concept{x, y})
	return compareEntries(ix.entry(x, 0), ix.entry(y, 1))
}

// entry is a concept interned against a shared index.
type entry struct {
	concept concept.Concept
	intent  *bitset.BitSet
	extent  *bitset.BitSet
	seq     int
}

func compareEntries(a, b *entry) int {
	// 1) Intent inclusion.
	if strictSubset(a.intent, b.intent) {
		return -1
	}
	if strictSubset(b.intent, a.intent) {
		return 1
	}
	// 2) Extent inclusion, opposite sense.
	if strictSubset(a.extent, b.extent) {
		return 1
	}
	if strictSubset(b.extent, a.extent) {
		return -1
	}
	// 3) + 4) Arbitrary but consistent size tie-breaks.
	if ai, bi := a.intent.Count(), b.intent.Count(); ai != bi {
		if ai < bi {
			return -1
		}
		return 1
	}
	if ae, be := a.extent.Count(), b.extent.Count(); ae != be {
		if ae > be {
			return -1
		}
		return 1
	}
	// 5) Lectic tie-break for a deterministic total order.
	if c := lectic(a.intent, b.intent); c != 0 {
		return c
	}

	return lectic(a.extent, b.extent)
}

func strictSubset(a, b *bitset.BitSet) bool {
	return b.IsStrictSuperSet(a)
}

func lectic(a, b *bitset.BitSet) int {
	switch {
	case nextclosure.LecticLess(a, b):
		return -1
	case nextclosure.LecticLess(b, a):
		return 1
	}

	return 0
}

// index interns the attribute and object names seen in a concept list.
// Names are sorted lexically so the result does not depend on input order.
type index struct {
	attributes map[string]uint
	objects    map[string]uint
}

func newIndex(concepts []concept.Concept) *index {
	var attrs, objs []string
	seenA := map[string]bool{}
	seenO := map[string]bool{}
	for _, c := range concepts {
		for _, m := range c.Intent {
			if !seenA[m] {
				seenA[m] = true
				attrs = append(attrs, m)
			}
		}
		for _, g := range c.Extent {
			if !seenO[g] {
				seenO[g] = true
				objs = append(objs, g)
			}
		}
	}
	sort.Strings(attrs)
	sort.Strings(objs)

	ix := &index{
		attributes: make(map[string]uint, len(attrs)),
		objects:    make(map[string]uint, len(objs)),
	}
	for i, m := range attrs {
		ix.attributes[m] = uint(i)
	}
	for i, g := range objs {
		ix.objects[g] = uint(i)
	}

	return ix
}

func (ix *index) entry(c concept.Concept, seq int) *entry {
	e := &entry{
		concept: c,
		intent:  bitset.New(uint(len(ix.attributes))),
		extent:  bitset.New(uint(len(ix.objects))),
		seq:     seq,
	}
	for _, m := range c.Intent {
		e.intent.Set(ix.attributes[m])
	}
	for _, g := range c.Extent {
		e.extent.Set(ix.objects[g])
	}

	return e
}
