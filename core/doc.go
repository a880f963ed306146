// Package core provides the formal Context K = (G, M, I) of formal concept
// analysis: an ordered list of objects, an ordered list of attributes and the
// binary incidence relation between them, together with the derivation (′)
// and closure (′′) operators.
//
// Representation:
//
//   - Object and attribute names are interned to dense indices at
//     construction; duplicates are rejected (ErrDuplicateName).
//   - Incidence is stored twice as bitsets: one row per object over attribute
//     indices and one column per attribute over object indices, so both
//     derivations are a chain of word-wise intersections.
//   - Names appear only at the API boundary (Intents, Extents, ...).
//
// Operators (name level):
//
//	Intents(objects)          objects′      attributes common to all objects
//	Extents(attributes)       attributes′   objects having all attributes
//	ClosureIntents(objects)   objects′′
//	ClosureExtents(attrs)     attributes′′
//	ObjectHasAttribute(g, m)  point lookup
//	AddObject(name, attrs)    append one row (the only mutation)
//
// The derivation of the empty set is the full opposite domain. Any unknown
// name makes the whole call report ErrNotFound; there is no partial result.
//
// Operators (index level, used by every algorithm in this module):
//
//	Intent(*bitset.BitSet)  Extent(*bitset.BitSet)
//	AttributeClosure(...)   ObjectClosure(...)
//	ObjectSet/AttributeSet  name → index set
//	ObjectNames/AttributeNames  index set → names
//
// Both closures are idempotent, extensive and monotone; the derivations are
// antitone. These are the Galois-connection laws and are checked by the
// package tests over seeded random contexts.
//
// Complexity: every derivation is O(k·n/64) for k input members over a
// domain of n elements.
package core
