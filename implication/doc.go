// Package implication computes attribute implications and the canonical
// (Duquenne–Guigues) basis of a core.Context.
//
// An implication A → B holds in a context when every object having all of A
// also has all of B. The canonical basis is the unique minimal set of
// implications from which every valid implication follows; its premises are
// the pseudo-intents of the context.
//
// Canonical walks Next-Closure with the basis' own closure operator: starting
// from A = ∅, each A that differs from its closure A′′ contributes A → A′′,
// and the walk advances to the lectically next set closed under the
// implications found so far.
//
// Basis.Closure is a plain fixpoint: every implication whose premise is
// contained in the current set fires at most once per call, and the stored
// implications are never consumed, so a Basis can be queried repeatedly.
package implication
