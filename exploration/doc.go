// Package exploration implements attribute exploration: the interactive
// variant of the canonical-basis computation in which an Oracle (a domain
// expert, a script, a reference dataset) decides whether each candidate
// implication holds in the whole domain or refutes it with a new object.
//
// For every candidate premise A whose closure A′′ differs from A, Explore asks
// "A → A′′?". A confirmation records the implication; a counterexample is
// appended to the working context (with the attributes of A added, since a
// counterexample must have the premise), A′′ is recomputed and the same
// premise is asked about again. Candidates advance by Next-Closure over the
// implications confirmed so far, exactly as in implication.Canonical.
//
// Explore works on a clone of the input context and returns the enlarged copy.
package exploration
