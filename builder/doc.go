// Package builder assembles deterministic formal contexts for tests, examples
// and the galois CLI.
//
// The package offers the following key components:
//
//   - Orchestrator:
//     – BuildContext(bopts, cons...): resolves options, runs constructors in
//     order and hands the accumulated table to core.New.
//   - Constructors (scales of formal concept analysis):
//     – Nominal(n):       object i has exactly attribute i.
//     – Ordinal(n):       object i has attributes i..n-1.
//     – Contranominal(n): object i has every attribute except i.
//     – Random(g, m, p):  each cell is set independently with probability p.
//     – Rows(rows...):    literal rows such as ".XX.X".
//   - Naming schemes (IDFn implementations):
//     – DecimalIDFn:      "1","2",… (objects by default).
//     – LetterIDFn:       "a".."z","aa",… (attributes by default).
//     – PrefixIDFn(p):    p+"1", p+"2",….
//   - Options: WithObjectIDs, WithAttributeIDs, WithSeed, WithRand.
//
// Composition: every constructor appends a fresh block of objects and
// attributes, so BuildContext(nil, Nominal(2), Nominal(3)) is the direct sum
// of the two scales (no incidence between blocks).
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical context.
//   - Constructors never panic; they return the sentinels in errors.go.
//     Option constructors panic on nil arguments (programmer error).
package builder
