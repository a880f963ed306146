// Package galois is a toolkit for formal concept analysis: building a formal
// context, enumerating its concepts, ordering them into a lattice, extracting
// the Duquenne–Guigues implication basis and exploring a domain with an expert.
//
// Everything is organized under these subpackages:
//
//	core/        Context: objects × attributes, derivation and closure
//	nextclosure/ Ganter's Next-Closure over any closure operator
//	concept/     formal concepts in lectic order
//	lattice/     Rank, a generic priority Queue and the Hasse diagram
//	implication/ implications, basis closure and the canonical basis
//	exploration/ attribute exploration with pluggable oracles
//	builder/     nominal, ordinal, contranominal, random and row fixtures
//	table/       CSV input/output and the grid rendering
//	cmd/galois/  the command-line front end
//
// Quick example, a context of three waters:
//
//	       running  artificial
//	pond               X
//	river     X
//	canal     X        X
//
// has four concepts: everything, {pond, canal} sharing "artificial",
// {river, canal} sharing "running", and the canal alone with both.
//
// All set arithmetic runs on github.com/bits-and-blooms/bitset; names are
// interned once per Context.
//
//	go get github.com/katalvlaran/galois
package galois
