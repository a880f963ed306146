// Package lattice builds the Hasse diagram (cover relation) of a list of
// formal concepts.
//
// Build pops concepts from a Queue ordered by Rank, most specific first. When
// a concept is placed, every already placed node whose intent strictly
// contains its intent is a lower bound; the bounds reachable through another
// bound's Lower list are dropped, and the rest are its immediate lower
// covers. Rank extends the concept order, so each concept is placed after all
// of its subconcepts and the cover lists are exact.
//
// Nodes are stored in placement order: for the complete concept list of a
// context, node 0 is the bottom concept and the last node is the top.
//
// Complexity: O(k²·|M|/64) for k concepts.
package lattice

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/galois/concept"
)

// Node is one concept of the lattice together with the indices of its
// immediate lower covers (more specific concepts directly below it).
type Node struct {
	Concept concept.Concept `json:"concept" yaml:"concept"`
	Lower   []int           `json:"lower" yaml:"lower"`
}

// Lattice is the cover relation of a concept list.
type Lattice struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
}

// Edge is one cover pair: Lower is an immediate subconcept of Upper.
type Edge struct {
	Upper int
	Lower int
}

// Build computes the cover relation of concepts. Input order is irrelevant.
// Concepts with identical intents are kept as separate nodes and are not
// linked to each other.
func Build(concepts []concept.Concept) *Lattice {
	ix := newIndex(concepts)
	entries := make([]*entry, len(concepts))
	for i, c := range concepts {
		entries[i] = ix.entry(c, i)
	}
	// Duplicates pop in input order.
	q := NewQueue(func(a, b *entry) int {
		if c := compareEntries(a, b); c != 0 {
			return c
		}
		return b.seq - a.seq
	}, entries...)

	l := &Lattice{Nodes: make([]Node, 0, len(concepts))}
	placed := make([]*entry, 0, len(concepts))
	for q.Len() > 0 {
		cur, _ := q.Pop()

		// 1) Lower bounds among the placed nodes, and everything they cover.
		var candidates []int
		covered := bitset.New(uint(len(placed)))
		for i, p := range placed {
			if !p.intent.IsStrictSuperSet(cur.intent) {
				continue
			}
			candidates = append(candidates, i)
			for _, j := range l.Nodes[i].Lower {
				covered.Set(uint(j))
			}
		}

		// 2) Candidates not reachable from another candidate are covers.
		lower := make([]int, 0, len(candidates))
		for _, i := range candidates {
			if !covered.Test(uint(i)) {
				lower = append(lower, i)
			}
		}

		l.Nodes = append(l.Nodes, Node{Concept: cur.concept, Lower: lower})
		placed = append(placed, cur)
	}

	return l
}

// Len returns the number of nodes.
func (l *Lattice) Len() int { return len(l.Nodes) }

// Node returns node i.
func (l *Lattice) Node(i int) Node { return l.Nodes[i] }

// Bottom returns the index of the first placed node, the most specific
// concept; false for an empty lattice.
func (l *Lattice) Bottom() (int, bool) {
	if len(l.Nodes) == 0 {
		return 0, false
	}

	return 0, true
}

// Top returns the index of the last placed node, the most general concept;
// false for an empty lattice.
func (l *Lattice) Top() (int, bool) {
	if len(l.Nodes) == 0 {
		return 0, false
	}

	return len(l.Nodes) - 1, true
}

// Upper returns the indices of the nodes that cover node i.
func (l *Lattice) Upper(i int) []int {
	var out []int
	for u, n := range l.Nodes {
		for _, j := range n.Lower {
			if j == i {
				out = append(out, u)
				break
			}
		}
	}

	return out
}

// Edges lists every cover pair, grouped by upper node in placement order.
func (l *Lattice) Edges() []Edge {
	var out []Edge
	for u, n := range l.Nodes {
		for _, j := range n.Lower {
			out = append(out, Edge{Upper: u, Lower: j})
		}
	}

	return out
}

// Index returns the node whose concept equals x as sets; false if absent.
func (l *Lattice) Index(x concept.Concept) (int, bool) {
	for i, n := range l.Nodes {
		if n.Concept.Equal(x) {
			return i, true
		}
	}

	return 0, false
}
