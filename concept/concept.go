// Package concept enumerates the formal concepts of a core.Context.
//
// A formal concept is a pair (extent, intent) with intent = extent′ and
// extent = intent′. Enumerate drives nextclosure with the Context's attribute
// closure, so concepts come out in strictly increasing lectic order of their
// intents, each exactly once.
//
// The partial order helpers in this file (Subconcept, Equal) are the genuine
// specificity order. The total order used to linearize lattice construction
// lives in package lattice and is deliberately kept apart from them.
package concept

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/galois/core"
	"github.com/katalvlaran/galois/nextclosure"
)

// ErrNotClosed indicates a pair that is not a fixed point of the double
// derivation.
var ErrNotClosed = errors.New("concept: pair is not Galois-closed")

// Concept is a Galois-closed (extent, intent) pair. Names follow the order of
// the Context that produced it.
type Concept struct {
	Extent []string `json:"extent" yaml:"extent"`
	Intent []string `json:"intent" yaml:"intent"`
}

// Enumerate returns every formal concept of c in increasing lectic order of
// intents. The first concept is the top (all objects whose common
// attributes form ∅′′); the last is the bottom (intent M).
//
// Complexity: O(|concepts|·|M|) closure evaluations.
func Enumerate(c *core.Context) []Concept {
	var out []Concept
	EnumerateFunc(c, func(x Concept) bool {
		out = append(out, x)
		return true
	})

	return out
}

// EnumerateFunc streams concepts to visit until it returns false.
func EnumerateFunc(c *core.Context, visit func(Concept) bool) {
	n := uint(c.AttributeCount())
	seed := c.AttributeClosure(core.NewSet(c.AttributeCount()))
	nextclosure.Walk(n, seed, c.AttributeClosure, func(intent *bitset.BitSet) bool {
		return visit(Concept{
			Extent: c.ObjectNames(c.Extent(intent)),
			Intent: c.AttributeNames(intent),
		})
	})
}

// Count returns the number of formal concepts of c.
func Count(c *core.Context) int {
	n := 0
	EnumerateFunc(c, func(Concept) bool {
		n++
		return true
	})

	return n
}

// Validate checks that x is a formal concept of c.
//
// Errors: core.ErrNotFound for unknown names, ErrNotClosed otherwise.
func Validate(c *core.Context, x Concept) error {
	extent, err := c.ObjectSet(x.Extent)
	if err != nil {
		return err
	}
	intent, err := c.AttributeSet(x.Intent)
	if err != nil {
		return err
	}
	if !core.SameSet(c.Intent(extent), intent) || !core.SameSet(c.Extent(intent), extent) {
		return errors.Wrapf(ErrNotClosed, "%s", x)
	}

	return nil
}

// Subconcept reports whether x ≤ y in the concept order, i.e. x is at least
// as specific as y: x.Extent ⊆ y.Extent, equivalently x.Intent ⊇ y.Intent.
func (x Concept) Subconcept(y Concept) bool {
	return subset(x.Extent, y.Extent) && subset(y.Intent, x.Intent)
}

// Equal reports whether x and y hold the same extent and intent as sets.
func (x Concept) Equal(y Concept) bool {
	return x.Subconcept(y) && y.Subconcept(x)
}

// String renders the concept as "({extent}, {intent})".
func (x Concept) String() string {
	return fmt.Sprintf("({%s}, {%s})", strings.Join(x.Extent, ", "), strings.Join(x.Intent, ", "))
}

func subset(a, b []string) bool {
	in := make(map[string]struct{}, len(b))
	for _, s := range b {
		in[s] = struct{}{}
	}
	for _, s := range a {
		if _, ok := in[s]; !ok {
			return false
		}
	}

	return true
}
