package implication

import (
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/galois/core"
	"github.com/katalvlaran/galois/nextclosure"
)

// Implication is a rule premise → conclusion over attribute names. In a basis
// produced by Canonical the conclusion is the full closure of the premise.
type Implication struct {
	Premise    []string `json:"premise" yaml:"premise" toml:"premise"`
	Conclusion []string `json:"conclusion" yaml:"conclusion" toml:"conclusion"`
}

// String renders "a, b -> a, b, c".
func (i Implication) String() string {
	return strings.Join(i.Premise, ", ") + " -> " + strings.Join(i.Conclusion, ", ")
}

// Basis is an ordered list of implications over a fixed attribute list.
type Basis struct {
	attributes  []string
	index       map[string]uint
	premises    []*bitset.BitSet
	conclusions []*bitset.BitSet
}

// NewBasis returns an empty basis over attributes.
//
// Errors: core.ErrDuplicateName if a name repeats.
func NewBasis(attributes []string) (*Basis, error) {
	index := make(map[string]uint, len(attributes))
	for j, m := range attributes {
		if _, dup := index[m]; dup {
			return nil, errors.Wrapf(core.ErrDuplicateName, "attribute %q", m)
		}
		index[m] = uint(j)
	}

	return &Basis{attributes: append([]string(nil), attributes...), index: index}, nil
}

// ForContext returns an empty basis over the attributes of c.
func ForContext(c *core.Context) *Basis {
	b, err := NewBasis(c.Attributes())
	if err != nil {
		// A Context never holds duplicate attribute names.
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "ForContext"))
	}

	return b
}

// Attributes returns a copy of the attribute list.
func (b *Basis) Attributes() []string { return append([]string(nil), b.attributes...) }

// Len returns the number of implications.
func (b *Basis) Len() int { return len(b.premises) }

// Add appends imp.
//
// Errors: core.ErrNotFound if a name is not one of the basis attributes.
func (b *Basis) Add(imp Implication) error {
	premise, err := b.set(imp.Premise)
	if err != nil {
		return errors.Wrap(err, "premise")
	}
	conclusion, err := b.set(imp.Conclusion)
	if err != nil {
		return errors.Wrap(err, "conclusion")
	}
	b.AddSet(premise, conclusion)

	return nil
}

// AddSet appends premise → conclusion given as attribute index sets. Both
// sets are copied.
func (b *Basis) AddSet(premise, conclusion *bitset.BitSet) {
	b.premises = append(b.premises, premise.Clone())
	b.conclusions = append(b.conclusions, conclusion.Clone())
}

// At returns implication i.
func (b *Basis) At(i int) Implication {
	return Implication{
		Premise:    b.names(b.premises[i]),
		Conclusion: b.names(b.conclusions[i]),
	}
}

// Implications returns every implication in insertion order.
func (b *Basis) Implications() []Implication {
	out := make([]Implication, b.Len())
	for i := range out {
		out[i] = b.At(i)
	}

	return out
}

// Closure returns the smallest superset of set that respects every
// implication: rules whose premise is contained in the current set fire
// (once each) until nothing changes. set is not modified.
//
// Complexity: O(k²·|M|/64) for k implications.
func (b *Basis) Closure(set *bitset.BitSet) *bitset.BitSet {
	x := core.SetOf(len(b.attributes), core.Members(set)...)
	fired := make([]bool, len(b.premises))
	for changed := true; changed; {
		changed = false
		for k, p := range b.premises {
			if fired[k] || !x.IsSuperSet(p) {
				continue
			}
			fired[k] = true
			x.InPlaceUnion(b.conclusions[k])
			changed = true
		}
	}

	return x
}

// Close is Closure over names; the result follows attribute order.
//
// Errors: core.ErrNotFound for unknown names.
func (b *Basis) Close(names []string) ([]string, error) {
	set, err := b.set(names)
	if err != nil {
		return nil, err
	}

	return b.names(b.Closure(set)), nil
}

// Respects reports whether set is closed under every implication.
func (b *Basis) Respects(set *bitset.BitSet) bool {
	for k, p := range b.premises {
		if set.IsSuperSet(p) && !set.IsSuperSet(b.conclusions[k]) {
			return false
		}
	}

	return true
}

// Entails reports whether imp follows from the basis.
//
// Errors: core.ErrNotFound for unknown names.
func (b *Basis) Entails(imp Implication) (bool, error) {
	premise, err := b.set(imp.Premise)
	if err != nil {
		return false, err
	}
	conclusion, err := b.set(imp.Conclusion)
	if err != nil {
		return false, err
	}

	return b.Closure(premise).IsSuperSet(conclusion), nil
}

func (b *Basis) set(names []string) (*bitset.BitSet, error) {
	out := core.NewSet(len(b.attributes))
	for _, m := range names {
		j, ok := b.index[m]
		if !ok {
			return nil, errors.Wrapf(core.ErrNotFound, "attribute %q", m)
		}
		out.Set(j)
	}

	return out, nil
}

func (b *Basis) names(set *bitset.BitSet) []string {
	out := make([]string, 0, set.Count())
	for j, ok := set.NextSet(0); ok && j < uint(len(b.attributes)); j, ok = set.NextSet(j + 1) {
		out = append(out, b.attributes[j])
	}

	return out
}

// Canonical computes the Duquenne–Guigues basis of c. Every implication it
// returns holds in c, none follows from the others, and every implication
// that holds in c follows from them.
//
// Complexity: one Next-Closure step per pseudo-intent or intent visited, each
// O(|M|) closure evaluations.
func Canonical(c *core.Context) *Basis {
	b := ForContext(c)
	n := c.AttributeCount()
	full := core.FullSet(n)

	a := core.NewSet(n)
	for !core.SameSet(a, full) {
		closure := c.AttributeClosure(a)
		if !core.SameSet(a, closure) {
			b.AddSet(a, closure)
		}
		next, ok := nextclosure.Next(uint(n), a, b.Closure)
		if !ok {
			break
		}
		a = next
	}

	return b
}

// Holds reports whether imp is valid in c: every object having the premise
// also has the conclusion.
//
// Errors: core.ErrNotFound for unknown names.
func Holds(c *core.Context, imp Implication) (bool, error) {
	premise, err := c.AttributeSet(imp.Premise)
	if err != nil {
		return false, err
	}
	conclusion, err := c.AttributeSet(imp.Conclusion)
	if err != nil {
		return false, err
	}

	return c.AttributeClosure(premise).IsSuperSet(conclusion), nil
}
