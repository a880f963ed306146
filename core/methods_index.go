// File: methods_index.go
// Role: Derivation and closure operators over interned index sets.
// Determinism:
//   - Results are fresh bitsets sized |M| (attribute sets) or |G| (object sets);
//     they never alias the Context's own rows or columns.
// AI-HINT (file):
//   - Algorithms (Next-Closure, basis, exploration) use only this layer.
//   - Indices outside the domain are ignored.

package core

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/cockroachdb/errors"
)

// Intent returns the attributes shared by every object in objects (the
// derivation objects′). The derivation of the empty set is the full
// attribute set M.
//
// Complexity: O(|objects|·|M|/64).
func (c *Context) Intent(objects *bitset.BitSet) *bitset.BitSet {
	out := FullSet(len(c.attributes))
	if objects == nil {
		return out
	}
	for i, ok := objects.NextSet(0); ok && i < uint(len(c.rows)); i, ok = objects.NextSet(i + 1) {
		out.InPlaceIntersection(c.rows[i])
	}

	return out
}

// Extent returns the objects having every attribute in attributes (the
// derivation attributes′). The derivation of the empty set is the full
// object set G.
//
// Complexity: O(|attributes|·|G|/64).
func (c *Context) Extent(attributes *bitset.BitSet) *bitset.BitSet {
	out := FullSet(len(c.objects))
	if attributes == nil {
		return out
	}
	for j, ok := attributes.NextSet(0); ok && j < uint(len(c.cols)); j, ok = attributes.NextSet(j + 1) {
		out.InPlaceIntersection(c.cols[j])
	}

	return out
}

// AttributeClosure returns attributes′′, the smallest intent containing
// attributes. Idempotent, extensive and monotone.
func (c *Context) AttributeClosure(attributes *bitset.BitSet) *bitset.BitSet {
	return c.Intent(c.Extent(attributes))
}

// ObjectClosure returns objects′′, the smallest extent containing objects.
func (c *Context) ObjectClosure(objects *bitset.BitSet) *bitset.BitSet {
	return c.Extent(c.Intent(objects))
}

// Row returns a copy of the attribute set of object i.
func (c *Context) Row(i int) *bitset.BitSet {
	if i < 0 || i >= len(c.rows) {
		return NewSet(len(c.attributes))
	}

	return c.rows[i].Clone()
}

// Column returns a copy of the object set of attribute j.
func (c *Context) Column(j int) *bitset.BitSet {
	if j < 0 || j >= len(c.cols) {
		return NewSet(len(c.objects))
	}

	return c.cols[j].Clone()
}

// ObjectSet interns object names into an index set.
// Any unknown name yields ErrNotFound listing every unknown name.
func (c *Context) ObjectSet(names []string) (*bitset.BitSet, error) {
	return lookup(names, c.objectIndex, len(c.objects), "object")
}

// AttributeSet interns attribute names into an index set.
// Any unknown name yields ErrNotFound listing every unknown name.
func (c *Context) AttributeSet(names []string) (*bitset.BitSet, error) {
	return lookup(names, c.attributeIndex, len(c.attributes), "attribute")
}

// ObjectNames translates an object index set back to names in Context order.
func (c *Context) ObjectNames(set *bitset.BitSet) []string {
	return names(set, c.objects)
}

// AttributeNames translates an attribute index set back to names in Context order.
func (c *Context) AttributeNames(set *bitset.BitSet) []string {
	return names(set, c.attributes)
}

func lookup(in []string, index map[string]uint, n int, kind string) (*bitset.BitSet, error) {
	out := NewSet(n)
	var missing []string
	for _, name := range in {
		i, ok := index[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		out.Set(i)
	}
	if len(missing) > 0 {
		return nil, errors.Wrapf(ErrNotFound, "unknown %s(s) %s", kind, strings.Join(quoteAll(missing), ", "))
	}

	return out, nil
}

func names(set *bitset.BitSet, domain []string) []string {
	out := make([]string, 0, len(domain))
	if set == nil {
		return out
	}
	for i, ok := set.NextSet(0); ok && i < uint(len(domain)); i, ok = set.NextSet(i + 1) {
		out = append(out, domain[i])
	}

	return out
}

func quoteAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strconv.Quote(s)
	}

	return out
}
