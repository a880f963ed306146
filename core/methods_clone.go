// File: methods_clone.go
// Role: Deep copies of a Context.
// AI-HINT (file):
//   - Take a Clone before handing a Context to attribute exploration if the
//     original must survive unchanged.

package core

import "github.com/bits-and-blooms/bitset"

// Clone returns a deep copy: names, interned indices and incidence.
// Complexity: O(|G|·|M|/64 + |G| + |M|).
func (c *Context) Clone() *Context {
	out := &Context{
		objects:        append([]string(nil), c.objects...),
		attributes:     append([]string(nil), c.attributes...),
		objectIndex:    make(map[string]uint, len(c.objectIndex)),
		attributeIndex: make(map[string]uint, len(c.attributeIndex)),
		rows:           make([]*bitset.BitSet, len(c.rows)),
		cols:           make([]*bitset.BitSet, len(c.cols)),
	}
	for name, i := range c.objectIndex {
		out.objectIndex[name] = i
	}
	for name, j := range c.attributeIndex {
		out.attributeIndex[name] = j
	}
	for i, row := range c.rows {
		out.rows[i] = row.Clone()
	}
	for j, col := range c.cols {
		out.cols[j] = col.Clone()
	}

	return out
}
