// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructors and read-only getters for Context.
// Policy:
//   - No derivation logic here (see methods.go / methods_index.go).
//   - Every constructor validates names and shape before allocating bitsets.

package core

import (
	"strconv"

	"github.com/bits-and-blooms/bitset"
	"github.com/cockroachdb/errors"
)

// New builds a Context from object names, attribute names and a row-major
// incidence grid with exactly len(objects) rows of len(attributes) cells.
//
// Errors:
//   - ErrDuplicateName if an object or attribute name repeats.
//   - ErrMalformedInput if the row count or any row width disagrees.
//
// Complexity: O(|G|·|M|).
func New(objects, attributes []string, incidence [][]bool) (*Context, error) {
	// 1) Shape first: no partial Context is ever produced.
	if len(incidence) != len(objects) {
		return nil, errors.Wrapf(ErrMalformedInput, "got %d rows for %d objects", len(incidence), len(objects))
	}
	for i, row := range incidence {
		if len(row) != len(attributes) {
			return nil, errors.Wrapf(ErrMalformedInput,
				"row %d (%q) has %d cells, want %d", i+1, objects[i], len(row), len(attributes))
		}
	}

	// 2) Intern names.
	objectIndex, err := intern(objects, "object")
	if err != nil {
		return nil, err
	}
	attributeIndex, err := intern(attributes, "attribute")
	if err != nil {
		return nil, err
	}

	// 3) Fill both incidence views.
	c := &Context{
		objects:        append([]string(nil), objects...),
		attributes:     append([]string(nil), attributes...),
		objectIndex:    objectIndex,
		attributeIndex: attributeIndex,
		rows:           make([]*bitset.BitSet, len(objects)),
		cols:           make([]*bitset.BitSet, len(attributes)),
	}
	for j := range attributes {
		c.cols[j] = NewSet(len(objects))
	}
	for i, row := range incidence {
		c.rows[i] = NewSet(len(attributes))
		for j, has := range row {
			if has {
				c.rows[i].Set(uint(j))
				c.cols[j].Set(uint(i))
			}
		}
	}

	return c, nil
}

// NewEmpty builds a Context with the given numbers of objects and attributes,
// named "1".."n" and "1".."m", with no incidence at all.
func NewEmpty(objects, attributes int) *Context {
	incidence := make([][]bool, objects)
	for i := range incidence {
		incidence[i] = make([]bool, attributes)
	}
	// Generated names are unique and the grid is well-shaped by construction.
	c, err := New(numberedNames(objects), numberedNames(attributes), incidence)
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "NewEmpty(%d, %d)", objects, attributes))
	}

	return c
}

// Objects returns a copy of the ordered object names.
func (c *Context) Objects() []string {
	return append([]string(nil), c.objects...)
}

// Attributes returns a copy of the ordered attribute names.
func (c *Context) Attributes() []string {
	return append([]string(nil), c.attributes...)
}

// ObjectCount returns |G|.
func (c *Context) ObjectCount() int { return len(c.objects) }

// AttributeCount returns |M|.
func (c *Context) AttributeCount() int { return len(c.attributes) }

// ObjectIndex reports the interned index of an object name.
func (c *Context) ObjectIndex(name string) (uint, bool) {
	i, ok := c.objectIndex[name]
	return i, ok
}

// AttributeIndex reports the interned index of an attribute name.
func (c *Context) AttributeIndex(name string) (uint, bool) {
	j, ok := c.attributeIndex[name]
	return j, ok
}

// IncidenceAt reports whether object i has attribute j. Indices out of range
// report false.
func (c *Context) IncidenceAt(i, j int) bool {
	if i < 0 || i >= len(c.rows) || j < 0 || j >= len(c.attributes) {
		return false
	}

	return c.rows[i].Test(uint(j))
}

// intern maps each name to its position, rejecting duplicates.
func intern(names []string, kind string) (map[string]uint, error) {
	index := make(map[string]uint, len(names))
	for i, name := range names {
		if _, dup := index[name]; dup {
			return nil, errors.Wrapf(ErrDuplicateName, "%s %q", kind, name)
		}
		index[name] = uint(i)
	}

	return index, nil
}

// numberedNames returns "1".."n".
func numberedNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = strconv.Itoa(i + 1)
	}

	return names
}
