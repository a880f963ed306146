// File: methods_objects.go
// Role: Point lookup and row append, the only mutation a Context supports.
// AI-HINT (file):
//   - AddObject with an empty name auto-numbers from ObjectCount()+1.
//   - AddObjectSet is the index-level entry used by attribute exploration.

package core

import (
	"strconv"

	"github.com/bits-and-blooms/bitset"
	"github.com/cockroachdb/errors"
)

// ObjectHasAttribute reports whether the named object has the named attribute.
//
// Errors: ErrNotFound if either name is absent.
func (c *Context) ObjectHasAttribute(object, attribute string) (bool, error) {
	i, ok := c.objectIndex[object]
	if !ok {
		return false, errors.Wrapf(ErrNotFound, "object %q", object)
	}
	j, ok := c.attributeIndex[attribute]
	if !ok {
		return false, errors.Wrapf(ErrNotFound, "attribute %q", attribute)
	}

	return c.rows[i].Test(j), nil
}

// AddObject appends one object whose row is true exactly at the named
// attributes. If name is empty the next free integer (as text) is used.
// It returns the name actually assigned.
//
// Errors:
//   - ErrNotFound if any attribute name is unknown.
//   - ErrDuplicateName if name is already an object.
func (c *Context) AddObject(name string, attributes []string) (string, error) {
	row, err := c.AttributeSet(attributes)
	if err != nil {
		return "", err
	}

	return c.AddObjectSet(name, row)
}

// AddObjectSet appends one object with the given attribute index set.
//
// Errors:
//   - ErrDuplicateName if name is already an object.
//   - ErrInvariant if row holds an index ≥ AttributeCount().
//
// Complexity: O(|M|).
func (c *Context) AddObjectSet(name string, row *bitset.BitSet) (string, error) {
	// 1) Width check: a row may not reach past the attribute domain.
	if row == nil {
		row = NewSet(len(c.attributes))
	}
	if last, ok := lastMember(row); ok && last >= uint(len(c.attributes)) {
		return "", errors.WithAssertionFailure(errors.Wrapf(ErrInvariant,
			"row index %d exceeds attribute count %d", last, len(c.attributes)))
	}

	// 2) Resolve the name.
	if name == "" {
		name = c.nextObjectName()
	}
	if _, dup := c.objectIndex[name]; dup {
		return "", errors.Wrapf(ErrDuplicateName, "object %q", name)
	}

	// 3) Append the row and grow every column by one object.
	i := uint(len(c.objects))
	c.objects = append(c.objects, name)
	c.objectIndex[name] = i
	stored := SetOf(len(c.attributes), Members(row)...)
	c.rows = append(c.rows, stored)
	for j := range c.cols {
		grown := SetOf(len(c.objects), Members(c.cols[j])...)
		if stored.Test(uint(j)) {
			grown.Set(i)
		}
		c.cols[j] = grown
	}

	return name, nil
}

// nextObjectName returns ObjectCount()+1 as text, bumped until unused.
func (c *Context) nextObjectName() string {
	for n := len(c.objects) + 1; ; n++ {
		name := strconv.Itoa(n)
		if _, taken := c.objectIndex[name]; !taken {
			return name
		}
	}
}

func lastMember(s *bitset.BitSet) (uint, bool) {
	var last uint
	found := false
	for i, ok := s.NextSet(0); ok; i, ok = s.NextSet(i + 1) {
		last, found = i, true
	}

	return last, found
}
