// File: types.go
// Role: Context type and sentinel errors.
//
// A Context K = (G, M, I) holds an ordered list of object names G, an ordered
// list of attribute names M and the incidence relation I ⊆ G×M. Names are
// interned to dense indices once at construction.

package core

import (
	"github.com/bits-and-blooms/bitset"
	"github.com/cockroachdb/errors"
)

// Sentinel errors for core context operations.
var (
	// ErrNotFound indicates that a name passed to a query is not part of the
	// Context. It is distinguishable from a legitimately empty result.
	ErrNotFound = errors.New("core: name not found")

	// ErrDuplicateName indicates that an object or attribute name occurs twice.
	ErrDuplicateName = errors.New("core: duplicate name")

	// ErrMalformedInput indicates that a row count or row width disagrees with
	// the object and attribute lists.
	ErrMalformedInput = errors.New("core: malformed input")

	// ErrInvariant marks an internal invariant violation (for example a row
	// whose width disagrees with the attribute count). Never expected through
	// the public surface under correct use.
	ErrInvariant = errors.New("core: internal invariant violated")
)

// Context is an in-memory formal context.
//
// rows[g] is the set of attribute indices of object g (length |M|);
// cols[m] is the set of object indices having attribute m (length |G|).
// Both views are kept in sync by every mutation.
//
// A Context is not safe for concurrent mutation; read-only queries may run
// concurrently as long as no AddObject call is in flight.
type Context struct {
	objects    []string
	attributes []string

	objectIndex    map[string]uint
	attributeIndex map[string]uint

	rows []*bitset.BitSet
	cols []*bitset.BitSet
}
