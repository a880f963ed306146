// core/methods_test.go
// Package core_test contains tests for derivation and closure operators.
package core_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/katalvlaran/galois/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangle is the 10×6 context whose concepts are enumerated in the concept
// package tests.
func triangle(t *testing.T) *core.Context {
	t.Helper()
	objects := make([]string, 10)
	for i := range objects {
		objects[i] = strconv.Itoa(i + 1)
	}
	c, err := core.New(objects, []string{"a", "b", "c", "d", "e", "f"}, grid(
		".XX.XX", // 1
		".XX...", // 2
		"......", // 3
		"....XX", // 4
		"..X.XX", // 5
		".X....", // 6
		"..X.XX", // 7
		"..XX.X", // 8
		"..X.XX", // 9
		".XXXXX", // 10
	))
	require.NoError(t, err)

	return c
}

func TestIntents_Waters(t *testing.T) {
	c := waters(t)

	got, err := c.Intents([]string{"pond"})
	require.NoError(t, err)
	assert.Equal(t, []string{"artificial"}, got)

	got, err = c.Intents([]string{"pond", "river"})
	require.NoError(t, err)
	assert.Empty(t, got)

	// The derivation of nothing is everything.
	got, err = c.Intents(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"running", "artificial"}, got)
}

func TestExtents_Waters(t *testing.T) {
	c := waters(t)

	got, err := c.Extents([]string{"running"})
	require.NoError(t, err)
	assert.Equal(t, []string{"river"}, got)

	got, err = c.Extents(nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"pond", "river"}, got)
}

func TestClosures_Waters(t *testing.T) {
	c := waters(t)

	got, err := c.ClosureExtents([]string{"running"})
	require.NoError(t, err)
	assert.Equal(t, []string{"running"}, got)

	got, err = c.ClosureIntents([]string{"pond"})
	require.NoError(t, err)
	assert.Equal(t, []string{"pond"}, got)

	// Both attributes together are shared by no object, so their closure is M.
	got, err = c.ClosureExtents([]string{"running", "artificial"})
	require.NoError(t, err)
	assert.Equal(t, []string{"running", "artificial"}, got)
}

func TestQueries_UnknownName(t *testing.T) {
	c := waters(t)

	_, err := c.Intents([]string{"pond", "lake"})
	require.ErrorIs(t, err, core.ErrNotFound)
	assert.Contains(t, err.Error(), `"lake"`)

	_, err = c.Extents([]string{"salty"})
	require.ErrorIs(t, err, core.ErrNotFound)
	_, err = c.ClosureIntents([]string{"sea"})
	require.ErrorIs(t, err, core.ErrNotFound)
	_, err = c.ClosureExtents([]string{"salty"})
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestIntents_Triangle(t *testing.T) {
	c := triangle(t)

	got, err := c.Intents([]string{"1", "10"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "e", "f"}, got)

	got, err = c.Extents([]string{"d"})
	require.NoError(t, err)
	assert.Equal(t, []string{"8", "10"}, got)

	got, err = c.ClosureExtents([]string{"d"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "d", "f"}, got)

	// Object 3 has no attributes, so its closure is every object.
	got, err = c.ClosureIntents([]string{"3"})
	require.NoError(t, err)
	assert.Len(t, got, 10)
}

// randomContext returns a seeded context with density p.
func randomContext(seed int64, objects, attributes int, p float64) *core.Context {
	r := rand.New(rand.NewSource(seed))
	c := core.NewEmpty(0, attributes)
	for i := 0; i < objects; i++ {
		row := core.NewSet(attributes)
		for j := 0; j < attributes; j++ {
			if r.Float64() < p {
				row.Set(uint(j))
			}
		}
		if _, err := c.AddObjectSet("", row); err != nil {
			panic(err)
		}
	}

	return c
}

func randomSubset(r *rand.Rand, n int) *bitset.BitSet {
	s := core.NewSet(n)
	for j := 0; j < n; j++ {
		if r.Intn(3) == 0 {
			s.Set(uint(j))
		}
	}

	return s
}

func TestGaloisLaws_RandomContexts(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		c := randomContext(seed, 12, 7, 0.4)
		r := rand.New(rand.NewSource(seed * 31))
		m, g := c.AttributeCount(), c.ObjectCount()

		for k := 0; k < 40; k++ {
			a := randomSubset(r, m)
			b := a.Union(randomSubset(r, m))

			clA := c.AttributeClosure(a)
			require.True(t, clA.IsSuperSet(a), "extensive (seed %d)", seed)
			require.True(t, core.SameSet(clA, c.AttributeClosure(clA)), "idempotent (seed %d)", seed)
			require.True(t, c.AttributeClosure(b).IsSuperSet(clA), "monotone (seed %d)", seed)
			require.True(t, c.Extent(a).IsSuperSet(c.Extent(b)), "antitone (seed %d)", seed)

			o := randomSubset(r, g)
			clO := c.ObjectClosure(o)
			require.True(t, clO.IsSuperSet(o), "extensive on objects (seed %d)", seed)
			require.True(t, core.SameSet(clO, c.ObjectClosure(clO)), "idempotent on objects (seed %d)", seed)

			// A ⊆ O′ iff O ⊆ A′.
			require.Equal(t, c.Intent(o).IsSuperSet(a), c.Extent(a).IsSuperSet(o), "adjunction (seed %d)", seed)
		}
	}
}

func TestSets_Helpers(t *testing.T) {
	assert.True(t, core.SameSet(core.SetOf(3, 1), core.SetOf(100, 1)))
	assert.False(t, core.SameSet(core.SetOf(3, 1), core.SetOf(3, 2)))
	assert.True(t, core.SameSet(nil, core.NewSet(4)))
	assert.Equal(t, []uint{0, 1, 2}, core.Members(core.FullSet(3)))
	assert.Nil(t, core.Members(nil))
}
