package lattice_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/galois/builder"
	"github.com/katalvlaran/galois/concept"
	"github.com/katalvlaran/galois/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func c(extent, intent []string) concept.Concept {
	return concept.Concept{Extent: extent, Intent: intent}
}

func s(xs ...string) []string { return xs }

// sample is a shuffled ten-concept lattice over attributes a..e and
// objects 1..7.
func sample() []concept.Concept {
	return []concept.Concept{
		c(s("1", "5"), s("d")),
		c(s("1", "2", "3", "4", "5", "6", "7"), s()),
		c(s("1", "2", "4", "6"), s("b")),
		c(s("2", "7"), s("e")),
		c(s("2"), s("b", "e")),
		c(s("3", "4", "6"), s("c")),
		c(s("1"), s("b", "d")),
		c(s(), s("a", "b", "c", "d", "e")),
		c(s("4"), s("a", "b", "c")),
		c(s("4", "6"), s("b", "c")),
	}
}

func TestBuild_Sample(t *testing.T) {
	l := lattice.Build(sample())
	require.Equal(t, 10, l.Len())

	intents := make([][]string, l.Len())
	lower := make([][]int, l.Len())
	for i, n := range l.Nodes {
		intents[i] = n.Concept.Intent
		lower[i] = n.Lower
	}

	wantIntents := [][]string{
		{"a", "b", "c", "d", "e"},
		{"a", "b", "c"},
		{"b", "d"},
		{"b", "e"},
		{"b", "c"},
		{"d"},
		{"e"},
		{"c"},
		{"b"},
		{},
	}
	wantLower := [][]int{
		{},
		{0},
		{0},
		{0},
		{1},
		{2},
		{3},
		{4},
		{2, 3, 4},
		{5, 6, 7, 8},
	}
	if diff := cmp.Diff(wantIntents, intents, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("placement order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(wantLower, lower, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("lower covers mismatch (-want +got):\n%s", diff)
	}

	bottom, ok := l.Bottom()
	require.True(t, ok)
	assert.Equal(t, 0, bottom)
	top, ok := l.Top()
	require.True(t, ok)
	assert.Equal(t, 9, top)

	assert.Equal(t, []int{7, 8}, l.Upper(4))
	assert.Equal(t, []int{1, 2, 3}, l.Upper(0))
	assert.Len(t, l.Edges(), 14)

	i, ok := l.Index(c(s("6", "4"), s("c", "b")))
	require.True(t, ok)
	assert.Equal(t, 4, i)
}

func TestBuild_InputOrderIrrelevant(t *testing.T) {
	in := sample()
	want := lattice.Build(in)

	reversed := make([]concept.Concept, len(in))
	for i, x := range in {
		reversed[len(in)-1-i] = x
	}
	assert.Equal(t, want, lattice.Build(reversed))
}

// TestBuild_CoversAreHasseDiagram checks every cover list against the
// definition: x covers y iff y < x with nothing strictly between.
func TestBuild_CoversAreHasseDiagram(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		ctx := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(seed)}, builder.Random(8, 6, 0.5))
		l := lattice.Build(concept.Enumerate(ctx))

		strictlyBelow := func(a, b int) bool {
			x, y := l.Node(a).Concept, l.Node(b).Concept
			return x.Subconcept(y) && !x.Equal(y)
		}
		for u := 0; u < l.Len(); u++ {
			var want []int
			for v := 0; v < l.Len(); v++ {
				if !strictlyBelow(v, u) {
					continue
				}
				between := false
				for w := 0; w < l.Len() && !between; w++ {
					between = strictlyBelow(v, w) && strictlyBelow(w, u)
				}
				if !between {
					want = append(want, v)
				}
			}
			got := append([]int(nil), l.Node(u).Lower...)
			sort.Ints(got)
			require.Equal(t, len(want), len(got), "seed %d node %d", seed, u)
			if len(want) > 0 {
				require.Equal(t, want, got, "seed %d node %d", seed, u)
			}
		}

		// Most specific first, most general last.
		bottom, _ := l.Bottom()
		top, _ := l.Top()
		assert.Equal(t, ctx.Attributes(), l.Node(bottom).Concept.Intent)
		assert.Equal(t, ctx.Objects(), l.Node(top).Concept.Extent)
	}
}

func TestBuild_Empty(t *testing.T) {
	l := lattice.Build(nil)
	assert.Equal(t, 0, l.Len())
	_, ok := l.Top()
	assert.False(t, ok)
	_, ok = l.Bottom()
	assert.False(t, ok)
	assert.Empty(t, l.Edges())
}
