package concept_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/galois/builder"
	"github.com/katalvlaran/galois/concept"
	"github.com/katalvlaran/galois/core"
	"github.com/katalvlaran/galois/nextclosure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// triangle is the 10×6 context with attributes a..f and objects 1..10.
func triangle() *core.Context {
	return builder.MustBuild(nil, builder.Rows(
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
}

func TestEnumerate_Triangle(t *testing.T) {
	c := triangle()
	got := concept.Enumerate(c)

	intents := make([][]string, len(got))
	for i, x := range got {
		intents[i] = x.Intent
	}
	want := [][]string{
		{},
		{"f"},
		{"e", "f"},
		{"c"},
		{"c", "f"},
		{"c", "e", "f"},
		{"c", "d", "f"},
		{"b"},
		{"b", "c"},
		{"b", "c", "e", "f"},
		{"b", "c", "d", "e", "f"},
		{"a", "b", "c", "d", "e", "f"},
	}
	if diff := cmp.Diff(want, intents); diff != "" {
		t.Fatalf("intents mismatch (-want +got):\n%s", diff)
	}

	// Top holds every object, bottom every attribute.
	assert.Equal(t, c.Objects(), got[0].Extent)
	assert.Equal(t, c.Attributes(), got[len(got)-1].Intent)
	assert.Empty(t, got[len(got)-1].Extent)
	assert.Equal(t, []string{"8", "10"}, got[6].Extent)
}

func TestEnumerate_Waters(t *testing.T) {
	c, err := core.New(
		[]string{"pond", "river"},
		[]string{"running", "artificial"},
		[][]bool{{false, true}, {true, false}},
	)
	require.NoError(t, err)

	want := []concept.Concept{
		{Extent: []string{"pond", "river"}, Intent: []string{}},
		{Extent: []string{"pond"}, Intent: []string{"artificial"}},
		{Extent: []string{"river"}, Intent: []string{"running"}},
		{Extent: []string{}, Intent: []string{"running", "artificial"}},
	}
	if diff := cmp.Diff(want, concept.Enumerate(c)); diff != "" {
		t.Fatalf("concepts mismatch (-want +got):\n%s", diff)
	}
}

func TestEnumerate_EveryConceptIsClosedAndUnique(t *testing.T) {
	for seed := int64(1); seed <= 6; seed++ {
		c := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(seed)}, builder.Random(9, 6, 0.45))
		all := concept.Enumerate(c)
		require.NotEmpty(t, all)

		seen := map[string]bool{}
		var prev concept.Concept
		for i, x := range all {
			require.NoError(t, concept.Validate(c, x), "seed %d: %s", seed, x)
			key := x.String()
			require.False(t, seen[key], "seed %d: duplicate %s", seed, x)
			seen[key] = true

			if i > 0 {
				a, err := c.AttributeSet(prev.Intent)
				require.NoError(t, err)
				b, err := c.AttributeSet(x.Intent)
				require.NoError(t, err)
				require.True(t, nextclosure.LecticLess(a, b), "seed %d: order at %d", seed, i)
			}
			prev = x
		}
		assert.Equal(t, len(all), concept.Count(c))
	}
}

func TestEnumerate_Scales(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		want int
	}{
		{"Nominal(4)", builder.Nominal(4), 6},
		{"Ordinal(5)", builder.Ordinal(5), 5},
		{"Contranominal(4)", builder.Contranominal(4), 16},
		{"Nominal(1)", builder.Nominal(1), 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, concept.Count(builder.MustBuild(nil, tc.ctor)))
		})
	}
}

func TestEnumerate_EmptyContext(t *testing.T) {
	got := concept.Enumerate(core.NewEmpty(0, 0))
	require.Len(t, got, 1)
	assert.Empty(t, got[0].Extent)
	assert.Empty(t, got[0].Intent)
}

func TestEnumerateFunc_StopsEarly(t *testing.T) {
	n := 0
	concept.EnumerateFunc(triangle(), func(concept.Concept) bool {
		n++
		return n < 4
	})
	assert.Equal(t, 4, n)
}

func TestValidate(t *testing.T) {
	c := triangle()

	require.NoError(t, concept.Validate(c, concept.Concept{
		Extent: []string{"8", "10"}, Intent: []string{"c", "d", "f"},
	}))

	err := concept.Validate(c, concept.Concept{Extent: []string{"8"}, Intent: []string{"c", "d", "f"}})
	require.ErrorIs(t, err, concept.ErrNotClosed)

	err = concept.Validate(c, concept.Concept{Extent: []string{"11"}})
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestConcept_Order(t *testing.T) {
	top := concept.Concept{Extent: []string{"1", "2"}, Intent: nil}
	low := concept.Concept{Extent: []string{"2"}, Intent: []string{"b"}}

	assert.True(t, low.Subconcept(top))
	assert.False(t, top.Subconcept(low))
	assert.True(t, top.Subconcept(top))
	assert.True(t, low.Equal(concept.Concept{Extent: []string{"2"}, Intent: []string{"b"}}))
	assert.Equal(t, "({2}, {b})", low.String())
}
