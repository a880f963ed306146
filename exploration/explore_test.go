package exploration_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/galois/builder"
	"github.com/katalvlaran/galois/core"
	"github.com/katalvlaran/galois/exploration"
	"github.com/katalvlaran/galois/implication"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var waterAttributes = []string{"running", "artificial", "small"}

// waters is the full domain: pond, river and canal.
func waters(t *testing.T) *core.Context {
	t.Helper()
	c, err := core.New(
		[]string{"pond", "river", "canal"},
		waterAttributes,
		[][]bool{{false, true, true}, {true, false, false}, {true, true, false}},
	)
	require.NoError(t, err)

	return c
}

// pondOnly is the starting point: the pond alone.
func pondOnly(t *testing.T) *core.Context {
	t.Helper()
	c, err := core.New([]string{"pond"}, waterAttributes, [][]bool{{false, true, true}})
	require.NoError(t, err)

	return c
}

func triangle() *core.Context {
	return builder.MustBuild(nil, builder.Rows(
		".XX.XX", ".XX...", "......", "....XX", "..X.XX",
		".X....", "..X.XX", "..XX.X", "..X.XX", ".XXXXX",
	))
}

func TestExplore_ConfirmAllGivesCanonicalBasis(t *testing.T) {
	c := triangle()
	var stats exploration.Stats

	basis, final, err := exploration.Explore(context.Background(), c, exploration.ConfirmAll,
		exploration.WithLogger(zaptest.NewLogger(t)), exploration.WithStats(&stats))
	require.NoError(t, err)

	if diff := cmp.Diff(implication.Canonical(c).Implications(), basis.Implications()); diff != "" {
		t.Fatalf("basis mismatch (-canonical +explored):\n%s", diff)
	}
	assert.Equal(t, c.Objects(), final.Objects())
	assert.Equal(t, exploration.Stats{Questions: 5, Confirmations: 5}, stats)
}

func TestExplore_ReferenceOracle(t *testing.T) {
	start := pondOnly(t)
	var questions []exploration.Question
	ref := exploration.ContextOracle(waters(t))
	oracle := exploration.OracleFunc(func(ctx context.Context, q exploration.Question) (exploration.Answer, error) {
		questions = append(questions, q)
		return ref.Ask(ctx, q)
	})
	var stats exploration.Stats

	basis, final, err := exploration.Explore(context.Background(), start, oracle, exploration.WithStats(&stats))
	require.NoError(t, err)

	assert.Equal(t, []exploration.Question{
		{Premise: []string{}, Conclusion: []string{"artificial", "small"}},
		{Premise: []string{"small"}, Conclusion: []string{"artificial", "small"}},
		{Premise: []string{"artificial"}, Conclusion: []string{"artificial", "small"}},
	}, questions)
	assert.Equal(t, []implication.Implication{
		{Premise: []string{"small"}, Conclusion: []string{"artificial", "small"}},
	}, basis.Implications())
	assert.Equal(t, []string{"pond", "river", "canal"}, final.Objects())
	got, err := final.Intents([]string{"canal"})
	require.NoError(t, err)
	assert.Equal(t, []string{"running", "artificial"}, got)
	assert.Equal(t, exploration.Stats{Questions: 3, Confirmations: 1, Counterexamples: 2}, stats)

	// The input context is left alone.
	assert.Equal(t, 1, start.ObjectCount())
}

func TestExplore_RandomReferenceRecoversTheory(t *testing.T) {
	for seed := int64(1); seed <= 6; seed++ {
		ref := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(seed)}, builder.Random(12, 6, 0.45))

		incidence := make([][]bool, 3)
		for i := range incidence {
			incidence[i] = make([]bool, ref.AttributeCount())
			for j := range incidence[i] {
				incidence[i][j] = ref.IncidenceAt(i, j)
			}
		}
		start, err := core.New(ref.Objects()[:3], ref.Attributes(), incidence)
		require.NoError(t, err)

		basis, final, err := exploration.Explore(context.Background(), start, exploration.ContextOracle(ref))
		require.NoError(t, err)

		want := implication.Canonical(ref).Implications()
		if diff := cmp.Diff(want, basis.Implications()); diff != "" {
			t.Fatalf("seed %d: basis mismatch (-want +got):\n%s", seed, diff)
		}
		if diff := cmp.Diff(want, implication.Canonical(final).Implications()); diff != "" {
			t.Fatalf("seed %d: final context basis mismatch (-want +got):\n%s", seed, diff)
		}
		assert.LessOrEqual(t, final.ObjectCount(), ref.ObjectCount())
	}
}

// abc is one object having a, b and c.
func abc(t *testing.T) *core.Context {
	t.Helper()
	c, err := core.New([]string{"1"}, []string{"a", "b", "c"}, [][]bool{{true, true, true}})
	require.NoError(t, err)

	return c
}

func TestExplore_RejectedCounterexamples(t *testing.T) {
	errOracle := errors.New("oracle unavailable")

	tests := []struct {
		name   string
		oracle exploration.OracleFunc
		opts   []exploration.Option
		want   error
	}{
		{
			name: "has the whole conclusion",
			oracle: func(context.Context, exploration.Question) (exploration.Answer, error) {
				return exploration.Counterexample("x", []string{"a", "b", "c"}), nil
			},
			want: exploration.ErrInconsistentCounterexample,
		},
		{
			name: "violates a confirmed implication",
			oracle: func(_ context.Context, q exploration.Question) (exploration.Answer, error) {
				switch {
				case len(q.Premise) == 0:
					return exploration.Counterexample("2", nil), nil
				case q.Premise[0] == "a":
					// b → a, b, c was confirmed before {a} is asked.
					return exploration.Counterexample("3", []string{"b"}), nil
				}
				return exploration.Confirm(), nil
			},
			want: exploration.ErrInconsistentCounterexample,
		},
		{
			name: "too many for one premise",
			oracle: func(_ context.Context, q exploration.Question) (exploration.Answer, error) {
				return exploration.Counterexample("", []string{"a", "b"}), nil
			},
			opts: []exploration.Option{exploration.WithMaxCounterexamples(1)},
			want: exploration.ErrTooManyCounterexamples,
		},
		{
			name: "unknown attribute",
			oracle: func(context.Context, exploration.Question) (exploration.Answer, error) {
				return exploration.Counterexample("x", []string{"zzz"}), nil
			},
			want: core.ErrNotFound,
		},
		{
			name: "duplicate object name",
			oracle: func(context.Context, exploration.Question) (exploration.Answer, error) {
				return exploration.Counterexample("1", nil), nil
			},
			want: core.ErrDuplicateName,
		},
		{
			name: "oracle error",
			oracle: func(context.Context, exploration.Question) (exploration.Answer, error) {
				return exploration.Answer{}, errOracle
			},
			want: errOracle,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			basis, final, err := exploration.Explore(context.Background(), abc(t), tc.oracle, tc.opts...)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, basis)
			assert.Nil(t, final)
		})
	}
}

func TestExplore_NilOracle(t *testing.T) {
	_, _, err := exploration.Explore(context.Background(), abc(t), nil)
	require.ErrorIs(t, err, exploration.ErrNilOracle)
}

func TestExplore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := exploration.Explore(ctx, triangle(), exploration.ConfirmAll)
	require.ErrorIs(t, err, context.Canceled)
}

func TestExplore_NoQuestions(t *testing.T) {
	// Every subset of a contranominal scale is closed.
	c := builder.MustBuild(nil, builder.Contranominal(3))
	var stats exploration.Stats

	basis, _, err := exploration.Explore(context.Background(), c, exploration.ConfirmAll, exploration.WithStats(&stats))
	require.NoError(t, err)
	assert.Equal(t, 0, basis.Len())
	assert.Equal(t, 0, stats.Questions)
}
