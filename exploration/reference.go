package exploration

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/galois/core"
)

// ContextOracle answers from a reference context that stands for the whole
// domain: a question is confirmed when it holds in ref, otherwise the first
// object of ref that has the premise but lacks part of the conclusion is
// returned as the counterexample.
//
// Errors: core.ErrNotFound if a question names an attribute ref lacks.
func ContextOracle(ref *core.Context) Oracle {
	return OracleFunc(func(_ context.Context, q Question) (Answer, error) {
		premise, err := ref.AttributeSet(q.Premise)
		if err != nil {
			return Answer{}, errors.Wrap(err, "reference premise")
		}
		conclusion, err := ref.AttributeSet(q.Conclusion)
		if err != nil {
			return Answer{}, errors.Wrap(err, "reference conclusion")
		}

		extent := ref.Extent(premise)
		for i, ok := extent.NextSet(0); ok; i, ok = extent.NextSet(i + 1) {
			row := ref.Row(int(i))
			if !row.IsSuperSet(conclusion) {
				return Counterexample(ref.Objects()[i], ref.AttributeNames(row)), nil
			}
		}

		return Confirm(), nil
	})
}
