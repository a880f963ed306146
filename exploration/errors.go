package exploration

import "github.com/cockroachdb/errors"

var (
	// ErrNilOracle is returned when Explore is called without an oracle.
	ErrNilOracle = errors.New("exploration: nil oracle")

	// ErrInconsistentCounterexample is returned for a counterexample that
	// does not refute the question, or that violates an implication already
	// confirmed.
	ErrInconsistentCounterexample = errors.New("exploration: inconsistent counterexample")

	// ErrTooManyCounterexamples is returned when one premise receives more
	// counterexamples than WithMaxCounterexamples allows.
	ErrTooManyCounterexamples = errors.New("exploration: too many counterexamples")

	// ErrScriptExhausted is returned by a Scripted oracle with no answer for a
	// question and no default.
	ErrScriptExhausted = errors.New("exploration: script has no answer")
)
