package exploration

import (
	"context"
	"strings"
)

// Question asks whether every object having Premise also has Conclusion.
// Conclusion is the full closure of Premise in the current context.
type Question struct {
	Premise    []string `json:"premise" yaml:"premise"`
	Conclusion []string `json:"conclusion" yaml:"conclusion"`
}

// String renders "a, b -> a, b, c".
func (q Question) String() string {
	return strings.Join(q.Premise, ", ") + " -> " + strings.Join(q.Conclusion, ", ")
}

// Object is a named object and its attributes.
type Object struct {
	Name       string   `json:"name" yaml:"name" toml:"name"`
	Attributes []string `json:"attributes" yaml:"attributes" toml:"attributes"`
}

// Answer is either a confirmation or a counterexample. The zero Answer
// confirms.
type Answer struct {
	counterexample *Object
}

// Confirm accepts the question's implication.
func Confirm() Answer { return Answer{} }

// Counterexample refutes the question with a new object. An empty name is
// auto-numbered. The premise attributes are added by Explore.
func Counterexample(name string, attributes []string) Answer {
	return Answer{counterexample: &Object{Name: name, Attributes: attributes}}
}

// Confirmed reports whether the answer accepts the implication.
func (a Answer) Confirmed() bool { return a.counterexample == nil }

// Object returns the counterexample; false for a confirmation.
func (a Answer) Object() (Object, bool) {
	if a.counterexample == nil {
		return Object{}, false
	}

	return *a.counterexample, true
}

// Oracle decides candidate implications. Ask may block (for example on user
// input) and should honour ctx.
type Oracle interface {
	Ask(ctx context.Context, q Question) (Answer, error)
}

// OracleFunc adapts a function to Oracle.
type OracleFunc func(ctx context.Context, q Question) (Answer, error)

// Ask calls f.
func (f OracleFunc) Ask(ctx context.Context, q Question) (Answer, error) { return f(ctx, q) }

// ConfirmAll accepts every question. Exploring with it yields the canonical
// basis of the input context and leaves the context unchanged.
var ConfirmAll Oracle = OracleFunc(func(context.Context, Question) (Answer, error) {
	return Confirm(), nil
})
