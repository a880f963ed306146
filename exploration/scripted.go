package exploration

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Script is a prepared set of answers, typically loaded from a YAML or TOML
// file:
//
//	default: confirm
//	answers:
//	  - premise: [small]
//	    counterexample:
//	      name: puddle
//	      attributes: [small]
//
// An answer without a counterexample confirms. Questions no answer matches
// get the Default: "confirm" (or empty) confirms, "fail" is an error.
type Script struct {
	Default string         `json:"default" yaml:"default" toml:"default"`
	Answers []ScriptAnswer `json:"answers" yaml:"answers" toml:"answers"`
}

// ScriptAnswer answers the question whose premise equals Premise as a set.
type ScriptAnswer struct {
	Premise        []string `json:"premise" yaml:"premise" toml:"premise"`
	Counterexample *Object  `json:"counterexample,omitempty" yaml:"counterexample,omitempty" toml:"counterexample,omitempty"`
}

// Script defaults.
const (
	DefaultConfirm = "confirm"
	DefaultFail    = "fail"
)

// LoadScript decodes a script in the given format ("yaml", "yml" or "toml").
func LoadScript(r io.Reader, format string) (*Script, error) {
	var s Script
	switch strings.ToLower(format) {
	case "yaml", "yml":
		if err := yaml.NewDecoder(r).Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, "exploration: decode yaml script")
		}
	case "toml":
		if _, err := toml.NewDecoder(r).Decode(&s); err != nil {
			return nil, errors.Wrap(err, "exploration: decode toml script")
		}
	default:
		return nil, errors.Newf("exploration: unknown script format %q", format)
	}
	switch s.Default {
	case "", DefaultConfirm, DefaultFail:
	default:
		return nil, errors.Newf("exploration: unknown script default %q", s.Default)
	}

	return &s, nil
}

// LoadScriptFile reads a script, choosing the format from the extension.
func LoadScriptFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "exploration: open script")
	}
	defer f.Close()

	return LoadScript(f, strings.TrimPrefix(filepath.Ext(path), "."))
}

// ScriptedOracle replays a Script. Each answer is used at most once, so a
// premise asked again after a counterexample moves on to the next matching
// answer.
type ScriptedOracle struct {
	script *Script
	used   []bool
}

// Scripted returns an oracle replaying s.
func Scripted(s *Script) *ScriptedOracle {
	return &ScriptedOracle{script: s, used: make([]bool, len(s.Answers))}
}

// Ask implements Oracle.
func (o *ScriptedOracle) Ask(_ context.Context, q Question) (Answer, error) {
	for i, a := range o.script.Answers {
		if o.used[i] || !sameNames(a.Premise, q.Premise) {
			continue
		}
		o.used[i] = true
		if a.Counterexample == nil {
			return Confirm(), nil
		}

		return Counterexample(a.Counterexample.Name, a.Counterexample.Attributes), nil
	}

	if o.script.Default == DefaultFail {
		return Answer{}, errors.Wrapf(ErrScriptExhausted, "%s", q)
	}

	return Confirm(), nil
}

// Unused returns the answers that were never asked for.
func (o *ScriptedOracle) Unused() []ScriptAnswer {
	var out []ScriptAnswer
	for i, a := range o.script.Answers {
		if !o.used[i] {
			out = append(out, a)
		}
	}

	return out
}

func sameNames(a, b []string) bool {
	set := make(map[string]struct{}, len(a))
	for _, s := range a {
		set[s] = struct{}{}
	}
	other := make(map[string]struct{}, len(b))
	for _, s := range b {
		if _, ok := set[s]; !ok {
			return false
		}
		other[s] = struct{}{}
	}

	return len(set) == len(other)
}
