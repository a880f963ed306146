package exploration

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// InteractiveOracle asks a person on a line-based terminal. For each question
// it prints the implication and reads one answer line:
//
//	y | yes            confirm
//	name: a, b         counterexample "name" with attributes a, b
//	name               counterexample with the premise attributes only
//
// Blank lines repeat the prompt.
type InteractiveOracle struct {
	in  *bufio.Scanner
	out io.Writer

	// Decorate, if set, styles the implication text before it is printed.
	Decorate func(string) string
}

// Interactive returns an oracle reading answers from in and writing prompts
// to out.
func Interactive(in io.Reader, out io.Writer) *InteractiveOracle {
	return &InteractiveOracle{in: bufio.NewScanner(in), out: out}
}

// Ask implements Oracle. Reading cannot be interrupted; ctx is checked before
// every prompt.
func (o *InteractiveOracle) Ask(ctx context.Context, q Question) (Answer, error) {
	text := q.String()
	if o.Decorate != nil {
		text = o.Decorate(text)
	}
	for {
		if err := ctx.Err(); err != nil {
			return Answer{}, err
		}
		if _, err := fmt.Fprintf(o.out, "%s ? [y | name: attributes] ", text); err != nil {
			return Answer{}, errors.Wrap(err, "exploration: prompt")
		}
		if !o.in.Scan() {
			if err := o.in.Err(); err != nil {
				return Answer{}, errors.Wrap(err, "exploration: read answer")
			}
			return Answer{}, errors.Wrap(io.ErrUnexpectedEOF, "exploration: read answer")
		}

		line := strings.TrimSpace(o.in.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "y", "yes":
			return Confirm(), nil
		}

		return parseCounterexample(line), nil
	}
}

func parseCounterexample(line string) Answer {
	name, rest, _ := strings.Cut(line, ":")
	var attributes []string
	for _, a := range strings.Split(rest, ",") {
		if a = strings.TrimSpace(a); a != "" {
			attributes = append(attributes, a)
		}
	}

	return Counterexample(strings.TrimSpace(name), attributes)
}
