// Package table reads and writes a core.Context in its tabular forms: the
// CSV layout used for input files and the fixed-width grid used for display.
//
// CSV layout:
//
//	,running,artificial     header: ignored first cell, then attribute names
//	pond,,X                 object name, then one cell per attribute
//	river, x ,              "X" (trimmed, any case) marks incidence
//
// A blank object name is replaced by the 1-based row number. Every row must
// have exactly as many cells as the header.
package table

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/galois/core"
)

// Mark is the incidence marker written by Write and Render.
const Mark = "X"

// Parse reads a CSV context from r.
//
// Errors: core.ErrMalformedInput for unreadable CSV, a missing header or a
// row whose width differs from the header; core.ErrDuplicateName from
// core.New. No Context is returned on error.
func Parse(r io.Reader) (*core.Context, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 0 // every record must match the header width

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.Wrap(core.ErrMalformedInput, "table: missing header row")
	}
	if err != nil {
		return nil, malformed(err)
	}
	attributes := make([]string, 0, len(header)-1)
	for _, h := range header[1:] {
		attributes = append(attributes, strings.TrimSpace(h))
	}

	var (
		objects   []string
		incidence [][]bool
	)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, malformed(err)
		}

		name := strings.TrimSpace(record[0])
		if name == "" {
			name = strconv.Itoa(len(objects) + 1)
		}
		row := make([]bool, len(attributes))
		for j, v := range record[1:] {
			row[j] = strings.EqualFold(strings.TrimSpace(v), Mark)
		}
		objects = append(objects, name)
		incidence = append(incidence, row)
	}

	return core.New(objects, attributes, incidence)
}

// ParseString is Parse over a string.
func ParseString(s string) (*core.Context, error) {
	return Parse(strings.NewReader(s))
}

// Write emits c as CSV in the layout Parse accepts.
func Write(w io.Writer, c *core.Context) error {
	cw := csv.NewWriter(w)
	header := append([]string{""}, c.Attributes()...)
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "table: write header")
	}

	objects := c.Objects()
	for i, name := range objects {
		record := make([]string, 1+c.AttributeCount())
		record[0] = name
		for j := 0; j < c.AttributeCount(); j++ {
			if c.IncidenceAt(i, j) {
				record[1+j] = Mark
			}
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrapf(err, "table: write row %q", name)
		}
	}
	cw.Flush()

	return errors.Wrap(cw.Error(), "table: flush")
}

// Render writes the display grid of c to w. The header is two spaces and
// then "| <attribute> " per column; each object line is "<object> " and then
// "| X " or "|   " per column. Lines are joined by a single newline with none
// after the last line, and columns are not padded.
func Render(w io.Writer, c *core.Context) error {
	_, err := io.WriteString(w, String(c))
	return errors.Wrap(err, "table: render")
}

// String returns the Render output as a string.
func String(c *core.Context) string {
	var sb strings.Builder
	sb.WriteString("  ")
	for _, a := range c.Attributes() {
		sb.WriteString("| ")
		sb.WriteString(a)
		sb.WriteString(" ")
	}
	for i, g := range c.Objects() {
		sb.WriteString("\n")
		sb.WriteString(g)
		sb.WriteString(" ")
		for j := 0; j < c.AttributeCount(); j++ {
			if c.IncidenceAt(i, j) {
				sb.WriteString("| " + Mark + " ")
			} else {
				sb.WriteString("|   ")
			}
		}
	}

	return sb.String()
}

func malformed(err error) error {
	return errors.WithSecondaryError(errors.Wrapf(core.ErrMalformedInput, "table: %v", err), err)
}
