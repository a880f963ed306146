package main

import (
	"encoding/json"
	"io"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// emit writes v as YAML or JSON, or calls text for the text format.
func emit(w io.Writer, format string, v interface{}, text func(io.Writer) error) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return errors.Wrap(enc.Close(), "encode yaml")
	case formatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encode json")
		}
		_, err = w.Write(append(data, '\n'))
		return errors.Wrap(err, "write json")
	default:
		return text(w)
	}
}
