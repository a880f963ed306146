// Command galois runs formal concept analysis over CSV context tables.
//
//	galois render   waters.csv
//	galois concepts waters.csv --verify
//	galois basis    waters.csv --format yaml
//	galois lattice  waters.csv
//	galois closure  waters.csv --attributes small
//	galois explore  waters.csv --script answers.yaml --save grown.csv
//	galois generate nominal --size 4
//
// Configuration is read from flags, GALOIS_* environment variables and an
// optional galois.toml, in that order of precedence.
package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		pterm.Fprintln(os.Stderr, pterm.LightRed("error: ")+err.Error())
		if hint := errors.FlattenHints(err); hint != "" {
			pterm.Fprintln(os.Stderr, pterm.LightCyan("hint: ")+hint)
		}
		os.Exit(1)
	}
}
