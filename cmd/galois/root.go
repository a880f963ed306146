package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/galois/core"
	"github.com/katalvlaran/galois/table"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        Config
	log        *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "galois",
		Short: "Formal concept analysis over CSV context tables",
		Long: `galois reads a formal context (objects × attributes, CSV with "X" marks)
and computes its concepts, concept lattice, Duquenne–Guigues implication basis
and closures, or explores it interactively against an expert.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(a.v, a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			logger, err := newLogger(cfg.LogLevel, cfg.LogJSON, cmd.ErrOrStderr())
			if err != nil {
				return errors.Wrap(err, "initialize logger")
			}
			a.log = logger.Named(cmd.Name())
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ./galois.toml if present)")
	flags.String("log-level", "warn", "log level: debug, info, warn, error")
	flags.Bool("log-json", false, "log JSON lines instead of console text")
	flags.StringP("format", "f", formatText, "output format: text, yaml, json")
	for _, name := range []string{"log-level", "log-json", "format"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}

	root.AddCommand(
		newRenderCmd(a),
		newConceptsCmd(a),
		newBasisCmd(a),
		newLatticeCmd(a),
		newClosureCmd(a),
		newExploreCmd(a),
		newGenerateCmd(a),
	)

	return root
}

// readContext parses the CSV table at path; "-" reads stdin.
func (a *app) readContext(cmd *cobra.Command, path string) (*core.Context, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "open context")
		}
		defer f.Close()
		r = f
	}

	c, err := table.Parse(r)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	a.log.Debug("context loaded",
		zap.String("path", path),
		zap.Int("objects", c.ObjectCount()),
		zap.Int("attributes", c.AttributeCount()))

	return c, nil
}

// status prints a styled one-line summary to stderr; data goes to stdout.
func status(cmd *cobra.Command, format string, args ...interface{}) {
	pterm.Fprintln(cmd.ErrOrStderr(), pterm.LightGreen("✓ ")+fmt.Sprintf(format, args...))
}
