package main

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/galois/core"
	"github.com/katalvlaran/galois/exploration"
	"github.com/katalvlaran/galois/implication"
	"github.com/katalvlaran/galois/table"
)

// exploreResult is the yaml/json shape of an exploration run.
type exploreResult struct {
	Implications []implication.Implication `json:"implications" yaml:"implications"`
	Objects      []string                  `json:"objects" yaml:"objects"`
	Stats        exploration.Stats         `json:"stats" yaml:"stats"`
}

func newExploreCmd(a *app) *cobra.Command {
	var (
		reference string
		save      string
	)
	cmd := &cobra.Command{
		Use:   "explore FILE",
		Short: "Run attribute exploration against an expert",
		Long: `Asks, for every candidate implication, whether it holds in the domain.
Answers come from a script (--script answers.yaml|toml), from a reference
context that stands for the whole domain (--reference full.csv), or from
stdin: "y" confirms, "name: a, b" adds a counterexample object.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.readContext(cmd, args[0])
			if err != nil {
				return err
			}
			oracle, err := a.oracle(cmd, reference)
			if err != nil {
				return err
			}

			var stats exploration.Stats
			basis, grown, err := exploration.Explore(cmd.Context(), c, oracle,
				exploration.WithLogger(a.log),
				exploration.WithMaxCounterexamples(a.cfg.Explore.MaxCounterexamples),
				exploration.WithStats(&stats))
			if err != nil {
				return err
			}
			if s, ok := oracle.(*exploration.ScriptedOracle); ok {
				for _, unused := range s.Unused() {
					a.log.Warn("script answer never asked", zap.Strings("premise", unused.Premise))
				}
			}
			status(cmd, "%d questions, %d confirmed, %d counterexamples",
				stats.Questions, stats.Confirmations, stats.Counterexamples)

			if save != "" {
				if err := saveContext(save, grown); err != nil {
					return err
				}
				status(cmd, "context with %d objects saved to %s", grown.ObjectCount(), save)
			}

			imps := basis.Implications()
			res := exploreResult{Implications: imps, Objects: grown.Objects(), Stats: stats}
			return emit(cmd.OutOrStdout(), a.cfg.Format, res, func(w io.Writer) error {
				return writeImplications(w, imps)
			})
		},
	}
	cmd.Flags().String("script", "", "answer script (.yaml, .yml or .toml)")
	cmd.Flags().StringVar(&reference, "reference", "", "reference context CSV answering every question")
	cmd.Flags().StringVar(&save, "save", "", "write the enlarged context to this CSV file")
	cmd.Flags().Int("max", 0, "maximum counterexamples per premise (0 = unbounded)")
	cmd.MarkFlagsMutuallyExclusive("script", "reference")
	_ = a.v.BindPFlag("explore.script", cmd.Flags().Lookup("script"))
	_ = a.v.BindPFlag("explore.max-counterexamples", cmd.Flags().Lookup("max"))

	return cmd
}

// oracle picks the answer source: reference context, script, or stdin.
func (a *app) oracle(cmd *cobra.Command, reference string) (exploration.Oracle, error) {
	switch {
	case reference != "":
		ref, err := a.readContext(cmd, reference)
		if err != nil {
			return nil, errors.Wrap(err, "reference")
		}
		return exploration.ContextOracle(ref), nil
	case a.cfg.Explore.Script != "":
		s, err := exploration.LoadScriptFile(a.cfg.Explore.Script)
		if err != nil {
			return nil, err
		}
		a.log.Info("script loaded", zap.String("path", a.cfg.Explore.Script), zap.Int("answers", len(s.Answers)))
		return exploration.Scripted(s), nil
	}

	o := exploration.Interactive(cmd.InOrStdin(), cmd.ErrOrStderr())
	o.Decorate = func(s string) string { return pterm.LightCyan(s) }
	return o, nil
}

func saveContext(path string, c *core.Context) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "save context")
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = errors.Wrap(cerr, "save context")
		}
	}()

	return table.Write(f, c)
}
