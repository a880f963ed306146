package main

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/galois/builder"
	"github.com/katalvlaran/galois/table"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		size, objects, attributes int
		p                         float64
		seed                      int64
	)
	cmd := &cobra.Command{
		Use:   "generate nominal|ordinal|contranominal|random",
		Short: "Write a generated context as CSV",
		Long: `Scales are square: nominal (g has m iff i = j), ordinal (i ≤ j) and
contranominal (i ≠ j) of --size n. random samples --objects × --attributes
cells with probability -p from --seed.`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"nominal", "ordinal", "contranominal", "random"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var con builder.Constructor
			switch args[0] {
			case "nominal":
				con = builder.Nominal(size)
			case "ordinal":
				con = builder.Ordinal(size)
			case "contranominal":
				con = builder.Contranominal(size)
			case "random":
				con = builder.Random(objects, attributes, p)
			}

			c, err := builder.BuildContext([]builder.BuilderOption{builder.WithSeed(seed)}, con)
			if err != nil {
				return errors.Wrapf(err, "generate %s", args[0])
			}
			status(cmd, "%s: %d objects, %d attributes", args[0], c.ObjectCount(), c.AttributeCount())

			return emit(cmd.OutOrStdout(), a.cfg.Format, viewOf(c), func(w io.Writer) error {
				return table.Write(w, c)
			})
		},
	}
	flags := cmd.Flags()
	flags.IntVarP(&size, "size", "n", 3, "scale size")
	flags.IntVar(&objects, "objects", 5, "random: number of objects")
	flags.IntVar(&attributes, "attributes", 4, "random: number of attributes")
	flags.Float64VarP(&p, "probability", "p", 0.5, "random: probability of each cell")
	flags.Int64Var(&seed, "seed", 1, "random: seed")

	return cmd
}
