package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/galois/concept"
	"github.com/katalvlaran/galois/core"
	"github.com/katalvlaran/galois/implication"
	"github.com/katalvlaran/galois/lattice"
	"github.com/katalvlaran/galois/table"
)

// contextView is the yaml/json shape of a context.
type contextView struct {
	Objects    []string `json:"objects" yaml:"objects"`
	Attributes []string `json:"attributes" yaml:"attributes"`
	Incidence  [][]bool `json:"incidence" yaml:"incidence,flow"`
}

func viewOf(c *core.Context) contextView {
	v := contextView{
		Objects:    c.Objects(),
		Attributes: c.Attributes(),
		Incidence:  make([][]bool, c.ObjectCount()),
	}
	for i := range v.Incidence {
		v.Incidence[i] = make([]bool, c.AttributeCount())
		for j := range v.Incidence[i] {
			v.Incidence[i][j] = c.IncidenceAt(i, j)
		}
	}

	return v
}

func newRenderCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "render FILE",
		Short: "Print the context as a grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.readContext(cmd, args[0])
			if err != nil {
				return err
			}

			return emit(cmd.OutOrStdout(), a.cfg.Format, viewOf(c), func(w io.Writer) error {
				if err := table.Render(w, c); err != nil {
					return err
				}
				_, err := fmt.Fprintln(w)
				return err
			})
		},
	}
}

func newConceptsCmd(a *app) *cobra.Command {
	var verify bool
	cmd := &cobra.Command{
		Use:   "concepts FILE",
		Short: "List every formal concept in lectic order of intents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.readContext(cmd, args[0])
			if err != nil {
				return err
			}
			concepts := concept.Enumerate(c)
			if verify {
				for _, x := range concepts {
					if err := concept.Validate(c, x); err != nil {
						return errors.WithAssertionFailure(err)
					}
				}
				status(cmd, "%d concepts verified closed", len(concepts))
			}

			return emit(cmd.OutOrStdout(), a.cfg.Format, concepts, func(w io.Writer) error {
				for _, x := range concepts {
					if _, err := fmt.Fprintln(w, x); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&verify, "verify", false, "check that every listed pair is Galois-closed")

	return cmd
}

func newBasisCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "basis FILE",
		Short: "Print the Duquenne–Guigues implication basis",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.readContext(cmd, args[0])
			if err != nil {
				return err
			}
			imps := implication.Canonical(c).Implications()
			a.log.Debug("basis computed")

			return emit(cmd.OutOrStdout(), a.cfg.Format, imps, func(w io.Writer) error {
				return writeImplications(w, imps)
			})
		},
	}
}

func writeImplications(w io.Writer, imps []implication.Implication) error {
	for _, imp := range imps {
		if _, err := fmt.Fprintln(w, imp); err != nil {
			return err
		}
	}

	return nil
}

func newLatticeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lattice FILE",
		Short: "Print the concept lattice as nodes with their lower covers",
		Long: `Nodes are numbered from the bottom (most specific) concept upwards.
Each text line is "<index> <concept> < <lower covers>".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.readContext(cmd, args[0])
			if err != nil {
				return err
			}
			l := lattice.Build(concept.Enumerate(c))
			status(cmd, "%d nodes, %d edges", l.Len(), len(l.Edges()))

			return emit(cmd.OutOrStdout(), a.cfg.Format, l, func(w io.Writer) error {
				for i, n := range l.Nodes {
					lower := make([]string, len(n.Lower))
					for k, j := range n.Lower {
						lower[k] = fmt.Sprint(j)
					}
					if _, err := fmt.Fprintf(w, "%d %s < [%s]\n", i, n.Concept, strings.Join(lower, " ")); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}

func newClosureCmd(a *app) *cobra.Command {
	var attributes, objects []string
	cmd := &cobra.Command{
		Use:   "closure FILE",
		Short: "Close a set of attributes or objects under double derivation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.readContext(cmd, args[0])
			if err != nil {
				return err
			}

			var closed []string
			if cmd.Flags().Changed("objects") {
				closed, err = c.ClosureIntents(objects)
			} else {
				closed, err = c.ClosureExtents(attributes)
			}
			if err != nil {
				return err
			}

			return emit(cmd.OutOrStdout(), a.cfg.Format, closed, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "{%s}\n", strings.Join(closed, ", "))
				return err
			})
		},
	}
	cmd.Flags().StringSliceVar(&attributes, "attributes", nil, "attribute names to close (comma separated)")
	cmd.Flags().StringSliceVar(&objects, "objects", nil, "object names to close (comma separated)")
	cmd.MarkFlagsMutuallyExclusive("attributes", "objects")
	cmd.MarkFlagsOneRequired("attributes", "objects")

	return cmd
}
