// SPDX-License-Identifier: MIT
//
// File: gen.go
// Role: write generated benchmark instances.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fastvc/builder"
	"github.com/katalvlaran/fastvc/graph"
	"github.com/katalvlaran/fastvc/instance"
)

// newGenCmd returns the gen subcommand. The instance goes to --output (a
// .gz/.zst/.lz4 suffix compresses it) or to stdout; a "c optimum" line is
// printed to stderr when the family has a closed-form minimum.
func newGenCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		spec   builder.Spec
		seed   int64
		dimacs bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "gen <family>",
		Short: "Generate a test instance",
		Long: `gen writes an instance of one family: path, cycle, star, wheel, complete,
bipartite (--n left, --m right), grid (--n rows, --m cols), random (--n, --p)
or planted (--n, --k, --p; the first k vertices cover every edge).`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			spec.Family = builder.Family(args[0])
			ctor, err := spec.Constructor()
			if err != nil {
				return err
			}
			g, err := builder.Build([]builder.BuilderOption{builder.WithSeed(seed)}, ctor)
			if err != nil {
				return err
			}

			format := instance.EdgeList
			if dimacs {
				format = instance.DIMACS
			}
			if output == "" {
				err = instance.Write(stdout, g, format)
			} else {
				err = writeInstance(output, g, format)
			}
			if err != nil {
				return err
			}
			if opt, ok := spec.Optimum(); ok {
				fmt.Fprintf(stderr, "c optimum %d\n", opt)
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&spec.N, "n", 10, "vertex count (rows for grid, left part for bipartite)")
	f.IntVar(&spec.M, "m", 0, "columns for grid, right part for bipartite")
	f.IntVar(&spec.K, "k", 1, "planted cover size")
	f.Float64Var(&spec.P, "p", 0.1, "edge probability for random and planted")
	f.Int64Var(&seed, "seed", 0, "generator seed")
	f.BoolVar(&dimacs, "dimacs", false, "write DIMACS instead of an edge list")
	f.StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// writeInstance creates path and writes g to it.
func writeInstance(path string, g *graph.Graph, f instance.Format) (err error) {
	wc, err := instance.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := wc.Close(); err == nil {
			err = cerr
		}
	}()

	return instance.Write(wc, g, f)
}
