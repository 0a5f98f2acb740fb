// SPDX-License-Identifier: MIT
//
// File: batch.go
// Role: solve several instances concurrently, one Solver each.

package main

import (
	"bytes"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fastvc/instance"
)

// newBatchCmd returns the batch subcommand. Reports are buffered per
// instance and written in argument order once every job has finished.
func newBatchCmd(stdout, stderr io.Writer, set *settings) *cobra.Command {
	var (
		dimacs bool
		jobs   int
		seed   int64
		cutoff time.Duration
	)

	cmd := &cobra.Command{
		Use:   "batch <instance-file>...",
		Short: "Solve several instances concurrently",
		Long: `batch runs an independent search per instance file, at most --jobs at a
time. With the default cpu clock the cutoff is measured against the CPU
time of the whole process; use --clock wall for per-instance budgets.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobs < 1 {
				return fmt.Errorf("batch: --jobs must be at least 1, got %d", jobs)
			}
			cfg, err := resolve(cmd, *set)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if cmd.Flags().Changed("cutoff") {
				cfg.Cutoff = cutoff
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			log, err := cfg.NewLogger(stderr)
			if err != nil {
				return err
			}

			format := instance.EdgeList
			if dimacs {
				format = instance.DIMACS
			}

			var (
				g       errgroup.Group
				reports = make([]bytes.Buffer, len(args))
			)
			g.SetLimit(jobs)
			for i, path := range args {
				i, path := i, path
				g.Go(func() error {
					err := solveOne(&reports[i], log, path, format, cfg, set.printCover)
					if err != nil {
						fmt.Fprintf(&reports[i], "c %v\n", err)
					}
					return err
				})
			}
			err = g.Wait()

			for i := range reports {
				if _, werr := reports[i].WriteTo(stdout); werr != nil {
					return werr
				}
			}
			if err != nil {
				return fmt.Errorf("batch: %w", err)
			}

			return nil
		},
	}

	f := cmd.Flags()
	f.BoolVar(&dimacs, "dimacs", false, "read every file in DIMACS format")
	f.IntVar(&jobs, "jobs", runtime.GOMAXPROCS(0), "maximum number of concurrent searches")
	f.Int64Var(&seed, "seed", 0, "random seed for every search")
	f.DurationVar(&cutoff, "cutoff", 0, "time budget per search, e.g. 2s")

	return cmd
}
