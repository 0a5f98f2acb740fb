// SPDX-License-Identifier: MIT
//
// File: root.go
// Role: root command, positional arguments and settings resolution.

package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fastvc/config"
	"github.com/katalvlaran/fastvc/cover"
	"github.com/katalvlaran/fastvc/instance"
)

// dimacsToken selects the header-tagged input form when it leads the
// positional arguments.
const dimacsToken = "DIMACS"

var (
	errMissingArgument = errors.New("missing argument")
	errTooManyArgs     = errors.New("too many arguments")
	errBadSeed         = errors.New("invalid seed")
	errBadCutoff       = errors.New("invalid cutoff")
)

// settings holds the persistent flags shared by every subcommand.
type settings struct {
	configPath string
	logLevel   string
	clock      string
	maxSteps   int64
	targetSize int
	printCover bool
}

// invocation is the parsed positional form of the root command.
type invocation struct {
	format    instance.Format
	path      string
	seed      int64
	seedSet   bool
	cutoff    time.Duration
	cutoffSet bool
}

// parseArgs decodes [DIMACS] <instance-file> [seed] [cutoff-seconds].
func parseArgs(args []string) (invocation, error) {
	inv := invocation{format: instance.EdgeList}
	if len(args) > 0 && args[0] == dimacsToken {
		inv.format = instance.DIMACS
		args = args[1:]
	}
	if len(args) == 0 {
		return inv, errMissingArgument
	}
	if len(args) > 3 {
		return inv, fmt.Errorf("%w: %q", errTooManyArgs, args[3:])
	}
	inv.path = args[0]

	if len(args) > 1 {
		seed, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return inv, fmt.Errorf("%w %q", errBadSeed, args[1])
		}
		inv.seed, inv.seedSet = seed, true
	}
	if len(args) > 2 {
		cutoff, err := parseSeconds(args[2])
		if err != nil {
			return inv, err
		}
		inv.cutoff, inv.cutoffSet = cutoff, true
	}

	return inv, nil
}

// parseSeconds reads a non-negative, possibly fractional, number of seconds.
func parseSeconds(s string) (time.Duration, error) {
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil || sec < 0 || math.IsInf(sec, 0) || math.IsNaN(sec) {
		return 0, fmt.Errorf("%w %q", errBadCutoff, s)
	}
	if sec > math.MaxInt64/float64(time.Second) {
		return 0, fmt.Errorf("%w %q", errBadCutoff, s)
	}

	return time.Duration(sec * float64(time.Second)), nil
}

// newRootCmd wires the command tree writing reports to stdout and logs to
// stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var set settings

	root := &cobra.Command{
		Use:   "fastvc [DIMACS] <instance-file> [seed] [cutoff-seconds]",
		Short: "Find a small vertex cover with FastVC local search",
		Long: `fastvc builds a greedy vertex cover and then repeatedly shrinks it by
one vertex and repairs it, reporting the smallest cover found within the
cutoff. The literal DIMACS selects the "p edge V E" / "e u v" format;
otherwise the file is a whitespace separated list of vertex pairs.
Files ending in .gz, .zst or .lz4 are decompressed on the fly.

A negative seed must follow "--" so it is not read as a flag:
  fastvc graph.txt -- -5 10
An instance file named like a subcommand (batch, gen) needs a path
prefix, e.g. fastvc ./gen.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := parseArgs(args)
			if err != nil {
				return err
			}
			cfg, err := resolve(cmd, set)
			if err != nil {
				return err
			}
			if inv.seedSet {
				cfg.Seed = inv.seed
			}
			if inv.cutoffSet {
				cfg.Cutoff = inv.cutoff
			}
			log, err := cfg.NewLogger(stderr)
			if err != nil {
				return err
			}

			return solveOne(stdout, log, inv.path, inv.format, cfg, set.printCover)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&set.configPath, "config", "", "YAML settings file")
	pf.StringVar(&set.logLevel, "log-level", "", "zerolog level (trace, debug, info, warn, error)")
	pf.StringVar(&set.clock, "clock", "", "time source for the cutoff: cpu or wall")
	pf.Int64Var(&set.maxSteps, "max-steps", 0, "stop after this many search steps (0: unlimited)")
	pf.IntVar(&set.targetSize, "target-size", 0, "stop once a cover of at most this size is found (0: off)")
	pf.BoolVar(&set.printCover, "print-cover", false, "print the member vertices of the best cover")

	root.AddCommand(newBatchCmd(stdout, stderr, &set), newGenCmd(stdout, stderr))

	return root
}

// resolve layers the config file and changed flags over config.Default().
func resolve(cmd *cobra.Command, set settings) (config.Config, error) {
	cfg := config.Default()
	if set.configPath != "" {
		var err error
		if cfg, err = config.Load(set.configPath); err != nil {
			return config.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = set.logLevel
	}
	if flags.Changed("clock") {
		cfg.Clock = set.clock
	}
	if flags.Changed("max-steps") {
		cfg.MaxSteps = set.maxSteps
	}
	if flags.Changed("target-size") {
		cfg.TargetSize = set.targetSize
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// solveOne prints the header, loads and solves one instance and prints
// the report. Load and option errors are returned; a failed verification
// is only reported.
func solveOne(w io.Writer, log zerolog.Logger, path string, f instance.Format, cfg config.Config, printCover bool) error {
	fmt.Fprintf(w, "c This is FastVC, solving instance %s\n", path)
	g, err := instance.Load(path, f)
	if err != nil {
		if errors.Is(err, instance.ErrOpen) {
			return err
		}
		return fmt.Errorf("invalid instance %w", err)
	}
	writeHeader(w, g, cfg)

	log = log.With().Str("instance", path).Logger()
	res, err := cover.Solve(g, cfg.Options(log))
	if err != nil {
		return err
	}
	log.Info().
		Stringer("reason", res.Reason).
		Int("best_size", res.Best.Size).
		Int64("steps", res.Steps).
		Dur("elapsed", res.Elapsed).
		Msg("search finished")

	writeResult(w, g, res, printCover)

	return nil
}
