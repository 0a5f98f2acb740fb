// SPDX-License-Identifier: MIT

// Command fastvc finds small vertex covers with the FastVC local search.
//
// Usage:
//
//	fastvc [DIMACS] <instance-file> [seed] [cutoff-seconds]
//	fastvc batch [--dimacs] [--jobs N] <instance-file>...
//
// Without the literal DIMACS token the instance is read as a headerless
// list of vertex pairs. Report lines go to stdout, logs to stderr.
package main

import (
	"fmt"
	"io"
	"os"
)

// exitFailure is returned for usage errors and unreadable instances.
const exitFailure = -1

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and maps the outcome to an exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "c %v\n", err)
		return exitFailure
	}

	return 0
}
