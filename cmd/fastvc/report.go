// SPDX-License-Identifier: MIT
//
// File: report.go
// Role: "c ..." report lines.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/fastvc/config"
	"github.com/katalvlaran/fastvc/cover"
	"github.com/katalvlaran/fastvc/graph"
)

// writeHeader prints instance size, seed and cutoff.
func writeHeader(w io.Writer, g *graph.Graph, cfg config.Config) {
	fmt.Fprintf(w, "c Number of nodes: %d\n", g.NumVertices())
	fmt.Fprintf(w, "c Number of edges: %d\n", g.NumEdges())
	fmt.Fprintf(w, "c seed %d\n", cfg.Seed)
	fmt.Fprintf(w, "c cutoff_time %s\n", strconv.FormatFloat(cfg.Cutoff.Seconds(), 'f', -1, 64))
}

// writeResult verifies the best cover from scratch. On success it prints
// size, discovery step and discovery time; a discrepancy is printed as a
// diagnostic instead.
func writeResult(w io.Writer, g *graph.Graph, res cover.Result, printCover bool) {
	if err := cover.Verify(g, res.Best); err != nil {
		fmt.Fprintf(w, "c error: %v\n", err)
		return
	}
	fmt.Fprintf(w, "c Best found vertex cover size = %d\n", res.Best.Size)
	fmt.Fprintf(w, "c SearchSteps for best found vertex cover = %d\n", res.Best.Step)
	fmt.Fprintf(w, "c SearchTime for best found vertex cover = %.2f\n", res.Best.Elapsed.Seconds())
	if !printCover {
		return
	}

	verts := res.Best.Vertices()
	parts := make([]string, len(verts))
	for i, v := range verts {
		parts[i] = strconv.Itoa(v)
	}
	fmt.Fprintf(w, "v %s\n", strings.Join(parts, " "))
}
