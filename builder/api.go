// SPDX-License-Identifier: MIT
// Package: fastvc/builder
//
// api.go - Build orchestrator and the draft every constructor writes into.

package builder

import (
	"fmt"

	"github.com/katalvlaran/fastvc/graph"
)

// Constructor appends one component to the draft using the resolved
// builderConfig. Constructors validate parameters before touching the
// draft and return sentinel errors; they never panic.
type Constructor func(d *draft, cfg builderConfig) error

// draft accumulates vertices and edges before the CSR graph is built.
type draft struct {
	n     int
	edges []graph.Edge
}

// grow reserves k fresh vertices and returns the id of the first one.
func (d *draft) grow(k int) int {
	first := d.n + 1
	d.n += k

	return first
}

// link appends the undirected edge {u,v}.
func (d *draft) link(u, v int) {
	d.edges = append(d.edges, graph.Edge{U: u, V: v})
}

// Build resolves opts and applies cons in order, each on a fresh block of
// vertex ids, then builds the graph. A constructor error is wrapped as
// "Build: %w" and returned at once.
//
// Complexity: Σ cost of constructors + O(n+m) for graph.New.
func Build(opts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	var (
		cfg = newBuilderConfig(opts...)
		d   draft
	)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&d, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	g, err := graph.New(d.n, d.edges)
	if err != nil {
		return nil, fmt.Errorf("Build: %v: %w", err, ErrConstructFailed)
	}

	return g, nil
}
