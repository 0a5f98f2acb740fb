// SPDX-License-Identifier: MIT
//
// File: gonum.go
// Role: adapter from gonum undirected graphs into the dense Graph.

package graph

import (
	"fmt"
	"slices"

	gonum "gonum.org/v1/gonum/graph"
)

// FromGonum converts a gonum undirected graph into a Graph.
//
// Nodes are renumbered 1..n in ascending gonum id order; ids[v] holds the
// gonum id of dense vertex v (ids[0] is unused). Every unordered neighbour
// pair is emitted once, ordered by (u,v) ascending, so the result does not
// depend on gonum's map iteration order.
//
// Errors: ErrGraphNil for a nil source; ErrSelfLoop when the source
// reports a node adjacent to itself.
//
// Complexity: O(n log n + m log Δ) for the sorting, O(n+m) space.
func FromGonum(src gonum.Undirected) (*Graph, []int64, error) {
	if src == nil {
		return nil, nil, ErrGraphNil
	}

	nodes := gonum.NodesOf(src.Nodes())
	ids := make([]int64, len(nodes)+1)
	var i int
	for i = range nodes {
		ids[i+1] = nodes[i].ID()
	}
	slices.Sort(ids[1:])

	dense := make(map[int64]int, len(nodes))
	for i = 1; i < len(ids); i++ {
		dense[ids[i]] = i
	}

	var (
		edges []Edge
		u     int
		w     int
		nbrs  []int
		nb    gonum.Node
	)
	for u = 1; u < len(ids); u++ {
		nbrs = nbrs[:0]
		for _, nb = range gonum.NodesOf(src.From(ids[u])) {
			w = dense[nb.ID()]
			if w == u {
				return nil, nil, fmt.Errorf("FromGonum: node %d: %w", ids[u], ErrSelfLoop)
			}
			if w > u {
				nbrs = append(nbrs, w)
			}
		}
		slices.Sort(nbrs)
		for _, w = range nbrs {
			edges = append(edges, Edge{U: u, V: w})
		}
	}

	g, err := New(len(nodes), edges)
	if err != nil {
		return nil, nil, fmt.Errorf("FromGonum: %w", err)
	}

	return g, ids, nil
}
