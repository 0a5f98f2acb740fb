// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: two-pass CSR construction and read-only accessors.

package graph

import "fmt"

// New validates edges over vertices 1..n and builds the adjacency structure.
//
// Contract:
//   - n ≥ 0, every endpoint in 1..n, no edge with U == V.
//   - The edges slice is copied; the caller may reuse it afterwards.
//   - Adjacency runs list incident edges in input order.
//
// Errors: ErrNegativeOrder, ErrVertexOutOfRange, ErrSelfLoop (wrapped with
// the offending edge index).
//
// Complexity: O(n+m) time, O(n+m) space.
func New(n int, edges []Edge) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("New: n=%d: %w", n, ErrNegativeOrder)
	}

	var (
		e    int
		edge Edge
	)
	for e, edge = range edges {
		if edge.U == edge.V {
			return nil, fmt.Errorf("New: edge %d (%d,%d): %w", e, edge.U, edge.V, ErrSelfLoop)
		}
		if edge.U < 1 || edge.U > n || edge.V < 1 || edge.V > n {
			return nil, fmt.Errorf("New: edge %d (%d,%d) with n=%d: %w", e, edge.U, edge.V, n, ErrVertexOutOfRange)
		}
	}

	g := &Graph{
		n:       n,
		edges:   make([]Edge, len(edges)),
		offsets: make([]int, n+2),
		adj:     make([]Adj, 2*len(edges)),
	}
	copy(g.edges, edges)

	// Pass 1: degrees, accumulated one slot to the right so the prefix sum
	// below turns offsets[v] into the start of v's run.
	for _, edge = range g.edges {
		g.offsets[edge.U+1]++
		g.offsets[edge.V+1]++
	}
	var v int
	for v = 1; v <= n+1; v++ {
		g.offsets[v] += g.offsets[v-1]
	}

	// Pass 2: fill runs in edge-input order.
	fill := make([]int, n+1)
	copy(fill, g.offsets[:n+1])
	for e, edge = range g.edges {
		g.adj[fill[edge.U]] = Adj{Edge: e, Vertex: edge.V}
		fill[edge.U]++
		g.adj[fill[edge.V]] = Adj{Edge: e, Vertex: edge.U}
		fill[edge.V]++
	}

	return g, nil
}

// NumVertices returns n. Valid vertex ids are 1..n.
func (g *Graph) NumVertices() int { return g.n }

// NumEdges returns m. Valid edge ids are 0..m-1.
func (g *Graph) NumEdges() int { return len(g.edges) }

// Edge returns the endpoints of edge e.
func (g *Graph) Edge(e int) Edge { return g.edges[e] }

// Edges returns a copy of the edge list in input order.
// Complexity: O(m).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Degree returns the number of edges incident to v.
func (g *Graph) Degree(v int) int { return g.offsets[v+1] - g.offsets[v] }

// Neighbors returns v's adjacency run. The slice aliases the graph's
// internal storage and must not be modified.
func (g *Graph) Neighbors(v int) []Adj { return g.adj[g.offsets[v]:g.offsets[v+1]] }

// MaxDegree returns the largest vertex degree, or 0 for an edgeless graph.
// Complexity: O(n).
func (g *Graph) MaxDegree() int {
	var (
		best int
		v    int
		d    int
	)
	for v = 1; v <= g.n; v++ {
		d = g.Degree(v)
		if d > best {
			best = d
		}
	}

	return best
}
