// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge and Adj declarations plus sentinel errors.

package graph

import "errors"

// Sentinel errors for graph construction.
var (
	// ErrSelfLoop indicates an edge whose two endpoints are the same vertex.
	ErrSelfLoop = errors.New("graph: self-loops are not allowed")

	// ErrVertexOutOfRange indicates an endpoint outside 1..n.
	ErrVertexOutOfRange = errors.New("graph: vertex id out of range")

	// ErrNegativeOrder indicates a negative vertex count.
	ErrNegativeOrder = errors.New("graph: negative vertex count")

	// ErrGraphNil indicates a nil source graph passed to an adapter.
	ErrGraphNil = errors.New("graph: source graph is nil")
)

// Edge is an undirected edge between two 1-based vertex ids.
type Edge struct {
	U int
	V int
}

// Other returns the endpoint of e opposite to v. The result is undefined
// when v is not an endpoint of e.
func (e Edge) Other(v int) int {
	if e.U == v {
		return e.V
	}

	return e.U
}

// Adj is one adjacency slot of a vertex: the incident edge id and the
// neighbour reached through it.
type Adj struct {
	Edge   int
	Vertex int
}

// Graph is an immutable undirected graph in CSR form.
//
// offsets[v]..offsets[v+1] delimits the adjacency run of vertex v inside adj;
// offsets has length n+2 so that offsets[n+1] == len(adj) == 2m.
type Graph struct {
	n       int
	edges   []Edge
	offsets []int
	adj     []Adj
}
