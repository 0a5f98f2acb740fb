// SPDX-License-Identifier: MIT

// Package graph provides the immutable, index-based undirected graph consumed
// by the vertex cover solvers in this module.
//
// A Graph G = (V,E) is built once from a validated edge list and is read-only
// thereafter:
//
//   - Vertices are numbered 1..n (index 0 is never a vertex).
//   - Edges are numbered 0..m-1 in input order.
//   - Each vertex owns a fixed-size adjacency run of (edge-id, neighbour) pairs
//     stored in one flattened slice with per-vertex offsets (CSR layout).
//   - Self-loops are rejected at construction time (ErrSelfLoop).
//   - Parallel edges are kept as given; each copy has its own edge id.
//
// Construction is O(n+m) time and memory in two passes: the first pass counts
// degrees, the second fills the adjacency runs in edge-input order, so the
// k-th slot of Neighbors(v) always refers to the k-th edge incident to v in
// the order the edges were supplied.
//
// Because nothing mutates a Graph after New returns, a single *Graph may be
// shared freely between goroutines and solver instances.
//
// Quick ASCII example:
//
//	1───2
//	 ╲  │
//	  ╲ │
//	    3
//
//	g, _ := graph.New(3, []graph.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 1, V: 3}})
//	g.Degree(2)    // 2
//	g.Neighbors(1) // [{Edge:0 Vertex:2} {Edge:2 Vertex:3}]
//
// Interop: FromGonum adapts any gonum graph.Undirected into a Graph, returning
// the mapping from dense ids back to gonum node ids.
package graph
