// SPDX-License-Identifier: MIT
//
// File: state.go
// Role: cover membership, incrementally maintained scores, add/remove.
//
// Score invariant, re-established by every add/remove for the mutated vertex
// and its direct neighbours only:
//
//	v ∉ C: score[v] =  |{uncovered edges incident to v}|       (≥ 0, gain of adding v)
//	v ∈ C: score[v] = −|{neighbours of v outside C}|            (≤ 0, loss of removing v)

package cover

import "github.com/katalvlaran/fastvc/graph"

// state is the mutable cover configuration of one solver.
type state struct {
	g           *graph.Graph
	inCover     []bool  // vertex → membership; index 0 unused
	score       []int   // vertex → gain (outside C) or −loss (inside C)
	lastTouched []int64 // vertex → step of last add/remove by the search loop
	size        int     // |C|
	uncovered   *uncoveredSet
}

// newState returns an empty configuration over g. The uncovered set stays
// empty, and thus inconsistent with C, until initGreedy runs.
// Complexity: O(n+m).
func newState(g *graph.Graph) *state {
	n := g.NumVertices()

	return &state{
		g:           g,
		inCover:     make([]bool, n+1),
		score:       make([]int, n+1),
		lastTouched: make([]int64, n+1),
		uncovered:   newUncoveredSet(g.NumEdges()),
	}
}

// initGreedy builds the initial cover.
//
// Stages:
//  1. For each edge in input order with neither endpoint in C, insert the
//     endpoint of higher degree (tie → second endpoint).
//  2. Compute every score from scratch in one edge scan. This is the only
//     bulk score computation; everything afterwards is incremental.
//  3. Redundancy pass in ascending vertex order: remove every member whose
//     score is 0 at the moment it is visited.
//
// On return every edge is covered and the uncovered set is empty.
// Complexity: O(n+m).
func (s *state) initGreedy() {
	var (
		e    int
		edge graph.Edge
		m    = s.g.NumEdges()
	)

	// Stage 1: greedy edge pass.
	for e = 0; e < m; e++ {
		edge = s.g.Edge(e)
		if s.inCover[edge.U] || s.inCover[edge.V] {
			continue
		}
		if s.g.Degree(edge.U) > s.g.Degree(edge.V) {
			s.inCover[edge.U] = true
		} else {
			s.inCover[edge.V] = true
		}
		s.size++
	}

	// Stage 2: bulk scores. Every edge is covered, so only members with
	// neighbours outside C carry a non-zero (negative) score.
	for e = 0; e < m; e++ {
		edge = s.g.Edge(e)
		switch {
		case s.inCover[edge.U] && !s.inCover[edge.V]:
			s.score[edge.U]--
		case s.inCover[edge.V] && !s.inCover[edge.U]:
			s.score[edge.V]--
		}
	}

	// Stage 3: drop members that cover nothing on their own.
	var v int
	for v = 1; v <= s.g.NumVertices(); v++ {
		if s.inCover[v] && s.score[v] == 0 {
			s.remove(v)
		}
	}
}

// add inserts v into C. Precondition: v ∉ C.
//
// Negating score[v] turns "edges gained by adding v" into "edges lost by
// removing v": both count the same boundary edges. Each neighbour n is then
// adjusted: n ∈ C loses one exclusively-covered edge (score+1); n ∉ C loses
// one uncovered incident edge (score−1) and that edge leaves the uncovered set.
//
// Complexity: O(deg(v)).
func (s *state) add(v int) {
	s.inCover[v] = true
	s.score[v] = -s.score[v]
	s.size++

	var a graph.Adj
	for _, a = range s.g.Neighbors(v) {
		if s.inCover[a.Vertex] {
			s.score[a.Vertex]++
		} else {
			s.score[a.Vertex]--
			s.uncovered.remove(a.Edge)
		}
	}
}

// remove deletes v from C. Precondition: v ∈ C.
// Mirror image of add: every edge to a neighbour outside C becomes uncovered.
//
// Complexity: O(deg(v)).
func (s *state) remove(v int) {
	s.inCover[v] = false
	s.score[v] = -s.score[v]
	s.size--

	var a graph.Adj
	for _, a = range s.g.Neighbors(v) {
		if s.inCover[a.Vertex] {
			s.score[a.Vertex]--
		} else {
			s.score[a.Vertex]++
			s.uncovered.insert(a.Edge)
		}
	}
}
