// SPDX-License-Identifier: MIT
//
// File: uncovered.go
// Role: exact set of uncovered edges with O(1) insert/remove-by-value.

package cover

// absent marks a slot index of an element that is not a member.
const absent = -1

// uncoveredSet holds exactly the edges with no endpoint in the cover.
//
// Invariant: for every member e, edges[slot[e]] == e; for every non-member
// e, slot[e] == absent. Order of edges is irrelevant.
type uncoveredSet struct {
	edges []int // members in slots 0..len-1
	slot  []int // edge id → slot in edges, or absent
}

// newUncoveredSet returns an empty set over edge ids 0..m-1.
// Complexity: O(m).
func newUncoveredSet(m int) *uncoveredSet {
	s := &uncoveredSet{
		edges: make([]int, 0, m),
		slot:  make([]int, m),
	}
	var e int
	for e = range s.slot {
		s.slot[e] = absent
	}

	return s
}

// insert appends e and records its slot. e must not be a member.
// Complexity: O(1) amortised; capacity is preallocated to m.
func (s *uncoveredSet) insert(e int) {
	s.slot[e] = len(s.edges)
	s.edges = append(s.edges, e)
}

// remove deletes member e by moving the last member into e's slot.
// Complexity: O(1).
func (s *uncoveredSet) remove(e int) {
	var (
		last = len(s.edges) - 1
		tail = s.edges[last]
		at   = s.slot[e]
	)
	s.edges[at] = tail
	s.slot[tail] = at
	s.edges = s.edges[:last]
	s.slot[e] = absent
}

// len returns the number of uncovered edges.
func (s *uncoveredSet) len() int { return len(s.edges) }

// at returns the member stored in slot i, 0 ≤ i < len().
func (s *uncoveredSet) at(i int) int { return s.edges[i] }

// contains reports membership of e.
func (s *uncoveredSet) contains(e int) bool { return s.slot[e] != absent }
