// SPDX-License-Identifier: MIT
//
// File: pool.go
// Role: candidate pool mirroring cover membership, O(1) sampling and removal.

package cover

// candidatePool holds exactly the vertices currently in the cover.
//
// Invariant: for every member v, verts[slot[v]] == v; for every non-member
// v, slot[v] == absent. The pool is updated in the same step as every
// membership change, so it never goes stale.
type candidatePool struct {
	verts []int // members in slots 0..len-1
	slot  []int // vertex id → slot in verts, or absent; index 0 unused
}

// newCandidatePool returns an empty pool over vertex ids 1..n.
// Complexity: O(n).
func newCandidatePool(n int) *candidatePool {
	p := &candidatePool{
		verts: make([]int, 0, n),
		slot:  make([]int, n+1),
	}
	var v int
	for v = range p.slot {
		p.slot[v] = absent
	}

	return p
}

// rebuild refills the pool from inCover in ascending vertex order.
// Only used during initialisation.
// Complexity: O(n).
func (p *candidatePool) rebuild(inCover []bool) {
	p.verts = p.verts[:0]
	var v int
	for v = 1; v < len(inCover); v++ {
		if inCover[v] {
			p.slot[v] = len(p.verts)
			p.verts = append(p.verts, v)
		} else {
			p.slot[v] = absent
		}
	}
}

// remove deletes member v by moving the last member into v's slot,
// shrinking the pool by one.
// Complexity: O(1).
func (p *candidatePool) remove(v int) {
	var (
		last = len(p.verts) - 1
		tail = p.verts[last]
		at   = p.slot[v]
	)
	p.verts[at] = tail
	p.slot[tail] = at
	p.verts = p.verts[:last]
	p.slot[v] = absent
}

// replace stores in into the slot held by out, which leaves the pool.
// The pool size is unchanged. in may equal out.
// Complexity: O(1).
func (p *candidatePool) replace(out, in int) {
	at := p.slot[out]
	p.slot[out] = absent
	p.verts[at] = in
	p.slot[in] = at
}

// len returns the pool size, which equals the cover size.
func (p *candidatePool) len() int { return len(p.verts) }

// at returns the member stored in slot i, 0 ≤ i < len().
func (p *candidatePool) at(i int) int { return p.verts[i] }

// contains reports membership of v.
func (p *candidatePool) contains(v int) bool { return p.slot[v] != absent }
