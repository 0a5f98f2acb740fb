// SPDX-License-Identifier: MIT
//
// File: best.go
// Role: best-solution snapshot (membership bitmap, size, step, time).

package cover

import (
	"time"

	"github.com/RoaringBitmap/roaring/v2"
)

// Best is a snapshot of a fully covering configuration.
//
// Captures happen whenever the uncovered set becomes empty. The cover size
// only shrinks between captures, so each capture overwrites the previous one
// unconditionally.
type Best struct {
	// Size is the number of vertices in the cover.
	Size int

	// Step is the value of the step counter at capture time.
	Step int64

	// Elapsed is the clock reading at capture time, rounded to 10ms.
	Elapsed time.Duration

	members *roaring.Bitmap
}

// Contains reports whether vertex v belongs to the cover.
func (b Best) Contains(v int) bool {
	if b.members == nil || v < 0 {
		return false
	}

	return b.members.Contains(uint32(v))
}

// Vertices returns the cover members in ascending order.
// Complexity: O(Size).
func (b Best) Vertices() []int {
	if b.members == nil {
		return nil
	}
	out := make([]int, 0, b.members.GetCardinality())
	it := b.members.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out
}

// Clone returns a Best that shares no storage with b.
func (b Best) Clone() Best {
	c := b
	if b.members != nil {
		c.members = b.members.Clone()
	}

	return c
}

// NewBest builds a snapshot from an explicit vertex list; mostly useful to
// verify covers produced elsewhere. Size is len(vertices) as given, so
// duplicates surface as a size mismatch in Verify.
func NewBest(vertices []int, step int64, elapsed time.Duration) Best {
	bm := roaring.New()
	var v int
	for _, v = range vertices {
		bm.Add(uint32(v))
	}

	return Best{Size: len(vertices), Step: step, Elapsed: elapsed, members: bm}
}

// tracker owns the current best snapshot and refreshes it in place.
type tracker struct {
	best    Best
	scratch []uint32
}

// newTracker returns a tracker with an empty bitmap.
func newTracker() *tracker {
	return &tracker{best: Best{members: roaring.New()}}
}

// capture overwrites the snapshot with the members of pool, which mirrors
// the cover exactly.
// Complexity: O(|C|) plus bitmap construction.
func (t *tracker) capture(pool *candidatePool, step int64, elapsed time.Duration) {
	t.scratch = t.scratch[:0]
	var i int
	for i = 0; i < pool.len(); i++ {
		t.scratch = append(t.scratch, uint32(pool.at(i)))
	}
	t.best.members.Clear()
	t.best.members.AddMany(t.scratch)
	t.best.Size = pool.len()
	t.best.Step = step
	t.best.Elapsed = roundElapsed(elapsed)
}
