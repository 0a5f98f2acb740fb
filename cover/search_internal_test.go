package cover

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSearch_ExactMirrorEveryStep drives the loop by hand and checks that
// scores, the uncovered set and the pool match a recomputation after every
// transition, and that the cover is complete whenever nothing is uncovered.
func TestSearch_ExactMirrorEveryStep(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for round := 0; round < 3; round++ {
		g := randomGraph(t, rng, 40, 0.12)
		s, err := NewSolver(g, testOptions(int64(round), 0))
		require.NoError(t, err)

		s.clock.Start()
		s.initialise()
		requireConsistent(t, s.st, s.pool)

		s.step = 1
		for i := 0; i < 1500; i++ {
			if s.st.uncovered.len() == 0 {
				for e := 0; e < g.NumEdges(); e++ {
					edge := g.Edge(e)
					require.True(t, s.st.inCover[edge.U] || s.st.inCover[edge.V], "edge %d uncovered", e)
				}
				if _, stop := s.improve(); stop {
					break
				}
				requireConsistent(t, s.st, s.pool)
				continue
			}
			s.repair()
			s.step++
			requireConsistent(t, s.st, s.pool)
		}
	}
}

// TestChooseEviction_PrefixScan pins the bounded scan semantics.
func TestChooseEviction_PrefixScan(t *testing.T) {
	g := mustGraph(t, 5)
	s, err := NewSolver(g, testOptions(0, 0))
	require.NoError(t, err)

	s.pool.rebuild([]bool{false, true, true, true, true, true})

	// Slot 0 with score 0 is taken at once.
	s.st.score = []int{0, 0, -1, -1, 0, -3}
	assert.Equal(t, 1, s.chooseEviction())

	// The scan stops at the first score-0 vertex, so the better vertex 5
	// behind it is never considered.
	s.st.score = []int{0, -4, -2, -3, 0, -1}
	assert.Equal(t, 2, s.chooseEviction(), "vertex 5 lies behind the score-0 vertex 4")

	// No score-0 vertex: full scan, first maximum wins.
	s.st.score = []int{0, -4, -2, -2, -3, -5}
	assert.Equal(t, 2, s.chooseEviction())
}

// TestChooseEndpoint_TieBreaks pins score, timestamp and position tie rules.
func TestChooseEndpoint_TieBreaks(t *testing.T) {
	g := mustGraph(t, 2, [2]int{1, 2})
	s, err := NewSolver(g, testOptions(0, 0))
	require.NoError(t, err)
	e := g.Edge(0)

	s.st.score[1], s.st.score[2] = 2, 1
	assert.Equal(t, 1, s.chooseEndpoint(e))

	s.st.score[1], s.st.score[2] = 1, 1
	s.st.lastTouched[1], s.st.lastTouched[2] = 5, 3
	assert.Equal(t, 2, s.chooseEndpoint(e), "older timestamp wins")

	s.st.lastTouched[1], s.st.lastTouched[2] = 3, 5
	assert.Equal(t, 1, s.chooseEndpoint(e))

	s.st.lastTouched[1], s.st.lastTouched[2] = 4, 4
	assert.Equal(t, 2, s.chooseEndpoint(e), "full tie goes to the second endpoint")
}

// TestChooseRemoval_SingleCandidate checks sampling on a one-member pool.
func TestChooseRemoval_SingleCandidate(t *testing.T) {
	g := mustGraph(t, 3, [2]int{1, 2})
	s, err := NewSolver(g, testOptions(0, 0))
	require.NoError(t, err)
	s.pool.rebuild([]bool{false, false, true, false})

	assert.Equal(t, 2, s.chooseRemoval())
}

// TestChooseRemoval_PrefersScoreThenAge checks the sampled arg-max with
// a sample large enough to see every member of a tiny pool.
func TestChooseRemoval_PrefersScoreThenAge(t *testing.T) {
	g := mustGraph(t, 4)
	opts := testOptions(1, 0)
	opts.SampleSize = 500
	s, err := NewSolver(g, opts)
	require.NoError(t, err)
	s.pool.rebuild([]bool{false, true, true, true, true})

	s.st.score = []int{0, -3, -1, -1, -2}
	s.st.lastTouched = []int64{0, 0, 9, 4, 0}
	assert.Equal(t, 3, s.chooseRemoval(), "best score, older of the tied pair")
}
