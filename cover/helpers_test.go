package cover

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fastvc/graph"
)

// stepClock advances by tick on every Elapsed call, so cutoffs translate
// into a deterministic number of check points.
type stepClock struct {
	now  time.Duration
	tick time.Duration
}

func (c *stepClock) Start() { c.now = 0 }

func (c *stepClock) Elapsed() time.Duration {
	c.now += c.tick
	return c.now
}

// mustGraph builds a graph or fails the test.
func mustGraph(t testing.TB, n int, edges ...[2]int) *graph.Graph {
	t.Helper()
	es := make([]graph.Edge, len(edges))
	for i, e := range edges {
		es[i] = graph.Edge{U: e[0], V: e[1]}
	}
	g, err := graph.New(n, es)
	require.NoError(t, err)

	return g
}

// randomGraph builds a simple graph G(n, p) from rng.
func randomGraph(t testing.TB, rng *rand.Rand, n int, p float64) *graph.Graph {
	t.Helper()
	var es []graph.Edge
	for u := 1; u <= n; u++ {
		for v := u + 1; v <= n; v++ {
			if rng.Float64() < p {
				es = append(es, graph.Edge{U: u, V: v})
			}
		}
	}
	g, err := graph.New(n, es)
	require.NoError(t, err)

	return g
}

// testOptions returns deterministic options bounded by a step limit.
func testOptions(seed int64, maxSteps int64) Options {
	opts := DefaultOptions()
	opts.Seed = seed
	opts.Cutoff = time.Hour
	opts.MaxSteps = maxSteps
	opts.Clock = &stepClock{tick: time.Millisecond}

	return opts
}

// recomputeScore derives score[v] from membership alone.
func recomputeScore(s *state, v int) int {
	count := 0
	for _, a := range s.g.Neighbors(v) {
		if s.inCover[v] {
			if !s.inCover[a.Vertex] {
				count--
			}
		} else if !s.inCover[a.Vertex] {
			count++
		}
	}

	return count
}

// requireConsistent checks every derived structure against a from-scratch
// recomputation: scores, uncovered set, cover size and (optionally) pool.
func requireConsistent(t testing.TB, s *state, pool *candidatePool) {
	t.Helper()
	n := s.g.NumVertices()
	size := 0
	for v := 1; v <= n; v++ {
		require.Equal(t, recomputeScore(s, v), s.score[v], "score of vertex %d", v)
		if s.inCover[v] {
			size++
			require.LessOrEqual(t, s.score[v], 0, "member %d must have non-positive score", v)
		} else {
			require.GreaterOrEqual(t, s.score[v], 0, "non-member %d must have non-negative score", v)
		}
		if pool != nil {
			require.Equal(t, s.inCover[v], pool.contains(v), "pool membership of %d", v)
		}
	}
	require.Equal(t, size, s.size, "cover size")

	uncovered := 0
	for e := 0; e < s.g.NumEdges(); e++ {
		edge := s.g.Edge(e)
		want := !s.inCover[edge.U] && !s.inCover[edge.V]
		require.Equal(t, want, s.uncovered.contains(e), "uncovered membership of edge %d", e)
		if want {
			uncovered++
		}
	}
	require.Equal(t, uncovered, s.uncovered.len())
	for i := 0; i < s.uncovered.len(); i++ {
		require.Equal(t, i, s.uncovered.slot[s.uncovered.at(i)], "slot of uncovered slot %d", i)
	}

	if pool != nil {
		require.Equal(t, size, pool.len(), "pool size")
		for i := 0; i < pool.len(); i++ {
			require.Equal(t, i, pool.slot[pool.at(i)], "slot of pool slot %d", i)
		}
	}
}
