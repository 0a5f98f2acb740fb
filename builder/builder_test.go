// File: builder_test.go
// Functional tests for the builder constructors: counts, degrees, edge
// order, composition and error sentinels.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fastvc/builder"
	"github.com/katalvlaran/fastvc/graph"
)

// bruteForceOptimum returns the minimum cover size by subset enumeration.
func bruteForceOptimum(t *testing.T, g *graph.Graph) int {
	t.Helper()
	n := g.NumVertices()
	require.LessOrEqual(t, n, 20, "brute force limited to 20 vertices")

	best := n
	for mask := 0; mask < 1<<n; mask++ {
		size := 0
		for v := 0; v < n; v++ {
			if mask&(1<<v) != 0 {
				size++
			}
		}
		if size >= best {
			continue
		}
		ok := true
		for _, e := range g.Edges() {
			if mask&(1<<(e.U-1)) == 0 && mask&(1<<(e.V-1)) == 0 {
				ok = false
				break
			}
		}
		if ok {
			best = size
		}
	}

	return best
}

// TestBuilders_Functional checks counts, max degree and the closed-form
// optimum of every deterministic family.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		spec    builder.Spec
		wantV   int
		wantE   int
		wantMax int
	}{
		{builder.Spec{Family: builder.FamilyPath, N: 7}, 7, 6, 2},
		{builder.Spec{Family: builder.FamilyCycle, N: 7}, 7, 7, 2},
		{builder.Spec{Family: builder.FamilyStar, N: 6}, 6, 5, 5},
		{builder.Spec{Family: builder.FamilyWheel, N: 7}, 7, 12, 6},
		{builder.Spec{Family: builder.FamilyWheel, N: 6}, 6, 10, 5},
		{builder.Spec{Family: builder.FamilyComplete, N: 5}, 5, 10, 4},
		{builder.Spec{Family: builder.FamilyComplete, N: 1}, 1, 0, 0},
		{builder.Spec{Family: builder.FamilyBipartite, N: 2, M: 4}, 6, 8, 4},
		{builder.Spec{Family: builder.FamilyGrid, N: 3, M: 4}, 12, 17, 4},
		{builder.Spec{Family: builder.FamilyGrid, N: 1, M: 1}, 1, 0, 0},
	}
	for _, tc := range tests {
		t.Run(string(tc.spec.Family), func(t *testing.T) {
			ctor, err := tc.spec.Constructor()
			require.NoError(t, err)
			g, err := builder.Build(nil, ctor)
			require.NoError(t, err)

			assert.Equal(t, tc.wantV, g.NumVertices())
			assert.Equal(t, tc.wantE, g.NumEdges())
			assert.Equal(t, tc.wantMax, g.MaxDegree())

			opt, ok := tc.spec.Optimum()
			require.True(t, ok)
			assert.Equal(t, bruteForceOptimum(t, g), opt)
		})
	}
}

// TestBuild_EdgeOrder pins the documented emission order.
func TestBuild_EdgeOrder(t *testing.T) {
	g, err := builder.Build(nil, builder.Cycle(4))
	require.NoError(t, err)
	assert.Equal(t, []graph.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 1}}, g.Edges())

	g, err = builder.Build(nil, builder.Grid(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []graph.Edge{{U: 1, V: 2}, {U: 1, V: 3}, {U: 2, V: 4}, {U: 3, V: 4}}, g.Edges())
}

// TestBuild_DisjointUnion: each constructor gets its own id block.
func TestBuild_DisjointUnion(t *testing.T) {
	g, err := builder.Build(nil, builder.Star(3), builder.Path(2))
	require.NoError(t, err)

	assert.Equal(t, 5, g.NumVertices())
	assert.Equal(t, []graph.Edge{{U: 1, V: 2}, {U: 1, V: 3}, {U: 4, V: 5}}, g.Edges())
	assert.Equal(t, 2, bruteForceOptimum(t, g))
}

// TestRandom_Determinism: equal seeds give equal graphs.
func TestRandom_Determinism(t *testing.T) {
	build := func(seed int64) *graph.Graph {
		g, err := builder.Build(
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(30, 0.2),
			builder.PlantedCover(20, 4, 0.5),
		)
		require.NoError(t, err)
		return g
	}

	a, b := build(11), build(11)
	assert.Equal(t, a.Edges(), b.Edges())
	assert.Equal(t, 50, a.NumVertices())

	r := rand.New(rand.NewSource(11))
	c, err := builder.Build(
		[]builder.BuilderOption{builder.WithRand(r)},
		builder.RandomSparse(30, 0.2),
		builder.PlantedCover(20, 4, 0.5),
	)
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), c.Edges())
}

// TestRandom_Extremes: p ∈ {0,1} needs no RNG.
func TestRandom_Extremes(t *testing.T) {
	g, err := builder.Build(nil, builder.RandomSparse(6, 0))
	require.NoError(t, err)
	assert.Zero(t, g.NumEdges())

	g, err = builder.Build(nil, builder.RandomSparse(6, 1))
	require.NoError(t, err)
	assert.Equal(t, 15, g.NumEdges())

	g, err = builder.Build(nil, builder.PlantedCover(6, 2, 1))
	require.NoError(t, err)
	assert.Equal(t, 9, g.NumEdges())
}

// TestPlantedCover_Touches: every edge has an endpoint in the planted set.
func TestPlantedCover_Touches(t *testing.T) {
	g, err := builder.Build(
		[]builder.BuilderOption{builder.WithSeed(3)},
		builder.Path(3),
		builder.PlantedCover(40, 6, 0.3),
	)
	require.NoError(t, err)

	planted := func(v int) bool { return v >= 4 && v <= 9 }
	for _, e := range g.Edges()[2:] {
		assert.True(t, planted(e.U) || planted(e.V), "edge %v", e)
	}
}

// TestBuild_Errors asserts sentinels for invalid parameters.
func TestBuild_Errors(t *testing.T) {
	cases := map[string]struct {
		ctor builder.Constructor
		want error
	}{
		"path":        {builder.Path(1), builder.ErrTooFewVertices},
		"cycle":       {builder.Cycle(2), builder.ErrTooFewVertices},
		"star":        {builder.Star(1), builder.ErrTooFewVertices},
		"wheel":       {builder.Wheel(3), builder.ErrTooFewVertices},
		"complete":    {builder.Complete(0), builder.ErrTooFewVertices},
		"bipartite":   {builder.CompleteBipartite(0, 3), builder.ErrTooFewVertices},
		"grid":        {builder.Grid(2, 0), builder.ErrTooFewVertices},
		"sparse p":    {builder.RandomSparse(5, 1.5), builder.ErrInvalidProbability},
		"sparse rng":  {builder.RandomSparse(5, 0.5), builder.ErrNeedRandSource},
		"planted k":   {builder.PlantedCover(5, 5, 0.5), builder.ErrTooFewVertices},
		"planted nan": {builder.PlantedCover(5, 2, nan()), builder.ErrInvalidProbability},
		"nil ctor":    {nil, builder.ErrConstructFailed},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := builder.Build(nil, tc.ctor)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := builder.Spec{Family: "moebius"}.Constructor()
	require.ErrorIs(t, err, builder.ErrUnknownFamily)

	_, ok := builder.Spec{Family: builder.FamilyRandom, N: 5, P: 0.5}.Optimum()
	assert.False(t, ok)

	assert.Panics(t, func() { builder.WithRand(nil) })
}

func nan() float64 {
	zero := 0.0
	return zero / zero
}
