package cover_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/katalvlaran/fastvc/builder"
	"github.com/katalvlaran/fastvc/cover"
	"github.com/katalvlaran/fastvc/graph"
)

// sparseGraph builds a random graph with n vertices and about n*avgDeg/2 edges.
func sparseGraph(b *testing.B, n, avgDeg int, seed int64) *graph.Graph {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := n * avgDeg / 2
	edges := make([]graph.Edge, 0, m)
	for len(edges) < m {
		u := 1 + rng.Intn(n)
		v := 1 + rng.Intn(n)
		if u != v {
			edges = append(edges, graph.Edge{U: u, V: v})
		}
	}
	g, err := graph.New(n, edges)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkSolve_Steps measures repairing-step throughput on a sparse graph.
func BenchmarkSolve_Steps(b *testing.B) {
	const steps = 100000
	g := sparseGraph(b, 20000, 8, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		opts := cover.DefaultOptions()
		opts.Seed = int64(i)
		opts.Cutoff = time.Hour
		opts.MaxSteps = steps
		if _, err := cover.Solve(g, opts); err != nil {
			b.Fatal(err)
		}
	}
	b.ReportMetric(float64(steps), "steps/op")
}

// BenchmarkSolve_Planted runs a fixed step budget on a planted-cover
// instance whose optimum is at most 200.
func BenchmarkSolve_Planted(b *testing.B) {
	const steps = 50000
	g, err := builder.Build([]builder.BuilderOption{builder.WithSeed(1)}, builder.PlantedCover(2000, 200, 0.02))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		opts := cover.DefaultOptions()
		opts.Seed = int64(i)
		opts.Cutoff = time.Hour
		opts.MaxSteps = steps
		if _, err := cover.Solve(g, opts); err != nil {
			b.Fatal(err)
		}
	}
}
