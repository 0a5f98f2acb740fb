// Package builder generates vertex cover instances with known structure,
// for tests, benchmarks and the "fastvc gen" command.
//
// A Build call composes constructors as a disjoint union: every constructor
// reserves a fresh block of consecutive vertex ids and emits edges inside
// that block only. The minimum cover of the result is therefore the sum of
// the minimum covers of the parts, which Spec.Optimum reports for the
// deterministic families.
//
// Components:
//
//   - Build: the single orchestrator; resolves options, runs constructors in
//     order and returns a *graph.Graph.
//   - Deterministic families: Path, Cycle, Star, Wheel, Complete,
//     CompleteBipartite, Grid.
//   - Stochastic families: RandomSparse (Erdős–Rényi G(n,p)) and
//     PlantedCover (every edge touches a planted k-set, so the minimum cover
//     has at most k vertices). Both need WithSeed or WithRand unless p is 0
//     or 1.
//
// Guarantees:
//
//   - Determinism: equal options, seed and constructor order give identical
//     graphs, edge order included.
//   - No panics at build time; invalid parameters return sentinel errors
//     wrapped with the constructor name. Option constructors panic on nil
//     input.
//
// Example:
//
//	g, err := builder.Build(
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.Star(5),
//		builder.RandomSparse(40, 0.1),
//	)
package builder
