// SPDX-License-Identifier: MIT

// Package cover computes small vertex covers of undirected graphs by
// stochastic local search (FastVC-style), trading optimality guarantees for
// speed on large instances.
//
// A vertex cover of G = (V,E) is a subset C ⊆ V such that every edge has at
// least one endpoint in C. The solver keeps a candidate cover and shrinks it
// while repairing coverage violations, under a time budget.
//
// Solver state, all owned by one Solver and sized once from the graph:
//
//   - membership flag, signed score and last-touched step per vertex;
//   - the exact set of uncovered edges (O(1) insert/remove by value);
//   - the candidate pool, the exact set of cover members (O(1) uniform
//     sampling and removal by value);
//   - the best snapshot: members, size, discovery step and time.
//
// Score semantics:
//
//	v ∉ C: score[v] = number of uncovered edges incident to v  (≥ 0)
//	v ∈ C: score[v] = −(number of neighbours of v outside C)    (≤ 0)
//
// Every add/remove touches only the mutated vertex and its direct
// neighbours, in O(deg(v)); no step rescans the graph.
//
// Search loop:
//
//  1. Initial cover: greedy pass over edges (higher-degree endpoint), bulk
//     score computation, redundancy pruning of score-0 members.
//  2. Whenever no edge is uncovered: capture Best, evict one vertex chosen
//     by a prefix scan of the pool.
//  3. Otherwise: remove the best of SampleSize random pool draws (max score,
//     oldest on ties), then add the better endpoint of a random uncovered
//     edge into the freed pool slot.
//  4. Every CheckInterval steps, stop if Clock.Elapsed() ≥ Cutoff.
//
// Reproducibility: the random generator is seeded from Options.Seed and owned
// by the Solver; equal seeds, graphs and clock readings give equal runs.
//
// Verification: Verify recomputes coverage and cardinality of a Best from
// scratch; a failure points at a bookkeeping defect, never at user input.
//
// Example:
//
//	g, _ := graph.New(3, []graph.Edge{{U: 1, V: 2}, {U: 2, V: 3}, {U: 1, V: 3}})
//	opts := cover.DefaultOptions()
//	opts.Cutoff = time.Second
//	res, _ := cover.Solve(g, opts)
//	res.Best.Size       // 2
//	res.Best.Vertices() // e.g. [2 3]
package cover
