// Package fastvc finds small vertex covers of large sparse graphs with the
// FastVC stochastic local search.
//
// A vertex cover is a set of vertices touching every edge. FastVC keeps a
// cover, removes one vertex, then repairs: it swaps out a vertex chosen by
// Best-from-Multiple-Selection sampling and adds an endpoint of a random
// uncovered edge, until the graph is covered again at the smaller size.
//
// Layout:
//
//	graph/     - immutable CSR graph, 1-based vertices, gonum adapter
//	instance/  - DIMACS and edge-list readers/writers, gz/zstd/lz4 codecs
//	cover/     - the search engine, best-solution snapshots, verification
//	builder/   - instance generators with known optima
//	config/    - YAML settings and the zerolog logger
//	cmd/fastvc - command-line front end (solve, batch, gen)
//
// Quick start:
//
//	g, _ := instance.Load("frb30-15-1.mis", instance.DIMACS)
//	opts := cover.DefaultOptions()
//	opts.Cutoff = 10 * time.Second
//	res, _ := cover.Solve(g, opts)
//	fmt.Println(res.Best.Size, res.Best.Step)
package fastvc
