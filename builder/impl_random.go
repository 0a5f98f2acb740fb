// SPDX-License-Identifier: MIT
// Package: fastvc/builder
//
// impl_random.go - RandomSparse(n, p) and PlantedCover(n, k, p).
//
// Trials run over unordered pairs (i,j), i<j, i ascending then j
// ascending, one rng.Float64() draw per admissible pair. An edge is kept
// when the draw is below p. For p ∈ {0,1} no draw is made and no RNG is
// required.

package builder

import (
	"fmt"
	"math/rand"
)

const (
	methodRandomSparse      = "RandomSparse"
	methodPlantedCover      = "PlantedCover"
	minRandomSparseVertices = 1
	minPlantedVertices      = 2
	minPlantedCover         = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor for the Erdős–Rényi graph G(n,p).
// Complexity: O(n²) trials.
func RandomSparse(n int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if err := checkProbability(methodRandomSparse, p, cfg.rng); err != nil {
			return err
		}

		var (
			first = d.grow(n)
			i, j  int
		)
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if keep(cfg.rng, p) {
					d.link(first+i, first+j)
				}
			}
		}

		return nil
	}
}

// PlantedCover returns a Constructor for a random graph on n vertices whose
// first k vertices form a cover: each pair with at least one endpoint among
// them is kept with probability p, pairs outside them never are. The
// minimum cover therefore has at most k vertices (1 ≤ k < n).
// Complexity: O(n·k) trials.
func PlantedCover(n, k int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minPlantedVertices || k < minPlantedCover || k >= n {
			return fmt.Errorf("%s: n=%d, k=%d (need n ≥ %d and %d ≤ k < n): %w",
				methodPlantedCover, n, k, minPlantedVertices, minPlantedCover, ErrTooFewVertices)
		}
		if err := checkProbability(methodPlantedCover, p, cfg.rng); err != nil {
			return err
		}

		var (
			first = d.grow(n)
			i, j  int
		)
		for i = 0; i < k; i++ {
			for j = i + 1; j < n; j++ {
				if keep(cfg.rng, p) {
					d.link(first+i, first+j)
				}
			}
		}

		return nil
	}
}

// checkProbability validates p and the RNG it needs.
func checkProbability(method string, p float64, rng *rand.Rand) error {
	if !(p >= probMin && p <= probMax) {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}
	if rng == nil && p > probMin && p < probMax {
		return fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return nil
}

// keep runs one Bernoulli(p) trial.
func keep(rng *rand.Rand, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	default:
		return rng.Float64() < p
	}
}
