// SPDX-License-Identifier: MIT
// Package: fastvc/builder
//
// family.go - named generator families with their exact minimum cover
// sizes, used by "fastvc gen" and by solver tests.

package builder

import (
	"errors"
	"fmt"
)

// Family names a generator.
type Family string

// Supported families.
const (
	FamilyPath      Family = "path"
	FamilyCycle     Family = "cycle"
	FamilyStar      Family = "star"
	FamilyWheel     Family = "wheel"
	FamilyComplete  Family = "complete"
	FamilyBipartite Family = "bipartite"
	FamilyGrid      Family = "grid"
	FamilyRandom    Family = "random"
	FamilyPlanted   Family = "planted"
)

// ErrUnknownFamily indicates a Family name Spec does not recognise.
var ErrUnknownFamily = errors.New("builder: unknown family")

// Spec describes one component by family and parameters. Field use:
//
//	path, cycle, star, wheel, complete  N
//	bipartite                           N (left), M (right)
//	grid                                N (rows), M (cols)
//	random                              N, P
//	planted                             N, K, P
type Spec struct {
	Family Family
	N, M   int
	K      int
	P      float64
}

// Constructor returns the constructor described by s. Parameter ranges are
// checked when the constructor runs.
func (s Spec) Constructor() (Constructor, error) {
	switch s.Family {
	case FamilyPath:
		return Path(s.N), nil
	case FamilyCycle:
		return Cycle(s.N), nil
	case FamilyStar:
		return Star(s.N), nil
	case FamilyWheel:
		return Wheel(s.N), nil
	case FamilyComplete:
		return Complete(s.N), nil
	case FamilyBipartite:
		return CompleteBipartite(s.N, s.M), nil
	case FamilyGrid:
		return Grid(s.N, s.M), nil
	case FamilyRandom:
		return RandomSparse(s.N, s.P), nil
	case FamilyPlanted:
		return PlantedCover(s.N, s.K, s.P), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, s.Family)
	}
}

// Optimum returns the minimum vertex cover size of the graph s describes
// and true, or false when it is not known in closed form (stochastic
// families). Parameters are assumed valid.
//
//	P_n ⌊n/2⌋   C_n ⌈n/2⌉   star 1   W_n 1+⌈(n-1)/2⌉   K_n n-1
//	K_{a,b} min(a,b)   grid ⌊rows·cols/2⌋
//
// The bipartite and grid values follow from König's theorem.
func (s Spec) Optimum() (int, bool) {
	switch s.Family {
	case FamilyPath:
		return s.N / 2, true
	case FamilyCycle:
		return (s.N + 1) / 2, true
	case FamilyStar:
		return 1, true
	case FamilyWheel:
		return 1 + s.N/2, true
	case FamilyComplete:
		return s.N - 1, true
	case FamilyBipartite:
		return min(s.N, s.M), true
	case FamilyGrid:
		return s.N * s.M / 2, true
	default:
		return 0, false
	}
}
