// SPDX-License-Identifier: MIT
//
// File: search.go
// Role: the step loop alternating Repairing and Improving until the budget ends.
//
// State machine (one loop, two states per iteration):
//
//	Improving  (no uncovered edge): capture Best, then evict one vertex
//	                                 (target size − 1) with a prefix scan.
//	Repairing  (uncovered edges):   every CheckInterval steps consult the
//	                                 clock; remove a sampled vertex, add an
//	                                 endpoint of a random uncovered edge,
//	                                 reuse the removed vertex's pool slot.
//
// Determinism: with a fixed seed, graph and clock readings, the step
// sequence and the final Best are identical across runs.

package cover

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/katalvlaran/fastvc/graph"
)

// progressInterval throttles improvement logs; captures can happen millions
// of times on large instances.
const progressInterval = time.Second

// Solver runs the local search on one graph. A Solver owns all of its state
// and its random generator; it is not safe for concurrent use, but distinct
// Solvers may share the same *graph.Graph.
type Solver struct {
	opts     Options
	st       *state
	pool     *candidatePool
	tracker  *tracker
	rng      *rand.Rand
	clock    Clock
	log      zerolog.Logger
	progress rate.Sometimes

	step int64  // current step counter, starts at 1 when the loop begins
	done bool   // Run already happened
	res  Result // outcome of the first Run
}

// NewSolver validates opts and allocates all per-run state for g.
// No search work happens until Run.
//
// Errors: ErrGraphNil, ErrOptionViolation.
// Complexity: O(n+m).
func NewSolver(g *graph.Graph, opts Options) (*Solver, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	clock := opts.Clock
	if clock == nil {
		clock = NewCPUClock()
	}

	return &Solver{
		opts:     opts,
		st:       newState(g),
		pool:     newCandidatePool(g.NumVertices()),
		tracker:  newTracker(),
		rng:      rand.New(rand.NewSource(opts.Seed)),
		clock:    clock,
		log:      opts.Logger,
		progress: rate.Sometimes{First: 1, Interval: progressInterval},
	}, nil
}

// Solve is the one-shot convenience wrapper: NewSolver followed by Run.
func Solve(g *graph.Graph, opts Options) (Result, error) {
	s, err := NewSolver(g, opts)
	if err != nil {
		return Result{}, err
	}

	return s.Run(), nil
}

// Run starts the clock, builds the initial cover and searches until a stop
// condition holds. Later calls return a copy of the first result.
func (s *Solver) Run() Result {
	if s.done {
		return s.copyResult()
	}
	s.done = true

	s.clock.Start()
	s.initialise()
	reason := s.search()

	s.res = Result{
		Best:    s.tracker.best,
		Steps:   s.step,
		Elapsed: s.clock.Elapsed(),
		Reason:  reason,
	}
	s.log.Debug().
		Stringer("reason", reason).
		Int("best_size", s.res.Best.Size).
		Int64("steps", s.res.Steps).
		Dur("elapsed", s.res.Elapsed).
		Msg("search stopped")

	return s.copyResult()
}

func (s *Solver) copyResult() Result {
	r := s.res
	r.Best = s.res.Best.Clone()

	return r
}

// initialise builds the greedy cover, mirrors it into the pool and records
// it as the first best solution (step 0).
func (s *Solver) initialise() {
	s.st.initGreedy()
	s.pool.rebuild(s.st.inCover)
	s.capture()
	s.log.Debug().
		Int("vertices", s.st.g.NumVertices()).
		Int("edges", s.st.g.NumEdges()).
		Int("size", s.st.size).
		Msg("initial cover")
}

// search is the main loop. It returns only through a stop condition.
func (s *Solver) search() StopReason {
	var (
		reason StopReason
		stop   bool
	)
	s.step = 1
	for {
		if s.st.uncovered.len() == 0 {
			if reason, stop = s.improve(); stop {
				return reason
			}
			continue
		}

		if s.opts.MaxSteps > 0 && s.step > s.opts.MaxSteps {
			return StopMaxSteps
		}
		if s.step%s.opts.CheckInterval == 0 && s.clock.Elapsed() >= s.opts.Cutoff {
			return StopCutoff
		}

		s.repair()
		s.step++
	}
}

// improve handles the Improving state: capture, then shrink the target by
// evicting one vertex. It reports whether the loop must stop instead.
func (s *Solver) improve() (StopReason, bool) {
	s.capture()

	if s.opts.TargetSize > 0 && s.st.size <= s.opts.TargetSize {
		return StopTargetReached, true
	}
	// An empty cover, or a single vertex while edges exist, is already minimum.
	if s.pool.len() <= 1 {
		return StopIrreducible, true
	}

	v := s.chooseEviction()
	s.st.remove(v)
	s.pool.remove(v)

	return 0, false
}

// chooseEviction scans the pool from slot 0. If slot 0 holds a score-0
// vertex it is taken at once; otherwise the maximum score among the slots
// before the first score-0 vertex wins (first maximum on ties). The scan is
// a bounded prefix, not a full pass, and depends on pool order.
// Complexity: O(|C|) worst case.
func (s *Solver) chooseEviction() int {
	var (
		score = s.st.score
		best  = s.pool.at(0)
		v     int
		i     int
	)
	if score[best] != 0 {
		for i = 1; i < s.pool.len(); i++ {
			v = s.pool.at(i)
			if score[v] == 0 {
				break
			}
			if score[v] > score[best] {
				best = v
			}
		}
	}

	return best
}

// repair performs one Repairing step: remove a sampled member, add an
// endpoint of a random uncovered edge into the freed pool slot, and stamp
// both vertices with the current step.
// Complexity: O(SampleSize + deg(r) + deg(a)).
func (s *Solver) repair() {
	r := s.chooseRemoval()
	s.st.remove(r)

	e := s.st.uncovered.at(s.rng.Intn(s.st.uncovered.len()))
	a := s.chooseEndpoint(s.st.g.Edge(e))
	s.st.add(a)
	s.pool.replace(r, a)

	s.st.lastTouched[r] = s.step
	s.st.lastTouched[a] = s.step
}

// chooseRemoval draws SampleSize pool members uniformly with replacement
// and keeps the one with the largest score, ties broken by the smaller
// lastTouched (older wins).
// Complexity: O(SampleSize).
func (s *Solver) chooseRemoval() int {
	var (
		score = s.st.score
		stamp = s.st.lastTouched
		n     = s.pool.len()
		best  = s.pool.at(s.rng.Intn(n))
		v     int
		i     int
	)
	for i = 1; i < s.opts.SampleSize; i++ {
		v = s.pool.at(s.rng.Intn(n))
		switch {
		case score[v] > score[best]:
			best = v
		case score[v] == score[best] && stamp[v] < stamp[best]:
			best = v
		}
	}

	return best
}

// chooseEndpoint picks the endpoint with the larger score; on a tie the
// one touched longer ago, and on a full tie the second endpoint.
func (s *Solver) chooseEndpoint(e graph.Edge) int {
	var (
		score = s.st.score
		stamp = s.st.lastTouched
	)
	if score[e.U] > score[e.V] || (score[e.U] == score[e.V] && stamp[e.U] < stamp[e.V]) {
		return e.U
	}

	return e.V
}

// capture records the current cover as Best and fires the hook.
func (s *Solver) capture() {
	s.tracker.capture(s.pool, s.step, s.clock.Elapsed())
	b := s.tracker.best
	if s.opts.OnImprove != nil {
		s.opts.OnImprove(b.Clone())
	}
	s.progress.Do(func() {
		s.log.Debug().
			Int("size", b.Size).
			Int64("step", b.Step).
			Dur("elapsed", b.Elapsed).
			Msg("cover improved")
	})
}
