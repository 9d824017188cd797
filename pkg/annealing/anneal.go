// Package annealing implements a generic simulated annealing loop.
// The state type, energy function and neighbor proposal are supplied
// by the caller; the package only owns the search schedule, the
// acceptance rule and best-state tracking.
package annealing

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// Evaluator computes the energy (cost) of a state. Lower is better.
type Evaluator[S any] func(S) float64

// NeighborFunc proposes a nearby candidate state based on the current one.
// It must not mutate its input; return a fresh value.
type NeighborFunc[S any] func(S, *rand.Rand) S

// Schedule provides a temperature for iteration k of a kmax-iteration run.
type Schedule interface {
	Temperature(k, kmax int) float64
}

// InverseSchedule yields T = Scale * kmax / k. At k=0 the division is
// undefined; it returns +Inf there, which makes the acceptance
// probability exactly 1 on the first iteration (high temperature early).
type InverseSchedule struct {
	Scale float64
}

func (s InverseSchedule) Temperature(k, kmax int) float64 {
	if k == 0 {
		return math.Inf(1)
	}
	return s.Scale * float64(kmax) / float64(k)
}

// ExponentialSchedule cools geometrically from Start to End across the run.
type ExponentialSchedule struct {
	Start float64
	End   float64
}

func (e ExponentialSchedule) Temperature(k, kmax int) float64 {
	if kmax <= 1 {
		return e.End
	}
	if e.Start <= 0 || e.End <= 0 {
		return 1e-9
	}
	frac := float64(k) / float64(kmax-1)
	return e.Start * math.Pow(e.End/e.Start, frac)
}

// Snapshot is the per-iteration record handed to the Hook. Accepted
// reports whether the proposal became the current state; NewBest reports
// whether it improved on the best energy seen so far.
type Snapshot[S any] struct {
	K              int
	Temperature    float64
	Proposed       S
	ProposedEnergy float64
	Current        S
	CurrentEnergy  float64
	Best           S
	BestEnergy     float64
	Accepted       bool
	NewBest        bool
}

// Hook observes each iteration. It never alters control flow.
type Hook[S any] func(Snapshot[S])

// Options bundles configuration for Anneal.
type Options[S any] struct {
	// Kmax is the iteration budget. Zero means evaluate the seed only.
	Kmax int
	// Emax is the energy floor: the run stops once the current energy
	// drops to Emax or below.
	Emax float64
	// Schedule controls the temperature. Nil means InverseSchedule{100}.
	Schedule Schedule
	// RNG drives proposals and acceptance. Nil means time-seeded.
	RNG *rand.Rand
	// Hook receives iteration snapshots. Optional.
	Hook Hook[S]
}

// Result is the outcome of one annealing run.
type Result[S any] struct {
	State      S
	Energy     float64
	Iterations int
}

// Anneal runs the search from seed and returns the best state found.
//
// Termination checks the *current* energy against Emax, not the best:
// a run can stop with a best energy below the last-observed current one.
// Best tracking compares each proposal against the best regardless of
// whether the proposal was accepted into the running state.
func Anneal[S any](ctx context.Context, seed S, eval Evaluator[S], neighbor NeighborFunc[S], opts Options[S]) (Result[S], error) {
	if opts.Kmax < 0 {
		return Result[S]{}, fmt.Errorf("kmax must not be negative, got %d", opts.Kmax)
	}

	schedule := opts.Schedule
	if schedule == nil {
		schedule = InverseSchedule{Scale: 100}
	}
	rng := opts.RNG
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	current := seed
	currentEnergy := eval(current)
	best, bestEnergy := current, currentEnergy

	k := 0
	for k < opts.Kmax && currentEnergy > opts.Emax {
		select {
		case <-ctx.Done():
			return Result[S]{State: best, Energy: bestEnergy, Iterations: k}, nil
		default:
		}

		temp := schedule.Temperature(k, opts.Kmax)
		candidate := neighbor(current, rng)
		candidateEnergy := eval(candidate)

		accepted := acceptProbability(currentEnergy, candidateEnergy, temp) > rng.Float64()
		if accepted {
			current = candidate
			currentEnergy = candidateEnergy
		}

		newBest := candidateEnergy < bestEnergy
		if newBest {
			best = candidate
			bestEnergy = candidateEnergy
		}

		if opts.Hook != nil {
			opts.Hook(Snapshot[S]{
				K:              k,
				Temperature:    temp,
				Proposed:       candidate,
				ProposedEnergy: candidateEnergy,
				Current:        current,
				CurrentEnergy:  currentEnergy,
				Best:           best,
				BestEnergy:     bestEnergy,
				Accepted:       accepted,
				NewBest:        newBest,
			})
		}
		k++
	}

	return Result[S]{State: best, Energy: bestEnergy, Iterations: k}, nil
}

// acceptProbability is 1 when the candidate improves on the current
// energy, exp(-(cand-curr)/temp) otherwise. With temp=+Inf the exponent
// is zero and the probability is 1. float64 throughout so large positive
// exponent arguments do not underflow prematurely.
func acceptProbability(curr, cand, temp float64) float64 {
	if cand < curr {
		return 1
	}
	return math.Exp(-(cand - curr) / temp)
}
