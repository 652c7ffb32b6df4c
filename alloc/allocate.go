package alloc

import (
	"math"

	"github.com/golang/glog"

	"github.com/katalvlaran/sdsim/core"
)

// AllocateAvailable distributes an available resource among requesters
// according to their priority profiles and returns the allocation vector.
//
// The search space is the x axis under the requesters' priority curves:
// each requester receives requests[i] * Q(profile, x), and x is moved
// until the total matches the available resource. Fixed profiles (and the
// degenerate case of all-equal priorities) fall back to proportional
// allocation. The available resource is clamped to the total requests so
// the engine never overallocates.
//
// Errors come paired with a usable result: capacity and length violations
// return a zero vector, a non-converged search returns its best effort.
func AllocateAvailable(env *core.Env, requests []float64, profiles []Profile, available float64) ([]float64, error) {
	n := len(requests)
	allocations := make([]float64, n)
	if n > MaxAgents {
		glog.Errorf("ALLOCATE AVAILABLE: %d requesters exceed the internal maximum of %d", n, MaxAgents)
		return allocations, ErrTooManyAgents
	}
	if len(profiles) != n {
		glog.Errorf("ALLOCATE AVAILABLE: %d profiles for %d requesters", len(profiles), n)
		return allocations, ErrLengthMismatch
	}
	if available <= 0.0 || n == 0 {
		return allocations, nil
	}

	// Clamp to the total requests so we don't overallocate.
	totalRequests := 0.0
	for _, r := range requests {
		totalRequests += r
	}
	available = math.Min(available, totalRequests)

	// Bracket the search with the spread of the priority means.
	minMean := math.MaxFloat64
	maxMean := -math.MaxFloat64
	for _, p := range profiles {
		minMean = math.Min(p.Priority, minMean)
		maxMean = math.Max(p.Priority, maxMean)
	}

	// Start at the midpoint of the means with a first jump scaled to
	// their spread.
	x := (maxMean + minMean) / 2.0
	delta := (maxMean - minMean) / 2.0
	numSteps := 0
	lastSign := 1.0
	sameDirection := 0
	totalAllocations := 0.0

	for {
		// Allocations for each requester at the current x.
		for i, request := range requests {
			if request <= 0.0 {
				allocations[i] = 0.0
				continue
			}
			if profiles[i].Type == Fixed || env.ApproxEqual(minMean, maxMean) {
				// Proportional fallback: fixed curves, or every
				// priority equal within tolerance.
				if totalRequests > available {
					allocations[i] = (request / totalRequests) * available
				} else {
					allocations[i] = request
				}
			} else {
				allocations[i] = request * fraction(profiles[i], x, true)
			}
		}
		totalAllocations = 0.0
		for _, a := range allocations {
			totalAllocations += a
		}
		glog.V(1).Infof("ALLOCATE AVAILABLE: x=%g delta=%g total=%g available=%g",
			x, delta, totalAllocations, available)

		numSteps++
		if numSteps >= maxSearchSteps {
			glog.Errorf("ALLOCATE AVAILABLE failed to converge at time=%g with total_allocations=%.6f, available_resource=%.6f",
				env.Time, totalAllocations, available)
			return allocations, ErrNoConvergence
		}

		// Choose the next jump: usually half the previous one, flipping
		// direction when the target was overshot. Too many jumps the same
		// way means halving is stalling short of the target, so hold the
		// magnitude until the next direction change.
		sign := 1.0
		if totalAllocations < available {
			sign = -1.0
		}
		if sign == lastSign {
			sameDirection++
		} else {
			sameDirection = 0
		}
		lastSign = sign
		if sameDirection < 3 {
			delta = sign * math.Abs(delta) / 2.0
		} else {
			delta = sign * math.Abs(delta)
		}
		x += delta

		if env.ApproxEqual(totalAllocations, available) {
			return allocations, nil
		}
	}
}
