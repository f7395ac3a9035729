package solver

import (
	"context"
	"math"
	"math/rand/v2"
	"time"

	"github.com/Indusoptima/plotsync-sub001/pkg/plan"
)

// Annealing defaults.
const (
	// DefaultAlpha is the geometric cooling factor: T_k = T0 * alpha^k.
	DefaultAlpha = 0.995

	// DefaultInitialAcceptance is the target acceptance rate used to
	// calibrate the starting temperature.
	DefaultInitialAcceptance = 0.8

	// DefaultDeadlineCheckEvery is how many iterations pass between
	// cooperative deadline checks.
	DefaultDeadlineCheckEvery = 256

	// calibrationProbes is how many seed perturbations are sampled to
	// estimate the initial temperature.
	calibrationProbes = 32
)

// AnnealOptions configure one annealing run.
type AnnealOptions struct {
	// Iterations is the iteration budget. Required.
	Iterations int

	// Seed drives the run's pseudo-random source. Identical seeds and
	// inputs reproduce identical results bit for bit.
	Seed uint64

	// Alpha is the geometric cooling factor; zero means DefaultAlpha.
	Alpha float64

	// Deadline, when non-zero, bounds the run's wall-clock time. Expiry is
	// a degradation path, not a failure: the best-seen layout is returned
	// with TimedOut set.
	Deadline time.Time

	// CheckEvery is the deadline/cancellation check interval in iterations;
	// zero means DefaultDeadlineCheckEvery.
	CheckEvery int
}

// withDefaults fills zero fields.
func (o AnnealOptions) withDefaults() AnnealOptions {
	if o.Alpha <= 0 || o.Alpha >= 1 {
		o.Alpha = DefaultAlpha
	}
	if o.CheckEvery <= 0 {
		o.CheckEvery = DefaultDeadlineCheckEvery
	}
	return o
}

// AnnealResult reports the outcome of an annealing run.
type AnnealResult struct {
	// Best is the best-seen layout. Elitism guarantees its cost is never
	// above the seed layout's cost.
	Best plan.Layout

	// BestBreakdown is the per-term cost decomposition of Best.
	BestBreakdown Breakdown

	// SeedCost is the cost of the input layout, for diagnostics.
	SeedCost float64

	// Iterations is how many iterations actually ran.
	Iterations int

	// Accepted counts accepted candidates (including downhill moves).
	Accepted int

	// TimedOut reports that the deadline or context expired before the
	// iteration budget; Best is still valid.
	TimedOut bool
}

// Anneal refines a seed layout by simulated annealing. Each iteration
// perturbs one room of the current layout, scores the candidate, and accepts
// it unconditionally when it is no worse, or with probability
// exp(-Δcost/T_k) otherwise (Metropolis criterion). Temperature cools
// geometrically. The run stops at budget exhaustion, zero cost, deadline
// expiry, or context cancellation — always returning the best layout seen.
func Anneal(ctx context.Context, scorer *Scorer, seed plan.Layout, opts AnnealOptions) AnnealResult {
	opts = opts.withDefaults()
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0xdeadbeef))

	ids := seed.RoomIDs()
	cur := seed.Clone()
	curScore := scorer.Score(cur)
	cur.Cost = curScore.Total

	best := cur
	bestScore := curScore

	res := AnnealResult{SeedCost: curScore.Total}

	t0 := calibrateTemperature(scorer, cur, ids, rng, curScore.Total)
	temp := t0

	for k := 0; k < opts.Iterations; k++ {
		if bestScore.Total < plan.Epsilon {
			break // perfect layout, nothing left to improve
		}
		if k%opts.CheckEvery == 0 {
			if ctx.Err() != nil || (!opts.Deadline.IsZero() && time.Now().After(opts.Deadline)) {
				res.TimedOut = true
				break
			}
		}

		cand := perturb(scorer, cur, ids, rng)
		candScore := scorer.Score(cand)
		cand.Cost = candScore.Total

		delta := candScore.Total - curScore.Total
		if delta <= 0 || rng.Float64() < math.Exp(-delta/temp) {
			cur = cand
			curScore = candScore
			res.Accepted++
			if candScore.Total < bestScore.Total {
				best = cand
				bestScore = candScore
			}
		}

		temp *= opts.Alpha
		res.Iterations++
	}

	res.Best = best
	res.BestBreakdown = bestScore
	return res
}

// calibrateTemperature estimates T0 so that the initial acceptance rate for
// uphill moves is close to DefaultInitialAcceptance. It samples a fixed
// number of probe perturbations from the seed layout and derives T0 from
// their mean cost increase: exp(-mean/T0) = acceptance.
func calibrateTemperature(scorer *Scorer, seed plan.Layout, ids []string, rng *rand.Rand, seedCost float64) float64 {
	var sum float64
	n := 0
	for range calibrationProbes {
		cand := perturb(scorer, seed, ids, rng)
		if delta := scorer.Score(cand).Total - seedCost; delta > 0 {
			sum += delta
			n++
		}
	}
	if n == 0 {
		return 1
	}
	mean := sum / float64(n)
	return mean / math.Log(1/DefaultInitialAcceptance)
}
