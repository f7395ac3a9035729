// Package pipeline provides the core solve pipeline for PlotSync.
//
// This package implements the complete validate → place → optimize →
// synthesize → gate pipeline that can be used by CLI, API, and worker
// components. By centralizing this logic, we ensure consistent behavior
// across all entry points and avoid code duplication.
//
// # Architecture
//
// A solve runs in five stages:
//
//  1. Feasibility: re-validate the specification against the rule engine
//  2. Seed: partition the envelope into zone bands and shelf-pack a layout
//  3. Anneal: refine the seed under the multi-objective scorer
//  4. Structure: synthesize walls, place openings, resolve door arcs
//  5. Gate: run the multi-pass geometric validator
//
// Validation failures after optimization are recovered, not raised: the
// caller always receives the best-known floorplan together with its quality
// report. Only an infeasible specification fails a solve outright.
//
// # Usage
//
// Create a Runner and solve:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Solve(ctx, spec, pipeline.Options{Seed: 42})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fp := result.Floorplan
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/Indusoptima/plotsync-sub001/pkg/cache"
	"github.com/Indusoptima/plotsync-sub001/pkg/errors"
	"github.com/Indusoptima/plotsync-sub001/pkg/plan"
	"github.com/Indusoptima/plotsync-sub001/pkg/solver"
	"github.com/Indusoptima/plotsync-sub001/pkg/validate"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Worker
// =============================================================================

const (
	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)

	// DefaultVariations is how many independent layouts a solve produces
	// when the caller does not ask for a specific count.
	DefaultVariations = 1

	// MaxVariations bounds the fan-out a single request may ask for.
	MaxVariations = 16
)

// =============================================================================
// Options - Solve Configuration
// =============================================================================

// Options contains all configuration for one solve.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Iterations is the annealing budget. Zero selects a budget scaled by
	// the building's typology.
	Iterations int `json:"iterations,omitempty"`

	// Seed drives all pseudo-random decisions. Identical seed and spec
	// reproduce a bit-identical floorplan.
	Seed uint64 `json:"seed,omitempty"`

	// TimeBudget bounds a solve's wall-clock time. Expiry degrades the
	// result to the best layout seen so far; it never fails the solve.
	TimeBudget time.Duration `json:"time_budget,omitempty"`

	// Variations is how many independent layouts to produce. Each runs
	// with its own derived seed and the results are sorted by cost.
	Variations int `json:"variations,omitempty"`

	// Weights overrides the scorer's term weights; nil uses defaults.
	Weights *solver.Weights `json:"weights,omitempty"`

	// Refresh bypasses the cache and forces a fresh solve.
	Refresh bool `json:"refresh,omitempty"`

	// Logger receives stage-level progress. Not serialized.
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks option ranges and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Iterations < 0 {
		return errors.New(errors.ErrCodeInvalidOptions, "iterations must not be negative")
	}
	if o.TimeBudget < 0 {
		return errors.New(errors.ErrCodeInvalidOptions, "time budget must not be negative")
	}
	if o.Variations < 0 || o.Variations > MaxVariations {
		return errors.New(errors.ErrCodeInvalidOptions, "variations must be between 0 and %d", MaxVariations)
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Variations == 0 {
		o.Variations = DefaultVariations
	}
	o.validated = true
	return nil
}

// keyOpts returns the cache key options for these solve options.
func (o *Options) keyOpts() cache.SolveKeyOpts {
	var weightsHash string
	if o.Weights != nil {
		weightsHash = o.Weights.Hash()
	}
	return cache.SolveKeyOpts{
		Seed:        o.Seed,
		Iterations:  o.Iterations,
		Variations:  o.Variations,
		WeightsHash: weightsHash,
	}
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of one solve.
type Result struct {
	// RunID identifies this solve in logs and API responses. It is not
	// part of the floorplan and does not affect determinism.
	RunID string `json:"run_id"`

	// SpecHash is the content hash of the input specification.
	SpecHash string `json:"spec_hash"`

	// Floorplan is the best variation's frozen output.
	Floorplan plan.Floorplan `json:"floorplan"`

	// Report is the validation report for Floorplan.
	Report validate.Report `json:"report"`

	// Breakdown is the scorer's per-term decomposition of Floorplan's cost.
	Breakdown solver.Breakdown `json:"breakdown"`

	// Variations holds every produced layout, best first. Its first entry
	// corresponds to Floorplan.
	Variations []Variation `json:"variations"`

	// TimedOut reports that any variation hit the time budget and returned
	// its best-seen layout early.
	TimedOut bool `json:"timed_out,omitempty"`

	// Stats contains timing and search information.
	Stats Stats `json:"stats"`

	// CacheInfo tracks whether the result came from cache.
	CacheInfo CacheInfo `json:"cache_info"`
}

// Variation is one independent solve outcome.
type Variation struct {
	// Seed is the derived seed this variation ran with.
	Seed uint64 `json:"seed"`

	// Floorplan is the variation's frozen output.
	Floorplan plan.Floorplan `json:"floorplan"`

	// Report is the variation's validation report.
	Report validate.Report `json:"report"`

	// Cost is the scorer total for the variation's layout.
	Cost float64 `json:"cost"`

	// SeedCost is the cost of the zone placer's seed layout, before
	// annealing.
	SeedCost float64 `json:"seed_cost"`

	// Iterations and Accepted describe the variation's annealing run.
	Iterations int `json:"iterations"`
	Accepted   int `json:"accepted"`

	// TimedOut reports that this variation hit the deadline.
	TimedOut bool `json:"timed_out,omitempty"`
}

// Stats contains solve execution statistics, summed across variations.
type Stats struct {
	Typology   string        `json:"typology"`
	Iterations int           `json:"iterations"`
	Accepted   int           `json:"accepted"`
	SeedCost   float64       `json:"seed_cost"`
	SolveTime  time.Duration `json:"solve_time"`
}

// CacheInfo tracks cache participation for a solve.
type CacheInfo struct {
	// Hit reports the entire result was served from cache.
	Hit bool `json:"hit"`
}
