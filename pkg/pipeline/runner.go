package pipeline

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Indusoptima/plotsync-sub001/pkg/cache"
	"github.com/Indusoptima/plotsync-sub001/pkg/errors"
	"github.com/Indusoptima/plotsync-sub001/pkg/observability"
	"github.com/Indusoptima/plotsync-sub001/pkg/openings"
	"github.com/Indusoptima/plotsync-sub001/pkg/plan"
	"github.com/Indusoptima/plotsync-sub001/pkg/rules"
	"github.com/Indusoptima/plotsync-sub001/pkg/solver"
	"github.com/Indusoptima/plotsync-sub001/pkg/validate"
	"github.com/Indusoptima/plotsync-sub001/pkg/walls"
)

// Runner encapsulates solve execution with caching.
// Both CLI and API use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache, the shared rule engine, and
// the logger - it doesn't store solve results. Multiple goroutines can
// safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Engine *rules.Engine
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// A nil keyer falls back to the DefaultKeyer, a nil cache disables caching,
// and a nil engine uses the built-in rule thresholds.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Engine: rules.New(nil),
		Logger: logger,
	}
}

// cachedSolve is the cache entry shape for a complete solve.
type cachedSolve struct {
	Floorplan  plan.Floorplan   `json:"floorplan"`
	Report     validate.Report  `json:"report"`
	Breakdown  solver.Breakdown `json:"breakdown"`
	Variations []Variation      `json:"variations"`
	TimedOut   bool             `json:"timed_out,omitempty"`
	Stats      Stats            `json:"stats"`
}

// Solve runs the complete pipeline for one specification: feasibility
// checks, variation fan-out, structure synthesis, and the validation gate.
// An infeasible specification is the only fatal outcome; validation failures
// are recovered into the returned report.
func (r *Runner) Solve(ctx context.Context, spec *plan.Spec, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if spec == nil {
		return nil, errors.New(errors.ErrCodeInvalidSpec, "nil specification")
	}
	if err := spec.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidSpec, err, "invalid specification")
	}
	logger := r.logger(opts)

	specData, err := plan.MarshalSpec(*spec)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "hash specification")
	}
	specHash := cache.Hash(specData)

	result := &Result{
		RunID:    uuid.NewString(),
		SpecHash: specHash,
	}

	cacheKey := r.Keyer.SolveKey(specHash, opts.keyOpts())
	if !opts.Refresh {
		if entry, ok := r.cachedResult(ctx, cacheKey); ok {
			observability.Cache().OnCacheHit(ctx, "solve")
			result.Floorplan = entry.Floorplan
			result.Report = entry.Report
			result.Breakdown = entry.Breakdown
			result.Variations = entry.Variations
			result.TimedOut = entry.TimedOut
			result.Stats = entry.Stats
			result.CacheInfo.Hit = true
			logger.Debug("solve served from cache", "spec", specHash[:12])
			return result, nil
		}
		observability.Cache().OnCacheMiss(ctx, "solve")
	}

	// Feasibility gates run before any optimization so an impossible spec
	// fails fast instead of burning the iteration budget.
	if err := r.checkFeasibility(spec); err != nil {
		return nil, err
	}

	typology := rules.ClassifyTypology(spec.Envelope.Area(), len(spec.Rooms))
	iterations := opts.Iterations
	if iterations == 0 {
		iterations = typology.IterationBudget()
	}

	start := time.Now()
	observability.Solver().OnSolveStart(ctx, len(spec.Rooms), iterations)

	variations, err := r.runVariations(ctx, spec, opts, iterations)
	if err != nil {
		observability.Solver().OnSolveComplete(ctx, 0, time.Since(start), err)
		return nil, err
	}

	best := variations[0]
	result.Floorplan = best.Floorplan
	result.Report = best.Report
	result.Variations = variations
	result.Stats.Typology = string(typology)
	result.Stats.SolveTime = time.Since(start)
	result.Stats.SeedCost = best.SeedCost
	for _, v := range variations {
		result.Stats.Iterations += v.Iterations
		result.Stats.Accepted += v.Accepted
		if v.TimedOut {
			result.TimedOut = true
		}
	}

	scorer := solver.NewScorer(r.Engine, spec, opts.Weights)
	result.Breakdown = scorer.Score(best.Floorplan.Layout)

	observability.Solver().OnSolveComplete(ctx, best.Cost, result.Stats.SolveTime, nil)
	logger.Info("solved floorplan",
		"rooms", len(spec.Rooms),
		"typology", typology,
		"cost", best.Cost,
		"valid", best.Report.FinalValid,
		"duration", result.Stats.SolveTime)

	r.storeResult(ctx, cacheKey, result)
	return result, nil
}

// Validate re-runs the multi-pass gate over a floorplan produced elsewhere,
// so exporters and renderers can re-check geometry they did not compute.
func (r *Runner) Validate(ctx context.Context, fp *plan.Floorplan) validate.Report {
	report := validate.New(r.Engine).Run(fp)
	observability.Solver().OnValidateComplete(ctx, report.ErrorCount(), report.WarningCount(), report.FinalValid)
	return report
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// runVariations fans out the requested variations as independent workers.
// Each variation derives its own seed and runs over its own layout copies;
// the only shared state is the read-only rule engine. Results come back
// sorted by cost, then seed for stability.
func (r *Runner) runVariations(ctx context.Context, spec *plan.Spec, opts Options, iterations int) ([]Variation, error) {
	out := make([]Variation, opts.Variations)
	errs := make([]error, opts.Variations)

	var wg sync.WaitGroup
	for i := 0; i < opts.Variations; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			seed := opts.Seed + uint64(idx)
			out[idx], errs[idx] = r.solveOne(ctx, spec, opts, seed, iterations)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Cost != out[j].Cost {
			return out[i].Cost < out[j].Cost
		}
		return out[i].Seed < out[j].Seed
	})
	return out, nil
}

// solveOne runs a single variation: seed placement, annealing, structure
// synthesis, and the validation gate.
func (r *Runner) solveOne(ctx context.Context, spec *plan.Spec, opts Options, seed uint64, iterations int) (Variation, error) {
	seedLayout, err := solver.SeedLayout(r.Engine, spec)
	if err != nil {
		return Variation{}, err
	}

	scorer := solver.NewScorer(r.Engine, spec, opts.Weights)

	annealOpts := solver.AnnealOptions{
		Iterations: iterations,
		Seed:       seed,
	}
	if opts.TimeBudget > 0 {
		annealOpts.Deadline = time.Now().Add(opts.TimeBudget)
	}

	observability.Solver().OnAnnealStart(ctx, seed, iterations)
	annealStart := time.Now()
	res := solver.Anneal(ctx, scorer, seedLayout, annealOpts)
	observability.Solver().OnAnnealComplete(ctx, res.BestBreakdown.Total, res.Accepted, res.TimedOut, time.Since(annealStart))

	ws := walls.Synthesize(spec.Envelope, res.Best)
	ops := openings.Place(r.Engine, spec, res.Best, ws)
	fp := plan.Floorplan{
		Envelope: spec.Envelope,
		Layout:   res.Best,
		Walls:    ws,
		Openings: ops,
	}

	// The gate may auto-correct small containment drift; its report always
	// reflects the floorplan as returned.
	report := validate.New(r.Engine).Run(&fp)
	observability.Solver().OnValidateComplete(ctx, report.ErrorCount(), report.WarningCount(), report.FinalValid)

	return Variation{
		Seed:       seed,
		Floorplan:  fp,
		Report:     report,
		Cost:       res.BestBreakdown.Total,
		SeedCost:   res.SeedCost,
		Iterations: res.Iterations,
		Accepted:   res.Accepted,
		TimedOut:   res.TimedOut,
	}, nil
}

// checkFeasibility re-validates the specification's area distribution and
// adjacency demands, independent of whatever validation the caller did.
func (r *Runner) checkFeasibility(spec *plan.Spec) error {
	areas := make(map[string]float64, len(spec.Rooms))
	for _, room := range spec.Rooms {
		areas[room.ID] = room.TargetArea
	}
	issues := r.Engine.ValidateAreaDistribution(spec.Envelope.Area(), areas)
	issues = append(issues, r.Engine.ValidateAdjacencyFeasibility(r.Engine.EffectiveEdges(spec))...)

	for _, issue := range issues {
		if issue.IsError() {
			return errors.New(errors.ErrCodeInfeasibleSpec, "%s", issue.String())
		}
	}
	return nil
}

// cachedResult loads and decodes a cached solve.
func (r *Runner) cachedResult(ctx context.Context, key string) (cachedSolve, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		return cachedSolve{}, false
	}
	var entry cachedSolve
	if err := json.Unmarshal(data, &entry); err != nil {
		// Corrupt entry - drop it and recompute.
		_ = r.Cache.Delete(ctx, key)
		return cachedSolve{}, false
	}
	return entry, true
}

// storeResult writes a solve result to the cache, retrying transient
// backend failures.
func (r *Runner) storeResult(ctx context.Context, key string, result *Result) {
	entry := cachedSolve{
		Floorplan:  result.Floorplan,
		Report:     result.Report,
		Breakdown:  result.Breakdown,
		Variations: result.Variations,
		TimedOut:   result.TimedOut,
		Stats:      result.Stats,
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	err = cache.RetryWithBackoff(ctx, func() error {
		return r.Cache.Set(ctx, key, data, cache.TTLSolve)
	})
	if err != nil {
		r.Logger.Warn("cache write failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, "solve", len(data))
}

// logger returns the per-call logger, falling back to the runner's.
func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	return r.Logger
}
