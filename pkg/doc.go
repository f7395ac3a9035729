// Package pkg provides the core libraries for PlotSync floorplan generation.
//
// # Overview
//
// PlotSync turns a room specification and a rectangular building envelope
// into a validated two-dimensional floorplan: rooms placed without overlap,
// walls synthesized along their edges, and doors and windows positioned with
// resolved swing arcs. The pkg directory is organized into four main areas:
//
//  1. Domain model - [plan] (geometry, specifications, floorplans)
//  2. Rules - [rules] (building-code thresholds, adjacency matrix, typology)
//  3. Solving - [solver], [walls], [openings], [validate]
//  4. Infrastructure - [pipeline], [cache], [errors], [observability], [io]
//
// # Architecture
//
// The typical data flow through PlotSync:
//
//	Specification (JSON/TOML)
//	         ↓
//	    [rules] package (feasibility gates, effective adjacencies)
//	         ↓
//	    [solver] package (zone seeding + simulated annealing)
//	         ↓
//	    [walls] and [openings] packages (structure synthesis)
//	         ↓
//	    [validate] package (multi-pass geometric gate)
//	         ↓
//	    Floorplan JSON output
//
// # Quick Start
//
// Solve a specification through the pipeline:
//
//	import (
//	    "context"
//	    "github.com/Indusoptima/plotsync-sub001/pkg/pipeline"
//	    planio "github.com/Indusoptima/plotsync-sub001/pkg/io"
//	)
//
//	spec, _ := planio.ImportSpec("house.toml")
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Solve(context.Background(), &spec, pipeline.Options{Seed: 42})
//	if err != nil {
//	    // only invalid or infeasible specifications fail
//	}
//	_ = planio.ExportFloorplan(result.Floorplan, "house.floorplan.json")
//
// # Main Packages
//
// [plan] - Geometry primitives (points, rects, interval overlap), the
// specification model (rooms, envelope, adjacency preferences), and the
// frozen floorplan structures (wall segments, openings, door arcs).
//
// [rules] - The rule engine: per-room-type standards, area distribution
// checks with circulation overhead, the default adjacency matrix, typology
// classification, and TOML-configurable thresholds.
//
// [solver] - Zone-banded seed placement and constrained simulated annealing
// under the five-term multi-objective scorer (overlap, adjacency,
// compactness, area fit, envelope fit).
//
// [walls] - Deterministic wall synthesis: party walls on shared room edges,
// exterior walls split per bounding room, and envelope closure.
//
// [openings] - Door and window placement with hinge-side resolution and
// quarter-circle swing arcs.
//
// [validate] - The five-pass gate: structural soundness, non-overlap,
// envelope containment (with bounded auto-correction), door-graph
// connectivity, and code compliance.
//
// [pipeline] - Orchestration of the full solve with caching and variation
// fan-out; shared by CLI and API.
//
// [cache] - Content-addressed result caching with file, redis, mongo, and
// null backends.
//
// [io] - Specification import (JSON/TOML) and floorplan export.
//
// [errors] - Coded errors shared across the module.
//
// [observability] - Hook interfaces for metrics and tracing integration.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/solver/...   # Specific package
//
// [plan]: https://pkg.go.dev/github.com/Indusoptima/plotsync-sub001/pkg/plan
// [rules]: https://pkg.go.dev/github.com/Indusoptima/plotsync-sub001/pkg/rules
// [solver]: https://pkg.go.dev/github.com/Indusoptima/plotsync-sub001/pkg/solver
// [walls]: https://pkg.go.dev/github.com/Indusoptima/plotsync-sub001/pkg/walls
// [openings]: https://pkg.go.dev/github.com/Indusoptima/plotsync-sub001/pkg/openings
// [validate]: https://pkg.go.dev/github.com/Indusoptima/plotsync-sub001/pkg/validate
// [pipeline]: https://pkg.go.dev/github.com/Indusoptima/plotsync-sub001/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/Indusoptima/plotsync-sub001/pkg/cache
// [io]: https://pkg.go.dev/github.com/Indusoptima/plotsync-sub001/pkg/io
// [errors]: https://pkg.go.dev/github.com/Indusoptima/plotsync-sub001/pkg/errors
// [observability]: https://pkg.go.dev/github.com/Indusoptima/plotsync-sub001/pkg/observability
package pkg
