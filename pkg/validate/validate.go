package validate

import (
	"math"

	"github.com/Indusoptima/plotsync-sub001/pkg/plan"
	"github.com/Indusoptima/plotsync-sub001/pkg/rules"
)

// overlapTol is the acceptable pairwise intersection area between rooms.
const overlapTol = 1e-4

// containTol is how far outside the envelope a room may sit before the
// containment pass raises an error rather than auto-correcting.
const containTol = 0.05

// assumedWindowHeight converts window widths into glazing area for the
// coverage check.
const assumedWindowHeight = 1.2

// Validator runs the multi-pass geometric gate. It holds only the shared
// rule engine and is safe for concurrent use.
type Validator struct {
	engine *rules.Engine
}

// New returns a validator backed by the given rule engine.
func New(engine *rules.Engine) *Validator {
	return &Validator{engine: engine}
}

// Run validates a floorplan in five ordered passes. The containment pass may
// nudge slightly out-of-bounds rooms back inside the envelope, mutating the
// floorplan's layout; the recorded issues always reflect geometry after
// correction. FinalValid is true only when no pass reports an error.
func (v *Validator) Run(fp *plan.Floorplan) Report {
	passes := []PassReport{
		v.structural(fp),
		v.nonOverlap(fp),
		v.containment(fp),
		v.connectivity(fp),
		v.compliance(fp),
	}

	valid := true
	for _, p := range passes {
		if p.Errors() > 0 {
			valid = false
		}
	}
	return Report{Passes: passes, FinalValid: valid}
}

// structural checks each room polygon for degeneracy, re-checks dimensional
// standards, and verifies every room edge is enclosed by walls.
func (v *Validator) structural(fp *plan.Floorplan) PassReport {
	var issues []rules.Issue
	for _, id := range fp.Layout.RoomIDs() {
		p := fp.Layout.Rooms[id]
		r := p.Rect
		if r.Width <= plan.Epsilon || r.Height <= plan.Epsilon ||
			math.IsNaN(r.Width) || math.IsNaN(r.Height) || math.IsInf(r.Width, 0) || math.IsInf(r.Height, 0) {
			issues = rules.Errorf(issues, rules.RuleDegenerateRoom, id,
				"degenerate geometry %.2f x %.2f", r.Width, r.Height)
			continue
		}
		issues = append(issues, v.engine.ValidateRoom(p.Type, p.Area(), rules.Dims{
			Width:  r.Width,
			Height: r.Height,
		})...)
		issues = append(issues, checkEnclosure(id, r, fp.Walls)...)
	}
	return PassReport{Name: PassStructural, Issues: issues}
}

// nonOverlap checks pairwise intersection areas.
func (v *Validator) nonOverlap(fp *plan.Floorplan) PassReport {
	var issues []rules.Issue
	ids := fp.Layout.RoomIDs()
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			area := fp.Layout.Rooms[a].Rect.IntersectionArea(fp.Layout.Rooms[b].Rect)
			if area > overlapTol {
				issues = rules.Errorf(issues, rules.RuleRoomOverlap, a,
					"overlaps %s by %.3f m2", b, area)
			}
		}
	}
	return PassReport{Name: PassNonOverlap, Issues: issues}
}

// containment checks every room against the envelope. Rooms protruding by no
// more than containTol are shifted back inside and the room is re-checked;
// larger protrusions are errors.
func (v *Validator) containment(fp *plan.Floorplan) PassReport {
	bounds := fp.Envelope.Bounds()
	var issues []rules.Issue
	corrected := false

	for _, id := range fp.Layout.RoomIDs() {
		p := fp.Layout.Rooms[id]
		if bounds.ContainsRect(p.Rect, plan.Epsilon) {
			continue
		}
		if bounds.ContainsRect(p.Rect, containTol) {
			p.Rect = nudgeInside(p.Rect, bounds)
			fp.Layout.Rooms[id] = p
			corrected = true
			if !bounds.ContainsRect(p.Rect, plan.Epsilon) {
				issues = rules.Errorf(issues, rules.RuleOutsideEnvelope, id,
					"still outside envelope after correction")
				continue
			}
			issues = rules.Warnf(issues, rules.RuleOutsideEnvelope, id,
				"nudged back inside envelope")
			continue
		}
		issues = rules.Errorf(issues, rules.RuleOutsideEnvelope, id,
			"extends %.3f m2 outside envelope", p.Rect.OutsideArea(bounds))
	}
	return PassReport{Name: PassContainment, Issues: issues, Corrected: corrected}
}

// connectivity walks the door graph from the entry door and reports rooms the
// walk never reaches, plus rooms with no door at all.
func (v *Validator) connectivity(fp *plan.Floorplan) PassReport {
	var issues []rules.Issue

	doorRooms := map[string]bool{}
	adj := map[string][]string{}
	var seeds []string

	for _, o := range fp.Doors() {
		w, ok := fp.Wall(o.WallID)
		if !ok {
			continue
		}
		for _, id := range w.Rooms {
			doorRooms[id] = true
			if o.Entry {
				seeds = append(seeds, id)
			}
		}
		if len(w.Rooms) == 2 {
			adj[w.Rooms[0]] = append(adj[w.Rooms[0]], w.Rooms[1])
			adj[w.Rooms[1]] = append(adj[w.Rooms[1]], w.Rooms[0])
		}
	}

	if len(seeds) == 0 {
		issues = rules.Errorf(issues, rules.RuleMissingEntry, "", "no entry door placed")
	}

	reached := map[string]bool{}
	queue := append([]string(nil), seeds...)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if reached[cur] {
			continue
		}
		reached[cur] = true
		queue = append(queue, adj[cur]...)
	}

	for _, id := range fp.Layout.RoomIDs() {
		if !doorRooms[id] {
			issues = rules.Errorf(issues, rules.RuleMissingDoor, id, "room has no door")
			continue
		}
		if len(seeds) > 0 && !reached[id] {
			issues = rules.Errorf(issues, rules.RuleUnreachableRoom, id,
				"not reachable from the entry door")
		}
	}
	return PassReport{Name: PassConnectivity, Issues: issues}
}

// compliance checks corridor widths, door width ranges, and window coverage.
func (v *Validator) compliance(fp *plan.Floorplan) PassReport {
	cfg := v.engine.Config()
	var issues []rules.Issue

	for _, id := range fp.Layout.RoomIDs() {
		p := fp.Layout.Rooms[id]
		if p.Type == plan.RoomHallway {
			if narrow := min(p.Rect.Width, p.Rect.Height); narrow < cfg.MinCorridorWidth-plan.Epsilon {
				issues = rules.Errorf(issues, rules.RuleCorridorWidth, id,
					"corridor %.2f m narrower than %.2f m", narrow, cfg.MinCorridorWidth)
			}
		}
	}

	for _, o := range fp.Doors() {
		if o.Width < cfg.MinDoorWidth-plan.Epsilon || o.Width > cfg.MaxDoorWidth+plan.Epsilon {
			issues = rules.Errorf(issues, rules.RuleDoorWidth, "",
				"door %s width %.2f outside [%.2f, %.2f]", o.ID, o.Width, cfg.MinDoorWidth, cfg.MaxDoorWidth)
		}
	}

	issues = append(issues, v.windowCoverage(fp, cfg)...)
	return PassReport{Name: PassCompliance, Issues: issues}
}

// windowCoverage verifies each habitable room with exterior frontage has a
// window, and warns when its glazing area falls below the coverage ratio.
func (v *Validator) windowCoverage(fp *plan.Floorplan, cfg rules.Config) []rules.Issue {
	var issues []rules.Issue

	frontage := map[string]bool{}
	for _, w := range fp.Walls {
		if w.Exterior {
			for _, id := range w.Rooms {
				frontage[id] = true
			}
		}
	}

	glazing := map[string]float64{}
	for _, o := range fp.Windows() {
		w, ok := fp.Wall(o.WallID)
		if !ok {
			continue
		}
		for _, id := range w.Rooms {
			glazing[id] += o.Width * assumedWindowHeight
		}
	}

	for _, id := range fp.Layout.RoomIDs() {
		p := fp.Layout.Rooms[id]
		if !p.Type.Habitable() || !frontage[id] {
			continue
		}
		if glazing[id] == 0 {
			issues = rules.Errorf(issues, rules.RuleMissingWindow, id,
				"habitable room with exterior frontage has no window")
			continue
		}
		if glazing[id] < p.Area()*cfg.WindowCoverageRatio {
			issues = rules.Warnf(issues, rules.RuleWindowCoverage, id,
				"glazing %.2f m2 below %.0f%% of floor area", glazing[id], cfg.WindowCoverageRatio*100)
		}
	}
	return issues
}

// checkEnclosure verifies every edge of the room rectangle is covered by wall
// segments.
func checkEnclosure(id string, r plan.Rect, ws []plan.WallSegment) []rules.Issue {
	var issues []rules.Issue
	edges := []struct {
		name       string
		horizontal bool
		at, lo, hi float64
	}{
		{"south", true, r.Bottom(), r.Left(), r.Right()},
		{"north", true, r.Top(), r.Left(), r.Right()},
		{"west", false, r.Left(), r.Bottom(), r.Top()},
		{"east", false, r.Right(), r.Bottom(), r.Top()},
	}
	for _, e := range edges {
		var covered float64
		for _, w := range ws {
			if e.horizontal && w.Horizontal() && math.Abs(w.A.Y-e.at) < containTol {
				covered += plan.Overlap1D(min(w.A.X, w.B.X), max(w.A.X, w.B.X), e.lo, e.hi)
			}
			if !e.horizontal && w.Vertical() && math.Abs(w.A.X-e.at) < containTol {
				covered += plan.Overlap1D(min(w.A.Y, w.B.Y), max(w.A.Y, w.B.Y), e.lo, e.hi)
			}
		}
		if covered < (e.hi-e.lo)-containTol {
			issues = rules.Errorf(issues, rules.RuleWallLeakage, id,
				"%s edge covered %.2f of %.2f m", e.name, covered, e.hi-e.lo)
		}
	}
	return issues
}

// nudgeInside shifts a rectangle the minimal distance back into bounds.
func nudgeInside(r, bounds plan.Rect) plan.Rect {
	r.X = min(max(r.X, bounds.Left()), bounds.Right()-r.Width)
	r.Y = min(max(r.Y, bounds.Bottom()), bounds.Top()-r.Height)
	return r
}
