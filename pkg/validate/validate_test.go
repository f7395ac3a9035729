package validate

import (
	"testing"

	"github.com/Indusoptima/plotsync-sub001/pkg/openings"
	"github.com/Indusoptima/plotsync-sub001/pkg/plan"
	"github.com/Indusoptima/plotsync-sub001/pkg/rules"
	"github.com/Indusoptima/plotsync-sub001/pkg/walls"
)

func place(id string, typ plan.RoomType, x, y, w, h float64) plan.RoomPlacement {
	return plan.RoomPlacement{RoomID: id, Type: typ, Rect: plan.Rect{X: x, Y: y, Width: w, Height: h}}
}

// goodFloorplan builds a hand-laid two-room plan that passes every gate.
func goodFloorplan(engine *rules.Engine) *plan.Floorplan {
	spec := &plan.Spec{
		Rooms: []plan.RoomSpec{
			{ID: "living", Type: plan.RoomLiving, TargetArea: 40},
			{ID: "bed", Type: plan.RoomBedroom, TargetArea: 40},
		},
		Envelope: plan.Envelope{Width: 10, Height: 8},
	}
	layout := plan.NewLayout()
	layout.Rooms["living"] = place("living", plan.RoomLiving, 0, 0, 5, 8)
	layout.Rooms["bed"] = place("bed", plan.RoomBedroom, 5, 0, 5, 8)

	ws := walls.Synthesize(spec.Envelope, layout)
	ops := openings.Place(engine, spec, layout, ws)
	return &plan.Floorplan{Envelope: spec.Envelope, Layout: layout, Walls: ws, Openings: ops}
}

func hasIssue(r Report, rule string) bool {
	for _, i := range r.Issues() {
		if i.Rule == rule {
			return true
		}
	}
	return false
}

func TestRunValidFloorplan(t *testing.T) {
	engine := rules.New(nil)
	fp := goodFloorplan(engine)

	report := New(engine).Run(fp)

	if !report.FinalValid {
		for _, i := range report.Issues() {
			t.Logf("issue: %s", i)
		}
		t.Fatal("hand-laid floorplan failed validation")
	}
	want := []string{PassStructural, PassNonOverlap, PassContainment, PassConnectivity, PassCompliance}
	if len(report.Passes) != len(want) {
		t.Fatalf("passes = %d, want %d", len(report.Passes), len(want))
	}
	for i, p := range report.Passes {
		if p.Name != want[i] {
			t.Errorf("pass %d = %s, want %s", i, p.Name, want[i])
		}
	}
}

func TestRunDetectsOverlap(t *testing.T) {
	engine := rules.New(nil)
	fp := goodFloorplan(engine)
	p := fp.Layout.Rooms["bed"]
	p.Rect.X = 3 // slides two meters into the living room
	fp.Layout.Rooms["bed"] = p

	report := New(engine).Run(fp)

	if report.FinalValid {
		t.Error("overlapping rooms passed validation")
	}
	if !hasIssue(report, rules.RuleRoomOverlap) {
		t.Error("no ROOM_OVERLAP issue reported")
	}
}

func TestContainmentAutoCorrect(t *testing.T) {
	engine := rules.New(nil)
	fp := goodFloorplan(engine)
	p := fp.Layout.Rooms["living"]
	p.Rect.X = -0.03 // just past the boundary, within correction range
	fp.Layout.Rooms["living"] = p

	report := New(engine).Run(fp)

	var containment PassReport
	for _, pass := range report.Passes {
		if pass.Name == PassContainment {
			containment = pass
		}
	}
	if !containment.Corrected {
		t.Error("small protrusion was not auto-corrected")
	}
	if containment.Errors() != 0 {
		t.Error("auto-corrected protrusion still reported as error")
	}
	if got := fp.Layout.Rooms["living"].Rect.X; got < 0 {
		t.Errorf("room left at x=%v after correction", got)
	}
	if !report.FinalValid {
		t.Error("corrected floorplan should be valid")
	}
}

func TestContainmentLargeProtrusion(t *testing.T) {
	engine := rules.New(nil)
	fp := goodFloorplan(engine)
	p := fp.Layout.Rooms["living"]
	p.Rect.X = -1
	fp.Layout.Rooms["living"] = p

	report := New(engine).Run(fp)

	if report.FinalValid {
		t.Error("room a meter outside the envelope passed validation")
	}
	if !hasIssue(report, rules.RuleOutsideEnvelope) {
		t.Error("no OUTSIDE_ENVELOPE issue reported")
	}
}

func TestConnectivityMissingEntry(t *testing.T) {
	engine := rules.New(nil)
	fp := goodFloorplan(engine)

	var kept []plan.Opening
	for _, o := range fp.Openings {
		if !o.Entry {
			kept = append(kept, o)
		}
	}
	fp.Openings = kept

	report := New(engine).Run(fp)

	if report.FinalValid {
		t.Error("floorplan without entry door passed validation")
	}
	if !hasIssue(report, rules.RuleMissingEntry) {
		t.Error("no MISSING_ENTRY issue reported")
	}
}

func TestConnectivityMissingDoor(t *testing.T) {
	engine := rules.New(nil)
	fp := goodFloorplan(engine)

	// Strip every door that reaches the bedroom.
	var kept []plan.Opening
	for _, o := range fp.Openings {
		if o.IsDoor() {
			if w, ok := fp.Wall(o.WallID); ok && w.BoundsRoom("bed") {
				continue
			}
		}
		kept = append(kept, o)
	}
	fp.Openings = kept

	report := New(engine).Run(fp)

	if report.FinalValid {
		t.Error("doorless room passed validation")
	}
	if !hasIssue(report, rules.RuleMissingDoor) {
		t.Error("no MISSING_DOOR issue reported")
	}
}

func TestStructuralDegenerateRoom(t *testing.T) {
	engine := rules.New(nil)
	fp := goodFloorplan(engine)
	p := fp.Layout.Rooms["bed"]
	p.Rect.Width = 0
	fp.Layout.Rooms["bed"] = p

	report := New(engine).Run(fp)

	if report.FinalValid {
		t.Error("degenerate room passed validation")
	}
	if !hasIssue(report, rules.RuleDegenerateRoom) {
		t.Error("no DEGENERATE_ROOM issue reported")
	}
}

func TestComplianceBathroomNeedsWindow(t *testing.T) {
	engine := rules.New(nil)
	spec := &plan.Spec{
		Rooms: []plan.RoomSpec{
			{ID: "living", Type: plan.RoomLiving, TargetArea: 40},
			{ID: "bath", Type: plan.RoomBathroom, TargetArea: 40},
		},
		Envelope: plan.Envelope{Width: 10, Height: 8},
	}
	layout := plan.NewLayout()
	layout.Rooms["living"] = place("living", plan.RoomLiving, 0, 0, 5, 8)
	layout.Rooms["bath"] = place("bath", plan.RoomBathroom, 5, 0, 5, 8)
	ws := walls.Synthesize(spec.Envelope, layout)
	ops := openings.Place(engine, spec, layout, ws)

	// Strip every window fronting only the bathroom. It is a habitable room,
	// so the compliance pass must flag the missing glazing.
	bathWalls := map[string]bool{}
	for _, w := range ws {
		if len(w.Rooms) == 1 && w.Rooms[0] == "bath" {
			bathWalls[w.ID] = true
		}
	}
	var kept []plan.Opening
	for _, o := range ops {
		if o.Kind == plan.OpeningWindow && bathWalls[o.WallID] {
			continue
		}
		kept = append(kept, o)
	}
	fp := &plan.Floorplan{Envelope: spec.Envelope, Layout: layout, Walls: ws, Openings: kept}

	report := New(engine).Run(fp)

	if report.FinalValid {
		t.Error("windowless bathroom passed validation")
	}
	if !hasIssue(report, rules.RuleMissingWindow) {
		t.Error("no MISSING_WINDOW issue reported")
	}
}

func TestComplianceCorridorWidth(t *testing.T) {
	engine := rules.New(nil)
	fp := goodFloorplan(engine)
	fp.Layout.Rooms["hall"] = place("hall", plan.RoomHallway, 0, 0, 0.8, 5)

	report := New(engine).Run(fp)

	if !hasIssue(report, rules.RuleCorridorWidth) {
		t.Error("no CORRIDOR_WIDTH issue for a 0.8 m corridor")
	}
}

func TestComplianceDoorWidth(t *testing.T) {
	engine := rules.New(nil)
	fp := goodFloorplan(engine)
	for i, o := range fp.Openings {
		if o.IsDoor() && !o.Entry {
			fp.Openings[i].Width = 0.4 // below minimum
			break
		}
	}

	report := New(engine).Run(fp)

	if !hasIssue(report, rules.RuleDoorWidth) {
		t.Error("no DOOR_WIDTH issue for a 0.4 m door")
	}
}
