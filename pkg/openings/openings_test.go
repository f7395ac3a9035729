package openings

import (
	"math"
	"reflect"
	"testing"

	"github.com/Indusoptima/plotsync-sub001/pkg/plan"
	"github.com/Indusoptima/plotsync-sub001/pkg/rules"
	"github.com/Indusoptima/plotsync-sub001/pkg/walls"
)

func place(id string, typ plan.RoomType, x, y, w, h float64) plan.RoomPlacement {
	return plan.RoomPlacement{RoomID: id, Type: typ, Rect: plan.Rect{X: x, Y: y, Width: w, Height: h}}
}

func twoRoomFixture() (*plan.Spec, plan.Layout, []plan.WallSegment) {
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
	return spec, layout, walls.Synthesize(spec.Envelope, layout)
}

func TestPlaceEntryDoor(t *testing.T) {
	engine := rules.New(nil)
	spec, layout, ws := twoRoomFixture()

	openings := Place(engine, spec, layout, ws)

	var entries []plan.Opening
	for _, o := range openings {
		if o.IsDoor() && o.Entry {
			entries = append(entries, o)
		}
	}
	if len(entries) != 1 {
		t.Fatalf("entry doors = %d, want 1", len(entries))
	}

	entry := entries[0]
	var host plan.WallSegment
	for _, w := range ws {
		if w.ID == entry.WallID {
			host = w
		}
	}
	if !host.Exterior {
		t.Error("entry door not on an exterior wall")
	}
	if !host.BoundsRoom("living") {
		t.Errorf("entry door on wall of rooms %v, want the public living room", host.Rooms)
	}
	// The living room's longest exterior frontage is its full-height west wall.
	if !plan.NearlyEqual(host.Length(), 8) {
		t.Errorf("entry host length = %v, want the longest frontage 8", host.Length())
	}
	if entry.Arc == nil {
		t.Fatal("entry door has no resolved arc")
	}
	if entry.Arc.Side != plan.HingeStart {
		t.Errorf("entry hinge side = %s, want start", entry.Arc.Side)
	}
}

func TestEveryRoomHasDoor(t *testing.T) {
	engine := rules.New(nil)
	spec, layout, ws := twoRoomFixture()

	openings := Place(engine, spec, layout, ws)

	wallByID := map[string]plan.WallSegment{}
	for _, w := range ws {
		wallByID[w.ID] = w
	}
	for id := range layout.Rooms {
		has := false
		for _, o := range openings {
			if o.IsDoor() && wallByID[o.WallID].BoundsRoom(id) {
				has = true
			}
		}
		if !has {
			t.Errorf("room %s has no door", id)
		}
	}
}

func TestWindowsOnHabitableFrontage(t *testing.T) {
	engine := rules.New(nil)
	spec, layout, ws := twoRoomFixture()

	openings := Place(engine, spec, layout, ws)

	wallByID := map[string]plan.WallSegment{}
	for _, w := range ws {
		wallByID[w.ID] = w
	}

	windowed := map[string]bool{}
	for _, o := range openings {
		if o.Kind != plan.OpeningWindow {
			continue
		}
		host := wallByID[o.WallID]
		if !host.Exterior {
			t.Errorf("window %s on interior wall %s", o.ID, o.WallID)
		}
		if o.Width < host.Length()*engine.Config().WindowWallFraction-plan.Epsilon {
			t.Errorf("window %s width %.2f below wall fraction", o.ID, o.Width)
		}
		windowed[o.WallID] = true
	}

	// Both rooms are habitable, so every sufficiently long exterior wall
	// fronting them carries a window.
	for _, w := range ws {
		if !w.Exterior || len(w.Rooms) == 0 {
			continue
		}
		minWindow := max(w.Length()*engine.Config().WindowWallFraction, minWindowWidth)
		if w.Length() < minWindow+2*cornerClearance {
			continue
		}
		if !windowed[w.ID] {
			t.Errorf("exterior wall %s (rooms %v) has no window", w.ID, w.Rooms)
		}
	}
}

func TestBathroomFrontageGetsWindow(t *testing.T) {
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

	openings := Place(engine, spec, layout, ws)

	wallByID := map[string]plan.WallSegment{}
	for _, w := range ws {
		wallByID[w.ID] = w
	}

	// Bathrooms need natural light like any other habitable room; only
	// utility and garage frontages go without windows.
	found := false
	for _, o := range openings {
		if o.Kind != plan.OpeningWindow {
			continue
		}
		if reflect.DeepEqual(wallByID[o.WallID].Rooms, []string{"bath"}) {
			found = true
		}
	}
	if !found {
		t.Error("bathroom exterior frontage has no window")
	}
}

func TestNoWindowsForServiceRooms(t *testing.T) {
	engine := rules.New(nil)
	spec := &plan.Spec{
		Rooms: []plan.RoomSpec{
			{ID: "living", Type: plan.RoomLiving, TargetArea: 40},
			{ID: "garage", Type: plan.RoomGarage, TargetArea: 40},
		},
		Envelope: plan.Envelope{Width: 10, Height: 8},
	}
	layout := plan.NewLayout()
	layout.Rooms["living"] = place("living", plan.RoomLiving, 0, 0, 5, 8)
	layout.Rooms["garage"] = place("garage", plan.RoomGarage, 5, 0, 5, 8)
	ws := walls.Synthesize(spec.Envelope, layout)

	openings := Place(engine, spec, layout, ws)

	wallByID := map[string]plan.WallSegment{}
	for _, w := range ws {
		wallByID[w.ID] = w
	}
	for _, o := range openings {
		if o.Kind == plan.OpeningWindow {
			host := wallByID[o.WallID]
			if reflect.DeepEqual(host.Rooms, []string{"garage"}) {
				t.Errorf("window %s on garage-only frontage", o.ID)
			}
		}
	}
}

func TestAdjacencyDoorAtMidpoint(t *testing.T) {
	engine := rules.New(nil)
	spec := &plan.Spec{
		Rooms: []plan.RoomSpec{
			{ID: "kitchen", Type: plan.RoomKitchen, TargetArea: 20},
			{ID: "dining", Type: plan.RoomDining, TargetArea: 20},
		},
		Envelope: plan.Envelope{Width: 10, Height: 8},
	}
	layout := plan.NewLayout()
	layout.Rooms["kitchen"] = place("kitchen", plan.RoomKitchen, 0, 0, 5, 8)
	layout.Rooms["dining"] = place("dining", plan.RoomDining, 5, 0, 5, 8)
	ws := walls.Synthesize(spec.Envelope, layout)

	openings := Place(engine, spec, layout, ws)

	wallByID := map[string]plan.WallSegment{}
	for _, w := range ws {
		wallByID[w.ID] = w
	}

	// The kitchen-dining must edge gets a door on the shared party wall,
	// centered on it.
	found := false
	for _, o := range openings {
		if !o.IsDoor() || o.Entry {
			continue
		}
		host := wallByID[o.WallID]
		if host.Exterior || !host.BoundsRoom("kitchen") || !host.BoundsRoom("dining") {
			continue
		}
		found = true
		if math.Abs(o.Offset-host.Length()/2) > plan.Epsilon {
			t.Errorf("adjacency door offset = %.2f, want midpoint %.2f", o.Offset, host.Length()/2)
		}
	}
	if !found {
		t.Error("no door placed for the kitchen-dining must adjacency")
	}
}

func TestPlaceDeterministic(t *testing.T) {
	engine := rules.New(nil)
	spec, layout, ws := twoRoomFixture()

	first := Place(engine, spec, layout, ws)
	second := Place(engine, spec, layout, ws)

	if !reflect.DeepEqual(first, second) {
		t.Error("opening placement differs between identical runs")
	}
}

func TestComputeArcQuarterSwing(t *testing.T) {
	wall := plan.WallSegment{
		ID: "wall-001",
		A:  plan.Point{X: 0, Y: 0},
		B:  plan.Point{X: 10, Y: 0},
	}

	// Door of width 1 at the very start of the wall, hinged at start: the
	// hinge sits on the wall's start endpoint and the leaf sweeps off the
	// wall line.
	arc := ComputeArc(wall, 0.5, 1, plan.HingeStart)
	if arc == nil {
		t.Fatal("no arc computed")
	}
	if !plan.NearlyEqual(arc.Hinge.X, 0) || !plan.NearlyEqual(arc.Hinge.Y, 0) {
		t.Errorf("hinge = %+v, want (0,0)", arc.Hinge)
	}
	if arc.SweepEnd.Y <= 0 {
		t.Errorf("sweep end y = %v, want off the wall line (positive)", arc.SweepEnd.Y)
	}
	if arc.Radius != 1 {
		t.Errorf("radius = %v, want the door width", arc.Radius)
	}
	if !arc.Clockwise {
		t.Error("start-hinged doors swing clockwise")
	}
	if got := arc.SweepAngle(); !plan.NearlyEqual(got, math.Pi/2) {
		t.Errorf("sweep angle = %v, want quarter turn", got)
	}

	end := ComputeArc(wall, 9.5, 1, plan.HingeEnd)
	if !plan.NearlyEqual(end.Hinge.X, 10) {
		t.Errorf("end hinge = %+v, want x=10", end.Hinge)
	}
	if end.Clockwise {
		t.Error("end-hinged doors swing counterclockwise")
	}
}

func TestDetermineHingeSide(t *testing.T) {
	layout := plan.NewLayout()
	layout.Rooms["living"] = place("living", plan.RoomLiving, 0, 0, 5, 8)
	layout.Rooms["bed"] = place("bed", plan.RoomBedroom, 5, 0, 5, 8)

	tests := []struct {
		name  string
		entry bool
		rooms []string
		want  plan.HingeSide
	}{
		{"EntryAlwaysStart", true, []string{"bed", "living"}, plan.HingeStart},
		{"PublicFirstKeepsStart", false, []string{"living", "bed"}, plan.HingeStart},
		{"PrivateFirstFlipsToEnd", false, []string{"bed", "living"}, plan.HingeEnd},
		{"UnknownRoomFallsBack", false, []string{"bed", "ghost"}, plan.HingeStart},
		{"SingleRoomFallsBack", false, []string{"bed"}, plan.HingeStart},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wall := plan.WallSegment{A: plan.Point{X: 5}, B: plan.Point{X: 5, Y: 8}, Rooms: tt.rooms}
			if got := DetermineHingeSide(tt.entry, wall, layout); got != tt.want {
				t.Errorf("hinge side = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestOpeningEndpoints(t *testing.T) {
	wall := plan.WallSegment{A: plan.Point{X: 0, Y: 0}, B: plan.Point{X: 10, Y: 0}}

	p1, p2, center := OpeningEndpoints(wall, 0.5, 2)
	if !plan.NearlyEqual(center.X, 5) {
		t.Errorf("center = %+v, want x=5", center)
	}
	if !plan.NearlyEqual(p1.X, 4) || !plan.NearlyEqual(p2.X, 6) {
		t.Errorf("endpoints = %+v / %+v, want x=4 and x=6", p1, p2)
	}
}
