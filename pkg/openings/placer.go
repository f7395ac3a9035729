package openings

import (
	"fmt"
	"math"

	"github.com/Indusoptima/plotsync-sub001/pkg/plan"
	"github.com/Indusoptima/plotsync-sub001/pkg/rules"
)

// cornerClearance keeps door openings away from wall corners.
const cornerClearance = 0.2

// minWindowWidth is the narrowest window worth placing.
const minWindowWidth = 0.6

// Place positions doors and windows on the wall graph for a frozen layout.
// The result carries resolved swing arcs on every door and is deterministic
// for a given layout and wall graph.
func Place(engine *rules.Engine, spec *plan.Spec, layout plan.Layout, ws []plan.WallSegment) []plan.Opening {
	cfg := engine.Config()
	p := &placer{
		engine:    engine,
		layout:    layout,
		walls:     ws,
		doorWidth: (cfg.MinDoorWidth + cfg.MaxDoorWidth) / 2,
		hasDoor:   map[string]bool{},
	}

	p.placeEntry(cfg.MaxDoorWidth)
	p.placeAdjacencyDoors(engine.EffectiveEdges(spec))
	p.placeFallbackDoors()
	p.placeWindows(cfg.WindowWallFraction)
	return p.out
}

type placer struct {
	engine    *rules.Engine
	layout    plan.Layout
	walls     []plan.WallSegment
	doorWidth float64

	out     []plan.Opening
	doorSeq int
	winSeq  int
	hasDoor map[string]bool
}

// placeEntry puts exactly one entry door on the longest exterior wall bounding
// a public-zone room. Ties break on wall ID so placement is reproducible.
func (p *placer) placeEntry(width float64) {
	var best plan.WallSegment
	found := false
	for _, w := range p.walls {
		if !w.Exterior || len(w.Rooms) == 0 {
			continue
		}
		public := false
		for _, id := range w.Rooms {
			if r, ok := p.layout.Rooms[id]; ok && r.Type.Zone() == plan.ZonePublic {
				public = true
			}
		}
		if !public {
			continue
		}
		if !found || w.Length() > best.Length() ||
			(w.Length() == best.Length() && w.ID < best.ID) {
			best = w
			found = true
		}
	}
	if !found {
		return
	}
	p.addDoor(best, width, true)
}

// placeAdjacencyDoors puts one interior door at the midpoint of the shared
// wall of every must/should adjacency that the layout realizes.
func (p *placer) placeAdjacencyDoors(edges []plan.AdjacencyEdge) {
	for _, e := range edges {
		if e.Kind == plan.AdjacencyAvoid {
			continue
		}
		if w, ok := p.sharedWall(e.A, e.B); ok {
			p.addDoor(w, p.doorWidth, false)
		}
	}
}

// placeFallbackDoors guarantees every room at least one door: rooms still
// doorless after adjacency placement get one on their longest interior party
// wall, reaching for any bounding wall when no party wall exists.
func (p *placer) placeFallbackDoors() {
	for _, id := range p.layout.RoomIDs() {
		if p.hasDoor[id] {
			continue
		}
		var best plan.WallSegment
		found := false
		consider := func(w plan.WallSegment) {
			if !w.BoundsRoom(id) {
				return
			}
			if !found || w.Length() > best.Length() {
				best = w
				found = true
			}
		}
		for _, w := range p.walls {
			if !w.Exterior && len(w.Rooms) == 2 {
				consider(w)
			}
		}
		if !found {
			for _, w := range p.walls {
				consider(w)
			}
		}
		if found {
			p.addDoor(best, p.doorWidth, false)
		}
	}
}

// placeWindows puts one window on each exterior wall fronting a habitable
// room, sized to a fraction of the hosting wall and centered on it.
func (p *placer) placeWindows(wallFraction float64) {
	for _, w := range p.walls {
		if !w.Exterior || len(w.Rooms) == 0 {
			continue
		}
		habitable := false
		for _, id := range w.Rooms {
			if r, ok := p.layout.Rooms[id]; ok && r.Type.Habitable() {
				habitable = true
			}
		}
		if !habitable {
			continue
		}
		width := max(w.Length()*wallFraction, minWindowWidth)
		if width+2*cornerClearance > w.Length() {
			continue
		}
		p.winSeq++
		p.out = append(p.out, plan.Opening{
			ID:       fmt.Sprintf("window-%03d", p.winSeq),
			WallID:   w.ID,
			Kind:     plan.OpeningWindow,
			Offset:   w.Length() / 2,
			Width:    width,
			Rotation: wallRotation(w),
		})
	}
}

// addDoor places a door at the wall midpoint, keeping corner clearance, and
// resolves its swing arc. On short wall fragments the door narrows down to
// the code minimum before giving up.
func (p *placer) addDoor(w plan.WallSegment, width float64, entry bool) {
	length := w.Length()
	if avail := length - 2*cornerClearance; avail < width {
		if avail < p.engine.Config().MinDoorWidth {
			return
		}
		width = avail
	}
	offset := clampOffset(length/2, width, length)

	side := DetermineHingeSide(entry, w, p.layout)
	p.doorSeq++
	p.out = append(p.out, plan.Opening{
		ID:       fmt.Sprintf("door-%03d", p.doorSeq),
		WallID:   w.ID,
		Kind:     plan.OpeningDoor,
		Offset:   offset,
		Width:    width,
		Rotation: wallRotation(w),
		Entry:    entry,
		Arc:      ComputeArc(w, offset, width, side),
	})
	for _, id := range w.Rooms {
		p.hasDoor[id] = true
	}
}

// sharedWall returns the longest interior wall bounding both rooms.
func (p *placer) sharedWall(a, b string) (plan.WallSegment, bool) {
	var best plan.WallSegment
	found := false
	for _, w := range p.walls {
		if w.Exterior || !w.BoundsRoom(a) || !w.BoundsRoom(b) {
			continue
		}
		if !found || w.Length() > best.Length() {
			best = w
			found = true
		}
	}
	return best, found
}

// clampOffset pulls a center offset inward so the opening keeps clearance
// from both corners.
func clampOffset(offset, width, length float64) float64 {
	lo := cornerClearance + width/2
	hi := length - cornerClearance - width/2
	if lo > hi {
		return length / 2
	}
	return min(max(offset, lo), hi)
}

// wallRotation returns the wall's direction angle for opening orientation.
func wallRotation(w plan.WallSegment) float64 {
	d := w.Direction()
	if d.X == 0 && d.Y == 0 {
		return 0
	}
	return angleOf(d)
}

func angleOf(d plan.Point) float64 {
	return math.Atan2(d.Y, d.X)
}
