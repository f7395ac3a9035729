package walls

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Indusoptima/plotsync-sub001/pkg/plan"
)

// snapTol is the coordinate tolerance for treating two room edges (or a room
// edge and the envelope boundary) as collinear. Post-optimization layouts are
// near-exact but not bit-exact on shared edges.
const snapTol = 0.05

// minSpan is the shortest wall segment worth emitting. Slivers below this are
// artifacts of tolerance arithmetic, not walls.
const minSpan = 0.01

// span is a 1D interval along a wall line.
type span struct {
	lo, hi float64
}

func (s span) length() float64 { return s.hi - s.lo }

// wallLine identifies the infinite line a segment lies on: horizontal at a y
// coordinate or vertical at an x coordinate.
type wallLine struct {
	horizontal bool
	at         float64
}

// protoWall is a segment before merging and ID assignment.
type protoWall struct {
	line     wallLine
	s        span
	exterior bool
	rooms    []string
}

// Synthesize derives the full wall graph for a frozen layout within the given
// envelope. The result fully encloses every room boundary.
func Synthesize(env plan.Envelope, layout plan.Layout) []plan.WallSegment {
	bounds := env.Bounds()
	ids := layout.RoomIDs()

	var protos []protoWall

	// Interior party walls, one per overlapping span between two room edges.
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			protos = append(protos, partyWalls(layout.Rooms[a], layout.Rooms[b])...)
		}
	}

	// Per-room walls: exterior spans where an edge sits on the envelope
	// boundary, single-room interior walls for everything the party walls
	// and the boundary do not cover.
	for _, id := range ids {
		protos = append(protos, roomEdgeWalls(layout.Rooms[id], bounds, protos)...)
	}

	// Untagged exterior walls close the envelope ring wherever no room edge
	// reaches the boundary.
	protos = append(protos, boundaryGapWalls(bounds, protos)...)

	merged := mergeCollinear(protos)
	return finalize(merged)
}

// partyWalls returns the interior wall spans where the two placements abut.
func partyWalls(a, b plan.RoomPlacement) []protoWall {
	rooms := []string{a.RoomID, b.RoomID}
	sort.Strings(rooms)

	var out []protoWall
	add := func(line wallLine, lo, hi float64) {
		if hi-lo >= minSpan {
			out = append(out, protoWall{line: line, s: span{lo, hi}, rooms: rooms})
		}
	}

	// Vertical abutments: a's right against b's left and vice versa.
	if nearly(a.Rect.Right(), b.Rect.Left()) {
		lo, hi := plan.Overlap1DSpan(a.Rect.Bottom(), a.Rect.Top(), b.Rect.Bottom(), b.Rect.Top())
		add(wallLine{horizontal: false, at: a.Rect.Right()}, lo, hi)
	}
	if nearly(b.Rect.Right(), a.Rect.Left()) {
		lo, hi := plan.Overlap1DSpan(a.Rect.Bottom(), a.Rect.Top(), b.Rect.Bottom(), b.Rect.Top())
		add(wallLine{horizontal: false, at: b.Rect.Right()}, lo, hi)
	}
	// Horizontal abutments: a's top against b's bottom and vice versa.
	if nearly(a.Rect.Top(), b.Rect.Bottom()) {
		lo, hi := plan.Overlap1DSpan(a.Rect.Left(), a.Rect.Right(), b.Rect.Left(), b.Rect.Right())
		add(wallLine{horizontal: true, at: a.Rect.Top()}, lo, hi)
	}
	if nearly(b.Rect.Top(), a.Rect.Bottom()) {
		lo, hi := plan.Overlap1DSpan(a.Rect.Left(), a.Rect.Right(), b.Rect.Left(), b.Rect.Right())
		add(wallLine{horizontal: true, at: b.Rect.Top()}, lo, hi)
	}
	return out
}

// roomEdge describes one side of a room rectangle.
type roomEdge struct {
	line       wallLine
	s          span
	onBoundary bool
}

// roomEdgeWalls emits, for each edge of the room, an exterior wall where the
// edge lies on the envelope boundary and single-room interior walls over any
// interval no party wall covers.
func roomEdgeWalls(p plan.RoomPlacement, bounds plan.Rect, party []protoWall) []protoWall {
	r := p.Rect
	edges := []roomEdge{
		{wallLine{true, r.Bottom()}, span{r.Left(), r.Right()}, nearly(r.Bottom(), bounds.Bottom())},
		{wallLine{true, r.Top()}, span{r.Left(), r.Right()}, nearly(r.Top(), bounds.Top())},
		{wallLine{false, r.Left()}, span{r.Bottom(), r.Top()}, nearly(r.Left(), bounds.Left())},
		{wallLine{false, r.Right()}, span{r.Bottom(), r.Top()}, nearly(r.Right(), bounds.Right())},
	}

	var out []protoWall
	for _, e := range edges {
		if e.onBoundary {
			out = append(out, protoWall{
				line:     e.line,
				s:        e.s,
				exterior: true,
				rooms:    []string{p.RoomID},
			})
			continue
		}
		var covered []span
		for _, w := range party {
			if sameLine(w.line, e.line) && containsRoom(w.rooms, p.RoomID) {
				covered = append(covered, w.s)
			}
		}
		for _, gap := range subtract(e.s, covered) {
			out = append(out, protoWall{line: e.line, s: gap, rooms: []string{p.RoomID}})
		}
	}
	return out
}

// boundaryGapWalls closes the envelope ring over boundary intervals no room
// edge reaches.
func boundaryGapWalls(bounds plan.Rect, protos []protoWall) []protoWall {
	faces := []roomEdge{
		{wallLine{true, bounds.Bottom()}, span{bounds.Left(), bounds.Right()}, true},
		{wallLine{true, bounds.Top()}, span{bounds.Left(), bounds.Right()}, true},
		{wallLine{false, bounds.Left()}, span{bounds.Bottom(), bounds.Top()}, true},
		{wallLine{false, bounds.Right()}, span{bounds.Bottom(), bounds.Top()}, true},
	}

	var out []protoWall
	for _, f := range faces {
		var covered []span
		for _, w := range protos {
			if w.exterior && sameLine(w.line, f.line) {
				covered = append(covered, w.s)
			}
		}
		for _, gap := range subtract(f.s, covered) {
			out = append(out, protoWall{line: f.line, s: gap, exterior: true})
		}
	}
	return out
}

// mergeCollinear merges touching segments that lie on the same line and carry
// the same exterior flag and room set.
func mergeCollinear(protos []protoWall) []protoWall {
	groups := make(map[string][]protoWall)
	for _, w := range protos {
		groups[groupKey(w)] = append(groups[groupKey(w)], w)
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []protoWall
	for _, k := range keys {
		g := groups[k]
		sort.Slice(g, func(i, j int) bool { return g[i].s.lo < g[j].s.lo })
		cur := g[0]
		for _, w := range g[1:] {
			if w.s.lo <= cur.s.hi+snapTol {
				if w.s.hi > cur.s.hi {
					cur.s.hi = w.s.hi
				}
				continue
			}
			out = append(out, cur)
			cur = w
		}
		out = append(out, cur)
	}
	return out
}

// finalize orders segments canonically and assigns sequential IDs, so that a
// given layout always produces the same wall graph.
func finalize(protos []protoWall) []plan.WallSegment {
	sort.Slice(protos, func(i, j int) bool {
		a, b := protos[i], protos[j]
		if a.exterior != b.exterior {
			return a.exterior
		}
		if a.line.horizontal != b.line.horizontal {
			return a.line.horizontal
		}
		if a.line.at != b.line.at {
			return a.line.at < b.line.at
		}
		if a.s.lo != b.s.lo {
			return a.s.lo < b.s.lo
		}
		return roomKey(a.rooms) < roomKey(b.rooms)
	})

	out := make([]plan.WallSegment, 0, len(protos))
	for i, w := range protos {
		seg := plan.WallSegment{
			ID:       fmt.Sprintf("wall-%03d", i+1),
			Exterior: w.exterior,
			Rooms:    w.rooms,
		}
		if w.exterior {
			seg.Thickness = plan.ExteriorWallThickness
		} else {
			seg.Thickness = plan.InteriorWallThickness
		}
		if w.line.horizontal {
			seg.A = plan.Point{X: w.s.lo, Y: w.line.at}
			seg.B = plan.Point{X: w.s.hi, Y: w.line.at}
		} else {
			seg.A = plan.Point{X: w.line.at, Y: w.s.lo}
			seg.B = plan.Point{X: w.line.at, Y: w.s.hi}
		}
		out = append(out, seg)
	}
	return out
}

// subtract removes the covered spans from base and returns the leftover gaps
// longer than minSpan.
func subtract(base span, covered []span) []span {
	sort.Slice(covered, func(i, j int) bool { return covered[i].lo < covered[j].lo })

	gaps := []span{}
	cursor := base.lo
	for _, c := range covered {
		if c.hi <= cursor {
			continue
		}
		if c.lo > cursor+minSpan {
			gaps = append(gaps, span{cursor, min(c.lo, base.hi)})
		}
		cursor = max(cursor, c.hi)
		if cursor >= base.hi {
			return gaps
		}
	}
	if base.hi-cursor > minSpan {
		gaps = append(gaps, span{cursor, base.hi})
	}
	return gaps
}

func sameLine(a, b wallLine) bool {
	return a.horizontal == b.horizontal && nearly(a.at, b.at)
}

func nearly(a, b float64) bool {
	d := a - b
	return d < snapTol && d > -snapTol
}

func containsRoom(rooms []string, id string) bool {
	for _, r := range rooms {
		if r == id {
			return true
		}
	}
	return false
}

func groupKey(w protoWall) string {
	axis := "v"
	if w.line.horizontal {
		axis = "h"
	}
	ext := "i"
	if w.exterior {
		ext = "e"
	}
	return fmt.Sprintf("%s:%.3f:%s:%s", axis, w.line.at, ext, roomKey(w.rooms))
}

func roomKey(rooms []string) string { return strings.Join(rooms, "|") }
