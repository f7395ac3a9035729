package openings

import (
	"math"

	"github.com/Indusoptima/plotsync-sub001/pkg/plan"
)

// OpeningEndpoints returns the opening's two endpoints and center on the host
// wall. t is the fractional position of the center along the wall (0 at A,
// 1 at B); endpoints sit half a width to either side along the wall's
// direction vector.
func OpeningEndpoints(wall plan.WallSegment, t, width float64) (p1, p2, center plan.Point) {
	center = wall.PointAt(t)
	d := wall.Direction()
	half := width / 2
	p1 = plan.Point{X: center.X - d.X*half, Y: center.Y - d.Y*half}
	p2 = plan.Point{X: center.X + d.X*half, Y: center.Y + d.Y*half}
	return p1, p2, center
}

// DetermineHingeSide resolves which end of the opening the swing pivots from.
// Entry doors hinge at the wall's start endpoint, the conventional right-hand
// swing. Interior doors hinge on the endpoint adjacent to the more public of
// the two bounded rooms, so the leaf sweeps toward the private side and
// shields its sightline. When zone classification is unavailable or the rooms
// rank equally, the start endpoint is the fallback.
func DetermineHingeSide(entry bool, wall plan.WallSegment, layout plan.Layout) plan.HingeSide {
	if entry || len(wall.Rooms) != 2 {
		return plan.HingeStart
	}
	a, okA := layout.Rooms[wall.Rooms[0]]
	b, okB := layout.Rooms[wall.Rooms[1]]
	if !okA || !okB {
		return plan.HingeStart
	}
	rankA := a.Type.Zone().PrivacyRank()
	rankB := b.Type.Zone().PrivacyRank()
	if rankB < rankA {
		return plan.HingeEnd
	}
	return plan.HingeStart
}

// ComputeArc resolves the quarter-circle swing of a door opening. The hinge
// sits on the opening endpoint matching side. The closed leaf lies along the
// wall from the hinge toward the opposite endpoint; the open leaf is that
// direction rotated a quarter turn onto the wall's left-hand side, so the
// sweep endpoint always falls off the wall line. The stored sweep direction
// is clockwise iff the hinge is on the wall's start side.
func ComputeArc(wall plan.WallSegment, offset, width float64, side plan.HingeSide) *plan.DoorArc {
	length := wall.Length()
	if length < plan.Epsilon || width <= 0 {
		return nil
	}

	p1, p2, _ := OpeningEndpoints(wall, offset/length, width)
	d := wall.Direction()
	normal := plan.Point{X: -d.Y, Y: d.X}

	var hinge plan.Point
	var closedAngle float64
	clockwise := side == plan.HingeStart
	if clockwise {
		hinge = p1
		closedAngle = math.Atan2(d.Y, d.X)
	} else {
		hinge = p2
		closedAngle = math.Atan2(-d.Y, -d.X)
	}

	openAngle := closedAngle + math.Pi/2
	if !clockwise {
		openAngle = closedAngle - math.Pi/2
	}

	return &plan.DoorArc{
		Hinge:      hinge,
		SweepEnd:   plan.Point{X: hinge.X + normal.X*width, Y: hinge.Y + normal.Y*width},
		Radius:     width,
		StartAngle: closedAngle,
		EndAngle:   openAngle,
		Clockwise:  clockwise,
		Side:       side,
	}
}
