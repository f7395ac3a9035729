package plan

import "math"

// =============================================================================
// Walls - Derived, Immutable Once Synthesized
// =============================================================================

// Default wall thicknesses in meters.
const (
	ExteriorWallThickness = 0.25
	InteriorWallThickness = 0.12
)

// WallSegment is a straight wall between two endpoints. Interior walls carry
// the one or two room IDs they bound; exterior walls follow the envelope
// boundary. Segments are derived from a frozen Layout and never mutated.
type WallSegment struct {
	ID        string   `json:"id" bson:"id"`
	A         Point    `json:"a" bson:"a"`
	B         Point    `json:"b" bson:"b"`
	Thickness float64  `json:"thickness" bson:"thickness"`
	Exterior  bool     `json:"exterior" bson:"exterior"`
	Rooms     []string `json:"rooms,omitempty" bson:"rooms,omitempty"`
}

// Length returns the wall's length.
func (w WallSegment) Length() float64 { return w.A.DistanceTo(w.B) }

// Horizontal reports whether the wall runs along the x axis.
func (w WallSegment) Horizontal() bool { return NearlyEqual(w.A.Y, w.B.Y) }

// Vertical reports whether the wall runs along the y axis.
func (w WallSegment) Vertical() bool { return NearlyEqual(w.A.X, w.B.X) }

// Direction returns the unit direction vector from A to B.
// Zero-length walls return a zero vector.
func (w WallSegment) Direction() Point {
	l := w.Length()
	if l < Epsilon {
		return Point{}
	}
	return Point{(w.B.X - w.A.X) / l, (w.B.Y - w.A.Y) / l}
}

// PointAt returns the point a fraction t (0 at A, 1 at B) along the wall.
func (w WallSegment) PointAt(t float64) Point {
	return Point{
		X: w.A.X + (w.B.X-w.A.X)*t,
		Y: w.A.Y + (w.B.Y-w.A.Y)*t,
	}
}

// Bounds reports whether the wall bounds the room with the given ID.
func (w WallSegment) BoundsRoom(roomID string) bool {
	for _, id := range w.Rooms {
		if id == roomID {
			return true
		}
	}
	return false
}

// =============================================================================
// Openings - Doors and Windows
// =============================================================================

// OpeningKind distinguishes doors from windows.
type OpeningKind string

// Opening kinds.
const (
	OpeningDoor   OpeningKind = "door"
	OpeningWindow OpeningKind = "window"
)

// Opening is a door or window hosted on a wall segment. Offset is the
// distance of the opening's center from the wall's A endpoint, measured
// along the wall.
type Opening struct {
	ID       string      `json:"id" bson:"id"`
	WallID   string      `json:"wall_id" bson:"wall_id"`
	Kind     OpeningKind `json:"kind" bson:"kind"`
	Offset   float64     `json:"offset" bson:"offset"`
	Width    float64     `json:"width" bson:"width"`
	Rotation float64     `json:"rotation" bson:"rotation"`
	Entry    bool        `json:"entry,omitempty" bson:"entry,omitempty"`

	// Arc is populated for doors only. It is a recomputable projection of
	// the opening, never the source of truth.
	Arc *DoorArc `json:"arc,omitempty" bson:"arc,omitempty"`
}

// IsDoor reports whether the opening is a door.
func (o Opening) IsDoor() bool { return o.Kind == OpeningDoor }

// HingeSide identifies which wall endpoint the door swing pivots from.
type HingeSide string

// Hinge sides.
const (
	HingeStart HingeSide = "start"
	HingeEnd   HingeSide = "end"
)

// DoorArc is the fully resolved swing geometry of a door: a quarter circle
// centered at the hinge point. Start and end angles are radians measured
// counterclockwise from the positive x axis.
type DoorArc struct {
	Hinge      Point     `json:"hinge" bson:"hinge"`
	SweepEnd   Point     `json:"sweep_end" bson:"sweep_end"`
	Radius     float64   `json:"radius" bson:"radius"`
	StartAngle float64   `json:"start_angle" bson:"start_angle"`
	EndAngle   float64   `json:"end_angle" bson:"end_angle"`
	Clockwise  bool      `json:"clockwise" bson:"clockwise"`
	Side       HingeSide `json:"side" bson:"side"`
}

// SweepAngle returns the absolute sweep, which is always a quarter turn.
func (a DoorArc) SweepAngle() float64 { return math.Pi / 2 }

// =============================================================================
// Floorplan - Frozen Solve Output
// =============================================================================

// Floorplan is the immutable output of a solve: the frozen room layout plus
// the synthesized walls and placed openings. Downstream consumers (renderers,
// exporters) receive this value and nothing else.
type Floorplan struct {
	Envelope Envelope      `json:"envelope" bson:"envelope"`
	Layout   Layout        `json:"layout" bson:"layout"`
	Walls    []WallSegment `json:"walls" bson:"walls"`
	Openings []Opening     `json:"openings" bson:"openings"`
}

// Wall returns the wall with the given ID, or false if absent.
func (f *Floorplan) Wall(id string) (WallSegment, bool) {
	for _, w := range f.Walls {
		if w.ID == id {
			return w, true
		}
	}
	return WallSegment{}, false
}

// Doors returns all door openings.
func (f *Floorplan) Doors() []Opening {
	var out []Opening
	for _, o := range f.Openings {
		if o.IsDoor() {
			out = append(out, o)
		}
	}
	return out
}

// Windows returns all window openings.
func (f *Floorplan) Windows() []Opening {
	var out []Opening
	for _, o := range f.Openings {
		if o.Kind == OpeningWindow {
			out = append(out, o)
		}
	}
	return out
}

// EntryDoor returns the entry door, or false when none is placed.
func (f *Floorplan) EntryDoor() (Opening, bool) {
	for _, o := range f.Openings {
		if o.IsDoor() && o.Entry {
			return o, true
		}
	}
	return Opening{}, false
}
