package plan

import "errors"

var (
	// ErrEmptyRoomID is returned by Spec.Validate when a room has no ID.
	ErrEmptyRoomID = errors.New("room ID must not be empty")

	// ErrDuplicateRoomID is returned by Spec.Validate when two rooms share an ID.
	ErrDuplicateRoomID = errors.New("duplicate room ID")

	// ErrEmptyEnvelope is returned by Spec.Validate when the envelope has a
	// non-positive dimension.
	ErrEmptyEnvelope = errors.New("envelope must have positive dimensions")
)

// =============================================================================
// Room Types and Zones
// =============================================================================

// RoomType is the closed set of supported room kinds. Unrecognized values
// deserialize fine and are handled by the RoomTypeUnknown arm everywhere the
// type is switched on.
type RoomType string

// Supported room types.
const (
	RoomBedroom  RoomType = "bedroom"
	RoomBathroom RoomType = "bathroom"
	RoomKitchen  RoomType = "kitchen"
	RoomLiving   RoomType = "living"
	RoomDining   RoomType = "dining"
	RoomHallway  RoomType = "hallway"
	RoomStudy    RoomType = "study"
	RoomUtility  RoomType = "utility"
	RoomGarage   RoomType = "garage"
	RoomBalcony  RoomType = "balcony"

	// RoomTypeUnknown is the forward-compatibility arm for room types this
	// version does not know. Unknown rooms are placed and validated with
	// generic defaults.
	RoomTypeUnknown RoomType = "unknown"
)

// AllRoomTypes lists every known room type in a stable order.
var AllRoomTypes = []RoomType{
	RoomBedroom, RoomBathroom, RoomKitchen, RoomLiving, RoomDining,
	RoomHallway, RoomStudy, RoomUtility, RoomGarage, RoomBalcony,
}

// Known reports whether t is one of the supported room types.
func (t RoomType) Known() bool {
	switch t {
	case RoomBedroom, RoomBathroom, RoomKitchen, RoomLiving, RoomDining,
		RoomHallway, RoomStudy, RoomUtility, RoomGarage, RoomBalcony:
		return true
	default:
		return false
	}
}

// Habitable reports whether rooms of this type require natural light
// (and therefore windows on exterior walls). Only utility and garage
// spaces are exempt.
func (t RoomType) Habitable() bool {
	switch t {
	case RoomUtility, RoomGarage:
		return false
	default:
		return true
	}
}

// Zone is the coarse public/private/service grouping used for spatial
// ordering inside the envelope.
type Zone string

// Zone classifications.
const (
	ZonePublic  Zone = "public"
	ZonePrivate Zone = "private"
	ZoneService Zone = "service"
)

// Zone returns the zone classification derived from the room type.
// Unknown types default to the public zone so they end up near the entry.
func (t RoomType) Zone() Zone {
	switch t {
	case RoomBedroom, RoomStudy:
		return ZonePrivate
	case RoomKitchen, RoomBathroom, RoomUtility, RoomGarage:
		return ZoneService
	case RoomLiving, RoomDining, RoomHallway, RoomBalcony:
		return ZonePublic
	default:
		return ZonePublic
	}
}

// PrivacyRank orders zones from most public (0) to most private (2).
// Door swing direction is chosen so doors open toward the higher rank.
func (z Zone) PrivacyRank() int {
	switch z {
	case ZonePublic:
		return 0
	case ZoneService:
		return 1
	case ZonePrivate:
		return 2
	default:
		return 0
	}
}

// =============================================================================
// Specification Input
// =============================================================================

// RoomSpec describes one requested room: its identity, type, and target area
// in square meters. The zone classification is derived from the type.
type RoomSpec struct {
	ID         string   `json:"id" bson:"id"`
	Type       RoomType `json:"type" bson:"type"`
	TargetArea float64  `json:"target_area" bson:"target_area"`
}

// Zone returns the zone classification of the room.
func (r RoomSpec) Zone() Zone { return r.Type.Zone() }

// AdjacencyKind classifies an adjacency preference.
type AdjacencyKind string

// Adjacency preference kinds.
const (
	AdjacencyMust   AdjacencyKind = "must"
	AdjacencyShould AdjacencyKind = "should"
	AdjacencyAvoid  AdjacencyKind = "avoid"
)

// AdjacencyEdge is a symmetric preference that two rooms (by ID) or two room
// types should, may, or must not share a wall. Weight runs 0–10.
type AdjacencyEdge struct {
	A      string        `json:"a" bson:"a"`
	B      string        `json:"b" bson:"b"`
	Weight int           `json:"weight" bson:"weight"`
	Kind   AdjacencyKind `json:"kind" bson:"kind"`
}

// Matches reports whether the edge connects rooms x and y in either order.
func (e AdjacencyEdge) Matches(x, y string) bool {
	return (e.A == x && e.B == y) || (e.A == y && e.B == x)
}

// EntryFace identifies which envelope side carries the building entry.
type EntryFace string

// Envelope faces. South is the bottom edge (y = 0).
const (
	FaceSouth EntryFace = "south"
	FaceNorth EntryFace = "north"
	FaceEast  EntryFace = "east"
	FaceWest  EntryFace = "west"
)

// Envelope is the outer boundary constraining all room placement: an
// axis-aligned rectangle with its lower-left corner at the origin.
type Envelope struct {
	Width  float64   `json:"width" bson:"width"`
	Height float64   `json:"height" bson:"height"`
	Floor  int       `json:"floor,omitempty" bson:"floor,omitempty"`
	Entry  EntryFace `json:"entry,omitempty" bson:"entry,omitempty"`
}

// Bounds returns the envelope as a Rect at the origin.
func (e Envelope) Bounds() Rect { return Rect{Width: e.Width, Height: e.Height} }

// Area returns the envelope's total area.
func (e Envelope) Area() float64 { return e.Width * e.Height }

// EntryFaceOrDefault returns the configured entry face, defaulting to south.
func (e Envelope) EntryFaceOrDefault() EntryFace {
	switch e.Entry {
	case FaceNorth, FaceEast, FaceWest:
		return e.Entry
	default:
		return FaceSouth
	}
}

// Spec bundles the full layout request: rooms, adjacency hints, and envelope.
type Spec struct {
	Rooms       []RoomSpec      `json:"rooms" bson:"rooms"`
	Adjacencies []AdjacencyEdge `json:"adjacencies,omitempty" bson:"adjacencies,omitempty"`
	Envelope    Envelope        `json:"envelope" bson:"envelope"`
}

// Validate performs structural shape checks on the specification: non-empty
// unique room IDs and a non-degenerate envelope. Feasibility of the areas is
// checked separately by the rule engine.
func (s *Spec) Validate() error {
	if s.Envelope.Width <= 0 || s.Envelope.Height <= 0 {
		return ErrEmptyEnvelope
	}
	seen := make(map[string]bool, len(s.Rooms))
	for _, r := range s.Rooms {
		if r.ID == "" {
			return ErrEmptyRoomID
		}
		if seen[r.ID] {
			return ErrDuplicateRoomID
		}
		seen[r.ID] = true
	}
	return nil
}

// Room returns the room spec with the given ID, or false if absent.
func (s *Spec) Room(id string) (RoomSpec, bool) {
	for _, r := range s.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return RoomSpec{}, false
}

// TotalTargetArea returns the sum of all room target areas.
func (s *Spec) TotalTargetArea() float64 {
	var sum float64
	for _, r := range s.Rooms {
		sum += r.TargetArea
	}
	return sum
}
