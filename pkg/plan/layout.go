package plan

import (
	"maps"
	"slices"
)

// =============================================================================
// Layout - Unit of Mutation During Optimization
// =============================================================================

// RoomPlacement is one room's rectangle inside the envelope. A placement is
// owned exclusively by the Layout that contains it; optimizer perturbations
// copy the whole Layout before touching a placement.
type RoomPlacement struct {
	RoomID string   `json:"room_id" bson:"room_id"`
	Type   RoomType `json:"type" bson:"type"`
	Rect   Rect     `json:"rect" bson:"rect"`
}

// Area returns the placed area of the room.
func (p RoomPlacement) Area() float64 { return p.Rect.Area() }

// AspectRatio returns the placed long/short side ratio.
func (p RoomPlacement) AspectRatio() float64 { return p.Rect.AspectRatio() }

// SharedWallLength returns the length of wall the two placements share:
// the 1D overlap of their touching edges when the rectangles abut within tol,
// or zero when they do not touch.
func SharedWallLength(a, b RoomPlacement, tol float64) float64 {
	ar, br := a.Rect, b.Rect
	// Vertical shared edge: a's right against b's left or vice versa.
	if diff := ar.Right() - br.Left(); diff > -tol && diff < tol {
		return Overlap1D(ar.Bottom(), ar.Top(), br.Bottom(), br.Top())
	}
	if diff := br.Right() - ar.Left(); diff > -tol && diff < tol {
		return Overlap1D(ar.Bottom(), ar.Top(), br.Bottom(), br.Top())
	}
	// Horizontal shared edge: a's top against b's bottom or vice versa.
	if diff := ar.Top() - br.Bottom(); diff > -tol && diff < tol {
		return Overlap1D(ar.Left(), ar.Right(), br.Left(), br.Right())
	}
	if diff := br.Top() - ar.Bottom(); diff > -tol && diff < tol {
		return Overlap1D(ar.Left(), ar.Right(), br.Left(), br.Right())
	}
	return 0
}

// Layout maps room IDs to placements, together with the scalar cost the
// scorer last assigned and a generation counter incremented on every
// perturbation. Layout values are replaced wholesale, never shared-mutated.
type Layout struct {
	Rooms      map[string]RoomPlacement `json:"rooms" bson:"rooms"`
	Cost       float64                  `json:"cost" bson:"cost"`
	Generation int                      `json:"generation" bson:"generation"`
}

// NewLayout creates an empty layout.
func NewLayout() Layout {
	return Layout{Rooms: make(map[string]RoomPlacement)}
}

// Clone returns a deep copy with the generation counter advanced.
// Perturbations operate on the clone, leaving the receiver untouched.
func (l Layout) Clone() Layout {
	return Layout{
		Rooms:      maps.Clone(l.Rooms),
		Cost:       l.Cost,
		Generation: l.Generation + 1,
	}
}

// RoomIDs returns all room IDs sorted for deterministic iteration.
func (l Layout) RoomIDs() []string {
	ids := slices.Collect(maps.Keys(l.Rooms))
	slices.Sort(ids)
	return ids
}

// Placements returns placements sorted by room ID.
func (l Layout) Placements() []RoomPlacement {
	out := make([]RoomPlacement, 0, len(l.Rooms))
	for _, id := range l.RoomIDs() {
		out = append(out, l.Rooms[id])
	}
	return out
}

// TotalArea returns the summed placed area of all rooms.
func (l Layout) TotalArea() float64 {
	var sum float64
	for _, p := range l.Rooms {
		sum += p.Area()
	}
	return sum
}
