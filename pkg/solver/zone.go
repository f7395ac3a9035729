package solver

import (
	"math"
	"slices"

	"github.com/Indusoptima/plotsync-sub001/pkg/errors"
	"github.com/Indusoptima/plotsync-sub001/pkg/plan"
	"github.com/Indusoptima/plotsync-sub001/pkg/rules"
)

// zoneOrder is the band order starting at the entry face: public rooms greet
// the entry, service rooms sit behind them, private rooms are farthest away.
var zoneOrder = []plan.Zone{plan.ZonePublic, plan.ZoneService, plan.ZonePrivate}

// SeedLayout builds the initial layout: zone bands sized proportionally to
// each zone's summed target area, rooms shelf-packed into their band by
// descending target area. The result is feasible but rough — small gaps and
// overlaps are tolerated and left for the optimizer to resolve.
//
// Returns an INFEASIBLE_SPEC error when the sum of minimum room areas,
// scaled by the feasibility margin, cannot fit the envelope.
func SeedLayout(engine *rules.Engine, spec *plan.Spec) (plan.Layout, error) {
	cfg := engine.Config()
	required := engine.MinRequiredArea(spec.Rooms) * cfg.FeasibilityMargin
	if required > spec.Envelope.Area() {
		return plan.Layout{}, errors.New(errors.ErrCodeInfeasibleSpec,
			"minimum room area %.1f m² (with %.0f%% margin) exceeds envelope area %.1f m²",
			required, (cfg.FeasibilityMargin-1)*100, spec.Envelope.Area())
	}

	byZone := groupByZone(spec.Rooms)
	bands := zoneBands(spec, byZone)

	layout := plan.NewLayout()
	for _, zone := range zoneOrder {
		rooms := byZone[zone]
		if len(rooms) == 0 {
			continue
		}
		packBand(engine, layout.Rooms, rooms, bands[zone])
	}
	return layout, nil
}

// groupByZone splits rooms by zone, each group sorted by descending target
// area (ties broken by ID for determinism).
func groupByZone(rooms []plan.RoomSpec) map[plan.Zone][]plan.RoomSpec {
	byZone := make(map[plan.Zone][]plan.RoomSpec)
	for _, r := range rooms {
		byZone[r.Zone()] = append(byZone[r.Zone()], r)
	}
	for zone := range byZone {
		slices.SortFunc(byZone[zone], func(a, b plan.RoomSpec) int {
			if a.TargetArea != b.TargetArea {
				if a.TargetArea > b.TargetArea {
					return -1
				}
				return 1
			}
			if a.ID < b.ID {
				return -1
			}
			if a.ID > b.ID {
				return 1
			}
			return 0
		})
	}
	return byZone
}

// zoneBands slices the envelope into one band per occupied zone, ordered
// from the entry face and sized proportionally to the zone's target area.
func zoneBands(spec *plan.Spec, byZone map[plan.Zone][]plan.RoomSpec) map[plan.Zone]plan.Rect {
	// Accumulate in fixed band order. Float addition is not associative, so
	// summing in map-iteration order would let band fractions drift in the
	// last ulps between identical calls.
	var total float64
	sums := make(map[plan.Zone]float64)
	for _, zone := range zoneOrder {
		for _, r := range byZone[zone] {
			sums[zone] += r.TargetArea
			total += r.TargetArea
		}
	}
	if total <= 0 {
		total = 1
	}

	bounds := spec.Envelope.Bounds()
	bands := make(map[plan.Zone]plan.Rect, len(byZone))
	offset := 0.0
	for _, zone := range zoneOrder {
		frac := sums[zone] / total
		if frac == 0 {
			continue
		}
		bands[zone] = bandSlice(bounds, spec.Envelope.EntryFaceOrDefault(), offset, frac)
		offset += frac
	}
	return bands
}

// bandSlice cuts the fraction [offset, offset+frac] of the envelope,
// measured from the entry face inward.
func bandSlice(bounds plan.Rect, entry plan.EntryFace, offset, frac float64) plan.Rect {
	switch entry {
	case plan.FaceNorth:
		h := bounds.Height * frac
		return plan.Rect{X: 0, Y: bounds.Height - (offset+frac)*bounds.Height, Width: bounds.Width, Height: h}
	case plan.FaceEast:
		w := bounds.Width * frac
		return plan.Rect{X: bounds.Width - (offset+frac)*bounds.Width, Y: 0, Width: w, Height: bounds.Height}
	case plan.FaceWest:
		w := bounds.Width * frac
		return plan.Rect{X: offset * bounds.Width, Y: 0, Width: w, Height: bounds.Height}
	default: // south
		h := bounds.Height * frac
		return plan.Rect{X: 0, Y: offset * bounds.Height, Width: bounds.Width, Height: h}
	}
}

// packBand shelf-packs rooms into a band. Each room starts near a square of
// its target area, clamped to its type's minimum dimension and the band
// height. When a shelf fills up, packing moves to the next shelf; the last
// shelf may spill past the band, which the optimizer corrects later.
func packBand(engine *rules.Engine, placements map[string]plan.RoomPlacement, rooms []plan.RoomSpec, band plan.Rect) {
	x := band.Left()
	shelfY := band.Bottom()
	shelfH := 0.0

	for _, r := range rooms {
		std := engine.Standard(r.Type)
		h := clamp(math.Sqrt(r.TargetArea), std.MinDimension, max(band.Height, std.MinDimension))
		w := max(r.TargetArea/h, std.MinDimension)

		if x+w > band.Right()+plan.Epsilon && x > band.Left()+plan.Epsilon {
			// Shelf full: open the next one.
			shelfY += shelfH
			x = band.Left()
			shelfH = 0
		}

		placements[r.ID] = plan.RoomPlacement{
			RoomID: r.ID,
			Type:   r.Type,
			Rect:   plan.Rect{X: x, Y: shelfY, Width: w, Height: h},
		}
		x += w
		shelfH = max(shelfH, h)
	}
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
