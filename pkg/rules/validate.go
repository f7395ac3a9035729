package rules

import "github.com/Indusoptima/plotsync-sub001/pkg/plan"

// Dims carries a room's placed width and height for validation.
type Dims struct {
	Width  float64
	Height float64
}

// AspectRatio returns the long/short side ratio of the dimensions.
func (d Dims) AspectRatio() float64 {
	return plan.Rect{Width: d.Width, Height: d.Height}.AspectRatio()
}

// ValidateRoom checks area and dimensions of one room against its type's
// standard and returns all findings.
func (e *Engine) ValidateRoom(t plan.RoomType, area float64, dims Dims) []Issue {
	std := e.Standard(t)
	var issues []Issue

	if area < std.MinArea {
		issues = Errorf(issues, RuleMinArea, "",
			"%s area %.1f m² is below the %.1f m² minimum", t, area, std.MinArea)
	}
	if dims.Width < std.MinDimension || dims.Height < std.MinDimension {
		issues = Errorf(issues, RuleMinDimension, "",
			"%s dimensions %.2f×%.2f m fall below the %.2f m minimum", t, dims.Width, dims.Height, std.MinDimension)
	}
	if std.MaxArea > 0 && area > std.MaxArea {
		issues = Warnf(issues, RuleMaxArea, "",
			"%s area %.1f m² exceeds the %.1f m² maximum", t, area, std.MaxArea)
	}
	if ar := dims.AspectRatio(); ar < std.MinAspect || ar > std.MaxAspect {
		issues = Warnf(issues, RuleAspectRatio, "",
			"%s aspect ratio %.2f outside acceptable range [%.1f, %.1f]", t, ar, std.MinAspect, std.MaxAspect)
	}

	return issues
}

// ValidateAreaDistribution checks the summed room areas against the total
// available area. The circulation allowance is added to the room sum before
// the overflow comparison; underutilization is advisory only.
func (e *Engine) ValidateAreaDistribution(totalArea float64, roomAreas map[string]float64) []Issue {
	var sum float64
	for _, a := range roomAreas {
		sum += a
	}

	var issues []Issue
	withCirculation := sum * (1 + e.cfg.CirculationRatio)
	if withCirculation > totalArea {
		issues = Errorf(issues, RuleAreaOverflow, "",
			"room areas %.1f m² plus circulation exceed total area %.1f m²", sum, totalArea)
	} else if sum < totalArea*e.cfg.UnderutilizationRatio {
		issues = Warnf(issues, RuleAreaUnderutilization, "",
			"room areas %.1f m² use less than %.0f%% of total area %.1f m²",
			sum, e.cfg.UnderutilizationRatio*100, totalArea)
	}
	return issues
}

// ValidateAdjacencyFeasibility checks that no room demands more "must"
// adjacencies than a rectangular room's wall faces can realize.
func (e *Engine) ValidateAdjacencyFeasibility(edges []plan.AdjacencyEdge) []Issue {
	mustCount := make(map[string]int)
	for _, edge := range edges {
		if edge.Kind != plan.AdjacencyMust {
			continue
		}
		mustCount[edge.A]++
		mustCount[edge.B]++
	}

	var issues []Issue
	for room, n := range mustCount {
		if n > e.cfg.MaxMustAdjacencies {
			issues = Errorf(issues, RuleExcessMustAdjacencies, room,
				"%d must-adjacencies exceed the %d realizable wall faces", n, e.cfg.MaxMustAdjacencies)
		}
	}
	return issues
}
