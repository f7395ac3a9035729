package rules

import "github.com/Indusoptima/plotsync-sub001/pkg/plan"

// AdjacencyWeight returns the preference weight between two room types.
// The lookup is symmetric; unspecified pairs get the default weight.
func (e *Engine) AdjacencyWeight(a, b plan.RoomType) int {
	for _, edge := range e.adjacencies {
		if edge.Matches(string(a), string(b)) {
			return edge.Weight
		}
	}
	return e.cfg.DefaultAdjacencyWeight
}

// AdjacencyKind returns the preference kind between two room types,
// or false when no mandatory entry exists for the pair.
func (e *Engine) AdjacencyKind(a, b plan.RoomType) (plan.AdjacencyKind, bool) {
	for _, edge := range e.adjacencies {
		if edge.Matches(string(a), string(b)) {
			return edge.Kind, true
		}
	}
	return "", false
}

// EffectiveEdges resolves the adjacency preferences for a specification:
// the caller's explicit room-ID edges take precedence, and the mandatory
// type-level table fills in every room pair it covers that the caller left
// unspecified. The result uses room IDs on both ends.
func (e *Engine) EffectiveEdges(spec *plan.Spec) []plan.AdjacencyEdge {
	out := make([]plan.AdjacencyEdge, 0, len(spec.Adjacencies))
	covered := func(a, b string) bool {
		for _, edge := range out {
			if edge.Matches(a, b) {
				return true
			}
		}
		return false
	}

	// Explicit edges first. Edges naming room types instead of IDs are
	// expanded to every matching room pair.
	for _, edge := range spec.Adjacencies {
		for _, resolved := range expandEdge(edge, spec.Rooms) {
			if !covered(resolved.A, resolved.B) {
				out = append(out, resolved)
			}
		}
	}

	// Type-level mandatory table for uncovered pairs.
	for _, edge := range e.adjacencies {
		for i, ra := range spec.Rooms {
			for _, rb := range spec.Rooms[i+1:] {
				if !edge.Matches(string(ra.Type), string(rb.Type)) {
					continue
				}
				if !covered(ra.ID, rb.ID) {
					out = append(out, plan.AdjacencyEdge{
						A: ra.ID, B: rb.ID, Weight: edge.Weight, Kind: edge.Kind,
					})
				}
			}
		}
	}

	return out
}

// expandEdge resolves an edge whose endpoints may be room types into
// room-ID edges. Endpoints that already match a room ID pass through.
func expandEdge(edge plan.AdjacencyEdge, rooms []plan.RoomSpec) []plan.AdjacencyEdge {
	idsFor := func(endpoint string) []string {
		for _, r := range rooms {
			if r.ID == endpoint {
				return []string{endpoint}
			}
		}
		var ids []string
		for _, r := range rooms {
			if string(r.Type) == endpoint {
				ids = append(ids, r.ID)
			}
		}
		return ids
	}

	var out []plan.AdjacencyEdge
	for _, a := range idsFor(edge.A) {
		for _, b := range idsFor(edge.B) {
			if a == b {
				continue
			}
			out = append(out, plan.AdjacencyEdge{A: a, B: b, Weight: edge.Weight, Kind: edge.Kind})
		}
	}
	return out
}
