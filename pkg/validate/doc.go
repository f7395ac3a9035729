// Package validate is the final gate on a solved floorplan. It runs five
// ordered, independent passes over the frozen geometry: structural soundness,
// pairwise non-overlap, envelope containment, door-graph connectivity, and
// code compliance. The containment pass may apply a bounded auto-correction,
// which is never accepted without a follow-up check. A floorplan is valid
// only when every pass reports zero errors; warnings are surfaced but do not
// fail the gate.
package validate
