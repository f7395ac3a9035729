// Package openings places doors and windows on a synthesized wall graph and
// resolves each door's swing arc.
//
// Placement is rule-driven: one entry door on the longest exterior wall of a
// public-zone room, one interior door per satisfied must/should adjacency,
// fallback doors so no room is left doorless, and windows on the exterior
// frontage of habitable rooms. The arc calculator is pure geometry and keeps
// the privacy-driven hinge selection separate from any rendering concern.
package openings
