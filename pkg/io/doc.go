// Package io provides file import and export for specifications and
// floorplans.
//
// # Overview
//
// This package is the boundary between the solver and the filesystem. It
// reads room specifications from JSON or TOML and writes frozen floorplans
// back out as JSON. The formats are designed for:
//
//   - Hand-written specifications: TOML for humans, JSON for tools
//   - Integration with external tools that produce or consume floorplan data
//   - Round-trip fidelity: a solved floorplan re-imports identically and can
//     be re-validated without re-solving
//
// # Specification Format
//
// A specification names the rooms, the envelope, and optional adjacency
// preferences. The TOML form:
//
//	[envelope]
//	width = 12.0
//	height = 9.0
//	entry = "south"
//
//	[[rooms]]
//	id = "living"
//	type = "living"
//	target_area = 28.0
//
//	[[adjacencies]]
//	a = "kitchen"
//	b = "dining"
//	kind = "must"
//	weight = 8
//
// The JSON form mirrors the same field names. [ImportSpec] selects the
// decoder from the file extension; [ReadSpec] and [ReadSpecTOML] decode from
// any io.Reader.
//
// Both paths run the specification's structural validation after decoding, so
// a successfully imported specification always has unique room IDs and a
// non-degenerate envelope. Deeper feasibility (area distribution, adjacency
// demands) is the rule engine's job and happens inside a solve.
//
// # Floorplan Format
//
// Floorplans are exported as indented JSON carrying the envelope, the frozen
// layout, the wall graph, and all openings with their resolved door arcs.
// Use [ExportFloorplan] to write a file, [WriteFloorplan] for any io.Writer,
// and [ImportFloorplan] to read one back for re-validation or rendering.
package io
