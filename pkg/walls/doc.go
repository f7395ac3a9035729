// Package walls derives the wall graph from a frozen room layout. Exterior
// walls trace the envelope boundary, split per bounding room so downstream
// opening placement can reason about which rooms own exterior frontage.
// Interior walls are emitted for every collinear overlapping span between two
// room edges, and any room edge left uncovered receives a single-room wall so
// that no boundary leaks.
//
// Output is deterministic: segments are canonically ordered before IDs are
// assigned, so identical layouts always yield identical wall graphs.
package walls
