// Package plan defines the core value types of the PlotSync layout engine:
// room specifications, the building envelope, candidate layouts, and the
// derived wall/opening structure of a finished floorplan.
//
// The types split into three lifecycle groups:
//
//   - Specification types (RoomSpec, Envelope, AdjacencyEdge, SolveOptions)
//     are created once by the caller and treated as read-only input.
//
//   - Layout is the unit of mutation during optimization. Every perturbation
//     produces a new Layout value via Clone; no shared Layout is ever edited
//     in place, which is what makes parallel variation solves safe.
//
//   - Structure types (WallSegment, Opening, DoorArc) are derived exactly
//     once from the frozen Layout and are immutable thereafter.
//
// All coordinates are in meters with the envelope's lower-left corner at the
// origin, x increasing to the right and y increasing upward. Serialization
// uses JSON for the external contract; the bson tags exist for the Mongo
// cache backend.
package plan
