// Package solver turns a room specification into an optimized layout.
//
// Solving runs in two stages. The zone placer partitions the envelope into
// public/service/private bands and shelf-packs rooms into their band,
// producing a feasible-but-rough seed layout. The annealer then refines the
// seed by randomized local search: at each step it perturbs one room
// (translate, resize, swap, or reshape), scores the candidate with the
// multi-objective cost function, and accepts or rejects it under the
// Metropolis criterion with geometrically cooling temperature.
//
// The search is strictly sequential within one solve — each step depends on
// the previously accepted layout — but whole solves are independent: every
// layout is an immutable value and the rule engine is read-only, so callers
// can run any number of variations concurrently.
//
// All randomness flows from one explicitly seeded generator. The same seed
// and inputs reproduce the identical sequence of accept/reject decisions and
// the identical final layout.
package solver
