// Package rules implements the architectural rule engine: per-room-type
// standards, mandatory adjacency preferences, area-distribution checks, and
// building typology classification.
//
// The engine is a single immutable table constructed once per process and
// shared by reference. No method writes to it, so one Engine serves any
// number of concurrent solves.
//
// All functions are pure lookups or validations; they report findings as
// Issue values (errors and warnings) instead of returning Go errors, so a
// caller can collect the complete picture of what is wrong with a
// specification in one call.
//
// Numeric thresholds (circulation allowance, underutilization ratio, maximum
// must-adjacencies per room) are empirically chosen and tunable via Config,
// which can be loaded from a TOML file.
package rules
