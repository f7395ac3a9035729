// Package cache provides pluggable result caching for floorplan solves.
//
// Four backends are available:
//   - file: directory-backed cache for CLI usage
//   - redis: Redis-backed cache for multi-instance deployments
//   - mongo: MongoDB-backed cache when solves should live next to documents
//   - null: no-op cache for tests or when caching is disabled
//
// Keys are derived from content hashes by a Keyer, so identical inputs hit
// the same entry regardless of backend.
package cache

import (
	"context"
	"time"
)

// Default entry lifetimes. Solve results are deterministic for a given spec
// and options, so long TTLs are safe; they exist to bound storage, not to
// guard freshness.
const (
	TTLSolve  = 7 * 24 * time.Hour
	TTLReport = 24 * time.Hour
)

// Cache is the storage interface shared by all backends. Implementations
// must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was present
	// and unexpired; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A zero ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// SolveKeyOpts are the solve options that affect the cached result. Two
// solves with the same specification but different options must not share an
// entry.
type SolveKeyOpts struct {
	Seed       uint64
	Iterations int
	Variations int

	// WeightsHash fingerprints any scorer weight overrides; empty for
	// defaults.
	WeightsHash string
}

// Keyer derives cache keys from content hashes.
type Keyer interface {
	// SpecKey identifies a validated specification by its content hash.
	SpecKey(specHash string) string

	// SolveKey identifies a solve result by spec hash and options.
	SolveKey(specHash string, opts SolveKeyOpts) string

	// ReportKey identifies a validation report by the floorplan's hash.
	ReportKey(planHash string) string
}

// DefaultKeyer derives keys by hashing the inputs under a stable prefix.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// SpecKey generates a key for a validated specification.
func (k *DefaultKeyer) SpecKey(specHash string) string {
	return hashKey("spec", specHash)
}

// SolveKey generates a key for a solve result.
func (k *DefaultKeyer) SolveKey(specHash string, opts SolveKeyOpts) string {
	return hashKey("solve", specHash, opts.Seed, opts.Iterations, opts.Variations, opts.WeightsHash)
}

// ReportKey generates a key for a validation report.
func (k *DefaultKeyer) ReportKey(planHash string) string {
	return hashKey("report", planHash)
}
