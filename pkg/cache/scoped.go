package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation, so
// different projects or users sharing one backend never collide.
//
// Example usage:
//
//	// Project-specific keys
//	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "project:villa-a:")
//
//	// Shared keys
//	global := cache.NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SpecKey generates a prefixed specification key.
func (k *ScopedKeyer) SpecKey(specHash string) string {
	return k.prefix + k.inner.SpecKey(specHash)
}

// SolveKey generates a prefixed solve-result key.
func (k *ScopedKeyer) SolveKey(specHash string, opts SolveKeyOpts) string {
	return k.prefix + k.inner.SolveKey(specHash, opts)
}

// ReportKey generates a prefixed validation-report key.
func (k *ScopedKeyer) ReportKey(planHash string) string {
	return k.prefix + k.inner.ReportKey(planHash)
}
