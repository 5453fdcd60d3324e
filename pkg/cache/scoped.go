package cache

// ScopedKeyer wraps a Keyer with a prefix so separate chart sources get
// separate cache namespaces. The built-in catalog and each manifest file
// use distinct scopes, which keeps `capviz cache clear` and key listings
// understandable per source.
//
// Example usage:
//
//	// Keys scoped to one manifest file
//	manifestKeyer := NewScopedKeyer(NewDefaultKeyer(), "manifest:ab12cd34:")
//
//	// Unscoped keys for the built-in catalog
//	catalogKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(specHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(specHash, opts)
}

// DashboardKey generates a prefixed key for dashboard caching.
func (k *ScopedKeyer) DashboardKey(batchHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.DashboardKey(batchHash, opts)
}
