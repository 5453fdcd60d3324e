// Package cache provides artifact caching for rendered charts.
//
// Two backends are available: a file-based cache for CLI usage and a
// Redis-backed cache for shared environments. A NullCache disables
// caching entirely. Keys are derived from the full chart specification,
// so any edit to a spec naturally invalidates its cached artifacts.
package cache

import (
	"context"
	"time"
)

// Default TTLs per content type.
const (
	// TTLArtifact applies to rendered HTML and PNG artifacts. Artifacts
	// are pure functions of the spec hash, so the TTL exists only to
	// bound disk usage.
	TTLArtifact = 7 * 24 * time.Hour

	// TTLDashboard applies to composed dashboard artifacts.
	TTLDashboard = 7 * 24 * time.Hour
)

// Cache is the interface all cache backends implement.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// ArtifactKeyOpts carries the render parameters that distinguish
// artifacts built from the same spec.
type ArtifactKeyOpts struct {
	Format string // "html" or "png"
	Scale  int    // raster supersampling factor, 0 for vector formats
}

// Keyer generates cache keys for the render pipeline.
type Keyer interface {
	// ArtifactKey generates a key for a single rendered chart artifact.
	// specHash is the hash of the canonical spec encoding.
	ArtifactKey(specHash string, opts ArtifactKeyOpts) string

	// DashboardKey generates a key for a composed dashboard artifact.
	// batchHash covers every spec on the dashboard in order.
	DashboardKey(batchHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a keyer with standard key formats.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key for artifact caching.
// Format: artifact:hash(specHash, opts)
func (k *DefaultKeyer) ArtifactKey(specHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", specHash, opts.Format, opts.Scale)
}

// DashboardKey generates a key for dashboard caching.
// Format: dashboard:hash(batchHash, opts)
func (k *DefaultKeyer) DashboardKey(batchHash string, opts ArtifactKeyOpts) string {
	return hashKey("dashboard", batchHash, opts.Format, opts.Scale)
}
