// Package cache stores rendered artifacts keyed by a hash of their inputs.
//
// The pipeline renders the same data with the same options repeatedly (CLI
// reruns, the preview server). A [Cache] lets it skip the layout and sink
// work when nothing changed. Keys come from a [Keyer]; values are opaque
// bytes with an optional TTL.
//
// Implementations:
//
//   - [FileCache]: one JSON file per entry under a directory, for the CLI
//   - [NullCache]: stores nothing, for tests and --no-cache
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay valid.
const TTLArtifact = 7 * 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the entry for key. A missing or expired entry is a miss,
	// not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ArtifactKeyOpts is every input that changes a rendered artifact besides
// the data itself.
type ArtifactKeyOpts struct {
	Kind       string  `json:"kind"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	Format     string  `json:"format"`
	ConfigHash string  `json:"config_hash,omitempty"`
	Sorted     bool    `json:"sorted,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey keys one rendered output of the data whose hash is
	// dataHash.
	ArtifactKey(dataHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer produces "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey hashes dataHash together with opts.
func (DefaultKeyer) ArtifactKey(dataHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", dataHash, opts)
}
