package config

// CacheConfig defines configuration for memoizing comparison results.
// Results are pure functions of (inputs, options), so caching is safe; it is
// an optimization, never required for correctness.
type CacheConfig struct {
	Enabled    bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	TTLSeconds int  `json:"ttl_seconds,omitempty" yaml:"ttl_seconds,omitempty" validate:"omitempty,gt=0"`
}

// NewDefaultCacheConfig creates default cache configuration.
func NewDefaultCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:    true,
		TTLSeconds: DefaultCacheTTLSeconds,
	}
}
