package config

// FetcherConfig defines configuration for loading comparison inputs from
// files or URLs.
type FetcherConfig struct {
	TimeoutSeconds int    `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty" validate:"omitempty,gt=0"`
	MaxInputSizeMB int    `json:"max_input_size_mb,omitempty" yaml:"max_input_size_mb,omitempty" validate:"omitempty,gt=0"`
	UserAgent      string `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
}

// NewDefaultFetcherConfig creates default fetcher configuration.
func NewDefaultFetcherConfig() FetcherConfig {
	return FetcherConfig{
		TimeoutSeconds: DefaultFetchTimeoutSeconds,
		MaxInputSizeMB: DefaultMaxFetchSizeMB,
		UserAgent:      "ultidiff",
	}
}
