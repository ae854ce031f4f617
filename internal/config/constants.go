package config

const (
	// DefaultContextSize is the number of context lines kept around collapsed runs.
	DefaultContextSize = 3

	// DefaultSizeWarnLines is the per-input line count above which a size
	// warning is attached to the comparison.
	DefaultSizeWarnLines = 15000

	// DefaultFetchTimeoutSeconds bounds a single URL fetch.
	DefaultFetchTimeoutSeconds = 15

	// DefaultMaxFetchSizeMB bounds the size of a fetched or loaded input.
	DefaultMaxFetchSizeMB = 10

	// DefaultCacheTTLSeconds is how long memoized comparison results live.
	DefaultCacheTTLSeconds = 600

	// DefaultReportOutputDir is where HTML reports and patches are written.
	DefaultReportOutputDir = "reports"

	// DefaultReportTheme selects the report color scheme.
	DefaultReportTheme = "light"

	// DefaultLogFile is the rotating log file path when file logging is enabled.
	DefaultLogFile = "logs/ultidiff.log"
)
