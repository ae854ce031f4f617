package models

// MinimapMark is a compact per-row classification for overview rendering.
// Separators receive no mark.
type MinimapMark int

const (
	// MinimapEqual marks an unchanged row.
	MinimapEqual MinimapMark = iota
	// MinimapAdded marks an inserted row.
	MinimapAdded
	// MinimapDeleted marks a deleted row.
	MinimapDeleted
	// MinimapModified marks a replaced row.
	MinimapModified
)

// String returns the short label used by minimap renderers.
func (m MinimapMark) String() string {
	switch m {
	case MinimapEqual:
		return "equal"
	case MinimapAdded:
		return "added"
	case MinimapDeleted:
		return "deleted"
	case MinimapModified:
		return "modified"
	default:
		return "unknown"
	}
}

// DiffStats holds aggregate line counts for one comparison.
type DiffStats struct {
	Added     int `json:"added"`
	Deleted   int `json:"deleted"`
	Modified  int `json:"modified"`
	Unchanged int `json:"unchanged"`
}

// IsClean reports whether no differences were counted.
func (s DiffStats) IsClean() bool {
	return s.Added == 0 && s.Deleted == 0 && s.Modified == 0
}

// ComparisonResult is the complete materialized output of one comparison.
// It is immutable once published; re-running a comparison produces a fresh
// result rather than mutating a previous one.
type ComparisonResult struct {
	SourceAName string        `json:"source_a_name"`
	SourceBName string        `json:"source_b_name"`
	ViewA       []DisplayLine `json:"view_a"`
	ViewB       []DisplayLine `json:"view_b"`
	ViewDiff    []DisplayLine `json:"view_diff"`
	Stats       DiffStats     `json:"stats"`
	Minimap     []MinimapMark `json:"minimap"`
	Warnings    []Warning     `json:"warnings,omitempty"`
	// Identical is true when the raw inputs were byte-for-byte equal, as
	// opposed to merely equivalent after normalization.
	Identical bool `json:"identical"`
}
