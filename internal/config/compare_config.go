package config

// CompareOptions holds every knob that changes comparison output. The full set
// participates in result cache keys, since any one of them alters the views.
type CompareOptions struct {
	// TrimWhitespace strips leading/trailing whitespace before comparison.
	TrimWhitespace bool `json:"trim_whitespace,omitempty" yaml:"trim_whitespace,omitempty"`
	// CaseInsensitive lowercases lines before comparison.
	CaseInsensitive bool `json:"case_insensitive,omitempty" yaml:"case_insensitive,omitempty"`
	// DropBlankLines excludes whitespace-only lines from comparison entirely.
	DropBlankLines bool `json:"drop_blank_lines,omitempty" yaml:"drop_blank_lines,omitempty"`
	// DropCommentLines excludes #, // and single-line /* */ comment lines.
	DropCommentLines bool `json:"drop_comment_lines,omitempty" yaml:"drop_comment_lines,omitempty"`
	// IgnorePatterns is an ordered list of regular expressions; a line matching
	// any of them is excluded from comparison on both sides.
	IgnorePatterns []string `json:"ignore_patterns,omitempty" yaml:"ignore_patterns,omitempty"`
	// CollapseUnchanged suppresses the interior of long equal runs.
	CollapseUnchanged bool `json:"collapse_unchanged,omitempty" yaml:"collapse_unchanged,omitempty"`
	// ContextSize is the number of equal lines kept at each edge of a
	// collapsed run.
	ContextSize int `json:"context_size" yaml:"context_size" validate:"gte=0"`
	// IntralineHighlight enables character-level highlighting of replaced
	// line pairs.
	IntralineHighlight bool `json:"intraline_highlight,omitempty" yaml:"intraline_highlight,omitempty"`
}

// NewDefaultCompareOptions creates comparison options matching the tool's
// historical defaults.
func NewDefaultCompareOptions() CompareOptions {
	return CompareOptions{
		TrimWhitespace: true,
		ContextSize:    DefaultContextSize,
	}
}
