package models

// RenderedFragment is a display-safe representation of one line's content,
// produced by a line renderer. It is treated as opaque by the core.
type RenderedFragment string

// LineRole classifies a single emitted row in a materialized view.
type LineRole int

const (
	// RoleEqual indicates a line present unchanged on both sides.
	RoleEqual LineRole = iota
	// RoleContext indicates an unchanged line kept near a difference while
	// collapsing is active.
	RoleContext
	// RoleInserted indicates a line only present on side B.
	RoleInserted
	// RoleDeleted indicates a line only present on side A.
	RoleDeleted
	// RoleReplacedOld indicates the A side of a replaced pair.
	RoleReplacedOld
	// RoleReplacedNew indicates the B side of a replaced pair.
	RoleReplacedNew
	// RolePlaceholder indicates an alignment gap with no content.
	RolePlaceholder
	// RoleSeparator indicates a visual break standing in for collapsed lines.
	RoleSeparator
)

// String returns the CSS-class-style label for the role.
func (r LineRole) String() string {
	switch r {
	case RoleEqual:
		return "equal"
	case RoleContext:
		return "context"
	case RoleInserted:
		return "inserted"
	case RoleDeleted:
		return "deleted"
	case RoleReplacedOld:
		return "replaced-old"
	case RoleReplacedNew:
		return "replaced-new"
	case RolePlaceholder:
		return "placeholder"
	case RoleSeparator:
		return "separator"
	default:
		return "unknown"
	}
}

// DisplayLine is one emitted row of a materialized view.
//
// LineNumber is the 1-based position in the original (unnormalized) input, or 0
// for rows that carry no line number (placeholder, separator, and the synthetic
// identical-files row).
type DisplayLine struct {
	LineNumber int              `json:"line_number,omitempty"`
	Content    RenderedFragment `json:"content"`
	Text       string           `json:"text"`
	Role       LineRole         `json:"role"`
	// Intraline carries optional character-level spans for replaced pairs.
	Intraline []IntralineSpan `json:"intraline,omitempty"`
}

// HasLineNumber reports whether the row maps back to an original line.
func (dl DisplayLine) HasLineNumber() bool {
	return dl.LineNumber > 0
}
