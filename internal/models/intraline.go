package models

// IntralineOp classifies a character-level span within a replaced line pair.
type IntralineOp int

const (
	// IntralineEqual indicates text common to both lines.
	IntralineEqual IntralineOp = 0
	// IntralineInsert indicates text only in the new line.
	IntralineInsert IntralineOp = 1
	// IntralineDelete indicates text only in the old line.
	IntralineDelete IntralineOp = -1
)

// IntralineSpan is one character-level span of a replaced line.
type IntralineSpan struct {
	Op   IntralineOp `json:"op"`
	Text string      `json:"text"`
}
