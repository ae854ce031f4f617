package differ

import (
	"github.com/SamMcCormick61/ultidiff/internal/errorwrapper"
)

// SegmentKind is the alignment classification of a contiguous run.
type SegmentKind int

const (
	// SegmentEqual indicates matching runs on both sides.
	SegmentEqual SegmentKind = iota
	// SegmentInsert indicates lines present only in B.
	SegmentInsert
	// SegmentDelete indicates lines present only in A.
	SegmentDelete
	// SegmentReplace indicates differing runs on both sides.
	SegmentReplace
)

// String returns a human-readable label for the segment kind.
func (k SegmentKind) String() string {
	switch k {
	case SegmentEqual:
		return "equal"
	case SegmentInsert:
		return "insert"
	case SegmentDelete:
		return "delete"
	case SegmentReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Segment describes a contiguous aligned block over normalized positions.
// Ranges are half-open. AEnd == AStart for a pure insert and BEnd == BStart
// for a pure delete. Segments produced by the aligner partition both input
// ranges contiguously, left to right.
type Segment struct {
	Kind   SegmentKind
	AStart int
	AEnd   int
	BStart int
	BEnd   int
}

// ALen returns the A-side run length.
func (s Segment) ALen() int { return s.AEnd - s.AStart }

// BLen returns the B-side run length.
func (s Segment) BLen() int { return s.BEnd - s.BStart }

// ValidateSegments checks the partition invariant: concatenating the A ranges
// of all segments in order must reconstruct [0, aLen) with no gaps or
// overlaps, and likewise for B. A malformed list is an internal consistency
// error, not a user-facing condition.
func ValidateSegments(segments []Segment, aLen, bLen int) error {
	posA, posB := 0, 0
	for _, seg := range segments {
		if seg.AStart != posA {
			return errorwrapper.NewConsistencyError("a", seg.AStart, "segment does not continue from previous A position")
		}
		if seg.BStart != posB {
			return errorwrapper.NewConsistencyError("b", seg.BStart, "segment does not continue from previous B position")
		}
		if seg.AEnd < seg.AStart || seg.BEnd < seg.BStart {
			return errorwrapper.NewConsistencyError("a", seg.AStart, "segment has negative extent")
		}
		posA = seg.AEnd
		posB = seg.BEnd
	}
	if posA != aLen {
		return errorwrapper.NewConsistencyError("a", posA, "segments do not cover normalized sequence")
	}
	if posB != bLen {
		return errorwrapper.NewConsistencyError("b", posB, "segments do not cover normalized sequence")
	}
	return nil
}
