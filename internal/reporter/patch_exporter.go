package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/SamMcCormick61/ultidiff/internal/differ"
	"github.com/SamMcCormick61/ultidiff/internal/errorwrapper"
	"github.com/rs/zerolog"
)

// NoDifferencesMarker is written instead of hunks when the inputs align with
// no differences, so an exported patch file is never silently empty.
const NoDifferencesMarker = "# No differences found.\n"

// PatchExporter writes comparisons as unified diff patches. Patches always
// describe the raw input lines, whatever normalization options the on-screen
// comparison used, so they apply cleanly to the original files.
type PatchExporter struct {
	aligner *differ.Aligner
	logger  zerolog.Logger
}

// NewPatchExporter creates a new PatchExporter.
func NewPatchExporter(logger zerolog.Logger) *PatchExporter {
	return &PatchExporter{
		aligner: differ.NewAligner(logger),
		logger:  logger.With().Str("component", "PatchExporter").Logger(),
	}
}

// Export writes a unified diff of the raw lines to w. The context parameter
// is the number of unchanged lines kept around each hunk; values below zero
// are treated as zero.
func (pe *PatchExporter) Export(w io.Writer, nameA, nameB string, linesA, linesB []string, context int) error {
	if context < 0 {
		context = 0
	}

	groups := groupSegments(pe.aligner.Align(linesA, linesB), context)

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n", nameA)
	fmt.Fprintf(&sb, "+++ %s\n", nameB)

	if len(groups) == 0 {
		sb.WriteString(NoDifferencesMarker)
	}
	for _, group := range groups {
		writeHunk(&sb, group, linesA, linesB)
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errorwrapper.WrapError(err, "failed to write patch")
	}
	pe.logger.Debug().Int("hunks", len(groups)).Msg("Exported unified diff patch")
	return nil
}

// groupSegments clusters segments into hunks, trimming equal runs down to
// the context size at group edges and splitting groups wherever an equal run
// is wide enough to separate two hunks. A fully-equal alignment yields no
// groups.
func groupSegments(segments []differ.Segment, context int) [][]differ.Segment {
	if len(segments) == 0 {
		return nil
	}
	if len(segments) == 1 && segments[0].Kind == differ.SegmentEqual {
		return nil
	}

	// Clamp the leading and trailing equal segments to the context window.
	segs := make([]differ.Segment, len(segments))
	copy(segs, segments)
	if first := segs[0]; first.Kind == differ.SegmentEqual {
		segs[0].AStart = max(first.AStart, first.AEnd-context)
		segs[0].BStart = max(first.BStart, first.BEnd-context)
	}
	if last := segs[len(segs)-1]; last.Kind == differ.SegmentEqual {
		segs[len(segs)-1].AEnd = min(last.AEnd, last.AStart+context)
		segs[len(segs)-1].BEnd = min(last.BEnd, last.BStart+context)
	}

	var groups [][]differ.Segment
	var group []differ.Segment
	for _, seg := range segs {
		if seg.Kind == differ.SegmentEqual && seg.ALen() > 2*context {
			// Wide equal run: close the current group with trailing context
			// and start the next with leading context.
			group = append(group, differ.Segment{
				Kind:   differ.SegmentEqual,
				AStart: seg.AStart,
				AEnd:   min(seg.AEnd, seg.AStart+context),
				BStart: seg.BStart,
				BEnd:   min(seg.BEnd, seg.BStart+context),
			})
			groups = append(groups, group)
			group = []differ.Segment{{
				Kind:   differ.SegmentEqual,
				AStart: max(seg.AStart, seg.AEnd-context),
				AEnd:   seg.AEnd,
				BStart: max(seg.BStart, seg.BEnd-context),
				BEnd:   seg.BEnd,
			}}
			continue
		}
		group = append(group, seg)
	}
	if len(group) > 0 && !(len(group) == 1 && group[0].Kind == differ.SegmentEqual) {
		groups = append(groups, group)
	}
	return groups
}

func writeHunk(sb *strings.Builder, group []differ.Segment, linesA, linesB []string) {
	first, last := group[0], group[len(group)-1]
	fmt.Fprintf(sb, "@@ -%s +%s @@\n",
		formatRange(first.AStart, last.AEnd),
		formatRange(first.BStart, last.BEnd))

	for _, seg := range group {
		switch seg.Kind {
		case differ.SegmentEqual:
			for _, line := range linesA[seg.AStart:seg.AEnd] {
				sb.WriteString(" " + line + "\n")
			}
		case differ.SegmentDelete:
			for _, line := range linesA[seg.AStart:seg.AEnd] {
				sb.WriteString("-" + line + "\n")
			}
		case differ.SegmentInsert:
			for _, line := range linesB[seg.BStart:seg.BEnd] {
				sb.WriteString("+" + line + "\n")
			}
		case differ.SegmentReplace:
			for _, line := range linesA[seg.AStart:seg.AEnd] {
				sb.WriteString("-" + line + "\n")
			}
			for _, line := range linesB[seg.BStart:seg.BEnd] {
				sb.WriteString("+" + line + "\n")
			}
		}
	}
}

// formatRange renders a half-open range in unified diff header notation,
// where a length of 1 omits the count and an empty range reports the line
// before the position.
func formatRange(start, stop int) string {
	length := stop - start
	if length == 1 {
		return fmt.Sprintf("%d", start+1)
	}
	if length == 0 {
		start--
	}
	return fmt.Sprintf("%d,%d", start+1, length)
}
