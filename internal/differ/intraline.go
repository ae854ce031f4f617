package differ

import (
	"github.com/SamMcCormick61/ultidiff/internal/models"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// IntralineHighlighter computes character-level spans for replaced line pairs.
type IntralineHighlighter struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewIntralineHighlighter creates a new IntralineHighlighter.
func NewIntralineHighlighter() *IntralineHighlighter {
	return &IntralineHighlighter{
		dmp: diffmatchpatch.New(),
	}
}

// Highlight diffs a replaced pair character by character and splits the spans
// per side: the old side keeps equal and delete spans, the new side keeps
// equal and insert spans. Semantic cleanup merges noise for human display.
func (ih *IntralineHighlighter) Highlight(oldLine, newLine string) (oldSpans, newSpans []models.IntralineSpan) {
	diffs := ih.dmp.DiffMain(oldLine, newLine, false)
	diffs = ih.dmp.DiffCleanupSemantic(diffs)

	for _, d := range diffs {
		span := models.IntralineSpan{Op: mapIntralineOp(d.Type), Text: d.Text}
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			oldSpans = append(oldSpans, span)
			newSpans = append(newSpans, span)
		case diffmatchpatch.DiffDelete:
			oldSpans = append(oldSpans, span)
		case diffmatchpatch.DiffInsert:
			newSpans = append(newSpans, span)
		}
	}
	return oldSpans, newSpans
}

func mapIntralineOp(op diffmatchpatch.Operation) models.IntralineOp {
	switch op {
	case diffmatchpatch.DiffInsert:
		return models.IntralineInsert
	case diffmatchpatch.DiffDelete:
		return models.IntralineDelete
	default:
		return models.IntralineEqual
	}
}
