package views

import (
	"github.com/SamMcCormick61/ultidiff/internal/differ"
	"github.com/SamMcCormick61/ultidiff/internal/errorwrapper"
	"github.com/SamMcCormick61/ultidiff/internal/models"
)

// separatorText is the literal shown for collapsed-run breaks.
const separatorText = "..."

// hydratedLine pairs an original 1-based line number with its raw text.
type hydratedLine struct {
	num  int
	text string
}

// emitter is the per-call state of one materialization walk. lastShownA is
// the normalized A position up to which rows have been emitted; it detects a
// preceding collapsed equal run whose trailing context must be backfilled
// before a difference is shown.
type emitter struct {
	vm *ViewMaterializer
	in MaterializeInput

	collapse bool
	ctx      int

	viewA    []models.DisplayLine
	viewB    []models.DisplayLine
	viewDiff []models.DisplayLine
	minimap  []models.MinimapMark
	stats    models.DiffStats

	lastShownA int
}

func newEmitter(vm *ViewMaterializer, in MaterializeInput) *emitter {
	ctx := in.Options.ContextSize
	if ctx < 0 {
		ctx = 0
	}
	return &emitter{
		vm:       vm,
		in:       in,
		collapse: in.Options.CollapseUnchanged,
		ctx:      ctx,
	}
}

func (em *emitter) emitSegment(seg differ.Segment) error {
	if seg.Kind == differ.SegmentEqual {
		return em.emitEqual(seg)
	}

	if err := em.backfillContext(seg); err != nil {
		return err
	}

	var err error
	switch seg.Kind {
	case differ.SegmentDelete:
		err = em.emitDelete(seg)
	case differ.SegmentInsert:
		err = em.emitInsert(seg)
	case differ.SegmentReplace:
		err = em.emitReplace(seg)
	default:
		err = errorwrapper.NewConsistencyError("a", seg.AStart, "unknown segment kind")
	}
	if err != nil {
		return err
	}

	em.lastShownA = seg.AEnd
	return nil
}

// emitEqual shows an unchanged run in full, or only its edges when collapsing
// is active and the run exceeds twice the context size. Hidden interior lines
// receive no rows and no minimap marks but still count as unchanged.
func (em *emitter) emitEqual(seg differ.Segment) error {
	linesA, err := em.hydrate("a", em.in.IndexMapA, em.in.LinesA, seg.AStart, seg.AEnd)
	if err != nil {
		return err
	}
	linesB, err := em.hydrate("b", em.in.IndexMapB, em.in.LinesB, seg.BStart, seg.BEnd)
	if err != nil {
		return err
	}

	runLen := seg.ALen()
	if em.collapse && runLen > 2*em.ctx {
		for k := 0; k < em.ctx; k++ {
			em.emitUnchangedPair(linesA[k], linesB[k], models.RoleContext)
		}
		em.emitSeparator()
		for k := runLen - em.ctx; k < runLen; k++ {
			em.emitUnchangedPair(linesA[k], linesB[k], models.RoleContext)
		}
	} else {
		for k := 0; k < runLen; k++ {
			em.emitUnchangedPair(linesA[k], linesB[k], models.RoleEqual)
		}
	}

	em.stats.Unchanged += runLen
	em.lastShownA = seg.AEnd
	return nil
}

// backfillContext emits the trailing context of a preceding equal run whose
// tail was not shown, immediately before a difference. With edge-eager equal
// emission this is normally a no-op; it exists so a difference is never
// displayed without its leading context, and it never double-emits lines.
func (em *emitter) backfillContext(seg differ.Segment) error {
	if !em.collapse || em.lastShownA >= seg.AStart {
		return nil
	}

	gap := seg.AStart - em.lastShownA
	if gap > em.ctx {
		em.emitSeparatorIfAbsent()
	}
	n := gap
	if n > em.ctx {
		n = em.ctx
	}

	linesA, err := em.hydrate("a", em.in.IndexMapA, em.in.LinesA, seg.AStart-n, seg.AStart)
	if err != nil {
		return err
	}
	linesB, err := em.hydrate("b", em.in.IndexMapB, em.in.LinesB, seg.BStart-n, seg.BStart)
	if err != nil {
		return err
	}
	for k := 0; k < n; k++ {
		em.emitUnchangedPair(linesA[k], linesB[k], models.RoleContext)
	}

	em.lastShownA = seg.AStart
	return nil
}

func (em *emitter) emitDelete(seg differ.Segment) error {
	linesA, err := em.hydrate("a", em.in.IndexMapA, em.in.LinesA, seg.AStart, seg.AEnd)
	if err != nil {
		return err
	}

	for _, line := range linesA {
		row := em.makeRow(line, models.RoleDeleted, em.in.SourceAName)
		em.viewA = append(em.viewA, row)
		em.viewB = append(em.viewB, placeholderRow())
		em.viewDiff = append(em.viewDiff, row)
		em.minimap = append(em.minimap, models.MinimapDeleted)
	}
	em.stats.Deleted += len(linesA)
	return nil
}

func (em *emitter) emitInsert(seg differ.Segment) error {
	linesB, err := em.hydrate("b", em.in.IndexMapB, em.in.LinesB, seg.BStart, seg.BEnd)
	if err != nil {
		return err
	}

	for _, line := range linesB {
		row := em.makeRow(line, models.RoleInserted, em.in.SourceBName)
		em.viewA = append(em.viewA, placeholderRow())
		em.viewB = append(em.viewB, row)
		em.viewDiff = append(em.viewDiff, row)
		em.minimap = append(em.minimap, models.MinimapAdded)
	}
	em.stats.Added += len(linesB)
	return nil
}

// emitReplace pairs the two runs by offset, padding the shorter side with
// placeholders. The differences column shows the old row when one exists at
// the offset and the new row only when it does not, so a pair occupies a
// single diff row.
func (em *emitter) emitReplace(seg differ.Segment) error {
	linesA, err := em.hydrate("a", em.in.IndexMapA, em.in.LinesA, seg.AStart, seg.AEnd)
	if err != nil {
		return err
	}
	linesB, err := em.hydrate("b", em.in.IndexMapB, em.in.LinesB, seg.BStart, seg.BEnd)
	if err != nil {
		return err
	}

	na, nb := len(linesA), len(linesB)
	rows := na
	if nb > rows {
		rows = nb
	}
	em.stats.Modified += rows

	for k := 0; k < rows; k++ {
		var rowA, rowB models.DisplayLine
		hasA, hasB := k < na, k < nb

		if hasA {
			rowA = em.makeRow(linesA[k], models.RoleReplacedOld, em.in.SourceAName)
		}
		if hasB {
			rowB = em.makeRow(linesB[k], models.RoleReplacedNew, em.in.SourceBName)
		}
		if hasA && hasB && em.vm.highlighter != nil {
			rowA.Intraline, rowB.Intraline = em.vm.highlighter.Highlight(linesA[k].text, linesB[k].text)
		}

		if hasA {
			em.viewA = append(em.viewA, rowA)
			em.viewDiff = append(em.viewDiff, rowA)
		} else {
			em.viewA = append(em.viewA, placeholderRow())
		}
		if hasB {
			em.viewB = append(em.viewB, rowB)
			if !hasA {
				em.viewDiff = append(em.viewDiff, rowB)
			}
		} else {
			em.viewB = append(em.viewB, placeholderRow())
		}
		em.minimap = append(em.minimap, models.MinimapModified)
	}
	return nil
}

// emitUnchangedPair appends one equal/context row to both side views, a
// placeholder to the diff view and an equal minimap mark.
func (em *emitter) emitUnchangedPair(lineA, lineB hydratedLine, role models.LineRole) {
	em.viewA = append(em.viewA, em.makeRow(lineA, role, em.in.SourceAName))
	em.viewB = append(em.viewB, em.makeRow(lineB, role, em.in.SourceBName))
	em.viewDiff = append(em.viewDiff, placeholderRow())
	em.minimap = append(em.minimap, models.MinimapEqual)
}

// emitSeparator appends a separator row to all three views. Separators carry
// no line number, no minimap mark and no stat.
func (em *emitter) emitSeparator() {
	sep := separatorRow()
	em.viewA = append(em.viewA, sep)
	em.viewB = append(em.viewB, sep)
	em.viewDiff = append(em.viewDiff, sep)
}

// emitSeparatorIfAbsent appends a separator unless the previous emitted row
// already is one.
func (em *emitter) emitSeparatorIfAbsent() {
	if n := len(em.viewA); n > 0 && em.viewA[n-1].Role == models.RoleSeparator {
		return
	}
	em.emitSeparator()
}

// hydrate maps a normalized half-open range back to original line numbers and
// raw text. Any out-of-range lookup is an internal consistency error carrying
// the side and offending position.
func (em *emitter) hydrate(side string, indexMap []int, raw []string, start, end int) ([]hydratedLine, error) {
	if start < 0 || end > len(indexMap) || start > end {
		return nil, errorwrapper.NewConsistencyError(side, start, "normalized range outside index map")
	}
	lines := make([]hydratedLine, 0, end-start)
	for pos := start; pos < end; pos++ {
		origIdx := indexMap[pos]
		if origIdx < 0 || origIdx >= len(raw) {
			return nil, errorwrapper.NewConsistencyError(side, pos, "index map points outside original sequence")
		}
		lines = append(lines, hydratedLine{num: origIdx + 1, text: raw[origIdx]})
	}
	return lines, nil
}

func (em *emitter) makeRow(line hydratedLine, role models.LineRole, sourceHint string) models.DisplayLine {
	return models.DisplayLine{
		LineNumber: line.num,
		Text:       line.text,
		Content:    em.vm.renderer.Render(line.text, sourceHint),
		Role:       role,
	}
}

func placeholderRow() models.DisplayLine {
	return models.DisplayLine{Role: models.RolePlaceholder}
}

func separatorRow() models.DisplayLine {
	return models.DisplayLine{Role: models.RoleSeparator, Text: separatorText}
}
