// Package views materializes alignment segments into renderable per-line
// view streams: side A, side B, a differences-only column, plus minimap marks
// and aggregate statistics.
package views

import (
	"github.com/SamMcCormick61/ultidiff/internal/config"
	"github.com/SamMcCormick61/ultidiff/internal/differ"
	"github.com/SamMcCormick61/ultidiff/internal/errorwrapper"
	"github.com/SamMcCormick61/ultidiff/internal/models"
	"github.com/SamMcCormick61/ultidiff/internal/renderer"
	"github.com/rs/zerolog"
)

// MaterializeInput carries everything one materialization needs. All fields
// refer to a single comparison; the materializer holds no state between calls.
type MaterializeInput struct {
	// LinesA and LinesB are the raw, unnormalized inputs used for display.
	LinesA []string
	LinesB []string
	// Segments is the ordered alignment over normalized positions.
	Segments []differ.Segment
	// IndexMapA and IndexMapB map normalized positions back to original
	// zero-based indices.
	IndexMapA []int
	IndexMapB []int
	// Options controls context collapsing.
	Options config.CompareOptions
	// SourceAName and SourceBName label the sides.
	SourceAName string
	SourceBName string
	// Identical reports whether the raw inputs were byte-for-byte equal; it
	// only affects the wording of the synthetic no-differences row.
	Identical bool
	// Warnings collected upstream (normalization, alignment) are attached to
	// the result.
	Warnings []models.Warning
}

// ViewMaterializer walks alignment segments and emits the three parallel view
// streams. Each call is a pure function of its input.
type ViewMaterializer struct {
	renderer    renderer.LineRenderer
	highlighter *differ.IntralineHighlighter
	logger      zerolog.Logger
}

// ViewMaterializerBuilder provides a fluent interface for creating a
// ViewMaterializer.
type ViewMaterializerBuilder struct {
	renderer    renderer.LineRenderer
	highlighter *differ.IntralineHighlighter
	logger      zerolog.Logger
}

// NewViewMaterializerBuilder creates a new builder.
func NewViewMaterializerBuilder(logger zerolog.Logger) *ViewMaterializerBuilder {
	return &ViewMaterializerBuilder{logger: logger}
}

// WithRenderer sets the line renderer invoked once per emitted line.
func (b *ViewMaterializerBuilder) WithRenderer(r renderer.LineRenderer) *ViewMaterializerBuilder {
	b.renderer = r
	return b
}

// WithIntralineHighlighter enables character-level spans on replaced pairs.
func (b *ViewMaterializerBuilder) WithIntralineHighlighter(h *differ.IntralineHighlighter) *ViewMaterializerBuilder {
	b.highlighter = h
	return b
}

// Build creates the ViewMaterializer.
func (b *ViewMaterializerBuilder) Build() (*ViewMaterializer, error) {
	r := b.renderer
	if r == nil {
		r = renderer.NewPlainRenderer()
	}
	return &ViewMaterializer{
		renderer:    r,
		highlighter: b.highlighter,
		logger:      b.logger.With().Str("component", "ViewMaterializer").Logger(),
	}, nil
}

// Materialize produces the complete comparison result for one segment list.
// It never fails for a valid segment list; an index-map miss is an internal
// consistency error that aborts this comparison rather than emitting wrong
// line numbers.
func (vm *ViewMaterializer) Materialize(in MaterializeInput) (*models.ComparisonResult, error) {
	if err := differ.ValidateSegments(in.Segments, len(in.IndexMapA), len(in.IndexMapB)); err != nil {
		return nil, errorwrapper.WrapError(err, "refusing to materialize malformed segment list")
	}

	em := newEmitter(vm, in)
	for _, seg := range in.Segments {
		if err := em.emitSegment(seg); err != nil {
			return nil, err
		}
	}

	result := &models.ComparisonResult{
		SourceAName: in.SourceAName,
		SourceBName: in.SourceBName,
		ViewA:       em.viewA,
		ViewB:       em.viewB,
		ViewDiff:    vm.finalizeDiffView(em.viewDiff, in.Identical),
		Stats:       em.stats,
		Minimap:     em.minimap,
		Warnings:    in.Warnings,
		Identical:   in.Identical,
	}
	return result, nil
}

// finalizeDiffView drops placeholder rows from the differences column,
// keeping separators as visual breaks. An empty or separator-only column is
// replaced with a single synthetic row whose wording distinguishes
// byte-identical inputs from inputs equivalent only under current settings.
func (vm *ViewMaterializer) finalizeDiffView(rows []models.DisplayLine, identical bool) []models.DisplayLine {
	filtered := make([]models.DisplayLine, 0, len(rows))
	onlySeparators := true
	for _, row := range rows {
		if row.Role == models.RolePlaceholder {
			continue
		}
		if row.Role != models.RoleSeparator {
			onlySeparators = false
		}
		filtered = append(filtered, row)
	}

	if len(filtered) == 0 || onlySeparators {
		text := "Files are equivalent under current comparison settings."
		if identical {
			text = "Files are identical."
		}
		return []models.DisplayLine{{
			Role:    models.RoleEqual,
			Text:    text,
			Content: vm.renderer.Render(text, ""),
		}}
	}
	return filtered
}
