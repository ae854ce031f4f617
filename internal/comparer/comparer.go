// Package comparer is the synchronous facade over the diff pipeline:
// normalize, align, materialize. Each Compare call is a pure function of its
// inputs and options; results are published whole and never mutated.
package comparer

import (
	"context"

	"github.com/SamMcCormick61/ultidiff/internal/config"
	"github.com/SamMcCormick61/ultidiff/internal/differ"
	"github.com/SamMcCormick61/ultidiff/internal/errorwrapper"
	"github.com/SamMcCormick61/ultidiff/internal/models"
	"github.com/SamMcCormick61/ultidiff/internal/normalizer"
	"github.com/SamMcCormick61/ultidiff/internal/renderer"
	"github.com/SamMcCormick61/ultidiff/internal/views"
	"github.com/rs/zerolog"
)

// Source is one comparison input: already-decoded lines plus a display name.
// The name labels views and reports; it never participates in comparison
// logic.
type Source struct {
	Name  string
	Lines []string
}

// Comparer runs complete comparisons. It is safe for concurrent use: the
// only shared state is the memoization cache, which is internally
// synchronized and holds immutable results.
type Comparer struct {
	normalizer *normalizer.LineNormalizer
	aligner    *differ.Aligner
	sizeGuard  *SizeGuard
	cache      *resultCache
	theme      string
	logger     zerolog.Logger
}

// ComparerBuilder provides a fluent interface for creating a Comparer.
type ComparerBuilder struct {
	cacheConfig config.CacheConfig
	theme       string
	logger      zerolog.Logger
}

// NewComparerBuilder creates a new builder.
func NewComparerBuilder(logger zerolog.Logger) *ComparerBuilder {
	return &ComparerBuilder{
		cacheConfig: config.NewDefaultCacheConfig(),
		theme:       config.DefaultReportTheme,
		logger:      logger,
	}
}

// WithCacheConfig sets result memoization behavior.
func (b *ComparerBuilder) WithCacheConfig(cfg config.CacheConfig) *ComparerBuilder {
	b.cacheConfig = cfg
	return b
}

// WithTheme sets the syntax highlighting theme for rendered fragments.
func (b *ComparerBuilder) WithTheme(theme string) *ComparerBuilder {
	b.theme = theme
	return b
}

// Build creates a new Comparer instance.
func (b *ComparerBuilder) Build() (*Comparer, error) {
	return &Comparer{
		normalizer: normalizer.NewLineNormalizer(b.logger),
		aligner:    differ.NewAligner(b.logger),
		sizeGuard:  NewSizeGuard(b.logger),
		cache:      newResultCache(b.cacheConfig),
		theme:      chromaStyle(b.theme),
		logger:     b.logger.With().Str("component", "Comparer").Logger(),
	}, nil
}

// NewComparer creates a Comparer with default settings.
func NewComparer(logger zerolog.Logger) (*Comparer, error) {
	return NewComparerBuilder(logger).Build()
}

// Compare runs one full comparison to completion. It returns a fresh
// ComparisonResult; only an internal consistency failure produces an error,
// in which case no result is returned and any previously published result
// remains valid.
func (c *Comparer) Compare(ctx context.Context, a, b Source, opts config.CompareOptions) (*models.ComparisonResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, errorwrapper.WrapError(err, "comparison not started")
	}

	key := cacheKey(a, b, opts)
	if cached, found := c.cache.get(key); found {
		c.logger.Debug().Str("source_a", a.Name).Str("source_b", b.Name).Msg("Returning memoized comparison result")
		return cached, nil
	}

	warnings := c.sizeGuard.Check(len(a.Lines), len(b.Lines))

	normA, warnA := c.normalizer.Normalize(a.Lines, opts)
	normB, warnB := c.normalizer.Normalize(b.Lines, opts)
	warnings = append(warnings, warnA...)
	warnings = append(warnings, warnB...)

	identical := rawEqual(a.Lines, b.Lines)

	// Inputs that exist but are fully excluded by filters compare as empty:
	// zero stats and empty views, not an error.
	if normA.Len() == 0 && normB.Len() == 0 && (len(a.Lines) > 0 || len(b.Lines) > 0) {
		return &models.ComparisonResult{
			SourceAName: a.Name,
			SourceBName: b.Name,
			Warnings:    warnings,
			Identical:   identical,
		}, nil
	}

	segments := c.aligner.Align(normA.Lines, normB.Lines)

	materializer, err := c.buildMaterializer(a, opts)
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to build view materializer")
	}

	result, err := materializer.Materialize(views.MaterializeInput{
		LinesA:      a.Lines,
		LinesB:      b.Lines,
		Segments:    segments,
		IndexMapA:   normA.IndexMap,
		IndexMapB:   normB.IndexMap,
		Options:     opts,
		SourceAName: a.Name,
		SourceBName: b.Name,
		Identical:   identical,
		Warnings:    warnings,
	})
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to materialize comparison views")
	}

	c.cache.set(key, result)
	return result, nil
}

// buildMaterializer assembles the per-comparison materializer. The syntax
// lexer is guessed once from source A and shared by both sides so the two
// columns highlight consistently.
func (c *Comparer) buildMaterializer(a Source, opts config.CompareOptions) (*views.ViewMaterializer, error) {
	lineRenderer := renderer.NewChromaRenderer(c.logger, a.Name, a.Lines, c.theme)

	builder := views.NewViewMaterializerBuilder(c.logger).WithRenderer(lineRenderer)
	if opts.IntralineHighlight {
		builder = builder.WithIntralineHighlighter(differ.NewIntralineHighlighter())
	}
	return builder.Build()
}

// chromaStyle maps the report theme names onto chroma style names; any other
// value is passed through as a chroma style.
func chromaStyle(theme string) string {
	switch theme {
	case "light":
		return "github"
	case "dark":
		return "monokai"
	default:
		return theme
	}
}

func rawEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
