package normalizer

import (
	"regexp"
	"strings"

	"github.com/SamMcCormick61/ultidiff/internal/config"
	"github.com/SamMcCormick61/ultidiff/internal/models"
	"github.com/rs/zerolog"
)

// NormalizedSource is one side's comparison sequence plus the mapping back to
// original positions. IndexMap is strictly increasing; IndexMap[k] is the
// zero-based original index of Lines[k]. Lines excluded by filters appear in
// neither field.
type NormalizedSource struct {
	Lines    []string
	IndexMap []int
}

// Len returns the normalized sequence length.
func (ns NormalizedSource) Len() int {
	return len(ns.Lines)
}

// LineNormalizer applies configured exclusion and transform rules to raw
// input lines before alignment. Normalized lines are used only for
// comparison, never for display.
type LineNormalizer struct {
	logger zerolog.Logger
}

// NewLineNormalizer creates a new LineNormalizer.
func NewLineNormalizer(logger zerolog.Logger) *LineNormalizer {
	return &LineNormalizer{
		logger: logger.With().Str("component", "LineNormalizer").Logger(),
	}
}

// Normalize processes raw lines in order. Per line: ignore patterns first,
// then comment exclusion, then blank exclusion, then trim and lowercase
// transforms. The order is load-bearing: an excluded line receives no
// transforms and no index-map entry.
//
// Ignore patterns that fail to compile are skipped and surfaced as
// configuration warnings rather than errors.
func (ln *LineNormalizer) Normalize(lines []string, opts config.CompareOptions) (NormalizedSource, []models.Warning) {
	patterns, warnings := ln.compileIgnorePatterns(opts.IgnorePatterns)

	result := NormalizedSource{
		Lines:    make([]string, 0, len(lines)),
		IndexMap: make([]int, 0, len(lines)),
	}

	for i, line := range lines {
		if matchesAny(patterns, line) {
			continue
		}
		if opts.DropCommentLines && isCommentLine(line) {
			continue
		}
		if opts.DropBlankLines && strings.TrimSpace(line) == "" {
			continue
		}

		normalized := line
		if opts.TrimWhitespace {
			normalized = strings.TrimSpace(normalized)
		}
		if opts.CaseInsensitive {
			normalized = strings.ToLower(normalized)
		}

		result.Lines = append(result.Lines, normalized)
		result.IndexMap = append(result.IndexMap, i)
	}

	return result, warnings
}

// compileIgnorePatterns compiles the configured patterns, collecting a warning
// for each one that does not compile.
func (ln *LineNormalizer) compileIgnorePatterns(raw []string) ([]*regexp.Regexp, []models.Warning) {
	var patterns []*regexp.Regexp
	var warnings []models.Warning

	for _, p := range raw {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" {
			continue
		}
		compiled, err := regexp.Compile(trimmed)
		if err != nil {
			ln.logger.Warn().Str("pattern", trimmed).Err(err).Msg("Skipping invalid ignore pattern")
			warnings = append(warnings, models.NewConfigurationWarning("invalid ignore pattern %q skipped: %v", trimmed, err))
			continue
		}
		patterns = append(patterns, compiled)
	}

	return patterns, warnings
}

func matchesAny(patterns []*regexp.Regexp, line string) bool {
	for _, p := range patterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}
