package views

import (
	"slices"
	"testing"

	"github.com/SamMcCormick61/ultidiff/internal/config"
	"github.com/SamMcCormick61/ultidiff/internal/differ"
	"github.com/SamMcCormick61/ultidiff/internal/models"
	"github.com/SamMcCormick61/ultidiff/internal/normalizer"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// materialize runs the full normalize/align/materialize pipeline over raw
// lines, the way the comparer wires it.
func materialize(t *testing.T, linesA, linesB []string, opts config.CompareOptions) *models.ComparisonResult {
	t.Helper()
	logger := zerolog.Nop()

	ln := normalizer.NewLineNormalizer(logger)
	normA, _ := ln.Normalize(linesA, opts)
	normB, _ := ln.Normalize(linesB, opts)

	segments := differ.NewAligner(logger).Align(normA.Lines, normB.Lines)

	vm, err := NewViewMaterializerBuilder(logger).Build()
	require.NoError(t, err)

	identical := slices.Equal(linesA, linesB)

	result, err := vm.Materialize(MaterializeInput{
		LinesA:      linesA,
		LinesB:      linesB,
		Segments:    segments,
		IndexMapA:   normA.IndexMap,
		IndexMapB:   normB.IndexMap,
		Options:     opts,
		SourceAName: "a.txt",
		SourceBName: "b.txt",
		Identical:   identical,
	})
	require.NoError(t, err)
	return result
}

func rolesOf(view []models.DisplayLine) []models.LineRole {
	roles := make([]models.LineRole, len(view))
	for i, row := range view {
		roles[i] = row.Role
	}
	return roles
}

func TestMaterialize_SingleReplacedLine(t *testing.T) {
	result := materialize(t,
		[]string{"alpha", "bravo", "charlie"},
		[]string{"alpha", "brave", "charlie"},
		config.CompareOptions{})

	assert.Equal(t, models.DiffStats{Modified: 1, Unchanged: 2}, result.Stats)
	assert.Equal(t, []models.MinimapMark{
		models.MinimapEqual, models.MinimapModified, models.MinimapEqual,
	}, result.Minimap)

	require.Len(t, result.ViewA, 3)
	require.Len(t, result.ViewB, 3)
	assert.Equal(t, models.RoleReplacedOld, result.ViewA[1].Role)
	assert.Equal(t, models.RoleReplacedNew, result.ViewB[1].Role)
	assert.Equal(t, 2, result.ViewA[1].LineNumber)
	assert.Equal(t, 2, result.ViewB[1].LineNumber)

	// The differences column shows a replaced pair as a single row, the old
	// side when it exists at the offset.
	require.Len(t, result.ViewDiff, 1)
	assert.Equal(t, models.RoleReplacedOld, result.ViewDiff[0].Role)
	assert.Equal(t, "bravo", result.ViewDiff[0].Text)
}

func TestMaterialize_InsertAndDelete(t *testing.T) {
	result := materialize(t,
		[]string{"keep", "gone", "tail"},
		[]string{"keep", "tail", "fresh"},
		config.CompareOptions{})

	assert.Equal(t, models.DiffStats{Added: 1, Deleted: 1, Unchanged: 2}, result.Stats)

	// Side views stay aligned row for row, the missing side padded with a
	// placeholder that carries no line number.
	require.Equal(t, len(result.ViewA), len(result.ViewB))
	for i := range result.ViewA {
		if result.ViewA[i].Role == models.RoleDeleted {
			assert.Equal(t, models.RolePlaceholder, result.ViewB[i].Role)
			assert.False(t, result.ViewB[i].HasLineNumber())
		}
		if result.ViewB[i].Role == models.RoleInserted {
			assert.Equal(t, models.RolePlaceholder, result.ViewA[i].Role)
		}
	}

	// Placeholders never reach the differences column.
	assert.Equal(t, []models.LineRole{models.RoleDeleted, models.RoleInserted}, rolesOf(result.ViewDiff))
}

func TestMaterialize_UnevenReplacePadsShorterSide(t *testing.T) {
	result := materialize(t,
		[]string{"head", "a1", "a2", "a3", "tail"},
		[]string{"head", "b1", "tail"},
		config.CompareOptions{})

	assert.Equal(t, models.DiffStats{Modified: 3, Unchanged: 2}, result.Stats)

	require.Len(t, result.ViewB, 5)
	assert.Equal(t, models.RoleReplacedNew, result.ViewB[1].Role)
	assert.Equal(t, models.RolePlaceholder, result.ViewB[2].Role)
	assert.Equal(t, models.RolePlaceholder, result.ViewB[3].Role)

	// One diff row per paired offset: positions with an old line show that
	// old line; a new line appears alone only where no old line exists.
	assert.Equal(t, []models.LineRole{
		models.RoleReplacedOld, models.RoleReplacedOld, models.RoleReplacedOld,
	}, rolesOf(result.ViewDiff))
}

func TestMaterialize_NewLongerThanOldInDiffColumn(t *testing.T) {
	result := materialize(t,
		[]string{"head", "a1", "tail"},
		[]string{"head", "b1", "b2", "b3", "tail"},
		config.CompareOptions{})

	assert.Equal(t, models.DiffStats{Modified: 3, Unchanged: 2}, result.Stats)
	assert.Equal(t, []models.LineRole{
		models.RoleReplacedOld, models.RoleReplacedNew, models.RoleReplacedNew,
	}, rolesOf(result.ViewDiff))
}

func TestMaterialize_TrimEquivalentInputs(t *testing.T) {
	result := materialize(t,
		[]string{"  value  "},
		[]string{"value"},
		config.CompareOptions{TrimWhitespace: true})

	assert.True(t, result.Stats.IsClean())
	assert.Equal(t, 1, result.Stats.Unchanged)

	// Views display the raw, untrimmed text.
	assert.Equal(t, "  value  ", result.ViewA[0].Text)
	assert.Equal(t, "value", result.ViewB[0].Text)

	require.Len(t, result.ViewDiff, 1)
	assert.Equal(t, "Files are equivalent under current comparison settings.", result.ViewDiff[0].Text)
	assert.False(t, result.ViewDiff[0].HasLineNumber())
}

func TestMaterialize_IdenticalInputsSentinel(t *testing.T) {
	lines := []string{"same", "lines"}
	result := materialize(t, lines, lines, config.CompareOptions{})

	require.Len(t, result.ViewDiff, 1)
	assert.Equal(t, "Files are identical.", result.ViewDiff[0].Text)
	assert.Equal(t, models.RoleEqual, result.ViewDiff[0].Role)
}

func TestMaterialize_ExcludedCommentNeverDisplayed(t *testing.T) {
	result := materialize(t,
		[]string{"code", "# only in a", "more"},
		[]string{"code", "more"},
		config.CompareOptions{DropCommentLines: true})

	assert.True(t, result.Stats.IsClean())
	for _, row := range result.ViewA {
		assert.NotEqual(t, "# only in a", row.Text)
	}

	// Line numbers still refer to original positions, so the row after the
	// excluded comment keeps its original number.
	require.Len(t, result.ViewA, 2)
	assert.Equal(t, 1, result.ViewA[0].LineNumber)
	assert.Equal(t, 3, result.ViewA[1].LineNumber)
	assert.Equal(t, 2, result.ViewB[1].LineNumber)
}

func TestMaterialize_IgnorePatternOnBothSides(t *testing.T) {
	result := materialize(t,
		[]string{"start", "timestamp=111", "end"},
		[]string{"start", "timestamp=222", "end"},
		config.CompareOptions{IgnorePatterns: []string{`^timestamp=`}})

	assert.True(t, result.Stats.IsClean())
	require.Len(t, result.ViewDiff, 1)
	assert.Equal(t, "Files are equivalent under current comparison settings.", result.ViewDiff[0].Text)
}

func TestMaterialize_CollapseLongEqualRun(t *testing.T) {
	var linesA, linesB []string
	linesA = append(linesA, "old-first")
	linesB = append(linesB, "new-first")
	for i := 0; i < 20; i++ {
		shared := string(rune('a'+i)) + "-shared"
		linesA = append(linesA, shared)
		linesB = append(linesB, shared)
	}
	linesA = append(linesA, "old-last")
	linesB = append(linesB, "new-last")

	opts := config.CompareOptions{CollapseUnchanged: true, ContextSize: 3}
	result := materialize(t, linesA, linesB, opts)

	// The interior of the 20-line equal run is hidden: 3 context rows at
	// each edge plus one separator.
	assert.Equal(t, []models.LineRole{
		models.RoleReplacedOld,
		models.RoleContext, models.RoleContext, models.RoleContext,
		models.RoleSeparator,
		models.RoleContext, models.RoleContext, models.RoleContext,
		models.RoleReplacedOld,
	}, rolesOf(result.ViewA))

	// Hidden lines still count as unchanged and receive no minimap marks.
	assert.Equal(t, 20, result.Stats.Unchanged)
	assert.Equal(t, 2, result.Stats.Modified)
	assert.Len(t, result.Minimap, 8)

	// Separators carry no line number and no content.
	sep := result.ViewA[4]
	assert.False(t, sep.HasLineNumber())
	assert.Equal(t, "...", sep.Text)

	// Context rows keep original numbering across the hidden gap.
	assert.Equal(t, 4, result.ViewA[3].LineNumber)
	assert.Equal(t, 19, result.ViewA[5].LineNumber)
}

func TestMaterialize_ShortRunNotCollapsed(t *testing.T) {
	result := materialize(t,
		[]string{"x", "s1", "s2", "s3", "y"},
		[]string{"z", "s1", "s2", "s3", "y"},
		config.CompareOptions{CollapseUnchanged: true, ContextSize: 3})

	// A run of 3+1 equal lines never exceeds twice the context size, so all
	// rows stay visible as plain equal rows.
	for _, row := range result.ViewA {
		assert.NotEqual(t, models.RoleSeparator, row.Role)
	}
	assert.Equal(t, 4, result.Stats.Unchanged)
}

func TestMaterialize_ZeroContextCollapse(t *testing.T) {
	var linesA, linesB []string
	linesA = append(linesA, "only-a")
	for i := 0; i < 5; i++ {
		shared := string(rune('a'+i)) + "-s"
		linesA = append(linesA, shared)
		linesB = append(linesB, shared)
	}

	result := materialize(t, linesA, linesB,
		config.CompareOptions{CollapseUnchanged: true, ContextSize: 0})

	assert.Equal(t, []models.LineRole{
		models.RoleDeleted, models.RoleSeparator,
	}, rolesOf(result.ViewA))
	assert.Equal(t, 5, result.Stats.Unchanged)
}

func TestMaterialize_MalformedSegmentsRejected(t *testing.T) {
	vm, err := NewViewMaterializerBuilder(zerolog.Nop()).Build()
	require.NoError(t, err)

	_, err = vm.Materialize(MaterializeInput{
		LinesA:    []string{"one"},
		LinesB:    []string{"one"},
		IndexMapA: []int{0},
		IndexMapB: []int{0},
		Segments: []differ.Segment{
			{Kind: differ.SegmentEqual, AStart: 1, AEnd: 2, BStart: 0, BEnd: 1},
		},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "consistency")
}

func TestMaterialize_IntralineSpansOnReplacedPairs(t *testing.T) {
	logger := zerolog.Nop()
	ln := normalizer.NewLineNormalizer(logger)
	opts := config.CompareOptions{IntralineHighlight: true}

	linesA := []string{"count = 1"}
	linesB := []string{"count = 2"}
	normA, _ := ln.Normalize(linesA, opts)
	normB, _ := ln.Normalize(linesB, opts)

	vm, err := NewViewMaterializerBuilder(logger).
		WithIntralineHighlighter(differ.NewIntralineHighlighter()).
		Build()
	require.NoError(t, err)

	result, err := vm.Materialize(MaterializeInput{
		LinesA:    linesA,
		LinesB:    linesB,
		Segments:  differ.NewAligner(logger).Align(normA.Lines, normB.Lines),
		IndexMapA: normA.IndexMap,
		IndexMapB: normB.IndexMap,
		Options:   opts,
	})
	require.NoError(t, err)

	require.Len(t, result.ViewA, 1)
	assert.NotEmpty(t, result.ViewA[0].Intraline)
	assert.NotEmpty(t, result.ViewB[0].Intraline)
}

func TestMaterialize_EmptyInputs(t *testing.T) {
	result := materialize(t, nil, nil, config.CompareOptions{})

	assert.Empty(t, result.ViewA)
	assert.Empty(t, result.ViewB)
	assert.True(t, result.Stats.IsClean())
	require.Len(t, result.ViewDiff, 1)
	assert.Equal(t, "Files are identical.", result.ViewDiff[0].Text)
}
