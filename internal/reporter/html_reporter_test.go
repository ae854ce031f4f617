package reporter

import (
	"os"
	"strings"
	"testing"

	"github.com/SamMcCormick61/ultidiff/internal/config"
	"github.com/SamMcCormick61/ultidiff/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *models.ComparisonResult {
	return &models.ComparisonResult{
		SourceAName: "old.txt",
		SourceBName: "new.txt",
		ViewA: []models.DisplayLine{
			{LineNumber: 1, Text: "same", Content: "same", Role: models.RoleEqual},
			{LineNumber: 2, Text: "removed", Content: "removed", Role: models.RoleDeleted},
		},
		ViewB: []models.DisplayLine{
			{LineNumber: 1, Text: "same", Content: "same", Role: models.RoleEqual},
			{Role: models.RolePlaceholder},
		},
		ViewDiff: []models.DisplayLine{
			{LineNumber: 2, Text: "removed", Content: "removed", Role: models.RoleDeleted},
		},
		Stats:   models.DiffStats{Deleted: 1, Unchanged: 1},
		Minimap: []models.MinimapMark{models.MinimapEqual, models.MinimapDeleted},
	}
}

func TestGenerateReport(t *testing.T) {
	cfg := config.ReporterConfig{OutputDir: t.TempDir(), Theme: "light"}
	r, err := NewHTMLReporter(cfg, zerolog.Nop())
	require.NoError(t, err)

	path, err := r.GenerateReport(sampleResult(), config.NewDefaultCompareOptions(), "")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(content)

	assert.Contains(t, html, "old.txt")
	assert.Contains(t, html, "new.txt")
	assert.Contains(t, html, `data-theme="light"`)
	assert.Contains(t, html, "removed")
	assert.True(t, strings.HasSuffix(path, ".html"))
}

func TestGenerateReport_DarkThemeAndCSS(t *testing.T) {
	cfg := config.ReporterConfig{OutputDir: t.TempDir(), Theme: "dark"}
	r, err := NewHTMLReporter(cfg, zerolog.Nop())
	require.NoError(t, err)

	css := ".chroma .k { color: #ff7b72 }"
	path, err := r.GenerateReport(sampleResult(), config.CompareOptions{}, css)
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(content), `data-theme="dark"`)
	assert.Contains(t, string(content), css)
}

func TestGenerateReport_EscapesPlainText(t *testing.T) {
	result := sampleResult()
	result.SourceAName = `<script>alert("x")</script>`

	cfg := config.ReporterConfig{OutputDir: t.TempDir()}
	r, err := NewHTMLReporter(cfg, zerolog.Nop())
	require.NoError(t, err)

	path, err := r.GenerateReport(result, config.CompareOptions{}, "")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.NotContains(t, string(content), `<script>alert`)
}

func TestZipViews_PadsUnevenViews(t *testing.T) {
	rows := zipViews(
		[]models.DisplayLine{{LineNumber: 1, Role: models.RoleEqual}},
		[]models.DisplayLine{{LineNumber: 1, Role: models.RoleEqual}, {LineNumber: 2, Role: models.RoleInserted}},
	)

	require.Len(t, rows, 2)
	assert.Equal(t, models.RolePlaceholder, rows[1].A.Role)
	assert.Equal(t, models.RoleInserted, rows[1].B.Role)
}

func TestDescribeOptions(t *testing.T) {
	assert.Equal(t, []string{"exact comparison"}, describeOptions(config.CompareOptions{}))

	described := describeOptions(config.CompareOptions{
		TrimWhitespace:    true,
		CollapseUnchanged: true,
		ContextSize:       5,
		IgnorePatterns:    []string{`^ts=`},
	})
	assert.Contains(t, described, "trim whitespace")
	assert.Contains(t, described, "collapse unchanged (context 5)")
	assert.Contains(t, described, `ignore pattern "^ts="`)
}
