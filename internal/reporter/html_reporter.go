// Package reporter exports comparison results as self-contained HTML reports
// and unified diff patches.
package reporter

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/SamMcCormick61/ultidiff/internal/config"
	"github.com/SamMcCormick61/ultidiff/internal/errorwrapper"
	"github.com/SamMcCormick61/ultidiff/internal/models"
	"github.com/rs/zerolog"
)

//go:embed templates/report.html.tmpl
var templateFS embed.FS

// HTMLReporter renders comparison results into standalone HTML files. The
// output embeds all styles, so reports can be archived or mailed without
// side assets.
type HTMLReporter struct {
	cfg    config.ReporterConfig
	tmpl   *template.Template
	logger zerolog.Logger
}

// sideBySideRow pairs one A row with its aligned B row for the template.
type sideBySideRow struct {
	A models.DisplayLine
	B models.DisplayLine
}

// reportData is the template context for one report.
type reportData struct {
	Title        string
	GeneratedAt  string
	SourceAName  string
	SourceBName  string
	Stats        models.DiffStats
	Identical    bool
	Rows         []sideBySideRow
	DiffRows     []models.DisplayLine
	Minimap      []models.MinimapMark
	Warnings     []models.Warning
	Options      []string
	Theme        string
	HighlightCSS template.CSS
}

// NewHTMLReporter creates an HTMLReporter, parsing the embedded template.
func NewHTMLReporter(cfg config.ReporterConfig, logger zerolog.Logger) (*HTMLReporter, error) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = config.DefaultReportOutputDir
	}
	if cfg.Theme == "" {
		cfg.Theme = config.DefaultReportTheme
	}

	tmpl, err := template.New("report.html.tmpl").Funcs(template.FuncMap{
		"raw": func(f models.RenderedFragment) template.HTML { return template.HTML(f) },
	}).ParseFS(templateFS, "templates/report.html.tmpl")
	if err != nil {
		return nil, errorwrapper.WrapError(err, "failed to parse report template")
	}

	return &HTMLReporter{
		cfg:    cfg,
		tmpl:   tmpl,
		logger: logger.With().Str("component", "HTMLReporter").Logger(),
	}, nil
}

// GenerateReport writes an HTML report for result and returns the output
// path. highlightCSS is the syntax stylesheet produced by the renderer that
// built the result's fragments; it may be empty.
func (r *HTMLReporter) GenerateReport(result *models.ComparisonResult, opts config.CompareOptions, highlightCSS string) (string, error) {
	if err := os.MkdirAll(r.cfg.OutputDir, 0o755); err != nil {
		return "", errorwrapper.WrapError(err, fmt.Sprintf("failed to create report directory %s", r.cfg.OutputDir))
	}

	outPath := filepath.Join(r.cfg.OutputDir, fmt.Sprintf("diff-report-%s.html", time.Now().Format("20060102-150405")))
	file, err := os.Create(outPath)
	if err != nil {
		return "", errorwrapper.WrapError(err, fmt.Sprintf("failed to create report file %s", outPath))
	}
	defer file.Close()

	data := reportData{
		Title:        fmt.Sprintf("Diff: %s vs %s", result.SourceAName, result.SourceBName),
		GeneratedAt:  time.Now().Format(time.RFC1123),
		SourceAName:  result.SourceAName,
		SourceBName:  result.SourceBName,
		Stats:        result.Stats,
		Identical:    result.Identical,
		Rows:         zipViews(result.ViewA, result.ViewB),
		DiffRows:     result.ViewDiff,
		Minimap:      result.Minimap,
		Warnings:     result.Warnings,
		Options:      describeOptions(opts),
		Theme:        r.cfg.Theme,
		HighlightCSS: template.CSS(highlightCSS),
	}

	if err := r.tmpl.Execute(file, data); err != nil {
		return "", errorwrapper.WrapError(err, "failed to render report template")
	}

	r.logger.Info().Str("path", outPath).Msg("Generated HTML report")
	return outPath, nil
}

// zipViews pairs the two side views row by row. The materializer emits them
// at equal length; any trailing imbalance is padded with placeholders rather
// than dropped.
func zipViews(viewA, viewB []models.DisplayLine) []sideBySideRow {
	n := len(viewA)
	if len(viewB) > n {
		n = len(viewB)
	}
	rows := make([]sideBySideRow, 0, n)
	for i := 0; i < n; i++ {
		row := sideBySideRow{
			A: models.DisplayLine{Role: models.RolePlaceholder},
			B: models.DisplayLine{Role: models.RolePlaceholder},
		}
		if i < len(viewA) {
			row.A = viewA[i]
		}
		if i < len(viewB) {
			row.B = viewB[i]
		}
		rows = append(rows, row)
	}
	return rows
}

// describeOptions summarizes the comparison options for the report header.
func describeOptions(opts config.CompareOptions) []string {
	var out []string
	if opts.TrimWhitespace {
		out = append(out, "trim whitespace")
	}
	if opts.CaseInsensitive {
		out = append(out, "case insensitive")
	}
	if opts.DropBlankLines {
		out = append(out, "ignore blank lines")
	}
	if opts.DropCommentLines {
		out = append(out, "ignore comment lines")
	}
	for _, p := range opts.IgnorePatterns {
		out = append(out, fmt.Sprintf("ignore pattern %q", p))
	}
	if opts.CollapseUnchanged {
		out = append(out, fmt.Sprintf("collapse unchanged (context %d)", opts.ContextSize))
	}
	if opts.IntralineHighlight {
		out = append(out, "intraline highlight")
	}
	if len(out) == 0 {
		out = append(out, "exact comparison")
	}
	return out
}
