package renderer

import (
	"html/template"
	"strings"

	"github.com/SamMcCormick61/ultidiff/internal/models"
	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rs/zerolog"
)

// sampleLines bounds how much content is read when guessing a lexer.
const sampleLines = 50

// ChromaRenderer highlights line content with a lexer picked once per source.
// The lexer is guessed from the source name first and the content sample
// second, falling back to plain text, so all lines of a comparison share one
// consistent grammar.
type ChromaRenderer struct {
	lexer     chroma.Lexer
	style     *chroma.Style
	formatter *chromahtml.Formatter
	logger    zerolog.Logger
}

// NewChromaRenderer creates a renderer for one comparison source. theme
// selects the chroma style ("github" for light, "monokai" for dark, any
// chroma style name works); unknown names fall back to chroma's default.
func NewChromaRenderer(logger zerolog.Logger, sourceName string, contentSample []string, theme string) *ChromaRenderer {
	sample := strings.Join(head(contentSample, sampleLines), "\n")

	return &ChromaRenderer{
		lexer: guessLexer(sourceName, sample),
		style: styles.Get(theme),
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.PreventSurroundingPre(true),
		),
		logger: logger.With().Str("component", "ChromaRenderer").Logger(),
	}
}

// Render highlights one line. Any tokenization or formatting failure degrades
// to plain escaped text rather than surfacing an error.
func (cr *ChromaRenderer) Render(rawLine string, _ string) models.RenderedFragment {
	if rawLine == "" {
		return ""
	}

	iterator, err := cr.lexer.Tokenise(nil, rawLine)
	if err != nil {
		return models.RenderedFragment(template.HTMLEscapeString(rawLine))
	}

	var buf strings.Builder
	if err := cr.formatter.Format(&buf, cr.style, iterator); err != nil {
		cr.logger.Debug().Err(err).Msg("Highlight formatting failed, falling back to escaped text")
		return models.RenderedFragment(template.HTMLEscapeString(rawLine))
	}
	return models.RenderedFragment(buf.String())
}

// StyleCSS returns the stylesheet for the highlight classes, for embedding in
// HTML reports.
func (cr *ChromaRenderer) StyleCSS() (string, error) {
	var buf strings.Builder
	if err := cr.formatter.WriteCSS(&buf, cr.style); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// guessLexer resolves a lexer by filename, then content, then fallback.
func guessLexer(sourceName, sample string) chroma.Lexer {
	var lexer chroma.Lexer
	if sourceName != "" {
		lexer = lexers.Match(sourceName)
	}
	if lexer == nil && sample != "" {
		lexer = lexers.Analyse(sample)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

func head(lines []string, n int) []string {
	if len(lines) <= n {
		return lines
	}
	return lines[:n]
}
