package renderer

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainRenderer_EscapesHTML(t *testing.T) {
	pr := NewPlainRenderer()

	fragment := pr.Render(`if a < b && c > d { alert("x") }`, "")

	assert.NotContains(t, string(fragment), "<")
	assert.NotContains(t, string(fragment), `"`)
	assert.Contains(t, string(fragment), "&lt;")
}

func TestChromaRenderer_HighlightsByFilename(t *testing.T) {
	cr := NewChromaRenderer(zerolog.Nop(), "main.go", nil, "github")

	fragment := cr.Render("func main() {}", "")

	assert.Contains(t, string(fragment), "<span")
}

func TestChromaRenderer_EmptyLine(t *testing.T) {
	cr := NewChromaRenderer(zerolog.Nop(), "main.go", nil, "github")

	assert.Empty(t, cr.Render("", ""))
}

func TestChromaRenderer_UnknownSourceStillEscapes(t *testing.T) {
	cr := NewChromaRenderer(zerolog.Nop(), "data.weirdext", nil, "github")

	fragment := cr.Render("<script>", "")

	assert.NotContains(t, string(fragment), "<script>")
	assert.Contains(t, string(fragment), "&lt;")
}

func TestChromaRenderer_GuessesFromContent(t *testing.T) {
	sample := []string{"#!/bin/bash", "echo hello"}
	cr := NewChromaRenderer(zerolog.Nop(), "", sample, "github")

	fragment := cr.Render("echo hello", "")

	assert.NotEmpty(t, fragment)
}

func TestChromaRenderer_StyleCSS(t *testing.T) {
	cr := NewChromaRenderer(zerolog.Nop(), "main.go", nil, "github")

	css, err := cr.StyleCSS()

	require.NoError(t, err)
	assert.NotEmpty(t, css)
	assert.Contains(t, css, ".chroma")
}
