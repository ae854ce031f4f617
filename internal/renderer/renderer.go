// Package renderer turns raw line text into display-safe fragments. The diff
// core treats fragments as opaque; everything here is presentation.
package renderer

import (
	"html/template"

	"github.com/SamMcCormick61/ultidiff/internal/models"
)

// LineRenderer renders one raw line into a fragment safe for the target
// display medium. Implementations must not fail: when rendering is impossible
// they fall back to plain escaped text.
type LineRenderer interface {
	Render(rawLine string, sourceHint string) models.RenderedFragment
}

// PlainRenderer escapes line content without any highlighting.
type PlainRenderer struct{}

// NewPlainRenderer creates a new PlainRenderer.
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

// Render escapes the raw line for HTML embedding.
func (pr *PlainRenderer) Render(rawLine string, _ string) models.RenderedFragment {
	return models.RenderedFragment(template.HTMLEscapeString(rawLine))
}
