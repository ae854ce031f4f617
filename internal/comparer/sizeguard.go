package comparer

import (
	"github.com/SamMcCormick61/ultidiff/internal/differ"
	"github.com/SamMcCormick61/ultidiff/internal/models"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/mem"
)

// SizeGuard attaches a non-fatal advisory when inputs are large enough that
// the quadratic alignment may be slow. It never rejects a comparison.
type SizeGuard struct {
	threshold int
	logger    zerolog.Logger
}

// NewSizeGuard creates a size guard with the standard threshold.
func NewSizeGuard(logger zerolog.Logger) *SizeGuard {
	return &SizeGuard{
		threshold: differ.SizeWarnThreshold,
		logger:    logger.With().Str("component", "SizeGuard").Logger(),
	}
}

// Check inspects the raw input sizes and returns advisories. Available
// memory is included when it can be read, since large comparisons are
// memory-hungry as well as slow.
func (sg *SizeGuard) Check(linesA, linesB int) []models.Warning {
	if linesA <= sg.threshold && linesB <= sg.threshold {
		return nil
	}

	sg.logger.Warn().
		Int("lines_a", linesA).
		Int("lines_b", linesB).
		Int("threshold", sg.threshold).
		Msg("Large inputs; comparison may be slow")

	vm, err := mem.VirtualMemory()
	if err != nil {
		return []models.Warning{models.NewSizeWarning(
			"inputs exceed %d lines (a=%d, b=%d); comparison may be slow", sg.threshold, linesA, linesB)}
	}
	return []models.Warning{models.NewSizeWarning(
		"inputs exceed %d lines (a=%d, b=%d); comparison may be slow (%d MB memory available)",
		sg.threshold, linesA, linesB, vm.Available/(1024*1024))}
}
