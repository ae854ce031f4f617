package differ

import (
	"github.com/rs/zerolog"
)

// SizeWarnThreshold is the per-input line count above which comparison
// attaches a performance advisory. Alignment is worst-case quadratic, so very
// large inputs are slow, not wrong; the comparison is still attempted.
const SizeWarnThreshold = 15000

// Aligner runs LCS-based sequence comparison over normalized lines.
type Aligner struct {
	logger zerolog.Logger
}

// NewAligner creates a new Aligner.
func NewAligner(logger zerolog.Logger) *Aligner {
	return &Aligner{
		logger: logger.With().Str("component", "Aligner").Logger(),
	}
}

// Align compares two normalized sequences by pure value equality and returns
// the ordered typed segment list. The segment list partitions [0, len(a))
// and [0, len(b)).
func (al *Aligner) Align(a, b []string) []Segment {
	if len(a) > SizeWarnThreshold || len(b) > SizeWarnThreshold {
		al.logger.Warn().
			Int("lines_a", len(a)).
			Int("lines_b", len(b)).
			Msg("Inputs exceed size threshold; alignment may be slow")
	}
	return newSequenceMatcher(a, b).segments()
}
