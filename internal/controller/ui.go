// Package controller renders sequence analysis and mutation results for the
// terminal.
package controller

import (
	m "github.com/mouse-blink/dnatool/internal/model"
)

// UI defines how command results are presented.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayAnalysis shows per-record composition and ORFs plus a batch summary.
	DisplayAnalysis(results []m.AnalysisResult, summary m.AnalysisSummary) error
	// DisplayMutations shows the edit log of a mutate run saved to path.
	DisplayMutations(report m.MutationReport, path m.Path) error
	// DisplaySequences prints named sequences such as translated proteins.
	DisplaySequences(records []m.Record) error
}
