package controller

import (
	"fmt"
	"io"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	m "github.com/mouse-blink/dnatool/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
	run    func(tea.Model) error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	t := &TUI{output: output}
	t.run = t.runProgram

	return t
}

// DisplayAnalysis lists every ORF across the analyzed records.
func (t *TUI) DisplayAnalysis(results []m.AnalysisResult, summary m.AnalysisSummary) error {
	var rows []reportRow

	for _, res := range results {
		rows = append(rows, reportRow{
			key:    res.ID,
			detail: fmt.Sprintf("length %d • GC %s%% • %d codons • %d ORFs", res.Length, formatPercent(res.GCContent), res.CodonUsage.Total(), len(res.ORFs)),
		})

		for _, orf := range res.ORFs {
			rows = append(rows, reportRow{
				key:    fmt.Sprintf("  frame %d", orf.Frame),
				detail: fmt.Sprintf("[%d, %d) %d codons", orf.Start, orf.End, orf.Codons()),
			})
		}
	}

	summaryLine := fmt.Sprintf("Records: %d   Mean GC: %s%% (±%s)   ORFs: %d   Longest: %d nt",
		summary.Records, formatPercent(summary.MeanGC), formatPercent(summary.StdDevGC), summary.TotalORFs, summary.LongestORF)

	return t.show(newReportModel("🧬 Sequence Analysis", summaryLine, [2]string{"Record", "Details"}, rows))
}

// DisplayMutations lists every applied edit.
func (t *TUI) DisplayMutations(report m.MutationReport, path m.Path) error {
	var (
		rows  []reportRow
		total int
	)

	for _, res := range report.Records {
		rows = append(rows, reportRow{
			key:    res.ID,
			detail: fmt.Sprintf("seed %d • length %d → %d", res.Seed, len(res.Original), len(res.Mutated)),
		})

		for _, rec := range res.Mutations {
			rows = append(rows, reportRow{
				key:    "  " + strconv.Itoa(rec.Index),
				detail: fmt.Sprintf("%-9s %s → %s", rec.Kind, rec.Original, rec.Mutated),
			})
		}

		total += len(res.Mutations)
	}

	summaryLine := fmt.Sprintf("Mutations: %d   Records: %d   Saved to %s", total, len(report.Records), path)

	return t.show(newReportModel("🧬 Mutation Simulation", summaryLine, [2]string{"Index", "Edit"}, rows))
}

// DisplaySequences prints each record; sequences are not paginated.
func (t *TUI) DisplaySequences(records []m.Record) error {
	for _, rec := range records {
		if rec.ID != "" {
			if _, err := fmt.Fprintf(t.output, ">%s\n", rec.ID); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintf(t.output, "%s\n", rec.Sequence); err != nil {
			return err
		}
	}

	return nil
}

func (t *TUI) show(model reportModel) error {
	if f, ok := t.output.(*os.File); ok {
		width, height, err := term.GetSize(f.Fd())
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	// If the report is small, just print and exit
	if !model.needsPagination() {
		_, err := fmt.Fprint(t.output, model.StaticView())
		return err
	}

	return t.run(model)
}

func (t *TUI) runProgram(model tea.Model) error {
	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}
