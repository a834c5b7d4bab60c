package controller

import (
	"bytes"
	"fmt"
	"strconv"

	m "github.com/mouse-blink/dnatool/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI with plain text tables written to the command output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayAnalysis prints GC content, codon usage and ORFs for every record,
// followed by the summary when more than one record was analyzed.
func (s *SimpleUI) DisplayAnalysis(results []m.AnalysisResult, summary m.AnalysisSummary) error {
	for _, res := range results {
		s.printf("Analysis for sequence: %s\n", res.ID)
		s.printf("  Length: %d\n", res.Length)
		s.printf("  GC Content: %s%%\n", formatPercent(res.GCContent))

		usage := newTable([]string{"Codon", "Count"})
		for _, entry := range res.CodonUsage.Sorted() {
			usage.Append([]string{entry.Codon, strconv.Itoa(entry.Count)})
		}

		s.printf("  Codon Usage:\n%s", usage.render())

		if len(res.ORFs) == 0 {
			s.printf("  ORFs found: none\n\n")
			continue
		}

		orfs := newTable([]string{"Frame", "Start", "End", "Codons"})
		for _, orf := range res.ORFs {
			orfs.Append([]string{
				strconv.Itoa(orf.Frame),
				strconv.Itoa(orf.Start),
				strconv.Itoa(orf.End),
				strconv.Itoa(orf.Codons()),
			})
		}

		s.printf("  ORFs found: %d\n%s\n", len(res.ORFs), orfs.render())
	}

	if summary.Records > 1 {
		table := newTable([]string{"Records", "Mean GC %", "StdDev GC %", "ORFs", "Longest ORF"})
		table.Append([]string{
			strconv.Itoa(summary.Records),
			formatPercent(summary.MeanGC),
			formatPercent(summary.StdDevGC),
			strconv.Itoa(summary.TotalORFs),
			strconv.Itoa(summary.LongestORF),
		})
		s.printf("Summary:\n%s", table.render())
	}

	return nil
}

// DisplayMutations prints one table of applied edits per record.
func (s *SimpleUI) DisplayMutations(report m.MutationReport, path m.Path) error {
	for _, res := range report.Records {
		s.printf("%s: applied %d mutation(s), seed %d\n", res.ID, len(res.Mutations), res.Seed)

		if len(res.Mutations) == 0 {
			continue
		}

		table := newTable([]string{"#", "Index", "Type", "Original", "Mutated"})
		for i, rec := range res.Mutations {
			table.Append([]string{
				strconv.Itoa(i + 1),
				strconv.Itoa(rec.Index),
				string(rec.Kind),
				rec.Original,
				rec.Mutated,
			})
		}

		s.printf("%s", table.render())
	}

	s.printf("Result saved to %s\n", path)

	return nil
}

// DisplaySequences prints each record, with a FASTA-style header when the
// record is named.
func (s *SimpleUI) DisplaySequences(records []m.Record) error {
	for _, rec := range records {
		if rec.ID != "" {
			s.printf(">%s\n", rec.ID)
		}

		s.printf("%s\n", rec.Sequence)
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// textTable wraps a tablewriter configured for borderless output.
type textTable struct {
	buf   *bytes.Buffer
	table *tablewriter.Table
}

func newTable(header []string) *textTable {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	return &textTable{buf: &buf, table: table}
}

func (t *textTable) Append(row []string) {
	t.table.Append(row)
}

func (t *textTable) render() string {
	t.table.Render()

	return t.buf.String()
}

func formatPercent(fraction float64) string {
	return strconv.FormatFloat(fraction*100, 'f', 2, 64)
}
