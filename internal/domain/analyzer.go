package domain

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	m "github.com/mouse-blink/dnatool/internal/model"
)

// Analyzer runs composition and ORF analysis over a batch of RNA records.
type Analyzer interface {
	Analyze(ctx context.Context, records []m.Record, threads int) ([]m.AnalysisResult, m.AnalysisSummary, error)
}

type analyzer struct{}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer() Analyzer {
	return &analyzer{}
}

// Analyze analyzes records on up to threads goroutines. Results keep the
// input order. The first failing record cancels the rest.
func (a *analyzer) Analyze(ctx context.Context, records []m.Record, threads int) ([]m.AnalysisResult, m.AnalysisSummary, error) {
	if threads <= 0 {
		threads = 1
	}

	results := make([]m.AnalysisResult, len(records))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, rec := range records {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res, err := AnalyzeRecord(rec)
			if err != nil {
				return err
			}

			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, m.AnalysisSummary{}, err
	}

	return results, Summarize(results), nil
}

// AnalyzeRecord validates one RNA record and computes its GC content, codon
// usage and ORFs.
func AnalyzeRecord(rec m.Record) (m.AnalysisResult, error) {
	seq, err := Validate(rec.Sequence, m.RNA)
	if err != nil {
		return m.AnalysisResult{}, fmt.Errorf("record %s: %w", rec.ID, err)
	}

	usage, err := CodonUsage(seq.String())
	if err != nil {
		return m.AnalysisResult{}, fmt.Errorf("record %s: %w", rec.ID, err)
	}

	orfs, err := FindORFs(seq.String())
	if err != nil {
		return m.AnalysisResult{}, fmt.Errorf("record %s: %w", rec.ID, err)
	}

	return m.AnalysisResult{
		ID:         rec.ID,
		Length:     len(seq),
		GCContent:  GCContent(seq.String()),
		CodonUsage: usage,
		ORFs:       orfs,
	}, nil
}

// Summarize aggregates GC statistics and ORF counts over results. The GC
// standard deviation is the sample deviation and is zero for fewer than two
// records.
func Summarize(results []m.AnalysisResult) m.AnalysisSummary {
	summary := m.AnalysisSummary{Records: len(results)}
	if len(results) == 0 {
		return summary
	}

	gcs := make([]float64, len(results))

	for i, res := range results {
		gcs[i] = res.GCContent
		summary.TotalORFs += len(res.ORFs)

		for _, orf := range res.ORFs {
			summary.LongestORF = max(summary.LongestORF, orf.Len())
		}
	}

	if len(gcs) < 2 {
		summary.MeanGC = gcs[0]
		return summary
	}

	summary.MeanGC, summary.StdDevGC = stat.MeanStdDev(gcs, nil)

	return summary
}
