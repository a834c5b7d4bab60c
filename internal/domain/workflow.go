// Package domain contains the sequence analysis and mutation engine and the
// workflow that connects it to adapters and the UI.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mouse-blink/dnatool/internal/adapter"
	"github.com/mouse-blink/dnatool/internal/controller"
	m "github.com/mouse-blink/dnatool/internal/model"
)

// Workflow defines the use cases exposed by the CLI.
type Workflow interface {
	Analyze(ctx context.Context, args AnalyzeArgs) error
	Mutate(args MutateArgs) error
	Transcribe(args TranscribeArgs) error
	Translate(args TranslateArgs) error
	Optimize(args OptimizeArgs) error
}

// AnalyzeArgs configures Workflow.Analyze.
type AnalyzeArgs struct {
	Input   m.Path
	Threads int
}

// MutateArgs configures Workflow.Mutate. A zero MaxIndelSize uses the
// configured value; a zero Seed draws a fresh one.
type MutateArgs struct {
	Input        m.Path
	Output       m.Path
	Config       m.Path
	Count        int
	MaxIndelSize int
	Seed         uint64
}

// TranscribeArgs configures Workflow.Transcribe.
type TranscribeArgs struct {
	Input  m.Path
	Output m.Path
}

// TranslateArgs configures Workflow.Translate.
type TranslateArgs struct {
	Input  m.Path
	Config m.Path
}

// OptimizeArgs configures Workflow.Optimize.
type OptimizeArgs struct {
	Protein string
	Config  m.Path
}

type workflow struct {
	fasta    adapter.FastaAdapter
	config   adapter.ConfigAdapter
	reports  adapter.ReportStore
	ui       controller.UI
	analyzer Analyzer
	logger   *slog.Logger

	newRandom func(seed uint64) RandomSource
	newSeed   func() uint64
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fasta adapter.FastaAdapter,
	config adapter.ConfigAdapter,
	reports adapter.ReportStore,
	ui controller.UI,
	analyzer Analyzer,
	logger *slog.Logger,
) Workflow {
	if logger == nil {
		logger = slog.Default()
	}

	return &workflow{
		fasta:     fasta,
		config:    config,
		reports:   reports,
		ui:        ui,
		analyzer:  analyzer,
		logger:    logger,
		newRandom: NewRandomSource,
		newSeed:   NewSeed,
	}
}

// Analyze reports GC content, codon usage and ORFs for every RNA record.
func (w *workflow) Analyze(ctx context.Context, args AnalyzeArgs) error {
	records, err := w.fasta.Read(args.Input)
	if err != nil {
		return err
	}

	w.logger.Debug("analyzing records", "input", args.Input, "records", len(records), "threads", args.Threads)

	results, summary, err := w.analyzer.Analyze(ctx, records, args.Threads)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	return w.ui.DisplayAnalysis(results, summary)
}

// Mutate applies random edits to every DNA record and saves the edit log.
func (w *workflow) Mutate(args MutateArgs) error {
	cfg, err := w.config.Load(args.Config)
	if err != nil {
		return err
	}

	records, err := w.fasta.Read(args.Input)
	if err != nil {
		return err
	}

	maxIndel := args.MaxIndelSize
	if maxIndel <= 0 {
		maxIndel = cfg.MaxIndelSize
	}

	seed := args.Seed
	if seed == 0 {
		seed = w.newSeed()
	}

	report := m.MutationReport{Records: make([]m.MutationResult, 0, len(records))}

	for i, rec := range records {
		seq, err := Validate(rec.Sequence, m.DNA)
		if err != nil {
			return fmt.Errorf("record %s: %w", rec.ID, err)
		}

		recordSeed := deriveSeed(seed, i)
		original := seq.String()

		mutations, err := NewSimulator(w.newRandom(recordSeed)).Simulate(&seq, args.Count, maxIndel)
		if err != nil {
			return fmt.Errorf("record %s: %w", rec.ID, err)
		}

		w.logger.Debug("mutated record", "id", rec.ID, "mutations", len(mutations), "seed", recordSeed)

		report.Records = append(report.Records, m.MutationResult{
			ID:        rec.ID + "_mutated",
			Original:  original,
			Mutated:   seq.String(),
			Seed:      recordSeed,
			Mutations: mutations,
		})
	}

	if err := w.reports.SaveMutationReport(args.Output, report); err != nil {
		return err
	}

	w.logger.Info("saved mutation report", "output", args.Output, "records", len(report.Records))

	return w.ui.DisplayMutations(report, args.Output)
}

// deriveSeed returns the seed of record i in a run started from seed. Zero is
// skipped on wrap-around because it asks for a fresh seed.
func deriveSeed(seed uint64, i int) uint64 {
	derived := seed + uint64(i)
	if derived < seed {
		derived++
	}

	return derived
}

// Transcribe converts every DNA record to RNA and writes them as FASTA.
func (w *workflow) Transcribe(args TranscribeArgs) error {
	records, err := w.fasta.Read(args.Input)
	if err != nil {
		return err
	}

	out := make([]m.Record, 0, len(records))

	for _, rec := range records {
		rna, err := TranscribeDNA(rec.Sequence)
		if err != nil {
			return fmt.Errorf("record %s: %w", rec.ID, err)
		}

		out = append(out, m.Record{ID: rec.ID + "_rna", Sequence: rna})
	}

	if err := w.fasta.Write(args.Output, out); err != nil {
		return err
	}

	w.logger.Info("transcribed DNA to RNA", "output", args.Output, "records", len(out))

	return nil
}

// Translate prints the protein encoded by every RNA record.
func (w *workflow) Translate(args TranslateArgs) error {
	cfg, err := w.config.Load(args.Config)
	if err != nil {
		return err
	}

	records, err := w.fasta.Read(args.Input)
	if err != nil {
		return err
	}

	classifier := NewClassifier(cfg.GeneticCode)
	proteins := make([]m.Record, 0, len(records))

	for _, rec := range records {
		protein, err := TranslateRNA(rec.Sequence, classifier)
		if err != nil {
			return fmt.Errorf("record %s: %w", rec.ID, err)
		}

		proteins = append(proteins, m.Record{ID: rec.ID, Sequence: protein})
	}

	return w.ui.DisplaySequences(proteins)
}

// Optimize back-translates a protein with the configured codon preferences.
func (w *workflow) Optimize(args OptimizeArgs) error {
	cfg, err := w.config.Load(args.Config)
	if err != nil {
		return err
	}

	dna, err := OptimizeCodons(args.Protein, cfg.CodonPreferences)
	if err != nil {
		return err
	}

	w.logger.Debug("optimized protein", "organism", cfg.Organism, "residues", len(args.Protein))

	return w.ui.DisplaySequences([]m.Record{{Sequence: dna}})
}
