package domain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/dnatool/internal/adapter"
	adaptermocks "github.com/mouse-blink/dnatool/internal/adapter/mocks"
	controllermocks "github.com/mouse-blink/dnatool/internal/controller/mocks"
	m "github.com/mouse-blink/dnatool/internal/model"
)

type workflowDeps struct {
	fasta   *adaptermocks.MockFastaAdapter
	config  *adaptermocks.MockConfigAdapter
	reports *adaptermocks.MockReportStore
	ui      *controllermocks.MockUI
}

func newTestWorkflow(t *testing.T) (*workflow, workflowDeps) {
	t.Helper()

	deps := workflowDeps{
		fasta:   adaptermocks.NewMockFastaAdapter(t),
		config:  adaptermocks.NewMockConfigAdapter(t),
		reports: adaptermocks.NewMockReportStore(t),
		ui:      controllermocks.NewMockUI(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	wf := NewWorkflow(deps.fasta, deps.config, deps.reports, deps.ui, NewAnalyzer(), logger)

	return wf.(*workflow), deps
}

func TestWorkflow_Analyze(t *testing.T) {
	wf, deps := newTestWorkflow(t)

	records := []m.Record{{ID: "a", Sequence: "AUGUUUUAA"}, {ID: "b", Sequence: "GGGCCC"}}
	deps.fasta.On("Read", m.Path("in.fasta")).Return(records, nil)
	deps.ui.On("DisplayAnalysis",
		mock.MatchedBy(func(results []m.AnalysisResult) bool {
			return len(results) == 2 && results[0].ID == "a" && results[1].ID == "b"
		}),
		mock.MatchedBy(func(summary m.AnalysisSummary) bool {
			return summary.Records == 2 && summary.TotalORFs == 1
		}),
	).Return(nil)

	err := wf.Analyze(context.Background(), AnalyzeArgs{Input: "in.fasta", Threads: 2})
	require.NoError(t, err)
}

func TestWorkflow_Analyze_InvalidRecord(t *testing.T) {
	wf, deps := newTestWorkflow(t)

	deps.fasta.On("Read", m.Path("in.fasta")).Return([]m.Record{{ID: "a", Sequence: "ATG"}}, nil)

	err := wf.Analyze(context.Background(), AnalyzeArgs{Input: "in.fasta", Threads: 1})
	require.ErrorIs(t, err, ErrInvalidBase)
	assert.Contains(t, err.Error(), "analyze:")
}

func TestWorkflow_Analyze_ReadError(t *testing.T) {
	wf, deps := newTestWorkflow(t)

	readErr := errors.New("no such file")
	deps.fasta.On("Read", m.Path("missing.fasta")).Return(nil, readErr)

	err := wf.Analyze(context.Background(), AnalyzeArgs{Input: "missing.fasta"})
	require.ErrorIs(t, err, readErr)
}

func TestWorkflow_Mutate(t *testing.T) {
	wf, deps := newTestWorkflow(t)

	sources := map[uint64]*scriptedSource{
		100: {t: t, draws: []int{0, 0, 1}},    // point at 0 to T
		101: {t: t, draws: []int{2, 3, 0}},    // delete one base at 3
		102: {t: t, draws: []int{1, 0, 0, 3}}, // insert G at 0
	}
	wf.newSeed = func() uint64 { return 100 }
	wf.newRandom = func(seed uint64) RandomSource {
		src, ok := sources[seed]
		require.True(t, ok, "unexpected seed %d", seed)

		return src
	}

	cfg := adapter.DefaultConfig()
	deps.config.On("Load", m.Path("")).Return(cfg, nil)
	deps.fasta.On("Read", m.Path("in.fasta")).Return([]m.Record{
		{ID: "s1", Sequence: "ATCG"},
		{ID: "s2", Sequence: "aaaa"},
		{ID: "s3", Sequence: "C"},
	}, nil)

	want := m.MutationReport{Records: []m.MutationResult{
		{
			ID: "s1_mutated", Original: "ATCG", Mutated: "TTCG", Seed: 100,
			Mutations: []m.MutationRecord{{Index: 0, Kind: m.MutationPoint, Original: "A", Mutated: "T"}},
		},
		{
			ID: "s2_mutated", Original: "AAAA", Mutated: "AAA", Seed: 101,
			Mutations: []m.MutationRecord{{Index: 3, Kind: m.MutationDeletion, Original: "A", Mutated: m.NoBase}},
		},
		{
			ID: "s3_mutated", Original: "C", Mutated: "GC", Seed: 102,
			Mutations: []m.MutationRecord{{Index: 0, Kind: m.MutationInsertion, Original: m.NoBase, Mutated: "G"}},
		},
	}}
	deps.reports.On("SaveMutationReport", m.Path("out.json"), want).Return(nil)
	deps.ui.On("DisplayMutations", want, m.Path("out.json")).Return(nil)

	err := wf.Mutate(MutateArgs{Input: "in.fasta", Output: "out.json", Count: 1})
	require.NoError(t, err)

	// Configured indel size applies when the flag is unset.
	assert.Equal(t, []int{3, 1, 3, 4}, sources[102].asked)
}

func TestWorkflow_Mutate_ExplicitSeedAndIndelSize(t *testing.T) {
	wf, deps := newTestWorkflow(t)

	src := &scriptedSource{t: t, draws: []int{1, 0, 0, 2}}
	wf.newSeed = func() uint64 {
		t.Fatal("seed should not be drawn")
		return 0
	}
	wf.newRandom = func(seed uint64) RandomSource {
		assert.Equal(t, uint64(7), seed)
		return src
	}

	deps.config.On("Load", m.Path("cfg.yaml")).Return(adapter.DefaultConfig(), nil)
	deps.fasta.On("Read", m.Path("in.fasta")).Return([]m.Record{{ID: "s", Sequence: "AT"}}, nil)
	deps.reports.On("SaveMutationReport", m.Path("out.yaml"), mock.Anything).Return(nil)
	deps.ui.On("DisplayMutations", mock.Anything, m.Path("out.yaml")).Return(nil)

	err := wf.Mutate(MutateArgs{
		Input: "in.fasta", Output: "out.yaml", Config: "cfg.yaml",
		Count: 1, MaxIndelSize: 1, Seed: 7,
	})
	require.NoError(t, err)

	assert.Equal(t, []int{3, 2, 1, 4}, src.asked)
}

func TestWorkflow_Mutate_Errors(t *testing.T) {
	t.Run("invalid DNA", func(t *testing.T) {
		wf, deps := newTestWorkflow(t)

		deps.config.On("Load", m.Path("")).Return(adapter.DefaultConfig(), nil)
		deps.fasta.On("Read", m.Path("in.fasta")).Return([]m.Record{{ID: "r", Sequence: "AUG"}}, nil)

		err := wf.Mutate(MutateArgs{Input: "in.fasta", Output: "out.json", Count: 1, Seed: 1})
		require.ErrorIs(t, err, ErrInvalidBase)
		assert.Contains(t, err.Error(), "record r")
	})

	t.Run("config error", func(t *testing.T) {
		wf, deps := newTestWorkflow(t)

		cfgErr := errors.New("bad config")
		deps.config.On("Load", m.Path("bad.yaml")).Return(m.Config{}, cfgErr)

		err := wf.Mutate(MutateArgs{Input: "in.fasta", Output: "out.json", Config: "bad.yaml"})
		require.ErrorIs(t, err, cfgErr)
	})

	t.Run("save error", func(t *testing.T) {
		wf, deps := newTestWorkflow(t)

		saveErr := errors.New("disk full")
		deps.config.On("Load", m.Path("")).Return(adapter.DefaultConfig(), nil)
		deps.fasta.On("Read", m.Path("in.fasta")).Return([]m.Record{{ID: "r", Sequence: "ATCG"}}, nil)
		deps.reports.On("SaveMutationReport", m.Path("out.json"), mock.Anything).Return(saveErr)

		err := wf.Mutate(MutateArgs{Input: "in.fasta", Output: "out.json", Count: 2, Seed: 3})
		require.ErrorIs(t, err, saveErr)
	})
}

func TestWorkflow_Transcribe(t *testing.T) {
	wf, deps := newTestWorkflow(t)

	deps.fasta.On("Read", m.Path("in.fasta")).Return([]m.Record{
		{ID: "g1", Sequence: "ATGTAA"},
		{ID: "g2", Sequence: "ttt"},
	}, nil)
	deps.fasta.On("Write", m.Path("out.fasta"), []m.Record{
		{ID: "g1_rna", Sequence: "AUGUAA"},
		{ID: "g2_rna", Sequence: "UUU"},
	}).Return(nil)

	err := wf.Transcribe(TranscribeArgs{Input: "in.fasta", Output: "out.fasta"})
	require.NoError(t, err)
}

func TestWorkflow_Transcribe_InvalidRecord(t *testing.T) {
	wf, deps := newTestWorkflow(t)

	deps.fasta.On("Read", m.Path("in.fasta")).Return([]m.Record{{ID: "g1", Sequence: "AUG"}}, nil)

	err := wf.Transcribe(TranscribeArgs{Input: "in.fasta", Output: "out.fasta"})
	require.ErrorIs(t, err, ErrInvalidBase)
}

func TestWorkflow_Translate(t *testing.T) {
	wf, deps := newTestWorkflow(t)

	deps.config.On("Load", m.Path("")).Return(adapter.DefaultConfig(), nil)
	deps.fasta.On("Read", m.Path("in.fasta")).Return([]m.Record{
		{ID: "r1", Sequence: "AUGUUUUAA"},
		{ID: "r2", Sequence: "CCC"},
	}, nil)
	deps.ui.On("DisplaySequences", []m.Record{
		{ID: "r1", Sequence: "MF"},
		{ID: "r2", Sequence: ""},
	}).Return(nil)

	require.NoError(t, wf.Translate(TranslateArgs{Input: "in.fasta"}))
}

func TestWorkflow_Translate_CustomCode(t *testing.T) {
	wf, deps := newTestWorkflow(t)

	cfg := adapter.DefaultConfig()
	cfg.GeneticCode["UGA"] = 'W'

	deps.config.On("Load", m.Path("mito.yaml")).Return(cfg, nil)
	deps.fasta.On("Read", m.Path("in.fasta")).Return([]m.Record{{ID: "r", Sequence: "AUGUGAUAA"}}, nil)
	deps.ui.On("DisplaySequences", []m.Record{{ID: "r", Sequence: "MW"}}).Return(nil)

	require.NoError(t, wf.Translate(TranslateArgs{Input: "in.fasta", Config: "mito.yaml"}))
}

func TestWorkflow_Optimize(t *testing.T) {
	wf, deps := newTestWorkflow(t)

	deps.config.On("Load", m.Path("")).Return(adapter.DefaultConfig(), nil)
	deps.ui.On("DisplaySequences", []m.Record{{Sequence: "ATGTTTTAA"}}).Return(nil)

	require.NoError(t, wf.Optimize(OptimizeArgs{Protein: "MF*"}))
}

func TestWorkflow_Optimize_UnknownResidue(t *testing.T) {
	wf, deps := newTestWorkflow(t)

	deps.config.On("Load", m.Path("")).Return(adapter.DefaultConfig(), nil)

	err := wf.Optimize(OptimizeArgs{Protein: "MB"})
	require.ErrorIs(t, err, ErrUnknownAminoAcid)
}

func TestDeriveSeed(t *testing.T) {
	tests := []struct {
		seed uint64
		i    int
		want uint64
	}{
		{seed: 7, i: 0, want: 7},
		{seed: 7, i: 3, want: 10},
		{seed: math.MaxUint64, i: 0, want: math.MaxUint64},
		{seed: math.MaxUint64, i: 1, want: 1},
		{seed: math.MaxUint64 - 1, i: 2, want: 1},
		{seed: math.MaxUint64 - 1, i: 3, want: 2},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("seed=%d i=%d", tt.seed, tt.i), func(t *testing.T) {
			assert.Equal(t, tt.want, deriveSeed(tt.seed, tt.i))
		})
	}
}

func TestWorkflow_Mutate_SeedsNeverWrapToZero(t *testing.T) {
	wf, deps := newTestWorkflow(t)

	var seeds []uint64
	wf.newRandom = func(seed uint64) RandomSource {
		seeds = append(seeds, seed)
		return &scriptedSource{t: t}
	}

	deps.config.On("Load", m.Path("")).Return(adapter.DefaultConfig(), nil)
	deps.fasta.On("Read", m.Path("in.fasta")).Return([]m.Record{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil)
	deps.reports.On("SaveMutationReport", m.Path("out.json"), mock.MatchedBy(func(report m.MutationReport) bool {
		for _, res := range report.Records {
			if res.Seed == 0 {
				return false
			}
		}

		return len(report.Records) == 3
	})).Return(nil)
	deps.ui.On("DisplayMutations", mock.Anything, m.Path("out.json")).Return(nil)

	err := wf.Mutate(MutateArgs{Input: "in.fasta", Output: "out.json", Count: 1, Seed: math.MaxUint64})
	require.NoError(t, err)

	assert.Equal(t, []uint64{math.MaxUint64, 1, 2}, seeds)
}
