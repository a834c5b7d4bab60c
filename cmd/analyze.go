package cmd

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/dnatool/internal/domain"
	m "github.com/mouse-blink/dnatool/internal/model"
)

var analyzeParallelFlag int

// analyzeCmd represents the analyze command.
var analyzeCmd = newAnalyzeCmd()

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <in.fasta>",
		Short: "Print GC content, codon usage and ORFs of RNA sequences",
		Long:  analyzeLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Analyze(cmd.Context(), domain.AnalyzeArgs{
				Input:   m.Path(args[0]),
				Threads: analyzeParallelFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&analyzeParallelFlag, "parallel", "p", runtime.NumCPU(), "number of records analyzed concurrently")

	return cmd
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
