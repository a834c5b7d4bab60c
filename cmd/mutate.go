package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/dnatool/internal/domain"
	m "github.com/mouse-blink/dnatool/internal/model"
)

var mutateNumFlag int
var mutateMaxIndelFlag int
var mutateSeedFlag uint64

// mutateCmd represents the mutate command.
var mutateCmd = newMutateCmd()

func newMutateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mutate <in.fasta> <out.json>",
		Short: "Simulate random mutations on DNA sequences",
		Long:  mutateLongDescription,
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Mutate(domain.MutateArgs{
				Input:        m.Path(args[0]),
				Output:       m.Path(args[1]),
				Config:       m.Path(configFlag),
				Count:        mutateNumFlag,
				MaxIndelSize: mutateMaxIndelFlag,
				Seed:         mutateSeedFlag,
			})
		},
	}
	cmd.Flags().IntVarP(&mutateNumFlag, "num", "n", 1, "number of mutations to apply per record")
	cmd.Flags().IntVarP(&mutateMaxIndelFlag, "maxindel", "m", 0, "maximum insertion/deletion size (default from config, 3)")
	cmd.Flags().Uint64VarP(&mutateSeedFlag, "seed", "s", 0, "random seed; 0 draws a fresh seed")

	return cmd
}

func init() {
	rootCmd.AddCommand(mutateCmd)
}
