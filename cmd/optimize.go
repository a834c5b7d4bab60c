package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/dnatool/internal/domain"
	m "github.com/mouse-blink/dnatool/internal/model"
)

// optimizeCmd represents the optimize command.
var optimizeCmd = newOptimizeCmd()

func newOptimizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optimize <protein>",
		Short: "Codon-optimize a protein sequence",
		Long:  "Back-translate a protein into DNA using the preferred codon of each amino acid (E. coli unless --config says otherwise).",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Optimize(domain.OptimizeArgs{
				Protein: args[0],
				Config:  m.Path(configFlag),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(optimizeCmd)
}
