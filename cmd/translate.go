package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/dnatool/internal/domain"
	m "github.com/mouse-blink/dnatool/internal/model"
)

// translateCmd represents the translate command.
var translateCmd = newTranslateCmd()

func newTranslateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate <in.fasta>",
		Short: "Translate RNA FASTA records to protein",
		Long:  "Translate every RNA record from its first AUG up to the first stop codon and print the proteins.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Translate(domain.TranslateArgs{
				Input:  m.Path(args[0]),
				Config: m.Path(configFlag),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(translateCmd)
}
