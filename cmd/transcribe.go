package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/dnatool/internal/domain"
	m "github.com/mouse-blink/dnatool/internal/model"
)

// transcribeCmd represents the transcribe command.
var transcribeCmd = newTranscribeCmd()

func newTranscribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transcribe <in.fasta> <out.fasta>",
		Short: "Transcribe DNA FASTA records to RNA",
		Long:  "Read a DNA FASTA file, replace T with U and write the RNA records, suffixed _rna, to a new FASTA file.",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Transcribe(domain.TranscribeArgs{
				Input:  m.Path(args[0]),
				Output: m.Path(args[1]),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(transcribeCmd)
}
