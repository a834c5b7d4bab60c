// Package cmd provides the root command and CLI setup for dnatool.
package cmd

import (
	"log/slog"
	"os"

	"github.com/mouse-blink/dnatool/internal/adapter"
	"github.com/mouse-blink/dnatool/internal/controller"
	"github.com/mouse-blink/dnatool/internal/domain"
	"github.com/spf13/cobra"
)

var fastaAdapter adapter.FastaAdapter
var configAdapter adapter.ConfigAdapter
var reportStore adapter.ReportStore
var analyzer domain.Analyzer
var workflow domain.Workflow
var ui controller.UI

var logLevel = new(slog.LevelVar)
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fastaAdapter = adapter.NewLocalFastaAdapter()
	configAdapter = adapter.NewLocalConfigAdapter()
	reportStore = adapter.NewReportStore()
	analyzer = domain.NewAnalyzer()
	workflow = domain.NewWorkflow(
		fastaAdapter,
		configAdapter,
		reportStore,
		ui,
		analyzer,
		logger,
	)
}

var verboseFlag bool
var configFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dnatool",
		Short: "DNA/RNA analysis and mutation toolkit",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verboseFlag {
				logLevel.Set(slog.LevelDebug)
			}
		},
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging on stderr")
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "YAML file with genetic code and codon preference tables")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
