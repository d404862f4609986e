package commands

import (
	"github.com/spf13/cobra"

	"github.com/ppiankov/coldtco/internal/logging"
)

var (
	verbose bool
	version string
	commit  string
	date    string
)

var rootCmd = &cobra.Command{
	Use:   "coldtco",
	Short: "coldtco — cold storage total cost of ownership calculator",
	Long: `coldtco compares what it costs to archive data with cold storage providers.

Given an initial volume, a monthly ingest volume and a duration, it reports the
initial archiving cost and the total cost of ownership for each provider.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Init(verbose)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with injected build info.
func Execute(v, c, d string) error {
	version = v
	commit = c
	date = d
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable verbose logging")
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(providersCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}
