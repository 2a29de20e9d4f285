package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/snagasuri/deebo-doctor/pkg/doctor"
	"github.com/snagasuri/deebo-doctor/pkg/output"
	"github.com/snagasuri/deebo-doctor/pkg/platform"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	deeboPath  string
	jsonOutput bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:     "deebo-doctor",
	Short:   "Check that your environment is ready to run Deebo",
	Long:    "deebo-doctor verifies runtime prerequisites, MCP tool availability,\nhost-application configuration and API credentials for a local Deebo install.",
	Version: Version,
	Args:    cobra.NoArgs,
	RunE:    runAllChecks,

	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&deeboPath, "deebo-path", "", "Deebo installation root (default ~/.deebo)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print detail lines for every check")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runAllChecks(cmd *cobra.Command, _ []string) error {
	env := platform.FromSystem(deeboPath)
	results := doctor.RunAll(doctor.Checks(env))

	out := cmd.OutOrStdout()
	if jsonOutput {
		if err := output.PrintJSON(out, results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			output.PrintResult(out, r, verbose)
		}
		output.PrintSummary(out, results)
	}

	if doctor.HasFailures(results) {
		return ErrCheckFailed
	}
	return nil
}
