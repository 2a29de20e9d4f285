package main

import (
	"github.com/spf13/cobra"

	"github.com/snagasuri/deebo-doctor/pkg/locate"
	"github.com/snagasuri/deebo-doctor/pkg/pathcheck"
	"github.com/snagasuri/deebo-doctor/pkg/platform"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Check tool executables and PATH contents",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCheck(cmd, &pathcheck.Check{
			Env:    platform.FromSystem(deeboPath),
			Runner: &locate.RealRunner{},
		})
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}
