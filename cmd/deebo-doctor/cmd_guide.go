package main

import (
	"github.com/spf13/cobra"

	"github.com/snagasuri/deebo-doctor/pkg/guidecheck"
	"github.com/snagasuri/deebo-doctor/pkg/platform"
)

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Check the guide server files and registrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCheck(cmd, &guidecheck.Check{
			Env: platform.FromSystem(deeboPath),
			FS:  &guidecheck.RealFileSystem{},
		})
	},
}

func init() {
	rootCmd.AddCommand(guideCmd)
}
