package main

import (
	"github.com/spf13/cobra"

	"github.com/snagasuri/deebo-doctor/pkg/configcheck"
	"github.com/snagasuri/deebo-doctor/pkg/platform"
)

var configsCmd = &cobra.Command{
	Use:   "configs",
	Short: "Check host-application and Deebo config files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCheck(cmd, &configcheck.Check{
			Env: platform.FromSystem(deeboPath),
			FS:  &configcheck.RealFileSystem{},
		})
	},
}

func init() {
	rootCmd.AddCommand(configsCmd)
}
