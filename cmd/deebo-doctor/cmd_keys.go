package main

import (
	"github.com/spf13/cobra"

	"github.com/snagasuri/deebo-doctor/pkg/keycheck"
	"github.com/snagasuri/deebo-doctor/pkg/platform"
)

var keysCmd = &cobra.Command{
	Use:   "api-keys",
	Short: "Check for a usable API credential in .env",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCheck(cmd, &keycheck.Check{
			Env: platform.FromSystem(deeboPath),
			FS:  &keycheck.RealFileSystem{},
		})
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
