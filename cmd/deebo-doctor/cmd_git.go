package main

import (
	"github.com/spf13/cobra"

	"github.com/snagasuri/deebo-doctor/pkg/gitcheck"
	"github.com/snagasuri/deebo-doctor/pkg/locate"
)

var gitCmd = &cobra.Command{
	Use:   "git",
	Short: "Check that git is installed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCheck(cmd, &gitcheck.Check{Runner: &locate.RealRunner{}})
	},
}

func init() {
	rootCmd.AddCommand(gitCmd)
}
