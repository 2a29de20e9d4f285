package main

import (
	"github.com/spf13/cobra"

	"github.com/snagasuri/deebo-doctor/pkg/locate"
	"github.com/snagasuri/deebo-doctor/pkg/nodecheck"
)

var nodeCmd = &cobra.Command{
	Use:   "node",
	Short: "Check the Node.js runtime version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCheck(cmd, &nodecheck.Check{Runner: &locate.RealRunner{}})
	},
}

func init() {
	rootCmd.AddCommand(nodeCmd)
}
