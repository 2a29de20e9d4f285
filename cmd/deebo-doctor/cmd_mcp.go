package main

import (
	"github.com/spf13/cobra"

	"github.com/snagasuri/deebo-doctor/pkg/locate"
	"github.com/snagasuri/deebo-doctor/pkg/mcpcheck"
	"github.com/snagasuri/deebo-doctor/pkg/platform"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp-tools",
	Short: "Check that the MCP helper tools respond",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runCheck(cmd, &mcpcheck.Check{
			Env:    platform.FromSystem(deeboPath),
			Runner: &locate.RealRunner{},
			Stater: &mcpcheck.RealStater{},
		})
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
