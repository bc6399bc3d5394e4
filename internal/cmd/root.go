// Package cmd implements the CLI commands for duct.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "duct",
	Short: "local IPC channels without the platform branching",
	Long: `duct - local IPC channels without the platform branching
  - duct path <channel> → where a channel lives on this machine
  - duct ping <channel> → round-trip a message through a listening daemon`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(versionCmd)
}
