package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runger/duct/ipc"
)

var pathCmd = &cobra.Command{
	Use:   "path <channel>",
	Short: "Print the platform path a channel name resolves to",
	Long: `Print the filesystem path (or pipe name on Windows) that a channel
name resolves to on this machine.

Examples:
  duct path ductd
  DUCT_SOCKET= duct path myapp`,
	Args: cobra.ExactArgs(1),
	RunE: runPath,
}

func runPath(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), ipc.ChannelID(args[0]).IPCPath())
	return nil
}
