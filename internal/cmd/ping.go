package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/runger/duct/internal/config"
	"github.com/runger/duct/ipc"
)

var pingCmd = &cobra.Command{
	Use:   "ping <channel>",
	Short: "Round-trip a message through a listening daemon",
	Long: `Connect to a channel, send a message, and print the reply.

Examples:
  duct ping ductd
  duct ping --transport datagram --message hello ductd
  duct ping --socket /tmp/custom.sock ductd`,
	Args: cobra.ExactArgs(1),
	RunE: runPing,
}

var (
	pingTransport string
	pingMessage   string
	pingTimeout   time.Duration
	pingSocket    string
	pingWait      bool
)

func init() {
	pingCmd.Flags().StringVar(&pingTransport, "transport", "stream", "Transport variant: stream or datagram")
	pingCmd.Flags().StringVar(&pingMessage, "message", "ping", "Message to send")
	pingCmd.Flags().DurationVar(&pingTimeout, "timeout", 5*time.Second, "Overall deadline for the round trip")
	pingCmd.Flags().StringVar(&pingSocket, "socket", "", "Literal socket path (bypasses channel resolution)")
	pingCmd.Flags().BoolVar(&pingWait, "wait", false, "Wait for the endpoint to appear before connecting")
}

func runPing(cmd *cobra.Command, args []string) error {
	kind, err := config.ParseConnectionType(pingTransport)
	if err != nil {
		return err
	}

	var addr ipc.Addr = ipc.ChannelID(args[0])
	if pingSocket != "" {
		addr = ipc.PathName(pingSocket)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, pingTimeout)
	defer cancelTimeout()

	var conn *ipc.Conn
	if pingWait {
		conn, err = ipc.ConnectWait(ctx, addr, kind)
	} else {
		conn, err = ipc.Connect(ctx, addr, kind)
	}
	if err != nil {
		return err
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	start := time.Now()
	if _, err := conn.Write([]byte(pingMessage)); err != nil {
		return fmt.Errorf("write failed: %w", err)
	}

	reply := make([]byte, len(pingMessage))
	if _, err := io.ReadFull(conn, reply); err != nil {
		return fmt.Errorf("read failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %v)\n", reply, kind, time.Since(start).Round(time.Microsecond))
	return nil
}
