package numerals

import (
	"fmt"
	"time"

	"github.com/louisbranch/numerals.space/internal/platform/discovery"
	platformgrpc "github.com/louisbranch/numerals.space/internal/platform/grpc"
	"github.com/louisbranch/numerals.space/internal/platform/timeouts"
	"github.com/spf13/cobra"
)

func newHealthCommand() *cobra.Command {
	var (
		addr    string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Probe the web service's gRPC health endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			addr = discovery.OrDefaultDialAddr(addr, discovery.ServiceWebHealth)
			conn, err := platformgrpc.DialWithHealth(cmd.Context(), addr, timeout, nil)
			if err != nil {
				return fmt.Errorf("%s: %w", addr, err)
			}
			defer conn.Close()
			fmt.Fprintf(cmd.OutOrStdout(), "%s: SERVING\n", addr)
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", discovery.DefaultDialAddr(discovery.ServiceWebHealth), "gRPC health address")
	cmd.Flags().DurationVar(&timeout, "timeout", timeouts.GRPCDial, "how long to wait for SERVING")
	return cmd
}
