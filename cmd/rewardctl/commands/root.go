package commands

import (
	"time"

	"github.com/spf13/cobra"
)

var (
	addr    string
	timeout time.Duration
)

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "rewardctl",
		Short:        "Client for the reward network server",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&addr, "addr", "localhost:11111", "reward server address")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Second, "request timeout")

	root.AddCommand(rewardCmd())
	return root
}
