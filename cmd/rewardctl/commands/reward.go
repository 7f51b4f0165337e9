package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ormanli/rewards/internal/app/rewards"
	"github.com/ormanli/rewards/internal/infra/transport/tcp"
)

var errRejected = errors.New("reward rejected")

// reward --amount <amount> --card <number> --merchant <number>: reward the account paying with the card.
func rewardCmd() *cobra.Command {
	var (
		amount   string
		card     string
		merchant string
	)

	cmd := &cobra.Command{
		Use:   "reward",
		Short: "Reward an account for a dining",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rewards.ParseMonetaryAmount(amount)
			if err != nil {
				return fmt.Errorf("--amount %q: %w", amount, err)
			}

			reply, err := tcp.NewClient(addr, timeout).Reward(cmd.Context(), a, card, merchant)
			if err != nil {
				return err
			}

			if !reply.Accepted {
				return fmt.Errorf("%w: %s", errRejected, reply.Reason)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "confirmation %s: contributed %s\n", reply.ConfirmationNumber, reply.Amount)
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "dining amount, e.g. 100.00")
	cmd.Flags().StringVar(&card, "card", "", "credit card number used to pay")
	cmd.Flags().StringVar(&merchant, "merchant", "", "merchant number of the restaurant")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("card")
	_ = cmd.MarkFlagRequired("merchant")
	return cmd
}
