package tcp

import (
	"strings"
	"time"

	"github.com/ormanli/rewards/internal/app/rewards"
)

const requestCommand = "REWARD"

// parseRequest parses a string representation of a dining and returns it dated at now.
func parseRequest(s string, now time.Time) (rewards.Dining, error) {
	parts := strings.Split(s, "|")
	if len(parts) != 4 || parts[0] != requestCommand {
		return rewards.Dining{}, rewards.ErrInvalidRequest
	}

	amount, err := rewards.ParseMonetaryAmount(parts[1])
	if err != nil {
		return rewards.Dining{}, rewards.ErrInvalidAmount
	}

	return rewards.NewDining(amount, parts[2], parts[3], now), nil
}

// formatRequest is the inverse of parseRequest.
func formatRequest(amount rewards.MonetaryAmount, creditCardNumber, merchantNumber string) string {
	return strings.Join([]string{requestCommand, amount.String(), creditCardNumber, merchantNumber}, "|")
}
