//go:generate enumer -type=status -transform=upper

package tcp

import (
	"fmt"
	"strings"

	"github.com/ormanli/rewards/internal/app/rewards"
)

type response struct {
	status             status
	reason             string
	confirmationNumber string
	amount             rewards.MonetaryAmount
}

func (r response) String() string {
	if r.status == Accepted {
		return fmt.Sprintf("RESPONSE|%s|%s|%s", r.status, r.confirmationNumber, r.amount)
	}

	return fmt.Sprintf("RESPONSE|%s|%s", r.status, capitalizeFirst(r.reason))
}

type status int

const (
	Accepted status = iota
	Rejected
)

// parseResponse parses a response line written by the transport.
func parseResponse(s string) (response, error) {
	parts := strings.Split(s, "|")
	if len(parts) < 3 || parts[0] != "RESPONSE" {
		return response{}, ErrInvalidResponse
	}

	st, err := statusString(parts[1])
	if err != nil {
		return response{}, ErrInvalidResponse
	}

	switch st {
	case Accepted:
		if len(parts) != 4 {
			return response{}, ErrInvalidResponse
		}

		amount, err := rewards.ParseMonetaryAmount(parts[3])
		if err != nil {
			return response{}, ErrInvalidResponse
		}

		return response{status: Accepted, confirmationNumber: parts[2], amount: amount}, nil
	default:
		return response{status: Rejected, reason: strings.Join(parts[2:], "|")}, nil
	}
}

func capitalizeFirst(s string) string {
	if len(s) == 0 {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
