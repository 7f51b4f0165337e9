package rewards

import (
	"context"
)

const (
	creditCardNumberLength = 16
	merchantNumberLength   = 10
)

type ValidationNetwork struct {
	network RewardNetwork
}

func NewValidationNetwork(network RewardNetwork) *ValidationNetwork {
	return &ValidationNetwork{network: network}
}

func (v *ValidationNetwork) RewardAccountFor(ctx context.Context, dining Dining) (RewardConfirmation, error) {
	if dining.Amount <= 0 || dining.Amount > MaxMonetaryAmount {
		return RewardConfirmation{}, ErrInvalidAmount
	}

	if !isDigits(dining.CreditCardNumber, creditCardNumberLength) {
		return RewardConfirmation{}, ErrInvalidCreditCard
	}

	if !isDigits(dining.MerchantNumber, merchantNumberLength) {
		return RewardConfirmation{}, ErrInvalidMerchantNumber
	}

	return v.network.RewardAccountFor(ctx, dining)
}

func isDigits(s string, length int) bool {
	if len(s) != length {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
