package rewards

import (
	"context"
)

// RewardNetwork defines a contract for rewarding accounts for dining.
type RewardNetwork interface {
	RewardAccountFor(ctx context.Context, dining Dining) (RewardConfirmation, error)
}

// AccountRepository loads accounts to reward.
type AccountRepository interface {
	FindByCreditCard(ctx context.Context, creditCardNumber string) (Account, error)
}

// RestaurantRepository loads restaurants that determine how much to reward.
type RestaurantRepository interface {
	FindByMerchantNumber(ctx context.Context, merchantNumber string) (Restaurant, error)
}

// RewardRepository records successful reward transactions.
type RewardRepository interface {
	ConfirmReward(ctx context.Context, contribution AccountContribution, dining Dining) (RewardConfirmation, error)
}
