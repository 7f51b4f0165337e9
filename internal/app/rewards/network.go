package rewards

import (
	"context"
)

// Network rewards an account for dining at a restaurant.
// It coordinates the repositories and the restaurant to carry out a single reward.
type Network struct {
	accounts    AccountRepository
	restaurants RestaurantRepository
	rewards     RewardRepository
}

func NewNetwork(accounts AccountRepository, restaurants RestaurantRepository, rewards RewardRepository) *Network {
	return &Network{
		accounts:    accounts,
		restaurants: restaurants,
		rewards:     rewards,
	}
}

// RewardAccountFor credits the account paying for the dining with the benefit of the restaurant and confirms it.
// Errors of the collaborators are returned as is.
func (n *Network) RewardAccountFor(ctx context.Context, dining Dining) (RewardConfirmation, error) {
	account, err := n.accounts.FindByCreditCard(ctx, dining.CreditCardNumber)
	if err != nil {
		return RewardConfirmation{}, err
	}

	restaurant, err := n.restaurants.FindByMerchantNumber(ctx, dining.MerchantNumber)
	if err != nil {
		return RewardConfirmation{}, err
	}

	amount := restaurant.CalculateBenefitFor(account, dining)

	contribution, err := account.MakeContribution(ctx, amount)
	if err != nil {
		return RewardConfirmation{}, err
	}

	return n.rewards.ConfirmReward(ctx, contribution, dining)
}
