package redisstore

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/ormanli/rewards/internal/app/rewards"
)

const keyPrefix = "rewards:"

func accountKey(number string) string {
	return keyPrefix + "account:" + number
}

func beneficiariesKey(number string) string {
	return accountKey(number) + ":beneficiaries"
}

func savingsKey(number string) string {
	return accountKey(number) + ":savings"
}

func cardsKey(number string) string {
	return accountKey(number) + ":cards"
}

func accountConfirmationsKey(number string) string {
	return accountKey(number) + ":confirmations"
}

func cardKey(creditCardNumber string) string {
	return keyPrefix + "card:" + creditCardNumber
}

func restaurantKey(merchantNumber string) string {
	return keyPrefix + "restaurant:" + merchantNumber
}

func confirmationKey(number string) string {
	return keyPrefix + "confirmation:" + number
}

const confirmationSequenceKey = keyPrefix + "confirmation:seq"

// Store keeps accounts, restaurants and reward confirmations in Redis.
// It implements the account, restaurant and reward repositories.
type Store struct {
	client redis.UniversalClient
}

func NewStore(client redis.UniversalClient) *Store {
	return &Store{client: client}
}

// SaveAccount stores the account and indexes it by its credit cards.
// Savings of beneficiaries that already exist are kept. Cards dropped since the previous save are unindexed.
func (s *Store) SaveAccount(ctx context.Context, details rewards.AccountDetails) error {
	if err := rewards.ValidateAllocations(details.Beneficiaries); err != nil {
		return fmt.Errorf("account %s: %w", details.Number, err)
	}

	dropped, err := s.droppedCards(ctx, details)
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, accountKey(details.Number), "name", details.Name)

		pipe.Del(ctx, beneficiariesKey(details.Number))
		for _, b := range details.Beneficiaries {
			pipe.HSet(ctx, beneficiariesKey(details.Number), b.Name, int64(b.AllocationPercentage))
			pipe.HSetNX(ctx, savingsKey(details.Number), b.Name, int64(b.Savings))
		}

		for _, card := range dropped {
			pipe.Del(ctx, cardKey(card))
		}
		pipe.Del(ctx, cardsKey(details.Number))
		for _, card := range details.CreditCards {
			pipe.Set(ctx, cardKey(card), details.Number, 0)
			pipe.SAdd(ctx, cardsKey(details.Number), card)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("save account %s: %w", details.Number, err)
	}

	return nil
}

// droppedCards returns cards previously saved for the account that are missing from details
// and still resolve to it.
func (s *Store) droppedCards(ctx context.Context, details rewards.AccountDetails) ([]string, error) {
	previous, err := s.client.SMembers(ctx, cardsKey(details.Number)).Result()
	if err != nil {
		return nil, fmt.Errorf("find account %s cards: %w", details.Number, err)
	}

	var dropped []string
	for _, card := range previous {
		if slices.Contains(details.CreditCards, card) {
			continue
		}

		owner, err := s.client.Get(ctx, cardKey(card)).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("find credit card %s: %w", card, err)
		}

		if owner == details.Number {
			dropped = append(dropped, card)
		}
	}

	return dropped, nil
}

// SaveRestaurant stores the restaurant by merchant number.
func (s *Store) SaveRestaurant(ctx context.Context, restaurant rewards.Restaurant) error {
	err := s.client.HSet(ctx, restaurantKey(restaurant.Number),
		"name", restaurant.Name,
		"benefit_percentage", int64(restaurant.BenefitPercentage),
		"benefit_availability_policy", string(restaurant.BenefitAvailabilityPolicy),
	).Err()
	if err != nil {
		return fmt.Errorf("save restaurant %s: %w", restaurant.Number, err)
	}

	return nil
}

func (s *Store) FindByCreditCard(ctx context.Context, creditCardNumber string) (rewards.Account, error) {
	number, err := s.client.Get(ctx, cardKey(creditCardNumber)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("credit card %s: %w", creditCardNumber, rewards.ErrAccountNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find credit card %s: %w", creditCardNumber, err)
	}

	name, err := s.client.HGet(ctx, accountKey(number), "name").Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("account %s: %w", number, rewards.ErrAccountNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("find account %s: %w", number, err)
	}

	return &account{
		store:  s,
		number: number,
		name:   name,
	}, nil
}

// FindByNumber loads the stored account. Beneficiaries are ordered by name.
func (s *Store) FindByNumber(ctx context.Context, accountNumber string) (rewards.AccountDetails, error) {
	name, err := s.client.HGet(ctx, accountKey(accountNumber), "name").Result()
	if errors.Is(err, redis.Nil) {
		return rewards.AccountDetails{}, fmt.Errorf("account %s: %w", accountNumber, rewards.ErrAccountNotFound)
	}
	if err != nil {
		return rewards.AccountDetails{}, fmt.Errorf("find account %s: %w", accountNumber, err)
	}

	beneficiaries, err := s.beneficiaries(ctx, accountNumber)
	if err != nil {
		return rewards.AccountDetails{}, err
	}

	cards, err := s.client.SMembers(ctx, cardsKey(accountNumber)).Result()
	if err != nil {
		return rewards.AccountDetails{}, fmt.Errorf("find account %s cards: %w", accountNumber, err)
	}
	sort.Strings(cards)

	return rewards.AccountDetails{
		Number:        accountNumber,
		Name:          name,
		CreditCards:   cards,
		Beneficiaries: beneficiaries,
	}, nil
}

func (s *Store) FindByMerchantNumber(ctx context.Context, merchantNumber string) (rewards.Restaurant, error) {
	fields, err := s.client.HGetAll(ctx, restaurantKey(merchantNumber)).Result()
	if err != nil {
		return rewards.Restaurant{}, fmt.Errorf("find merchant %s: %w", merchantNumber, err)
	}
	if len(fields) == 0 {
		return rewards.Restaurant{}, fmt.Errorf("merchant %s: %w", merchantNumber, rewards.ErrRestaurantNotFound)
	}

	percentage, err := strconv.ParseInt(fields["benefit_percentage"], 10, 64)
	if err != nil {
		return rewards.Restaurant{}, fmt.Errorf("merchant %s benefit percentage: %w", merchantNumber, err)
	}
	if percentage < 0 || percentage > int64(rewards.PercentageWhole) {
		return rewards.Restaurant{}, fmt.Errorf("merchant %s benefit percentage %d: %w", merchantNumber, percentage, rewards.ErrInvalidPercentage)
	}

	policy, err := rewards.ParseBenefitAvailabilityPolicy(fields["benefit_availability_policy"])
	if err != nil {
		return rewards.Restaurant{}, fmt.Errorf("merchant %s: %w", merchantNumber, err)
	}

	return rewards.Restaurant{
		Number:                    merchantNumber,
		Name:                      fields["name"],
		BenefitPercentage:         rewards.Percentage(percentage),
		BenefitAvailabilityPolicy: policy,
	}, nil
}

func (s *Store) ConfirmReward(ctx context.Context, contribution rewards.AccountContribution, dining rewards.Dining) (rewards.RewardConfirmation, error) {
	seq, err := s.client.Incr(ctx, confirmationSequenceKey).Result()
	if err != nil {
		return rewards.RewardConfirmation{}, fmt.Errorf("next confirmation number: %w", err)
	}

	number := strconv.FormatInt(seq, 10)

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, confirmationKey(number),
			"account_number", contribution.AccountNumber,
			"amount", int64(contribution.Amount),
			"dining_amount", int64(dining.Amount),
			"credit_card_number", dining.CreditCardNumber,
			"merchant_number", dining.MerchantNumber,
			"dining_date", dining.Date.UTC().Format(time.RFC3339),
		)
		pipe.RPush(ctx, accountConfirmationsKey(contribution.AccountNumber), number)

		return nil
	})
	if err != nil {
		return rewards.RewardConfirmation{}, fmt.Errorf("confirm reward %s: %w", number, err)
	}

	return rewards.RewardConfirmation{
		ConfirmationNumber: number,
		Contribution:       contribution,
		Dining:             dining,
	}, nil
}

// ConfirmationsFor returns confirmation numbers of the account, oldest first.
func (s *Store) ConfirmationsFor(ctx context.Context, accountNumber string) ([]string, error) {
	numbers, err := s.client.LRange(ctx, accountConfirmationsKey(accountNumber), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("find confirmations of %s: %w", accountNumber, err)
	}

	return numbers, nil
}

// beneficiaries loads beneficiaries of the account with their savings, ordered by name.
func (s *Store) beneficiaries(ctx context.Context, accountNumber string) ([]rewards.Beneficiary, error) {
	allocations, err := s.client.HGetAll(ctx, beneficiariesKey(accountNumber)).Result()
	if err != nil {
		return nil, fmt.Errorf("find beneficiaries of %s: %w", accountNumber, err)
	}

	savings, err := s.client.HGetAll(ctx, savingsKey(accountNumber)).Result()
	if err != nil {
		return nil, fmt.Errorf("find savings of %s: %w", accountNumber, err)
	}

	beneficiaries := make([]rewards.Beneficiary, 0, len(allocations))
	for name, allocation := range allocations {
		percentage, err := strconv.ParseInt(allocation, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("beneficiary %s of %s allocation: %w", name, accountNumber, err)
		}

		var saved int64
		if v, ok := savings[name]; ok {
			saved, err = strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("beneficiary %s of %s savings: %w", name, accountNumber, err)
			}
		}

		beneficiaries = append(beneficiaries, rewards.Beneficiary{
			Name:                 name,
			AllocationPercentage: rewards.Percentage(percentage),
			Savings:              rewards.MonetaryAmount(saved),
		})
	}

	sort.Slice(beneficiaries, func(i, j int) bool {
		return beneficiaries[i].Name < beneficiaries[j].Name
	})

	return beneficiaries, nil
}

// contribute credits the beneficiaries of the account in a single transaction.
func (s *Store) contribute(ctx context.Context, accountNumber string, amount rewards.MonetaryAmount) (rewards.AccountContribution, error) {
	beneficiaries, err := s.beneficiaries(ctx, accountNumber)
	if err != nil {
		return rewards.AccountContribution{}, err
	}

	contribution, err := rewards.PlanContribution(accountNumber, amount, beneficiaries)
	if err != nil {
		return rewards.AccountContribution{}, fmt.Errorf("account %s: %w", accountNumber, err)
	}

	totals := make([]*redis.IntCmd, len(contribution.Distributions))
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, d := range contribution.Distributions {
			totals[i] = pipe.HIncrBy(ctx, savingsKey(accountNumber), d.BeneficiaryName, int64(d.Amount))
		}
		return nil
	})
	if err != nil {
		return rewards.AccountContribution{}, fmt.Errorf("contribute to %s: %w", accountNumber, err)
	}

	for i := range contribution.Distributions {
		contribution.Distributions[i].TotalSavings = rewards.MonetaryAmount(totals[i].Val())
	}

	return contribution, nil
}

// account is a handle on an account stored in Redis.
type account struct {
	store  *Store
	number string
	name   string
}

func (a *account) Number() string {
	return a.number
}

func (a *account) Name() string {
	return a.name
}

func (a *account) MakeContribution(ctx context.Context, amount rewards.MonetaryAmount) (rewards.AccountContribution, error) {
	return a.store.contribute(ctx, a.number, amount)
}
