package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/ormanli/rewards/internal/app/rewards"
)

// Store keeps accounts, restaurants and reward confirmations in memory.
// It implements the account, restaurant and reward repositories.
type Store struct {
	mu            sync.RWMutex
	accounts      map[string]*rewards.AccountDetails
	cards         map[string]string
	restaurants   map[string]rewards.Restaurant
	confirmations map[string][]string
	newID         func() string
}

func NewStore() *Store {
	return &Store{
		accounts:      make(map[string]*rewards.AccountDetails),
		cards:         make(map[string]string),
		restaurants:   make(map[string]rewards.Restaurant),
		confirmations: make(map[string][]string),
		newID:         uuid.NewString,
	}
}

// SaveAccount stores the account and indexes it by its credit cards.
// Cards dropped since the previous save no longer resolve to the account.
// Savings already accumulated by beneficiaries that are still present are kept.
func (s *Store) SaveAccount(_ context.Context, details rewards.AccountDetails) error {
	if err := rewards.ValidateAllocations(details.Beneficiaries); err != nil {
		return fmt.Errorf("account %s: %w", details.Number, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cloneDetails(details)
	if existing, ok := s.accounts[details.Number]; ok {
		for i, b := range stored.Beneficiaries {
			if idx := slices.IndexFunc(existing.Beneficiaries, func(e rewards.Beneficiary) bool { return e.Name == b.Name }); idx >= 0 {
				stored.Beneficiaries[i].Savings = existing.Beneficiaries[idx].Savings
			}
		}

		for _, card := range existing.CreditCards {
			if !slices.Contains(details.CreditCards, card) && s.cards[card] == details.Number {
				delete(s.cards, card)
			}
		}
	}

	s.accounts[details.Number] = &stored
	for _, card := range details.CreditCards {
		s.cards[card] = details.Number
	}

	return nil
}

// SaveRestaurant stores the restaurant by merchant number.
func (s *Store) SaveRestaurant(_ context.Context, restaurant rewards.Restaurant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.restaurants[restaurant.Number] = restaurant

	return nil
}

func (s *Store) FindByCreditCard(_ context.Context, creditCardNumber string) (rewards.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	number, ok := s.cards[creditCardNumber]
	if !ok {
		return nil, fmt.Errorf("credit card %s: %w", creditCardNumber, rewards.ErrAccountNotFound)
	}

	return &account{
		store:  s,
		number: number,
		name:   s.accounts[number].Name,
	}, nil
}

// FindByNumber returns a copy of the stored account.
func (s *Store) FindByNumber(_ context.Context, accountNumber string) (rewards.AccountDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	details, ok := s.accounts[accountNumber]
	if !ok {
		return rewards.AccountDetails{}, fmt.Errorf("account %s: %w", accountNumber, rewards.ErrAccountNotFound)
	}

	return cloneDetails(*details), nil
}

func (s *Store) FindByMerchantNumber(_ context.Context, merchantNumber string) (rewards.Restaurant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	restaurant, ok := s.restaurants[merchantNumber]
	if !ok {
		return rewards.Restaurant{}, fmt.Errorf("merchant %s: %w", merchantNumber, rewards.ErrRestaurantNotFound)
	}

	return restaurant, nil
}

func (s *Store) ConfirmReward(_ context.Context, contribution rewards.AccountContribution, dining rewards.Dining) (rewards.RewardConfirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	number := s.newID()
	s.confirmations[contribution.AccountNumber] = append(s.confirmations[contribution.AccountNumber], number)

	return rewards.RewardConfirmation{
		ConfirmationNumber: number,
		Contribution:       contribution,
		Dining:             dining,
	}, nil
}

// ConfirmationsFor returns confirmation numbers of the account, oldest first.
func (s *Store) ConfirmationsFor(_ context.Context, accountNumber string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.confirmations[accountNumber]), nil
}

// contribute credits the beneficiaries of the account.
func (s *Store) contribute(accountNumber string, amount rewards.MonetaryAmount) (rewards.AccountContribution, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	details, ok := s.accounts[accountNumber]
	if !ok {
		return rewards.AccountContribution{}, fmt.Errorf("account %s: %w", accountNumber, rewards.ErrAccountNotFound)
	}

	contribution, err := rewards.PlanContribution(accountNumber, amount, details.Beneficiaries)
	if err != nil {
		return rewards.AccountContribution{}, err
	}

	for i, d := range contribution.Distributions {
		details.Beneficiaries[i].Savings = d.TotalSavings
	}

	return contribution, nil
}

func cloneDetails(details rewards.AccountDetails) rewards.AccountDetails {
	details.CreditCards = slices.Clone(details.CreditCards)
	details.Beneficiaries = slices.Clone(details.Beneficiaries)

	return details
}

// account is a handle on an account held by the store.
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

func (a *account) MakeContribution(_ context.Context, amount rewards.MonetaryAmount) (rewards.AccountContribution, error) {
	return a.store.contribute(a.number, amount)
}
