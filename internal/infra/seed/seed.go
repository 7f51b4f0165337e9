package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ormanli/rewards/internal/app/rewards"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Seeder stores accounts and restaurants.
type Seeder interface {
	SaveAccount(ctx context.Context, details rewards.AccountDetails) error
	SaveRestaurant(ctx context.Context, restaurant rewards.Restaurant) error
}

// Fixtures is the YAML document describing accounts and restaurants.
type Fixtures struct {
	Accounts    []AccountFixture    `yaml:"accounts"`
	Restaurants []RestaurantFixture `yaml:"restaurants"`
}

type AccountFixture struct {
	Number        string               `yaml:"number"`
	Name          string               `yaml:"name"`
	CreditCards   []string             `yaml:"creditCards"`
	Beneficiaries []BeneficiaryFixture `yaml:"beneficiaries"`
}

type BeneficiaryFixture struct {
	Name       string `yaml:"name"`
	Allocation string `yaml:"allocation"`
	Savings    string `yaml:"savings"`
}

type RestaurantFixture struct {
	MerchantNumber            string `yaml:"merchantNumber"`
	Name                      string `yaml:"name"`
	BenefitPercentage         string `yaml:"benefitPercentage"`
	BenefitAvailabilityPolicy string `yaml:"benefitAvailabilityPolicy"`
}

// Parse decodes fixtures from YAML.
func Parse(r io.Reader) (Fixtures, error) {
	var f Fixtures

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&f); err != nil {
		return Fixtures{}, fmt.Errorf("decode fixtures: %w", err)
	}

	return f, nil
}

// Load reads fixtures from path, or the embedded fixtures when path is empty.
func Load(path string) (Fixtures, error) {
	if path == "" {
		return Parse(bytes.NewReader(defaultFixtures))
	}

	file, err := os.Open(path)
	if err != nil {
		return Fixtures{}, err
	}
	defer file.Close() //nolint:errcheck

	return Parse(file)
}

// Apply saves all fixtures with the seeder. Saving the same fixtures again keeps accumulated savings.
func Apply(ctx context.Context, seeder Seeder, f Fixtures) error {
	for _, a := range f.Accounts {
		details, err := a.toAccountDetails()
		if err != nil {
			return err
		}

		if err := seeder.SaveAccount(ctx, details); err != nil {
			return err
		}
	}

	for _, r := range f.Restaurants {
		restaurant, err := r.toRestaurant()
		if err != nil {
			return err
		}

		if err := seeder.SaveRestaurant(ctx, restaurant); err != nil {
			return err
		}
	}

	slog.Info("Seeded store", "accounts", len(f.Accounts), "restaurants", len(f.Restaurants))

	return nil
}

func (a AccountFixture) toAccountDetails() (rewards.AccountDetails, error) {
	beneficiaries := make([]rewards.Beneficiary, 0, len(a.Beneficiaries))
	for _, b := range a.Beneficiaries {
		allocation, err := rewards.ParsePercentage(b.Allocation)
		if err != nil {
			return rewards.AccountDetails{}, fmt.Errorf("account %s beneficiary %s: %w", a.Number, b.Name, err)
		}

		var savings rewards.MonetaryAmount
		if b.Savings != "" {
			savings, err = rewards.ParseMonetaryAmount(b.Savings)
			if err != nil {
				return rewards.AccountDetails{}, fmt.Errorf("account %s beneficiary %s: %w", a.Number, b.Name, err)
			}
		}

		beneficiaries = append(beneficiaries, rewards.Beneficiary{
			Name:                 b.Name,
			AllocationPercentage: allocation,
			Savings:              savings,
		})
	}

	return rewards.AccountDetails{
		Number:        a.Number,
		Name:          a.Name,
		CreditCards:   a.CreditCards,
		Beneficiaries: beneficiaries,
	}, nil
}

func (r RestaurantFixture) toRestaurant() (rewards.Restaurant, error) {
	percentage, err := rewards.ParsePercentage(r.BenefitPercentage)
	if err != nil {
		return rewards.Restaurant{}, fmt.Errorf("restaurant %s: %w", r.MerchantNumber, err)
	}

	policy, err := rewards.ParseBenefitAvailabilityPolicy(r.BenefitAvailabilityPolicy)
	if err != nil {
		return rewards.Restaurant{}, fmt.Errorf("restaurant %s: %w", r.MerchantNumber, err)
	}

	return rewards.Restaurant{
		Number:                    r.MerchantNumber,
		Name:                      r.Name,
		BenefitPercentage:         percentage,
		BenefitAvailabilityPolicy: policy,
	}, nil
}
