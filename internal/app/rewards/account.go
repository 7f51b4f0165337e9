package rewards

import (
	"context"
)

// Account is a member account able to receive contributions.
// Implementations are handed out by an AccountRepository and persist contributions in their owning store.
type Account interface {
	Number() string
	Name() string
	MakeContribution(ctx context.Context, amount MonetaryAmount) (AccountContribution, error)
}

// Beneficiary receives a share of every contribution made to an account.
type Beneficiary struct {
	Name                 string
	AllocationPercentage Percentage
	Savings              MonetaryAmount
}

// AccountDetails is the stored state of an account.
type AccountDetails struct {
	Number        string
	Name          string
	CreditCards   []string
	Beneficiaries []Beneficiary
}

// Distribution is the part of a contribution credited to a single beneficiary.
type Distribution struct {
	BeneficiaryName string
	Amount          MonetaryAmount
	Percentage      Percentage
	TotalSavings    MonetaryAmount
}

// AccountContribution is a contribution committed to an account.
type AccountContribution struct {
	AccountNumber string
	Amount        MonetaryAmount
	Distributions []Distribution
}

// PlanContribution splits amount across beneficiaries by allocation, in beneficiary order.
// Rounding remainder is credited to the last beneficiary, so distributions always add up to amount.
// TotalSavings of each distribution is the beneficiary's savings after the credit.
func PlanContribution(accountNumber string, amount MonetaryAmount, beneficiaries []Beneficiary) (AccountContribution, error) {
	if err := ValidateAllocations(beneficiaries); err != nil {
		return AccountContribution{}, err
	}

	distributions := make([]Distribution, len(beneficiaries))
	remaining := amount
	for i, b := range beneficiaries {
		share := amount.Percent(b.AllocationPercentage)
		if share > remaining {
			share = remaining
		}
		if i == len(beneficiaries)-1 {
			share = remaining
		}
		remaining -= share

		distributions[i] = Distribution{
			BeneficiaryName: b.Name,
			Amount:          share,
			Percentage:      b.AllocationPercentage,
			TotalSavings:    b.Savings + share,
		}
	}

	return AccountContribution{
		AccountNumber: accountNumber,
		Amount:        amount,
		Distributions: distributions,
	}, nil
}

// ValidateAllocations checks that there is at least one beneficiary and allocations total 100%.
func ValidateAllocations(beneficiaries []Beneficiary) error {
	if len(beneficiaries) == 0 {
		return ErrInvalidAllocation
	}

	var total Percentage
	for _, b := range beneficiaries {
		if b.AllocationPercentage < 0 {
			return ErrInvalidAllocation
		}
		total += b.AllocationPercentage
	}

	if total != PercentageWhole {
		return ErrInvalidAllocation
	}

	return nil
}
