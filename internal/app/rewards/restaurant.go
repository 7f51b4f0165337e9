package rewards

import (
	"fmt"
)

// BenefitAvailabilityPolicy decides whether a dining earns a benefit.
type BenefitAvailabilityPolicy string

const (
	AlwaysAvailable BenefitAvailabilityPolicy = "A"
	NeverAvailable  BenefitAvailabilityPolicy = "N"
)

// ParseBenefitAvailabilityPolicy parses a policy code.
func ParseBenefitAvailabilityPolicy(s string) (BenefitAvailabilityPolicy, error) {
	switch p := BenefitAvailabilityPolicy(s); p {
	case AlwaysAvailable, NeverAvailable:
		return p, nil
	default:
		return "", fmt.Errorf("unknown benefit availability policy %q", s)
	}
}

// IsBenefitAvailableFor reports whether the account earns a benefit for the dining.
func (p BenefitAvailabilityPolicy) IsBenefitAvailableFor(Account, Dining) bool {
	return p == AlwaysAvailable
}

// Restaurant is a participating merchant that grants a percentage of the dining amount as a benefit.
type Restaurant struct {
	Number                    string
	Name                      string
	BenefitPercentage         Percentage
	BenefitAvailabilityPolicy BenefitAvailabilityPolicy
}

// CalculateBenefitFor returns the benefit the account earns for the dining.
func (r Restaurant) CalculateBenefitFor(account Account, dining Dining) MonetaryAmount {
	if !r.BenefitAvailabilityPolicy.IsBenefitAvailableFor(account, dining) {
		return 0
	}

	return dining.Amount.Percent(r.BenefitPercentage)
}
