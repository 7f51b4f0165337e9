package rewards

import "errors"

var (
	ErrInvalidRequest        = errors.New("invalid request")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInvalidPercentage     = errors.New("invalid percentage")
	ErrInvalidCreditCard     = errors.New("invalid credit card number")
	ErrInvalidMerchantNumber = errors.New("invalid merchant number")
	ErrInvalidAllocation     = errors.New("beneficiary allocations must total 100%")
	ErrAccountNotFound       = errors.New("account not found")
	ErrRestaurantNotFound    = errors.New("restaurant not found")
)
