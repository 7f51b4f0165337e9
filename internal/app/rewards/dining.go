package rewards

import (
	"time"
)

// Dining is a single occurrence of a member paying for a meal at a restaurant with a credit card.
type Dining struct {
	Amount           MonetaryAmount
	CreditCardNumber string
	MerchantNumber   string
	Date             time.Time
}

// NewDining creates a dining dated at the given time.
func NewDining(amount MonetaryAmount, creditCardNumber, merchantNumber string, date time.Time) Dining {
	return Dining{
		Amount:           amount,
		CreditCardNumber: creditCardNumber,
		MerchantNumber:   merchantNumber,
		Date:             date,
	}
}
