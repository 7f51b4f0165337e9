package rewards

// RewardConfirmation is a record of a contribution committed for a dining.
type RewardConfirmation struct {
	ConfirmationNumber string
	Contribution       AccountContribution
	Dining             Dining
}
