package rewards

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/benbjohnson/clock"
)

// Outcomes reported to a Recorder.
const (
	ResultAccepted = "accepted"
	ResultInvalid  = "invalid"
	ResultNotFound = "not_found"
	ResultFailed   = "failed"
)

// Recorder collects reward outcomes.
type Recorder interface {
	ObserveReward(result string, duration time.Duration, contributed MonetaryAmount)
}

// InstrumentedNetwork logs and records every reward passing through it.
type InstrumentedNetwork struct {
	network  RewardNetwork
	recorder Recorder
	clock    clock.Clock
}

func NewInstrumentedNetwork(network RewardNetwork, recorder Recorder, clock clock.Clock) *InstrumentedNetwork {
	return &InstrumentedNetwork{
		network:  network,
		recorder: recorder,
		clock:    clock,
	}
}

func (i *InstrumentedNetwork) RewardAccountFor(ctx context.Context, dining Dining) (RewardConfirmation, error) {
	start := i.clock.Now()

	confirmation, err := i.network.RewardAccountFor(ctx, dining)

	duration := i.clock.Since(start)
	result := classify(err)
	i.recorder.ObserveReward(result, duration, confirmation.Contribution.Amount)

	if err != nil {
		slog.Debug("Reward rejected", "result", result, "merchant", dining.MerchantNumber, "error", err)
		return confirmation, err
	}

	slog.Debug("Reward confirmed",
		"confirmation", confirmation.ConfirmationNumber,
		"account", confirmation.Contribution.AccountNumber,
		"amount", confirmation.Contribution.Amount.String(),
		"duration", duration)

	return confirmation, nil
}

func classify(err error) string {
	switch {
	case err == nil:
		return ResultAccepted
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInvalidCreditCard),
		errors.Is(err, ErrInvalidMerchantNumber),
		errors.Is(err, ErrInvalidRequest):
		return ResultInvalid
	case errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrRestaurantNotFound):
		return ResultNotFound
	default:
		return ResultFailed
	}
}
