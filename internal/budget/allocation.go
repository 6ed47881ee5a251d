package budget

import (
	"github.com/google/uuid"
	"github.com/potli-money/backend/internal/models"
	"github.com/shopspring/decimal"
)

// PlanIncomeDistribution computes the balance delta for every envelope when
// an income amount is split according to the envelope percentages.
//
// Every share is rounded to cents with round-half-to-even. The residual that
// rounding leaves over is assigned to the envelope with the largest
// percentage, with the larger display order winning ties, so that the deltas
// always add up to exactly the incoming amount.
//
// An empty envelope set yields an empty plan: the income is recorded in the
// ledger, but there is nothing to distribute.
func PlanIncomeDistribution(envelopes []models.Envelope, amount decimal.Decimal) (map[uuid.UUID]decimal.Decimal, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	deltas := make(map[uuid.UUID]decimal.Decimal, len(envelopes))
	if len(envelopes) == 0 {
		return deltas, nil
	}

	if err := ValidatePercentageSet(envelopes); err != nil {
		return nil, err
	}

	hundred := decimal.NewFromInt(100)

	distributed := decimal.Zero
	for _, envelope := range envelopes {
		share := amount.
			Mul(decimal.NewFromInt(int64(envelope.Percentage))).
			Div(hundred).
			RoundBank(2)

		deltas[envelope.ID] = share
		distributed = distributed.Add(share)
	}

	// Assign the residual cents deterministically to avoid silent drift.
	residual := amount.Sub(distributed)
	if !residual.IsZero() {
		target := envelopes[0]
		for _, envelope := range envelopes[1:] {
			if envelope.Percentage > target.Percentage ||
				(envelope.Percentage == target.Percentage && envelope.DisplayOrder > target.DisplayOrder) {
				target = envelope
			}
		}

		deltas[target.ID] = deltas[target.ID].Add(residual)
	}

	return deltas, nil
}

// PlanExpense computes the balance delta for debiting a single envelope.
// The check against the balance and the eventual debit must observe the same
// balance value, which the service guarantees with an optimistic write.
func PlanExpense(envelope models.Envelope, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}

	if amount.GreaterThan(envelope.Balance) {
		return decimal.Zero, ErrInsufficientBalance
	}

	return amount.Neg(), nil
}

// ValidatePercentageSet verifies that each percentage is between 0 and 100
// and that the whole set adds up to exactly 100.
func ValidatePercentageSet(envelopes []models.Envelope) error {
	sum := 0
	for _, envelope := range envelopes {
		if envelope.Percentage < 0 || envelope.Percentage > 100 {
			return ErrInvalidPercentageTotal
		}

		sum += envelope.Percentage
	}

	if sum != 100 {
		return ErrInvalidPercentageTotal
	}

	return nil
}
