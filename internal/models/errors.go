package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrEnvelopeNameEmpty            = errors.New("envelope names must not be empty")
	ErrEnvelopePercentageInvalid    = errors.New("envelope percentages must be between 0 and 100")
	ErrEnvelopeBalanceNegative      = errors.New("envelope balances must not be negative")
	ErrTransactionAmountNotPositive = errors.New("transaction amounts must be larger than zero")
	ErrTransactionTypeInvalid       = errors.New("transactions must have the type income or expense")
	ErrTransactionEnvelopeMissing   = errors.New("expense transactions must reference an envelope")
	ErrTransactionEnvelopeSet       = errors.New("income transactions must not reference a single envelope")
	ErrIdempotencyKeyNotUnique      = errors.New("a transaction with this idempotency key already exists")
)
