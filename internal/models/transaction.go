package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the closed set of event kinds the ledger records.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Transaction is one immutable entry of the ledger. Transactions are written
// exactly once and never updated or deleted afterwards.
//
// EnvelopeID is only set for expenses. It is a back-reference, not an
// ownership link: deleting an envelope keeps its transactions, so there is
// deliberately no foreign key constraint on it.
type Transaction struct {
	DefaultModel
	OwnerID        uuid.UUID       `json:"ownerId" gorm:"index"`                                             // ID of the account the transaction belongs to
	Type           TransactionType `json:"type" example:"expense"`                                           // One of "income", "expense"
	EnvelopeID     *uuid.UUID      `json:"envelopeId" example:"a1b2c3d4-75b2-45aa-8f72-36553ebbec24"`        // The envelope an expense was debited from, null for income
	Amount         decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"750.12"`                // Always positive
	Description    string          `json:"description" example:"Salary September"`                           // Free text, optional
	IdempotencyKey *string         `json:"idempotencyKey" gorm:"uniqueIndex:transaction_owner_idempotency"` // Caller supplied token to deduplicate retries
	// The owner is part of the idempotency index so keys from different
	// owners can never collide.
	IdempotencyOwner *uuid.UUID `json:"-" gorm:"uniqueIndex:transaction_owner_idempotency"`
}

func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)

	// Keep the unique index inert for transactions without a key: sqlite
	// treats NULL values as distinct.
	if t.IdempotencyKey == nil {
		t.IdempotencyOwner = nil
	} else {
		owner := t.OwnerID
		t.IdempotencyOwner = &owner
	}

	return nil
}

func (t *Transaction) AfterSave(_ *gorm.DB) error {
	if !t.Amount.IsPositive() {
		return ErrTransactionAmountNotPositive
	}

	switch t.Type {
	case TransactionTypeIncome:
		if t.EnvelopeID != nil {
			return ErrTransactionEnvelopeSet
		}
	case TransactionTypeExpense:
		if t.EnvelopeID == nil {
			return ErrTransactionEnvelopeMissing
		}
	default:
		return ErrTransactionTypeInvalid
	}

	return nil
}
