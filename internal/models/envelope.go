package models

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Envelope represents a named bucket ("potli") that holds a share of the
// owner's funds and a target percentage of future income.
type Envelope struct {
	DefaultModel
	OwnerID      uuid.UUID       `json:"ownerId" gorm:"index"`                              // ID of the account the envelope belongs to
	Name         string          `json:"name" example:"Groceries"`                          // Name of the envelope
	Percentage   int             `json:"percentage" example:"30"`                           // Share of incoming funds in percent, 0 to 100
	Balance      decimal.Decimal `json:"balance" gorm:"type:DECIMAL(20,8);check:balance_not_negative,balance >= 0" example:"95.5"` // Current balance, never negative
	DisplayOrder int             `json:"displayOrder" example:"3"`                          // Position in the owner's envelope list
	Color        string          `json:"color" example:"turmeric"`                          // Presentation tag, opaque to the backend
	Icon         string          `json:"icon" example:"ShoppingBag"`                        // Presentation tag, opaque to the backend
}

func (e *Envelope) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	e.Color = strings.TrimSpace(e.Color)
	e.Icon = strings.TrimSpace(e.Icon)

	return nil
}

// AfterSave enforces the envelope invariants that hold for every write,
// regardless of which operation produced it.
func (e *Envelope) AfterSave(_ *gorm.DB) error {
	if e.Name == "" {
		return ErrEnvelopeNameEmpty
	}

	if e.Percentage < 0 || e.Percentage > 100 {
		return ErrEnvelopePercentageInvalid
	}

	if e.Balance.IsNegative() {
		return ErrEnvelopeBalanceNegative
	}

	return nil
}
