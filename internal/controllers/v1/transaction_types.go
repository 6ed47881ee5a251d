package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/potli-money/backend/internal/models"
	ez_uuid "github.com/potli-money/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type TransactionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`         // The transaction itself
	Envelope string `json:"envelope" example:"https://example.com/api/v1/envelopes/47d125b0-1400-4964-b020-6c62646cff26"`        // The envelope an expense was debited from, empty for income
}

// Transaction is one immutable ledger entry. There is no editable type for
// transactions: they are only ever written by recording income or expenses
// and can never be modified or deleted.
type Transaction struct {
	models.DefaultModel
	OwnerID     uuid.UUID              `json:"ownerId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`    // ID of the account the transaction belongs to
	Type        models.TransactionType `json:"type" example:"expense"`                                    // One of "income", "expense"
	EnvelopeID  *uuid.UUID             `json:"envelopeId" example:"a1b2c3d4-75b2-45aa-8f72-36553ebbec24"` // The envelope an expense was debited from, null for income
	Amount      decimal.Decimal        `json:"amount" example:"750.12"`                                   // Always positive
	Description string                 `json:"description" example:"Salary September"`                    // Free text, optional
	Links       TransactionLinks       `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	transaction := Transaction{
		DefaultModel: model.DefaultModel,
		OwnerID:      model.OwnerID,
		Type:         model.Type,
		EnvelopeID:   model.EnvelopeID,
		Amount:       model.Amount,
		Description:  model.Description,
		Links: TransactionLinks{
			Self: fmt.Sprintf("%s/v1/transactions/%s?owner=%s", url, model.ID, model.OwnerID),
		},
	}

	if model.EnvelopeID != nil {
		transaction.Links.Envelope = fmt.Sprintf("%s/v1/envelopes/%s?owner=%s", url, *model.EnvelopeID, model.OwnerID)
	}

	return transaction
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	Owner       ez_uuid.UUID `form:"owner" filterField:"false"`       // ID of the account the transactions belong to, mandatory
	Type        string       `form:"type" filterField:"false"`        // Filter by transaction type
	Envelope    ez_uuid.UUID `form:"envelope" filterField:"false"`    // Filter by envelope
	Description string       `form:"description" filterField:"false"` // Filter by description, glob patterns are supported
	Offset      uint         `form:"offset" filterField:"false"`      // The offset of the first transaction returned. Defaults to 0.
	Limit       int          `form:"limit" filterField:"false"`       // Maximum number of transactions to return. Defaults to 50.
}
