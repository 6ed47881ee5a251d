package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/potli-money/backend/internal/models"
	ez_uuid "github.com/potli-money/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// EnvelopeEditable represents all user configurable parameters of an
// envelope. The balance is deliberately absent, it is only ever changed by
// recording income or expenses. Percentages are changed for the whole set at
// once via the percentages endpoint.
type EnvelopeEditable struct {
	OwnerID uuid.UUID `json:"ownerId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the account the envelope belongs to
	Name    string    `json:"name" example:"Groceries" default:""`                    // Name of the envelope
	Color   string    `json:"color" example:"turmeric" default:"turmeric"`            // Presentation tag for the frontend
	Icon    string    `json:"icon" example:"ShoppingBag" default:"ShoppingBag"`       // Presentation tag for the frontend
}

type EnvelopeLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/envelopes/3b1ea324-d438-4419-882a-2fc91d71772f"`                      // The envelope itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?envelope=3b1ea324-d438-4419-882a-2fc91d71772f"` // Expenses debited from this envelope
}

type Envelope struct {
	models.DefaultModel
	OwnerID      uuid.UUID       `json:"ownerId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the account the envelope belongs to
	Name         string          `json:"name" example:"Groceries"`                               // Name of the envelope
	Percentage   int             `json:"percentage" example:"30"`                                // Share of incoming funds in percent
	Balance      decimal.Decimal `json:"balance" example:"180.40"`                               // Current balance
	DisplayOrder int             `json:"displayOrder" example:"3"`                               // Position in the owner's envelope list
	Color        string          `json:"color" example:"turmeric"`                               // Presentation tag for the frontend
	Icon         string          `json:"icon" example:"ShoppingBag"`                             // Presentation tag for the frontend
	Links        EnvelopeLinks   `json:"links"`
}

func newEnvelope(c *gin.Context, model models.Envelope) Envelope {
	url := c.GetString(string(models.DBContextURL))

	return Envelope{
		DefaultModel: model.DefaultModel,
		OwnerID:      model.OwnerID,
		Name:         model.Name,
		Percentage:   model.Percentage,
		Balance:      model.Balance,
		DisplayOrder: model.DisplayOrder,
		Color:        model.Color,
		Icon:         model.Icon,
		Links: EnvelopeLinks{
			Self:         fmt.Sprintf("%s/v1/envelopes/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?owner=%s&envelope=%s", url, model.OwnerID, model.ID),
		},
	}
}

func newEnvelopes(c *gin.Context, ms []models.Envelope) []Envelope {
	envelopes := make([]Envelope, 0, len(ms))
	for _, m := range ms {
		envelopes = append(envelopes, newEnvelope(c, m))
	}

	return envelopes
}

type EnvelopeListResponse struct {
	Data       []Envelope  `json:"data"`                                                          // List of envelopes
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type EnvelopeCreateResponse struct {
	Data  []EnvelopeResponse `json:"data"`                                                          // List of the created envelopes or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (e *EnvelopeCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	e.Data = append(e.Data, EnvelopeResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type EnvelopeResponse struct {
	Data  *Envelope `json:"data"`                                                          // Data for the envelope
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type EnvelopeQueryFilter struct {
	Owner  ez_uuid.UUID `form:"owner" filterField:"false"`  // ID of the account the envelopes belong to, mandatory
	Name   string       `form:"name" filterField:"false"`   // Filter by name, substring match
	Offset uint         `form:"offset" filterField:"false"` // The offset of the first envelope returned. Defaults to 0.
	Limit  int          `form:"limit" filterField:"false"`  // Maximum number of envelopes to return. Defaults to 50.
}
