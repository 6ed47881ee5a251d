package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/potli-money/backend/internal/httputil"
	"github.com/shopspring/decimal"
)

// RegisterIncomeRoutes registers the routes for recording income with
// the RouterGroup that is passed.
func RegisterIncomeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsIncome)
	r.POST("", CreateIncome)
}

// IncomeEditable represents one income event.
type IncomeEditable struct {
	OwnerID     uuid.UUID       `json:"ownerId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the account the income belongs to
	Amount      decimal.Decimal `json:"amount" example:"1000.00"`                               // Amount to distribute, must be positive
	Description string          `json:"description" example:"Salary September" default:""`      // Free text, optional
	// IdempotencyKey deduplicates retries: re-sending a request with the
	// same key after a confirmed or partial attempt never credits twice.
	IdempotencyKey string `json:"idempotencyKey" example:"f104ceae-dca0-4a4e-8383-8cba3a4ae336" default:""`
}

type IncomeData struct {
	Transaction Transaction `json:"transaction"` // The recorded income event
	Envelopes   []Envelope  `json:"envelopes"`   // Snapshot of all envelopes after the allocation
}

type IncomeResponse struct {
	Data  *IncomeData `json:"data"`                                                            // Result of the income allocation
	Error *string     `json:"error" example:"envelope percentages must add up to exactly 100"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Router			/v1/incomes [options]
func OptionsIncome(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Record income
// @Description	Splits an income amount across the owner's envelopes according to their percentages and appends one income transaction for the full amount. All balance updates and the ledger entry are one atomic unit.
// @Tags			Incomes
// @Accept			json
// @Produce		json
// @Success		201		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		500		{object}	IncomeResponse
// @Param			income	body		IncomeEditable	true	"Income"
// @Router			/v1/incomes [post]
func CreateIncome(c *gin.Context) {
	var editable IncomeEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	if editable.OwnerID == uuid.Nil {
		s := errOwnerIDRequired.Error()
		c.JSON(http.StatusBadRequest, IncomeResponse{
			Error: &s,
		})
		return
	}

	envelopes, transaction, err := service().RecordIncome(c.Request.Context(), editable.OwnerID, editable.Amount, editable.Description, editable.IdempotencyKey)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, IncomeResponse{
		Data: &IncomeData{
			Transaction: newTransaction(c, transaction),
			Envelopes:   newEnvelopes(c, envelopes),
		},
	})
}
