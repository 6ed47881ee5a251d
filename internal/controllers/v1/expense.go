package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/potli-money/backend/internal/httputil"
	ez_uuid "github.com/potli-money/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

// RegisterExpenseRoutes registers the routes for recording expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExpense)
	r.POST("", CreateExpense)
}

// ExpenseEditable represents one expense event.
type ExpenseEditable struct {
	OwnerID     uuid.UUID       `json:"ownerId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`    // ID of the account the expense belongs to
	EnvelopeID  ez_uuid.UUID    `json:"envelopeId" example:"a1b2c3d4-75b2-45aa-8f72-36553ebbec24"` // The envelope to debit
	Amount      decimal.Decimal `json:"amount" example:"42.50"`                                    // Amount to debit, must be positive
	Description string          `json:"description" example:"Groceries" default:""`                // Free text, optional
	// IdempotencyKey deduplicates retries: re-sending a request with the
	// same key after a confirmed or partial attempt never debits twice.
	IdempotencyKey string `json:"idempotencyKey" example:"d3006f32-4229-44b0-a06a-9f2b38f430e6" default:""`
}

type ExpenseData struct {
	Transaction Transaction `json:"transaction"` // The recorded expense event
	Envelope    Envelope    `json:"envelope"`    // The debited envelope after the expense
}

type ExpenseResponse struct {
	Data  *ExpenseData `json:"data"`                                                        // Result of the expense
	Error *string      `json:"error" example:"envelope balance does not cover this amount"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpense(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Record expense
// @Description	Debits a single envelope and appends one expense transaction referencing it. The expense is rejected without any change when the envelope balance does not cover the amount.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func CreateExpense(c *gin.Context) {
	var editable ExpenseEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	if editable.OwnerID == uuid.Nil {
		s := errOwnerIDRequired.Error()
		c.JSON(http.StatusBadRequest, ExpenseResponse{
			Error: &s,
		})
		return
	}

	if editable.EnvelopeID.UUID == uuid.Nil {
		s := errEnvelopeIDRequired.Error()
		c.JSON(http.StatusBadRequest, ExpenseResponse{
			Error: &s,
		})
		return
	}

	envelope, transaction, err := service().RecordExpense(c.Request.Context(), editable.OwnerID, editable.EnvelopeID.UUID, editable.Amount, editable.Description, editable.IdempotencyKey)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	data := newEnvelope(c, envelope)
	c.JSON(http.StatusCreated, ExpenseResponse{
		Data: &ExpenseData{
			Transaction: newTransaction(c, transaction),
			Envelope:    data,
		},
	})
}
