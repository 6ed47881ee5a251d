package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/potli-money/backend/internal/budget"
	"github.com/potli-money/backend/internal/httputil"
	"github.com/potli-money/backend/internal/models"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
//
// The ledger is read-only from the outside: entries are only created by
// recording income and expenses.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", GetTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			owner	query	string	true	"Owner of the transaction"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	owner, err := httputil.OwnerFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = service().Transaction(c.Request.Context(), owner, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Get transactions
// @Description	Returns the ledger of one owner, newest entries first
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			owner		query	string	true	"Owner of the transactions"
// @Param			type		query	string	false	"Filter by transaction type"
// @Param			envelope	query	string	false	"Filter by envelope ID"
// @Param			description	query	string	false	"Filter by description, glob patterns are supported"
// @Param			offset		query	uint	false	"The offset of the first transaction returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of transactions to return. Defaults to 50."
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)
	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	owner, err := httputil.OwnerFromQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &s,
		})
		return
	}

	transactions, err := service().Transactions(c.Request.Context(), owner, budget.TransactionFilter{
		Type:       models.TransactionType(filter.Type),
		EnvelopeID: filter.Envelope.UUID,
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &s,
		})
		return
	}

	// The description filter supports glob patterns like "*groceries*".
	// A filter without any wildcard is an exact match.
	if filter.Description != "" {
		matching := transactions[:0]
		for _, transaction := range transactions {
			if glob.Glob(filter.Description, transaction.Description) {
				matching = append(matching, transaction)
			}
		}
		transactions = matching
	}

	total := int64(len(transactions))

	// Set the offset. Does not need checking since the default is 0
	if filter.Offset > uint(len(transactions)) {
		transactions = transactions[:0]
	} else {
		transactions = transactions[filter.Offset:]
	}

	// Default to 50 transactions and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}

	// A negative limit means no limit
	if limit >= 0 && limit < len(transactions) {
		transactions = transactions[:limit]
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get transaction
// @Description	Returns a specific ledger entry
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id		path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			owner	query	string	true	"Owner of the transaction"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	owner, err := httputil.OwnerFromQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{
			Error: &s,
		})
		return
	}

	transaction, err := service().Transaction(c.Request.Context(), owner, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &s,
		})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}
