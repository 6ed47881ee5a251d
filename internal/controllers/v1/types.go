package v1

import (
	"errors"
	"net/http"

	"github.com/potli-money/backend/internal/budget"
	"github.com/potli-money/backend/internal/models"
	"github.com/potli-money/backend/internal/storage"
	ez_uuid "github.com/potli-money/backend/internal/uuid"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

var (
	errOwnerIDRequired    = errors.New("the ownerId field must be set")
	errEnvelopeIDRequired = errors.New("the envelopeId field must be set")
)

// service returns the budget service backed by the connected database.
func service() budget.Service {
	return budget.NewService(storage.New(models.DB))
}

// status returns the appropriate HTTP status for an error of the budget
// service or the database layer.
func status(err error) int {
	switch {
	case errors.Is(err, budget.ErrStoreUnavailable),
		errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError

	case errors.Is(err, budget.ErrEnvelopeNotFound),
		errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound

	default:
		return http.StatusBadRequest
	}
}
