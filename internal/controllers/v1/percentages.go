package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/potli-money/backend/internal/httputil"
	ez_uuid "github.com/potli-money/backend/internal/uuid"
)

// RegisterPercentageRoutes registers the routes for rebalancing envelope
// percentages with the RouterGroup that is passed.
func RegisterPercentageRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsPercentages)
	r.PATCH("", UpdatePercentages)
}

// PercentageEditable is the new percentage for one envelope.
type PercentageEditable struct {
	EnvelopeID ez_uuid.UUID `json:"envelopeId" example:"a1b2c3d4-75b2-45aa-8f72-36553ebbec24"` // The envelope the percentage applies to
	Percentage int          `json:"percentage" example:"40"`                                   // Integer between 0 and 100
}

// PercentagesEditable is a rebalancing of the whole envelope set. Envelopes
// not mentioned keep their current percentage, and the resulting set must add
// up to exactly 100.
type PercentagesEditable struct {
	OwnerID     uuid.UUID            `json:"ownerId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the account the envelopes belong to
	Percentages []PercentageEditable `json:"percentages"`                                            // The new percentages
}

type PercentagesResponse struct {
	Data  []Envelope `json:"data"`                                                            // The envelopes after the rebalancing
	Error *string    `json:"error" example:"envelope percentages must add up to exactly 100"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Percentages
// @Success		204
// @Router			/v1/percentages [options]
func OptionsPercentages(c *gin.Context) {
	httputil.OptionsPatch(c)
}

// @Summary		Rebalance percentages
// @Description	Applies a new percentage to every mentioned envelope as one unit. Balances and history are not touched. The request fails as a whole when an envelope does not exist or the resulting set does not add up to exactly 100.
// @Tags			Percentages
// @Accept			json
// @Produce		json
// @Success		200			{object}	PercentagesResponse
// @Failure		400			{object}	PercentagesResponse
// @Failure		404			{object}	PercentagesResponse
// @Failure		500			{object}	PercentagesResponse
// @Param			percentages	body		PercentagesEditable	true	"Percentages"
// @Router			/v1/percentages [patch]
func UpdatePercentages(c *gin.Context) {
	var editable PercentagesEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PercentagesResponse{
			Error: &s,
		})
		return
	}

	if editable.OwnerID == uuid.Nil {
		s := errOwnerIDRequired.Error()
		c.JSON(http.StatusBadRequest, PercentagesResponse{
			Error: &s,
		})
		return
	}

	percentages := make(map[uuid.UUID]int, len(editable.Percentages))
	for _, percentage := range editable.Percentages {
		if percentage.EnvelopeID.UUID == uuid.Nil {
			s := errEnvelopeIDRequired.Error()
			c.JSON(http.StatusBadRequest, PercentagesResponse{
				Error: &s,
			})
			return
		}

		percentages[percentage.EnvelopeID.UUID] = percentage.Percentage
	}

	envelopes, err := service().RebalancePercentages(c.Request.Context(), editable.OwnerID, percentages)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PercentagesResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, PercentagesResponse{
		Data: newEnvelopes(c, envelopes),
	})
}
