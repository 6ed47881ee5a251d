package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/potli-money/backend/internal/httputil"
	"golang.org/x/exp/slices"
)

// RegisterEnvelopeRoutes registers the routes for envelopes with
// the RouterGroup that is passed.
func RegisterEnvelopeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsEnvelopeList)
		r.GET("", GetEnvelopes)
		r.POST("", CreateEnvelopes)
	}

	// Envelope with ID
	{
		r.OPTIONS("/:id", OptionsEnvelopeDetail)
		r.GET("/:id", GetEnvelope)
		r.PATCH("/:id", UpdateEnvelope)
		r.DELETE("/:id", DeleteEnvelope)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Envelopes
// @Success		204
// @Router			/v1/envelopes [options]
func OptionsEnvelopeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Envelopes
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			owner	query	string	true	"Owner of the envelope"
// @Router			/v1/envelopes/{id} [options]
func OptionsEnvelopeDetail(c *gin.Context) {
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

	_, err = service().Envelope(c.Request.Context(), owner, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create envelopes
// @Description	Creates new envelopes. New envelopes start with percentage 0, an empty balance and the next free display order.
// @Tags			Envelopes
// @Produce		json
// @Success		201			{object}	EnvelopeCreateResponse
// @Failure		400			{object}	EnvelopeCreateResponse
// @Failure		500			{object}	EnvelopeCreateResponse
// @Param			envelopes	body		[]EnvelopeEditable	true	"Envelopes"
// @Router			/v1/envelopes [post]
func CreateEnvelopes(c *gin.Context) {
	var editables []EnvelopeEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	responseStatus := http.StatusCreated
	r := EnvelopeCreateResponse{}

	for _, editable := range editables {
		if editable.OwnerID == uuid.Nil {
			responseStatus = r.appendError(errOwnerIDRequired, responseStatus)
			continue
		}

		envelope, err := service().CreateEnvelope(c.Request.Context(), editable.OwnerID, editable.Name, editable.Color, editable.Icon)
		if err != nil {
			responseStatus = r.appendError(err, responseStatus)
			continue
		}

		data := newEnvelope(c, envelope)
		r.Data = append(r.Data, EnvelopeResponse{Data: &data})
	}

	c.JSON(responseStatus, r)
}

// @Summary		Get envelopes
// @Description	Returns the envelopes of one owner, ordered by display order
// @Tags			Envelopes
// @Produce		json
// @Success		200	{object}	EnvelopeListResponse
// @Failure		400	{object}	EnvelopeListResponse
// @Failure		500	{object}	EnvelopeListResponse
// @Router			/v1/envelopes [get]
// @Param			owner	query	string	true	"Owner of the envelopes"
// @Param			name	query	string	false	"Filter by name, substring match"
// @Param			offset	query	uint	false	"The offset of the first envelope returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of envelopes to return. Defaults to 50."
func GetEnvelopes(c *gin.Context) {
	var filter EnvelopeQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)
	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	owner, err := httputil.OwnerFromQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, EnvelopeListResponse{
			Error: &s,
		})
		return
	}

	envelopes, err := service().Envelopes(c.Request.Context(), owner)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EnvelopeListResponse{
			Error: &s,
		})
		return
	}

	// The name filter is a substring match like on the other list endpoints
	if filter.Name != "" {
		matching := envelopes[:0]
		for _, envelope := range envelopes {
			if strings.Contains(strings.ToLower(envelope.Name), strings.ToLower(filter.Name)) {
				matching = append(matching, envelope)
			}
		}
		envelopes = matching
	}

	total := int64(len(envelopes))

	// Set the offset. Does not need checking since the default is 0
	if filter.Offset > uint(len(envelopes)) {
		envelopes = envelopes[:0]
	} else {
		envelopes = envelopes[filter.Offset:]
	}

	// Default to 50 envelopes and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}

	// A negative limit means no limit
	if limit >= 0 && limit < len(envelopes) {
		envelopes = envelopes[:limit]
	}

	data := newEnvelopes(c, envelopes)

	c.JSON(http.StatusOK, EnvelopeListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get envelope
// @Description	Returns a specific envelope
// @Tags			Envelopes
// @Produce		json
// @Success		200	{object}	EnvelopeResponse
// @Failure		400	{object}	EnvelopeResponse
// @Failure		404	{object}	EnvelopeResponse
// @Failure		500	{object}	EnvelopeResponse
// @Param			id		path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			owner	query	string	true	"Owner of the envelope"
// @Router			/v1/envelopes/{id} [get]
func GetEnvelope(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &s,
		})
		return
	}

	owner, err := httputil.OwnerFromQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, EnvelopeResponse{
			Error: &s,
		})
		return
	}

	envelope, err := service().Envelope(c.Request.Context(), owner, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &s,
		})
		return
	}

	data := newEnvelope(c, envelope)
	c.JSON(http.StatusOK, EnvelopeResponse{Data: &data})
}

// @Summary		Update envelope
// @Description	Updates the name, color or icon of an envelope. Percentages are changed for the whole set at once via the percentages endpoint, balances only change by recording income or expenses.
// @Tags			Envelopes
// @Accept			json
// @Produce		json
// @Success		200			{object}	EnvelopeResponse
// @Failure		400			{object}	EnvelopeResponse
// @Failure		404			{object}	EnvelopeResponse
// @Failure		500			{object}	EnvelopeResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			owner		query		string				true	"Owner of the envelope"
// @Param			envelope	body		EnvelopeEditable	true	"Envelope"
// @Router			/v1/envelopes/{id} [patch]
func UpdateEnvelope(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &s,
		})
		return
	}

	owner, err := httputil.OwnerFromQuery(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, EnvelopeResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, EnvelopeEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &s,
		})
		return
	}

	var data EnvelopeEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &s,
		})
		return
	}

	svc := service()
	ctx := c.Request.Context()

	envelope, err := svc.Envelope(ctx, owner, uri.ID.UUID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &s,
		})
		return
	}

	if slices.Contains(updateFields, any("Name")) {
		envelope, err = svc.RenameEnvelope(ctx, owner, uri.ID.UUID, data.Name)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), EnvelopeResponse{
				Error: &s,
			})
			return
		}
	}

	if slices.Contains(updateFields, any("Color")) || slices.Contains(updateFields, any("Icon")) {
		envelope, err = svc.UpdateEnvelopeAppearance(ctx, owner, uri.ID.UUID, data.Color, data.Icon)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), EnvelopeResponse{
				Error: &s,
			})
			return
		}
	}

	r := newEnvelope(c, envelope)
	c.JSON(http.StatusOK, EnvelopeResponse{Data: &r})
}

// @Summary		Delete envelope
// @Description	Deletes an envelope. Its transactions are kept as history and the remaining percentages are not renormalized, rebalance them explicitly.
// @Tags			Envelopes
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			id		path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			owner	query	string	true	"Owner of the envelope"
// @Router			/v1/envelopes/{id} [delete]
func DeleteEnvelope(c *gin.Context) {
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

	err = service().DeleteEnvelope(c.Request.Context(), owner, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
