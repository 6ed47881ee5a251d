package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/potli-money/backend/internal/controllers/v1"
	"github.com/potli-money/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsEnvelopeList() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/envelopes", "")

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsEnvelopeDetail() {
	owner := uuid.New()

	recorder := test.Request(suite.T(), http.MethodOptions, detailURL("envelopes", uuid.New(), owner), "")
	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)

	recorder = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/envelopes/NotParseableAsUUID?owner="+owner.String(), "")
	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)

	envelope := suite.createTestEnvelope(v1.EnvelopeEditable{OwnerID: owner})
	recorder = test.Request(suite.T(), http.MethodOptions, detailURL("envelopes", envelope.Data.ID, owner), "")
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), "OPTIONS, GET, PATCH, DELETE", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateEnvelope() {
	envelope := suite.createTestEnvelope(v1.EnvelopeEditable{Name: "Groceries"})

	assert.Equal(suite.T(), "Groceries", envelope.Data.Name)
	assert.Equal(suite.T(), 0, envelope.Data.Percentage)
	assert.True(suite.T(), envelope.Data.Balance.IsZero())
	assert.Equal(suite.T(), "turmeric", envelope.Data.Color)
	assert.Equal(suite.T(), "ShoppingBag", envelope.Data.Icon)
}

// When some envelopes of a batch fail, the response carries the error for
// each failed item and the status of the most severe failure.
func (suite *TestSuiteStandard) TestCreateEnvelopesPartialFailure() {
	owner := uuid.New()

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/envelopes", []v1.EnvelopeEditable{
		{OwnerID: owner, Name: "Valid"},
		{OwnerID: owner, Name: ""},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.EnvelopeCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data, 2)
	assert.NotNil(suite.T(), response.Data[0].Data)
	assert.Nil(suite.T(), response.Data[1].Data)
	assert.NotNil(suite.T(), response.Data[1].Error)
}

func (suite *TestSuiteStandard) TestCreateEnvelopeNoOwner() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/envelopes", []v1.EnvelopeEditable{{Name: "No owner"}})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateEnvelopeBrokenBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/envelopes", `{ not json }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateEnvelopeNoBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/envelopes", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetEnvelopes() {
	owner := uuid.New()
	suite.createTestSet(owner)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/envelopes?owner="+owner.String(), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.EnvelopeListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data, 3)
	assert.Equal(suite.T(), int64(3), response.Pagination.Total)

	// Envelopes are sorted by display order
	assert.Equal(suite.T(), "Needs", response.Data[0].Name)
	assert.Equal(suite.T(), "Wants", response.Data[1].Name)
	assert.Equal(suite.T(), "Savings", response.Data[2].Name)
}

// The envelopes of other owners are never visible.
func (suite *TestSuiteStandard) TestGetEnvelopesOwnerIsolation() {
	suite.createTestEnvelope(v1.EnvelopeEditable{})

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/envelopes?owner="+uuid.NewString(), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.EnvelopeListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Empty(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestGetEnvelopesNoOwner() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/envelopes", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetEnvelopesFilterName() {
	owner := uuid.New()
	suite.createTestSet(owner)

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/envelopes?owner=%s&name=sav", owner), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.EnvelopeListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Savings", response.Data[0].Name)
}

func (suite *TestSuiteStandard) TestGetEnvelopesPagination() {
	owner := uuid.New()
	suite.createTestSet(owner)

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/envelopes?owner=%s&offset=1&limit=1", owner), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.EnvelopeListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Wants", response.Data[0].Name)
	assert.Equal(suite.T(), int64(3), response.Pagination.Total)
	assert.Equal(suite.T(), uint(1), response.Pagination.Offset)
	assert.Equal(suite.T(), 1, response.Pagination.Limit)
}

func (suite *TestSuiteStandard) TestGetEnvelope() {
	owner := uuid.New()
	envelope := suite.createTestEnvelope(v1.EnvelopeEditable{OwnerID: owner, Name: "Groceries"})

	recorder := test.Request(suite.T(), http.MethodGet, envelope.Data.Links.Self+"?owner="+owner.String(), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.EnvelopeResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Groceries", response.Data.Name)
}

func (suite *TestSuiteStandard) TestGetEnvelopeNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, detailURL("envelopes", uuid.New(), uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetEnvelopeInvalidID() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/envelopes/NotParseableAsUUID?owner="+uuid.NewString(), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateEnvelopeName() {
	owner := uuid.New()
	envelope := suite.createTestEnvelope(v1.EnvelopeEditable{OwnerID: owner, Name: "Groceries"})

	recorder := test.Request(suite.T(), http.MethodPatch, detailURL("envelopes", envelope.Data.ID, owner), map[string]any{
		"name": "Food",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.EnvelopeResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "Food", response.Data.Name)

	// Color and icon stay untouched
	assert.Equal(suite.T(), "turmeric", response.Data.Color)
}

func (suite *TestSuiteStandard) TestUpdateEnvelopeAppearance() {
	owner := uuid.New()
	envelope := suite.createTestEnvelope(v1.EnvelopeEditable{OwnerID: owner, Name: "Groceries"})

	recorder := test.Request(suite.T(), http.MethodPatch, detailURL("envelopes", envelope.Data.ID, owner), map[string]any{
		"color": "seafoam",
		"icon":  "Leaf",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.EnvelopeResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Equal(suite.T(), "seafoam", response.Data.Color)
	assert.Equal(suite.T(), "Leaf", response.Data.Icon)
	assert.Equal(suite.T(), "Groceries", response.Data.Name)
}

func (suite *TestSuiteStandard) TestUpdateEnvelopeEmptyName() {
	owner := uuid.New()
	envelope := suite.createTestEnvelope(v1.EnvelopeEditable{OwnerID: owner})

	recorder := test.Request(suite.T(), http.MethodPatch, detailURL("envelopes", envelope.Data.ID, owner), map[string]any{
		"name": "  ",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateEnvelopeNotFound() {
	recorder := test.Request(suite.T(), http.MethodPatch, detailURL("envelopes", uuid.New(), uuid.New()), map[string]any{
		"name": "Nope",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteEnvelope() {
	owner := uuid.New()
	envelope := suite.createTestEnvelope(v1.EnvelopeEditable{OwnerID: owner})

	recorder := test.Request(suite.T(), http.MethodDelete, detailURL("envelopes", envelope.Data.ID, owner), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), http.MethodGet, detailURL("envelopes", envelope.Data.ID, owner), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestDeleteEnvelopeNotFound() {
	recorder := test.Request(suite.T(), http.MethodDelete, detailURL("envelopes", uuid.New(), uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
