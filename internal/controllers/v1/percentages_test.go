package v1_test

import (
	"net/http"

	v1 "github.com/potli-money/backend/internal/controllers/v1"
	"github.com/potli-money/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsPercentages() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/percentages", "")

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), "OPTIONS, PATCH", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestUpdatePercentages() {
	owner := uuid.New()
	needs, wants, savings := suite.createTestSet(owner)

	response := suite.rebalance(owner, map[uuid.UUID]int{
		needs.ID: 40,
		wants.ID: 40,
	})

	percentages := make(map[uuid.UUID]int, len(response.Data))
	for _, envelope := range response.Data {
		percentages[envelope.ID] = envelope.Percentage
	}

	assert.Equal(suite.T(), 40, percentages[needs.ID])
	assert.Equal(suite.T(), 40, percentages[wants.ID])

	// Unmentioned envelopes keep their percentage
	assert.Equal(suite.T(), 20, percentages[savings.ID])
}

// A set that does not add up to 100 is rejected as a whole.
func (suite *TestSuiteStandard) TestUpdatePercentagesInvalidTotal() {
	owner := uuid.New()
	needs, _, _ := suite.createTestSet(owner)

	recorder := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/percentages", v1.PercentagesEditable{
		OwnerID: owner,
		Percentages: []v1.PercentageEditable{
			{EnvelopeID: wrapUUID(needs.ID), Percentage: 90},
		},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdatePercentagesUnknownEnvelope() {
	owner := uuid.New()
	suite.createTestSet(owner)

	recorder := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/percentages", v1.PercentagesEditable{
		OwnerID: owner,
		Percentages: []v1.PercentageEditable{
			{EnvelopeID: wrapUUID(uuid.New()), Percentage: 100},
		},
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestUpdatePercentagesNoOwner() {
	recorder := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/percentages", v1.PercentagesEditable{})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdatePercentagesNoBody() {
	recorder := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/percentages", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
