package v1_test

import (
	"net/http"

	v1 "github.com/potli-money/backend/internal/controllers/v1"
	"github.com/potli-money/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsIncome() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/incomes", "")

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), "OPTIONS, POST", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateIncome() {
	owner := uuid.New()
	needs, wants, savings := suite.createTestSet(owner)

	response := suite.recordTestIncome(owner, 1000)

	assert.Equal(suite.T(), "income", string(response.Data.Transaction.Type))
	assert.Nil(suite.T(), response.Data.Transaction.EnvelopeID)
	assert.True(suite.T(), response.Data.Transaction.Amount.Equal(decimal.NewFromFloat(1000)))

	balances := make(map[uuid.UUID]decimal.Decimal, len(response.Data.Envelopes))
	for _, envelope := range response.Data.Envelopes {
		balances[envelope.ID] = envelope.Balance
	}

	assert.True(suite.T(), balances[needs.ID].Equal(decimal.NewFromFloat(500)), "needs balance is %s", balances[needs.ID])
	assert.True(suite.T(), balances[wants.ID].Equal(decimal.NewFromFloat(300)), "wants balance is %s", balances[wants.ID])
	assert.True(suite.T(), balances[savings.ID].Equal(decimal.NewFromFloat(200)), "savings balance is %s", balances[savings.ID])
}

// Replaying the request with the same idempotency key does not credit twice.
func (suite *TestSuiteStandard) TestCreateIncomeIdempotent() {
	owner := uuid.New()
	needs, _, _ := suite.createTestSet(owner)

	editable := v1.IncomeEditable{
		OwnerID:        owner,
		Amount:         decimal.NewFromFloat(1000),
		IdempotencyKey: "67a273b9",
	}

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/incomes", editable)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var first v1.IncomeResponse
	test.DecodeResponse(suite.T(), &recorder, &first)

	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/incomes", editable)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var second v1.IncomeResponse
	test.DecodeResponse(suite.T(), &recorder, &second)

	assert.Equal(suite.T(), first.Data.Transaction.ID, second.Data.Transaction.ID)

	for _, envelope := range second.Data.Envelopes {
		if envelope.ID == needs.ID {
			assert.True(suite.T(), envelope.Balance.Equal(decimal.NewFromFloat(500)), "balance is %s", envelope.Balance)
		}
	}
}

func (suite *TestSuiteStandard) TestCreateIncomeInvalidPercentages() {
	owner := uuid.New()
	suite.createTestEnvelope(v1.EnvelopeEditable{OwnerID: owner})

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/incomes", v1.IncomeEditable{
		OwnerID: owner,
		Amount:  decimal.NewFromFloat(100),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateIncomeInvalidAmount() {
	owner := uuid.New()
	suite.createTestSet(owner)

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/incomes", v1.IncomeEditable{
		OwnerID: owner,
		Amount:  decimal.NewFromFloat(-10),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateIncomeNoOwner() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/incomes", v1.IncomeEditable{
		Amount: decimal.NewFromFloat(100),
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateIncomeNoBody() {
	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/incomes", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}
