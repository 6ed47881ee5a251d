package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/potli-money/backend/internal/controllers/v1"
	"github.com/potli-money/backend/test"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsTransactionList() {
	recorder := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/transactions", "")

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), "OPTIONS, GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestOptionsTransactionDetail() {
	owner := uuid.New()

	recorder := test.Request(suite.T(), http.MethodOptions, detailURL("transactions", uuid.New(), owner), "")
	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)

	needs, _, _ := suite.createTestSet(owner)
	suite.recordTestIncome(owner, 100)
	expense := suite.recordTestExpense(owner, needs.ID, 10)

	recorder = test.Request(suite.T(), http.MethodOptions, detailURL("transactions", expense.Data.Transaction.ID, owner), "")
	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Equal(suite.T(), "OPTIONS, GET", recorder.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestGetTransactions() {
	owner := uuid.New()
	needs, _, _ := suite.createTestSet(owner)
	suite.recordTestIncome(owner, 1000)
	suite.recordTestExpense(owner, needs.ID, 10)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?owner="+owner.String(), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), int64(2), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestGetTransactionsFilterType() {
	owner := uuid.New()
	needs, _, _ := suite.createTestSet(owner)
	suite.recordTestIncome(owner, 1000)
	suite.recordTestExpense(owner, needs.ID, 10)

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?owner=%s&type=expense", owner), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "expense", string(response.Data[0].Type))
}

func (suite *TestSuiteStandard) TestGetTransactionsFilterEnvelope() {
	owner := uuid.New()
	needs, wants, _ := suite.createTestSet(owner)
	suite.recordTestIncome(owner, 1000)
	suite.recordTestExpense(owner, needs.ID, 10)
	suite.recordTestExpense(owner, wants.ID, 20)

	recorder := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?owner=%s&envelope=%s", owner, needs.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), needs.ID, *response.Data[0].EnvelopeID)
}

// The description filter supports glob patterns.
func (suite *TestSuiteStandard) TestGetTransactionsFilterDescription() {
	owner := uuid.New()
	suite.createTestSet(owner)

	recorder := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/incomes", map[string]any{
		"ownerId":     owner,
		"amount":      "1000",
		"description": "Salary September",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/incomes", map[string]any{
		"ownerId":     owner,
		"amount":      "50",
		"description": "Birthday money",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	recorder = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?owner=%s&description=Salary*", owner), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Salary September", response.Data[0].Description)
}

func (suite *TestSuiteStandard) TestGetTransactionsNoOwner() {
	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetTransaction() {
	owner := uuid.New()
	suite.createTestSet(owner)
	income := suite.recordTestIncome(owner, 1000)

	recorder := test.Request(suite.T(), http.MethodGet, detailURL("transactions", income.Data.Transaction.ID, owner), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	assert.Equal(suite.T(), income.Data.Transaction.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestGetTransactionNotFound() {
	recorder := test.Request(suite.T(), http.MethodGet, detailURL("transactions", uuid.New(), uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

// Transactions of other owners are never visible.
func (suite *TestSuiteStandard) TestGetTransactionOwnerIsolation() {
	owner := uuid.New()
	suite.createTestSet(owner)
	income := suite.recordTestIncome(owner, 1000)

	recorder := test.Request(suite.T(), http.MethodGet, detailURL("transactions", income.Data.Transaction.ID, uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

// There are no write methods on the ledger, entries only come from recording
// income and expenses.
func (suite *TestSuiteStandard) TestTransactionsAreImmutable() {
	owner := uuid.New()
	suite.createTestSet(owner)
	income := suite.recordTestIncome(owner, 1000)

	recorder := test.Request(suite.T(), http.MethodPatch, detailURL("transactions", income.Data.Transaction.ID, owner), map[string]any{
		"description": "rewritten",
	})
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusMethodNotAllowed)

	recorder = test.Request(suite.T(), http.MethodDelete, detailURL("transactions", income.Data.Transaction.ID, owner), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusMethodNotAllowed)
}
