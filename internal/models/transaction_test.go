package models_test

import (
	"testing"

	"github.com/potli-money/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestTransactionAfterSave() {
	envelopeID := uuid.New()

	tests := []struct {
		name        string
		transaction models.Transaction
		err         error
	}{
		{"valid income", models.Transaction{Type: models.TransactionTypeIncome, Amount: decimal.NewFromFloat(100)}, nil},
		{"valid expense", models.Transaction{Type: models.TransactionTypeExpense, EnvelopeID: &envelopeID, Amount: decimal.NewFromFloat(100)}, nil},
		{"zero amount", models.Transaction{Type: models.TransactionTypeIncome}, models.ErrTransactionAmountNotPositive},
		{"negative amount", models.Transaction{Type: models.TransactionTypeIncome, Amount: decimal.NewFromFloat(-1)}, models.ErrTransactionAmountNotPositive},
		{"income with envelope", models.Transaction{Type: models.TransactionTypeIncome, EnvelopeID: &envelopeID, Amount: decimal.NewFromFloat(1)}, models.ErrTransactionEnvelopeSet},
		{"expense without envelope", models.Transaction{Type: models.TransactionTypeExpense, Amount: decimal.NewFromFloat(1)}, models.ErrTransactionEnvelopeMissing},
		{"invalid type", models.Transaction{Type: "transfer", Amount: decimal.NewFromFloat(1)}, models.ErrTransactionTypeInvalid},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			transaction := tt.transaction
			err := transaction.AfterSave(&gorm.DB{})
			assert.Equal(t, tt.err, err)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionIdempotencyOwner() {
	owner := uuid.New()
	key := "a7be44a8-4f84-46e9-a84a-b0bdb7d6d1c5"

	transaction := models.Transaction{OwnerID: owner, IdempotencyKey: &key}
	err := transaction.BeforeSave(&gorm.DB{})

	assert.Nil(suite.T(), err)
	assert.Equal(suite.T(), &owner, transaction.IdempotencyOwner)

	transaction = models.Transaction{OwnerID: owner}
	err = transaction.BeforeSave(&gorm.DB{})

	assert.Nil(suite.T(), err)
	assert.Nil(suite.T(), transaction.IdempotencyOwner)
}

func (suite *TestSuiteStandard) TestTransactionIdempotencyKeyUnique() {
	owner := uuid.New()
	key := "c4e98e8a-9e54-4fc2-8a7d-3f4bb8c7902c"

	suite.createTestTransaction(models.Transaction{
		OwnerID:        owner,
		Type:           models.TransactionTypeIncome,
		Amount:         decimal.NewFromFloat(100),
		IdempotencyKey: &key,
	})

	// The same key for the same owner has to be rejected
	err := models.DB.Create(&models.Transaction{
		OwnerID:        owner,
		Type:           models.TransactionTypeIncome,
		Amount:         decimal.NewFromFloat(100),
		IdempotencyKey: &key,
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrIdempotencyKeyNotUnique)

	// The same key for another owner is fine
	suite.createTestTransaction(models.Transaction{
		OwnerID:        uuid.New(),
		Type:           models.TransactionTypeIncome,
		Amount:         decimal.NewFromFloat(100),
		IdempotencyKey: &key,
	})
}

func (suite *TestSuiteStandard) TestTransactionWithoutKeyNeverCollides() {
	owner := uuid.New()

	for i := 0; i < 3; i++ {
		suite.createTestTransaction(models.Transaction{
			OwnerID: owner,
			Type:    models.TransactionTypeIncome,
			Amount:  decimal.NewFromFloat(100),
		})
	}

	var count int64
	models.DB.Model(&models.Transaction{}).Where("owner_id = ?", owner).Count(&count)
	assert.Equal(suite.T(), int64(3), count)
}
