package models_test

import (
	"strings"
	"testing"

	"github.com/potli-money/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestEnvelopeAfterSave() {
	tests := []struct {
		name     string
		envelope models.Envelope
		err      error
	}{
		{"valid", models.Envelope{Name: "Groceries", Percentage: 40}, nil},
		{"empty name", models.Envelope{Name: ""}, models.ErrEnvelopeNameEmpty},
		{"percentage too low", models.Envelope{Name: "Rent", Percentage: -1}, models.ErrEnvelopePercentageInvalid},
		{"percentage too high", models.Envelope{Name: "Rent", Percentage: 101}, models.ErrEnvelopePercentageInvalid},
		{"negative balance", models.Envelope{Name: "Rent", Balance: decimal.NewFromFloat(-0.01)}, models.ErrEnvelopeBalanceNegative},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			envelope := tt.envelope
			err := envelope.AfterSave(&gorm.DB{})
			assert.Equal(t, tt.err, err)
		})
	}
}

func (suite *TestSuiteStandard) TestEnvelopeTrimWhitespace() {
	name := "  There is whitespace here  \t"
	color := " seafoam "
	icon := "\tLeaf "

	envelope := suite.createTestEnvelope(models.Envelope{
		OwnerID: uuid.New(),
		Name:    name,
		Color:   color,
		Icon:    icon,
	})

	assert.Equal(suite.T(), strings.TrimSpace(name), envelope.Name)
	assert.Equal(suite.T(), strings.TrimSpace(color), envelope.Color)
	assert.Equal(suite.T(), strings.TrimSpace(icon), envelope.Icon)
}

// The database check constraint is the last line of defense against negative
// balances, it has to hold even for writes that skip the gorm hooks.
func (suite *TestSuiteStandard) TestEnvelopeBalanceCheckConstraint() {
	envelope := suite.createTestEnvelope(models.Envelope{
		OwnerID: uuid.New(),
		Name:    "Groceries",
		Balance: decimal.NewFromFloat(10),
	})

	err := models.DB.Model(&models.Envelope{}).
		Where("id = ?", envelope.ID).
		UpdateColumn("balance", gorm.Expr("balance - ?", decimal.NewFromFloat(20))).Error

	assert.ErrorIs(suite.T(), err, models.ErrEnvelopeBalanceNegative)
}

func (suite *TestSuiteStandard) TestEnvelopeNotFoundError() {
	err := models.DB.First(&models.Envelope{}, "id = ?", uuid.New()).Error

	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no envelope matching your query", err.Error())
}
