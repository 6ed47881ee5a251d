package models_test

import (
	"time"

	"github.com/potli-money/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestDefaultModelAfterFindTimeUTC() {
	tz, _ := time.LoadLocation("Europe/Berlin")

	model := models.DefaultModel{
		Timestamps: models.Timestamps{
			CreatedAt: time.Date(2000, 1, 2, 3, 4, 5, 6, tz),
			UpdatedAt: time.Date(2000, 1, 2, 3, 4, 5, 6, tz),
		},
	}

	err := model.AfterFind(&gorm.DB{})
	assert.Nil(suite.T(), err)

	assert.Equal(suite.T(), time.UTC, model.CreatedAt.Location(), "Timezone for model is not UTC")
	assert.Equal(suite.T(), time.UTC, model.UpdatedAt.Location(), "Timezone for model is not UTC")
}

func (suite *TestSuiteStandard) TestDefaultModelBeforeCreate() {
	model := models.DefaultModel{}

	err := model.BeforeCreate(&gorm.DB{})
	assert.Nil(suite.T(), err)
	assert.NotEqual(suite.T(), uuid.Nil, model.ID)
}
