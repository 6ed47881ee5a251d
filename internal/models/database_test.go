package models_test

import (
	"github.com/potli-money/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	// Connect only replaces the connection on success, the one from
	// SetupTest stays usable
	err := models.Connect("/this/path/does/not/exist/gorm.db")
	assert.NotNil(suite.T(), err)
}

func (suite *TestSuiteStandard) TestClosedDatabaseIsGeneralError() {
	suite.CloseDB()

	err := models.DB.First(&models.Envelope{}, "id = ?", uuid.New()).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
