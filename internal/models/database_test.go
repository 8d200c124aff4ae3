package models_test

import (
	"github.com/spareround/backend/internal/models"
)

func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	err := models.Connect("/does-not-exist/database")
	suite.Assert().Error(err)
}
