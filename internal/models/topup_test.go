package models_test

import (
	"github.com/shopspring/decimal"
	"github.com/spareround/backend/internal/models"
)

func (suite *TestSuiteStandard) TestTopUpCreate() {
	topUp := suite.createTestTopUp(models.TopUp{
		Owner:       testOwner,
		Asset:       "0x00000000000000000000000000000000000000cc",
		Destination: testDestination,
		Amount:      decimal.NewFromInt(654_322),
		RequestID:   "OWJhoDpuQLWACGqHHzDhkA",
	})

	suite.Assert().NotZero(topUp.ID)
	suite.Assert().False(topUp.CreatedAt.IsZero())
}

func (suite *TestSuiteStandard) TestTopUpAmountMustBePositive() {
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-1)} {
		err := models.DB.Create(&models.TopUp{
			Owner:       testOwner,
			Asset:       "0x00000000000000000000000000000000000000cc",
			Destination: testDestination,
			Amount:      amount,
		}).Error

		suite.Assert().ErrorIs(err, models.ErrTopUpAmountNotPositive)
	}
}
