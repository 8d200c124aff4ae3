package models_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spareround/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

const (
	testOwner       = "0x00000000000000000000000000000000000000aa"
	testDestination = "0x00000000000000000000000000000000000000bb"
)

func (suite *TestSuiteStandard) TestSetRuleStoresEnabled() {
	rule := suite.createTestRule(testOwner, 0, testDestination, 1_000_000)

	suite.Assert().True(rule.Enabled)
	suite.Assert().Equal(testOwner, rule.Owner)
	suite.Assert().Equal(testDestination, rule.SavingsDestination)
	suite.Assert().True(rule.RoundUpIncrement.Equal(decimal.NewFromInt(1_000_000)))
}

func (suite *TestSuiteStandard) TestSetRuleIdempotent() {
	first := suite.createTestRule(testOwner, 0, testDestination, 1_000_000)
	second := suite.createTestRule(testOwner, 0, testDestination, 1_000_000)

	suite.Assert().Equal(first.Owner, second.Owner)
	suite.Assert().Equal(first.Slot, second.Slot)
	suite.Assert().Equal(first.SavingsDestination, second.SavingsDestination)
	suite.Assert().True(first.RoundUpIncrement.Equal(second.RoundUpIncrement))
	suite.Assert().Equal(first.Enabled, second.Enabled)

	var count int64
	suite.Require().NoError(models.DB.Model(&models.SavingsAutomation{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestSetRuleOverwritesWholesale() {
	suite.createTestRule(testOwner, 0, testDestination, 1_000_000)

	// Simulate a rule that was switched off
	suite.Require().NoError(models.DB.Model(&models.SavingsAutomation{}).
		Where("owner = ? AND slot = ?", testOwner, uint64(0)).
		Update("enabled", false).Error)

	other := "0x00000000000000000000000000000000000000cc"
	rule := suite.createTestRule(testOwner, 0, other, 500_000)

	// The overwrite replaces every field and re-enables the rule
	suite.Assert().True(rule.Enabled)
	suite.Assert().Equal(other, rule.SavingsDestination)
	suite.Assert().True(rule.RoundUpIncrement.Equal(decimal.NewFromInt(500_000)))

	stored, err := models.GetRule(models.DB, testOwner, 0)
	suite.Require().NoError(err)
	suite.Assert().True(stored.Enabled)
	suite.Assert().Equal(other, stored.SavingsDestination)
}

func (suite *TestSuiteStandard) TestSetRuleZeroIncrement() {
	// A zero increment is legal, the rule is stored but has no effect
	rule := suite.createTestRule(testOwner, 0, testDestination, 0)

	suite.Assert().True(rule.Enabled)
	suite.Assert().True(rule.RoundUpIncrement.IsZero())
}

func (suite *TestSuiteStandard) TestSetRuleValidation() {
	tests := []struct {
		name        string
		owner       string
		destination string
		increment   decimal.Decimal
		wantErr     error
	}{
		{"owner not an address", "owner", testDestination, decimal.NewFromInt(1), models.ErrOwnerInvalid},
		{"owner without prefix", "00000000000000000000000000000000000000aa", testDestination, decimal.NewFromInt(1), models.ErrOwnerInvalid},
		{"destination not an address", testOwner, "savings", decimal.NewFromInt(1), models.ErrDestinationInvalid},
		{"fractional increment", testOwner, testDestination, decimal.NewFromFloat(1.5), models.ErrIncrementNotInteger},
		{"negative increment", testOwner, testDestination, decimal.NewFromInt(-1), models.ErrIncrementNegative},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			_, err := models.SetRule(models.DB, tt.owner, 0, tt.destination, tt.increment)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func (suite *TestSuiteStandard) TestGetRuleAbsent() {
	rule, err := models.GetRule(models.DB, testOwner, 0)
	suite.Require().NoError(err)

	// The zero value is the canonical "inactive" signal
	suite.Assert().False(rule.Enabled)
	suite.Assert().True(rule.RoundUpIncrement.IsZero())
	suite.Assert().Empty(rule.SavingsDestination)
}

func (suite *TestSuiteStandard) TestActiveRuleReadsSlotZero() {
	suite.createTestRule(testOwner, 0, testDestination, 1_000_000)
	suite.createTestRule(testOwner, 7, "0x00000000000000000000000000000000000000cc", 500_000)

	rule, err := models.ActiveRule(models.DB, testOwner)
	suite.Require().NoError(err)
	suite.Assert().Equal(uint64(0), rule.Slot)
	suite.Assert().Equal(testDestination, rule.SavingsDestination)
}

func (suite *TestSuiteStandard) TestRulesOrderedBySlot() {
	suite.createTestRule(testOwner, 7, testDestination, 1)
	suite.createTestRule(testOwner, 0, testDestination, 2)
	suite.createTestRule(testOwner, 3, testDestination, 3)

	// Another owner's rules are not returned
	suite.createTestRule(testDestination, 0, testOwner, 4)

	rules, err := models.Rules(models.DB, testOwner)
	suite.Require().NoError(err)
	suite.Require().Len(rules, 3)
	suite.Assert().Equal(uint64(0), rules[0].Slot)
	suite.Assert().Equal(uint64(3), rules[1].Slot)
	suite.Assert().Equal(uint64(7), rules[2].Slot)
}

func (suite *TestSuiteStandard) TestRulesDatabaseError() {
	suite.CloseDB()

	_, err := models.Rules(models.DB, testOwner)
	suite.Assert().Error(err)

	_, err = models.GetRule(models.DB, testOwner, 0)
	suite.Assert().Error(err)
}
