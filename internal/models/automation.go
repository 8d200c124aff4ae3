package models

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/spareround/backend/internal/wire"
	"gorm.io/gorm"
)

// SavingsAutomation is one round-up rule. An owner may store any number of
// rules, keyed by (owner, slot). The pre-transfer hook only ever consults
// slot 0, other slots are stored but inert; see ActiveRule.
type SavingsAutomation struct {
	Timestamps
	Owner              string          `json:"owner" gorm:"primaryKey" example:"0x00000000000000000000000000000000000000aa"`              // Address whose outgoing transfers are automated
	Slot               uint64          `json:"slot" gorm:"primaryKey" example:"0"`                                                        // Caller-chosen rule index
	SavingsDestination string          `json:"savingsDestination" example:"0x00000000000000000000000000000000000000bb"`                  // Address receiving the round-up delta
	RoundUpIncrement   decimal.Decimal `json:"roundUpIncrement" gorm:"type:DECIMAL(78,0)" example:"1000000" minimum:"0" multipleOf:"1"` // Round-up unit in the asset's smallest denomination. Zero disables the rule.
	Enabled            bool            `json:"enabled" example:"true"`                                                                    // Whether the rule is active
}

func (s *SavingsAutomation) BeforeSave(_ *gorm.DB) error {
	if _, err := wire.ParseAddress(s.Owner); err != nil {
		return ErrOwnerInvalid
	}

	if _, err := wire.ParseAddress(s.SavingsDestination); err != nil {
		return ErrDestinationInvalid
	}

	if !s.RoundUpIncrement.IsInteger() {
		return ErrIncrementNotInteger
	}

	if s.RoundUpIncrement.IsNegative() {
		return ErrIncrementNegative
	}

	return nil
}

// SetRule replaces the rule stored at (owner, slot) wholesale and always
// stores it enabled. There is no deletion: a rule is switched off by
// overwriting it with a zero increment.
func SetRule(db *gorm.DB, owner string, slot uint64, destination string, increment decimal.Decimal) (SavingsAutomation, error) {
	rule := SavingsAutomation{
		Owner:              owner,
		Slot:               slot,
		SavingsDestination: destination,
		RoundUpIncrement:   increment,
		Enabled:            true,
	}

	err := db.Save(&rule).Error
	if err != nil {
		return SavingsAutomation{}, err
	}

	return rule, nil
}

// GetRule returns the rule stored at (owner, slot). When no rule is stored
// there, the zero value is returned: a disabled rule with a zero increment,
// which is indistinguishable from an explicitly switched-off rule. That is
// the canonical "inactive" signal.
func GetRule(db *gorm.DB, owner string, slot uint64) (SavingsAutomation, error) {
	var rule SavingsAutomation

	err := db.First(&rule, "owner = ? AND slot = ?", owner, slot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return SavingsAutomation{Owner: owner, Slot: slot}, nil
	}
	if err != nil {
		return SavingsAutomation{}, err
	}

	return rule, nil
}

// ActiveRule returns the single rule the pre-transfer hook consults for an
// owner. Only slot 0 is ever read, regardless of how many slots are stored.
func ActiveRule(db *gorm.DB, owner string) (SavingsAutomation, error) {
	return GetRule(db, owner, 0)
}

// Rules returns all rules stored for an owner, ordered by slot.
func Rules(db *gorm.DB, owner string) ([]SavingsAutomation, error) {
	var rules []SavingsAutomation

	err := db.Order("slot ASC").Find(&rules, "owner = ?", owner).Error
	if err != nil {
		return nil, err
	}

	return rules, nil
}
