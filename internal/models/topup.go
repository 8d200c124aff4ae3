package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TopUp is the audit record for one dispatched savings transfer. It is
// written in the same database transaction as the hook evaluation, so a
// failed dispatch leaves no record behind.
type TopUp struct {
	DefaultModel
	Owner       string          `json:"owner" example:"0x00000000000000000000000000000000000000aa"`       // Address the top-up was taken from
	Asset       string          `json:"asset" example:"0x00000000000000000000000000000000000000cc"`       // Asset contract of the primary transfer
	Destination string          `json:"destination" example:"0x00000000000000000000000000000000000000bb"` // Savings destination
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(78,0)" example:"654322"`                // Round-up delta in the asset's smallest denomination
	RequestID   string          `json:"requestId" example:"OWJhoDpuQLWACGqHHzDhkA"`                       // Request that triggered the dispatch
}

func (t *TopUp) AfterSave(_ *gorm.DB) error {
	if !t.Amount.IsPositive() {
		return ErrTopUpAmountNotPositive
	}

	return nil
}
