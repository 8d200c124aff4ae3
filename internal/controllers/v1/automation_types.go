package v1

import (
	"github.com/shopspring/decimal"
	"github.com/spareround/backend/internal/models"
)

type AutomationEditable struct {
	Owner              string          `json:"owner" binding:"required" example:"0x00000000000000000000000000000000000000aa"`              // Address whose outgoing transfers are automated
	Slot               uint64          `json:"slot" example:"0" default:"0"`                                                               // Caller-chosen rule index. Only slot 0 is consulted by the hook.
	SavingsDestination string          `json:"savingsDestination" binding:"required" example:"0x00000000000000000000000000000000000000bb"` // Address receiving the round-up delta
	RoundUpIncrement   decimal.Decimal `json:"roundUpIncrement" example:"1000000" minimum:"0" multipleOf:"1" default:"0"`                   // Round-up unit in the asset's smallest denomination. Zero stores the rule switched off.
}

type AutomationResponse struct {
	Data  *models.SavingsAutomation `json:"data"`                                                       // The rule
	Error *string                   `json:"error" example:"the owner must be a valid account address"` // The error, if any occurred
}

type AutomationListResponse struct {
	Data  []models.SavingsAutomation `json:"data"`                                           // List of rules
	Error *string                    `json:"error" example:"the owner parameter must be set"` // The error, if any occurred
}

type AutomationQueryFilter struct {
	Owner string  `form:"owner"` // Owner address the rules belong to
	Slot  *uint64 `form:"slot"`  // Return only the rule at this slot
}
