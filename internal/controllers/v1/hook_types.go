package v1

import (
	"github.com/shopspring/decimal"
)

type PreTransferRequest struct {
	Owner   string `json:"owner" binding:"required" example:"0x00000000000000000000000000000000000000aa"` // Address performing the outgoing action
	Payload string `json:"payload" binding:"required" example:"0xb61d27f6..."`                            // Hex-encoded outer call payload the host is about to dispatch
}

// PreTransferDispatch describes the secondary transfer that was emitted.
type PreTransferDispatch struct {
	Asset       string          `json:"asset" example:"0x00000000000000000000000000000000000000cc"`       // Asset of the primary transfer
	Destination string          `json:"destination" example:"0x00000000000000000000000000000000000000bb"` // Savings destination
	Amount      decimal.Decimal `json:"amount" example:"654322"`                                          // Round-up delta in the asset's smallest denomination
	Payload     string          `json:"payload" example:"0xa9059cbb..."`                                  // Hex-encoded transfer call that was dispatched
}

type PreTransferResponse struct {
	Dispatched bool                 `json:"dispatched" example:"true"`                                // Whether a savings transfer was dispatched
	Data       *PreTransferDispatch `json:"data"`                                                     // The dispatch, when one happened
	Error      *string              `json:"error" example:"savings transfer dispatch failed"`         // The error, if any occurred
}
