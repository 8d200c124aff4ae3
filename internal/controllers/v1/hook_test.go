package v1_test

import (
	"context"
	"encoding/hex"
	"math/big"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	v1 "github.com/spareround/backend/internal/controllers/v1"
	"github.com/spareround/backend/internal/engine"
	"github.com/spareround/backend/internal/host"
	"github.com/spareround/backend/internal/models"
	"github.com/spareround/backend/internal/wire"
	"github.com/spareround/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var executeSelector = wire.Selector{0xb6, 0x1d, 0x27, 0xf6}

// failingHost accepts every authorization but cannot execute anything, like
// an owner account without funds for the top-up.
type failingHost struct{}

func (failingHost) Authorize(wire.Address, string) bool {
	return true
}

func (failingHost) ExecuteFromOwner(context.Context, wire.Address, wire.Address, *big.Int, []byte) error {
	return assert.AnError
}

// transferPayload builds the hex string for an outer execute call wrapping
// a transfer of the amount.
func transferPayload(t *testing.T, asset string, amount *big.Int) string {
	assetAddress, err := wire.ParseAddress(asset)
	require.NoError(t, err)

	inner, err := wire.EncodeTransferCall(wire.Address{0xdd}, amount)
	require.NoError(t, err)

	payload, err := wire.EncodeExecuteCall(executeSelector, assetAddress, big.NewInt(0), inner)
	require.NoError(t, err)

	return "0x" + hex.EncodeToString(payload)
}

func (suite *TestSuiteStandard) topUpCount() int64 {
	var count int64
	suite.Require().NoError(models.DB.Model(&models.TopUp{}).Count(&count).Error)
	return count
}

func (suite *TestSuiteStandard) TestPreTransferOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/hooks/pre-transfer", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestPreTransferDispatches() {
	suite.createTestRule(testOwner, 0, testDestination, 1_000_000)

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/hooks/pre-transfer", v1.PreTransferRequest{
		Owner:   testOwner,
		Payload: transferPayload(suite.T(), testAsset, big.NewInt(2_345_678)),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.PreTransferResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().True(response.Dispatched)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(testAsset, response.Data.Asset)
	suite.Assert().Equal(testDestination, response.Data.Destination)
	suite.Assert().True(response.Data.Amount.Equal(decimal.NewFromInt(654_322)))

	// The audit record was written with the dispatch
	var topUp models.TopUp
	suite.Require().NoError(models.DB.First(&topUp).Error)
	suite.Assert().Equal(testOwner, topUp.Owner)
	suite.Assert().Equal(testAsset, topUp.Asset)
	suite.Assert().Equal(testDestination, topUp.Destination)
	suite.Assert().True(topUp.Amount.Equal(decimal.NewFromInt(654_322)))
	suite.Assert().NotEmpty(topUp.RequestID)
}

func (suite *TestSuiteStandard) TestPreTransferNoOps() {
	suite.createTestRule(testOwner, 0, testDestination, 500_000)

	tests := []struct {
		name    string
		owner   string
		payload string
	}{
		{"aligned amount", testOwner, transferPayload(suite.T(), testAsset, big.NewInt(1_000_000))},
		{"no rule for owner", testDestination, transferPayload(suite.T(), testAsset, big.NewInt(2_345_678))},
		{"payload too short", testOwner, "0x01"},
		{"payload empty", testOwner, "0x"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/hooks/pre-transfer", v1.PreTransferRequest{
				Owner:   tt.owner,
				Payload: tt.payload,
			})
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.PreTransferResponse
			test.DecodeResponse(t, &r, &response)
			assert.False(t, response.Dispatched)
			assert.Nil(t, response.Data)
		})
	}

	suite.Assert().Zero(suite.topUpCount())
}

func (suite *TestSuiteStandard) TestPreTransferInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"empty body", ""},
		{"owner missing", v1.PreTransferRequest{Payload: "0x01"}},
		{"owner not an address", v1.PreTransferRequest{Owner: "me", Payload: "0x01"}},
		{"payload not hex", v1.PreTransferRequest{Owner: testOwner, Payload: "0xzz"}},
		{"payload missing", v1.PreTransferRequest{Owner: testOwner}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/hooks/pre-transfer", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestPreTransferOverflow() {
	_, err := models.SetRule(models.DB, testOwner, 0, testDestination, decimal.NewFromBigInt(wire.MaxWord, 0))
	suite.Require().NoError(err)

	amount := new(big.Int).Sub(wire.MaxWord, big.NewInt(1))
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/hooks/pre-transfer", v1.PreTransferRequest{
		Owner:   testOwner,
		Payload: transferPayload(suite.T(), testAsset, amount),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnprocessableEntity)

	suite.Assert().Zero(suite.topUpCount())
}

func (suite *TestSuiteStandard) TestPreTransferDispatchFailure() {
	suite.createTestRule(testOwner, 0, testDestination, 1_000_000)

	h := failingHost{}
	co := v1.Controller{Host: h, Interceptor: engine.New(h)}

	r := test.RequestWithController(suite.T(), co, http.MethodPost, "http://example.com/v1/hooks/pre-transfer", v1.PreTransferRequest{
		Owner:   testOwner,
		Payload: transferPayload(suite.T(), testAsset, big.NewInt(2_345_678)),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadGateway)

	// Nothing may be recorded for a failed dispatch
	suite.Assert().Zero(suite.topUpCount())
}

func (suite *TestSuiteStandard) TestPreTransferLoopbackRecords() {
	suite.createTestRule(testOwner, 0, testDestination, 1_000_000)

	h := &host.Loopback{}
	co := v1.Controller{Host: h, Interceptor: engine.New(h)}

	r := test.RequestWithController(suite.T(), co, http.MethodPost, "http://example.com/v1/hooks/pre-transfer", v1.PreTransferRequest{
		Owner:   testOwner,
		Payload: transferPayload(suite.T(), testAsset, big.NewInt(2_345_678)),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	calls := h.Calls()
	suite.Require().Len(calls, 1)
	suite.Assert().Equal(testOwner, calls[0].Owner.String())
	suite.Assert().Equal(testAsset, calls[0].Target.String())
	suite.Assert().Zero(calls[0].Value.Sign())

	transfer, err := wire.DecodeTransferCall(calls[0].Payload)
	suite.Require().NoError(err)
	suite.Assert().Equal(testDestination, transfer.Recipient.String())
	suite.Assert().Zero(big.NewInt(654_322).Cmp(transfer.Amount))
}
