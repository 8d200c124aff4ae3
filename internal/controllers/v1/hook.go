package v1

import (
	"encoding/hex"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/spareround/backend/internal/engine"
	"github.com/spareround/backend/internal/httputil"
	"github.com/spareround/backend/internal/models"
	"github.com/spareround/backend/internal/wire"
	"gorm.io/gorm"
)

// RegisterHookRoutes registers the routes for the host hooks with
// the RouterGroup that is passed.
func (co Controller) RegisterHookRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/pre-transfer", OptionsPreTransfer)
	r.POST("/pre-transfer", co.PreTransfer)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Hooks
// @Success		204
// @Router			/v1/hooks/pre-transfer [options]
func OptionsPreTransfer(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Evaluate an outgoing transfer
// @Description	Called by the host once per outgoing action, before that action executes. Evaluates the owner's automation rule against the payload and dispatches at most one savings transfer. Malformed payloads and inactive rules are a no-op so that the primary transfer is never blocked. A 422 or 502 response means the host must abort the enclosing operation.
// @Tags			Hooks
// @Produce		json
// @Success		200		{object}	PreTransferResponse	"No savings transfer applies"
// @Success		201		{object}	PreTransferResponse	"Exactly one savings transfer was dispatched"
// @Failure		400		{object}	PreTransferResponse
// @Failure		422		{object}	PreTransferResponse	"Round-up arithmetic overflow, abort the operation"
// @Failure		502		{object}	PreTransferResponse	"Savings transfer dispatch failed, abort the operation"
// @Param			request	body		PreTransferRequest	true	"Pre-transfer hook request"
// @Router			/v1/hooks/pre-transfer [post]
func (co Controller) PreTransfer(c *gin.Context) {
	var request PreTransferRequest

	err := httputil.BindData(c, &request)
	if err != nil {
		return
	}

	owner, err := wire.ParseAddress(request.Owner)
	if err != nil {
		e := models.ErrOwnerInvalid.Error()
		c.JSON(http.StatusBadRequest, PreTransferResponse{Error: &e})
		return
	}

	// Hex that does not decode is a transport error by the host, not a
	// short ABI payload, and is reported instead of being skipped.
	payload, err := decodeHex(request.Payload)
	if err != nil {
		e := errPayloadNotHex.Error()
		c.JSON(http.StatusBadRequest, PreTransferResponse{Error: &e})
		return
	}

	var dispatch *engine.Dispatch

	// The evaluation, the dispatch and the audit record are atomic: a
	// failed dispatch rolls back the record, a failed record write is
	// surfaced before the host proceeds with the primary transfer.
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		dispatch, err = co.Interceptor.BeforeTransfer(c.Request.Context(), tx, owner, payload)
		if err != nil {
			return err
		}

		if dispatch == nil {
			return nil
		}

		return tx.Create(&models.TopUp{
			Owner:       owner.String(),
			Asset:       dispatch.Asset.String(),
			Destination: dispatch.Destination.String(),
			Amount:      decimal.NewFromBigInt(dispatch.Amount, 0),
			RequestID:   requestid.Get(c),
		}).Error
	})
	if err != nil {
		e := err.Error()

		switch {
		case errors.Is(err, engine.ErrRoundUpOverflow):
			c.JSON(http.StatusUnprocessableEntity, PreTransferResponse{Error: &e})
		case errors.Is(err, engine.ErrDispatchFailed):
			c.JSON(http.StatusBadGateway, PreTransferResponse{Error: &e})
		default:
			httputil.InternalServerError(c, err)
		}
		return
	}

	if dispatch == nil {
		c.JSON(http.StatusOK, PreTransferResponse{Dispatched: false})
		return
	}

	c.JSON(http.StatusCreated, PreTransferResponse{
		Dispatched: true,
		Data: &PreTransferDispatch{
			Asset:       dispatch.Asset.String(),
			Destination: dispatch.Destination.String(),
			Amount:      decimal.NewFromBigInt(dispatch.Amount, 0),
			Payload:     "0x" + hex.EncodeToString(dispatch.Payload),
		},
	})
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	return hex.DecodeString(s)
}
