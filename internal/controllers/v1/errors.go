package v1

import (
	"errors"
	"net/http"

	"github.com/spareround/backend/internal/models"
)

var (
	errOwnerParameter    = errors.New("the owner parameter must be set")
	errCallerMismatch    = errors.New("the authenticated caller may only manage its own rules")
	errCallerUnset       = errors.New("the X-Owner header must be set to the authenticated caller address")
	errWriteUnauthorized = errors.New("the host did not authorize this registry write")
	errPayloadNotHex     = errors.New("the payload must be a 0x-prefixed hex string")
)

// status returns the appropriate HTTP status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}
