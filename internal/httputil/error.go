package httputil

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// HTTPError is used for error responses that contain a body.
type HTTPError struct {
	Error string `json:"error" example:"An address specified in the request was not valid"`
}

// NewError creates an HTTPError instance and writes it as the response.
func NewError(c *gin.Context, status int, err error) {
	c.JSON(status, HTTPError{
		Error: err.Error(),
	})
}

// InternalServerError logs the error with the request ID and responds with
// a generic message so that internals do not leak to clients.
func InternalServerError(c *gin.Context, err error) {
	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	c.JSON(http.StatusInternalServerError, HTTPError{
		Error: "an error occurred on the server during your request, the request id is '" + requestid.Get(c) + "'",
	})
}
