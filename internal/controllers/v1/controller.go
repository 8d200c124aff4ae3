// Package v1 contains the API v1 handlers for the automation registry and
// the pre-transfer hook.
package v1

import (
	"github.com/spareround/backend/internal/engine"
)

// Controller carries the handler dependencies. The host gates registry
// writes, the interceptor evaluates pre-transfer hooks.
type Controller struct {
	Host        engine.Host
	Interceptor *engine.Interceptor
}
