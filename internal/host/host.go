// Package host provides the in-process stand-in for the external execution
// framework. Deployments replace it with a client for the real host; it
// keeps the backend runnable on its own and gives tests a recording fake.
package host

import (
	"context"
	"math/big"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spareround/backend/internal/wire"
)

// Loopback authorizes every same-owner action and records dispatched calls
// instead of moving funds.
type Loopback struct {
	mu    sync.Mutex
	calls []Call
}

// Call is one recorded ExecuteFromOwner invocation.
type Call struct {
	Owner   wire.Address
	Target  wire.Address
	Value   *big.Int
	Payload []byte
}

func (h *Loopback) Authorize(_ wire.Address, action string) bool {
	// The caller identity was already matched against the owner upstream,
	// registry actions are the only ones that exist.
	return strings.HasPrefix(action, "rules.")
}

func (h *Loopback) ExecuteFromOwner(_ context.Context, owner, target wire.Address, value *big.Int, payload []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.calls = append(h.calls, Call{Owner: owner, Target: target, Value: value, Payload: payload})

	log.Info().
		Str("owner", owner.String()).
		Str("target", target.String()).
		Str("value", value.String()).
		Int("payloadBytes", len(payload)).
		Msg("loopback host executed call")

	return nil
}

// Calls returns a copy of the recorded calls.
func (h *Loopback) Calls() []Call {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]Call(nil), h.calls...)
}
