// Package engine implements the round-up interceptor that runs before an
// owner's outgoing transfer and tops up a savings destination with the
// difference to the next increment boundary.
package engine

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spareround/backend/internal/models"
	"github.com/spareround/backend/internal/wire"
	"gorm.io/gorm"
)

var (
	// ErrRoundUpOverflow is fatal: the enclosing operation must abort
	// instead of proceeding with a wrapped amount.
	ErrRoundUpOverflow = errors.New("round-up computation exceeds the unsigned 256-bit range")

	// ErrDispatchFailed is fatal: the primary transfer must not execute
	// when the savings transfer it depends on failed.
	ErrDispatchFailed = errors.New("savings transfer dispatch failed")

	// ErrDestinationCorrupt is fatal: a stored rule whose destination no
	// longer parses must never cause funds to be routed anywhere.
	ErrDestinationCorrupt = errors.New("stored savings destination is not a valid address")
)

// Host is the external execution framework the backend runs against. It
// owns authorization and the ability to move funds on an owner's behalf;
// neither is reimplemented here.
type Host interface {
	// Authorize reports whether the caller may perform the named action
	// on the owner's rule set.
	Authorize(owner wire.Address, action string) bool

	// ExecuteFromOwner dispatches a call to target from the owner's
	// account. The call and the enclosing operation are atomic: an error
	// rolls back everything.
	ExecuteFromOwner(ctx context.Context, owner, target wire.Address, value *big.Int, payload []byte) error
}

// Dispatch describes the single secondary transfer emitted by an
// evaluation.
type Dispatch struct {
	Asset       wire.Address // asset of the primary transfer
	Destination wire.Address // configured savings destination
	Amount      *big.Int     // round-up delta
	Payload     []byte       // encoded transfer(address,uint256) call
}

// Interceptor evaluates outgoing transfers against the automation registry.
// It is stateless across calls except for the registry reads and the
// per-owner re-entrancy guard.
type Interceptor struct {
	host Host

	mu       sync.Mutex
	inFlight map[wire.Address]struct{}
}

func New(host Host) *Interceptor {
	return &Interceptor{
		host:     host,
		inFlight: make(map[wire.Address]struct{}),
	}
}

// BeforeTransfer is invoked once per outgoing action, before the host
// performs it. It returns the dispatch that was emitted, or nil when the
// action proceeds without a top-up.
//
// Malformed payloads are a guarded no-op: the savings feature must never
// block the underlying payment. Arithmetic overflow and dispatch failures
// are returned as errors and must abort the enclosing operation.
func (i *Interceptor) BeforeTransfer(ctx context.Context, db *gorm.DB, owner wire.Address, payload []byte) (*Dispatch, error) {
	// An asset contract called by the dispatch below can re-enter and
	// trigger another outgoing action for the same owner. The nested
	// evaluation would read the same unchanged rule and emit a second
	// top-up for one payment, so it is refused instead.
	if !i.acquire(owner) {
		log.Warn().Str("owner", owner.String()).Msg("re-entrant evaluation refused")
		evaluationsSkipped.WithLabelValues("reentrant").Inc()
		return nil, nil
	}
	defer i.release(owner)

	rule, err := models.ActiveRule(db, owner.String())
	if err != nil {
		return nil, fmt.Errorf("reading automation rule: %w", err)
	}

	increment := rule.RoundUpIncrement.BigInt()
	if !rule.Enabled || increment.Sign() <= 0 {
		evaluationsSkipped.WithLabelValues("inactive").Inc()
		return nil, nil
	}

	outer, err := wire.DecodeExecuteCall(payload)
	if err != nil {
		log.Debug().Err(err).Str("owner", owner.String()).Msg("outer payload not decodable, skipping")
		evaluationsSkipped.WithLabelValues("malformed").Inc()
		return nil, nil
	}

	transfer, err := wire.DecodeTransferCall(outer.Data)
	if err != nil {
		log.Debug().Err(err).Str("owner", owner.String()).Msg("inner payload not decodable, skipping")
		evaluationsSkipped.WithLabelValues("malformed").Inc()
		return nil, nil
	}

	roundUp, err := ceilToMultiple(transfer.Amount, increment)
	if err != nil {
		return nil, err
	}

	savings := new(big.Int).Sub(roundUp, transfer.Amount)
	if savings.Sign() == 0 {
		// Already aligned to the increment boundary
		evaluationsSkipped.WithLabelValues("aligned").Inc()
		return nil, nil
	}

	destination, err := wire.ParseAddress(rule.SavingsDestination)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrDestinationCorrupt, rule.SavingsDestination)
	}

	transferPayload, err := wire.EncodeTransferCall(destination, savings)
	if err != nil {
		return nil, fmt.Errorf("encoding savings transfer: %w", err)
	}

	err = i.host.ExecuteFromOwner(ctx, owner, outer.Target, big.NewInt(0), transferPayload)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDispatchFailed, err)
	}

	log.Info().
		Str("owner", owner.String()).
		Str("asset", outer.Target.String()).
		Str("destination", destination.String()).
		Str("amount", savings.String()).
		Msg("savings top-up dispatched")
	topUpsDispatched.Inc()

	return &Dispatch{
		Asset:       outer.Target,
		Destination: destination,
		Amount:      savings,
		Payload:     transferPayload,
	}, nil
}

func (i *Interceptor) acquire(owner wire.Address) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	if _, ok := i.inFlight[owner]; ok {
		return false
	}

	i.inFlight[owner] = struct{}{}
	return true
}

func (i *Interceptor) release(owner wire.Address) {
	i.mu.Lock()
	defer i.mu.Unlock()

	delete(i.inFlight, owner)
}

// ceilToMultiple rounds amount up to the next multiple of increment,
// mirroring unsigned 256-bit semantics: the intermediate sum
// amount + increment - 1 must itself be representable, otherwise the
// computation fails with ErrRoundUpOverflow.
func ceilToMultiple(amount, increment *big.Int) (*big.Int, error) {
	sum := new(big.Int).Add(amount, increment)
	sum.Sub(sum, big.NewInt(1))

	if sum.Cmp(wire.MaxWord) > 0 {
		return nil, ErrRoundUpOverflow
	}

	sum.Div(sum, increment)
	sum.Mul(sum, increment)

	return sum, nil
}
