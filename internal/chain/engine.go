// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package chain implements the accounting engine. Every public operation is a
// single unit of work: all validation happens before any mutation, the batch
// commits only on success, and a failure leaves no observable change.
package chain

import (
	"sync"

	"gitlab.com/openledger/tokencore/internal/database"
	"gitlab.com/openledger/tokencore/internal/events"
	"gitlab.com/openledger/tokencore/internal/logging"
	"gitlab.com/openledger/tokencore/pkg/errors"
	"gitlab.com/openledger/tokencore/protocol"
)

// Engine orchestrates create, issue, and transfer over the ledger database.
// Writers are serialized by the engine's mutex; reads need no coordination.
type Engine struct {
	db        *database.Database
	authority protocol.AccountID
	auth      Authenticator
	resolver  AccountResolver
	bus       *events.Bus
	logger    logging.OptionalLogger
	mu        sync.Mutex
}

// Option configures an Engine.
type Option func(*Engine)

// WithAuthenticator sets the host's authorization capability.
func WithAuthenticator(a Authenticator) Option {
	return func(x *Engine) { x.auth = a }
}

// WithAccountResolver sets the host's account registry capability.
func WithAccountResolver(r AccountResolver) Option {
	return func(x *Engine) { x.resolver = r }
}

// WithEventBus sets the bus notifications are published to.
func WithEventBus(bus *events.Bus) Option {
	return func(x *Engine) { x.bus = bus }
}

// WithLogger sets the engine's logger.
func WithLogger(logger logging.Logger) Option {
	return func(x *Engine) { x.logger.Set(logger) }
}

// NewEngine constructs an engine. The authority is the ledger's controlling
// identity: only it may create tokens.
func NewEngine(db *database.Database, authority protocol.AccountID, opts ...Option) *Engine {
	x := &Engine{
		db:        db,
		authority: authority,
		auth:      allowAll{},
		resolver:  validNames{},
	}
	for _, o := range opts {
		o(x)
	}
	return x
}

// Authority returns the ledger's controlling identity.
func (x *Engine) Authority() protocol.AccountID { return x.authority }

// done records the outcome of an operation.
func (x *Engine) done(op string, err error) error {
	if err == nil {
		mOperations.WithLabelValues(op, "ok").Inc()
		return nil
	}
	mOperations.WithLabelValues(op, errors.Code(err).String()).Inc()
	x.logger.Debug("Operation failed", "operation", op, "error", err)
	return err
}
