// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package chain

import (
	"github.com/google/uuid"
	"gitlab.com/openledger/tokencore/internal/events"
	"gitlab.com/openledger/tokencore/pkg/errors"
	"gitlab.com/openledger/tokencore/protocol"
)

// CreateToken registers a new symbol with the given issuer and maximum
// supply. Only the ledger's controlling authority may create tokens.
func (x *Engine) CreateToken(issuer protocol.AccountID, maxSupply protocol.Amount) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.done("create", x.createToken(issuer, maxSupply))
}

func (x *Engine) createToken(issuer protocol.AccountID, maxSupply protocol.Amount) error {
	if !x.auth.Authenticate(x.authority) {
		return errors.Unauthorized.WithFormat("creating a token requires the authority of %v", x.authority)
	}

	sym := maxSupply.Symbol
	if !sym.IsValid() {
		return errors.InvalidSymbol.With("invalid symbol name")
	}
	if !maxSupply.IsValid() || maxSupply.Sign() <= 0 {
		return errors.InvalidAmount.With("max-supply must be positive")
	}

	batch := x.db.Begin(true)
	defer batch.Discard()

	err := batch.CreateToken(issuer, maxSupply)
	if err != nil {
		return err
	}
	err = batch.Commit()
	if err != nil {
		return errors.InternalError.Wrap(err)
	}

	x.bus.Publish(events.TokenCreated{ID: uuid.New(), Issuer: issuer, MaxSupply: maxSupply})
	x.logger.Info("Created token", "symbol", sym, "issuer", issuer, "max-supply", maxSupply)
	return nil
}
