// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package chain

import (
	"github.com/google/uuid"
	"gitlab.com/openledger/tokencore/internal/database"
	"gitlab.com/openledger/tokencore/internal/events"
	"gitlab.com/openledger/tokencore/pkg/errors"
	"gitlab.com/openledger/tokencore/protocol"
)

// TransferTokens moves tokens between two accounts. Only the sender may
// transfer, and both parties are notified.
func (x *Engine) TransferTokens(from, to protocol.AccountID, quantity protocol.Amount, memo string) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.done("transfer", x.transfer(from, to, quantity, memo))
}

func (x *Engine) transfer(from, to protocol.AccountID, quantity protocol.Amount, memo string) error {
	batch := x.db.Begin(true)
	defer batch.Discard()

	evts, err := x.transferTokens(batch, from, to, quantity, memo)
	if err != nil {
		return err
	}

	err = batch.Commit()
	if err != nil {
		return errors.InternalError.Wrap(err)
	}

	for _, e := range evts {
		x.bus.Publish(e)
	}
	x.logger.Info("Transferred tokens", "from", from, "to", to, "quantity", quantity)
	return nil
}

// transferTokens runs the transfer sequence within an existing batch. The
// validation order is observable through the returned error and must not
// change: recipient, authority, account, symbol, quantity, memo, balance.
func (x *Engine) transferTokens(batch *database.Batch, from, to protocol.AccountID, quantity protocol.Amount, memo string) ([]events.Event, error) {
	if from == to {
		return nil, errors.InvalidRecipient.With("cannot transfer to self")
	}
	if !x.auth.Authenticate(from) {
		return nil, errors.Unauthorized.WithFormat("transferring from %v requires their authority", from)
	}
	if !x.resolver.IsAccount(to) {
		return nil, errors.InvalidRecipient.WithFormat("%v is not an account", to)
	}

	record, err := batch.Token(quantity.Symbol)
	if err != nil {
		return nil, err
	}
	if !quantity.IsValid() || quantity.Sign() <= 0 {
		return nil, errors.InvalidAmount.With("must transfer positive quantity")
	}
	if quantity.Symbol != record.Symbol {
		return nil, errors.InvalidAmount.With("symbol precision mismatch")
	}
	if len(memo) > protocol.MaxMemoLength {
		return nil, errors.InvalidMemo.WithFormat("memo has more than %d bytes", protocol.MaxMemoLength)
	}

	err = batch.DebitTokens(from, quantity)
	if err != nil {
		return nil, err
	}
	err = batch.CreditTokens(to, quantity)
	if err != nil {
		return nil, err
	}

	// Notify both parties
	return []events.Event{
		events.TokensTransferred{ID: uuid.New(), Account: from, From: from, To: to, Quantity: quantity, Memo: memo},
		events.TokensTransferred{ID: uuid.New(), Account: to, From: from, To: to, Quantity: quantity, Memo: memo},
	}, nil
}
