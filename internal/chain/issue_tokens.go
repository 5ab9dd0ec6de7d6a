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

// IssueTokens mints new supply. The quantity is always credited to the
// recorded issuer first; if the destination is someone else, the mint is
// followed by a full transfer from the issuer, so observers see both legs.
// Only the recorded issuer may issue.
func (x *Engine) IssueTokens(to protocol.AccountID, quantity protocol.Amount, memo string) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.done("issue", x.issueTokens(to, quantity, memo))
}

func (x *Engine) issueTokens(to protocol.AccountID, quantity protocol.Amount, memo string) error {
	sym := quantity.Symbol
	if !sym.IsValid() {
		return errors.InvalidSymbol.With("invalid symbol name")
	}
	if len(memo) > protocol.MaxMemoLength {
		return errors.InvalidMemo.WithFormat("memo has more than %d bytes", protocol.MaxMemoLength)
	}

	batch := x.db.Begin(true)
	defer batch.Discard()

	record, err := batch.Token(sym)
	if err != nil {
		return err
	}
	if !x.auth.Authenticate(record.Issuer) {
		return errors.Unauthorized.WithFormat("issuing %s requires the authority of %v", sym.Code, record.Issuer)
	}

	issuer, err := batch.IssueTokens(sym, quantity)
	if err != nil {
		return err
	}
	err = batch.CreditTokens(issuer, quantity)
	if err != nil {
		return err
	}

	evts := []events.Event{events.TokensIssued{ID: uuid.New(), Issuer: issuer, Quantity: quantity, Memo: memo}}

	// Issuing to a third party is a mint to the issuer followed by a full
	// transfer, not a direct credit
	if to != issuer {
		more, err := x.transferTokens(batch, issuer, to, quantity, memo)
		if err != nil {
			return err
		}
		evts = append(evts, more...)
	}

	err = batch.Commit()
	if err != nil {
		return errors.InternalError.Wrap(err)
	}

	for _, e := range evts {
		x.bus.Publish(e)
	}
	x.logger.Info("Issued tokens", "symbol", sym, "quantity", quantity, "to", to)
	return nil
}
