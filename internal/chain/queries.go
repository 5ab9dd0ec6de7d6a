// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package chain

import (
	"gitlab.com/openledger/tokencore/protocol"
)

// Token returns the supply record for a symbol.
func (x *Engine) Token(sym protocol.Symbol) (*protocol.SupplyRecord, error) {
	batch := x.db.Begin(false)
	defer batch.Discard()
	return batch.Token(sym)
}

// Balance returns an owner's balance for a symbol, or zero if they hold none.
func (x *Engine) Balance(owner protocol.AccountID, sym protocol.Symbol) (protocol.Amount, error) {
	batch := x.db.Begin(false)
	defer batch.Discard()
	return batch.Balance(owner, sym)
}

// Balances returns every balance an owner holds.
func (x *Engine) Balances(owner protocol.AccountID) ([]*protocol.BalanceRecord, error) {
	batch := x.db.Begin(false)
	defer batch.Discard()
	return batch.Balances(owner)
}
