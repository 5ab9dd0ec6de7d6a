// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package events carries ledger notifications to external observers. Events
// have no effect on stored state.
package events

import (
	"github.com/google/uuid"
	"gitlab.com/openledger/tokencore/protocol"
)

type Event interface {
	isEvent()
}

// TokenCreated is published when a new symbol is registered.
type TokenCreated struct {
	ID        uuid.UUID
	Issuer    protocol.AccountID
	MaxSupply protocol.Amount
}

// TokensIssued is published when new supply is minted to the issuer.
type TokensIssued struct {
	ID       uuid.UUID
	Issuer   protocol.AccountID
	Quantity protocol.Amount
	Memo     string
}

// TokensTransferred is published once per counterparty when a transfer
// settles: Account is the notified party and is always From or To.
type TokensTransferred struct {
	ID       uuid.UUID
	Account  protocol.AccountID
	From     protocol.AccountID
	To       protocol.AccountID
	Quantity protocol.Amount
	Memo     string
}

func (TokenCreated) isEvent()      {}
func (TokensIssued) isEvent()      {}
func (TokensTransferred) isEvent() {}
