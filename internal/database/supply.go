// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package database

import (
	"gitlab.com/openledger/tokencore/pkg/errors"
	"gitlab.com/openledger/tokencore/protocol"
)

// Token returns the supply record for the symbol's code.
func (b *Batch) Token(sym protocol.Symbol) (*protocol.SupplyRecord, error) {
	record := new(protocol.SupplyRecord)
	err := b.getJSON(supplyKey(sym.Code), record)
	if err != nil {
		if errors.Is(err, errors.NotFound) {
			return nil, errors.NotFound.WithFormat("token with symbol %s does not exist", sym.Code)
		}
		return nil, err
	}
	return record, nil
}

// CreateToken registers a new symbol with a zero supply. The issuer and
// maximum supply are fixed for the life of the record.
func (b *Batch) CreateToken(issuer protocol.AccountID, maxSupply protocol.Amount) error {
	sym := maxSupply.Symbol
	if !sym.IsValid() {
		return errors.InvalidSymbol.WithFormat("symbol %v is not valid", sym)
	}
	if !maxSupply.IsValid() || maxSupply.Sign() <= 0 {
		return errors.InvalidAmount.With("max supply must be positive")
	}

	_, err := b.Token(sym)
	switch {
	case err == nil:
		return errors.AlreadyExists.WithFormat("token with symbol %s already exists", sym.Code)
	case errors.Is(err, errors.NotFound):
		// Ok
	default:
		return err
	}

	record := &protocol.SupplyRecord{
		Symbol:    sym,
		Issuer:    issuer,
		Supply:    protocol.Amount{Value: 0, Symbol: sym},
		MaxSupply: maxSupply,
	}
	return b.putJSON(supplyKey(sym.Code), record)
}

// IssueTokens increases the symbol's supply and returns the recorded issuer,
// which the caller needs to attribute the newly minted balance.
func (b *Batch) IssueTokens(sym protocol.Symbol, quantity protocol.Amount) (protocol.AccountID, error) {
	record, err := b.Token(sym)
	if err != nil {
		return "", err
	}

	if !quantity.IsValid() || quantity.Sign() <= 0 {
		return "", errors.InvalidAmount.With("must issue positive quantity")
	}
	if quantity.Symbol != record.Symbol {
		return "", errors.InvalidAmount.With("symbol precision mismatch")
	}

	avail, ok := record.Available()
	if !ok {
		return "", errors.InternalOverflow.WithFormat("supply record for %s is corrupt", sym.Code)
	}
	if quantity.Value > avail.Value {
		return "", errors.SupplyExceeded.With("quantity exceeds available supply")
	}

	updated, ok := record.Issue(quantity)
	if !ok {
		return "", errors.InternalOverflow.WithFormat("issuing %v overflows the supply", quantity)
	}

	err = b.putJSON(supplyKey(sym.Code), &updated)
	if err != nil {
		return "", err
	}
	return record.Issuer, nil
}
