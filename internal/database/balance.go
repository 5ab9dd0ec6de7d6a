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

// Balance returns the owner's balance for the symbol, or zero if the owner
// holds none.
func (b *Batch) Balance(owner protocol.AccountID, sym protocol.Symbol) (protocol.Amount, error) {
	record := new(protocol.BalanceRecord)
	err := b.getJSON(balanceKey(owner, sym.Code), record)
	switch {
	case err == nil:
		return record.Balance, nil
	case errors.Is(err, errors.NotFound):
		return protocol.Amount{Value: 0, Symbol: sym}, nil
	default:
		return protocol.Amount{}, err
	}
}

// Balances returns every balance record the owner holds, in symbol order.
func (b *Batch) Balances(owner protocol.AccountID) ([]*protocol.BalanceRecord, error) {
	var records []*protocol.BalanceRecord
	err := b.txn.ForEach(balancePrefix(owner), func(key, value []byte) error {
		record := new(protocol.BalanceRecord)
		err := unmarshalRecord(value, record)
		if err != nil {
			return errors.InternalError.WithFormat("corrupt record %s: %w", key, err)
		}
		records = append(records, record)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// CreditTokens adds to the owner's balance, creating the record on first
// credit. Overflow here means the supply cap has been violated upstream, so
// it is an internal defect, not a caller error.
func (b *Batch) CreditTokens(owner protocol.AccountID, amount protocol.Amount) error {
	if !amount.IsValid() || amount.Sign() <= 0 {
		return errors.InvalidAmount.With("must credit positive quantity")
	}

	key := balanceKey(owner, amount.Symbol.Code)
	record := new(protocol.BalanceRecord)
	err := b.getJSON(key, record)
	switch {
	case errors.Is(err, errors.NotFound):
		record = &protocol.BalanceRecord{Owner: owner, Symbol: amount.Symbol, Balance: amount}
		return b.putJSON(key, record)
	case err != nil:
		return err
	}

	updated, ok := record.Credit(amount)
	if !ok {
		return errors.InternalOverflow.WithFormat("crediting %v to %v overflows the balance", amount, owner)
	}
	return b.putJSON(key, &updated)
}

// DebitTokens removes from the owner's balance. Debiting the balance to
// exactly zero removes the record entirely; zero balances are never stored.
func (b *Batch) DebitTokens(owner protocol.AccountID, amount protocol.Amount) error {
	key := balanceKey(owner, amount.Symbol.Code)
	record := new(protocol.BalanceRecord)
	err := b.getJSON(key, record)
	switch {
	case errors.Is(err, errors.NotFound):
		return errors.InsufficientBalance.WithFormat("%v has no balance of %s", owner, amount.Symbol.Code)
	case err != nil:
		return err
	}

	updated, ok := record.Debit(amount)
	if !ok {
		return errors.InsufficientBalance.WithFormat("%v has an insufficient balance of %s", owner, amount.Symbol.Code)
	}

	if updated.Balance.Value == 0 {
		err = b.txn.Delete(key)
		if err != nil {
			return errors.InternalError.Wrap(err)
		}
		return nil
	}
	return b.putJSON(key, &updated)
}
