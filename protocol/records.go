// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

// SupplyRecord tracks the circulating and maximum supply of one symbol. A
// record is created once, its issuer never changes, and its supply only
// grows. 0 ≤ Supply ≤ MaxSupply holds at all times.
type SupplyRecord struct {
	Symbol    Symbol    `json:"symbol"`
	Issuer    AccountID `json:"issuer"`
	Supply    Amount    `json:"supply"`
	MaxSupply Amount    `json:"maxSupply"`
}

// Available returns the quantity that can still be issued.
func (r SupplyRecord) Available() (Amount, bool) {
	return r.MaxSupply.Sub(r.Supply)
}

// Issue returns a copy of the record with the quantity added to the supply.
// It returns false if the symbols differ or the result would exceed the
// maximum supply. The receiver is never modified.
func (r SupplyRecord) Issue(quantity Amount) (SupplyRecord, bool) {
	avail, ok := r.Available()
	if !ok {
		return SupplyRecord{}, false
	}
	if quantity.Symbol != r.Symbol || quantity.Value > avail.Value {
		return SupplyRecord{}, false
	}
	supply, ok := r.Supply.Add(quantity)
	if !ok {
		return SupplyRecord{}, false
	}
	r.Supply = supply
	return r, true
}

// BalanceRecord tracks one owner's holdings of one symbol. A record exists
// only while the balance is positive; debiting to exactly zero removes it.
type BalanceRecord struct {
	Owner   AccountID `json:"owner"`
	Symbol  Symbol    `json:"symbol"`
	Balance Amount    `json:"balance"`
}

// Credit returns a copy of the record with the amount added. It returns false
// if the symbols differ or the addition overflows. The receiver is never
// modified.
func (r BalanceRecord) Credit(amount Amount) (BalanceRecord, bool) {
	balance, ok := r.Balance.Add(amount)
	if !ok || r.Symbol != amount.Symbol {
		return BalanceRecord{}, false
	}
	r.Balance = balance
	return r, true
}

// Debit returns a copy of the record with the amount removed. It returns
// false if the symbols differ or the balance is insufficient. The receiver is
// never modified.
func (r BalanceRecord) Debit(amount Amount) (BalanceRecord, bool) {
	if r.Symbol != amount.Symbol || r.Balance.Value < amount.Value {
		return BalanceRecord{}, false
	}
	balance, ok := r.Balance.Sub(amount)
	if !ok {
		return BalanceRecord{}, false
	}
	r.Balance = balance
	return r, true
}
