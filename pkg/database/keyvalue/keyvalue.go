// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package keyvalue defines the durable keyed record store the ledger is built
// on. Backends must provide serializable transactions and ordered prefix
// iteration.
package keyvalue

import "errors"

// ErrNotFound is returned by KeyValueTxn.Get if the key is not found.
var ErrNotFound = errors.New("not found")

// ErrNotOpen is returned if the database is not open.
var ErrNotOpen = errors.New("not open")

// KeyValueTxn is a transaction on a key-value store.
type KeyValueTxn interface {
	// Get returns the value for a key, or ErrNotFound.
	Get(key []byte) ([]byte, error)

	// Put stores a value for a key.
	Put(key, value []byte) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(key []byte) error

	// ForEach calls fn for every key with the given prefix, in key order.
	ForEach(prefix []byte, fn func(key, value []byte) error) error

	// Commit applies the transaction's changes.
	Commit() error

	// Discard abandons the transaction. Discard after Commit is a no-op.
	Discard()
}

// KeyValueStore is a key-value store.
type KeyValueStore interface {
	// Begin begins a transaction.
	Begin(writable bool) KeyValueTxn

	// Close closes the store.
	Close() error
}
