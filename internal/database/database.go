// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package database is the typed record layer of the ledger: supply records
// keyed by symbol code and balance records keyed by (owner, symbol code),
// stored as JSON in a key-value store.
package database

import (
	"encoding/json"
	stderrs "errors"

	"gitlab.com/openledger/tokencore/internal/logging"
	"gitlab.com/openledger/tokencore/pkg/database/keyvalue"
	"gitlab.com/openledger/tokencore/pkg/errors"
)

// Database is a ledger database over a key-value store.
type Database struct {
	store  keyvalue.KeyValueStore
	logger logging.OptionalLogger
}

func New(store keyvalue.KeyValueStore, logger logging.Logger) *Database {
	d := &Database{store: store}
	d.logger.Set(logger)
	return d
}

// Begin begins a batch. A batch is a single unit of work: either every
// mutation commits or none do.
func (d *Database) Begin(writable bool) *Batch {
	return &Batch{txn: d.store.Begin(writable)}
}

// Close closes the underlying store.
func (d *Database) Close() error { return d.store.Close() }

// Batch is a transaction on the ledger database.
type Batch struct {
	txn keyvalue.KeyValueTxn
}

// Commit applies the batch's changes.
func (b *Batch) Commit() error { return b.txn.Commit() }

// Discard abandons the batch.
func (b *Batch) Discard() { b.txn.Discard() }

func (b *Batch) getJSON(key []byte, v interface{}) error {
	data, err := b.txn.Get(key)
	if err != nil {
		if stderrs.Is(err, keyvalue.ErrNotFound) {
			return errors.NotFound.WithFormat("%s not found", key)
		}
		return errors.InternalError.Wrap(err)
	}
	err = json.Unmarshal(data, v)
	if err != nil {
		return errors.InternalError.WithFormat("corrupt record %s: %w", key, err)
	}
	return nil
}

func unmarshalRecord(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

func (b *Batch) putJSON(key []byte, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.InternalError.Wrap(err)
	}
	err = b.txn.Put(key, data)
	if err != nil {
		return errors.InternalError.Wrap(err)
	}
	return nil
}
