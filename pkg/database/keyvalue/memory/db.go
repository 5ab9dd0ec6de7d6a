// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package memory implements an in-memory key-value store, primarily for
// tests and ephemeral ledgers.
package memory

import (
	"bytes"
	"errors"
	"sort"
	"sync"

	"gitlab.com/openledger/tokencore/pkg/database/keyvalue"
)

// DB implements a key-value store in memory.
type DB struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

var _ keyvalue.KeyValueStore = (*DB)(nil)

func New() *DB {
	return &DB{entries: map[string][]byte{}}
}

// Begin begins a transaction. Writes are buffered and applied atomically on
// Commit.
func (d *DB) Begin(writable bool) keyvalue.KeyValueTxn {
	return &Txn{db: d, writable: writable}
}

// Close clears the entries.
func (d *DB) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries = map[string][]byte{}
	return nil
}

func (d *DB) get(key []byte) ([]byte, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.entries[string(key)]
	return v, ok
}

func (d *DB) apply(pending map[string][]byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for k, v := range pending {
		if v == nil {
			delete(d.entries, k)
		} else {
			d.entries[k] = v
		}
	}
}

// Txn is a transaction on an in-memory store. A nil pending value marks a
// deletion.
type Txn struct {
	db       *DB
	writable bool
	pending  map[string][]byte
	done     bool
}

var _ keyvalue.KeyValueTxn = (*Txn)(nil)

func (t *Txn) Get(key []byte) ([]byte, error) {
	if v, ok := t.pending[string(key)]; ok {
		if v == nil {
			return nil, keyvalue.ErrNotFound
		}
		return v, nil
	}
	v, ok := t.db.get(key)
	if !ok {
		return nil, keyvalue.ErrNotFound
	}
	return v, nil
}

func (t *Txn) Put(key, value []byte) error {
	if !t.writable {
		return keyvalue.ErrNotOpen
	}
	if t.pending == nil {
		t.pending = map[string][]byte{}
	}
	u := make([]byte, len(value))
	copy(u, value)
	t.pending[string(key)] = u
	return nil
}

func (t *Txn) Delete(key []byte) error {
	if !t.writable {
		return keyvalue.ErrNotOpen
	}
	if t.pending == nil {
		t.pending = map[string][]byte{}
	}
	t.pending[string(key)] = nil
	return nil
}

func (t *Txn) ForEach(prefix []byte, fn func(key, value []byte) error) error {
	t.db.mu.RLock()
	keys := make([]string, 0, len(t.db.entries))
	for k := range t.db.entries {
		keys = append(keys, k)
	}
	t.db.mu.RUnlock()
	for k := range t.pending {
		keys = append(keys, k)
	}

	sort.Strings(keys)
	var last string
	for _, k := range keys {
		if k == last {
			continue // Pending writes shadow committed entries
		}
		last = k
		if !bytes.HasPrefix([]byte(k), prefix) {
			continue
		}

		v, err := t.Get([]byte(k))
		switch {
		case err == nil:
			// Ok
		case errors.Is(err, keyvalue.ErrNotFound):
			continue // Deleted within this transaction
		default:
			return err
		}

		err = fn([]byte(k), v)
		if err != nil {
			return err
		}
	}
	return nil
}

func (t *Txn) Commit() error {
	if t.done {
		return nil
	}
	t.done = true
	if t.pending != nil {
		t.db.apply(t.pending)
	}
	return nil
}

func (t *Txn) Discard() {
	t.done = true
	t.pending = nil
}
