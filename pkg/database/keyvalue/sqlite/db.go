// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package sqlite implements a SQLite-backed key-value store using a single
// kv(key, value) table.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"gitlab.com/openledger/tokencore/pkg/database/keyvalue"
	_ "modernc.org/sqlite"
)

type DB struct {
	db *sql.DB
}

var _ keyvalue.KeyValueStore = (*DB)(nil)

func New(filepath string) (*DB, error) {
	db, err := sql.Open("sqlite", filepath+"?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// A single writer at a time, per the transaction model
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS kv (key BLOB PRIMARY KEY, value BLOB NOT NULL)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	return &DB{db}, nil
}

func (d *DB) Begin(writable bool) keyvalue.KeyValueTxn {
	txn, err := d.db.Begin()
	return &Txn{txn: txn, err: err, writable: writable}
}

func (d *DB) Close() error { return d.db.Close() }

type Txn struct {
	txn      *sql.Tx
	err      error
	writable bool
	done     bool
}

var _ keyvalue.KeyValueTxn = (*Txn)(nil)

func (t *Txn) Get(key []byte) ([]byte, error) {
	if t.err != nil {
		return nil, t.err
	}

	var value []byte
	err := t.txn.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	switch {
	case err == nil:
		return value, nil
	case errors.Is(err, sql.ErrNoRows):
		return nil, keyvalue.ErrNotFound
	default:
		return nil, err
	}
}

func (t *Txn) Put(key, value []byte) error {
	if t.err != nil {
		return t.err
	}
	if !t.writable {
		return keyvalue.ErrNotOpen
	}

	_, err := t.txn.Exec(`INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT (key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

func (t *Txn) Delete(key []byte) error {
	if t.err != nil {
		return t.err
	}
	if !t.writable {
		return keyvalue.ErrNotOpen
	}

	_, err := t.txn.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}

func (t *Txn) ForEach(prefix []byte, fn func(key, value []byte) error) error {
	if t.err != nil {
		return t.err
	}

	var rows *sql.Rows
	var err error
	if end := prefixEnd(prefix); end == nil {
		rows, err = t.txn.Query(`SELECT key, value FROM kv WHERE key >= ? ORDER BY key`, prefix)
	} else {
		rows, err = t.txn.Query(`SELECT key, value FROM kv WHERE key >= ? AND key < ? ORDER BY key`, prefix, end)
	}
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var key, value []byte
		err = rows.Scan(&key, &value)
		if err != nil {
			return err
		}
		err = fn(key, value)
		if err != nil {
			return err
		}
	}
	return rows.Err()
}

func (t *Txn) Commit() error {
	if t.err != nil {
		return t.err
	}
	if t.done {
		return nil
	}
	t.done = true
	return t.txn.Commit()
}

func (t *Txn) Discard() {
	if t.err != nil || t.done {
		return
	}
	t.done = true
	_ = t.txn.Rollback()
}

// prefixEnd returns the smallest key greater than every key with the given
// prefix, or nil if there is none.
func prefixEnd(prefix []byte) []byte {
	for i := len(prefix) - 1; i >= 0; i-- {
		if prefix[i] != 0xff {
			end := make([]byte, i+1)
			copy(end, prefix)
			end[i]++
			return end
		}
	}
	return nil
}
