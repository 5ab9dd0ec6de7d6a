// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package badger

import (
	"errors"
	"time"

	"github.com/dgraph-io/badger"
	"gitlab.com/openledger/tokencore/pkg/database/keyvalue"
)

type Batch struct {
	db       *DB
	txn      *badger.Txn
	writable bool
	done     bool
}

var _ keyvalue.KeyValueTxn = (*Batch)(nil)

func (d *DB) Begin(writable bool) keyvalue.KeyValueTxn {
	b := new(Batch)
	b.db = d
	b.txn = d.badgerDB.NewTransaction(writable)
	b.writable = writable
	mTxnOpen.Inc()
	return b
}

func (b *Batch) Get(key []byte) ([]byte, error) {
	if l, err := b.db.lock(false); err != nil {
		return nil, err
	} else {
		defer l.Unlock()
	}

	item, err := b.txn.Get(key)
	switch {
	case err == nil:
		// Ok
	case errors.Is(err, badger.ErrKeyNotFound):
		return nil, keyvalue.ErrNotFound
	default:
		return nil, err
	}

	v, err := item.ValueCopy(nil)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, keyvalue.ErrNotFound
	}
	return v, err
}

func (b *Batch) Put(key, value []byte) error {
	if l, err := b.db.lock(false); err != nil {
		return err
	} else {
		defer l.Unlock()
	}

	return b.txn.Set(key, value)
}

func (b *Batch) Delete(key []byte) error {
	if l, err := b.db.lock(false); err != nil {
		return err
	} else {
		defer l.Unlock()
	}

	err := b.txn.Delete(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	return err
}

func (b *Batch) ForEach(prefix []byte, fn func(key, value []byte) error) error {
	if l, err := b.db.lock(false); err != nil {
		return err
	} else {
		defer l.Unlock()
	}

	it := b.txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		v, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		err = fn(item.KeyCopy(nil), v)
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *Batch) Commit() error {
	if l, err := b.db.lock(false); err != nil {
		return err
	} else {
		defer l.Unlock()
	}

	if b.done {
		return nil
	}
	b.done = true

	start := time.Now()
	defer func() {
		mCommitDuration.Set(time.Since(start).Seconds())
		mTxnOpen.Dec()
	}()
	return b.txn.Commit()
}

func (b *Batch) Discard() {
	if b.done {
		return
	}
	b.done = true
	b.txn.Discard()
	mTxnOpen.Dec()
}
