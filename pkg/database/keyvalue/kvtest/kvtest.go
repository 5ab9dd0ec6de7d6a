// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package kvtest is a conformance test suite for key-value store backends.
package kvtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/openledger/tokencore/pkg/database/keyvalue"
)

type Opener func(t *testing.T) keyvalue.KeyValueStore

// TestStore runs the conformance suite against a backend.
func TestStore(t *testing.T, open Opener) {
	t.Run("GetPut", func(t *testing.T) { testGetPut(t, open(t)) })
	t.Run("Delete", func(t *testing.T) { testDelete(t, open(t)) })
	t.Run("Discard", func(t *testing.T) { testDiscard(t, open(t)) })
	t.Run("Prefix", func(t *testing.T) { testPrefix(t, open(t)) })
}

func testGetPut(t *testing.T, store keyvalue.KeyValueStore) {
	defer store.Close()

	txn := store.Begin(true)
	require.NoError(t, txn.Put([]byte("alpha"), []byte("one")))
	require.NoError(t, txn.Put([]byte("beta"), []byte("two")))

	// Reads within the transaction see pending writes
	v, err := txn.Get([]byte("alpha"))
	require.NoError(t, err)
	require.Equal(t, []byte("one"), v)
	require.NoError(t, txn.Commit())

	txn = store.Begin(false)
	defer txn.Discard()
	v, err = txn.Get([]byte("beta"))
	require.NoError(t, err)
	require.Equal(t, []byte("two"), v)

	_, err = txn.Get([]byte("gamma"))
	require.ErrorIs(t, err, keyvalue.ErrNotFound)
}

func testDelete(t *testing.T, store keyvalue.KeyValueStore) {
	defer store.Close()

	txn := store.Begin(true)
	require.NoError(t, txn.Put([]byte("alpha"), []byte("one")))
	require.NoError(t, txn.Commit())

	txn = store.Begin(true)
	require.NoError(t, txn.Delete([]byte("alpha")))
	require.NoError(t, txn.Delete([]byte("missing")))
	require.NoError(t, txn.Commit())

	txn = store.Begin(false)
	defer txn.Discard()
	_, err := txn.Get([]byte("alpha"))
	require.ErrorIs(t, err, keyvalue.ErrNotFound)
}

func testDiscard(t *testing.T, store keyvalue.KeyValueStore) {
	defer store.Close()

	txn := store.Begin(true)
	require.NoError(t, txn.Put([]byte("alpha"), []byte("one")))
	txn.Discard()

	txn = store.Begin(false)
	defer txn.Discard()
	_, err := txn.Get([]byte("alpha"))
	require.ErrorIs(t, err, keyvalue.ErrNotFound)
}

func testPrefix(t *testing.T, store keyvalue.KeyValueStore) {
	defer store.Close()

	txn := store.Begin(true)
	require.NoError(t, txn.Put([]byte("balance/bob/2"), []byte("b2")))
	require.NoError(t, txn.Put([]byte("balance/alice/1"), []byte("a1")))
	require.NoError(t, txn.Put([]byte("balance/alice/2"), []byte("a2")))
	require.NoError(t, txn.Put([]byte("supply/1"), []byte("s1")))
	require.NoError(t, txn.Commit())

	txn = store.Begin(false)
	defer txn.Discard()

	var keys []string
	err := txn.ForEach([]byte("balance/alice/"), func(key, value []byte) error {
		keys = append(keys, string(key))
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"balance/alice/1", "balance/alice/2"}, keys)
}
