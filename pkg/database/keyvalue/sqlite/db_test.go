// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/openledger/tokencore/pkg/database/keyvalue"
	"gitlab.com/openledger/tokencore/pkg/database/keyvalue/kvtest"
)

func TestStore(t *testing.T) {
	kvtest.TestStore(t, func(t *testing.T) keyvalue.KeyValueStore {
		db, err := New(filepath.Join(t.TempDir(), "kv.db"))
		require.NoError(t, err)
		return db
	})
}
