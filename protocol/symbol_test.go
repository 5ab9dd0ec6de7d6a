// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSymbolIsValid(t *testing.T) {
	cases := map[string]struct {
		sym   Symbol
		valid bool
	}{
		"ok":                {Symbol{4, "FIO"}, true},
		"ok single char":    {Symbol{0, "X"}, true},
		"ok seven chars":    {Symbol{18, "ABCDEFG"}, true},
		"empty code":        {Symbol{4, ""}, false},
		"too long":          {Symbol{4, "ABCDEFGH"}, false},
		"lowercase":         {Symbol{4, "fio"}, false},
		"digits":            {Symbol{4, "FI0"}, false},
		"precision too big": {Symbol{19, "FIO"}, false},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, c.valid, c.sym.IsValid())
		})
	}
}

func TestSymbolEqual(t *testing.T) {
	require.True(t, Symbol{4, "FIO"}.Equal(Symbol{4, "FIO"}))

	// A precision mismatch is not equality
	require.False(t, Symbol{4, "FIO"}.Equal(Symbol{5, "FIO"}))
	require.False(t, Symbol{4, "FIO"}.Equal(Symbol{4, "FOO"}))
}

func TestParseSymbol(t *testing.T) {
	sym, err := ParseSymbol("4,FIO")
	require.NoError(t, err)
	require.Equal(t, Symbol{4, "FIO"}, sym)

	for _, bad := range []string{"FIO", "4.FIO", "x,FIO", "4,fio", "4,", "300,FIO"} {
		_, err := ParseSymbol(bad)
		require.Error(t, err, "%q should not parse", bad)
	}
}

func TestAccountIDIsValid(t *testing.T) {
	for _, ok := range []AccountID{"alice", "bob.smith", "acc5", "a"} {
		require.True(t, ok.IsValid(), "%q should be valid", ok)
	}
	for _, bad := range []AccountID{"", "Alice", "alice6", ".alice", "alice.", "averylongname"} {
		require.False(t, bad.IsValid(), "%q should not be valid", bad)
	}
}
