// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package database

import "gitlab.com/openledger/tokencore/protocol"

// Records are keyed by symbol code, not by the full (precision, code) pair,
// so a quantity with the right code but the wrong precision finds the stored
// record and fails the explicit symbol match instead of appearing unknown.
func supplyKey(code string) []byte {
	return []byte("supply/" + code)
}

func balanceKey(owner protocol.AccountID, code string) []byte {
	return []byte("balance/" + string(owner) + "/" + code)
}

func balancePrefix(owner protocol.AccountID) []byte {
	return []byte("balance/" + string(owner) + "/")
}
