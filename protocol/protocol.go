// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package protocol defines the value types of the token ledger: symbols,
// fixed-point amounts, account names, and supply and balance records.
package protocol

// MaxMemoLength is the maximum size of an operation memo, in bytes.
const MaxMemoLength = 256
