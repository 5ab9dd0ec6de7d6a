// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package chain

import "gitlab.com/openledger/tokencore/protocol"

// Authenticator is the host's cryptographic authorization capability. The
// engine asks whether the current caller may act as the claimed identity; it
// never verifies signatures itself.
type Authenticator interface {
	Authenticate(claimed protocol.AccountID) bool
}

// AuthenticatorFunc adapts a function to the Authenticator interface.
type AuthenticatorFunc func(protocol.AccountID) bool

func (f AuthenticatorFunc) Authenticate(claimed protocol.AccountID) bool { return f(claimed) }

// AccountResolver is the host's account registry capability: it reports
// whether an identity refers to an existing, resolvable account.
type AccountResolver interface {
	IsAccount(id protocol.AccountID) bool
}

// AccountResolverFunc adapts a function to the AccountResolver interface.
type AccountResolverFunc func(protocol.AccountID) bool

func (f AccountResolverFunc) IsAccount(id protocol.AccountID) bool { return f(id) }

// allowAll authenticates every claim. It is the default when the host does
// not supply an authenticator, such as a single-user local ledger.
type allowAll struct{}

func (allowAll) Authenticate(protocol.AccountID) bool { return true }

// validNames resolves every well-formed account name.
type validNames struct{}

func (validNames) IsAccount(id protocol.AccountID) bool { return id.IsValid() }
