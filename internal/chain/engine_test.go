// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package chain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/openledger/tokencore/internal/database"
	"gitlab.com/openledger/tokencore/internal/events"
	"gitlab.com/openledger/tokencore/pkg/database/keyvalue/memory"
	"gitlab.com/openledger/tokencore/pkg/errors"
	"gitlab.com/openledger/tokencore/protocol"
)

var fio = protocol.Symbol{Precision: 4, Code: "FIO"}

func fioAmount(v int64) protocol.Amount {
	return protocol.Amount{Value: v, Symbol: fio}
}

// testAuth authenticates only the identities it was given.
func testAuth(ids ...protocol.AccountID) Authenticator {
	allowed := map[protocol.AccountID]bool{}
	for _, id := range ids {
		allowed[id] = true
	}
	return AuthenticatorFunc(func(claimed protocol.AccountID) bool { return allowed[claimed] })
}

type fixture struct {
	engine *Engine
	db     *database.Database
	bus    *events.Bus
}

func setup(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	db := database.New(memory.New(), nil)
	bus := events.NewBus(nil)
	opts = append([]Option{WithEventBus(bus)}, opts...)
	return &fixture{NewEngine(db, "tokencore", opts...), db, bus}
}

// setupLedger creates (4,FIO) with a 1000.0000 cap and issues 100.0000 to the
// issuer.
func setupLedger(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	f := setup(t, opts...)
	require.NoError(t, f.engine.CreateToken("issuer", fioAmount(10000000)))
	require.NoError(t, f.engine.IssueTokens("issuer", fioAmount(1000000), ""))
	return f
}

func (f *fixture) requireBalance(t *testing.T, owner protocol.AccountID, value int64) {
	t.Helper()
	balance, err := f.engine.Balance(owner, fio)
	require.NoError(t, err)
	require.Equal(t, value, balance.Value)
}

func (f *fixture) requireSupply(t *testing.T, value int64) {
	t.Helper()
	record, err := f.engine.Token(fio)
	require.NoError(t, err)
	require.Equal(t, value, record.Supply.Value)
}

func TestCreateToken(t *testing.T) {
	f := setup(t)
	require.NoError(t, f.engine.CreateToken("issuer", fioAmount(10000000)))

	record, err := f.engine.Token(fio)
	require.NoError(t, err)
	require.Equal(t, protocol.AccountID("issuer"), record.Issuer)
	require.Zero(t, record.Supply.Value)

	// Exactly once per symbol, regardless of arguments
	err = f.engine.CreateToken("other", fioAmount(999))
	require.Equal(t, errors.AlreadyExists, errors.Code(err))
}

func TestCreateTokenRequiresAuthority(t *testing.T) {
	f := setup(t, WithAuthenticator(testAuth("issuer")))
	err := f.engine.CreateToken("issuer", fioAmount(10000000))
	require.Equal(t, errors.Unauthorized, errors.Code(err))

	_, err = f.engine.Token(fio)
	require.Equal(t, errors.NotFound, errors.Code(err))
}

func TestCreateTokenErrorPrecedence(t *testing.T) {
	f := setup(t)

	// An invalid symbol wins over an invalid amount
	err := f.engine.CreateToken("issuer", protocol.Amount{Value: -1, Symbol: protocol.Symbol{Precision: 4, Code: "bad"}})
	require.Equal(t, errors.InvalidSymbol, errors.Code(err))

	err = f.engine.CreateToken("issuer", fioAmount(0))
	require.Equal(t, errors.InvalidAmount, errors.Code(err))
}

func TestIssueTokens(t *testing.T) {
	f := setupLedger(t)
	f.requireSupply(t, 1000000)
	f.requireBalance(t, "issuer", 1000000)
}

func TestIssueBeyondCap(t *testing.T) {
	f := setupLedger(t)

	// 100 + 950 > 1000
	err := f.engine.IssueTokens("issuer", fioAmount(9500000), "")
	require.Equal(t, errors.SupplyExceeded, errors.Code(err))

	// State is unchanged
	f.requireSupply(t, 1000000)
	f.requireBalance(t, "issuer", 1000000)
}

func TestIssueValidation(t *testing.T) {
	f := setupLedger(t)

	err := f.engine.IssueTokens("issuer", protocol.Amount{Value: 1, Symbol: protocol.Symbol{Precision: 4, Code: "bad"}}, "")
	require.Equal(t, errors.InvalidSymbol, errors.Code(err))

	err = f.engine.IssueTokens("issuer", fioAmount(1), strings.Repeat("m", 257))
	require.Equal(t, errors.InvalidMemo, errors.Code(err))

	eos := protocol.Symbol{Precision: 4, Code: "EOS"}
	err = f.engine.IssueTokens("issuer", protocol.Amount{Value: 1, Symbol: eos}, "")
	require.Equal(t, errors.NotFound, errors.Code(err))

	err = f.engine.IssueTokens("issuer", fioAmount(0), "")
	require.Equal(t, errors.InvalidAmount, errors.Code(err))

	err = f.engine.IssueTokens("issuer", protocol.Amount{Value: 1, Symbol: protocol.Symbol{Precision: 5, Code: "FIO"}}, "")
	require.Equal(t, errors.InvalidAmount, errors.Code(err))
}

func TestIssueRequiresIssuer(t *testing.T) {
	f := setup(t, WithAuthenticator(testAuth("tokencore")))
	require.NoError(t, f.engine.CreateToken("issuer", fioAmount(10000000)))

	err := f.engine.IssueTokens("issuer", fioAmount(1000000), "")
	require.Equal(t, errors.Unauthorized, errors.Code(err))
	f.requireSupply(t, 0)
}

func TestIssueToThirdParty(t *testing.T) {
	f := setup(t)
	require.NoError(t, f.engine.CreateToken("issuer", fioAmount(10000000)))

	var issued []events.TokensIssued
	var transferred []events.TokensTransferred
	events.SubscribeSync(f.bus, func(e events.TokensIssued) { issued = append(issued, e) })
	events.SubscribeSync(f.bus, func(e events.TokensTransferred) { transferred = append(transferred, e) })

	require.NoError(t, f.engine.IssueTokens("bob", fioAmount(1000000), "hello"))

	// Mint to the issuer, then a full transfer to the destination
	f.requireSupply(t, 1000000)
	f.requireBalance(t, "issuer", 0)
	f.requireBalance(t, "bob", 1000000)

	require.Len(t, issued, 1)
	require.Len(t, transferred, 2)
	require.Equal(t, protocol.AccountID("issuer"), transferred[0].Account)
	require.Equal(t, protocol.AccountID("bob"), transferred[1].Account)
	require.Equal(t, "hello", transferred[0].Memo)
}

func TestTransferTokens(t *testing.T) {
	f := setupLedger(t)

	require.NoError(t, f.engine.TransferTokens("issuer", "bob", fioAmount(400000), ""))
	f.requireBalance(t, "issuer", 600000)
	f.requireBalance(t, "bob", 400000)

	// Transferring the full balance back removes the record
	require.NoError(t, f.engine.TransferTokens("bob", "issuer", fioAmount(400000), ""))
	f.requireBalance(t, "issuer", 1000000)
	f.requireBalance(t, "bob", 0)

	records, err := f.engine.Balances("bob")
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestTransferToSelf(t *testing.T) {
	f := setupLedger(t)

	err := f.engine.TransferTokens("issuer", "issuer", fioAmount(10000), "")
	require.Equal(t, errors.InvalidRecipient, errors.Code(err))
	f.requireBalance(t, "issuer", 1000000)
}

func TestTransferInsufficientBalance(t *testing.T) {
	f := setupLedger(t)
	require.NoError(t, f.engine.TransferTokens("issuer", "bob", fioAmount(400000), ""))

	err := f.engine.TransferTokens("bob", "issuer", fioAmount(10000000), "")
	require.Equal(t, errors.InsufficientBalance, errors.Code(err))

	// No state change
	f.requireBalance(t, "issuer", 600000)
	f.requireBalance(t, "bob", 400000)
}

func TestTransferErrorPrecedence(t *testing.T) {
	f := setupLedger(t, WithAuthenticator(testAuth("tokencore", "issuer")), WithAccountResolver(
		AccountResolverFunc(func(id protocol.AccountID) bool { return id.IsValid() && id != "ghost" })))

	// Self-transfer wins over everything else
	err := f.engine.TransferTokens("nobody", "nobody", fioAmount(0), "")
	require.Equal(t, errors.InvalidRecipient, errors.Code(err))

	// Authorization is checked before the recipient is resolved
	err = f.engine.TransferTokens("bob", "ghost", fioAmount(10000), "")
	require.Equal(t, errors.Unauthorized, errors.Code(err))

	err = f.engine.TransferTokens("issuer", "ghost", fioAmount(10000), "")
	require.Equal(t, errors.InvalidRecipient, errors.Code(err))

	// The symbol lookup precedes quantity validation
	eos := protocol.Symbol{Precision: 4, Code: "EOS"}
	err = f.engine.TransferTokens("issuer", "bob", protocol.Amount{Value: 0, Symbol: eos}, "")
	require.Equal(t, errors.NotFound, errors.Code(err))

	err = f.engine.TransferTokens("issuer", "bob", fioAmount(0), "")
	require.Equal(t, errors.InvalidAmount, errors.Code(err))

	err = f.engine.TransferTokens("issuer", "bob", protocol.Amount{Value: 1, Symbol: protocol.Symbol{Precision: 5, Code: "FIO"}}, "")
	require.Equal(t, errors.InvalidAmount, errors.Code(err))

	err = f.engine.TransferTokens("issuer", "bob", fioAmount(10000), strings.Repeat("m", 257))
	require.Equal(t, errors.InvalidMemo, errors.Code(err))

	// Nothing above touched any balance
	f.requireBalance(t, "issuer", 1000000)
	f.requireBalance(t, "bob", 0)
}

func TestTransferNotifiesBothParties(t *testing.T) {
	f := setupLedger(t)

	var notified []protocol.AccountID
	events.SubscribeSync(f.bus, func(e events.TokensTransferred) { notified = append(notified, e.Account) })

	require.NoError(t, f.engine.TransferTokens("issuer", "bob", fioAmount(400000), "rent"))
	require.Equal(t, []protocol.AccountID{"issuer", "bob"}, notified)
}

func TestConservation(t *testing.T) {
	f := setupLedger(t)
	require.NoError(t, f.engine.TransferTokens("issuer", "bob", fioAmount(400000), ""))
	require.NoError(t, f.engine.TransferTokens("bob", "carol", fioAmount(100000), ""))
	require.NoError(t, f.engine.IssueTokens("issuer", fioAmount(2000000), ""))

	// Balances sum to the circulating supply
	record, err := f.engine.Token(fio)
	require.NoError(t, err)

	var sum int64
	for _, owner := range []protocol.AccountID{"issuer", "bob", "carol"} {
		balance, err := f.engine.Balance(owner, fio)
		require.NoError(t, err)
		sum += balance.Value
	}
	require.Equal(t, record.Supply.Value, sum)
	require.LessOrEqual(t, record.Supply.Value, record.MaxSupply.Value)
}

func TestRoundTripRestoresState(t *testing.T) {
	f := setupLedger(t)

	before, err := f.engine.Balances("issuer")
	require.NoError(t, err)

	require.NoError(t, f.engine.TransferTokens("issuer", "bob", fioAmount(250000), ""))
	require.NoError(t, f.engine.TransferTokens("bob", "issuer", fioAmount(250000), ""))

	after, err := f.engine.Balances("issuer")
	require.NoError(t, err)
	require.Equal(t, before, after)

	records, err := f.engine.Balances("bob")
	require.NoError(t, err)
	require.Empty(t, records)
}
