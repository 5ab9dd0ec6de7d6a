// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gitlab.com/openledger/tokencore/protocol"
)

var cmdSupply = &cobra.Command{
	Use:   "supply [code]",
	Short: "Show a token's supply record",
	Args:  cobra.ExactArgs(1),
	Run:   showSupply,
}

var cmdBalance = &cobra.Command{
	Use:   "balance [owner]",
	Short: "Show an account's balances",
	Args:  cobra.ExactArgs(1),
	Run:   showBalances,
}

func init() {
	cmdMain.AddCommand(cmdSupply, cmdBalance)
}

func showSupply(_ *cobra.Command, args []string) {
	engine, db := openEngine()
	defer db.Close()

	record, err := engine.Token(protocol.Symbol{Code: args[0]})
	checkf(err, "supply of %s", args[0])
	fmt.Printf("%s issued by %v: supply %v, max supply %v\n", record.Symbol.Code, record.Issuer, record.Supply, record.MaxSupply)
}

func showBalances(_ *cobra.Command, args []string) {
	engine, db := openEngine()
	defer db.Close()

	records, err := engine.Balances(protocol.AccountID(args[0]))
	checkf(err, "balances of %s", args[0])
	if len(records) == 0 {
		fmt.Printf("%s holds no tokens\n", args[0])
		return
	}
	for _, r := range records {
		fmt.Printf("%v\n", r.Balance)
	}
}
