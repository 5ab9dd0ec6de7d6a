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

var cmdCreateToken = &cobra.Command{
	Use:   "create-token [issuer] [max supply]",
	Short: "Register a new token, e.g. create-token alice '1000.0000 FIO'",
	Args:  cobra.ExactArgs(2),
	Run:   createToken,
}

var cmdIssue = &cobra.Command{
	Use:   "issue [to] [quantity] [memo]",
	Short: "Issue new tokens, e.g. issue alice '100.0000 FIO'",
	Args:  cobra.RangeArgs(2, 3),
	Run:   issueTokens,
}

var cmdTransfer = &cobra.Command{
	Use:   "transfer [from] [to] [quantity] [memo]",
	Short: "Transfer tokens, e.g. transfer alice bob '40.0000 FIO'",
	Args:  cobra.RangeArgs(3, 4),
	Run:   transferTokens,
}

func init() {
	cmdMain.AddCommand(cmdCreateToken, cmdIssue, cmdTransfer)
}

func createToken(_ *cobra.Command, args []string) {
	maxSupply, err := protocol.ParseAsset(args[1])
	checkf(err, "max supply")

	engine, db := openEngine()
	defer db.Close()

	err = engine.CreateToken(protocol.AccountID(args[0]), maxSupply)
	checkf(err, "create %s", maxSupply.Symbol.Code)
	fmt.Printf("Created %s with max supply %v\n", maxSupply.Symbol.Code, maxSupply)
}

func issueTokens(_ *cobra.Command, args []string) {
	quantity, err := protocol.ParseAsset(args[1])
	checkf(err, "quantity")
	var memo string
	if len(args) > 2 {
		memo = args[2]
	}

	engine, db := openEngine()
	defer db.Close()

	err = engine.IssueTokens(protocol.AccountID(args[0]), quantity, memo)
	checkf(err, "issue %s", quantity.Symbol.Code)
	fmt.Printf("Issued %v to %s\n", quantity, args[0])
}

func transferTokens(_ *cobra.Command, args []string) {
	quantity, err := protocol.ParseAsset(args[2])
	checkf(err, "quantity")
	var memo string
	if len(args) > 3 {
		memo = args[3]
	}

	engine, db := openEngine()
	defer db.Close()

	err = engine.TransferTokens(protocol.AccountID(args[0]), protocol.AccountID(args[1]), quantity, memo)
	checkf(err, "transfer %s", quantity.Symbol.Code)
	fmt.Printf("Transferred %v from %s to %s\n", quantity, args[0], args[1])
}
