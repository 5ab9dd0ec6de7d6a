// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gitlab.com/openledger/tokencore/internal/chain"
	"gitlab.com/openledger/tokencore/internal/database"
	"gitlab.com/openledger/tokencore/internal/events"
	"gitlab.com/openledger/tokencore/internal/logging"
	"gitlab.com/openledger/tokencore/pkg/database/keyvalue"
	"gitlab.com/openledger/tokencore/pkg/database/keyvalue/badger"
	"gitlab.com/openledger/tokencore/pkg/database/keyvalue/memory"
	"gitlab.com/openledger/tokencore/pkg/database/keyvalue/sqlite"
	"gitlab.com/openledger/tokencore/protocol"
)

// openEngine opens the configured store and builds an engine over it. The
// caller must Close the returned database.
func openEngine() (*chain.Engine, *database.Database) {
	logger, err := logging.NewLogger(viper.GetString("log-format"), viper.GetString("log-level"))
	check(err)

	workDir := viper.GetString("work-dir")
	err = os.MkdirAll(workDir, 0700)
	checkf(err, "create %q", workDir)

	var store keyvalue.KeyValueStore
	switch viper.GetString("database") {
	case "badger":
		store, err = badger.New(filepath.Join(workDir, "badger"), logger)
		checkf(err, "open badger database")
	case "sqlite":
		store, err = sqlite.New(filepath.Join(workDir, "tokencore.db"))
		checkf(err, "open sqlite database")
	case "memory":
		store = memory.New()
	default:
		fatalf("unknown database backend %q", viper.GetString("database"))
	}

	db := database.New(store, logger)
	engine := chain.NewEngine(db, protocol.AccountID(viper.GetString("authority")),
		chain.WithEventBus(events.NewBus(logger)),
		chain.WithLogger(logger))
	return engine, db
}
