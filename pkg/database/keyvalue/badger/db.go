// Copyright 2026 The Tokencore Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

// Package badger implements a Badger-backed key-value store.
package badger

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/dgraph-io/badger"
	"gitlab.com/openledger/tokencore/internal/logging"
	"gitlab.com/openledger/tokencore/pkg/database/keyvalue"
)

type DB struct {
	ready    bool
	readyMu  *sync.RWMutex
	badgerDB *badger.DB
	logger   logging.OptionalLogger
}

var _ keyvalue.KeyValueStore = (*DB)(nil)

func New(filepath string, logger logging.Logger) (*DB, error) {
	// Make sure all directories exist
	err := os.MkdirAll(filepath, 0700)
	if err != nil {
		return nil, fmt.Errorf("open badger: create %q: %w", filepath, err)
	}

	opts := badger.DefaultOptions(filepath)
	if logger != nil {
		opts = opts.WithLogger(badgerLogger{logger})
	}

	d := new(DB)
	d.badgerDB, err = badger.Open(opts)
	if err != nil {
		return nil, err
	}

	d.logger.Set(logger)
	d.ready = true
	d.readyMu = new(sync.RWMutex)
	mDbOpen.Inc()

	// Run GC every hour
	go d.gc()

	return d, nil
}

// Close closes the underlying database.
func (d *DB) Close() error {
	if l, err := d.lock(true); err != nil {
		return err
	} else {
		defer l.Unlock()
	}

	d.ready = false
	mDbOpen.Dec()
	return d.badgerDB.Close()
}

func (d *DB) gc() {
	for {
		time.Sleep(time.Hour)

		// Still open?
		l, err := d.lock(false)
		if err != nil {
			return
		}

		// Run GC if 50% space could be reclaimed
		start := time.Now()
		err = d.badgerDB.RunValueLogGC(0.5)
		if err != nil && !errors.Is(err, badger.ErrNoRewrite) {
			d.logger.Error("Badger GC failed", "error", err)
		}
		mGcRun.Inc()
		mGcDuration.Set(time.Since(start).Seconds())

		l.Unlock()
	}
}

// lock acquires a lock on the ready mutex and checks for readiness. This
// prevents race conditions between Get/Put and Close, which can cause panics.
func (d *DB) lock(closing bool) (sync.Locker, error) {
	var l sync.Locker = d.readyMu
	if !closing {
		l = d.readyMu.RLocker()
	}

	l.Lock()
	if !d.ready {
		l.Unlock()
		return nil, keyvalue.ErrNotOpen
	}

	return l, nil
}

type badgerLogger struct {
	logging.Logger
}

func (l badgerLogger) format(format string, args ...interface{}) string {
	s := fmt.Sprintf(format, args...)
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.Error(l.format(format, args...))
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.Info(l.format(format, args...))
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.Info(l.format(format, args...))
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.Debug(l.format(format, args...))
}
