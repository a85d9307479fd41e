// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// txtool decodes, stores and builds legacy transactions.
//
// Usage:
//
//	txtool [options] balance
//	txtool [options] send <amount> <address>
//	txtool [options] decode <hex>
//	txtool [options] import <hex>
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/btcsuite/legacytx/command"
	"github.com/btcsuite/legacytx/internal/log"
	"github.com/btcsuite/legacytx/txstore"
	"github.com/btcsuite/legacytx/wire"
)

const (
	// txDbNamePrefix is the prefix for the transaction database.
	txDbNamePrefix = "txs"
)

// fileExists reports whether the named file or directory exists.
func fileExists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// loadTxStore opens the transaction store, creating it when it does not
// exist yet.
func loadTxStore(cfg *config) (*txstore.Store, error) {
	// The database name is based on the database type.
	dbName := txDbNamePrefix + "_" + cfg.DbType
	dbPath := filepath.Join(cfg.DataDir, dbName)

	log.TxtlLog.Debugf("Loading transaction store from '%s'", dbPath)
	create := !fileExists(dbPath)
	if create {
		if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
			return nil, err
		}
	}
	return txstore.Open(cfg.DbType, dbPath, create)
}

// realMain is the real main function for the utility.  It is necessary to work
// around the fact that deferred functions do not run when os.Exit() is called.
func realMain(args []string, stdout, stderr io.Writer) error {
	// Load configuration and parse command line.
	cfg, remainingArgs, err := loadConfig(args, stdout, stderr)
	if err != nil {
		return err
	}

	// Setup logging.
	err = log.InitLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return err
	}
	defer log.CloseLogRotator()

	cmd, err := command.ParseArgs(remainingArgs)
	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, wire.ErrParse) {
			fmt.Fprintf(stderr, "\nCommands:\n%s", command.Usage())
		}
		return err
	}

	r := &runner{cfg: cfg, out: stdout}
	if needsStore(cmd) {
		store, err := loadTxStore(cfg)
		if err != nil {
			log.TxtlLog.Errorf("Failed to load transaction store: %v", err)
			return err
		}
		defer store.Close()
		r.store = store
	}

	if err := r.run(cmd); err != nil {
		log.TxtlLog.Errorf("%v", err)
		return err
	}
	return nil
}

func main() {
	// Work around defer not working after os.Exit()
	err := realMain(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil && !errors.Is(err, errExitEarly) {
		os.Exit(1)
	}
}
