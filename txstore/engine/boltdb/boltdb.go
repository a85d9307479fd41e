// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package boltdb implements engine.Engine on top of bbolt.  All keys live in
// a single bucket of a single database file.
package boltdb

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/btcsuite/legacytx/txstore/engine"
	bolt "go.etcd.io/bbolt"
)

var (
	// ErrDbClosed is returned when the database is used after Close.
	ErrDbClosed = errors.New("boltdb: closed")

	// ErrTxClosed is returned by writes and Commit on a transaction that
	// was already committed or discarded.
	ErrTxClosed = errors.New("boltdb: transaction already closed")

	// ErrSnapshotReleased is returned by reads from a released snapshot.
	ErrSnapshotReleased = errors.New("boltdb: snapshot released")
)

const (
	// dbFileName is the name of the database file inside the database
	// directory.
	dbFileName = "engine.db"

	// openTimeout bounds how long Open waits for the file lock held by
	// another process.
	openTimeout = time.Second
)

// bucketName is the bucket holding every key.
var bucketName = []byte("kv")

// NewDB opens the bolt database in the directory dbPath, creating the
// directory when needed.  When create is set the database must not exist
// yet.
func NewDB(dbPath string, create bool) (engine.Engine, error) {
	if err := os.MkdirAll(dbPath, 0700); err != nil {
		return nil, err
	}

	dbFile := filepath.Join(dbPath, dbFileName)
	if create {
		if _, err := os.Stat(dbFile); err == nil {
			return nil, fmt.Errorf("boltdb: %s: %w", dbFile, os.ErrExist)
		}
	}

	db, err := bolt.Open(dbFile, 0600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &DB{DB: db}, nil
}

// DB wraps a bolt database.  Snapshots hold a read transaction open until
// released, so they must be released before committing from the same
// goroutine.
type DB struct {
	*bolt.DB

	closed atomic.Bool
}

// Transaction starts a write batch.  No bolt transaction is held until
// Commit.
func (d *DB) Transaction() (engine.Transaction, error) {
	if d.closed.Load() {
		return nil, ErrDbClosed
	}
	return &Transaction{db: d.DB}, nil
}

// Snapshot opens a read-only bolt transaction.
func (d *DB) Snapshot() (engine.Snapshot, error) {
	if d.closed.Load() {
		return nil, ErrDbClosed
	}
	tx, err := d.DB.Begin(false)
	if err != nil {
		return nil, err
	}
	return &Snapshot{tx: tx, bucket: tx.Bucket(bucketName)}, nil
}

// Close closes the database file.  Closing twice returns ErrDbClosed.
func (d *DB) Close() error {
	if d.closed.Swap(true) {
		return ErrDbClosed
	}
	return d.DB.Close()
}
