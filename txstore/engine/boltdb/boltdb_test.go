// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package boltdb

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/btcsuite/legacytx/txstore/engine"
	"github.com/stretchr/testify/require"
)

func TestSuiteBoltDB(t *testing.T) {
	engine.TestSuiteEngine(t, func() engine.Engine {
		dbPath := filepath.Join(t.TempDir(), "boltdb-testsuite")

		boltdb, err := NewDB(dbPath, true)
		require.NoErrorf(t, err, "failed to create boltdb")
		return boltdb
	})
}

func TestCreateExisting(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "boltdb-existing")

	db, err := NewDB(dbPath, true)
	require.NoError(t, err)

	tx, err := db.Transaction()
	require.NoError(t, err)
	require.NoError(t, tx.Put([]byte("k"), []byte("v")))
	require.NoError(t, tx.Commit())
	require.NoError(t, db.Close())

	_, err = NewDB(dbPath, true)
	require.True(t, errors.Is(err, os.ErrExist), "got %v", err)

	db, err = NewDB(dbPath, false)
	require.NoError(t, err)
	defer db.Close()

	// Committed data survives a reopen.
	snapshot, err := db.Snapshot()
	require.NoError(t, err)
	defer snapshot.Release()

	v, err := snapshot.Get([]byte("k"))
	require.NoError(t, err)
	require.Equal(t, []byte("v"), v)
}

func TestSentinelErrors(t *testing.T) {
	db, err := NewDB(filepath.Join(t.TempDir(), "boltdb-errors"), true)
	require.NoError(t, err)

	tx, err := db.Transaction()
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	require.ErrorIs(t, tx.Commit(), ErrTxClosed)
	require.ErrorIs(t, tx.Put([]byte("k"), []byte("v")), ErrTxClosed)
	require.ErrorIs(t, tx.Delete([]byte("k")), ErrTxClosed)

	snapshot, err := db.Snapshot()
	require.NoError(t, err)
	snapshot.Release()
	_, err = snapshot.Get([]byte("k"))
	require.ErrorIs(t, err, ErrSnapshotReleased)
	_, err = snapshot.Has([]byte("k"))
	require.ErrorIs(t, err, ErrSnapshotReleased)
	iter := snapshot.NewIterator(engine.BytesPrefix([]byte("k")))
	require.False(t, iter.Next())
	require.ErrorIs(t, iter.Error(), ErrSnapshotReleased)

	require.NoError(t, db.Close())
	require.ErrorIs(t, db.Close(), ErrDbClosed)
	_, err = db.Transaction()
	require.ErrorIs(t, err, ErrDbClosed)
	_, err = db.Snapshot()
	require.ErrorIs(t, err, ErrDbClosed)
}
