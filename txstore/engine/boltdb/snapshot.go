// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package boltdb

import (
	"bytes"

	"github.com/btcsuite/legacytx/txstore/engine"
	bolt "go.etcd.io/bbolt"
)

// Snapshot is a read-only bolt transaction.
type Snapshot struct {
	tx       *bolt.Tx
	bucket   *bolt.Bucket
	released bool
}

func (s *Snapshot) Has(key []byte) (bool, error) {
	if s.released {
		return false, ErrSnapshotReleased
	}
	return s.bucket.Get(key) != nil, nil
}

// Get returns a copy of the value stored under key or engine.ErrNotFound.
func (s *Snapshot) Get(key []byte) ([]byte, error) {
	if s.released {
		return nil, ErrSnapshotReleased
	}
	v := s.bucket.Get(key)
	if v == nil {
		return nil, engine.ErrNotFound
	}
	return append([]byte{}, v...), nil
}

func (s *Snapshot) Release() {
	if !s.released {
		s.released = true
		s.tx.Rollback()
	}
}

func (s *Snapshot) NewIterator(slice *engine.Range) engine.Iterator {
	if s.released {
		return &Iterator{err: ErrSnapshotReleased, done: true}
	}
	return &Iterator{cursor: s.bucket.Cursor(), slice: *slice}
}

// Iterator walks a bolt cursor between the bounds of a range.
type Iterator struct {
	cursor  *bolt.Cursor
	slice   engine.Range
	started bool
	done    bool

	key, value []byte
	err        error
	released   bool
}

func (i *Iterator) Next() bool {
	if i.done || i.released {
		return false
	}

	var k, v []byte
	if !i.started {
		i.started = true
		if i.slice.Start == nil {
			k, v = i.cursor.First()
		} else {
			k, v = i.cursor.Seek(i.slice.Start)
		}
	} else {
		k, v = i.cursor.Next()
	}

	if k == nil || (i.slice.Limit != nil && bytes.Compare(k, i.slice.Limit) >= 0) {
		i.done = true
		i.key, i.value = nil, nil
		return false
	}
	i.key, i.value = k, v
	return true
}

func (i *Iterator) Key() []byte {
	return i.key
}

func (i *Iterator) Value() []byte {
	return i.value
}

func (i *Iterator) Error() error {
	if i.released {
		return engine.ErrIterReleased
	}
	return i.err
}

func (i *Iterator) Release() {
	i.released = true
	i.key, i.value = nil, nil
}
