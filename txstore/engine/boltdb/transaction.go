// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package boltdb

import (
	bolt "go.etcd.io/bbolt"
)

// op is a single buffered write.
type op struct {
	key    []byte
	value  []byte
	delete bool
}

// Transaction buffers writes in memory and applies them in one bolt update
// on Commit.
type Transaction struct {
	db       *bolt.DB
	ops      []op
	released bool
}

func (t *Transaction) Put(key, value []byte) error {
	if t.released {
		return ErrTxClosed
	}
	t.ops = append(t.ops, op{
		key:   append([]byte(nil), key...),
		value: append([]byte{}, value...),
	})
	return nil
}

func (t *Transaction) Delete(key []byte) error {
	if t.released {
		return ErrTxClosed
	}
	t.ops = append(t.ops, op{key: append([]byte(nil), key...), delete: true})
	return nil
}

func (t *Transaction) Discard() {
	t.released = true
	t.ops = nil
}

func (t *Transaction) Commit() error {
	if t.released {
		return ErrTxClosed
	}
	defer t.Discard()

	return t.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketName)
		for _, o := range t.ops {
			var err error
			if o.delete {
				err = b.Delete(o.key)
			} else {
				err = b.Put(o.key, o.value)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}
