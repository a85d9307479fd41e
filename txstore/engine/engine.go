// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package engine defines the ordered key/value store the transaction store
// is built on.  Implementations live in the subpackages.
package engine

import (
	"errors"
)

var (
	// ErrNotFound is returned by Snapshot.Get when the key does not exist.
	ErrNotFound = errors.New("engine: key not found")

	// ErrIterReleased is returned by Iterator.Error after Release by engines
	// whose backend has no error of its own for that case.
	ErrIterReleased = errors.New("engine: iterator released")
)

// Engine is an opened key/value database.
type Engine interface {
	// Transaction starts a batch of writes that becomes visible atomically
	// on Commit.
	Transaction() (Transaction, error)

	// Snapshot returns a consistent read-only view of committed data.
	Snapshot() (Snapshot, error)

	Close() error
}

// Transaction is a batch of writes.  Discard may be called any number of
// times and after Commit.
type Transaction interface {
	Put(key, value []byte) error
	Delete(key []byte) error
	Commit() error
	Discard()
}

// Snapshot is a read-only point in time view of the database.  Values
// returned by Get are owned by the caller.
type Snapshot interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)
	NewIterator(*Range) Iterator
	Releaser
}

// Iterator walks the keys of a Range in ascending byte order.  It starts
// before the first key, so Next must be called before Key and Value.
type Iterator interface {
	// Next moves the iterator to the next key/value pair.
	// It returns false if the iterator is exhausted.
	Next() bool

	// Error returns any accumulated error. Exhausting all the key/value pairs
	// is not considered to be an error.
	Error() error

	// Key returns the key of the current key/value pair, or nil if done.
	// The caller should not modify the contents of the returned slice, and
	// its contents may change on the next call to Next.
	Key() []byte

	// Value returns the value of the current key/value pair, or nil if done.
	// The caller should not modify the contents of the returned slice, and
	// its contents may change on the next call to Next.
	Value() []byte

	Releaser
}

// Releaser is implemented by resources that must be released after use.
// Release may be called more than once.
type Releaser interface {
	Release()
}

// Range is a key range.
type Range struct {
	// Start of the key range, include in the range.
	Start []byte

	// Limit of the key range, not include in the range.
	Limit []byte
}

// BytesPrefix returns key range that satisfy the given prefix.
func BytesPrefix(prefix []byte) *Range {
	var limit []byte
	for i := len(prefix) - 1; i >= 0; i-- {
		c := prefix[i]
		if c < 0xff {
			limit = make([]byte, i+1)
			copy(limit, prefix)
			limit[i] = c + 1
			break
		}
	}
	return &Range{prefix, limit}
}
