// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txstore persists encoded transactions keyed by their hash and
// derives the set of unspent outputs from them.
package txstore

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/legacytx/txstore/engine"
	"github.com/btcsuite/legacytx/txstore/engine/boltdb"
	"github.com/btcsuite/legacytx/txstore/engine/leveldb"
	"github.com/btcsuite/legacytx/txstore/engine/pebbledb"
	"github.com/btcsuite/legacytx/wire"
	"github.com/decred/dcrd/lru"
)

const (
	// txKeyPrefix prefixes the key of every stored transaction.  The rest
	// of the key is the raw transaction hash.
	txKeyPrefix = 't'

	// DefaultCacheSize is the number of decoded transactions kept in
	// memory.
	DefaultCacheSize = 1000
)

// ErrTxNotFound is returned when a transaction is not in the store.
var ErrTxNotFound = errors.New("txstore: transaction not found")

// SupportedEngines returns the database types accepted by Open.
func SupportedEngines() []string {
	return []string{"leveldb", "pebble", "bolt"}
}

// Utxo is an output that no stored transaction spends.
type Utxo struct {
	OutPoint wire.OutPoint
	Value    uint64
	PkScript []byte
}

// Store is a transaction store on top of an engine.Engine.  It is safe for
// concurrent readers; writes are serialized by the engine.
type Store struct {
	db    engine.Engine
	cache lru.KVCache
}

// Open opens, or creates when create is set, a store of type dbType at path.
func Open(dbType, path string, create bool) (*Store, error) {
	var (
		db  engine.Engine
		err error
	)
	switch dbType {
	case "leveldb":
		db, err = leveldb.NewDB(path, create)
	case "pebble":
		db, err = pebbledb.NewDB(path, create, 0, 0)
	case "bolt":
		db, err = boltdb.NewDB(path, create)
	default:
		return nil, fmt.Errorf("txstore: unknown database type %q, "+
			"supported types are %v", dbType, SupportedEngines())
	}
	if err != nil {
		return nil, fmt.Errorf("txstore: open %s database %s: %w",
			dbType, path, err)
	}

	log.Infof("Opened %s transaction store at %s", dbType, path)
	return New(db, DefaultCacheSize), nil
}

// New returns a store backed by db caching up to cacheSize decoded
// transactions.  The store takes ownership of db.
func New(db engine.Engine, cacheSize uint) *Store {
	return &Store{
		db:    db,
		cache: lru.NewKVCache(cacheSize),
	}
}

// txKey returns the database key of the transaction with the passed hash.
func txKey(hash *chainhash.Hash) []byte {
	key := make([]byte, 1+chainhash.HashSize)
	key[0] = txKeyPrefix
	copy(key[1:], hash[:])
	return key
}

// Put stores tx and returns its hash.  Storing a transaction that is already
// present is a no-op.
func (s *Store) Put(tx *wire.MsgTx) (chainhash.Hash, error) {
	raw := tx.Bytes()
	hash := chainhash.DoubleHashH(raw)
	key := txKey(&hash)

	snapshot, err := s.db.Snapshot()
	if err != nil {
		return hash, err
	}
	exists, err := snapshot.Has(key)
	snapshot.Release()
	if err != nil {
		return hash, err
	}
	if exists {
		log.Debugf("Transaction %v already stored", hash)
		return hash, nil
	}

	dbTx, err := s.db.Transaction()
	if err != nil {
		return hash, err
	}
	if err := dbTx.Put(key, raw); err != nil {
		dbTx.Discard()
		return hash, err
	}
	if err := dbTx.Commit(); err != nil {
		return hash, err
	}

	log.Debugf("Stored transaction %v (%d bytes, %d inputs, %d outputs)",
		hash, len(raw), len(tx.TxIn), len(tx.TxOut))
	return hash, nil
}

// Fetch returns the stored transaction with the passed hash.  The returned
// transaction is a copy the caller may modify.
func (s *Store) Fetch(hash *chainhash.Hash) (*wire.MsgTx, error) {
	if cached, ok := s.cache.Lookup(*hash); ok {
		return cached.(*wire.MsgTx).Copy(), nil
	}

	snapshot, err := s.db.Snapshot()
	if err != nil {
		return nil, err
	}
	defer snapshot.Release()

	raw, err := snapshot.Get(txKey(hash))
	if errors.Is(err, engine.ErrNotFound) {
		return nil, fmt.Errorf("%w: %v", ErrTxNotFound, hash)
	}
	if err != nil {
		return nil, err
	}

	tx, err := decodeStored(hash, raw)
	if err != nil {
		return nil, err
	}
	s.cache.Add(*hash, tx)
	return tx.Copy(), nil
}

// decodeStored decodes a stored transaction, reporting which entry was bad.
func decodeStored(hash *chainhash.Hash, raw []byte) (*wire.MsgTx, error) {
	tx, err := wire.Decode(raw)
	if err != nil {
		return nil, fmt.Errorf("txstore: stored transaction %v: %w",
			hash, err)
	}
	return tx, nil
}

// ForEach calls fn for every stored transaction in ascending hash byte
// order.  Iteration stops at the first error returned by fn.
func (s *Store) ForEach(fn func(hash chainhash.Hash, tx *wire.MsgTx) error) error {
	snapshot, err := s.db.Snapshot()
	if err != nil {
		return err
	}
	defer snapshot.Release()

	iter := snapshot.NewIterator(engine.BytesPrefix([]byte{txKeyPrefix}))
	defer iter.Release()

	for iter.Next() {
		var hash chainhash.Hash
		key := iter.Key()
		if len(key) != 1+chainhash.HashSize {
			return fmt.Errorf("txstore: malformed key %x", key)
		}
		copy(hash[:], key[1:])

		tx, err := decodeStored(&hash, iter.Value())
		if err != nil {
			return err
		}
		if err := fn(hash, tx); err != nil {
			return err
		}
	}
	return iter.Error()
}

// Unspent returns the outputs of stored transactions that are not spent by
// any stored transaction, ordered by transaction hash bytes and then by
// output index.
func (s *Store) Unspent() ([]Utxo, error) {
	spent := make(map[wire.OutPoint]struct{})
	var outputs []Utxo
	err := s.ForEach(func(hash chainhash.Hash, tx *wire.MsgTx) error {
		for _, txIn := range tx.TxIn {
			spent[txIn.PreviousOutPoint] = struct{}{}
		}
		for i, txOut := range tx.TxOut {
			outputs = append(outputs, Utxo{
				OutPoint: wire.OutPoint{Hash: hash, Index: uint32(i)},
				Value:    txOut.Value,
				PkScript: txOut.PkScript,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	unspent := outputs[:0]
	for _, utxo := range outputs {
		if _, ok := spent[utxo.OutPoint]; !ok {
			unspent = append(unspent, utxo)
		}
	}
	log.Tracef("%d of %d stored outputs unspent", len(unspent),
		len(outputs))
	return unspent, nil
}

// Balance returns the sum of the unspent output values.  A sum that does not
// fit in a uint64 fails with wire.ErrInvalidAmount.
func (s *Store) Balance() (uint64, error) {
	unspent, err := s.Unspent()
	if err != nil {
		return 0, err
	}
	return SumValues(unspent)
}

// SumValues returns the total value of utxos.  Overflow fails with
// wire.ErrInvalidAmount.
func SumValues(utxos []Utxo) (uint64, error) {
	var total uint64
	for _, utxo := range utxos {
		var carry uint64
		total, carry = bits.Add64(total, utxo.Value, 0)
		if carry != 0 {
			return 0, wire.Error{
				ErrorCode:   wire.ErrInvalidAmount,
				Func:        "SumValues",
				Description: "total value of outputs overflows",
			}
		}
	}
	return total, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
