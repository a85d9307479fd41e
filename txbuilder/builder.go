// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package txbuilder provides a fluent builder for legacy transactions.
package txbuilder

import (
	"github.com/btcsuite/legacytx/wire"
)

// Builder accumulates the parts of a transaction.  The zero value is not
// ready for use; create one with New.
type Builder struct {
	tx wire.MsgTx
}

// New returns a builder for a transaction with version wire.TxVersion, a lock
// time of zero and no inputs or outputs.
func New() *Builder {
	return &Builder{tx: wire.MsgTx{Version: wire.TxVersion}}
}

// WithVersion sets the transaction version.
func (b *Builder) WithVersion(version int32) *Builder {
	b.tx.Version = version
	return b
}

// WithLockTime sets the transaction lock time.
func (b *Builder) WithLockTime(lockTime uint32) *Builder {
	b.tx.LockTime = lockTime
	return b
}

// AddInput appends an input.  The input is copied when Finish is called, so
// later changes to it by the caller are not reflected in built transactions.
func (b *Builder) AddInput(txIn *wire.TxIn) *Builder {
	b.tx.AddTxIn(txIn)
	return b
}

// AddOutput appends an output.
func (b *Builder) AddOutput(txOut *wire.TxOut) *Builder {
	b.tx.AddTxOut(txOut)
	return b
}

// Spend appends an input spending the passed outpoint with the default
// sequence number.
func (b *Builder) Spend(op wire.OutPoint, sigScript []byte) *Builder {
	return b.AddInput(wire.NewTxIn(&op, sigScript))
}

// Pay appends an output paying value to pkScript.
func (b *Builder) Pay(value uint64, pkScript []byte) *Builder {
	return b.AddOutput(wire.NewTxOut(value, pkScript))
}

// NumInputs returns the number of inputs added so far.
func (b *Builder) NumInputs() int {
	return len(b.tx.TxIn)
}

// NumOutputs returns the number of outputs added so far.
func (b *Builder) NumOutputs() int {
	return len(b.tx.TxOut)
}

// Finish returns a deep copy of the accumulated transaction.  The builder is
// left intact and may keep being used.
func (b *Builder) Finish() *wire.MsgTx {
	return b.tx.Copy()
}
