// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
	"io"
	"strconv"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// TxVersion is the default transaction version used by builders.
	TxVersion int32 = 1

	// MaxTxInSequenceNum is the maximum sequence number the sequence field
	// of a transaction input can be.
	MaxTxInSequenceNum uint32 = 0xffffffff

	// MaxPrevOutIndex is the maximum index the index field of a previous
	// outpoint can be.
	MaxPrevOutIndex uint32 = 0xffffffff
)

const (
	// minTxInPayload is the minimum payload size for a transaction input.
	// PreviousOutPoint.Hash + PreviousOutPoint.Index 4 bytes + Varint for
	// SignatureScript length 1 byte + Sequence 4 bytes.
	minTxInPayload = 9 + chainhash.HashSize

	// minTxOutPayload is the minimum payload size for a transaction output.
	// Value 8 bytes + Varint for PkScript length 1 byte.
	minTxOutPayload = 9

	// MinTxPayload is the minimum size of an encoded transaction.
	// Version 4 bytes + Varint number of transaction inputs 1 byte + Varint
	// number of transaction outputs 1 byte + LockTime 4 bytes.
	MinTxPayload = 4 + 1 + 1 + 4
)

// OutPoint defines a data type that is used to track previous transaction
// outputs.
type OutPoint struct {
	Hash  chainhash.Hash
	Index uint32
}

// NewOutPoint returns a new transaction outpoint point with the provided hash
// and index.
func NewOutPoint(hash *chainhash.Hash, index uint32) *OutPoint {
	return &OutPoint{
		Hash:  *hash,
		Index: index,
	}
}

// String returns the OutPoint in the human-readable form "hash:index".
func (o OutPoint) String() string {
	// Allocate enough for hash string, colon, and 10 digits, which will
	// fit any uint32.
	buf := make([]byte, 2*chainhash.HashSize+1, 2*chainhash.HashSize+1+10)
	copy(buf, o.Hash.String())
	buf[2*chainhash.HashSize] = ':'
	buf = strconv.AppendUint(buf, uint64(o.Index), 10)
	return string(buf)
}

// TxIn defines a transaction input.
type TxIn struct {
	PreviousOutPoint OutPoint
	SignatureScript  []byte
	Sequence         uint32
}

// SerializeSize returns the number of bytes it would take to serialize the
// the transaction input.
func (t *TxIn) SerializeSize() int {
	// Outpoint Hash 32 bytes + Outpoint Index 4 bytes + Sequence 4 bytes +
	// serialized varint size for the length of SignatureScript +
	// SignatureScript bytes.
	return 40 + VarIntSerializeSize(uint64(len(t.SignatureScript))) +
		len(t.SignatureScript)
}

// NewTxIn returns a new transaction input with the provided previous outpoint
// point and signature script with a default sequence of MaxTxInSequenceNum.
func NewTxIn(prevOut *OutPoint, signatureScript []byte) *TxIn {
	return &TxIn{
		PreviousOutPoint: *prevOut,
		SignatureScript:  signatureScript,
		Sequence:         MaxTxInSequenceNum,
	}
}

// TxOut defines a transaction output.  Value is denominated in the smallest
// currency unit and is not range checked here.
type TxOut struct {
	Value    uint64
	PkScript []byte
}

// SerializeSize returns the number of bytes it would take to serialize the
// the transaction output.
func (t *TxOut) SerializeSize() int {
	// Value 8 bytes + serialized varint size for the length of PkScript +
	// PkScript bytes.
	return 8 + VarIntSerializeSize(uint64(len(t.PkScript))) + len(t.PkScript)
}

// NewTxOut returns a new transaction output with the provided transaction
// value and public key script.
func NewTxOut(value uint64, pkScript []byte) *TxOut {
	return &TxOut{
		Value:    value,
		PkScript: pkScript,
	}
}

// MsgTx represents a legacy (pre-segwit) transaction.
//
// Use the AddTxIn and AddTxOut functions to build up the list of transaction
// inputs and outputs, or the txbuilder package.  A decoded transaction is
// not modified by this package after it is returned.
type MsgTx struct {
	Version  int32
	TxIn     []*TxIn
	TxOut    []*TxOut
	LockTime uint32
}

// AddTxIn adds a transaction input to the message.
func (msg *MsgTx) AddTxIn(ti *TxIn) {
	msg.TxIn = append(msg.TxIn, ti)
}

// AddTxOut adds a transaction output to the message.
func (msg *MsgTx) AddTxOut(to *TxOut) {
	msg.TxOut = append(msg.TxOut, to)
}

// TxHash generates the hash for the transaction, the double sha256 of its
// encoding.
func (msg *MsgTx) TxHash() chainhash.Hash {
	return chainhash.DoubleHashH(msg.Bytes())
}

// Copy creates a deep copy of a transaction so that the original does not get
// modified when the copy is manipulated.  Empty lists and scripts are copied
// as nil, which is also how Decode returns them.
func (msg *MsgTx) Copy() *MsgTx {
	// Create new tx and start by copying primitive values and making space
	// for the transaction inputs and outputs.
	newTx := MsgTx{
		Version:  msg.Version,
		LockTime: msg.LockTime,
	}
	if len(msg.TxIn) > 0 {
		newTx.TxIn = make([]*TxIn, 0, len(msg.TxIn))
	}
	if len(msg.TxOut) > 0 {
		newTx.TxOut = make([]*TxOut, 0, len(msg.TxOut))
	}

	// Deep copy the old TxIn data.
	for _, oldTxIn := range msg.TxIn {
		// Deep copy the old signature script.
		var newScript []byte
		if len(oldTxIn.SignatureScript) > 0 {
			newScript = make([]byte, len(oldTxIn.SignatureScript))
			copy(newScript, oldTxIn.SignatureScript)
		}

		// Create new txIn with the deep copied data.  The outpoint is a
		// value type so the assignment copies it.
		newTxIn := TxIn{
			PreviousOutPoint: oldTxIn.PreviousOutPoint,
			SignatureScript:  newScript,
			Sequence:         oldTxIn.Sequence,
		}
		newTx.TxIn = append(newTx.TxIn, &newTxIn)
	}

	// Deep copy the old TxOut data.
	for _, oldTxOut := range msg.TxOut {
		var newScript []byte
		if len(oldTxOut.PkScript) > 0 {
			newScript = make([]byte, len(oldTxOut.PkScript))
			copy(newScript, oldTxOut.PkScript)
		}

		newTxOut := TxOut{
			Value:    oldTxOut.Value,
			PkScript: newScript,
		}
		newTx.TxOut = append(newTx.TxOut, &newTxOut)
	}

	return &newTx
}

// Decode decodes buf into a new transaction.  The whole buffer must be
// consumed; trailing bytes are rejected with ErrInvalidTransaction.
//
// Any failure is reported as an Error with code ErrInvalidTransaction.  When
// the failure was caused by running out of bytes the error also matches
// ErrTruncatedBuffer.  No partial transaction is ever returned.
func Decode(buf []byte) (*MsgTx, error) {
	msg, n, err := decode("Decode", buf)
	if err != nil {
		return nil, err
	}
	if n != len(buf) {
		str := fmt.Sprintf("%d trailing bytes after transaction of "+
			"%d bytes", len(buf)-n, n)
		return nil, txError(ErrInvalidTransaction, "Decode", str)
	}
	return msg, nil
}

// DecodePrefix decodes a transaction from the start of buf, which may be
// embedded in a larger stream, and returns it along with the number of bytes
// it occupied.  Bytes after the transaction are left untouched.
func DecodePrefix(buf []byte) (*MsgTx, int, error) {
	return decode("DecodePrefix", buf)
}

// decode reads one transaction from the start of buf.  The cursor only ever
// advances.
func decode(f string, buf []byte) (*MsgTx, int, error) {
	var offset int

	// invalid converts a primitive read failure into a transaction error
	// that still matches the underlying cause.
	invalid := func(err error) error {
		return wrapError(ErrInvalidTransaction, f, err)
	}

	version, err := ReadInt32LE(buf, offset)
	if err != nil {
		return nil, 0, invalid(err)
	}
	offset += 4

	count, n, err := ReadVarInt(buf, offset)
	if err != nil {
		return nil, 0, invalid(err)
	}
	offset += n

	// Prevent more inputs than could possibly fit into the remaining
	// bytes.  It would be possible to cause memory exhaustion without a
	// sane upper bound on this count.
	if count > uint64(len(buf)-offset)/minTxInPayload {
		str := fmt.Sprintf("too many inputs to fit into the remaining "+
			"%d bytes [count %d]", len(buf)-offset, count)
		return nil, 0, txError(ErrInvalidTransaction, f, str)
	}

	msg := MsgTx{Version: version}
	if count > 0 {
		txIns := make([]TxIn, count)
		msg.TxIn = make([]*TxIn, count)
		for i := range txIns {
			ti := &txIns[i]
			n, err := readTxIn(buf, offset, ti)
			if err != nil {
				return nil, 0, invalid(err)
			}
			offset += n
			msg.TxIn[i] = ti
		}
	}

	count, n, err = ReadVarInt(buf, offset)
	if err != nil {
		return nil, 0, invalid(err)
	}
	offset += n

	// Same bound for outputs.
	if count > uint64(len(buf)-offset)/minTxOutPayload {
		str := fmt.Sprintf("too many outputs to fit into the remaining "+
			"%d bytes [count %d]", len(buf)-offset, count)
		return nil, 0, txError(ErrInvalidTransaction, f, str)
	}

	if count > 0 {
		txOuts := make([]TxOut, count)
		msg.TxOut = make([]*TxOut, count)
		for i := range txOuts {
			to := &txOuts[i]
			n, err := readTxOut(buf, offset, to)
			if err != nil {
				return nil, 0, invalid(err)
			}
			offset += n
			msg.TxOut[i] = to
		}
	}

	msg.LockTime, err = ReadUint32LE(buf, offset)
	if err != nil {
		return nil, 0, invalid(err)
	}
	offset += 4

	return &msg, offset, nil
}

// readScript reads a varint length followed by that many script bytes from
// buf at offset.  It returns the script and the total bytes consumed.
func readScript(buf []byte, offset int) ([]byte, int, error) {
	count, n, err := ReadVarInt(buf, offset)
	if err != nil {
		return nil, 0, err
	}
	b, err := ReadBytes(buf, offset+n, count)
	if err != nil {
		return nil, 0, err
	}
	return b, n + len(b), nil
}

// readOutPoint reads the next sequence of bytes from buf as an OutPoint.
func readOutPoint(buf []byte, offset int, op *OutPoint) (int, error) {
	if err := checkRemaining("readOutPoint", buf, offset,
		chainhash.HashSize); err != nil {

		return 0, err
	}
	copy(op.Hash[:], buf[offset:offset+chainhash.HashSize])

	index, err := ReadUint32LE(buf, offset+chainhash.HashSize)
	if err != nil {
		return 0, err
	}
	op.Index = index
	return chainhash.HashSize + 4, nil
}

// readTxIn reads the next sequence of bytes from buf as a transaction input
// (TxIn) and returns the number of bytes consumed.
func readTxIn(buf []byte, offset int, ti *TxIn) (int, error) {
	start := offset

	n, err := readOutPoint(buf, offset, &ti.PreviousOutPoint)
	if err != nil {
		return 0, err
	}
	offset += n

	ti.SignatureScript, n, err = readScript(buf, offset)
	if err != nil {
		return 0, err
	}
	offset += n

	ti.Sequence, err = ReadUint32LE(buf, offset)
	if err != nil {
		return 0, err
	}
	offset += 4

	return offset - start, nil
}

// readTxOut reads the next sequence of bytes from buf as a transaction output
// (TxOut) and returns the number of bytes consumed.
func readTxOut(buf []byte, offset int, to *TxOut) (int, error) {
	value, err := ReadUint64LE(buf, offset)
	if err != nil {
		return 0, err
	}
	to.Value = value

	script, n, err := readScript(buf, offset+8)
	if err != nil {
		return 0, err
	}
	to.PkScript = script

	return 8 + n, nil
}

// AppendTo appends the encoding of the transaction to dst and returns the
// extended slice.
func (msg *MsgTx) AppendTo(dst []byte) []byte {
	dst = AppendInt32LE(dst, msg.Version)

	dst = AppendVarInt(dst, uint64(len(msg.TxIn)))
	for _, ti := range msg.TxIn {
		dst = appendTxIn(dst, ti)
	}

	dst = AppendVarInt(dst, uint64(len(msg.TxOut)))
	for _, to := range msg.TxOut {
		dst = appendTxOut(dst, to)
	}

	return AppendUint32LE(dst, msg.LockTime)
}

// Bytes returns the encoding of the transaction.  Encoding never fails.
func (msg *MsgTx) Bytes() []byte {
	return msg.AppendTo(make([]byte, 0, msg.SerializeSize()))
}

// Serialize encodes the transaction to w.  The only possible error is the
// one returned by w.
func (msg *MsgTx) Serialize(w io.Writer) error {
	_, err := w.Write(msg.Bytes())
	return err
}

// Deserialize decodes a transaction from r into the receiver.  All of r is
// consumed and must hold exactly one transaction.  The receiver is only
// modified when decoding succeeds.
func (msg *MsgTx) Deserialize(r io.Reader) error {
	buf, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	tx, err := Decode(buf)
	if err != nil {
		return err
	}
	*msg = *tx
	return nil
}

// appendTxIn appends the encoding of a transaction input (TxIn) to dst.
func appendTxIn(dst []byte, ti *TxIn) []byte {
	dst = append(dst, ti.PreviousOutPoint.Hash[:]...)
	dst = AppendUint32LE(dst, ti.PreviousOutPoint.Index)
	dst = AppendVarInt(dst, uint64(len(ti.SignatureScript)))
	dst = append(dst, ti.SignatureScript...)
	return AppendUint32LE(dst, ti.Sequence)
}

// appendTxOut appends the encoding of a transaction output (TxOut) to dst.
func appendTxOut(dst []byte, to *TxOut) []byte {
	dst = AppendUint64LE(dst, to.Value)
	dst = AppendVarInt(dst, uint64(len(to.PkScript)))
	return append(dst, to.PkScript...)
}

// SerializeSize returns the number of bytes it would take to serialize the
// the transaction.
func (msg *MsgTx) SerializeSize() int {
	// Version 4 bytes + LockTime 4 bytes + Serialized varint size for the
	// number of transaction inputs and outputs.
	n := 8 + VarIntSerializeSize(uint64(len(msg.TxIn))) +
		VarIntSerializeSize(uint64(len(msg.TxOut)))

	for _, txIn := range msg.TxIn {
		n += txIn.SerializeSize()
	}

	for _, txOut := range msg.TxOut {
		n += txOut.SerializeSize()
	}

	return n
}

// NewMsgTx returns a new transaction with the passed version, no inputs or
// outputs and a lock time of zero to indicate the transaction is valid
// immediately.
func NewMsgTx(version int32) *MsgTx {
	return &MsgTx{Version: version}
}
