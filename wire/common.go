// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"
	"math"
)

const (
	// MaxVarIntPayload is the maximum payload size for a variable length
	// integer.
	MaxVarIntPayload = 9

	// Varint discriminants selecting the 2, 4 and 8 byte forms.
	varIntDiscriminant16 = 0xfd
	varIntDiscriminant32 = 0xfe
	varIntDiscriminant64 = 0xff
)

// littleEndian is a convenience variable since binary.LittleEndian is quite
// long.
var littleEndian = binary.LittleEndian

// checkRemaining returns an ErrTruncatedBuffer error when fewer than n bytes
// are available in buf starting at offset.
func checkRemaining(f string, buf []byte, offset, n int) error {
	if offset < 0 || offset > len(buf) || len(buf)-offset < n {
		remaining := len(buf) - offset
		if offset < 0 || remaining < 0 {
			remaining = 0
		}
		str := fmt.Sprintf("need %d bytes at offset %d, have %d", n,
			offset, remaining)
		return txError(ErrTruncatedBuffer, f, str)
	}
	return nil
}

// ReadUint32LE reads a little endian uint32 from buf at offset.  The caller
// advances its cursor by 4 on success.
func ReadUint32LE(buf []byte, offset int) (uint32, error) {
	if err := checkRemaining("ReadUint32LE", buf, offset, 4); err != nil {
		return 0, err
	}
	return littleEndian.Uint32(buf[offset:]), nil
}

// ReadInt32LE reads a little endian int32 from buf at offset.  The caller
// advances its cursor by 4 on success.
func ReadInt32LE(buf []byte, offset int) (int32, error) {
	if err := checkRemaining("ReadInt32LE", buf, offset, 4); err != nil {
		return 0, err
	}
	return int32(littleEndian.Uint32(buf[offset:])), nil
}

// ReadUint64LE reads a little endian uint64 from buf at offset.  The caller
// advances its cursor by 8 on success.
func ReadUint64LE(buf []byte, offset int) (uint64, error) {
	if err := checkRemaining("ReadUint64LE", buf, offset, 8); err != nil {
		return 0, err
	}
	return littleEndian.Uint64(buf[offset:]), nil
}

// ReadBytes returns a copy of the n bytes in buf starting at offset.  The
// returned slice never aliases buf and is nil when n is zero.
func ReadBytes(buf []byte, offset int, n uint64) ([]byte, error) {
	if n > uint64(len(buf)) {
		str := fmt.Sprintf("need %d bytes at offset %d, have %d", n,
			offset, max(len(buf)-offset, 0))
		return nil, txError(ErrTruncatedBuffer, "ReadBytes", str)
	}
	if err := checkRemaining("ReadBytes", buf, offset, int(n)); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	b := make([]byte, n)
	copy(b, buf[offset:])
	return b, nil
}

// AppendUint32LE appends the little endian encoding of val to dst.
func AppendUint32LE(dst []byte, val uint32) []byte {
	return littleEndian.AppendUint32(dst, val)
}

// AppendInt32LE appends the little endian encoding of val to dst.
func AppendInt32LE(dst []byte, val int32) []byte {
	return littleEndian.AppendUint32(dst, uint32(val))
}

// AppendUint64LE appends the little endian encoding of val to dst.
func AppendUint64LE(dst []byte, val uint64) []byte {
	return littleEndian.AppendUint64(dst, val)
}

// ReadVarInt reads a variable length integer from buf at offset and returns
// it as a uint64 along with the number of bytes it occupied.
//
// Any of the four forms is accepted regardless of whether the value would
// have fit in a shorter one.
func ReadVarInt(buf []byte, offset int) (uint64, int, error) {
	const f = "ReadVarInt"
	if err := checkRemaining(f, buf, offset, 1); err != nil {
		return 0, 0, err
	}

	discriminant := buf[offset]
	switch discriminant {
	case varIntDiscriminant64:
		if err := checkRemaining(f, buf, offset+1, 8); err != nil {
			return 0, 0, err
		}
		return littleEndian.Uint64(buf[offset+1:]), 9, nil

	case varIntDiscriminant32:
		if err := checkRemaining(f, buf, offset+1, 4); err != nil {
			return 0, 0, err
		}
		return uint64(littleEndian.Uint32(buf[offset+1:])), 5, nil

	case varIntDiscriminant16:
		if err := checkRemaining(f, buf, offset+1, 2); err != nil {
			return 0, 0, err
		}
		return uint64(littleEndian.Uint16(buf[offset+1:])), 3, nil

	default:
		return uint64(discriminant), 1, nil
	}
}

// AppendVarInt appends val to dst using the shortest variable length
// integer form able to represent it.
func AppendVarInt(dst []byte, val uint64) []byte {
	switch {
	case val < varIntDiscriminant16:
		return append(dst, uint8(val))

	case val <= math.MaxUint16:
		dst = append(dst, varIntDiscriminant16)
		return littleEndian.AppendUint16(dst, uint16(val))

	case val <= math.MaxUint32:
		dst = append(dst, varIntDiscriminant32)
		return littleEndian.AppendUint32(dst, uint32(val))

	default:
		dst = append(dst, varIntDiscriminant64)
		return littleEndian.AppendUint64(dst, val)
	}
}

// EncodeVarInt returns the minimal variable length integer encoding of val.
func EncodeVarInt(val uint64) []byte {
	return AppendVarInt(make([]byte, 0, VarIntSerializeSize(val)), val)
}

// VarIntSerializeSize returns the number of bytes it would take to serialize
// val as a variable length integer.
func VarIntSerializeSize(val uint64) int {
	// The value is small enough to be represented by itself, so it's
	// just 1 byte.
	if val < varIntDiscriminant16 {
		return 1
	}

	// Discriminant 1 byte plus 2 bytes for the uint16.
	if val <= math.MaxUint16 {
		return 3
	}

	// Discriminant 1 byte plus 4 bytes for the uint32.
	if val <= math.MaxUint32 {
		return 5
	}

	// Discriminant 1 byte plus 8 bytes for the uint64.
	return 9
}
