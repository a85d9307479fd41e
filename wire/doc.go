// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package wire implements the legacy (pre-segwit) transaction wire format.

A transaction is encoded as

	version      int32, little endian
	input count  varint
	inputs       previous hash (32 bytes), previous index (uint32),
	             script length (varint), script, sequence (uint32)
	output count varint
	outputs      value (uint64), script length (varint), script
	lock time    uint32, little endian

# Variable length integers

Counts and lengths are encoded as variable length integers of 1, 3, 5 or 9
bytes.  A first byte below 0xfd is the value itself, while 0xfd, 0xfe and
0xff are followed by a 2, 4 or 8 byte little endian value respectively.
Decoding accepts any of the forms, but encoding always picks the shortest
one able to hold the value, so re-encoding a decoded transaction that used a
longer form yields fewer bytes than were read.

# Decoding

The reader functions in this package operate on a byte slice and an offset
rather than an io.Reader.  Each one reports how many bytes it consumed and
the caller advances its own cursor, which only ever moves forward.

Decode requires the buffer to hold exactly one transaction and rejects any
trailing bytes.  DecodePrefix decodes a transaction from the start of a
larger buffer and reports its length instead.  Neither returns a partially
decoded transaction.

Declared input and output counts are checked against the bytes remaining
before any storage is allocated, so a few malicious bytes can not request
huge amounts of memory.

# Errors

Failures are reported as an Error carrying an ErrorCode.  Use errors.Is
with the ErrorCode constants to test for a kind of failure:

	tx, err := wire.Decode(buf)
	if errors.Is(err, wire.ErrTruncatedBuffer) {
		// The buffer ended early.
	}

Every decode failure matches ErrInvalidTransaction.  Failures caused by a
short buffer additionally match ErrTruncatedBuffer.
*/
package wire
