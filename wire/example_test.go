// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire_test

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/legacytx/wire"
)

// This example demonstrates decoding the smallest possible transaction and
// encoding it back to the same bytes.
func ExampleDecode() {
	raw, _ := hex.DecodeString("01000000000000000000")

	tx, err := wire.Decode(raw)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("Version:", tx.Version)
	fmt.Println("Inputs:", len(tx.TxIn), "Outputs:", len(tx.TxOut))
	fmt.Println("Lock time:", tx.LockTime)
	fmt.Println("Encoded:", hex.EncodeToString(tx.Bytes()))

	// Output:
	// Version: 1
	// Inputs: 0 Outputs: 0
	// Lock time: 0
	// Encoded: 01000000000000000000
}

// This example demonstrates how a short buffer is reported.
func ExampleDecode_truncated() {
	raw, _ := hex.DecodeString("010000000000000000")

	_, err := wire.Decode(raw)
	fmt.Println(errors.Is(err, wire.ErrInvalidTransaction))
	fmt.Println(errors.Is(err, wire.ErrTruncatedBuffer))

	// Output:
	// true
	// true
}

// This example demonstrates the minimal and non-minimal varint forms.
func ExampleReadVarInt() {
	fmt.Printf("%x\n", wire.EncodeVarInt(0xfc))
	fmt.Printf("%x\n", wire.EncodeVarInt(0xfd))

	val, n, _ := wire.ReadVarInt([]byte{0xff, 5, 0, 0, 0, 0, 0, 0, 0}, 0)
	fmt.Println(val, n)

	// Output:
	// fc
	// fdfd00
	// 5 9
}
