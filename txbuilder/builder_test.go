// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txbuilder

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/legacytx/wire"
	"github.com/davecgh/go-spew/spew"
)

// TestBuilderDefaults ensures an untouched builder produces the empty version
// 1 transaction.
func TestBuilderDefaults(t *testing.T) {
	tx := New().Finish()
	want := &wire.MsgTx{Version: 1}
	if !reflect.DeepEqual(tx, want) {
		t.Fatalf("Finish\n got: %s want: %s", spew.Sdump(tx),
			spew.Sdump(want))
	}

	wantBytes := []byte{
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
	if got := tx.Bytes(); !bytes.Equal(got, wantBytes) {
		t.Fatalf("Bytes\n got: %x want: %x", got, wantBytes)
	}
}

// TestBuilderRoundTrip ensures built transactions survive an encode and
// decode cycle.
func TestBuilderRoundTrip(t *testing.T) {
	hash := chainhash.DoubleHashH([]byte("funding"))

	tests := []struct {
		name string
		b    *Builder
	}{
		{"empty", New()},
		{"negative version", New().WithVersion(-7)},
		{"lock time only", New().WithLockTime(0xffffffff)},
		{
			"one in one out",
			New().Spend(wire.OutPoint{Hash: hash, Index: 3},
				[]byte{0x51}).Pay(1000, []byte{0x76, 0xa9}),
		},
		{
			"explicit inputs",
			New().WithVersion(2).
				AddInput(&wire.TxIn{
					PreviousOutPoint: wire.OutPoint{Hash: hash},
					Sequence:         0xfffffffd,
				}).
				AddInput(&wire.TxIn{
					PreviousOutPoint: wire.OutPoint{Hash: hash, Index: 1},
					SignatureScript:  bytes.Repeat([]byte{1}, 300),
				}).
				AddOutput(&wire.TxOut{Value: ^uint64(0)}).
				WithLockTime(500000),
		},
	}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		tx := test.b.Finish()
		got, err := wire.Decode(tx.Bytes())
		if err != nil {
			t.Errorf("%s: Decode: %v", test.name, err)
			continue
		}
		if !reflect.DeepEqual(got, tx) {
			t.Errorf("%s: round trip\n got: %s want: %s", test.name,
				spew.Sdump(got), spew.Sdump(tx))
		}
	}
}

// TestBuilderReuse ensures Finish hands out independent transactions and the
// builder can keep accumulating afterwards.
func TestBuilderReuse(t *testing.T) {
	script := []byte{0xac}
	b := New().Pay(50, script)

	first := b.Finish()
	script[0] = 0x00
	first.TxOut[0].Value = 1

	second := b.Pay(60, []byte{0x6a}).Finish()
	if len(second.TxOut) != 2 || b.NumOutputs() != 2 {
		t.Fatalf("expected 2 outputs, got %d", len(second.TxOut))
	}
	if second.TxOut[0].Value != 50 {
		t.Fatalf("builder state modified through a finished tx: %d",
			second.TxOut[0].Value)
	}
	if len(first.TxOut) != 1 {
		t.Fatalf("finished tx modified by later builder calls")
	}
	if b.NumInputs() != 0 {
		t.Fatalf("unexpected inputs %d", b.NumInputs())
	}
}
