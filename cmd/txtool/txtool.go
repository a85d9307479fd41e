// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"math"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/legacytx/command"
	"github.com/btcsuite/legacytx/internal/log"
	"github.com/btcsuite/legacytx/txbuilder"
	"github.com/btcsuite/legacytx/txstore"
	"github.com/btcsuite/legacytx/wire"
	"github.com/davecgh/go-spew/spew"
)

// runner executes parsed commands.  The store is nil for commands that do
// not need one.
type runner struct {
	cfg   *config
	out   io.Writer
	store *txstore.Store
}

// needsStore returns whether cmd reads or writes the transaction store.
func needsStore(cmd command.Command) bool {
	_, isDecode := cmd.(command.Decode)
	return !isDecode
}

// run dispatches cmd to its handler.
func (r *runner) run(cmd command.Command) error {
	switch c := cmd.(type) {
	case command.Balance:
		return r.balance()
	case command.Send:
		return r.send(c.Amount, c.Address)
	case command.Decode:
		return r.decode(c.Raw)
	case command.Import:
		return r.importTx(c.Raw)
	}
	return fmt.Errorf("unhandled command %q", cmd.Name())
}

// balance prints the total value of the unspent outputs in the store.
func (r *runner) balance() error {
	total, err := r.store.Balance()
	if err != nil {
		return err
	}
	log.TxtlLog.Debugf("Balance is %s", formatValue(total))
	fmt.Fprintln(r.out, total)
	return nil
}

// send builds an unsigned transaction paying amount to address from the
// unspent outputs in the store and prints it hex encoded.
func (r *runner) send(amount uint64, address string) error {
	if amount == 0 {
		return wire.Error{
			ErrorCode:   wire.ErrInvalidAmount,
			Func:        "send",
			Description: "amount must be greater than zero",
		}
	}

	pkScript, err := payToAddrScript(address, r.cfg.params)
	if err != nil {
		return err
	}

	unspent, err := r.store.Unspent()
	if err != nil {
		return err
	}
	selected, change, ok := selectInputs(unspent, amount)
	if !ok {
		// The outputs sum to less than amount, so this can not overflow.
		total, _ := txstore.SumValues(unspent)
		str := fmt.Sprintf("insufficient funds: need %s, have %s",
			formatValue(amount), formatValue(total))
		return wire.Error{
			ErrorCode:   wire.ErrInvalidAmount,
			Func:        "send",
			Description: str,
		}
	}

	b := txbuilder.New()
	for _, utxo := range selected {
		b.Spend(utxo.OutPoint, nil)
	}
	b.Pay(amount, pkScript)

	if change > 0 {
		if r.cfg.ChangeAddress == "" {
			str := fmt.Sprintf("a change output of %s requires "+
				"--changeaddress", formatValue(change))
			return wire.Error{
				ErrorCode:   wire.ErrInvalidScript,
				Func:        "send",
				Description: str,
			}
		}
		changeScript, err := payToAddrScript(r.cfg.ChangeAddress,
			r.cfg.params)
		if err != nil {
			return err
		}
		b.Pay(change, changeScript)
	}

	tx := b.Finish()
	log.TxtlLog.Infof("Built transaction %v spending %d %s", tx.TxHash(),
		b.NumInputs(), log.PickNoun(uint64(b.NumInputs()), "output",
			"outputs"))
	fmt.Fprintln(r.out, hex.EncodeToString(tx.Bytes()))
	return nil
}

// selectInputs picks unspent outputs in order until they cover amount and
// returns them along with the change left over.  ok is false when all of the
// outputs together do not cover amount.
func selectInputs(unspent []txstore.Utxo, amount uint64) (selected []txstore.Utxo, change uint64, ok bool) {
	remaining := amount
	for i, utxo := range unspent {
		if utxo.Value >= remaining {
			return unspent[:i+1], utxo.Value - remaining, true
		}
		remaining -= utxo.Value
	}
	return unspent, 0, false
}

// payToAddrScript returns the output script paying to address on the network
// described by params.
func payToAddrScript(address string, params *chaincfg.Params) ([]byte, error) {
	addr, err := btcutil.DecodeAddress(address, params)
	if err != nil {
		return nil, wire.Error{
			ErrorCode:   wire.ErrInvalidScript,
			Func:        "payToAddrScript",
			Description: fmt.Sprintf("invalid address %q: %v", address, err),
			Err:         err,
		}
	}
	if !addr.IsForNet(params) {
		return nil, wire.Error{
			ErrorCode: wire.ErrInvalidScript,
			Func:      "payToAddrScript",
			Description: fmt.Sprintf("address %q is not for %s", address,
				params.Name),
		}
	}
	return txscript.PayToAddrScript(addr)
}

// checkSize rejects raw transactions larger than the configured maximum
// before they are decoded.
func (r *runner) checkSize(raw []byte) error {
	if len(raw) > r.cfg.MaxTxSize {
		str := fmt.Sprintf("transaction of %d bytes exceeds the "+
			"maximum of %d bytes", len(raw), r.cfg.MaxTxSize)
		return wire.Error{
			ErrorCode:   wire.ErrInvalidTransaction,
			Func:        "checkSize",
			Description: str,
		}
	}
	return nil
}

// decode prints a raw transaction.
func (r *runner) decode(raw []byte) error {
	if err := r.checkSize(raw); err != nil {
		return err
	}
	tx, err := wire.Decode(raw)
	if err != nil {
		return err
	}

	if r.cfg.Dump {
		spew.Fdump(r.out, tx)
		return nil
	}

	fmt.Fprintf(r.out, "txid:     %v\n", tx.TxHash())
	fmt.Fprintf(r.out, "version:  %d\n", tx.Version)
	fmt.Fprintf(r.out, "size:     %d\n", len(raw))
	for i, txIn := range tx.TxIn {
		fmt.Fprintf(r.out, "input %d:  %v sequence %#08x\n", i,
			txIn.PreviousOutPoint, txIn.Sequence)
		fmt.Fprintf(r.out, "  script: %s\n", disasm(txIn.SignatureScript))
	}
	for i, txOut := range tx.TxOut {
		fmt.Fprintf(r.out, "output %d: %s\n", i, formatValue(txOut.Value))
		fmt.Fprintf(r.out, "  script: %s\n", disasm(txOut.PkScript))
	}
	fmt.Fprintf(r.out, "locktime: %d\n", tx.LockTime)
	return nil
}

// importTx decodes a raw transaction and adds it to the store.
func (r *runner) importTx(raw []byte) error {
	if err := r.checkSize(raw); err != nil {
		return err
	}
	tx, err := wire.Decode(raw)
	if err != nil {
		return err
	}
	hash, err := r.store.Put(tx)
	if err != nil {
		return err
	}

	log.TxtlLog.Infof("Imported transaction %v with %d %s and %d %s", hash,
		len(tx.TxIn), log.PickNoun(uint64(len(tx.TxIn)), "input", "inputs"),
		len(tx.TxOut), log.PickNoun(uint64(len(tx.TxOut)), "output",
			"outputs"))
	fmt.Fprintln(r.out, hash)
	return nil
}

// formatValue renders a value in the smallest unit, adding the value in
// whole coins when it is representable as a btcutil.Amount.
func formatValue(v uint64) string {
	if v > math.MaxInt64 {
		return fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("%d (%v)", v, btcutil.Amount(v))
}

// disasm returns the disassembly of script, or its hex encoding when it does
// not parse.
func disasm(script []byte) string {
	if len(script) == 0 {
		return "(empty)"
	}
	s, err := txscript.DisasmString(script)
	if err != nil {
		return hex.EncodeToString(script)
	}
	return s
}
