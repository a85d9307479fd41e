// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package command

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/btcsuite/legacytx/wire"
	"github.com/davecgh/go-spew/spew"
)

// TestParseArgs tests parsing of valid command lines.
func TestParseArgs(t *testing.T) {
	tests := []struct {
		args []string
		want Command
	}{
		{[]string{"balance"}, Balance{}},
		{
			[]string{"send", "100", "1BoatSLRHtKNngkdXEeobR76b53LETtpyT"},
			Send{Amount: 100, Address: "1BoatSLRHtKNngkdXEeobR76b53LETtpyT"},
		},
		{
			[]string{"send", "18446744073709551615", "addr"},
			Send{Amount: 18446744073709551615, Address: "addr"},
		},
		{[]string{"send", "0", ""}, Send{Address: ""}},
		{
			[]string{"decode", "01000000000000000000"},
			Decode{Raw: []byte{1, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
		},
		{[]string{"import", "00ff"}, Import{Raw: []byte{0x00, 0xff}}},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		got, err := ParseArgs(test.args)
		if err != nil {
			t.Errorf("ParseArgs #%d %v: unexpected error %v", i,
				test.args, err)
			continue
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("ParseArgs #%d\n got: %s want: %s", i,
				spew.Sdump(got), spew.Sdump(test.want))
			continue
		}
		if got.Name() != test.args[0] {
			t.Errorf("Name #%d: got %s, want %s", i, got.Name(),
				test.args[0])
		}
	}
}

// TestParseArgsErrors tests the error paths of ParseArgs.
func TestParseArgsErrors(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{nil, "Parse error: No command provided"},
		{[]string{}, "Parse error: No command provided"},
		{[]string{"send", "abc", "addr"}, "Parse error: Invalid amount format"},
		{[]string{"send", "-1", "addr"}, "Parse error: Invalid amount format"},
		{
			[]string{"send", "18446744073709551616", "addr"},
			"Parse error: Invalid amount format",
		},
		{[]string{"decode", "0g"}, "Parse error: Invalid hex format"},
		{[]string{"import", "abc"}, "Parse error: Invalid hex format"},
		{[]string{"transfer"}, "Parse error: Unknown command: transfer"},
		{[]string{"BALANCE"}, "Parse error: Unknown command: BALANCE"},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		cmd, err := ParseArgs(test.args)
		if cmd != nil {
			t.Errorf("ParseArgs #%d: returned command %v", i, cmd)
			continue
		}
		if !errors.Is(err, wire.ErrParse) {
			t.Errorf("ParseArgs #%d: wrong error got: %v, want: %v",
				i, err, wire.ErrParse)
			continue
		}
		if err.Error() != test.want {
			t.Errorf("ParseArgs #%d\n got: %s want: %s", i,
				err.Error(), test.want)
		}
	}
}

// TestParseArgsArity ensures a known command with the wrong number of
// arguments reports its usage.
func TestParseArgsArity(t *testing.T) {
	tests := [][]string{
		{"balance", "extra"},
		{"send"},
		{"send", "100"},
		{"send", "100", "addr", "extra"},
		{"decode"},
		{"import", "00", "00"},
	}

	for _, args := range tests {
		_, err := ParseArgs(args)
		if !errors.Is(err, wire.ErrParse) {
			t.Errorf("%v: wrong error %v", args, err)
			continue
		}
		if !strings.Contains(err.Error(), "usage: "+mustLookup(t, args[0]).synopsis) {
			t.Errorf("%v: error %q does not name the usage", args,
				err)
		}
	}

	if !strings.Contains(Usage(), "send <amount> <address>") {
		t.Fatalf("Usage missing send synopsis: %q", Usage())
	}
}

func mustLookup(t *testing.T, name string) commandInfo {
	t.Helper()
	info, ok := lookup(name)
	if !ok {
		t.Fatalf("unknown command %s", name)
	}
	return info
}
