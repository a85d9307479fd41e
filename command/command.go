// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package command parses the positional arguments of the txtool command.
package command

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/btcsuite/legacytx/wire"
)

// Command is a parsed command.
type Command interface {
	// Name returns the command word the command was parsed from.
	Name() string
}

// Balance queries the total of the unspent outputs in the store.
type Balance struct{}

// Name returns "balance".
func (Balance) Name() string { return "balance" }

// Send pays Amount, denominated in the smallest currency unit, to Address.
type Send struct {
	Amount  uint64
	Address string
}

// Name returns "send".
func (Send) Name() string { return "send" }

// Decode prints a raw transaction.
type Decode struct {
	Raw []byte
}

// Name returns "decode".
func (Decode) Name() string { return "decode" }

// Import stores a raw transaction.
type Import struct {
	Raw []byte
}

// Name returns "import".
func (Import) Name() string { return "import" }

// commandInfo describes the arguments a command takes.
type commandInfo struct {
	numArgs  int
	synopsis string
}

// commands lists the known commands in the order Usage prints them.
var commands = []struct {
	name string
	commandInfo
}{
	{"balance", commandInfo{0, "balance"}},
	{"send", commandInfo{2, "send <amount> <address>"}},
	{"decode", commandInfo{1, "decode <hex>"}},
	{"import", commandInfo{1, "import <hex>"}},
}

// lookup returns the description of the named command.
func lookup(name string) (commandInfo, bool) {
	for _, c := range commands {
		if c.name == name {
			return c.commandInfo, true
		}
	}
	return commandInfo{}, false
}

// Usage returns the synopsis of every command, one per line.
func Usage() string {
	var s string
	for _, c := range commands {
		s += c.synopsis + "\n"
	}
	return s
}

// ParseArgs parses the positional arguments following the program name.  All
// errors match wire.ErrParse.
func ParseArgs(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, wire.ParseError("No command provided")
	}

	name, rest := args[0], args[1:]
	info, ok := lookup(name)
	if !ok {
		return nil, wire.ParseError("Unknown command: " + name)
	}
	if len(rest) != info.numArgs {
		str := fmt.Sprintf("%s takes %d arguments, got %d (usage: %s)",
			name, info.numArgs, len(rest), info.synopsis)
		return nil, wire.ParseError(str)
	}

	switch name {
	case "balance":
		return Balance{}, nil

	case "send":
		amount, err := strconv.ParseUint(rest[0], 10, 64)
		if err != nil {
			return nil, wire.ParseError("Invalid amount format")
		}
		return Send{Amount: amount, Address: rest[1]}, nil

	case "decode":
		raw, err := parseHex(rest[0])
		if err != nil {
			return nil, err
		}
		return Decode{Raw: raw}, nil

	default:
		raw, err := parseHex(rest[0])
		if err != nil {
			return nil, err
		}
		return Import{Raw: raw}, nil
	}
}

// parseHex decodes a hex encoded transaction argument.
func parseHex(s string) ([]byte, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, wire.ParseError("Invalid hex format")
	}
	return raw, nil
}
