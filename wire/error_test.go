// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"errors"
	"io"
	"testing"
)

// TestErrorCodeStringer tests the stringized output for the ErrorCode type.
func TestErrorCodeStringer(t *testing.T) {
	tests := []struct {
		in   ErrorCode
		want string
	}{
		{ErrTruncatedBuffer, "ErrTruncatedBuffer"},
		{ErrInvalidTransaction, "ErrInvalidTransaction"},
		{ErrInvalidScript, "ErrInvalidScript"},
		{ErrInvalidAmount, "ErrInvalidAmount"},
		{ErrParse, "ErrParse"},
		{0xffff, "Unknown ErrorCode (65535)"},
	}

	// Detect additional error codes that don't have the stringer added.
	if len(tests)-1 != int(numErrorCodes) {
		t.Errorf("It appears an error code was added without adding an " +
			"associated stringer test")
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("String #%d\n got: %s want: %s", i, result,
				test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	tests := []struct {
		in   Error
		want string
	}{
		{
			Error{Description: "some error"},
			"some error",
		},
		{
			Error{Func: "Decode", Description: "human-readable error"},
			"Decode: human-readable error",
		},
		{
			ParseError("Invalid amount format"),
			"Parse error: Invalid amount format",
		},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("Error #%d\n got: %s want: %s", i, result,
				test.want)
			continue
		}
	}
}

// TestErrorKindIs ensures errors can be identified via errors.Is and
// errors.As by code and by wrapped cause.
func TestErrorKindIs(t *testing.T) {
	truncated := txError(ErrTruncatedBuffer, "ReadUint32LE", "short")
	invalid := wrapError(ErrInvalidTransaction, "Decode", truncated)
	wrappedIO := wrapError(ErrInvalidTransaction, "Deserialize",
		io.ErrUnexpectedEOF)

	tests := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{"code matches itself", ErrParse, ErrParse, true},
		{"code mismatch", ErrParse, ErrInvalidAmount, false},
		{"error matches own code", truncated, ErrTruncatedBuffer, true},
		{"error does not match other code", truncated,
			ErrInvalidTransaction, false},
		{"wrapped matches outer code", invalid, ErrInvalidTransaction, true},
		{"wrapped matches inner code", invalid, ErrTruncatedBuffer, true},
		{"wrapped matches foreign cause", wrappedIO, io.ErrUnexpectedEOF,
			true},
		{"wrapped does not match unrelated", invalid, ErrParse, false},
		{"parse error", ParseError("x"), ErrParse, true},
	}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		if got := errors.Is(test.err, test.target); got != test.want {
			t.Errorf("%s: errors.Is = %v, want %v", test.name, got,
				test.want)
		}
	}

	var e Error
	if !errors.As(invalid, &e) {
		t.Fatalf("errors.As failed for %v", invalid)
	}
	if e.ErrorCode != ErrInvalidTransaction || e.Func != "Decode" {
		t.Fatalf("errors.As: unexpected error %+v", e)
	}
	if e.Description != truncated.Error() {
		t.Fatalf("wrapped description: got %q, want %q", e.Description,
			truncated.Error())
	}
}
