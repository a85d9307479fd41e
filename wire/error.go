// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"fmt"
)

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrTruncatedBuffer indicates fewer bytes remain in a buffer than a
	// fixed-width field or a varint-declared length requires.
	ErrTruncatedBuffer ErrorCode = iota

	// ErrInvalidTransaction indicates a transaction is structurally
	// malformed, for example it is truncated, declares more items than the
	// buffer could hold, or is followed by unconsumed trailing bytes.
	ErrInvalidTransaction

	// ErrInvalidScript indicates a script could not be produced or
	// accepted.  The codec never raises it since scripts are opaque.
	ErrInvalidScript

	// ErrInvalidAmount indicates an amount violates a value-range policy
	// applied by a consumer of the codec.
	ErrInvalidAmount

	// ErrParse indicates text or command line input could not be parsed.
	ErrParse

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrTruncatedBuffer:    "ErrTruncatedBuffer",
	ErrInvalidTransaction: "ErrInvalidTransaction",
	ErrInvalidScript:      "ErrInvalidScript",
	ErrInvalidAmount:      "ErrInvalidAmount",
	ErrParse:              "ErrParse",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error implements the error interface so an ErrorCode can be used as the
// target of errors.Is.
func (e ErrorCode) Error() string {
	return e.String()
}

// Error describes a failure to decode a transaction or to parse input.  The
// caller can use errors.Is with one of the ErrorCode constants, or
// errors.As to access the ErrorCode field, to ascertain the specific reason
// for the failure.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Func        string    // Function name
	Description string    // Human readable description of the issue
	Err         error     // Underlying cause, if any
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	if e.Func != "" {
		return fmt.Sprintf("%v: %v", e.Func, e.Description)
	}
	return e.Description
}

// Unwrap returns the error code along with the underlying cause so that
// errors.Is matches either of them.
func (e Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.ErrorCode}
	}
	return []error{e.ErrorCode, e.Err}
}

// txError creates an Error given a set of arguments.
func txError(c ErrorCode, f string, desc string) Error {
	return Error{ErrorCode: c, Func: f, Description: desc}
}

// wrapError creates an Error of the given kind around an underlying cause.
func wrapError(c ErrorCode, f string, err error) Error {
	return Error{ErrorCode: c, Func: f, Description: err.Error(), Err: err}
}

// ParseError returns an ErrParse error carrying the passed description.
func ParseError(desc string) Error {
	return Error{ErrorCode: ErrParse, Description: "Parse error: " + desc}
}
