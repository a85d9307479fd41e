// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package point provides a generic two dimensional point with a "(x,y)" text
// form.
package point

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/btcsuite/legacytx/wire"
	"golang.org/x/exp/constraints"
)

// Number is the set of types a Point may hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Point is a pair of coordinates.
type Point[T Number] struct {
	X, Y T
}

// New returns a point at (x,y).
func New[T Number](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// String returns the point in the form "(x,y)".
func (p Point[T]) String() string {
	return "(" + format(p.X) + "," + format(p.Y) + ")"
}

// Parse parses a point of the form "(x,y)".  Whitespace around the whole
// string and around either component is ignored.  Parse errors match
// wire.ErrParse.
func Parse[T Number](s string) (Point[T], error) {
	var p Point[T]

	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") ||
		len(s) < 2 {

		return p, wire.ParseError(fmt.Sprintf("point %q must be "+
			"enclosed in parentheses", s))
	}

	parts := strings.Split(s[1:len(s)-1], ",")
	if len(parts) != 2 {
		return p, wire.ParseError(fmt.Sprintf("point %q must have "+
			"exactly two comma separated coordinates", s))
	}

	var err error
	if p.X, err = parseNumber[T](parts[0]); err != nil {
		return Point[T]{}, wire.ParseError(fmt.Sprintf("invalid x "+
			"coordinate in %q: %v", s, err))
	}
	if p.Y, err = parseNumber[T](parts[1]); err != nil {
		return Point[T]{}, wire.ParseError(fmt.Sprintf("invalid y "+
			"coordinate in %q: %v", s, err))
	}
	return p, nil
}

// parseNumber parses s according to the kind and size of T.
func parseNumber[T Number](s string) (T, error) {
	s = strings.TrimSpace(s)
	typ := reflect.TypeOf(T(0))

	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64:

		v, err := strconv.ParseInt(s, 10, typ.Bits())
		if err != nil {
			return 0, numError(err)
		}
		return T(v), nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:

		v, err := strconv.ParseUint(s, 10, typ.Bits())
		if err != nil {
			return 0, numError(err)
		}
		return T(v), nil

	default:
		v, err := strconv.ParseFloat(s, typ.Bits())
		if err != nil {
			return 0, numError(err)
		}
		return T(v), nil
	}
}

// numError strips the strconv function name from err.
func numError(err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return fmt.Errorf("%q: %w", numErr.Num, numErr.Err)
	}
	return err
}

// format renders a single coordinate.
func format[T Number](v T) string {
	switch reflect.TypeOf(v).Kind() {
	case reflect.Float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
