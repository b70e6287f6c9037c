// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package asset

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/wramd/fault"
)

// limits on symbols
const (
	MaximumCodeLength = 7
	MaximumPrecision  = 18
)

// SymbolCode - the upper case part of a symbol
type SymbolCode string

// Symbol - code and decimal precision
type Symbol struct {
	Code      SymbolCode `json:"code"`
	Precision uint8      `json:"precision"`
}

// NewSymbol - create and validate a symbol
func NewSymbol(code string, precision uint8) (Symbol, error) {
	s := Symbol{
		Code:      SymbolCode(code),
		Precision: precision,
	}
	if !s.Valid() {
		return Symbol{}, fault.InvalidSymbol
	}
	return s, nil
}

// ParseSymbol - decode "precision,CODE" e.g. "0,WRAM"
func ParseSymbol(s string) (Symbol, error) {
	parts := strings.SplitN(s, ",", 2)
	if 2 != len(parts) {
		return Symbol{}, fault.InvalidSymbol
	}
	p, err := strconv.ParseUint(parts[0], 10, 8)
	if nil != err {
		return Symbol{}, fault.InvalidSymbol
	}
	return NewSymbol(parts[1], uint8(p))
}

// Valid - check code characters and precision
func (c SymbolCode) Valid() bool {
	n := len(c)
	if n == 0 || n > MaximumCodeLength {
		return false
	}
	for i := 0; i < n; i += 1 {
		if c[i] < 'A' || c[i] > 'Z' {
			return false
		}
	}
	return true
}

// Valid - check code and precision
func (s Symbol) Valid() bool {
	return s.Code.Valid() && s.Precision <= MaximumPrecision
}

// String - the "precision,CODE" form
func (s Symbol) String() string {
	return strconv.Itoa(int(s.Precision)) + "," + string(s.Code)
}

// MarshalText - symbol as text, the zero symbol is empty
func (s Symbol) MarshalText() ([]byte, error) {
	if (Symbol{}) == s {
		return []byte{}, nil
	}
	return []byte(s.String()), nil
}

// UnmarshalText - symbol from text
func (s *Symbol) UnmarshalText(b []byte) error {
	if 0 == len(b) {
		*s = Symbol{}
		return nil
	}
	sym, err := ParseSymbol(string(b))
	if nil != err {
		return err
	}
	*s = sym
	return nil
}
