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

// MaximumAmount - largest amount any quantity or supply may reach
const MaximumAmount = int64(1)<<62 - 1

// Quantity - an amount of a symbol
type Quantity struct {
	Amount int64  `json:"amount"`
	Symbol Symbol `json:"symbol"`
}

// NewQuantity - create a quantity
func NewQuantity(amount int64, symbol Symbol) Quantity {
	return Quantity{
		Amount: amount,
		Symbol: symbol,
	}
}

// ParseQuantity - decode "1.0000 EOS" or "1024 WRAM"
//
// the number of fractional digits sets the precision
func ParseQuantity(s string) (Quantity, error) {
	parts := strings.Fields(s)
	if 2 != len(parts) {
		return Quantity{}, fault.InvalidQuantity
	}
	number := parts[0]
	negative := false
	if strings.HasPrefix(number, "-") {
		negative = true
		number = number[1:]
	}

	precision := 0
	digits := number
	if dot := strings.IndexByte(number, '.'); dot >= 0 {
		precision = len(number) - dot - 1
		if 0 == precision || 0 == dot {
			return Quantity{}, fault.InvalidQuantity
		}
		digits = number[:dot] + number[dot+1:]
	}
	if precision > MaximumPrecision {
		return Quantity{}, fault.InvalidQuantity
	}
	amount, err := strconv.ParseInt(digits, 10, 64)
	if nil != err || amount < 0 || amount > MaximumAmount {
		return Quantity{}, fault.InvalidQuantity
	}
	if negative {
		amount = -amount
	}

	symbol, err := NewSymbol(parts[1], uint8(precision))
	if nil != err {
		return Quantity{}, err
	}
	return NewQuantity(amount, symbol), nil
}

// Valid - amount within the platform range and symbol is valid
func (q Quantity) Valid() bool {
	return q.Amount >= -MaximumAmount && q.Amount <= MaximumAmount && q.Symbol.Valid()
}

// IsPositive - amount greater than zero
func (q Quantity) IsPositive() bool {
	return q.Amount > 0
}

// String - e.g. "1.0000 EOS"
func (q Quantity) String() string {
	amount := q.Amount
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	s := strconv.FormatInt(amount, 10)
	p := int(q.Symbol.Precision)
	if p > 0 {
		if len(s) <= p {
			s = strings.Repeat("0", p-len(s)+1) + s
		}
		s = s[:len(s)-p] + "." + s[len(s)-p:]
	}
	return sign + s + " " + string(q.Symbol.Code)
}
