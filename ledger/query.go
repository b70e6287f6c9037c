// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/asset"
	"github.com/bitmark-inc/wramd/fault"
	"github.com/bitmark-inc/wramd/host"
	"github.com/bitmark-inc/wramd/storage"
)

// Stats - the stats record of a symbol
func (l *Ledger) Stats(symbol asset.SymbolCode) (Stats, error) {
	stats, ok := readStats(poolReader{}, l.code, symbol)
	if !ok {
		return Stats{}, fault.TokenNotFound
	}
	return stats, nil
}

// StatsIn - the stats record as seen inside a trigger
func (l *Ledger) StatsIn(ctx *host.Context, symbol asset.SymbolCode) (Stats, error) {
	stats, ok := readStats(ctx.Transaction(), l.code, symbol)
	if !ok {
		return Stats{}, fault.TokenNotFound
	}
	return stats, nil
}

// BalanceIn - an account's amount as seen inside a trigger, zero if no row
func (l *Ledger) BalanceIn(ctx *host.Context, owner account.Name, symbol asset.SymbolCode) int64 {
	amount, _, _ := readBalance(ctx.Transaction(), l.code, owner, symbol)
	return amount
}

// Supply - current supply of a symbol
func (l *Ledger) Supply(symbol asset.SymbolCode) (asset.Quantity, error) {
	stats, err := l.Stats(symbol)
	if nil != err {
		return asset.Quantity{}, err
	}
	return stats.Supply, nil
}

// Balance - an account's holding of a symbol
func (l *Ledger) Balance(owner account.Name, symbol asset.SymbolCode) (asset.Quantity, error) {
	stats, ok := readStats(poolReader{}, l.code, symbol)
	if !ok {
		return asset.Quantity{}, fault.TokenNotFound
	}
	amount, _, ok := readBalance(poolReader{}, l.code, owner, symbol)
	if !ok {
		return asset.Quantity{}, fault.NoBalance
	}
	return asset.NewQuantity(amount, stats.Supply.Symbol), nil
}

// Balances - every balance row of an owner in this ledger
func (l *Ledger) Balances(owner account.Name) ([]Balance, error) {
	prefix := accountKey(l.code, owner, "")
	balances := []Balance{}
	err := storage.Pool.Accounts.NewPrefixCursor(prefix).Map(func(key []byte, value []byte) error {
		symbol := asset.SymbolCode(key[len(prefix):])
		stats, ok := readStats(poolReader{}, l.code, symbol)
		if !ok || len(value) < 8 {
			return fault.InvalidItem
		}
		amount, payer := decodeBalance(value)
		balances = append(balances, Balance{
			Owner:   owner,
			Balance: asset.NewQuantity(amount, stats.Supply.Symbol),
			Payer:   payer,
		})
		return nil
	})
	return balances, err
}

// Holders - every balance row of a symbol
func (l *Ledger) Holders(symbol asset.SymbolCode) ([]Balance, error) {
	stats, ok := readStats(poolReader{}, l.code, symbol)
	if !ok {
		return nil, fault.TokenNotFound
	}

	prefix := append(l.code.Bytes(), 0x00)
	holders := []Balance{}
	err := storage.Pool.Accounts.NewPrefixCursor(prefix).Map(func(key []byte, value []byte) error {
		rest := key[len(prefix):]
		n := bytes.IndexByte(rest, 0x00)
		if n < 0 {
			return fault.CannotDecodeKey
		}
		if asset.SymbolCode(rest[n+1:]) != symbol {
			return nil
		}
		owner := account.Name(rest[:n])
		if len(value) < 8 {
			return fault.InvalidItem
		}
		amount, payer := decodeBalance(value)
		holders = append(holders, Balance{
			Owner:   owner,
			Balance: asset.NewQuantity(amount, stats.Supply.Symbol),
			Payer:   payer,
		})
		return nil
	})
	return holders, err
}

// Holdings - the sum of all balances of a symbol
//
// equals the supply in a consistent ledger
func (l *Ledger) Holdings(symbol asset.SymbolCode) (asset.Quantity, error) {
	holders, err := l.Holders(symbol)
	if nil != err {
		return asset.Quantity{}, err
	}
	stats, err := l.Stats(symbol)
	if nil != err {
		return asset.Quantity{}, err
	}
	total := asset.NewQuantity(0, stats.Supply.Symbol)
	for _, h := range holders {
		total.Amount += h.Balance.Amount
	}
	return total, nil
}

func decodeBalance(value []byte) (int64, account.Name) {
	return int64(binary.BigEndian.Uint64(value[:8])), account.Name(value[8:])
}
