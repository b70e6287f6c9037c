// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/asset"
	"github.com/bitmark-inc/wramd/fault"
	"github.com/bitmark-inc/wramd/storage"
)

// Stats - supply record of a symbol
type Stats struct {
	Supply        asset.Quantity `json:"supply"`
	MaximumSupply asset.Quantity `json:"max_supply"`
	Issuer        account.Name   `json:"issuer"`
}

// Balance - one account's holding of a symbol
type Balance struct {
	Owner   account.Name   `json:"owner"`
	Balance asset.Quantity `json:"balance"`
	Payer   account.Name   `json:"payer"`
}

// code ++ 0x00 ++ symbol
func statsKey(code account.Name, symbol asset.SymbolCode) []byte {
	key := make([]byte, 0, len(code)+1+len(symbol))
	key = append(key, code...)
	key = append(key, 0x00)
	return append(key, symbol...)
}

// code ++ 0x00 ++ owner ++ 0x00 ++ symbol
func accountKey(code account.Name, owner account.Name, symbol asset.SymbolCode) []byte {
	key := make([]byte, 0, len(code)+len(owner)+2+len(symbol))
	key = append(key, code...)
	key = append(key, 0x00)
	key = append(key, owner...)
	key = append(key, 0x00)
	return append(key, symbol...)
}

// supply ++ max supply ++ precision ++ issuer
func packStats(s Stats) []byte {
	buffer := make([]byte, 17, 17+len(s.Issuer))
	binary.BigEndian.PutUint64(buffer[0:8], uint64(s.Supply.Amount))
	binary.BigEndian.PutUint64(buffer[8:16], uint64(s.MaximumSupply.Amount))
	buffer[16] = s.Supply.Symbol.Precision
	return append(buffer, s.Issuer...)
}

func unpackStats(symbol asset.SymbolCode, buffer []byte) Stats {
	if len(buffer) < 17 {
		fault.Panicf("ledger: truncated stats record for: %s: %x", symbol, buffer)
	}
	sym := asset.Symbol{
		Code:      symbol,
		Precision: buffer[16],
	}
	return Stats{
		Supply:        asset.NewQuantity(int64(binary.BigEndian.Uint64(buffer[0:8])), sym),
		MaximumSupply: asset.NewQuantity(int64(binary.BigEndian.Uint64(buffer[8:16])), sym),
		Issuer:        account.Name(buffer[17:]),
	}
}

// amount ++ payer
func packBalance(amount int64, payer account.Name) []byte {
	buffer := make([]byte, 8, 8+len(payer))
	binary.BigEndian.PutUint64(buffer, uint64(amount))
	return append(buffer, payer...)
}

type reader interface {
	Get(*storage.PoolHandle, []byte) []byte
	GetNB(*storage.PoolHandle, []byte) (uint64, []byte)
}

func readStats(r reader, code account.Name, symbol asset.SymbolCode) (Stats, bool) {
	buffer := r.Get(storage.Pool.Stats, statsKey(code, symbol))
	if nil == buffer {
		return Stats{}, false
	}
	return unpackStats(symbol, buffer), true
}

// second result is false if no row exists
func readBalance(r reader, code account.Name, owner account.Name, symbol asset.SymbolCode) (int64, account.Name, bool) {
	n, payer := r.GetNB(storage.Pool.Accounts, accountKey(code, owner, symbol))
	if nil == payer {
		return 0, "", false
	}
	return int64(n), account.Name(payer), true
}

// committed state reads, for use outside a trigger
type poolReader struct{}

func (poolReader) Get(p *storage.PoolHandle, key []byte) []byte {
	return p.Get(key)
}

func (poolReader) GetNB(p *storage.PoolHandle, key []byte) (uint64, []byte) {
	return p.GetNB(key)
}
