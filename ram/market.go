// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ram

import (
	"encoding/binary"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/asset"
	"github.com/bitmark-inc/wramd/fault"
	"github.com/bitmark-inc/wramd/host"
	"github.com/bitmark-inc/wramd/storage"
)

// default accounts
const (
	DefaultCode    = account.Name("eosio")
	DefaultReserve = account.Name("eosio.ram")
)

// action names
const (
	TransferAction = "ramtransfer"
	BuyRAMAction   = "buyram"
	BuyAction      = "logbuyram"
)

// TransferNotice - payload of a ramtransfer notification
type TransferNotice struct {
	From  account.Name `json:"from"`
	To    account.Name `json:"to"`
	Bytes int64        `json:"bytes"`
	Memo  string       `json:"memo"`
}

// BuyNotice - payload of a logbuyram notification
//
// RAMBytes is the receiver's holding after the purchase
type BuyNotice struct {
	Payer    account.Name `json:"payer"`
	Receiver account.Name `json:"receiver"`
	Bytes    int64        `json:"bytes"`
	RAMBytes int64        `json:"ram_bytes"`
}

// Holding - bytes held by one account
type Holding struct {
	Owner account.Name `json:"owner"`
	Bytes int64        `json:"bytes"`
}

// Market - RAM quota ledger
type Market struct {
	log     *logger.L
	code    account.Name
	reserve account.Name
}

// New - create a market run by code, selling from reserve
func New(code account.Name, reserve account.Name) *Market {
	return &Market{
		log:     logger.New("ram"),
		code:    code,
		reserve: reserve,
	}
}

// Code - the account emitting market notifications
func (m *Market) Code() account.Name {
	return m.code
}

// Reserve - the account that bought RAM is taken from
func (m *Market) Reserve() account.Name {
	return m.reserve
}

// TransferAction - the qualified action for inline transfers
func (m *Market) TransferAction() host.Action {
	return host.NewAction(m.code, TransferAction)
}

// BuyRAMAction - the qualified buy action
func (m *Market) BuyRAMAction() host.Action {
	return host.NewAction(m.code, BuyRAMAction)
}

// Transfer - move bytes between accounts
func (m *Market) Transfer(ctx *host.Context, from account.Name, to account.Name, bytes int64, memo string) error {
	if err := ctx.RequireAuth(from); nil != err {
		return err
	}
	if from == to {
		return fault.CannotTransferToSelf
	}
	if bytes <= 0 {
		return fault.NotPositiveQuantity
	}
	if len(memo) > host.MaximumMemoLength {
		return fault.MemoTooLong
	}
	if !ctx.IsAccount(to) {
		return fault.RecipientNotFound
	}

	trx := ctx.Transaction()
	err := move(trx, from, to, bytes)
	if nil != err {
		return err
	}

	m.log.Debugf("transfer: from: %s  to: %s  bytes: %d  memo: %q", from, to, bytes, memo)

	notice := TransferNotice{
		From:  from,
		To:    to,
		Bytes: bytes,
		Memo:  memo,
	}
	return ctx.Notify(host.NewAction(m.code, TransferAction), notice, from, to)
}

// Buy - payer buys bytes from the reserve for receiver
func (m *Market) Buy(ctx *host.Context, payer account.Name, receiver account.Name, bytes int64) error {
	if err := ctx.RequireAuth(payer); nil != err {
		return err
	}
	if bytes <= 0 {
		return fault.NotPositiveQuantity
	}
	if !ctx.IsAccount(receiver) {
		return fault.RecipientNotFound
	}

	trx := ctx.Transaction()
	err := move(trx, m.reserve, receiver, bytes)
	if nil != err {
		return err
	}

	m.log.Debugf("buy: payer: %s  receiver: %s  bytes: %d", payer, receiver, bytes)

	notice := BuyNotice{
		Payer:    payer,
		Receiver: receiver,
		Bytes:    bytes,
		RAMBytes: get(trx, receiver),
	}
	return ctx.Notify(host.NewAction(m.code, BuyAction), notice, payer, receiver)
}

// Grant - create bytes for an account, only the market account may do this
func (m *Market) Grant(ctx *host.Context, owner account.Name, bytes int64) error {
	if err := ctx.RequireAuth(m.code); nil != err {
		return err
	}
	if bytes <= 0 {
		return fault.NotPositiveQuantity
	}
	trx := ctx.Transaction()
	balance := get(trx, owner)
	if bytes > asset.MaximumAmount-balance {
		return fault.MaximumSupplyExceeded
	}
	put(trx, owner, balance+bytes)
	m.log.Infof("grant: %s  bytes: %d", owner, bytes)
	return nil
}

// Balance - bytes held by an account
func (m *Market) Balance(owner account.Name) int64 {
	n, _ := storage.Pool.Resources.GetN(owner.Bytes())
	return int64(n)
}

// Holdings - every account holding bytes
func (m *Market) Holdings() ([]Holding, error) {
	holdings := []Holding{}
	err := storage.Pool.Resources.NewFetchCursor().Map(func(key []byte, value []byte) error {
		if len(value) < 8 {
			return fault.InvalidItem
		}
		n := int64(binary.BigEndian.Uint64(value[:8]))
		if 0 == n {
			return nil
		}
		holdings = append(holdings, Holding{
			Owner: account.Name(key),
			Bytes: n,
		})
		return nil
	})
	return holdings, err
}

func move(trx storage.Transaction, from account.Name, to account.Name, bytes int64) error {
	fromBalance := get(trx, from)
	if fromBalance < bytes {
		return fault.InsufficientResource
	}
	toBalance := get(trx, to)
	if bytes > asset.MaximumAmount-toBalance {
		return fault.MaximumSupplyExceeded
	}
	put(trx, from, fromBalance-bytes)
	put(trx, to, toBalance+bytes)
	return nil
}

func get(trx storage.Transaction, owner account.Name) int64 {
	n, _ := trx.GetN(storage.Pool.Resources, owner.Bytes())
	return int64(n)
}

func put(trx storage.Transaction, owner account.Name, bytes int64) {
	trx.PutN(storage.Pool.Resources, owner.Bytes(), uint64(bytes))
}
