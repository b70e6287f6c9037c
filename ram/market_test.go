// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ram_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/fault"
	"github.com/bitmark-inc/wramd/host"
	"github.com/bitmark-inc/wramd/ram"
)

func setupMarket(t *testing.T) (*host.Runtime, *ram.Market) {
	r := host.New(testAccounts, nil)
	m := ram.New(ram.DefaultCode, ram.DefaultReserve)

	_, err := r.Execute(host.NewAction(m.Code(), "genesis"), []account.Name{m.Code()}, func(ctx *host.Context) error {
		if err := m.Grant(ctx, "alice", 10000); nil != err {
			return err
		}
		return m.Grant(ctx, m.Reserve(), 1000000)
	})
	if nil != err {
		t.Fatalf("grant error: %s", err)
	}
	return r, m
}

func TestGrantRequiresMarket(t *testing.T) {
	setup(t)
	defer teardown(t)

	r, m := setupMarket(t)
	_, err := r.Execute(host.NewAction(m.Code(), "genesis"), []account.Name{"alice"}, func(ctx *host.Context) error {
		return m.Grant(ctx, "alice", 1)
	})
	assert.Equal(t, fault.MissingAuthority, err, "grant by alice")
	assert.Equal(t, int64(10000), m.Balance("alice"), "alice unchanged")
}

func TestTransfer(t *testing.T) {
	setup(t)
	defer teardown(t)

	r, m := setupMarket(t)

	notices := []ram.TransferNotice{}
	r.Subscribe("bob", m.Code(), ram.TransferAction, func(ctx *host.Context, payload interface{}) error {
		notices = append(notices, payload.(ram.TransferNotice))
		return nil
	})

	_, err := r.Execute(m.TransferAction(), []account.Name{"alice"}, func(ctx *host.Context) error {
		return m.Transfer(ctx, "alice", "bob", 1500, "gift")
	})
	assert.Nil(t, err, "transfer")
	assert.Equal(t, int64(8500), m.Balance("alice"), "alice")
	assert.Equal(t, int64(1500), m.Balance("bob"), "bob")
	assert.Equal(t, []ram.TransferNotice{{From: "alice", To: "bob", Bytes: 1500, Memo: "gift"}}, notices, "notified")
}

func TestTransferFailures(t *testing.T) {
	setup(t)
	defer teardown(t)

	r, m := setupMarket(t)

	tests := []struct {
		signer account.Name
		from   account.Name
		to     account.Name
		bytes  int64
		memo   string
		err    error
	}{
		{"bob", "alice", "bob", 1, "", fault.MissingAuthority},
		{"alice", "alice", "alice", 1, "", fault.CannotTransferToSelf},
		{"alice", "alice", "bob", 0, "", fault.NotPositiveQuantity},
		{"alice", "alice", "bob", -1, "", fault.NotPositiveQuantity},
		{"alice", "alice", "bob", 1, strings.Repeat("m", 257), fault.MemoTooLong},
		{"alice", "alice", "nobody", 1, "", fault.RecipientNotFound},
		{"alice", "alice", "bob", 10001, "", fault.InsufficientResource},
	}

	for i, item := range tests {
		_, err := r.Execute(m.TransferAction(), []account.Name{item.signer}, func(ctx *host.Context) error {
			return m.Transfer(ctx, item.from, item.to, item.bytes, item.memo)
		})
		assert.Equal(t, item.err, err, "%d: error", i)
	}
	assert.Equal(t, int64(10000), m.Balance("alice"), "alice unchanged")
	assert.Equal(t, int64(0), m.Balance("bob"), "bob unchanged")
}

func TestBuy(t *testing.T) {
	setup(t)
	defer teardown(t)

	r, m := setupMarket(t)

	var notice ram.BuyNotice
	r.Subscribe("bob", m.Code(), ram.BuyAction, func(ctx *host.Context, payload interface{}) error {
		notice = payload.(ram.BuyNotice)
		return nil
	})

	_, err := r.Execute(host.NewAction(m.Code(), "buyram"), []account.Name{"alice"}, func(ctx *host.Context) error {
		return m.Buy(ctx, "alice", "bob", 4096)
	})
	assert.Nil(t, err, "buy")
	assert.Equal(t, int64(4096), m.Balance("bob"), "bob")
	assert.Equal(t, int64(1000000-4096), m.Balance(m.Reserve()), "reserve")
	assert.Equal(t, ram.BuyNotice{Payer: "alice", Receiver: "bob", Bytes: 4096, RAMBytes: 4096}, notice, "notice")

	_, err = r.Execute(host.NewAction(m.Code(), "buyram"), []account.Name{"alice"}, func(ctx *host.Context) error {
		return m.Buy(ctx, "alice", "bob", 1000000)
	})
	assert.Equal(t, fault.InsufficientResource, err, "reserve exhausted")
}

func TestHoldings(t *testing.T) {
	setup(t)
	defer teardown(t)

	_, m := setupMarket(t)
	holdings, err := m.Holdings()
	assert.Nil(t, err, "holdings")
	assert.Equal(t, []ram.Holding{
		{Owner: "alice", Bytes: 10000},
		{Owner: "eosio.ram", Bytes: 1000000},
	}, holdings, "holdings")
}
