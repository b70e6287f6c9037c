// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wram_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/asset"
	"github.com/bitmark-inc/wramd/host"
	"github.com/bitmark-inc/wramd/ledger"
	"github.com/bitmark-inc/wramd/policy"
	"github.com/bitmark-inc/wramd/ram"
	"github.com/bitmark-inc/wramd/storage"
	"github.com/bitmark-inc/wramd/wram"
)

const (
	databaseFileName = "test.leveldb"
	testingDirName   = "testing"

	contract = wram.DefaultContract
	pool     = wram.DefaultPool

	initialMaximum = int64(10000000)
)

type directory map[account.Name]bool

func (d directory) Exists(name account.Name) bool {
	return d[name]
}

var testAccounts = directory{
	"alice":        true,
	"bob":          true,
	"carol":        true,
	"eosio":        true,
	"eosio.ram":    true,
	"eosio.token":  true,
	"eosio.wram":   true,
	"ramdeposit11": true,
}

var eos = asset.Symbol{Code: "EOS", Precision: 4}

// the wired system under test
type fixture struct {
	t       *testing.T
	runtime *host.Runtime
	market  *ram.Market
	tokens  *ledger.Ledger
	foreign *ledger.Ledger
	policy  *policy.Store
	engine  *wram.Engine
}

func removeFiles() {
	os.RemoveAll(databaseFileName)
	os.RemoveAll(testingDirName)
}

func setup(t *testing.T) *fixture {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	f := &fixture{
		t:       t,
		runtime: host.New(testAccounts, nil),
		market:  ram.New(ram.DefaultCode, ram.DefaultReserve),
		tokens:  ledger.New(contract),
		foreign: ledger.New("eosio.token"),
		policy:  policy.New(contract),
	}
	f.engine, err = wram.New(contract, pool, wram.Symbol, f.tokens, f.policy, f.market)
	if nil != err {
		t.Fatalf("engine error: %s", err)
	}
	f.engine.Register(f.runtime)

	f.must(f.exec(host.NewAction("eosio", "genesis"), "eosio", func(ctx *host.Context) error {
		if err := f.market.Grant(ctx, "alice", 100000); nil != err {
			return err
		}
		if err := f.market.Grant(ctx, "bob", 50000); nil != err {
			return err
		}
		return f.market.Grant(ctx, f.market.Reserve(), 10000000)
	}))

	f.must(f.exec(f.tokens.Action(ledger.CreateAction), contract, func(ctx *host.Context) error {
		return f.tokens.Create(ctx, contract, asset.NewQuantity(initialMaximum, wram.Symbol))
	}))

	f.must(f.exec(f.foreign.Action(ledger.CreateAction), "eosio.token", func(ctx *host.Context) error {
		return f.foreign.Create(ctx, "eosio", asset.NewQuantity(1000000000, eos))
	}))
	f.must(f.exec(f.foreign.Action(ledger.IssueAction), "eosio", func(ctx *host.Context) error {
		err := f.foreign.Issue(ctx, "eosio", asset.NewQuantity(500000, eos), "")
		if nil != err {
			return err
		}
		return f.foreign.Transfer(ctx, "eosio", "alice", asset.NewQuantity(500000, eos), "")
	}))

	return f
}

func (f *fixture) teardown() {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

func (f *fixture) must(err error) {
	if nil != err {
		f.t.Fatalf("setup error: %s", err)
	}
}

func (f *fixture) exec(action host.Action, signer account.Name, fn func(ctx *host.Context) error) error {
	_, err := f.runtime.Execute(action, []account.Name{signer}, fn)
	return err
}

func (f *fixture) ramTransfer(from account.Name, to account.Name, bytes int64, memo string) error {
	return f.exec(f.market.TransferAction(), from, func(ctx *host.Context) error {
		return f.market.Transfer(ctx, from, to, bytes, memo)
	})
}

func (f *fixture) buyRAM(payer account.Name, receiver account.Name, bytes int64) error {
	return f.exec(f.market.BuyRAMAction(), payer, func(ctx *host.Context) error {
		return f.market.Buy(ctx, payer, receiver, bytes)
	})
}

func (f *fixture) unwrap(owner account.Name, bytes int64) error {
	return f.exec(f.engine.Action(wram.UnwrapAction), owner, func(ctx *host.Context) error {
		return f.engine.Unwrap(ctx, owner, bytes)
	})
}

func (f *fixture) transfer(from account.Name, to account.Name, amount int64) error {
	return f.exec(f.tokens.Action(ledger.TransferAction), from, func(ctx *host.Context) error {
		return f.tokens.Transfer(ctx, from, to, asset.NewQuantity(amount, wram.Symbol), "")
	})
}

func (f *fixture) configure(wrapEnabled bool, unwrapEnabled bool) {
	f.must(f.exec(f.engine.Action(policy.ConfigureAction), contract, func(ctx *host.Context) error {
		return f.policy.Configure(ctx, wrapEnabled, unwrapEnabled)
	}))
}

func (f *fixture) addEgress(accounts ...account.Name) {
	f.must(f.exec(f.engine.Action(policy.AddEgressAction), contract, func(ctx *host.Context) error {
		return f.policy.AddEgress(ctx, accounts)
	}))
}

func (f *fixture) migrate(signer account.Name) error {
	return f.exec(f.engine.Action(wram.MigrateAction), signer, func(ctx *host.Context) error {
		return f.engine.Migrate(ctx)
	})
}

// WRAM balance, zero if no row
func (f *fixture) balance(owner account.Name) int64 {
	q, err := f.tokens.Balance(owner, wram.Symbol.Code)
	if nil != err {
		return 0
	}
	return q.Amount
}

func (f *fixture) supply() int64 {
	q, err := f.tokens.Supply(wram.Symbol.Code)
	assert.Nil(f.t, err, "supply")
	return q.Amount
}

func (f *fixture) ram(owner account.Name) int64 {
	return f.market.Balance(owner)
}

// supply == sum of balances, supply <= maximum, circulating == pool RAM
func (f *fixture) checkInvariants() {
	report, err := f.engine.Audit()
	assert.Nil(f.t, err, "audit")
	assert.True(f.t, report.Balanced, "supply %s == holdings %s", report.Supply, report.Holdings)
	assert.True(f.t, report.PoolBacked, "circulating %s == pool ram %d", report.Circulating, report.PoolRAM)
}

// snapshot of everything a failed trigger must leave unchanged
type snapshot struct {
	supply     int64
	balances   map[account.Name]int64
	ram        map[account.Name]int64
	eosBalance int64
}

func (f *fixture) snapshot() snapshot {
	s := snapshot{
		supply:   f.supply(),
		balances: map[account.Name]int64{},
		ram:      map[account.Name]int64{},
	}
	for name := range testAccounts {
		s.balances[name] = f.balance(name)
		s.ram[name] = f.ram(name)
	}
	q, err := f.foreign.Balance("alice", eos.Code)
	if nil == err {
		s.eosBalance = q.Amount
	}
	return s
}
