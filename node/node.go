// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"sort"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/asset"
	"github.com/bitmark-inc/wramd/fault"
	"github.com/bitmark-inc/wramd/host"
	"github.com/bitmark-inc/wramd/ledger"
	"github.com/bitmark-inc/wramd/messagebus"
	"github.com/bitmark-inc/wramd/policy"
	"github.com/bitmark-inc/wramd/ram"
	"github.com/bitmark-inc/wramd/wram"
)

// Node - one daemon instance
type Node struct {
	log           *logger.L
	start         time.Time
	configuration Configuration
	keys          *account.Keyring
	runtime       *host.Runtime
	market        *ram.Market
	policy        *policy.Store
	engine        *wram.Engine
	ledgers       map[account.Name]*ledger.Ledger
}

// New - build a node and apply genesis if the database is empty
//
// storage must already be initialised; receipts are published on
// queue when it is not nil
func New(configuration Configuration, queue *messagebus.Queue) (*Node, error) {
	log := logger.New("node")

	contract, err := account.NewName(configuration.Contract.Account)
	if nil != err {
		log.Errorf("contract account: %q  error: %s", configuration.Contract.Account, err)
		return nil, err
	}
	pool, err := account.NewName(configuration.Contract.Pool)
	if nil != err {
		log.Errorf("pool account: %q  error: %s", configuration.Contract.Pool, err)
		return nil, err
	}
	symbol, err := asset.ParseSymbol(configuration.Contract.Symbol)
	if nil != err {
		log.Errorf("contract symbol: %q  error: %s", configuration.Contract.Symbol, err)
		return nil, err
	}
	code, err := account.NewName(configuration.Market.Account)
	if nil != err {
		log.Errorf("market account: %q  error: %s", configuration.Market.Account, err)
		return nil, err
	}
	reserve, err := account.NewName(configuration.Market.Reserve)
	if nil != err {
		log.Errorf("market reserve: %q  error: %s", configuration.Market.Reserve, err)
		return nil, err
	}

	keys := account.NewKeyring()
	for _, name := range configuration.systemAccounts() {
		if err := keys.Register(name, nil); nil != err {
			log.Errorf("system account: %q  error: %s", name, err)
			return nil, err
		}
	}
	for _, a := range configuration.Accounts {
		var key account.PublicKey
		if "" != a.PublicKey {
			key, err = account.PublicKeyFromBase58(a.PublicKey)
			if nil != err {
				log.Errorf("account: %q  public key error: %s", a.Name, err)
				return nil, err
			}
		}
		if err := keys.Register(account.Name(a.Name), key); nil != err {
			log.Errorf("account: %q  error: %s", a.Name, err)
			return nil, err
		}
	}

	n := &Node{
		log:           log,
		start:         time.Now(),
		configuration: configuration,
		keys:          keys,
		runtime:       host.New(keys, queue),
		market:        ram.New(code, reserve),
		policy:        policy.New(contract),
		ledgers:       make(map[account.Name]*ledger.Ledger),
	}

	tokens := n.addLedger(contract)
	for _, t := range configuration.Tokens {
		c, err := account.NewName(t.Contract)
		if nil != err {
			log.Errorf("token contract: %q  error: %s", t.Contract, err)
			return nil, err
		}
		n.addLedger(c)
	}

	n.engine, err = wram.New(contract, pool, symbol, tokens, n.policy, n.market)
	if nil != err {
		log.Errorf("engine error: %s", err)
		return nil, err
	}
	n.engine.Register(n.runtime)

	err = n.genesis()
	if nil != err {
		return nil, err
	}

	log.Infof("contract: %s  pool: %s  symbol: %s", contract, pool, symbol)
	return n, nil
}

func (n *Node) addLedger(code account.Name) *ledger.Ledger {
	if l, ok := n.ledgers[code]; ok {
		return l
	}
	l := ledger.New(code)
	n.ledgers[code] = l
	return l
}

func (n *Node) ledger(code account.Name) (*ledger.Ledger, error) {
	l, ok := n.ledgers[code]
	if !ok {
		return nil, fault.TokenNotFound
	}
	return l, nil
}

// Engine - the wrap engine
func (n *Node) Engine() *wram.Engine {
	return n.engine
}

// Start - when the node was created
func (n *Node) Start() time.Time {
	return n.start
}

// Triggers - number of triggers run since start
func (n *Node) Triggers() uint64 {
	return n.runtime.Sequence()
}

// Accounts - number of registered accounts
func (n *Node) Accounts() int {
	return len(n.keys.Names())
}

// Contracts - the token contracts served
func (n *Node) Contracts() []account.Name {
	names := make([]account.Name, 0, len(n.ledgers))
	for c := range n.ledgers {
		names = append(names, c)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

func (n *Node) execute(action host.Action, signer account.Name, fn func(ctx *host.Context) error) (*host.Receipt, error) {
	return n.runtime.Execute(action, []account.Name{signer}, fn)
}
