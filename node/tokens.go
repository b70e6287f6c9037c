// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/asset"
	"github.com/bitmark-inc/wramd/host"
	"github.com/bitmark-inc/wramd/ledger"
)

// Create - create a token in a contract's ledger
func (n *Node) Create(signer account.Name, contract account.Name, issuer account.Name, maximum asset.Quantity) (*host.Receipt, error) {
	l, err := n.ledger(contract)
	if nil != err {
		return nil, err
	}
	return n.execute(l.Action(ledger.CreateAction), signer, func(ctx *host.Context) error {
		return l.Create(ctx, issuer, maximum)
	})
}

// Issue - mint to the issuer
func (n *Node) Issue(signer account.Name, contract account.Name, to account.Name, quantity asset.Quantity, memo string) (*host.Receipt, error) {
	l, err := n.ledger(contract)
	if nil != err {
		return nil, err
	}
	return n.execute(l.Action(ledger.IssueAction), signer, func(ctx *host.Context) error {
		return l.Issue(ctx, to, quantity, memo)
	})
}

// Retire - burn from the issuer
func (n *Node) Retire(signer account.Name, contract account.Name, quantity asset.Quantity, memo string) (*host.Receipt, error) {
	l, err := n.ledger(contract)
	if nil != err {
		return nil, err
	}
	return n.execute(l.Action(ledger.RetireAction), signer, func(ctx *host.Context) error {
		return l.Retire(ctx, quantity, memo)
	})
}

// Transfer - move tokens, notifying both parties
func (n *Node) Transfer(signer account.Name, contract account.Name, from account.Name, to account.Name, quantity asset.Quantity, memo string) (*host.Receipt, error) {
	l, err := n.ledger(contract)
	if nil != err {
		return nil, err
	}
	return n.execute(l.Action(ledger.TransferAction), signer, func(ctx *host.Context) error {
		return l.Transfer(ctx, from, to, quantity, memo)
	})
}

// Open - create an empty balance row paid for by payer
func (n *Node) Open(signer account.Name, contract account.Name, owner account.Name, symbol asset.Symbol, payer account.Name) (*host.Receipt, error) {
	l, err := n.ledger(contract)
	if nil != err {
		return nil, err
	}
	return n.execute(l.Action(ledger.OpenAction), signer, func(ctx *host.Context) error {
		return l.Open(ctx, owner, symbol, payer)
	})
}

// Close - remove an empty balance row
func (n *Node) Close(signer account.Name, contract account.Name, owner account.Name, symbol asset.Symbol) (*host.Receipt, error) {
	l, err := n.ledger(contract)
	if nil != err {
		return nil, err
	}
	return n.execute(l.Action(ledger.CloseAction), signer, func(ctx *host.Context) error {
		return l.Close(ctx, owner, symbol)
	})
}

// Supply - token statistics
func (n *Node) Supply(contract account.Name, code asset.SymbolCode) (ledger.Stats, error) {
	l, err := n.ledger(contract)
	if nil != err {
		return ledger.Stats{}, err
	}
	var stats ledger.Stats
	err = n.runtime.Query(func() error {
		stats, err = l.Stats(code)
		return err
	})
	return stats, err
}

// Balance - one account's balance
func (n *Node) Balance(contract account.Name, owner account.Name, code asset.SymbolCode) (asset.Quantity, error) {
	l, err := n.ledger(contract)
	if nil != err {
		return asset.Quantity{}, err
	}
	var balance asset.Quantity
	err = n.runtime.Query(func() error {
		balance, err = l.Balance(owner, code)
		return err
	})
	return balance, err
}

// Balances - all balances of an account in a contract
func (n *Node) Balances(contract account.Name, owner account.Name) ([]ledger.Balance, error) {
	l, err := n.ledger(contract)
	if nil != err {
		return nil, err
	}
	var balances []ledger.Balance
	err = n.runtime.Query(func() error {
		balances, err = l.Balances(owner)
		return err
	})
	return balances, err
}
