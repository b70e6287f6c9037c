// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/fault"
	"github.com/bitmark-inc/wramd/host"
	"github.com/bitmark-inc/wramd/ram"
)

// RAMTransfer - move RAM, sending it to the contract wraps it
func (n *Node) RAMTransfer(signer account.Name, from account.Name, to account.Name, bytes int64, memo string) (*host.Receipt, error) {
	return n.execute(n.market.TransferAction(), signer, func(ctx *host.Context) error {
		return n.market.Transfer(ctx, from, to, bytes, memo)
	})
}

// BuyRAM - buy RAM from the reserve, buying for the contract wraps it
func (n *Node) BuyRAM(signer account.Name, payer account.Name, receiver account.Name, bytes int64) (*host.Receipt, error) {
	return n.execute(n.market.BuyRAMAction(), signer, func(ctx *host.Context) error {
		return n.market.Buy(ctx, payer, receiver, bytes)
	})
}

// RAM - bytes held by a registered account
func (n *Node) RAM(owner account.Name) (int64, error) {
	if !n.keys.Exists(owner) {
		return 0, fault.RecipientNotFound
	}
	var bytes int64
	err := n.runtime.Query(func() error {
		bytes = n.market.Balance(owner)
		return nil
	})
	return bytes, err
}

// RAMHoldings - bytes of every account that holds RAM
func (n *Node) RAMHoldings() ([]ram.Holding, error) {
	var holdings []ram.Holding
	err := n.runtime.Query(func() error {
		var err error
		holdings, err = n.market.Holdings()
		return err
	})
	return holdings, err
}
