// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wram

import (
	"github.com/bitmark-inc/wramd/fault"
	"github.com/bitmark-inc/wramd/host"
	"github.com/bitmark-inc/wramd/ledger"
	"github.com/bitmark-inc/wramd/ram"
)

// OnRAMTransfer - RAM sent to the contract is wrapped for the sender
func (e *Engine) OnRAMTransfer(ctx *host.Context, payload interface{}) error {
	notice, ok := payload.(ram.TransferNotice)
	if !ok {
		return fault.InvalidItem
	}
	if notice.To != e.contract {
		return nil
	}
	if IgnoreMemo == notice.Memo {
		e.log.Debugf("ignored ram transfer from: %s  bytes: %d", notice.From, notice.Bytes)
		return nil
	}
	return e.wrap(ctx, notice.From, notice.Bytes)
}

// OnBuyRAM - RAM bought for the contract is wrapped for the payer
func (e *Engine) OnBuyRAM(ctx *host.Context, payload interface{}) error {
	notice, ok := payload.(ram.BuyNotice)
	if !ok {
		return fault.InvalidItem
	}
	if notice.Receiver != e.contract {
		return nil
	}
	return e.wrap(ctx, notice.Payer, notice.Bytes)
}

// OnTransfer - any token sent to the contract from another ledger is refused
func (e *Engine) OnTransfer(ctx *host.Context, payload interface{}) error {
	notice, ok := payload.(ledger.TransferNotice)
	if !ok {
		return fault.InvalidItem
	}
	if notice.To != e.contract {
		return nil
	}
	e.log.Warnf("rejected %s::transfer of %s from: %s", ctx.Action().Code, notice.Quantity, notice.From)
	return fault.ForeignTokenRejected
}
