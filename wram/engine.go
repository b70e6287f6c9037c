// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wram

import (
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/asset"
	"github.com/bitmark-inc/wramd/fault"
	"github.com/bitmark-inc/wramd/host"
	"github.com/bitmark-inc/wramd/ledger"
	"github.com/bitmark-inc/wramd/policy"
	"github.com/bitmark-inc/wramd/ram"
)

// default accounts
const (
	DefaultContract = account.Name("eosio.wram")
	DefaultPool     = account.Name("ramdeposit11")
)

// action names and memos
const (
	UnwrapAction  = "unwrap"
	MigrateAction = "migrate"

	WrapMemo   = "wrap ram"
	UnwrapMemo = "unwrap ram"

	// RAM sent to the contract with this memo is not wrapped
	IgnoreMemo = "ignore"
)

// Symbol - the wrapped token
var Symbol = asset.Symbol{
	Code:      "WRAM",
	Precision: 0,
}

// Engine - wrap and unwrap for one contract
type Engine struct {
	log      *logger.L
	contract account.Name
	pool     account.Name
	symbol   asset.Symbol
	ledger   *ledger.Ledger
	policy   *policy.Store
	market   *ram.Market
}

// New - create an engine
//
// the ledger must be run by the contract account, the engine becomes
// its transfer guard
func New(contract account.Name, pool account.Name, symbol asset.Symbol, tokens *ledger.Ledger, switches *policy.Store, market *ram.Market) (*Engine, error) {
	if !contract.Valid() || !pool.Valid() || contract == pool {
		return nil, fault.InvalidAccountName
	}
	if !symbol.Valid() {
		return nil, fault.InvalidSymbol
	}
	if nil == tokens || tokens.Code() != contract || nil == switches || nil == market {
		return nil, fault.MissingParameters
	}

	e := &Engine{
		log:      logger.New("wram"),
		contract: contract,
		pool:     pool,
		symbol:   symbol,
		ledger:   tokens,
		policy:   switches,
		market:   market,
	}
	tokens.SetGuard(e)
	return e, nil
}

// Register - subscribe to market and token notifications and let the
// contract act for the pool
func (e *Engine) Register(r *host.Runtime) {
	r.Subscribe(e.contract, e.market.Code(), ram.TransferAction, e.OnRAMTransfer)
	r.Subscribe(e.contract, e.market.Code(), ram.BuyAction, e.OnBuyRAM)
	r.Subscribe(e.contract, host.AnyCode, ledger.TransferAction, e.OnTransfer)
	r.Delegate(e.pool, e.contract)
}

// Contract - the contract account
func (e *Engine) Contract() account.Name {
	return e.contract
}

// Pool - the custodial pool account
func (e *Engine) Pool() account.Name {
	return e.pool
}

// Symbol - the wrapped token symbol
func (e *Engine) Symbol() asset.Symbol {
	return e.symbol
}

// Action - qualified action of the contract
func (e *Engine) Action(name string) host.Action {
	return host.NewAction(e.contract, name)
}

// Unwrap - burn owner's tokens and release the same bytes from the pool
//
// the tokens first move to the contract as a transfer signed by owner
func (e *Engine) Unwrap(ctx *host.Context, owner account.Name, bytes int64) error {
	if !e.policy.Get(ctx).UnwrapEnabled {
		return fault.UnwrapDisabled
	}
	if err := ctx.RequireAuth(owner); nil != err {
		return err
	}

	quantity := asset.NewQuantity(bytes, e.symbol)
	err := e.ledger.Transfer(ctx, owner, e.contract, quantity, UnwrapMemo)
	if nil != err {
		return err
	}
	return e.unwrapRAM(ctx, owner, quantity)
}

// CheckTransfer - the ledger guard
//
// blocked recipients never receive tokens, and tokens only return to
// the contract as part of unwrap
func (e *Engine) CheckTransfer(ctx *host.Context, from account.Name, to account.Name, quantity asset.Quantity) error {
	if e.policy.IsBlocked(ctx, to) {
		return fault.RecipientBlocked
	}
	if to == e.contract && ctx.Entry() != e.Action(UnwrapAction) {
		return fault.TransferToContract
	}
	return nil
}

// move bytes held by the contract into the pool, then mint and deliver
func (e *Engine) wrap(ctx *host.Context, to account.Name, bytes int64) error {
	if bytes <= 0 {
		return fault.NotPositiveQuantity
	}
	if !e.policy.Get(ctx).WrapEnabled {
		return fault.WrapDisabled
	}
	if to == e.contract {
		return fault.CannotWrapToSelf
	}

	quantity := asset.NewQuantity(bytes, e.symbol)

	err := e.ramTransfer(ctx, e.contract, e.pool, bytes, WrapMemo)
	if nil != err {
		return err
	}
	err = e.issue(ctx, quantity, WrapMemo)
	if nil != err {
		return err
	}
	err = e.transfer(ctx, to, quantity, WrapMemo)
	if nil != err {
		return err
	}

	e.log.Infof("wrap: %s  to: %s  trigger: %d", quantity, to, ctx.Sequence())
	return nil
}

// burn tokens already returned to the contract and release the bytes
//
// quantity is always in the contract symbol
func (e *Engine) unwrapRAM(ctx *host.Context, to account.Name, quantity asset.Quantity) error {
	err := e.retire(ctx, quantity, UnwrapMemo)
	if nil != err {
		return err
	}
	err = e.ramTransfer(ctx, e.pool, to, quantity.Amount, UnwrapMemo)
	if nil != err {
		return err
	}

	e.log.Infof("unwrap: %s  to: %s  trigger: %d", quantity, to, ctx.Sequence())
	return nil
}

// inline actions

func (e *Engine) ramTransfer(ctx *host.Context, from account.Name, to account.Name, bytes int64, memo string) error {
	inline, err := ctx.Inline(from, e.market.TransferAction())
	if nil != err {
		return err
	}
	return e.market.Transfer(inline, from, to, bytes, memo)
}

func (e *Engine) issue(ctx *host.Context, quantity asset.Quantity, memo string) error {
	inline, err := ctx.Inline(e.contract, e.ledger.Action(ledger.IssueAction))
	if nil != err {
		return err
	}
	return e.ledger.Issue(inline, e.contract, quantity, memo)
}

func (e *Engine) retire(ctx *host.Context, quantity asset.Quantity, memo string) error {
	inline, err := ctx.Inline(e.contract, e.ledger.Action(ledger.RetireAction))
	if nil != err {
		return err
	}
	return e.ledger.Retire(inline, quantity, memo)
}

func (e *Engine) transfer(ctx *host.Context, to account.Name, quantity asset.Quantity, memo string) error {
	inline, err := ctx.Inline(e.contract, e.ledger.Action(ledger.TransferAction))
	if nil != err {
		return err
	}
	return e.ledger.Transfer(inline, e.contract, to, quantity, memo)
}
