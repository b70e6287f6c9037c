// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/asset"
	"github.com/bitmark-inc/wramd/fault"
	"github.com/bitmark-inc/wramd/host"
	"github.com/bitmark-inc/wramd/storage"
)

// action names
const (
	CreateAction   = "create"
	IssueAction    = "issue"
	RetireAction   = "retire"
	TransferAction = "transfer"
	OpenAction     = "open"
	CloseAction    = "close"

	SetMaximumSupplyAction = "setmaxsupply"
)

// Guard - extra checks applied to every transfer
//
// returning an error rejects the transfer
type Guard interface {
	CheckTransfer(ctx *host.Context, from account.Name, to account.Name, quantity asset.Quantity) error
}

// TransferNotice - payload of a transfer notification
type TransferNotice struct {
	From     account.Name   `json:"from"`
	To       account.Name   `json:"to"`
	Quantity asset.Quantity `json:"quantity"`
	Memo     string         `json:"memo"`
}

// Ledger - tokens of one code account
type Ledger struct {
	log   *logger.L
	code  account.Name
	guard Guard
}

// New - create the ledger for a code account
func New(code account.Name) *Ledger {
	return &Ledger{
		log:  logger.New("ledger"),
		code: code,
	}
}

// SetGuard - install the transfer guard, must be done before any trigger runs
func (l *Ledger) SetGuard(guard Guard) {
	l.guard = guard
}

// Code - the account running this ledger
func (l *Ledger) Code() account.Name {
	return l.code
}

// Action - qualified action of this ledger
func (l *Ledger) Action(name string) host.Action {
	return host.NewAction(l.code, name)
}

// Create - define a new symbol
func (l *Ledger) Create(ctx *host.Context, issuer account.Name, maximum asset.Quantity) error {
	if err := ctx.RequireAuth(l.code); nil != err {
		return err
	}
	if !maximum.Symbol.Valid() {
		return fault.InvalidSymbol
	}
	if !maximum.Valid() || !maximum.IsPositive() {
		return fault.InvalidMaximumSupply
	}
	if !ctx.IsAccount(issuer) {
		return fault.RecipientNotFound
	}

	trx := ctx.Transaction()
	if _, ok := readStats(trx, l.code, maximum.Symbol.Code); ok {
		return fault.TokenAlreadyExists
	}

	stats := Stats{
		Supply:        asset.NewQuantity(0, maximum.Symbol),
		MaximumSupply: maximum,
		Issuer:        issuer,
	}
	trx.Put(storage.Pool.Stats, statsKey(l.code, maximum.Symbol.Code), packStats(stats))

	l.log.Infof("create: %s  issuer: %s  maximum: %s", l.code, issuer, maximum)
	return nil
}

// Issue - mint new tokens to the issuer
func (l *Ledger) Issue(ctx *host.Context, to account.Name, quantity asset.Quantity, memo string) error {
	if !quantity.Symbol.Valid() {
		return fault.InvalidSymbol
	}
	if len(memo) > host.MaximumMemoLength {
		return fault.MemoTooLong
	}

	trx := ctx.Transaction()
	stats, ok := readStats(trx, l.code, quantity.Symbol.Code)
	if !ok {
		return fault.TokenNotFound
	}
	if to != stats.Issuer {
		return fault.IssueToIssuerOnly
	}
	if err := ctx.RequireAuth(stats.Issuer); nil != err {
		return err
	}
	if !quantity.Valid() {
		return fault.InvalidQuantity
	}
	if !quantity.IsPositive() {
		return fault.NotPositiveQuantity
	}
	if quantity.Symbol != stats.Supply.Symbol {
		return fault.SymbolPrecisionMismatch
	}
	if quantity.Amount > stats.MaximumSupply.Amount-stats.Supply.Amount {
		return fault.MaximumSupplyExceeded
	}

	stats.Supply.Amount += quantity.Amount
	trx.Put(storage.Pool.Stats, statsKey(l.code, quantity.Symbol.Code), packStats(stats))

	if err := l.addBalance(trx, stats.Issuer, quantity, stats.Issuer); nil != err {
		return err
	}

	l.log.Debugf("issue: %s  to: %s  memo: %q", quantity, to, memo)
	return nil
}

// Retire - burn tokens held by the issuer
func (l *Ledger) Retire(ctx *host.Context, quantity asset.Quantity, memo string) error {
	if !quantity.Symbol.Valid() {
		return fault.InvalidSymbol
	}
	if len(memo) > host.MaximumMemoLength {
		return fault.MemoTooLong
	}

	trx := ctx.Transaction()
	stats, ok := readStats(trx, l.code, quantity.Symbol.Code)
	if !ok {
		return fault.TokenNotFound
	}
	if err := ctx.RequireAuth(stats.Issuer); nil != err {
		return err
	}
	if !quantity.Valid() {
		return fault.InvalidQuantity
	}
	if !quantity.IsPositive() {
		return fault.NotPositiveQuantity
	}
	if quantity.Symbol != stats.Supply.Symbol {
		return fault.SymbolPrecisionMismatch
	}

	if err := l.subBalance(trx, stats.Issuer, quantity); nil != err {
		return err
	}

	stats.Supply.Amount -= quantity.Amount
	trx.Put(storage.Pool.Stats, statsKey(l.code, quantity.Symbol.Code), packStats(stats))

	l.log.Debugf("retire: %s  memo: %q", quantity, memo)
	return nil
}

// Transfer - move tokens between accounts and notify both
func (l *Ledger) Transfer(ctx *host.Context, from account.Name, to account.Name, quantity asset.Quantity, memo string) error {
	if from == to {
		return fault.CannotTransferToSelf
	}
	if err := ctx.RequireAuth(from); nil != err {
		return err
	}
	if !ctx.IsAccount(to) {
		return fault.RecipientNotFound
	}

	trx := ctx.Transaction()
	stats, ok := readStats(trx, l.code, quantity.Symbol.Code)
	if !ok {
		return fault.TokenNotFound
	}
	if !quantity.Valid() {
		return fault.InvalidQuantity
	}
	if !quantity.IsPositive() {
		return fault.NotPositiveQuantity
	}
	if quantity.Symbol != stats.Supply.Symbol {
		return fault.SymbolPrecisionMismatch
	}
	if len(memo) > host.MaximumMemoLength {
		return fault.MemoTooLong
	}
	if nil != l.guard {
		if err := l.guard.CheckTransfer(ctx, from, to, quantity); nil != err {
			return err
		}
	}

	payer := from
	if ctx.HasAuth(to) {
		payer = to
	}

	if err := l.subBalance(trx, from, quantity); nil != err {
		return err
	}
	if err := l.addBalance(trx, to, quantity, payer); nil != err {
		return err
	}

	l.log.Debugf("transfer: %s  from: %s  to: %s  memo: %q", quantity, from, to, memo)

	notice := TransferNotice{
		From:     from,
		To:       to,
		Quantity: quantity,
		Memo:     memo,
	}
	return ctx.Notify(l.Action(TransferAction), notice, from, to)
}

// Open - create an empty balance row
func (l *Ledger) Open(ctx *host.Context, owner account.Name, symbol asset.Symbol, payer account.Name) error {
	if err := ctx.RequireAuth(payer); nil != err {
		return err
	}
	if !ctx.IsAccount(owner) {
		return fault.RecipientNotFound
	}

	trx := ctx.Transaction()
	stats, ok := readStats(trx, l.code, symbol.Code)
	if !ok {
		return fault.TokenNotFound
	}
	if symbol != stats.Supply.Symbol {
		return fault.SymbolPrecisionMismatch
	}

	if _, _, ok := readBalance(trx, l.code, owner, symbol.Code); ok {
		return nil
	}
	trx.Put(storage.Pool.Accounts, accountKey(l.code, owner, symbol.Code), packBalance(0, payer))
	return nil
}

// Close - remove a zero balance row
func (l *Ledger) Close(ctx *host.Context, owner account.Name, symbol asset.Symbol) error {
	if err := ctx.RequireAuth(owner); nil != err {
		return err
	}

	trx := ctx.Transaction()
	amount, _, ok := readBalance(trx, l.code, owner, symbol.Code)
	if !ok {
		return fault.NoBalance
	}
	if 0 != amount {
		return fault.BalanceNotZero
	}
	trx.Delete(storage.Pool.Accounts, accountKey(l.code, owner, symbol.Code))
	return nil
}

// SetMaximumSupply - change the supply ceiling of a symbol
func (l *Ledger) SetMaximumSupply(ctx *host.Context, maximum asset.Quantity) error {
	trx := ctx.Transaction()
	stats, ok := readStats(trx, l.code, maximum.Symbol.Code)
	if !ok {
		return fault.TokenNotFound
	}
	if err := ctx.RequireAuth(stats.Issuer); nil != err {
		return err
	}
	if maximum.Symbol != stats.Supply.Symbol {
		return fault.SymbolPrecisionMismatch
	}
	if !maximum.Valid() || !maximum.IsPositive() {
		return fault.InvalidMaximumSupply
	}
	if maximum.Amount < stats.Supply.Amount {
		return fault.MaximumSupplyBelowSupply
	}

	stats.MaximumSupply = maximum
	trx.Put(storage.Pool.Stats, statsKey(l.code, maximum.Symbol.Code), packStats(stats))

	l.log.Infof("maximum supply: %s", maximum)
	return nil
}

func (l *Ledger) subBalance(trx storage.Transaction, owner account.Name, quantity asset.Quantity) error {
	amount, payer, ok := readBalance(trx, l.code, owner, quantity.Symbol.Code)
	if !ok {
		return fault.NoBalance
	}
	if amount < quantity.Amount {
		return fault.OverdrawnBalance
	}
	trx.Put(storage.Pool.Accounts, accountKey(l.code, owner, quantity.Symbol.Code), packBalance(amount-quantity.Amount, payer))
	return nil
}

func (l *Ledger) addBalance(trx storage.Transaction, owner account.Name, quantity asset.Quantity, payer account.Name) error {
	amount, existingPayer, ok := readBalance(trx, l.code, owner, quantity.Symbol.Code)
	if ok {
		payer = existingPayer
	}
	if quantity.Amount > asset.MaximumAmount-amount {
		return fault.MaximumSupplyExceeded
	}
	trx.Put(storage.Pool.Accounts, accountKey(l.code, owner, quantity.Symbol.Code), packBalance(amount+quantity.Amount, payer))
	return nil
}
