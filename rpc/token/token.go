// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/asset"
	"github.com/bitmark-inc/wramd/host"
	"github.com/bitmark-inc/wramd/ledger"
	"github.com/bitmark-inc/wramd/node"
	"github.com/bitmark-inc/wramd/rpc/ratelimit"
	"github.com/bitmark-inc/wramd/rpc/signature"
)

const (
	rateLimitToken = 200
	rateBurstToken = 100
)

// method names, also the signed prefix
const (
	CreateMethod   = "Token.Create"
	IssueMethod    = "Token.Issue"
	RetireMethod   = "Token.Retire"
	TransferMethod = "Token.Transfer"
	OpenMethod     = "Token.Open"
	CloseMethod    = "Token.Close"
)

// Token - type for RPC calls
type Token struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	tokens   node.Tokens
	verifier node.Verifier
}

// New - create the token RPC handler
func New(log *logger.L, tokens node.Tokens, verifier node.Verifier) *Token {
	return &Token{
		Log:      log,
		Limiter:  ratelimit.New(rateLimitToken, rateBurstToken),
		tokens:   tokens,
		verifier: verifier,
	}
}

// ---

// CreateArguments - create a token, maximum supply carries the symbol
type CreateArguments struct {
	Authorisation signature.Authorisation `json:"authorisation"`
	Contract      account.Name            `json:"contract"`
	Issuer        account.Name            `json:"issuer"`
	MaximumSupply string                  `json:"maximum_supply"`
}

// Create - create_token
func (token *Token) Create(arguments *CreateArguments, reply *host.Receipt) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	unsigned := *arguments
	unsigned.Authorisation = signature.Authorisation{}
	if err := signature.Check(token.verifier, CreateMethod, unsigned, arguments.Authorisation); nil != err {
		return err
	}

	maximum, err := asset.ParseQuantity(arguments.MaximumSupply)
	if nil != err {
		return err
	}

	token.Log.Infof("create: contract: %s  issuer: %s  maximum: %s", arguments.Contract, arguments.Issuer, maximum)

	receipt, err := token.tokens.Create(arguments.Authorisation.Signer, arguments.Contract, arguments.Issuer, maximum)
	return result(receipt, err, reply)
}

// ---

// IssueArguments - mint to the issuer
type IssueArguments struct {
	Authorisation signature.Authorisation `json:"authorisation"`
	Contract      account.Name            `json:"contract"`
	To            account.Name            `json:"to"`
	Quantity      string                  `json:"quantity"`
	Memo          string                  `json:"memo"`
}

// Issue - issue
func (token *Token) Issue(arguments *IssueArguments, reply *host.Receipt) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	unsigned := *arguments
	unsigned.Authorisation = signature.Authorisation{}
	if err := signature.Check(token.verifier, IssueMethod, unsigned, arguments.Authorisation); nil != err {
		return err
	}

	quantity, err := asset.ParseQuantity(arguments.Quantity)
	if nil != err {
		return err
	}

	receipt, err := token.tokens.Issue(arguments.Authorisation.Signer, arguments.Contract, arguments.To, quantity, arguments.Memo)
	return result(receipt, err, reply)
}

// ---

// RetireArguments - burn from the issuer
type RetireArguments struct {
	Authorisation signature.Authorisation `json:"authorisation"`
	Contract      account.Name            `json:"contract"`
	Quantity      string                  `json:"quantity"`
	Memo          string                  `json:"memo"`
}

// Retire - retire
func (token *Token) Retire(arguments *RetireArguments, reply *host.Receipt) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	unsigned := *arguments
	unsigned.Authorisation = signature.Authorisation{}
	if err := signature.Check(token.verifier, RetireMethod, unsigned, arguments.Authorisation); nil != err {
		return err
	}

	quantity, err := asset.ParseQuantity(arguments.Quantity)
	if nil != err {
		return err
	}

	receipt, err := token.tokens.Retire(arguments.Authorisation.Signer, arguments.Contract, quantity, arguments.Memo)
	return result(receipt, err, reply)
}

// ---

// TransferArguments - move tokens
type TransferArguments struct {
	Authorisation signature.Authorisation `json:"authorisation"`
	Contract      account.Name            `json:"contract"`
	From          account.Name            `json:"from"`
	To            account.Name            `json:"to"`
	Quantity      string                  `json:"quantity"`
	Memo          string                  `json:"memo"`
}

// Transfer - transfer
func (token *Token) Transfer(arguments *TransferArguments, reply *host.Receipt) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	unsigned := *arguments
	unsigned.Authorisation = signature.Authorisation{}
	if err := signature.Check(token.verifier, TransferMethod, unsigned, arguments.Authorisation); nil != err {
		return err
	}

	quantity, err := asset.ParseQuantity(arguments.Quantity)
	if nil != err {
		return err
	}

	receipt, err := token.tokens.Transfer(arguments.Authorisation.Signer, arguments.Contract, arguments.From, arguments.To, quantity, arguments.Memo)
	return result(receipt, err, reply)
}

// ---

// OpenArguments - create an empty balance row
type OpenArguments struct {
	Authorisation signature.Authorisation `json:"authorisation"`
	Contract      account.Name            `json:"contract"`
	Owner         account.Name            `json:"owner"`
	Symbol        asset.Symbol            `json:"symbol"`
	Payer         account.Name            `json:"payer"`
}

// Open - open
func (token *Token) Open(arguments *OpenArguments, reply *host.Receipt) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	unsigned := *arguments
	unsigned.Authorisation = signature.Authorisation{}
	if err := signature.Check(token.verifier, OpenMethod, unsigned, arguments.Authorisation); nil != err {
		return err
	}

	receipt, err := token.tokens.Open(arguments.Authorisation.Signer, arguments.Contract, arguments.Owner, arguments.Symbol, arguments.Payer)
	return result(receipt, err, reply)
}

// ---

// CloseArguments - remove an empty balance row
type CloseArguments struct {
	Authorisation signature.Authorisation `json:"authorisation"`
	Contract      account.Name            `json:"contract"`
	Owner         account.Name            `json:"owner"`
	Symbol        asset.Symbol            `json:"symbol"`
}

// Close - close
func (token *Token) Close(arguments *CloseArguments, reply *host.Receipt) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	unsigned := *arguments
	unsigned.Authorisation = signature.Authorisation{}
	if err := signature.Check(token.verifier, CloseMethod, unsigned, arguments.Authorisation); nil != err {
		return err
	}

	receipt, err := token.tokens.Close(arguments.Authorisation.Signer, arguments.Contract, arguments.Owner, arguments.Symbol)
	return result(receipt, err, reply)
}

// ---

// SupplyArguments - token to read
type SupplyArguments struct {
	Contract account.Name     `json:"contract"`
	Symbol   asset.SymbolCode `json:"symbol"`
}

// SupplyReply - token statistics
type SupplyReply struct {
	Supply        string       `json:"supply"`
	MaximumSupply string       `json:"max_supply"`
	Issuer        account.Name `json:"issuer"`
}

// Supply - get_supply
func (token *Token) Supply(arguments *SupplyArguments, reply *SupplyReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	stats, err := token.tokens.Supply(arguments.Contract, arguments.Symbol)
	if nil != err {
		return err
	}

	reply.Supply = stats.Supply.String()
	reply.MaximumSupply = stats.MaximumSupply.String()
	reply.Issuer = stats.Issuer
	return nil
}

// ---

// BalanceArguments - balance to read
type BalanceArguments struct {
	Contract account.Name     `json:"contract"`
	Owner    account.Name     `json:"owner"`
	Symbol   asset.SymbolCode `json:"symbol"`
}

// BalanceReply - one balance
type BalanceReply struct {
	Owner   account.Name `json:"owner"`
	Balance string       `json:"balance"`
}

// Balance - get_balance, fails when the owner has no row
func (token *Token) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	balance, err := token.tokens.Balance(arguments.Contract, arguments.Owner, arguments.Symbol)
	if nil != err {
		return err
	}

	reply.Owner = arguments.Owner
	reply.Balance = balance.String()
	return nil
}

// ---

// BalancesArguments - owner to list
type BalancesArguments struct {
	Contract account.Name `json:"contract"`
	Owner    account.Name `json:"owner"`
}

// BalancesReply - all rows of one owner
type BalancesReply struct {
	Balances []ledger.Balance `json:"balances"`
}

// Balances - every balance row of an owner
func (token *Token) Balances(arguments *BalancesArguments, reply *BalancesReply) error {
	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	balances, err := token.tokens.Balances(arguments.Contract, arguments.Owner)
	if nil != err {
		return err
	}

	reply.Balances = balances
	return nil
}

func result(receipt *host.Receipt, err error, reply *host.Receipt) error {
	if nil != err {
		return err
	}
	*reply = *receipt
	return nil
}
