// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/asset"
	"github.com/bitmark-inc/wramd/host"
	"github.com/bitmark-inc/wramd/rpc/token"
)

// CreateData - parameters for a new token
type CreateData struct {
	Contract      account.Name
	Issuer        account.Name
	MaximumSupply string
}

// Create - create a token on a contract
func (client *Client) Create(data *CreateData) (*host.Receipt, error) {
	args := token.CreateArguments{
		Contract:      data.Contract,
		Issuer:        data.Issuer,
		MaximumSupply: data.MaximumSupply,
	}
	auth, err := client.authorise(token.CreateMethod, args)
	if nil != err {
		return nil, err
	}
	args.Authorisation = auth

	var reply host.Receipt
	if err := client.call(token.CreateMethod, &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// SupplyData - issue or retire parameters
type SupplyData struct {
	Contract account.Name
	To       account.Name
	Quantity string
	Memo     string
}

// Issue - mint new tokens to the issuer
func (client *Client) Issue(data *SupplyData) (*host.Receipt, error) {
	args := token.IssueArguments{
		Contract: data.Contract,
		To:       data.To,
		Quantity: data.Quantity,
		Memo:     data.Memo,
	}
	auth, err := client.authorise(token.IssueMethod, args)
	if nil != err {
		return nil, err
	}
	args.Authorisation = auth

	var reply host.Receipt
	if err := client.call(token.IssueMethod, &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Retire - burn tokens held by the issuer
func (client *Client) Retire(data *SupplyData) (*host.Receipt, error) {
	args := token.RetireArguments{
		Contract: data.Contract,
		Quantity: data.Quantity,
		Memo:     data.Memo,
	}
	auth, err := client.authorise(token.RetireMethod, args)
	if nil != err {
		return nil, err
	}
	args.Authorisation = auth

	var reply host.Receipt
	if err := client.call(token.RetireMethod, &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// TransferData - token transfer parameters
type TransferData struct {
	Contract account.Name
	From     account.Name
	To       account.Name
	Quantity string
	Memo     string
}

// Transfer - move tokens between accounts
func (client *Client) Transfer(data *TransferData) (*host.Receipt, error) {
	args := token.TransferArguments{
		Contract: data.Contract,
		From:     data.From,
		To:       data.To,
		Quantity: data.Quantity,
		Memo:     data.Memo,
	}
	auth, err := client.authorise(token.TransferMethod, args)
	if nil != err {
		return nil, err
	}
	args.Authorisation = auth

	var reply host.Receipt
	if err := client.call(token.TransferMethod, &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// RowData - open or close a balance row
type RowData struct {
	Contract account.Name
	Owner    account.Name
	Symbol   asset.Symbol
	Payer    account.Name
}

// OpenRow - create an empty balance row
func (client *Client) OpenRow(data *RowData) (*host.Receipt, error) {
	args := token.OpenArguments{
		Contract: data.Contract,
		Owner:    data.Owner,
		Symbol:   data.Symbol,
		Payer:    data.Payer,
	}
	auth, err := client.authorise(token.OpenMethod, args)
	if nil != err {
		return nil, err
	}
	args.Authorisation = auth

	var reply host.Receipt
	if err := client.call(token.OpenMethod, &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// CloseRow - delete a zero balance row
func (client *Client) CloseRow(data *RowData) (*host.Receipt, error) {
	args := token.CloseArguments{
		Contract: data.Contract,
		Owner:    data.Owner,
		Symbol:   data.Symbol,
	}
	auth, err := client.authorise(token.CloseMethod, args)
	if nil != err {
		return nil, err
	}
	args.Authorisation = auth

	var reply host.Receipt
	if err := client.call(token.CloseMethod, &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Supply - token statistics
func (client *Client) Supply(contract account.Name, code asset.SymbolCode) (*token.SupplyReply, error) {
	args := token.SupplyArguments{
		Contract: contract,
		Symbol:   code,
	}
	var reply token.SupplyReply
	if err := client.call("Token.Supply", &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Balance - one balance row, or all rows when code is empty
func (client *Client) Balance(contract account.Name, owner account.Name, code asset.SymbolCode) (interface{}, error) {
	if "" == code {
		args := token.BalancesArguments{
			Contract: contract,
			Owner:    owner,
		}
		var reply token.BalancesReply
		if err := client.call("Token.Balances", &args, &reply); nil != err {
			return nil, err
		}
		return &reply, nil
	}

	args := token.BalanceArguments{
		Contract: contract,
		Owner:    owner,
		Symbol:   code,
	}
	var reply token.BalanceReply
	if err := client.call("Token.Balance", &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
