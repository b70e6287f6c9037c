// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/host"
	"github.com/bitmark-inc/wramd/rpc/resource"
)

// RAMTransferData - move RAM between accounts
type RAMTransferData struct {
	From  account.Name
	To    account.Name
	Bytes int64
	Memo  string
}

// RAMTransfer - transfer RAM bytes, to the contract this wraps
func (client *Client) RAMTransfer(data *RAMTransferData) (*host.Receipt, error) {
	args := resource.TransferArguments{
		From:  data.From,
		To:    data.To,
		Bytes: data.Bytes,
		Memo:  data.Memo,
	}
	auth, err := client.authorise(resource.TransferMethod, args)
	if nil != err {
		return nil, err
	}
	args.Authorisation = auth

	var reply host.Receipt
	if err := client.call(resource.TransferMethod, &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// BuyRAM - buy RAM bytes for a receiver
func (client *Client) BuyRAM(payer account.Name, receiver account.Name, bytes int64) (*host.Receipt, error) {
	args := resource.BuyArguments{
		Payer:    payer,
		Receiver: receiver,
		Bytes:    bytes,
	}
	auth, err := client.authorise(resource.BuyMethod, args)
	if nil != err {
		return nil, err
	}
	args.Authorisation = auth

	var reply host.Receipt
	if err := client.call(resource.BuyMethod, &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// RAM - RAM bytes held by an account
func (client *Client) RAM(owner account.Name) (*resource.BalanceReply, error) {
	args := resource.BalanceArguments{
		Owner: owner,
	}
	var reply resource.BalanceReply
	if err := client.call("Resource.Balance", &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
