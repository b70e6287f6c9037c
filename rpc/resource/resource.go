// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package resource

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/host"
	"github.com/bitmark-inc/wramd/node"
	"github.com/bitmark-inc/wramd/rpc/ratelimit"
	"github.com/bitmark-inc/wramd/rpc/signature"
)

const (
	rateLimitResource = 200
	rateBurstResource = 100
)

// method names
const (
	TransferMethod = "Resource.Transfer"
	BuyMethod      = "Resource.Buy"
)

// Resource - type for RPC calls
type Resource struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	resources node.Resources
	verifier  node.Verifier
}

// New - create the resource market RPC handler
func New(log *logger.L, resources node.Resources, verifier node.Verifier) *Resource {
	return &Resource{
		Log:       log,
		Limiter:   ratelimit.New(rateLimitResource, rateBurstResource),
		resources: resources,
		verifier:  verifier,
	}
}

// ---

// TransferArguments - move RAM bytes, to the contract this wraps
type TransferArguments struct {
	Authorisation signature.Authorisation `json:"authorisation"`
	From          account.Name            `json:"from"`
	To            account.Name            `json:"to"`
	Bytes         int64                   `json:"bytes"`
	Memo          string                  `json:"memo"`
}

// Transfer - ramtransfer
func (r *Resource) Transfer(arguments *TransferArguments, reply *host.Receipt) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	unsigned := *arguments
	unsigned.Authorisation = signature.Authorisation{}
	if err := signature.Check(r.verifier, TransferMethod, unsigned, arguments.Authorisation); nil != err {
		return err
	}

	r.Log.Infof("ram transfer: %s -> %s  bytes: %d", arguments.From, arguments.To, arguments.Bytes)

	receipt, err := r.resources.RAMTransfer(arguments.Authorisation.Signer, arguments.From, arguments.To, arguments.Bytes, arguments.Memo)
	if nil != err {
		return err
	}
	*reply = *receipt
	return nil
}

// ---

// BuyArguments - buy RAM bytes for a receiver
type BuyArguments struct {
	Authorisation signature.Authorisation `json:"authorisation"`
	Payer         account.Name            `json:"payer"`
	Receiver      account.Name            `json:"receiver"`
	Bytes         int64                   `json:"bytes"`
}

// Buy - buyrambytes
func (r *Resource) Buy(arguments *BuyArguments, reply *host.Receipt) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	unsigned := *arguments
	unsigned.Authorisation = signature.Authorisation{}
	if err := signature.Check(r.verifier, BuyMethod, unsigned, arguments.Authorisation); nil != err {
		return err
	}

	receipt, err := r.resources.BuyRAM(arguments.Authorisation.Signer, arguments.Payer, arguments.Receiver, arguments.Bytes)
	if nil != err {
		return err
	}
	*reply = *receipt
	return nil
}

// ---

// BalanceArguments - account to read
type BalanceArguments struct {
	Owner account.Name `json:"owner"`
}

// BalanceReply - RAM held by the account
type BalanceReply struct {
	Owner account.Name `json:"owner"`
	Bytes int64        `json:"bytes"`
}

// Balance - RAM bytes of an account
func (r *Resource) Balance(arguments *BalanceArguments, reply *BalanceReply) error {
	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	bytes, err := r.resources.RAM(arguments.Owner)
	if nil != err {
		return err
	}
	reply.Owner = arguments.Owner
	reply.Bytes = bytes
	return nil
}
