// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/host"
	"github.com/bitmark-inc/wramd/rpc/wrap"
	"github.com/bitmark-inc/wramd/wram"
)

// Unwrap - return wrapped tokens for RAM
func (client *Client) Unwrap(owner account.Name, bytes int64) (*host.Receipt, error) {
	args := wrap.UnwrapArguments{
		Owner: owner,
		Bytes: bytes,
	}
	auth, err := client.authorise(wrap.UnwrapMethod, args)
	if nil != err {
		return nil, err
	}
	args.Authorisation = auth

	var reply host.Receipt
	if err := client.call(wrap.UnwrapMethod, &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Configure - switch wrap and unwrap on or off
func (client *Client) Configure(wrapEnabled bool, unwrapEnabled bool) (*host.Receipt, error) {
	args := wrap.ConfigureArguments{
		WrapEnabled:   wrapEnabled,
		UnwrapEnabled: unwrapEnabled,
	}
	auth, err := client.authorise(wrap.ConfigureMethod, args)
	if nil != err {
		return nil, err
	}
	args.Authorisation = auth

	var reply host.Receipt
	if err := client.call(wrap.ConfigureMethod, &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Egress - add to or remove from the egress list
func (client *Client) Egress(add bool, accounts []account.Name) (*host.Receipt, error) {
	method := wrap.RemoveEgressMethod
	if add {
		method = wrap.AddEgressMethod
	}

	args := wrap.EgressArguments{
		Accounts: accounts,
	}
	auth, err := client.authorise(method, args)
	if nil != err {
		return nil, err
	}
	args.Authorisation = auth

	var reply host.Receipt
	if err := client.call(method, &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Migrate - one time move of legacy RAM into the pool
func (client *Client) Migrate() (*host.Receipt, error) {
	args := wrap.MigrateArguments{}
	auth, err := client.authorise(wrap.MigrateMethod, args)
	if nil != err {
		return nil, err
	}
	args.Authorisation = auth

	var reply host.Receipt
	if err := client.call(wrap.MigrateMethod, &args, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Status - contract configuration and totals
func (client *Client) Status() (*wram.Status, error) {
	var reply wram.Status
	if err := client.call("Wrap.Status", &wrap.StatusArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Audit - status plus the consistency checks
func (client *Client) Audit() (*wram.AuditReport, error) {
	var reply wram.AuditReport
	if err := client.call("Wrap.Audit", &wrap.StatusArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
