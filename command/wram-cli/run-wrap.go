// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/command/wram-cli/rpccalls"
)

// wrapping is a RAM transfer to the contract account
func runWrap(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	contract, err := checkName(c, "contract", "")
	if nil != err {
		return err
	}
	bytes, err := checkBytes(c)
	if nil != err {
		return err
	}

	client, signer, err := connectSigned(m)
	if nil != err {
		return err
	}
	defer client.Close()

	receipt, err := client.RAMTransfer(&rpccalls.RAMTransferData{
		From:  signer,
		To:    contract,
		Bytes: bytes,
		Memo:  c.String("memo"),
	})
	if nil != err {
		return err
	}
	return printJson(m.w, receipt)
}

func runUnwrap(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	bytes, err := checkBytes(c)
	if nil != err {
		return err
	}

	client, signer, err := connectSigned(m)
	if nil != err {
		return err
	}
	defer client.Close()

	receipt, err := client.Unwrap(signer, bytes)
	if nil != err {
		return err
	}
	return printJson(m.w, receipt)
}

func runConfigure(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, _, err := connectSigned(m)
	if nil != err {
		return err
	}
	defer client.Close()

	receipt, err := client.Configure(c.Bool("wrap"), c.Bool("unwrap"))
	if nil != err {
		return err
	}
	return printJson(m.w, receipt)
}

func runAddEgress(c *cli.Context) error {
	return egress(c, true)
}

func runRemoveEgress(c *cli.Context) error {
	return egress(c, false)
}

func egress(c *cli.Context, add bool) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == c.NArg() {
		return ErrNoAccounts
	}
	accounts := make([]account.Name, 0, c.NArg())
	for _, s := range c.Args() {
		name, err := account.NewName(s)
		if nil != err {
			return err
		}
		accounts = append(accounts, name)
	}

	client, _, err := connectSigned(m)
	if nil != err {
		return err
	}
	defer client.Close()

	receipt, err := client.Egress(add, accounts)
	if nil != err {
		return err
	}
	return printJson(m.w, receipt)
}

func runMigrate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, _, err := connectSigned(m)
	if nil != err {
		return err
	}
	defer client.Close()

	receipt, err := client.Migrate()
	if nil != err {
		return err
	}
	return printJson(m.w, receipt)
}
