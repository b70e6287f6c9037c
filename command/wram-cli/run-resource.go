// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/wramd/command/wram-cli/rpccalls"
)

func runRAM(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkName(c, "owner", "")
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.RAM(owner)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runRAMTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	to, err := checkName(c, "to", "")
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
		To:    to,
		Bytes: bytes,
		Memo:  c.String("memo"),
	})
	if nil != err {
		return err
	}
	return printJson(m.w, receipt)
}

func runBuyRAM(c *cli.Context) error {

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

	receiver, err := checkName(c, "receiver", signer)
	if nil != err {
		return err
	}

	receipt, err := client.BuyRAM(signer, receiver, bytes)
	if nil != err {
		return err
	}
	return printJson(m.w, receipt)
}
