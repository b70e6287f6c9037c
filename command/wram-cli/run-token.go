// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/wramd/asset"
	"github.com/bitmark-inc/wramd/command/wram-cli/rpccalls"
	"github.com/bitmark-inc/wramd/fault"
)

func runSupply(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	contract, err := checkName(c, "contract", "")
	if nil != err {
		return err
	}
	code := asset.SymbolCode(c.String("symbol"))
	if !code.Valid() {
		return fault.InvalidSymbol
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Supply(contract, code)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	contract, err := checkName(c, "contract", "")
	if nil != err {
		return err
	}
	owner, err := checkName(c, "owner", "")
	if nil != err {
		return err
	}
	code := asset.SymbolCode(c.String("symbol"))
	if "" != code && !code.Valid() {
		return fault.InvalidSymbol
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Balance(contract, owner, code)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	contract, err := checkName(c, "contract", "")
	if nil != err {
		return err
	}
	issuer, err := checkName(c, "issuer", "")
	if nil != err {
		return err
	}
	maximum := c.String("maximum")
	if "" == maximum {
		return fault.InvalidMaximumSupply
	}

	client, _, err := connectSigned(m)
	if nil != err {
		return err
	}
	defer client.Close()

	receipt, err := client.Create(&rpccalls.CreateData{
		Contract:      contract,
		Issuer:        issuer,
		MaximumSupply: maximum,
	})
	if nil != err {
		return err
	}
	return printJson(m.w, receipt)
}

func runIssue(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	contract, err := checkName(c, "contract", "")
	if nil != err {
		return err
	}
	quantity, err := checkQuantity(c)
	if nil != err {
		return err
	}

	client, signer, err := connectSigned(m)
	if nil != err {
		return err
	}
	defer client.Close()

	to, err := checkName(c, "to", signer)
	if nil != err {
		return err
	}

	receipt, err := client.Issue(&rpccalls.SupplyData{
		Contract: contract,
		To:       to,
		Quantity: quantity,
		Memo:     c.String("memo"),
	})
	if nil != err {
		return err
	}
	return printJson(m.w, receipt)
}

func runRetire(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	contract, err := checkName(c, "contract", "")
	if nil != err {
		return err
	}
	quantity, err := checkQuantity(c)
	if nil != err {
		return err
	}

	client, _, err := connectSigned(m)
	if nil != err {
		return err
	}
	defer client.Close()

	receipt, err := client.Retire(&rpccalls.SupplyData{
		Contract: contract,
		Quantity: quantity,
		Memo:     c.String("memo"),
	})
	if nil != err {
		return err
	}
	return printJson(m.w, receipt)
}

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	contract, err := checkName(c, "contract", "")
	if nil != err {
		return err
	}
	to, err := checkName(c, "to", "")
	if nil != err {
		return err
	}
	quantity, err := checkQuantity(c)
	if nil != err {
		return err
	}

	client, signer, err := connectSigned(m)
	if nil != err {
		return err
	}
	defer client.Close()

	if m.verbose {
		fmt.Fprintf(m.e, "transfer: %s  from: %s  to: %s\n", quantity, signer, to)
	}

	receipt, err := client.Transfer(&rpccalls.TransferData{
		Contract: contract,
		From:     signer,
		To:       to,
		Quantity: quantity,
		Memo:     c.String("memo"),
	})
	if nil != err {
		return err
	}
	return printJson(m.w, receipt)
}

func runOpen(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	contract, err := checkName(c, "contract", "")
	if nil != err {
		return err
	}
	owner, err := checkName(c, "owner", "")
	if nil != err {
		return err
	}
	symbol, err := asset.ParseSymbol(c.String("symbol"))
	if nil != err {
		return err
	}

	client, signer, err := connectSigned(m)
	if nil != err {
		return err
	}
	defer client.Close()

	receipt, err := client.OpenRow(&rpccalls.RowData{
		Contract: contract,
		Owner:    owner,
		Symbol:   symbol,
		Payer:    signer,
	})
	if nil != err {
		return err
	}
	return printJson(m.w, receipt)
}

func runClose(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	contract, err := checkName(c, "contract", "")
	if nil != err {
		return err
	}
	symbol, err := asset.ParseSymbol(c.String("symbol"))
	if nil != err {
		return err
	}

	client, signer, err := connectSigned(m)
	if nil != err {
		return err
	}
	defer client.Close()

	receipt, err := client.CloseRow(&rpccalls.RowData{
		Contract: contract,
		Owner:    signer,
		Symbol:   symbol,
	})
	if nil != err {
		return err
	}
	return printJson(m.w, receipt)
}
