// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/wramd/account"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	public, private, err := account.NewKeyPair()
	if nil != err {
		return err
	}

	return printJson(m.w, identityFile{
		PublicKey:  public.String(),
		PrivateKey: private.String(),
	})
}
