// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/command/wram-cli/rpccalls"
	"github.com/bitmark-inc/wramd/fault"
)

// same layout as written by: wramd generate-identity
type identityFile struct {
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// read the signing key and check it matches the stored public key
func loadIdentity(m *metadata) (*rpccalls.Identity, error) {
	if "" == m.signer {
		return nil, ErrSignerRequired
	}
	signer, err := account.NewName(m.signer)
	if nil != err {
		return nil, err
	}

	data, err := ioutil.ReadFile(m.identityFile)
	if nil != err {
		return nil, err
	}
	var id identityFile
	if err := json.Unmarshal(data, &id); nil != err {
		return nil, fault.InvalidIdentity
	}

	privateKey, err := account.PrivateKeyFromBase58(id.PrivateKey)
	if nil != err {
		return nil, err
	}
	if "" != id.PublicKey && privateKey.PublicKey().String() != id.PublicKey {
		return nil, fault.InvalidIdentity
	}

	if m.verbose {
		fmt.Fprintf(m.e, "signer: %s  public key: %s\n", signer, privateKey.PublicKey())
	}

	return &rpccalls.Identity{
		Signer:     signer,
		PrivateKey: privateKey,
	}, nil
}

// connect for a read only request
func connect(m *metadata) (*rpccalls.Client, error) {
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.connect)
	}
	return rpccalls.NewClient(m.connect, m.fingerprint, nil, m.verbose, m.e)
}

// connect with a signing identity
func connectSigned(m *metadata) (*rpccalls.Client, account.Name, error) {
	identity, err := loadIdentity(m)
	if nil != err {
		return nil, "", err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.connect)
	}
	client, err := rpccalls.NewClient(m.connect, m.fingerprint, identity, m.verbose, m.e)
	if nil != err {
		return nil, "", err
	}
	return client, identity.Signer, nil
}

// an account name flag, empty means use the fallback
func checkName(c *cli.Context, flag string, fallback account.Name) (account.Name, error) {
	s := c.String(flag)
	if "" == s {
		if "" == fallback {
			return "", fmt.Errorf("%s: %s", flag, fault.InvalidAccountName)
		}
		return fallback, nil
	}
	return account.NewName(s)
}

func checkBytes(c *cli.Context) (int64, error) {
	bytes := c.Int64("bytes")
	if bytes <= 0 {
		return 0, ErrBytesRequired
	}
	return bytes, nil
}

func checkQuantity(c *cli.Context) (string, error) {
	quantity := c.String("quantity")
	if "" == quantity {
		return "", ErrQuantityRequired
	}
	return quantity, nil
}
