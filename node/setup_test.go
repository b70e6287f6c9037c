// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/node"
	"github.com/bitmark-inc/wramd/storage"
)

const (
	databaseFileName = "test.leveldb"
	testingDirName   = "testing"
)

func removeFiles() {
	os.RemoveAll(databaseFileName)
	os.RemoveAll(testingDirName)
}

func setup(t *testing.T) {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	openStorage(t)
}

func openStorage(t *testing.T) {
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown() {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

// alice has a key, bob does not
func testConfiguration(t *testing.T) (node.Configuration, account.PrivateKey) {
	public, private, err := account.NewKeyPair()
	if nil != err {
		t.Fatalf("key pair error: %s", err)
	}
	c := node.DefaultConfiguration()
	c.Contract.MaximumSupply = 1000000
	c.Accounts = []node.AccountConfiguration{
		{Name: "alice", PublicKey: public.String(), RAM: 100000},
		{Name: "bob", RAM: 5000},
		{Name: "eosio", RAM: 0},
		{Name: "eosio.ram", RAM: 1000000},
	}
	c.Tokens = []node.TokenConfiguration{
		{Contract: "eosio.token", Issuer: "eosio", MaximumSupply: "1000000.0000 EOS"},
	}
	return c, private
}
