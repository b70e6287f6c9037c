// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/wramd/account"
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

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

// fixed set of accounts
type directory map[account.Name]bool

func (d directory) Exists(name account.Name) bool {
	return d[name]
}

var testAccounts = directory{
	"alice":      true,
	"bob":        true,
	"eosio":      true,
	"eosio.wram": true,
}
