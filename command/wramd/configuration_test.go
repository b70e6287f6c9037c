// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func copySample(t *testing.T) (string, string) {
	dir, err := ioutil.TempDir("", "wramd-conf")
	assert.Nil(t, err, "temp dir")

	sample, err := ioutil.ReadFile("wramd.conf.sample")
	assert.Nil(t, err, "read sample")

	name := filepath.Join(dir, "wramd.conf")
	err = ioutil.WriteFile(name, sample, 0600)
	assert.Nil(t, err, "write conf")

	return dir, name
}

func TestGetConfiguration(t *testing.T) {
	dir, name := copySample(t)
	defer os.RemoveAll(dir)

	c, err := getConfiguration(name)
	assert.Nil(t, err, "configuration")

	assert.Equal(t, filepath.Join(dir, "data"), c.Database.Directory, "database directory")
	assert.Equal(t, filepath.Join(dir, "data", "wramd.leveldb"), c.Database.Name, "database name")
	assert.Equal(t, filepath.Join(dir, "log"), c.Logging.Directory, "log directory")
	assert.Equal(t, uint64(50), c.ClientRPC.MaximumConnections, "rpc connections")
	assert.Equal(t, 2, len(c.Accounts), "accounts")
	assert.Equal(t, "eosio.wram", c.Contract.Account, "contract")

	_, err = os.Stat(c.Logging.Directory)
	assert.Nil(t, err, "log directory created")
}

func TestGetConfigurationNoDataDirectory(t *testing.T) {
	dir, err := ioutil.TempDir("", "wramd-conf")
	assert.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "wramd.conf")
	err = ioutil.WriteFile(name, []byte("return {}\n"), 0600)
	assert.Nil(t, err, "write conf")

	_, err = getConfiguration(name)
	assert.NotNil(t, err, "blank data directory")
}
