// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/wramd/configuration"
	"github.com/bitmark-inc/wramd/fault"
)

type contract struct {
	Account     string `gluamapper:"account"`
	WrapEnabled bool   `gluamapper:"wrap_enabled"`
	Maximum     int64  `gluamapper:"maximum_supply"`
}

type account struct {
	Name string `gluamapper:"name"`
	RAM  int64  `gluamapper:"ram"`
}

type testConfiguration struct {
	DataDirectory string    `gluamapper:"data_directory"`
	Contract      contract  `gluamapper:"contract"`
	Accounts      []account `gluamapper:"accounts"`
	Listen        []string  `gluamapper:"listen"`
}

const testLua = `
local M = {}

M.data_directory = arg[0] .. ".d"

M.contract = {
    account = "eosio.wram",
    wrap_enabled = true,
    maximum_supply = 1024 * 1024,
}

M.accounts = {
    { name = "alice", ram = 4096 },
    { name = user, ram = 0 },
}

M.listen = { "127.0.0.1:2130", "[::1]:2130" }

return M
`

func writeFile(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "wramd-configuration")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	name := filepath.Join(dir, "test.conf")
	if err := ioutil.WriteFile(name, []byte(text), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return name, func() { _ = os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	name, cleanup := writeFile(t, testLua)
	defer cleanup()

	var c testConfiguration
	err := configuration.ParseConfigurationFile(name, &c, map[string]string{"user": "bob"})
	assert.Nil(t, err, "wrong parse")

	assert.Equal(t, name+".d", c.DataDirectory, "arg[0] not set")
	assert.Equal(t, "eosio.wram", c.Contract.Account, "wrong account")
	assert.True(t, c.Contract.WrapEnabled, "wrong switch")
	assert.Equal(t, int64(1048576), c.Contract.Maximum, "wrong maximum")
	assert.Equal(t, []account{{Name: "alice", RAM: 4096}, {Name: "bob", RAM: 0}}, c.Accounts, "wrong accounts")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.Listen, "wrong listen")
}

func TestParseNotStructPointer(t *testing.T) {
	name, cleanup := writeFile(t, testLua)
	defer cleanup()

	var c testConfiguration
	err := configuration.ParseConfigurationFile(name, c, nil)
	assert.Equal(t, fault.InvalidStructPointer, err, "value accepted")

	var s string
	err = configuration.ParseConfigurationFile(name, &s, nil)
	assert.Equal(t, fault.InvalidStructPointer, err, "string pointer accepted")
}

func TestParseNoTable(t *testing.T) {
	name, cleanup := writeFile(t, `return 42`)
	defer cleanup()

	var c testConfiguration
	err := configuration.ParseConfigurationFile(name, &c, nil)
	assert.Equal(t, fault.ConfigurationNotInitialised, err, "number accepted")
}

func TestParseLuaError(t *testing.T) {
	name, cleanup := writeFile(t, `return {`)
	defer cleanup()

	var c testConfiguration
	err := configuration.ParseConfigurationFile(name, &c, nil)
	assert.NotNil(t, err, "syntax error accepted")
}
