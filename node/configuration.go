// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/ram"
	"github.com/bitmark-inc/wramd/wram"
)

// Configuration - the genesis and wiring data of a node
type Configuration struct {
	Contract ContractConfiguration  `gluamapper:"contract" json:"contract"`
	Market   MarketConfiguration    `gluamapper:"market" json:"market"`
	Accounts []AccountConfiguration `gluamapper:"accounts" json:"accounts"`
	Tokens   []TokenConfiguration   `gluamapper:"tokens" json:"tokens"`
}

// ContractConfiguration - the wrapped token contract
type ContractConfiguration struct {
	Account       string `gluamapper:"account" json:"account"`
	Pool          string `gluamapper:"pool" json:"pool"`
	Symbol        string `gluamapper:"symbol" json:"symbol"`
	MaximumSupply int64  `gluamapper:"maximum_supply" json:"maximum_supply"`
	WrapEnabled   bool   `gluamapper:"wrap_enabled" json:"wrap_enabled"`
	UnwrapEnabled bool   `gluamapper:"unwrap_enabled" json:"unwrap_enabled"`
}

// MarketConfiguration - the resource market accounts
type MarketConfiguration struct {
	Account string `gluamapper:"account" json:"account"`
	Reserve string `gluamapper:"reserve" json:"reserve"`
}

// AccountConfiguration - a registered account
//
// an account without a public key cannot sign requests
type AccountConfiguration struct {
	Name      string `gluamapper:"name" json:"name"`
	PublicKey string `gluamapper:"public_key" json:"public_key"`
	RAM       int64  `gluamapper:"ram" json:"ram"`
}

// TokenConfiguration - an additional token created at genesis
//
// symbol and maximum supply are given together e.g. "1000000.0000 EOS"
type TokenConfiguration struct {
	Contract      string `gluamapper:"contract" json:"contract"`
	Issuer        string `gluamapper:"issuer" json:"issuer"`
	MaximumSupply string `gluamapper:"maximum_supply" json:"maximum_supply"`
}

// DefaultConfiguration - the mainnet account names
func DefaultConfiguration() Configuration {
	return Configuration{
		Contract: ContractConfiguration{
			Account:       string(wram.DefaultContract),
			Pool:          string(wram.DefaultPool),
			Symbol:        wram.Symbol.String(),
			MaximumSupply: wram.MigrationMaximumSupply,
			WrapEnabled:   true,
			UnwrapEnabled: false,
		},
		Market: MarketConfiguration{
			Account: string(ram.DefaultCode),
			Reserve: string(ram.DefaultReserve),
		},
	}
}

// system accounts that always exist, no keys
func (c *Configuration) systemAccounts() []account.Name {
	names := []account.Name{
		account.Name(c.Market.Account),
		account.Name(c.Market.Reserve),
		account.Name(c.Contract.Account),
		account.Name(c.Contract.Pool),
	}
	for _, t := range c.Tokens {
		names = append(names, account.Name(t.Contract))
	}
	return account.NameSet(names)
}
