// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package policy - wrap/unwrap switches and the egress blocklist
package policy

import (
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/fault"
	"github.com/bitmark-inc/wramd/host"
	"github.com/bitmark-inc/wramd/storage"
)

// action names
const (
	ConfigureAction    = "cfg"
	AddEgressAction    = "addegress"
	RemoveEgressAction = "removeegress"
)

var configKeySuffix = []byte("config")

// Config - the switches
type Config struct {
	WrapEnabled   bool `json:"wrap_enabled"`
	UnwrapEnabled bool `json:"unwrap_enabled"`
}

// Default - used until the administrator stores a config
var Default = Config{
	WrapEnabled:   true,
	UnwrapEnabled: false,
}

// Store - policy of one contract
type Store struct {
	log      *logger.L
	contract account.Name
}

// New - policy store for a contract
func New(contract account.Name) *Store {
	return &Store{
		log:      logger.New("policy"),
		contract: contract,
	}
}

// Configure - overwrite both switches
func (s *Store) Configure(ctx *host.Context, wrapEnabled bool, unwrapEnabled bool) error {
	if err := ctx.RequireAuth(s.contract); nil != err {
		return err
	}
	config := Config{
		WrapEnabled:   wrapEnabled,
		UnwrapEnabled: unwrapEnabled,
	}
	ctx.Transaction().Put(storage.Pool.Config, s.configKey(), pack(config))
	s.log.Infof("configure: wrap: %t  unwrap: %t", wrapEnabled, unwrapEnabled)
	return nil
}

// AddEgress - block accounts from receiving tokens
func (s *Store) AddEgress(ctx *host.Context, accounts []account.Name) error {
	if err := ctx.RequireAuth(s.contract); nil != err {
		return err
	}
	trx := ctx.Transaction()
	for _, a := range accounts {
		if !a.Valid() {
			return fault.InvalidAccountName
		}
		key := s.egressKey(a)
		if trx.Has(storage.Pool.Egress, key) {
			continue
		}
		trx.Put(storage.Pool.Egress, key, []byte{})
		s.log.Infof("egress add: %s", a)
	}
	return nil
}

// RemoveEgress - unblock accounts
func (s *Store) RemoveEgress(ctx *host.Context, accounts []account.Name) error {
	if err := ctx.RequireAuth(s.contract); nil != err {
		return err
	}
	trx := ctx.Transaction()
	for _, a := range accounts {
		key := s.egressKey(a)
		if !trx.Has(storage.Pool.Egress, key) {
			continue
		}
		trx.Delete(storage.Pool.Egress, key)
		s.log.Infof("egress remove: %s", a)
	}
	return nil
}

// Get - the switches as seen inside a trigger
func (s *Store) Get(ctx *host.Context) Config {
	return unpack(ctx.Transaction().Get(storage.Pool.Config, s.configKey()))
}

// IsBlocked - is the account on the egress list, inside a trigger
func (s *Store) IsBlocked(ctx *host.Context, a account.Name) bool {
	return ctx.Transaction().Has(storage.Pool.Egress, s.egressKey(a))
}

// Current - the committed switches
func (s *Store) Current() Config {
	return unpack(storage.Pool.Config.Get(s.configKey()))
}

// EgressList - the committed blocklist in name order
func (s *Store) EgressList() ([]account.Name, error) {
	prefix := s.egressKey("")
	list := []account.Name{}
	err := storage.Pool.Egress.NewPrefixCursor(prefix).Map(func(key []byte, value []byte) error {
		list = append(list, account.Name(key[len(prefix):]))
		return nil
	})
	return list, err
}

// contract ++ 0x00 ++ "config"
func (s *Store) configKey() []byte {
	key := append(s.contract.Bytes(), 0x00)
	return append(key, configKeySuffix...)
}

// contract ++ 0x00 ++ account
func (s *Store) egressKey(a account.Name) []byte {
	key := append(s.contract.Bytes(), 0x00)
	return append(key, a...)
}

func pack(c Config) []byte {
	b := []byte{0, 0}
	if c.WrapEnabled {
		b[0] = 1
	}
	if c.UnwrapEnabled {
		b[1] = 1
	}
	return b
}

// missing record gives the default
func unpack(b []byte) Config {
	if nil == b {
		return Default
	}
	if 2 != len(b) {
		fault.Panicf("policy: corrupt config record: %x", b)
	}
	return Config{
		WrapEnabled:   0 != b[0],
		UnwrapEnabled: 0 != b[1],
	}
}
