// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wrap

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/host"
	"github.com/bitmark-inc/wramd/node"
	"github.com/bitmark-inc/wramd/rpc/ratelimit"
	"github.com/bitmark-inc/wramd/rpc/signature"
	"github.com/bitmark-inc/wramd/wram"
)

const (
	rateLimitWrap = 200
	rateBurstWrap = 100
)

// limit for the number of accounts in one egress request
const maximumEgressCount = 100

// method names
const (
	UnwrapMethod       = "Wrap.Unwrap"
	ConfigureMethod    = "Wrap.Configure"
	AddEgressMethod    = "Wrap.AddEgress"
	RemoveEgressMethod = "Wrap.RemoveEgress"
	MigrateMethod      = "Wrap.Migrate"
)

// Wrap - type for RPC calls
type Wrap struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	wrapper  node.Wrapper
	verifier node.Verifier
}

// New - create the wrap RPC handler
func New(log *logger.L, wrapper node.Wrapper, verifier node.Verifier) *Wrap {
	return &Wrap{
		Log:      log,
		Limiter:  ratelimit.New(rateLimitWrap, rateBurstWrap),
		wrapper:  wrapper,
		verifier: verifier,
	}
}

// ---

// UnwrapArguments - return tokens for RAM
type UnwrapArguments struct {
	Authorisation signature.Authorisation `json:"authorisation"`
	Owner         account.Name            `json:"owner"`
	Bytes         int64                   `json:"bytes"`
}

// Unwrap - unwrap
func (w *Wrap) Unwrap(arguments *UnwrapArguments, reply *host.Receipt) error {
	if err := ratelimit.Limit(w.Limiter); nil != err {
		return err
	}

	unsigned := *arguments
	unsigned.Authorisation = signature.Authorisation{}
	if err := signature.Check(w.verifier, UnwrapMethod, unsigned, arguments.Authorisation); nil != err {
		return err
	}

	w.Log.Infof("unwrap: owner: %s  bytes: %d", arguments.Owner, arguments.Bytes)

	receipt, err := w.wrapper.Unwrap(arguments.Authorisation.Signer, arguments.Owner, arguments.Bytes)
	if nil != err {
		return err
	}
	*reply = *receipt
	return nil
}

// ---

// ConfigureArguments - the two switches
type ConfigureArguments struct {
	Authorisation signature.Authorisation `json:"authorisation"`
	WrapEnabled   bool                    `json:"wrap_enabled"`
	UnwrapEnabled bool                    `json:"unwrap_enabled"`
}

// Configure - cfg
func (w *Wrap) Configure(arguments *ConfigureArguments, reply *host.Receipt) error {
	if err := ratelimit.Limit(w.Limiter); nil != err {
		return err
	}

	unsigned := *arguments
	unsigned.Authorisation = signature.Authorisation{}
	if err := signature.Check(w.verifier, ConfigureMethod, unsigned, arguments.Authorisation); nil != err {
		return err
	}

	w.Log.Infof("configure: wrap: %t  unwrap: %t", arguments.WrapEnabled, arguments.UnwrapEnabled)

	receipt, err := w.wrapper.Configure(arguments.Authorisation.Signer, arguments.WrapEnabled, arguments.UnwrapEnabled)
	if nil != err {
		return err
	}
	*reply = *receipt
	return nil
}

// ---

// EgressArguments - accounts to add or remove
type EgressArguments struct {
	Authorisation signature.Authorisation `json:"authorisation"`
	Accounts      []account.Name          `json:"accounts"`
}

// AddEgress - addegress
func (w *Wrap) AddEgress(arguments *EgressArguments, reply *host.Receipt) error {
	if err := ratelimit.LimitN(w.Limiter, len(arguments.Accounts), maximumEgressCount); nil != err {
		return err
	}

	unsigned := *arguments
	unsigned.Authorisation = signature.Authorisation{}
	if err := signature.Check(w.verifier, AddEgressMethod, unsigned, arguments.Authorisation); nil != err {
		return err
	}

	receipt, err := w.wrapper.AddEgress(arguments.Authorisation.Signer, arguments.Accounts)
	if nil != err {
		return err
	}
	*reply = *receipt
	return nil
}

// RemoveEgress - removeegress
func (w *Wrap) RemoveEgress(arguments *EgressArguments, reply *host.Receipt) error {
	if err := ratelimit.LimitN(w.Limiter, len(arguments.Accounts), maximumEgressCount); nil != err {
		return err
	}

	unsigned := *arguments
	unsigned.Authorisation = signature.Authorisation{}
	if err := signature.Check(w.verifier, RemoveEgressMethod, unsigned, arguments.Authorisation); nil != err {
		return err
	}

	receipt, err := w.wrapper.RemoveEgress(arguments.Authorisation.Signer, arguments.Accounts)
	if nil != err {
		return err
	}
	*reply = *receipt
	return nil
}

// ---

// MigrateArguments - one-time migration
type MigrateArguments struct {
	Authorisation signature.Authorisation `json:"authorisation"`
}

// Migrate - migrate
func (w *Wrap) Migrate(arguments *MigrateArguments, reply *host.Receipt) error {
	if err := ratelimit.Limit(w.Limiter); nil != err {
		return err
	}

	if err := signature.Check(w.verifier, MigrateMethod, MigrateArguments{}, arguments.Authorisation); nil != err {
		return err
	}

	w.Log.Warnf("migrate requested by: %s", arguments.Authorisation.Signer)

	receipt, err := w.wrapper.Migrate(arguments.Authorisation.Signer)
	if nil != err {
		return err
	}
	*reply = *receipt
	return nil
}

// ---

// StatusArguments - empty arguments for status request
type StatusArguments struct{}

// Status - committed contract state
func (w *Wrap) Status(_ *StatusArguments, reply *wram.Status) error {
	if err := ratelimit.Limit(w.Limiter); nil != err {
		return err
	}

	status, err := w.wrapper.Status()
	if nil != err {
		return err
	}
	*reply = status
	return nil
}

// Audit - status plus the supply and backing checks
func (w *Wrap) Audit(_ *StatusArguments, reply *wram.AuditReport) error {
	if err := ratelimit.Limit(w.Limiter); nil != err {
		return err
	}

	report, err := w.wrapper.Audit()
	if nil != err {
		return err
	}
	if !report.Consistent() {
		w.Log.Criticalf("audit failed: %+v", report)
	}
	*reply = report
	return nil
}
