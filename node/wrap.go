// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/host"
	"github.com/bitmark-inc/wramd/policy"
	"github.com/bitmark-inc/wramd/wram"
)

// Unwrap - burn tokens and release RAM to owner
func (n *Node) Unwrap(signer account.Name, owner account.Name, bytes int64) (*host.Receipt, error) {
	return n.execute(n.engine.Action(wram.UnwrapAction), signer, func(ctx *host.Context) error {
		return n.engine.Unwrap(ctx, owner, bytes)
	})
}

// Configure - set both policy switches
func (n *Node) Configure(signer account.Name, wrapEnabled bool, unwrapEnabled bool) (*host.Receipt, error) {
	return n.execute(n.engine.Action(policy.ConfigureAction), signer, func(ctx *host.Context) error {
		return n.policy.Configure(ctx, wrapEnabled, unwrapEnabled)
	})
}

// AddEgress - block accounts from receiving tokens
func (n *Node) AddEgress(signer account.Name, accounts []account.Name) (*host.Receipt, error) {
	return n.execute(n.engine.Action(policy.AddEgressAction), signer, func(ctx *host.Context) error {
		return n.policy.AddEgress(ctx, accounts)
	})
}

// RemoveEgress - unblock accounts
func (n *Node) RemoveEgress(signer account.Name, accounts []account.Name) (*host.Receipt, error) {
	return n.execute(n.engine.Action(policy.RemoveEgressAction), signer, func(ctx *host.Context) error {
		return n.policy.RemoveEgress(ctx, accounts)
	})
}

// Migrate - the one time move to pool backed supply
func (n *Node) Migrate(signer account.Name) (*host.Receipt, error) {
	return n.execute(n.engine.Action(wram.MigrateAction), signer, func(ctx *host.Context) error {
		return n.engine.Migrate(ctx)
	})
}

// Status - current contract state
func (n *Node) Status() (wram.Status, error) {
	var status wram.Status
	err := n.runtime.Query(func() error {
		var err error
		status, err = n.engine.Status()
		return err
	})
	return status, err
}

// Audit - status with the consistency checks
func (n *Node) Audit() (wram.AuditReport, error) {
	var report wram.AuditReport
	err := n.runtime.Query(func() error {
		var err error
		report, err = n.engine.Audit()
		return err
	})
	return report, err
}
