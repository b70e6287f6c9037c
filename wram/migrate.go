// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wram

import (
	"github.com/bitmark-inc/wramd/asset"
	"github.com/bitmark-inc/wramd/fault"
	"github.com/bitmark-inc/wramd/host"
	"github.com/bitmark-inc/wramd/ledger"
)

// migration targets
const (
	MigrationMaximumSupply = int64(274877906944) // 256 GiB
	MigrationLiquidity     = int64(137438953472) // 128 GiB
)

// Migrate - move to pool backed supply, once only
//
// raises the ceiling, burns what the contract holds, moves the RAM
// still held by the contract into the pool and seeds the pool with
// liquidity tokens
func (e *Engine) Migrate(ctx *host.Context) error {
	if err := ctx.RequireAuth(e.contract); nil != err {
		return err
	}

	stats, err := e.ledger.StatsIn(ctx, e.symbol.Code)
	if nil != err {
		return err
	}
	if MigrationMaximumSupply == stats.MaximumSupply.Amount {
		return fault.AlreadyMigrated
	}

	inline, err := ctx.Inline(e.contract, e.ledger.Action(ledger.SetMaximumSupplyAction))
	if nil != err {
		return err
	}
	err = e.ledger.SetMaximumSupply(inline, asset.NewQuantity(MigrationMaximumSupply, e.symbol))
	if nil != err {
		return err
	}

	held := e.ledger.BalanceIn(ctx, e.contract, e.symbol.Code)
	if held > 0 {
		err = e.retire(ctx, asset.NewQuantity(held, e.symbol), "migrate")
		if nil != err {
			return err
		}
	}

	stats, err = e.ledger.StatsIn(ctx, e.symbol.Code)
	if nil != err {
		return err
	}
	if stats.Supply.Amount > 0 {
		err = e.ramTransfer(ctx, e.contract, e.pool, stats.Supply.Amount, IgnoreMemo)
		if nil != err {
			return err
		}
	}

	liquidity := asset.NewQuantity(MigrationLiquidity, e.symbol)
	err = e.issue(ctx, liquidity, "migrate")
	if nil != err {
		return err
	}
	err = e.transfer(ctx, e.pool, liquidity, "migrate")
	if nil != err {
		return err
	}

	e.log.Infof("migrated: retired: %d  moved: %d  liquidity: %s", held, stats.Supply.Amount, liquidity)
	return nil
}
