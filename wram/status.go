// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wram

import (
	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/asset"
	"github.com/bitmark-inc/wramd/fault"
	"github.com/bitmark-inc/wramd/policy"
)

// Status - committed state of the contract
//
// Circulating is the supply not held by the pool, it must equal PoolRAM
type Status struct {
	Contract      account.Name   `json:"contract"`
	Pool          account.Name   `json:"pool"`
	Config        policy.Config  `json:"config"`
	Egress        []account.Name `json:"egress"`
	Supply        asset.Quantity `json:"supply"`
	MaximumSupply asset.Quantity `json:"max_supply"`
	PoolTokens    asset.Quantity `json:"pool_tokens"`
	Circulating   asset.Quantity `json:"circulating"`
	PoolRAM       int64          `json:"pool_ram"`
	ContractRAM   int64          `json:"contract_ram"`
}

// AuditReport - status plus the results of the consistency checks
type AuditReport struct {
	Status
	Holdings   asset.Quantity `json:"holdings"`
	Balanced   bool           `json:"balanced"`
	PoolBacked bool           `json:"pool_backed"`
}

// Consistent - both checks passed
func (a AuditReport) Consistent() bool {
	return a.Balanced && a.PoolBacked
}

// Status - read the committed state
//
// callers must not run this concurrently with a trigger
func (e *Engine) Status() (Status, error) {
	stats, err := e.ledger.Stats(e.symbol.Code)
	if nil != err {
		return Status{}, err
	}
	egress, err := e.policy.EgressList()
	if nil != err {
		return Status{}, err
	}

	poolTokens, err := e.ledger.Balance(e.pool, e.symbol.Code)
	if fault.NoBalance == err {
		poolTokens = asset.NewQuantity(0, stats.Supply.Symbol)
	} else if nil != err {
		return Status{}, err
	}

	circulating := stats.Supply
	circulating.Amount -= poolTokens.Amount

	return Status{
		Contract:      e.contract,
		Pool:          e.pool,
		Config:        e.policy.Current(),
		Egress:        egress,
		Supply:        stats.Supply,
		MaximumSupply: stats.MaximumSupply,
		PoolTokens:    poolTokens,
		Circulating:   circulating,
		PoolRAM:       e.market.Balance(e.pool),
		ContractRAM:   e.market.Balance(e.contract),
	}, nil
}

// Audit - check supply against balances and pool holdings
func (e *Engine) Audit() (AuditReport, error) {
	status, err := e.Status()
	if nil != err {
		return AuditReport{}, err
	}
	holdings, err := e.ledger.Holdings(e.symbol.Code)
	if nil != err {
		return AuditReport{}, err
	}

	report := AuditReport{
		Status:     status,
		Holdings:   holdings,
		Balanced:   holdings == status.Supply && status.Supply.Amount <= status.MaximumSupply.Amount,
		PoolBacked: status.Circulating.Amount == status.PoolRAM,
	}
	if !report.Consistent() {
		e.log.Errorf("audit failed: supply: %s  holdings: %s  circulating: %s  pool ram: %d", status.Supply, holdings, status.Circulating, status.PoolRAM)
	}
	return report, nil
}
