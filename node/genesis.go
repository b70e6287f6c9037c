// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"encoding/json"
	"time"

	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/asset"
	"github.com/bitmark-inc/wramd/host"
	"github.com/bitmark-inc/wramd/policy"
	"github.com/bitmark-inc/wramd/storage"
)

// GenesisAction - name of the one time setup trigger
const GenesisAction = "genesis"

var genesisKey = []byte("genesis")

// GenesisRecord - stored once the genesis trigger commits
type GenesisRecord struct {
	Timestamp     time.Time     `json:"timestamp"`
	Configuration Configuration `json:"configuration"`
}

// Genesis - the stored genesis record, false if none
func Genesis() (GenesisRecord, bool) {
	var record GenesisRecord
	data := storage.Pool.Genesis.Get(genesisKey)
	if nil == data {
		return record, false
	}
	err := json.Unmarshal(data, &record)
	if nil != err {
		return record, false
	}
	return record, true
}

// grant RAM, create tokens and store switches once
func (n *Node) genesis() error {
	if storage.Pool.Genesis.Has(genesisKey) {
		n.log.Info("genesis already applied")
		return nil
	}

	c := n.configuration
	contract := n.engine.Contract()

	signers := []account.Name{n.market.Code(), contract}
	for code := range n.ledgers {
		signers = append(signers, code)
	}

	record, err := json.Marshal(GenesisRecord{
		Timestamp:     time.Now().UTC(),
		Configuration: c,
	})
	if nil != err {
		return err
	}

	action := host.NewAction(n.market.Code(), GenesisAction)
	_, err = n.runtime.Execute(action, signers, func(ctx *host.Context) error {
		for _, a := range c.Accounts {
			if a.RAM <= 0 {
				continue
			}
			if err := n.market.Grant(ctx, account.Name(a.Name), a.RAM); nil != err {
				return err
			}
		}

		tokens := n.ledgers[contract]
		maximum := asset.NewQuantity(c.Contract.MaximumSupply, n.engine.Symbol())
		if err := tokens.Create(ctx, contract, maximum); nil != err {
			return err
		}

		for _, t := range c.Tokens {
			maximum, err := asset.ParseQuantity(t.MaximumSupply)
			if nil != err {
				return err
			}
			l := n.ledgers[account.Name(t.Contract)]
			if err := l.Create(ctx, account.Name(t.Issuer), maximum); nil != err {
				return err
			}
		}

		switches := policy.Config{
			WrapEnabled:   c.Contract.WrapEnabled,
			UnwrapEnabled: c.Contract.UnwrapEnabled,
		}
		if policy.Default != switches {
			if err := n.policy.Configure(ctx, switches.WrapEnabled, switches.UnwrapEnabled); nil != err {
				return err
			}
		}

		ctx.Transaction().Put(storage.Pool.Genesis, genesisKey, record)
		return nil
	})
	if nil != err {
		n.log.Criticalf("genesis error: %s", err)
		return err
	}

	n.log.Infof("genesis applied: accounts: %d  tokens: %d", len(c.Accounts), 1+len(c.Tokens))
	return nil
}
