// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/asset"
	"github.com/bitmark-inc/wramd/host"
	"github.com/bitmark-inc/wramd/ledger"
	"github.com/bitmark-inc/wramd/wram"
)

// Tokens - token ledger actions and queries
type Tokens interface {
	Create(signer account.Name, contract account.Name, issuer account.Name, maximum asset.Quantity) (*host.Receipt, error)
	Issue(signer account.Name, contract account.Name, to account.Name, quantity asset.Quantity, memo string) (*host.Receipt, error)
	Retire(signer account.Name, contract account.Name, quantity asset.Quantity, memo string) (*host.Receipt, error)
	Transfer(signer account.Name, contract account.Name, from account.Name, to account.Name, quantity asset.Quantity, memo string) (*host.Receipt, error)
	Open(signer account.Name, contract account.Name, owner account.Name, symbol asset.Symbol, payer account.Name) (*host.Receipt, error)
	Close(signer account.Name, contract account.Name, owner account.Name, symbol asset.Symbol) (*host.Receipt, error)
	Supply(contract account.Name, code asset.SymbolCode) (ledger.Stats, error)
	Balance(contract account.Name, owner account.Name, code asset.SymbolCode) (asset.Quantity, error)
	Balances(contract account.Name, owner account.Name) ([]ledger.Balance, error)
}

// Wrapper - wrap contract actions and status
type Wrapper interface {
	Unwrap(signer account.Name, owner account.Name, bytes int64) (*host.Receipt, error)
	Configure(signer account.Name, wrapEnabled bool, unwrapEnabled bool) (*host.Receipt, error)
	AddEgress(signer account.Name, accounts []account.Name) (*host.Receipt, error)
	RemoveEgress(signer account.Name, accounts []account.Name) (*host.Receipt, error)
	Migrate(signer account.Name) (*host.Receipt, error)
	Status() (wram.Status, error)
	Audit() (wram.AuditReport, error)
}

// Resources - the resource market
type Resources interface {
	RAMTransfer(signer account.Name, from account.Name, to account.Name, bytes int64, memo string) (*host.Receipt, error)
	BuyRAM(signer account.Name, payer account.Name, receiver account.Name, bytes int64) (*host.Receipt, error)
	RAM(owner account.Name) (int64, error)
}

// Statistics - counters for the info request
type Statistics interface {
	Start() time.Time
	Triggers() uint64
	Accounts() int
	Contracts() []account.Name
}

// Verifier - checks request signatures and their nonces
type Verifier interface {
	Verify(name account.Name, message []byte, signature account.Signature) error
	UseNonce(name account.Name, nonce uint64) error
}

var (
	_ Tokens     = (*Node)(nil)
	_ Wrapper    = (*Node)(nil)
	_ Resources  = (*Node)(nil)
	_ Statistics = (*Node)(nil)
	_ Verifier   = (*Node)(nil)
)
