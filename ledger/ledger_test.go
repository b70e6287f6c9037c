// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/asset"
	"github.com/bitmark-inc/wramd/fault"
	"github.com/bitmark-inc/wramd/host"
	"github.com/bitmark-inc/wramd/ledger"
)

const tokenCode = account.Name("eosio.token")

var (
	eos    = asset.Symbol{Code: "EOS", Precision: 4}
	eosBad = asset.Symbol{Code: "EOS", Precision: 2}
)

func quantity(amount int64) asset.Quantity {
	return asset.NewQuantity(amount, eos)
}

// run one trigger as the given signers
func run(r *host.Runtime, l *ledger.Ledger, action string, signers []account.Name, fn func(ctx *host.Context) error) error {
	_, err := r.Execute(l.Action(action), signers, fn)
	return err
}

// token created with maximum 1,000,000.0000 and 1,000.0000 issued to eosio
func setupLedger(t *testing.T) (*host.Runtime, *ledger.Ledger) {
	r := host.New(testAccounts, nil)
	l := ledger.New(tokenCode)

	err := run(r, l, ledger.CreateAction, []account.Name{tokenCode}, func(ctx *host.Context) error {
		return l.Create(ctx, "eosio", quantity(10000000000))
	})
	if nil != err {
		t.Fatalf("create error: %s", err)
	}
	err = run(r, l, ledger.IssueAction, []account.Name{"eosio"}, func(ctx *host.Context) error {
		return l.Issue(ctx, "eosio", quantity(10000000), "initial")
	})
	if nil != err {
		t.Fatalf("issue error: %s", err)
	}
	return r, l
}

// supply must equal the sum of balances
func checkInvariant(t *testing.T, l *ledger.Ledger) {
	supply, err := l.Supply(eos.Code)
	assert.Nil(t, err, "supply")
	holdings, err := l.Holdings(eos.Code)
	assert.Nil(t, err, "holdings")
	assert.Equal(t, supply, holdings, "supply == sum of balances")

	stats, err := l.Stats(eos.Code)
	assert.Nil(t, err, "stats")
	assert.True(t, stats.Supply.Amount <= stats.MaximumSupply.Amount, "supply <= maximum")
}

func TestCreate(t *testing.T) {
	setup(t)
	defer teardown(t)

	r, l := setupLedger(t)

	stats, err := l.Stats(eos.Code)
	assert.Nil(t, err, "stats")
	assert.Equal(t, account.Name("eosio"), stats.Issuer, "issuer")
	assert.Equal(t, quantity(10000000000), stats.MaximumSupply, "maximum")

	tests := []struct {
		signer  account.Name
		issuer  account.Name
		maximum asset.Quantity
		err     error
	}{
		{"alice", "eosio", asset.NewQuantity(1, asset.Symbol{Code: "NEW"}), fault.MissingAuthority},
		{tokenCode, "eosio", quantity(1), fault.TokenAlreadyExists},
		{tokenCode, "eosio", asset.NewQuantity(0, asset.Symbol{Code: "NEW"}), fault.InvalidMaximumSupply},
		{tokenCode, "eosio", asset.NewQuantity(asset.MaximumAmount+1, asset.Symbol{Code: "NEW"}), fault.InvalidMaximumSupply},
		{tokenCode, "eosio", asset.NewQuantity(1, asset.Symbol{Code: "new"}), fault.InvalidSymbol},
		{tokenCode, "nobody", asset.NewQuantity(1, asset.Symbol{Code: "NEW"}), fault.RecipientNotFound},
	}
	for i, item := range tests {
		err := run(r, l, ledger.CreateAction, []account.Name{item.signer}, func(ctx *host.Context) error {
			return l.Create(ctx, item.issuer, item.maximum)
		})
		assert.Equal(t, item.err, err, "%d: error", i)
	}
	_, err = l.Stats("NEW")
	assert.Equal(t, fault.TokenNotFound, err, "nothing created")
}

func TestIssue(t *testing.T) {
	setup(t)
	defer teardown(t)

	r, l := setupLedger(t)

	tests := []struct {
		signer   account.Name
		to       account.Name
		quantity asset.Quantity
		memo     string
		err      error
	}{
		{"eosio", "alice", quantity(1), "", fault.IssueToIssuerOnly},
		{"alice", "eosio", quantity(1), "", fault.MissingAuthority},
		{"eosio", "eosio", quantity(0), "", fault.NotPositiveQuantity},
		{"eosio", "eosio", quantity(-5), "", fault.NotPositiveQuantity},
		{"eosio", "eosio", asset.NewQuantity(1, eosBad), "", fault.SymbolPrecisionMismatch},
		{"eosio", "eosio", asset.NewQuantity(1, asset.Symbol{Code: "XYZ"}), "", fault.TokenNotFound},
		{"eosio", "eosio", quantity(10000000000), "", fault.MaximumSupplyExceeded},
		{"eosio", "eosio", quantity(1), strings.Repeat("x", 257), fault.MemoTooLong},
	}
	for i, item := range tests {
		err := run(r, l, ledger.IssueAction, []account.Name{item.signer}, func(ctx *host.Context) error {
			return l.Issue(ctx, item.to, item.quantity, item.memo)
		})
		assert.Equal(t, item.err, err, "%d: error", i)
	}

	// exactly up to the maximum is allowed
	err := run(r, l, ledger.IssueAction, []account.Name{"eosio"}, func(ctx *host.Context) error {
		return l.Issue(ctx, "eosio", quantity(10000000000-10000000), "fill")
	})
	assert.Nil(t, err, "fill to maximum")

	supply, err := l.Supply(eos.Code)
	assert.Nil(t, err, "supply")
	assert.Equal(t, quantity(10000000000), supply, "supply at maximum")
	checkInvariant(t, l)
}

func TestRetire(t *testing.T) {
	setup(t)
	defer teardown(t)

	r, l := setupLedger(t)

	err := run(r, l, ledger.RetireAction, []account.Name{"alice"}, func(ctx *host.Context) error {
		return l.Retire(ctx, quantity(1), "")
	})
	assert.Equal(t, fault.MissingAuthority, err, "not issuer")

	err = run(r, l, ledger.RetireAction, []account.Name{"eosio"}, func(ctx *host.Context) error {
		return l.Retire(ctx, quantity(10000001), "")
	})
	assert.Equal(t, fault.OverdrawnBalance, err, "overdrawn")

	err = run(r, l, ledger.RetireAction, []account.Name{"eosio"}, func(ctx *host.Context) error {
		return l.Retire(ctx, quantity(4000000), "burn")
	})
	assert.Nil(t, err, "retire")

	supply, _ := l.Supply(eos.Code)
	assert.Equal(t, quantity(6000000), supply, "supply")
	checkInvariant(t, l)
}

type blockGuard struct {
	blocked account.Name
}

func (g blockGuard) CheckTransfer(ctx *host.Context, from account.Name, to account.Name, quantity asset.Quantity) error {
	if to == g.blocked {
		return fault.RecipientBlocked
	}
	return nil
}

func TestTransfer(t *testing.T) {
	setup(t)
	defer teardown(t)

	r, l := setupLedger(t)
	l.SetGuard(blockGuard{blocked: "carol"})

	notices := map[account.Name][]ledger.TransferNotice{}
	for _, n := range []account.Name{"eosio", "alice"} {
		receiver := n
		r.Subscribe(receiver, tokenCode, ledger.TransferAction, func(ctx *host.Context, payload interface{}) error {
			notices[receiver] = append(notices[receiver], payload.(ledger.TransferNotice))
			return nil
		})
	}

	err := run(r, l, ledger.TransferAction, []account.Name{"eosio"}, func(ctx *host.Context) error {
		return l.Transfer(ctx, "eosio", "alice", quantity(2500000), "hello")
	})
	assert.Nil(t, err, "transfer")

	balance, err := l.Balance("alice", eos.Code)
	assert.Nil(t, err, "alice balance")
	assert.Equal(t, quantity(2500000), balance, "alice")
	balance, _ = l.Balance("eosio", eos.Code)
	assert.Equal(t, quantity(7500000), balance, "eosio")

	expected := ledger.TransferNotice{From: "eosio", To: "alice", Quantity: quantity(2500000), Memo: "hello"}
	assert.Equal(t, []ledger.TransferNotice{expected}, notices["eosio"], "sender notified")
	assert.Equal(t, []ledger.TransferNotice{expected}, notices["alice"], "recipient notified")

	tests := []struct {
		signer   account.Name
		from     account.Name
		to       account.Name
		quantity asset.Quantity
		err      error
	}{
		{"alice", "alice", "alice", quantity(1), fault.CannotTransferToSelf},
		{"bob", "alice", "bob", quantity(1), fault.MissingAuthority},
		{"alice", "alice", "nobody", quantity(1), fault.RecipientNotFound},
		{"alice", "alice", "bob", quantity(0), fault.NotPositiveQuantity},
		{"alice", "alice", "bob", asset.NewQuantity(1, eosBad), fault.SymbolPrecisionMismatch},
		{"alice", "alice", "bob", asset.NewQuantity(1, asset.Symbol{Code: "XYZ"}), fault.TokenNotFound},
		{"alice", "alice", "bob", quantity(2500001), fault.OverdrawnBalance},
		{"alice", "alice", "carol", quantity(1), fault.RecipientBlocked},
		{"bob", "bob", "alice", quantity(1), fault.NoBalance},
	}
	for i, item := range tests {
		err := run(r, l, ledger.TransferAction, []account.Name{item.signer}, func(ctx *host.Context) error {
			return l.Transfer(ctx, item.from, item.to, item.quantity, "")
		})
		assert.Equal(t, item.err, err, "%d: error", i)
	}

	balance, _ = l.Balance("alice", eos.Code)
	assert.Equal(t, quantity(2500000), balance, "alice unchanged")
	_, err = l.Balance("carol", eos.Code)
	assert.Equal(t, fault.NoBalance, err, "carol never credited")
	checkInvariant(t, l)
}

func TestTransferPayer(t *testing.T) {
	setup(t)
	defer teardown(t)

	r, l := setupLedger(t)

	err := run(r, l, ledger.TransferAction, []account.Name{"eosio", "bob"}, func(ctx *host.Context) error {
		return l.Transfer(ctx, "eosio", "bob", quantity(1), "")
	})
	assert.Nil(t, err, "transfer")
	err = run(r, l, ledger.TransferAction, []account.Name{"eosio"}, func(ctx *host.Context) error {
		return l.Transfer(ctx, "eosio", "alice", quantity(1), "")
	})
	assert.Nil(t, err, "transfer")

	bob, err := l.Balances("bob")
	assert.Nil(t, err, "bob balances")
	assert.Equal(t, []ledger.Balance{{Owner: "bob", Balance: quantity(1), Payer: "bob"}}, bob, "recipient pays")

	alice, err := l.Balances("alice")
	assert.Nil(t, err, "alice balances")
	assert.Equal(t, []ledger.Balance{{Owner: "alice", Balance: quantity(1), Payer: "eosio"}}, alice, "sender pays")
}

func TestOpenClose(t *testing.T) {
	setup(t)
	defer teardown(t)

	r, l := setupLedger(t)

	err := run(r, l, ledger.OpenAction, []account.Name{"alice"}, func(ctx *host.Context) error {
		return l.Open(ctx, "bob", eosBad, "alice")
	})
	assert.Equal(t, fault.SymbolPrecisionMismatch, err, "precision")

	err = run(r, l, ledger.OpenAction, []account.Name{"alice"}, func(ctx *host.Context) error {
		return l.Open(ctx, "nobody", eos, "alice")
	})
	assert.Equal(t, fault.RecipientNotFound, err, "owner missing")

	err = run(r, l, ledger.OpenAction, []account.Name{"alice"}, func(ctx *host.Context) error {
		return l.Open(ctx, "bob", eos, "alice")
	})
	assert.Nil(t, err, "open")

	balance, err := l.Balance("bob", eos.Code)
	assert.Nil(t, err, "opened")
	assert.Equal(t, quantity(0), balance, "zero")

	// open twice is harmless
	err = run(r, l, ledger.OpenAction, []account.Name{"bob"}, func(ctx *host.Context) error {
		return l.Open(ctx, "bob", eos, "bob")
	})
	assert.Nil(t, err, "reopen")

	err = run(r, l, ledger.CloseAction, []account.Name{"alice"}, func(ctx *host.Context) error {
		return l.Close(ctx, "bob", eos)
	})
	assert.Equal(t, fault.MissingAuthority, err, "close by other")

	err = run(r, l, ledger.CloseAction, []account.Name{"eosio"}, func(ctx *host.Context) error {
		return l.Close(ctx, "eosio", eos)
	})
	assert.Equal(t, fault.BalanceNotZero, err, "non zero")

	err = run(r, l, ledger.CloseAction, []account.Name{"bob"}, func(ctx *host.Context) error {
		return l.Close(ctx, "bob", eos)
	})
	assert.Nil(t, err, "close")

	_, err = l.Balance("bob", eos.Code)
	assert.Equal(t, fault.NoBalance, err, "closed")

	err = run(r, l, ledger.CloseAction, []account.Name{"bob"}, func(ctx *host.Context) error {
		return l.Close(ctx, "bob", eos)
	})
	assert.Equal(t, fault.NoBalance, err, "close twice")
}

func TestSetMaximumSupply(t *testing.T) {
	setup(t)
	defer teardown(t)

	r, l := setupLedger(t)

	err := run(r, l, ledger.IssueAction, []account.Name{"eosio"}, func(ctx *host.Context) error {
		return l.SetMaximumSupply(ctx, quantity(9999999))
	})
	assert.Equal(t, fault.MaximumSupplyBelowSupply, err, "below supply")

	err = run(r, l, ledger.IssueAction, []account.Name{"alice"}, func(ctx *host.Context) error {
		return l.SetMaximumSupply(ctx, quantity(20000000))
	})
	assert.Equal(t, fault.MissingAuthority, err, "not issuer")

	err = run(r, l, ledger.IssueAction, []account.Name{"eosio"}, func(ctx *host.Context) error {
		return l.SetMaximumSupply(ctx, quantity(10000000))
	})
	assert.Nil(t, err, "equal to supply")

	stats, _ := l.Stats(eos.Code)
	assert.Equal(t, quantity(10000000), stats.MaximumSupply, "maximum")
}

func TestHolders(t *testing.T) {
	setup(t)
	defer teardown(t)

	r, l := setupLedger(t)

	// a second symbol must not appear in the EOS holder list
	err := run(r, l, ledger.CreateAction, []account.Name{tokenCode}, func(ctx *host.Context) error {
		err := l.Create(ctx, "alice", asset.NewQuantity(100, asset.Symbol{Code: "ABC"}))
		if nil != err {
			return err
		}
		ctx2, err := ctx.Inline(tokenCode, l.Action(ledger.IssueAction))
		if nil != err {
			return err
		}
		return l.Issue(ctx2, "alice", asset.NewQuantity(100, asset.Symbol{Code: "ABC"}), "")
	})
	assert.Equal(t, fault.MissingAuthority, err, "inline as code is not alice")

	err = run(r, l, ledger.CreateAction, []account.Name{tokenCode, "alice"}, func(ctx *host.Context) error {
		err := l.Create(ctx, "alice", asset.NewQuantity(100, asset.Symbol{Code: "ABC"}))
		if nil != err {
			return err
		}
		return l.Issue(ctx, "alice", asset.NewQuantity(100, asset.Symbol{Code: "ABC"}), "")
	})
	assert.Nil(t, err, "create and issue ABC")

	holders, err := l.Holders(eos.Code)
	assert.Nil(t, err, "holders")
	assert.Equal(t, []ledger.Balance{{Owner: "eosio", Balance: quantity(10000000), Payer: "eosio"}}, holders, "EOS holders")

	balances, err := l.Balances("alice")
	assert.Nil(t, err, "alice balances")
	assert.Equal(t, 1, len(balances), "alice holds ABC only")

	_, err = l.Holders("XYZ")
	assert.Equal(t, fault.TokenNotFound, err, "unknown symbol")
	checkInvariant(t, l)
}
