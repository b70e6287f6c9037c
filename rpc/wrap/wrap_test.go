// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wrap_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/asset"
	"github.com/bitmark-inc/wramd/fault"
	"github.com/bitmark-inc/wramd/host"
	"github.com/bitmark-inc/wramd/policy"
	"github.com/bitmark-inc/wramd/rpc/fixtures"
	"github.com/bitmark-inc/wramd/rpc/mocks"
	"github.com/bitmark-inc/wramd/rpc/signature"
	"github.com/bitmark-inc/wramd/rpc/wrap"
	"github.com/bitmark-inc/wramd/wram"
)

func TestUnwrap(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	public, private := fixtures.KeyPair()
	keys := account.NewKeyring()
	_ = keys.Register("alice", public)

	wrapper := mocks.NewMockWrapper(ctl)
	w := wrap.New(logger.New(fixtures.LogCategory), wrapper, fixtures.NewVerifier(keys))

	arg := wrap.UnwrapArguments{
		Owner: "alice",
		Bytes: 4096,
	}
	auth, err := signature.New("alice", private, 1, wrap.UnwrapMethod, arg)
	assert.Nil(t, err, "sign")
	arg.Authorisation = auth

	receipt := &host.Receipt{ID: "01", Sequence: 3}
	wrapper.EXPECT().Unwrap(account.Name("alice"), account.Name("alice"), int64(4096)).Return(receipt, nil).Times(1)

	var reply host.Receipt
	err = w.Unwrap(&arg, &reply)
	assert.Nil(t, err, "wrong unwrap")
	assert.Equal(t, uint64(3), reply.Sequence, "wrong sequence")

	// bob's key is unknown
	arg.Authorisation.Signer = "bob"
	err = w.Unwrap(&arg, &reply)
	assert.Equal(t, fault.RecipientNotFound, err, "unknown signer accepted")
}

func TestUnwrapDisabled(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	wrapper := mocks.NewMockWrapper(ctl)
	verifier := mocks.NewMockVerifier(ctl)
	w := wrap.New(logger.New(fixtures.LogCategory), wrapper, verifier)

	arg := wrap.UnwrapArguments{
		Authorisation: signature.Authorisation{Signer: "bob", Signature: account.Signature{9}},
		Owner:         "bob",
		Bytes:         1,
	}

	verifier.EXPECT().Verify(account.Name("bob"), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	verifier.EXPECT().UseNonce(account.Name("bob"), uint64(0)).Return(nil).Times(1)
	wrapper.EXPECT().Unwrap(account.Name("bob"), account.Name("bob"), int64(1)).Return(&host.Receipt{Error: fault.UnwrapDisabled.Error()}, fault.UnwrapDisabled).Times(1)

	var reply host.Receipt
	err := w.Unwrap(&arg, &reply)
	assert.Equal(t, fault.UnwrapDisabled, err, "wrong error")
	assert.True(t, fault.IsErrDisabled(err), "not a disabled error")
}

func TestConfigure(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	wrapper := mocks.NewMockWrapper(ctl)
	verifier := mocks.NewMockVerifier(ctl)
	w := wrap.New(logger.New(fixtures.LogCategory), wrapper, verifier)

	arg := wrap.ConfigureArguments{
		Authorisation: signature.Authorisation{Signer: "eosio.wram", Signature: account.Signature{1}},
		WrapEnabled:   true,
		UnwrapEnabled: true,
	}

	verifier.EXPECT().Verify(account.Name("eosio.wram"), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	verifier.EXPECT().UseNonce(account.Name("eosio.wram"), gomock.Any()).Return(nil).Times(1)
	wrapper.EXPECT().Configure(account.Name("eosio.wram"), true, true).Return(&host.Receipt{ID: "02"}, nil).Times(1)

	var reply host.Receipt
	err := w.Configure(&arg, &reply)
	assert.Nil(t, err, "wrong configure")
	assert.Equal(t, "02", reply.ID, "wrong receipt")
}

func TestEgressCount(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	wrapper := mocks.NewMockWrapper(ctl)
	verifier := mocks.NewMockVerifier(ctl)
	w := wrap.New(logger.New(fixtures.LogCategory), wrapper, verifier)

	var reply host.Receipt

	empty := wrap.EgressArguments{
		Authorisation: signature.Authorisation{Signer: "eosio.wram", Signature: account.Signature{1}},
	}
	err := w.AddEgress(&empty, &reply)
	assert.Equal(t, fault.InvalidCount, err, "empty list accepted")

	accounts := []account.Name{"binance", "okx"}
	arg := wrap.EgressArguments{
		Authorisation: empty.Authorisation,
		Accounts:      accounts,
	}
	verifier.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	verifier.EXPECT().UseNonce(account.Name("eosio.wram"), gomock.Any()).Return(nil).Times(2)
	wrapper.EXPECT().AddEgress(account.Name("eosio.wram"), accounts).Return(&host.Receipt{}, nil).Times(1)
	wrapper.EXPECT().RemoveEgress(account.Name("eosio.wram"), accounts).Return(&host.Receipt{}, nil).Times(1)

	err = w.AddEgress(&arg, &reply)
	assert.Nil(t, err, "wrong add")
	err = w.RemoveEgress(&arg, &reply)
	assert.Nil(t, err, "wrong remove")
}

func TestMigrate(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	public, private := fixtures.KeyPair()
	keys := account.NewKeyring()
	_ = keys.Register("eosio.wram", public)

	wrapper := mocks.NewMockWrapper(ctl)
	w := wrap.New(logger.New(fixtures.LogCategory), wrapper, fixtures.NewVerifier(keys))

	first, err := signature.New("eosio.wram", private, 10, wrap.MigrateMethod, wrap.MigrateArguments{})
	assert.Nil(t, err, "sign first")
	second, err := signature.New("eosio.wram", private, 11, wrap.MigrateMethod, wrap.MigrateArguments{})
	assert.Nil(t, err, "sign second")

	wrapper.EXPECT().Migrate(account.Name("eosio.wram")).Return(&host.Receipt{ID: "03"}, nil).Times(1)
	wrapper.EXPECT().Migrate(account.Name("eosio.wram")).Return(&host.Receipt{Error: fault.AlreadyMigrated.Error()}, fault.AlreadyMigrated).Times(1)

	var reply host.Receipt
	err = w.Migrate(&wrap.MigrateArguments{Authorisation: first}, &reply)
	assert.Nil(t, err, "first migrate")

	err = w.Migrate(&wrap.MigrateArguments{Authorisation: first}, &reply)
	assert.Equal(t, fault.ReplayedRequest, err, "resent request")

	err = w.Migrate(&wrap.MigrateArguments{Authorisation: second}, &reply)
	assert.Equal(t, fault.AlreadyMigrated, err, "second migrate")
}

func TestStatusAndAudit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	wrapper := mocks.NewMockWrapper(ctl)
	verifier := mocks.NewMockVerifier(ctl)
	w := wrap.New(logger.New(fixtures.LogCategory), wrapper, verifier)

	symbol, _ := asset.NewSymbol("WRAM", 0)
	status := wram.Status{
		Contract:    "eosio.wram",
		Pool:        "ramdeposit11",
		Config:      policy.Config{WrapEnabled: true},
		Supply:      asset.NewQuantity(500, symbol),
		Circulating: asset.NewQuantity(200, symbol),
		PoolRAM:     200,
	}
	report := wram.AuditReport{
		Status:     status,
		Holdings:   asset.NewQuantity(500, symbol),
		Balanced:   true,
		PoolBacked: false,
	}

	wrapper.EXPECT().Status().Return(status, nil).Times(1)
	wrapper.EXPECT().Audit().Return(report, nil).Times(1)

	var s wram.Status
	err := w.Status(&wrap.StatusArguments{}, &s)
	assert.Nil(t, err, "wrong status")
	assert.Equal(t, status, s, "wrong status value")

	var a wram.AuditReport
	err = w.Audit(&wrap.StatusArguments{}, &a)
	assert.Nil(t, err, "failed audit is still reported")
	assert.False(t, a.Consistent(), "inconsistent report passed")
}
