// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package resource_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/fault"
	"github.com/bitmark-inc/wramd/host"
	"github.com/bitmark-inc/wramd/rpc/fixtures"
	"github.com/bitmark-inc/wramd/rpc/mocks"
	"github.com/bitmark-inc/wramd/rpc/resource"
	"github.com/bitmark-inc/wramd/rpc/signature"
)

func TestTransferWraps(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	public, private := fixtures.KeyPair()
	keys := account.NewKeyring()
	_ = keys.Register("alice", public)

	resources := mocks.NewMockResources(ctl)
	r := resource.New(logger.New(fixtures.LogCategory), resources, fixtures.NewVerifier(keys))

	arg := resource.TransferArguments{
		From:  "alice",
		To:    "eosio.wram",
		Bytes: 2048,
	}
	auth, err := signature.New("alice", private, 1, resource.TransferMethod, arg)
	assert.Nil(t, err, "sign")
	arg.Authorisation = auth

	receipt := &host.Receipt{
		ID: "04",
		Trace: []host.TraceEntry{
			{Kind: host.TraceAction},
			{Kind: host.TraceNotify},
			{Kind: host.TraceInline},
			{Kind: host.TraceInline},
			{Kind: host.TraceInline},
		},
	}
	resources.EXPECT().RAMTransfer(account.Name("alice"), account.Name("alice"), account.Name("eosio.wram"), int64(2048), "").Return(receipt, nil).Times(1)

	var reply host.Receipt
	err = r.Transfer(&arg, &reply)
	assert.Nil(t, err, "wrong transfer")
	assert.Equal(t, 3, reply.Count(host.TraceInline), "wrong inline count")
}

func TestBuy(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	resources := mocks.NewMockResources(ctl)
	verifier := mocks.NewMockVerifier(ctl)
	r := resource.New(logger.New(fixtures.LogCategory), resources, verifier)

	arg := resource.BuyArguments{
		Authorisation: signature.Authorisation{Signer: "bob", Signature: account.Signature{5}},
		Payer:         "bob",
		Receiver:      "eosio.wram",
		Bytes:         100,
	}

	verifier.EXPECT().Verify(account.Name("bob"), gomock.Any(), gomock.Any()).Return(nil).Times(1)
	verifier.EXPECT().UseNonce(account.Name("bob"), gomock.Any()).Return(nil).Times(1)
	resources.EXPECT().BuyRAM(account.Name("bob"), account.Name("bob"), account.Name("eosio.wram"), int64(100)).Return(&host.Receipt{Error: fault.WrapDisabled.Error()}, fault.WrapDisabled).Times(1)

	var reply host.Receipt
	err := r.Buy(&arg, &reply)
	assert.Equal(t, fault.WrapDisabled, err, "wrong buy error")
}

func TestBalance(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	resources := mocks.NewMockResources(ctl)
	verifier := mocks.NewMockVerifier(ctl)
	r := resource.New(logger.New(fixtures.LogCategory), resources, verifier)

	resources.EXPECT().RAM(account.Name("ramdeposit11")).Return(int64(8192), nil).Times(1)
	resources.EXPECT().RAM(account.Name("nobody")).Return(int64(0), fault.RecipientNotFound).Times(1)

	var reply resource.BalanceReply
	err := r.Balance(&resource.BalanceArguments{Owner: "ramdeposit11"}, &reply)
	assert.Nil(t, err, "wrong balance")
	assert.Equal(t, int64(8192), reply.Bytes, "wrong bytes")

	err = r.Balance(&resource.BalanceArguments{Owner: "nobody"}, &reply)
	assert.Equal(t, fault.RecipientNotFound, err, "unknown account")
}
