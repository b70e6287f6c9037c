// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"github.com/bitmark-inc/wramd/account"
)

// AnyCode - wildcard code account for subscriptions
const AnyCode = account.Name("*")

// MaximumMemoLength - longest memo accepted by any action
const MaximumMemoLength = 256

// Action - an action name qualified by the account whose code runs it
type Action struct {
	Code account.Name `json:"code"`
	Name string       `json:"name"`
}

// NewAction - create an action
func NewAction(code account.Name, name string) Action {
	return Action{
		Code: code,
		Name: name,
	}
}

// String - e.g. eosio::ramtransfer
func (a Action) String() string {
	return a.Code.String() + "::" + a.Name
}

// Valid - code is a real account and the name is present
func (a Action) Valid() bool {
	return a.Code.Valid() && "" != a.Name
}
