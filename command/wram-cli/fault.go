// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/wramd/fault"
)

// common errors - keep in alphabetic order
var (
	ErrBytesRequired    = fault.InvalidError("positive bytes value is required")
	ErrNoAccounts       = fault.InvalidError("at least one account is required")
	ErrQuantityRequired = fault.InvalidError("quantity is required")
	ErrSignerRequired   = fault.InvalidError("signing account is required")
)
