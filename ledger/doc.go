// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - a fungible token ledger run by one code account
//
// each ledger keeps a stats record per symbol and a balance record per
// (owner, symbol). Every mutator moves the same amount on both sides
// so that supply always equals the sum of balances.
package ledger
