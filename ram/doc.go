// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ram - the resource market
//
// holds the RAM bytes attributed to each account and moves them
// between accounts. Every move notifies both parties so that
// contracts can react to RAM arriving.
//
// prices and order matching are not part of this market: bought
// bytes are drawn directly from the reserve account
package ram
