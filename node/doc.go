// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package node assembles the runtime, the resource market, the token
// ledgers, the policy store and the wrap engine into one daemon
// instance
//
// every mutating call runs as a single trigger signed by one account;
// the genesis trigger is applied once to an empty database
package node
