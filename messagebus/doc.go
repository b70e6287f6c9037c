// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - in-process queues between the ledger runtime
// and its background observers
//
// a send never blocks the sender: when a queue is full the message is
// dropped and counted
package messagebus
