// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wram - RAM wrapped as a fungible token
//
// RAM sent or bought for the contract account is moved into the
// custodial pool and an equal amount of WRAM is minted to the sender.
// Unwrap burns WRAM and releases the same number of bytes from the
// pool back to the holder.
//
// Every path runs inside one host trigger so that the token supply not
// held by the pool always equals the RAM held by the pool.
package wram
