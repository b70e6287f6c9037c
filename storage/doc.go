// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix
// 2. ++       = concatenation of byte data
// 3. code     = token contract account name
// 4. owner    = account name
// 5. symbol   = symbol code e.g. WRAM
// 6. amount   = big endian uint64 (8 bytes)
//
// Token ledger:
//
//   A ++ code ++ 0x00 ++ owner ++ 0x00 ++ symbol - account balance
//                                data: amount ++ payer
//   S ++ code ++ 0x00 ++ symbol  - token stats
//                                data: supply ++ max supply ++ precision(1 byte) ++ issuer
//
// Policy:
//
//   C ++ contract ++ 0x00 ++ "config" - wrap/unwrap switches
//                                data: wrap(1 byte) ++ unwrap(1 byte)
//   E ++ contract ++ 0x00 ++ account  - egress blocklist
//                                data: empty
//
// Resources:
//
//   R ++ account               - RAM bytes held
//                                data: amount
//
// Requests:
//
//   N ++ signer                - highest request nonce accepted
//                                data: nonce
//
// Genesis:
//
//   G ++ "genesis"             - time the ledger was initialised
//                                data: unix seconds
//
// Testing:
//   Z ++ key                   - testing data
//
// Schema:
//   0x00 ++ "schema"           - layout version
//                                data: big endian uint32
package storage
