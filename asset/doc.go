// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - token symbols and quantities
//
// a symbol is a 1..7 character upper case code plus a decimal
// precision, a quantity is a signed integer amount of the smallest
// unit of a symbol
package asset
