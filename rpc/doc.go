// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - start the JSON RPC and HTTPS listeners that give
// clients access to the token, wrap and resource actions
//
// mutating calls carry an Authorisation signed by the acting account
// see rpc/signature for the message format
package rpc
