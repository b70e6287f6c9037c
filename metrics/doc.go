// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package metrics - prometheus collectors fed from trigger receipts
//
// a background recorder drains the receipt queue; the collectors are
// served over HTTP when a listen address is configured
package metrics
