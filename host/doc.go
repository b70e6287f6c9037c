// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package host - the atomic execution runtime
//
// every externally requested action runs as one trigger: a single
// storage transaction under the runtime write lock. Inline actions
// and notifications raised by the action run synchronously inside the
// same trigger, so either every state change of the trigger is
// committed or none is.
//
// Notifications are dispatched through a table keyed by
// (receiver, code, action); AnyCode subscribes to an action name
// raised by any code account.
package host
