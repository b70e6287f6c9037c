// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/fault"
	"github.com/bitmark-inc/wramd/storage"
)

// Context - the state of one action inside a trigger
type Context struct {
	runtime  *Runtime
	trx      storage.Transaction
	trigger  *trigger
	receiver account.Name
	action   Action
	signers  []account.Name
	depth    int
}

// Receiver - account whose code is running
func (ctx *Context) Receiver() account.Name {
	return ctx.receiver
}

// Action - the action being processed
func (ctx *Context) Action() Action {
	return ctx.action
}

// Entry - the action that started the trigger
func (ctx *Context) Entry() Action {
	return ctx.trigger.entry
}

// Sequence - trigger sequence number
func (ctx *Context) Sequence() uint64 {
	return ctx.trigger.sequence
}

// Transaction - the storage transaction of the trigger
func (ctx *Context) Transaction() storage.Transaction {
	return ctx.trx
}

// HasAuth - is the account's authority present
func (ctx *Context) HasAuth(name account.Name) bool {
	for _, s := range ctx.signers {
		if s == name {
			return true
		}
	}
	return false
}

// RequireAuth - fail unless the account's authority is present
func (ctx *Context) RequireAuth(name account.Name) error {
	if !ctx.HasAuth(name) {
		return fault.MissingAuthority
	}
	return nil
}

// IsAccount - does the account exist
func (ctx *Context) IsAccount(name account.Name) bool {
	if nil == ctx.runtime.accounts {
		return false
	}
	return ctx.runtime.accounts.Exists(name)
}

// Inline - derive a context to run an action with actor's authority
//
// allowed when actor is the running receiver, or actor has delegated
// to the running receiver
func (ctx *Context) Inline(actor account.Name, action Action) (*Context, error) {
	if !action.Valid() {
		return nil, fault.InvalidAction
	}
	if ctx.depth+1 > maximumDepth {
		return nil, fault.CallDepthExceeded
	}
	if actor != ctx.receiver && !ctx.runtime.delegated(actor, ctx.receiver) {
		return nil, fault.NotRegisteredDelegate
	}

	ctx.trigger.record(ctx.depth+1, TraceInline, action.Code, action)

	return &Context{
		runtime:  ctx.runtime,
		trx:      ctx.trx,
		trigger:  ctx.trigger,
		receiver: action.Code,
		action:   action,
		signers:  []account.Name{actor},
		depth:    ctx.depth + 1,
	}, nil
}

// Notify - deliver a notification to each recipient's handlers
//
// duplicate recipients and the emitting code account are skipped
func (ctx *Context) Notify(action Action, payload interface{}, recipients ...account.Name) error {
	if ctx.depth+1 > maximumDepth {
		return fault.CallDepthExceeded
	}

	for _, recipient := range account.NameSet(recipients) {
		if recipient == action.Code {
			continue
		}

		handlers := ctx.runtime.subscribers(recipient, action)
		if 0 == len(handlers) {
			continue
		}

		ctx.trigger.record(ctx.depth+1, TraceNotify, recipient, action)

		n := &Context{
			runtime:  ctx.runtime,
			trx:      ctx.trx,
			trigger:  ctx.trigger,
			receiver: recipient,
			action:   action,
			signers:  ctx.signers,
			depth:    ctx.depth + 1,
		}
		for _, h := range handlers {
			err := h(n, payload)
			if nil != err {
				return err
			}
		}
	}
	return nil
}
