// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"fmt"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/wramd/account"
	"github.com/bitmark-inc/wramd/fault"
	"github.com/bitmark-inc/wramd/messagebus"
	"github.com/bitmark-inc/wramd/storage"
)

// limit on nesting of inline actions and notifications
const maximumDepth = 16

// Directory - the set of existing accounts
type Directory interface {
	Exists(account.Name) bool
}

// Handler - receives a notification
//
// ctx.Receiver() is the subscribed account, any error aborts the whole trigger
type Handler func(ctx *Context, payload interface{}) error

type subscription struct {
	receiver account.Name
	code     account.Name
	action   string
}

// Runtime - serialised trigger execution
type Runtime struct {
	sync.RWMutex
	log       *logger.L
	accounts  Directory
	queue     *messagebus.Queue
	handlers  map[subscription][]Handler
	delegates map[account.Name]map[account.Name]struct{}
	sequence  uint64
}

// New - create a runtime
//
// receipts are sent to queue if it is not nil
func New(accounts Directory, queue *messagebus.Queue) *Runtime {
	return &Runtime{
		log:       logger.New("host"),
		accounts:  accounts,
		queue:     queue,
		handlers:  make(map[subscription][]Handler),
		delegates: make(map[account.Name]map[account.Name]struct{}),
	}
}

// Subscribe - register a notification handler
//
// handlers for the same key run in registration order
func (r *Runtime) Subscribe(receiver account.Name, code account.Name, action string, handler Handler) {
	r.Lock()
	defer r.Unlock()

	s := subscription{
		receiver: receiver,
		code:     code,
		action:   action,
	}
	r.handlers[s] = append(r.handlers[s], handler)
	r.log.Debugf("subscribe: %s  to: %s::%s", receiver, code, action)
}

// Delegate - allow agent's code to send inline actions with owner's authority
func (r *Runtime) Delegate(owner account.Name, agent account.Name) {
	r.Lock()
	defer r.Unlock()

	agents, ok := r.delegates[owner]
	if !ok {
		agents = make(map[account.Name]struct{})
		r.delegates[owner] = agents
	}
	agents[agent] = struct{}{}
	r.log.Infof("delegate: %s  to: %s", owner, agent)
}

// Sequence - number of triggers started
func (r *Runtime) Sequence() uint64 {
	r.RLock()
	defer r.RUnlock()
	return r.sequence
}

// Execute - run one trigger atomically
//
// commits when fn returns nil, otherwise aborts; a panic aborts and is
// re-raised
func (r *Runtime) Execute(action Action, signers []account.Name, fn func(ctx *Context) error) (*Receipt, error) {
	if !action.Valid() {
		return nil, fault.InvalidAction
	}

	r.Lock()
	defer r.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nil, err
	}

	r.sequence += 1
	t := &trigger{
		sequence: r.sequence,
		entry:    action,
		signers:  account.NameSet(signers),
		started:  time.Now(),
	}
	t.record(0, TraceAction, action.Code, action)

	ctx := &Context{
		runtime:  r,
		trx:      trx,
		trigger:  t,
		receiver: action.Code,
		action:   action,
		signers:  t.signers,
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		trx.Abort()
		if p := recover(); nil != p {
			r.log.Criticalf("trigger: %d  action: %s  panic: %v", t.sequence, action, p)
			r.publish(t.receipt(fmt.Errorf("panic: %v", p)))
			panic(p)
		}
	}()

	err = fn(ctx)
	if nil != err {
		r.log.Debugf("trigger: %d  action: %s  aborted: %s", t.sequence, action, err)
		receipt := t.receipt(err)
		r.publish(receipt)
		return receipt, err
	}

	err = trx.Commit()
	if nil != err {
		r.log.Errorf("trigger: %d  action: %s  commit error: %s", t.sequence, action, err)
		receipt := t.receipt(err)
		r.publish(receipt)
		return receipt, err
	}
	committed = true

	receipt := t.receipt(nil)
	r.log.Infof("trigger: %d  action: %s  id: %s", t.sequence, action, receipt.ID)
	r.publish(receipt)
	return receipt, nil
}

// Query - run read only work that must not overlap a trigger
func (r *Runtime) Query(fn func() error) error {
	r.RLock()
	defer r.RUnlock()
	return fn()
}

// Update - a storage change outside any trigger, no receipt is produced
func (r *Runtime) Update(fn func(trx storage.Transaction) error) error {
	r.Lock()
	defer r.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			trx.Abort()
		}
	}()

	if err := fn(trx); nil != err {
		return err
	}
	if err := trx.Commit(); nil != err {
		return err
	}
	committed = true
	return nil
}

func (r *Runtime) publish(receipt *Receipt) {
	if nil == r.queue {
		return
	}
	if !r.queue.Send("receipt", receipt) {
		r.log.Warnf("receipt queue full, dropped: %s", receipt.ID)
	}
}

// must hold lock
func (r *Runtime) delegated(owner account.Name, agent account.Name) bool {
	agents, ok := r.delegates[owner]
	if !ok {
		return false
	}
	_, ok = agents[agent]
	return ok
}

// must hold lock
func (r *Runtime) subscribers(receiver account.Name, action Action) []Handler {
	specific := r.handlers[subscription{receiver: receiver, code: action.Code, action: action.Name}]
	wildcard := r.handlers[subscription{receiver: receiver, code: AnyCode, action: action.Name}]
	if 0 == len(wildcard) {
		return specific
	}
	h := make([]Handler, 0, len(specific)+len(wildcard))
	h = append(h, specific...)
	return append(h, wildcard...)
}
