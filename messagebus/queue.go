// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync/atomic"
)

// internal constants
const (
	queueSize = 1000
)

// Message - a command and its parameters
type Message struct {
	Command    string
	Parameters []interface{}
}

// Queue - a single consumer queue
type Queue struct {
	dropped uint64 // first for 64 bit alignment
	c       chan Message
}

type busses struct {
	Receipts  *Queue
	TestQueue *Queue
}

// Bus - all available message queues
var Bus = busses{
	Receipts:  newQueue(queueSize),
	TestQueue: newQueue(queueSize),
}

func newQueue(size int) *Queue {
	return &Queue{
		c: make(chan Message, size),
	}
}

// Send - queue a message without blocking
//
// returns false if the queue was full and the message was dropped
func (queue *Queue) Send(command string, parameters ...interface{}) bool {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}
	select {
	case queue.c <- m:
		return true
	default:
		atomic.AddUint64(&queue.dropped, 1)
		return false
	}
}

// Chan - channel to read from
func (queue *Queue) Chan() <-chan Message {
	return queue.c
}

// Dropped - number of messages discarded because the queue was full
func (queue *Queue) Dropped() uint64 {
	return atomic.LoadUint64(&queue.dropped)
}

// Drain - discard any queued messages, returning the count
func (queue *Queue) Drain() int {
	n := 0
	for {
		select {
		case <-queue.c:
			n += 1
		default:
			return n
		}
	}
}
